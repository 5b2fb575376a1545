// Package grpc exposes the user and file services as the FileService gRPC
// API generated into internal/proto.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/gophdrive/internal/logging"
	pb "github.com/dmitrijs2005/gophdrive/internal/proto"
	"github.com/dmitrijs2005/gophdrive/internal/server/models"
	"github.com/dmitrijs2005/gophdrive/internal/server/services"
	"google.golang.org/grpc"
)

type UserService interface {
	Register(ctx context.Context, email string, salt, verifier []byte) (*models.User, error)
	GetSalt(ctx context.Context, email string) ([]byte, error)
	Login(ctx context.Context, email string, verifier []byte) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, userID string) error
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

type FileService interface {
	List(ctx context.Context, userID string) ([]*models.File, error)
	Insert(ctx context.Context, userID string, f *models.File) (*models.File, error)
	Delete(ctx context.Context, userID, id string) error
	CreateUploadURL(ctx context.Context, userID, key, contentType string) (string, string, error)
	CreateDownloadURL(ctx context.Context, userID, path string) (string, error)
	CreateSignedURL(ctx context.Context, userID, path string, ttl time.Duration) (string, time.Time, error)
	RemoveObject(ctx context.Context, userID, path string) error
}

type GRPCServer struct {
	pb.UnimplementedFileServiceServer
	address   string
	users     UserService
	files     FileService
	logger    logging.Logger
	jwtSecret []byte
}

var _ pb.FileServiceServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, us UserService, fs FileService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		files:     fs,
		jwtSecret: []byte(secretKey),
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis and stops gracefully when ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterFileServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}
