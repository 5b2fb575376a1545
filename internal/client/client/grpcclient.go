package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophdrive/internal/client/models"
	"github.com/dmitrijs2005/gophdrive/internal/common"
	pb "github.com/dmitrijs2005/gophdrive/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const saltTimeout = 12 * time.Second

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.FileServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	onRefresh    func(access, refresh string)
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

// accessTokenInterceptor attaches the access token and, when the server
// reports it expired, rotates the pair once and retries the call.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	access, refresh := s.Tokens()

	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil || !isTokenExpired(err) || refresh == "" || method == pb.FileService_RefreshToken_FullMethodName {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if rerr != nil {
		return rerr
	}

	s.mu.Lock()
	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken
	hook := s.onRefresh
	s.mu.Unlock()

	if hook != nil {
		hook(resp.AccessToken, resp.RefreshToken)
	}

	return invoker(withAccessToken(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewFileServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) SetTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = access, refresh
}

// OnTokensRefreshed registers fn to be called after a transparent refresh.
func (s *GRPCClient) OnTokensRefreshed(fn func(access, refresh string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRefresh = fn
}

func (s *GRPCClient) Register(ctx context.Context, email string, salt, verifier []byte) (string, error) {
	resp, err := s.client.Register(ctx, &pb.RegisterRequest{Email: email, Salt: salt, Verifier: verifier})
	if err != nil {
		return "", mapError(err)
	}
	return resp.GetUserId(), nil
}

func (s *GRPCClient) GetSalt(ctx context.Context, email string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, saltTimeout)
	defer cancel()

	resp, err := s.client.GetSalt(ctx, &pb.GetSaltRequest{Email: email})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.GetSalt(), nil
}

func (s *GRPCClient) Login(ctx context.Context, email string, verifier []byte) error {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Verifier: verifier})
	if err != nil {
		return mapError(err)
	}
	s.SetTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

// Logout revokes the refresh tokens on the server and forgets the local pair.
// The local pair is dropped even when the server call fails.
func (s *GRPCClient) Logout(ctx context.Context) error {
	_, err := s.client.Logout(ctx, &pb.LogoutRequest{})
	s.SetTokens("", "")
	if err != nil {
		return mapError(err)
	}
	return nil
}

func (s *GRPCClient) GetSession(ctx context.Context) (*models.Session, error) {
	resp, err := s.client.GetSession(ctx, &pb.GetSessionRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return &models.Session{UserID: resp.GetUserId(), Email: resp.GetEmail(), ExpiresAt: asTime(resp.GetExpiresAt())}, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

// asTime leaves an unset timestamp as the zero time rather than the epoch.
func asTime(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func fromPBFile(f *pb.File) *models.FileRecord {
	return &models.FileRecord{
		ID:        f.GetId(),
		Name:      f.GetName(),
		Size:      f.GetSize(),
		Type:      f.GetType(),
		Path:      f.GetPath(),
		CreatedAt: asTime(f.GetCreatedAt()),
	}
}

func (s *GRPCClient) ListFiles(ctx context.Context, ownerID string) ([]*models.FileRecord, error) {
	resp, err := s.client.ListFiles(ctx, &pb.ListFilesRequest{OwnerId: ownerID})
	if err != nil {
		return nil, mapError(err)
	}
	out := make([]*models.FileRecord, 0, len(resp.GetFiles()))
	for _, f := range resp.GetFiles() {
		out = append(out, fromPBFile(f))
	}
	return out, nil
}

func (s *GRPCClient) InsertFile(ctx context.Context, rec models.NewFileRecord) (*models.FileRecord, error) {
	resp, err := s.client.InsertFile(ctx, &pb.InsertFileRequest{Name: rec.Name, Size: rec.Size, Type: rec.Type, Path: rec.Path})
	if err != nil {
		return nil, mapError(err)
	}
	return fromPBFile(resp.GetFile()), nil
}

func (s *GRPCClient) DeleteFile(ctx context.Context, id string) error {
	if _, err := s.client.DeleteFile(ctx, &pb.DeleteFileRequest{Id: id}); err != nil {
		return mapError(err)
	}
	return nil
}

func (s *GRPCClient) CreateUploadURL(ctx context.Context, key, contentType string) (string, string, error) {
	resp, err := s.client.CreateUploadURL(ctx, &pb.CreateUploadURLRequest{Key: key, ContentType: contentType})
	if err != nil {
		return "", "", mapError(err)
	}
	return resp.GetPath(), resp.GetUrl(), nil
}

func (s *GRPCClient) CreateDownloadURL(ctx context.Context, path string) (string, error) {
	resp, err := s.client.CreateDownloadURL(ctx, &pb.CreateDownloadURLRequest{Path: path})
	if err != nil {
		return "", mapError(err)
	}
	return resp.GetUrl(), nil
}

func (s *GRPCClient) RemoveObject(ctx context.Context, path string) error {
	if _, err := s.client.RemoveObject(ctx, &pb.RemoveObjectRequest{Path: path}); err != nil {
		return mapError(err)
	}
	return nil
}

func (s *GRPCClient) CreateSignedURL(ctx context.Context, path string, ttl time.Duration) (string, time.Time, error) {
	resp, err := s.client.CreateSignedURL(ctx, &pb.CreateSignedURLRequest{Path: path, TtlSeconds: int64(ttl / time.Second)})
	if err != nil {
		return "", time.Time{}, mapError(err)
	}
	return resp.GetUrl(), asTime(resp.GetExpiresAt()), nil
}

// mapError turns a gRPC status into a sentinel the services can match.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}

	var sentinel error
	switch st.Code() {
	case codes.Unauthenticated:
		sentinel = ErrUnauthorized
	case codes.PermissionDenied:
		sentinel = common.ErrorForbidden
	case codes.AlreadyExists:
		sentinel = common.ErrorAlreadyExists
	case codes.NotFound:
		sentinel = common.ErrorNotFound
	case codes.InvalidArgument:
		sentinel = common.ErrorInvalidArg
	case codes.Unavailable, codes.DeadlineExceeded:
		sentinel = ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
	return fmt.Errorf("%w: %s", sentinel, st.Message())
}
