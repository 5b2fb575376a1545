package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/gophdrive/internal/common"
	pb "github.com/dmitrijs2005/gophdrive/internal/proto"
	"github.com/dmitrijs2005/gophdrive/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// toStatus maps service errors onto gRPC statuses. Unknown errors become
// Internal with a generic message; details stay in the server log.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "invalid login credentials")
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrorObjectExists):
		return status.Error(codes.AlreadyExists, common.ErrorObjectExists.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, common.ErrorAlreadyExists.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, common.ErrorNotFound.Error())
	case errors.Is(err, common.ErrorForbidden):
		return status.Error(codes.PermissionDenied, common.ErrorForbidden.Error())
	case errors.Is(err, common.ErrorInvalidTTL), errors.Is(err, common.ErrorInvalidArg):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, common.ErrorInternal.Error())
	}
}

func (s *GRPCServer) fail(ctx context.Context, op string, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		s.logger.Error(ctx, op+" failed", "err", err)
	}
	return st
}

func callerID(ctx context.Context) (string, error) {
	c, ok := claimsFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, common.ErrMissingToken.Error())
	}
	return c.UserID, nil
}

func toPBFile(f *models.File) *pb.File {
	return &pb.File{Id: f.ID, Name: f.Name, Size: f.Size, Type: f.Type, Path: f.Path, CreatedAt: timestamppb.New(f.CreatedAt)}
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	u, err := s.users.Register(ctx, req.GetEmail(), req.GetSalt(), req.GetVerifier())
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, status.Error(codes.AlreadyExists, "user already registered")
		}
		return nil, s.fail(ctx, "register", err)
	}

	s.logger.Info(ctx, "Registered", "user_id", u.ID)
	return &pb.RegisterResponse{UserId: u.ID}, nil
}

func (s *GRPCServer) GetSalt(ctx context.Context, req *pb.GetSaltRequest) (*pb.GetSaltResponse, error) {
	salt, err := s.users.GetSalt(ctx, req.GetEmail())
	if err != nil {
		return nil, s.fail(ctx, "get salt", err)
	}
	return &pb.GetSaltResponse{Salt: salt}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	tokens, err := s.users.Login(ctx, req.GetEmail(), req.GetVerifier())
	if err != nil {
		return nil, s.fail(ctx, "login", err)
	}
	return &pb.LoginResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	tokens, err := s.users.RefreshToken(ctx, req.GetRefreshToken())
	if err != nil {
		return nil, s.fail(ctx, "refresh token", err)
	}
	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, _ *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.Logout(ctx, userID); err != nil {
		return nil, s.fail(ctx, "logout", err)
	}
	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) GetSession(ctx context.Context, _ *pb.GetSessionRequest) (*pb.GetSessionResponse, error) {
	claims, ok := claimsFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, common.ErrMissingToken.Error())
	}
	u, err := s.users.GetUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
		}
		return nil, s.fail(ctx, "get session", err)
	}
	return &pb.GetSessionResponse{UserId: u.ID, Email: u.Email, ExpiresAt: timestamppb.New(claims.Expiry())}, nil
}

func (s *GRPCServer) Ping(context.Context, *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) ListFiles(ctx context.Context, req *pb.ListFilesRequest) (*pb.ListFilesResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if owner := req.GetOwnerId(); owner != "" && owner != userID {
		return nil, status.Error(codes.PermissionDenied, common.ErrorForbidden.Error())
	}

	files, err := s.files.List(ctx, userID)
	if err != nil {
		return nil, s.fail(ctx, "list files", err)
	}

	resp := &pb.ListFilesResponse{Files: make([]*pb.File, 0, len(files))}
	for _, f := range files {
		resp.Files = append(resp.Files, toPBFile(f))
	}
	return resp, nil
}

func (s *GRPCServer) InsertFile(ctx context.Context, req *pb.InsertFileRequest) (*pb.InsertFileResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	f, err := s.files.Insert(ctx, userID, &models.File{Name: req.GetName(), Size: req.GetSize(), Type: req.GetType(), Path: req.GetPath()})
	if err != nil {
		return nil, s.fail(ctx, "insert file", err)
	}
	return &pb.InsertFileResponse{File: toPBFile(f)}, nil
}

func (s *GRPCServer) DeleteFile(ctx context.Context, req *pb.DeleteFileRequest) (*pb.DeleteFileResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.files.Delete(ctx, userID, req.GetId()); err != nil {
		return nil, s.fail(ctx, "delete file", err)
	}
	return &pb.DeleteFileResponse{}, nil
}

func (s *GRPCServer) CreateUploadURL(ctx context.Context, req *pb.CreateUploadURLRequest) (*pb.CreateUploadURLResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	p, url, err := s.files.CreateUploadURL(ctx, userID, req.GetKey(), req.GetContentType())
	if err != nil {
		return nil, s.fail(ctx, "create upload url", err)
	}
	return &pb.CreateUploadURLResponse{Path: p, Url: url}, nil
}

func (s *GRPCServer) CreateDownloadURL(ctx context.Context, req *pb.CreateDownloadURLRequest) (*pb.CreateDownloadURLResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	url, err := s.files.CreateDownloadURL(ctx, userID, req.GetPath())
	if err != nil {
		return nil, s.fail(ctx, "create download url", err)
	}
	return &pb.CreateDownloadURLResponse{Url: url}, nil
}

func (s *GRPCServer) RemoveObject(ctx context.Context, req *pb.RemoveObjectRequest) (*pb.RemoveObjectResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.files.RemoveObject(ctx, userID, req.GetPath()); err != nil {
		return nil, s.fail(ctx, "remove object", err)
	}
	return &pb.RemoveObjectResponse{}, nil
}

func (s *GRPCServer) CreateSignedURL(ctx context.Context, req *pb.CreateSignedURLRequest) (*pb.CreateSignedURLResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	url, exp, err := s.files.CreateSignedURL(ctx, userID, req.GetPath(), time.Duration(req.GetTtlSeconds())*time.Second)
	if err != nil {
		return nil, s.fail(ctx, "create signed url", err)
	}
	return &pb.CreateSignedURLResponse{Url: url, ExpiresAt: timestamppb.New(exp)}, nil
}
