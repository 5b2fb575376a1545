package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/gophdrive/internal/common"
	pb "github.com/dmitrijs2005/gophdrive/internal/proto"
	"github.com/dmitrijs2005/gophdrive/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// publicMethods are reachable without an access token.
var publicMethods = map[string]struct{}{
	pb.FileService_Register_FullMethodName:     {},
	pb.FileService_GetSalt_FullMethodName:      {},
	pb.FileService_Login_FullMethodName:        {},
	pb.FileService_RefreshToken_FullMethodName: {},
	pb.FileService_Ping_FullMethodName:         {},
}

func claimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*auth.Claims)
	return c, ok
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if _, ok := publicMethods[info.FullMethod]; ok {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			accessToken = values[0]
		}
	}
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, common.ErrMissingToken.Error())
	}

	claims, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	return handler(context.WithValue(ctx, claimsKey, claims), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	reqID := uuid.NewString()

	resp, err := handler(ctx, req)

	args := []any{"method", info.FullMethod, "request_id", reqID, "duration", time.Since(start)}
	if err != nil {
		st := status.Convert(err)
		args = append(args, "code", st.Code().String(), "err", st.Message())
		if st.Code() == codes.Internal {
			s.logger.Error(ctx, "rpc failed", args...)
		} else {
			s.logger.Info(ctx, "rpc rejected", args...)
		}
		return resp, err
	}

	s.logger.Debug(ctx, "rpc", args...)
	return resp, nil
}
