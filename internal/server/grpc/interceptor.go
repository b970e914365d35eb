package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/slugmart/slugmart/internal/common"
	"github.com/slugmart/slugmart/internal/server/auth"
)

// Authorizer is satisfied by *auth.Gate.
type Authorizer interface {
	Authorize(ctx context.Context, operations []string, authorization string) (context.Context, error)
}

// Policy is the gRPC access table: health checks are public, every other
// full method name needs a bearer token.
func Policy() (*auth.Policy, error) {
	return auth.NewPolicy(
		auth.Rule{Name: grpc_health_v1.Health_Check_FullMethodName, Access: auth.Public},
		auth.Rule{Name: grpc_health_v1.Health_Watch_FullMethodName, Access: auth.Public},
	)
}

func authorizationFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(common.AuthorizationMetadataKey); len(values) > 0 {
		return values[0]
	}
	return ""
}

func (s *GRPCServer) authorize(ctx context.Context, fullMethod string) (context.Context, error) {
	ctx, err := s.gate.Authorize(ctx, []string{fullMethod}, authorizationFromMetadata(ctx))
	if err != nil {
		if errors.Is(err, common.ErrTokenMissing) {
			return ctx, status.Error(codes.Unauthenticated, "missing token")
		}
		return ctx, status.Error(codes.Unauthenticated, "invalid token")
	}
	return ctx, nil
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	ctx, err := s.authorize(ctx, info.FullMethod)
	if err != nil {
		return nil, err
	}
	return handler(ctx, req)
}

// authStream carries the authorized context into the stream handler.
type authStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (a *authStream) Context() context.Context {
	return a.ctx
}

func (s *GRPCServer) accessTokenStreamInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	ctx, err := s.authorize(ss.Context(), info.FullMethod)
	if err != nil {
		return err
	}
	return handler(srv, &authStream{ServerStream: ss, ctx: ctx})
}
