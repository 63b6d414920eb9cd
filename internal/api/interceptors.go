package api

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/matheus3301/parley/internal/identity"
	"github.com/matheus3301/parley/internal/metrics"
)

// UnaryAuth resolves the caller of every unary call and attaches the
// identity to the handler context.
func UnaryAuth(res identity.Resolver) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		id, err := res.Resolve(ctx)
		if err != nil {
			return nil, grpcstatus.Error(codes.Unauthenticated, err.Error())
		}
		return handler(identity.WithIdentity(ctx, id), req)
	}
}

// StreamAuth is the streaming counterpart of UnaryAuth.
func StreamAuth(res identity.Resolver) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		id, err := res.Resolve(ss.Context())
		if err != nil {
			return grpcstatus.Error(codes.Unauthenticated, err.Error())
		}
		return handler(srv, &identityStream{ServerStream: ss, ctx: identity.WithIdentity(ss.Context(), id)})
	}
}

type identityStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *identityStream) Context() context.Context {
	return s.ctx
}

// UnaryObserve logs and counts every unary call by method and status code.
func UnaryObserve(m *metrics.Metrics, logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		observe(m, logger, info.FullMethod, start, err)
		return resp, err
	}
}

// StreamObserve logs and counts every stream by method and status code.
func StreamObserve(m *metrics.Metrics, logger *zap.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, ss)
		observe(m, logger, info.FullMethod, start, err)
		return err
	}
}

func observe(m *metrics.Metrics, logger *zap.Logger, method string, start time.Time, err error) {
	code := grpcstatus.Code(err)
	m.RPC(method, code.String())

	fields := []zap.Field{
		zap.String("method", method),
		zap.String("code", code.String()),
		zap.Duration("elapsed", time.Since(start)),
	}
	switch code {
	case codes.OK, codes.Canceled:
		logger.Debug("rpc", fields...)
	case codes.Internal, codes.Unknown, codes.Unavailable, codes.DataLoss:
		logger.Error("rpc failed", append(fields, zap.Error(err))...)
	default:
		logger.Info("rpc rejected", append(fields, zap.Error(err))...)
	}
}
