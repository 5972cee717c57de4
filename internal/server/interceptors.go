package server

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/comradezone/dating/internal/logger"
)

// LoggingInterceptor logs every unary call with its status code and
// duration, and puts a method-scoped logger into the context.
func LoggingInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		reqLog := log.With("method", info.FullMethod)
		resp, err := handler(logger.IntoContext(ctx, reqLog), req)

		code := status.Code(err)
		attrs := []any{"code", code.String(), "duration", time.Since(start)}
		switch code {
		case codes.OK:
			reqLog.Debug("rpc", attrs...)
		case codes.Internal, codes.Unknown, codes.DataLoss, codes.Unavailable:
			reqLog.Error("rpc", append(attrs, "err", err)...)
		default:
			reqLog.Info("rpc", append(attrs, "err", err)...)
		}
		return resp, err
	}
}

// RecoveryInterceptor turns a handler panic into codes.Internal.
func RecoveryInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic in handler", "method", info.FullMethod, "panic", r, "stack", string(debug.Stack()))
				err = status.Error(codes.Internal, "something went wrong, please try again")
			}
		}()
		return handler(ctx, req)
	}
}
