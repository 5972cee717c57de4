package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"

	"github.com/comradezone/dating/internal/config"
)

// NewGRPCServer builds a gRPC server with the logging interceptor, the
// standard health service and reflection, and registers all provided
// services. The health status starts as SERVING.
func NewGRPCServer(log *slog.Logger, registrars ...Registrar) *grpc.Server {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			RecoveryInterceptor(log),
			LoggingInterceptor(log),
		),
	)

	// register all services
	all := append([]Registrar{healthRegistrar(), reflectionRegistrar()}, registrars...)
	for _, r := range all {
		r.Register(grpcServer)
	}

	return grpcServer
}

// StartGRPCServer listens on the configured address and serves until ctx is
// cancelled, then stops gracefully.
func StartGRPCServer(ctx context.Context, cfg *config.Config, log *slog.Logger, registrars ...Registrar) error {
	addr := fmt.Sprintf("%s:%s", cfg.GRPC.Host, cfg.GRPC.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	grpcServer := NewGRPCServer(log, registrars...)

	go func() {
		<-ctx.Done()
		log.Info("stopping gRPC server")
		grpcServer.GracefulStop()
	}()

	log.Info("starting gRPC server", "addr", addr)
	return grpcServer.Serve(lis)
}
