package server

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Registrar attaches one gRPC service to a server.
type Registrar interface {
	Register(s *grpc.Server)
}

// RegistrarFunc adapts a plain function to Registrar.
type RegistrarFunc func(s *grpc.Server)

func (f RegistrarFunc) Register(s *grpc.Server) { f(s) }

// healthRegistrar exposes grpc.health.v1 with every service SERVING.
func healthRegistrar() Registrar {
	return RegistrarFunc(func(s *grpc.Server) {
		srv := health.NewServer()
		healthpb.RegisterHealthServer(s, srv)
		srv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	})
}

// reflectionRegistrar enables reflection for grpcurl.
func reflectionRegistrar() Registrar {
	return RegistrarFunc(func(s *grpc.Server) { reflection.Register(s) })
}
