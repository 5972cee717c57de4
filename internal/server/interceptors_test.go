package server

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/comradezone/dating/internal/logger"
)

var testInfo = &grpc.UnaryServerInfo{FullMethod: "/comradezone.dating.v1.DatingService/RecordSwipe"}

func TestRecoveryInterceptor(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	_, err := RecoveryInterceptor(log)(context.Background(), nil, testInfo, func(context.Context, any) (any, error) {
		panic("boom")
	})

	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Contains(t, buf.String(), "panic in handler")
	assert.Contains(t, buf.String(), "RecordSwipe")
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var scoped *slog.Logger
	resp, err := LoggingInterceptor(log)(context.Background(), "req", testInfo, func(ctx context.Context, req any) (any, error) {
		scoped = logger.FromContext(ctx, nil)
		return "resp", status.Error(codes.NotFound, "profile not found")
	})

	assert.Equal(t, "resp", resp)
	assert.Equal(t, codes.NotFound, status.Code(err))
	require.NotNil(t, scoped)
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "code=NotFound")
}

func TestRegistrarFunc(t *testing.T) {
	called := false
	srv := NewGRPCServer(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		RegistrarFunc(func(*grpc.Server) { called = true }))
	defer srv.Stop()

	assert.True(t, called)
	assert.Contains(t, srv.GetServiceInfo(), "grpc.health.v1.Health")
}
