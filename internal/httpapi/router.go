// Package httpapi exposes the matching engine as a JSON/HTTP gateway. The
// acting profile is taken from the path; authenticating it is the job of
// the proxy in front of this service.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comradezone/dating/internal/config"
	"github.com/comradezone/dating/internal/matching"
)

// Handler serves the HTTP routes.
type Handler struct {
	engine *matching.Engine
	log    *slog.Logger
}

func NewHandler(engine *matching.Engine, log *slog.Logger) *Handler {
	return &Handler{engine: engine, log: log}
}

// NewRouter builds the gin engine with recovery, request logging and every
// route registered.
func NewRouter(engine *matching.Engine, log *slog.Logger) *gin.Engine {
	h := NewHandler(engine, log)

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	v1.PUT("/accounts/:accountID/profile", h.UpsertProfile)

	p := v1.Group("/profiles/:profileID")
	p.GET("", h.GetProfile)
	p.GET("/candidates", h.ListCandidates)
	p.POST("/swipes", h.RecordSwipe)
	p.GET("/matches", h.ListMatches)
	p.DELETE("/matches/:matchID", h.Unmatch)
	p.POST("/matches/:matchID/activity", h.TouchMatch)
	p.POST("/blocks", h.BlockProfile)
	p.GET("/likes/incoming", h.ListIncomingLikes)
	p.GET("/likes/incoming/count", h.CountIncomingLikes)
	p.GET("/quota", h.SuperLikeQuota)

	return r
}

// requestLogger logs one line per request through slog.
func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"route", c.FullPath(),
			"status", status,
			"duration", time.Since(start),
		}
		switch {
		case status >= http.StatusInternalServerError:
			log.Error("http", attrs...)
		case status >= http.StatusBadRequest:
			log.Info("http", attrs...)
		default:
			log.Debug("http", attrs...)
		}
	}
}

// StartHTTPServer serves handler on the configured address until ctx is
// cancelled, then shuts down with a bounded grace period.
func StartHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler, log *slog.Logger) error {
	addr := fmt.Sprintf("%s:%s", cfg.HTTP.Host, cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info("stopping HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("http shutdown", "err", err)
		}
	}()

	log.Info("starting HTTP server", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
