package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/comradezone/dating/internal/app"
	"github.com/comradezone/dating/internal/cache"
	"github.com/comradezone/dating/internal/config"
	"github.com/comradezone/dating/internal/db"
	"github.com/comradezone/dating/internal/httpapi"
	"github.com/comradezone/dating/internal/logger"
	"github.com/comradezone/dating/internal/server"
	"github.com/comradezone/dating/internal/service/dating"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		log.Error("failed to connect to redis", "err", err)
		os.Exit(1)
	}

	appCtx, err := app.New(cfg, database, redisCache, log)
	if err != nil {
		log.Error("failed to build app context", "err", err)
		os.Exit(1)
	}

	if cfg.App.ENV == "development" {
		if err := db.SeedTestData(database, log); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.StartGRPCServer(ctx, cfg, log, dating.NewRegistrar(appCtx))
	})
	if cfg.HTTP.Enabled {
		g.Go(func() error {
			return httpapi.StartHTTPServer(ctx, cfg, httpapi.NewRouter(appCtx.Engine, log), log)
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
