package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/comradezone/dating/internal/cache"
	"github.com/comradezone/dating/internal/config"
	"github.com/comradezone/dating/internal/matching"
)

// AppContext holds shared dependencies (DB, Redis, Logger, engine, etc.)
type AppContext struct {
	Config     *config.Config
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Logger     *slog.Logger
	Engine     *matching.Engine
}

// New creates a new AppContext and builds the matching engine on top of the
// given DB and cache.
func New(cfg *config.Config, db *gorm.DB, rdb *cache.RedisCache, logger *slog.Logger) (*AppContext, error) {
	engine, err := matching.NewEngineFromConfig(cfg, db, rdb, logger)
	if err != nil {
		return nil, err
	}
	return &AppContext{
		Config:     cfg,
		DB:         db,
		RedisCache: rdb,
		Logger:     logger,
		Engine:     engine,
	}, nil
}
