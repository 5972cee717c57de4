// Package matching implements the mutual-interest matching engine: the
// profile store, the swipe ledger with its daily super-like quota, match
// detection, the candidate feed and the match lifecycle.
//
// The relational store is the only shared state. Every invariant that must
// hold under concurrent requests (one swipe per ordered pair, one match per
// unordered pair, quota never below zero) is enforced by a unique constraint
// or a conditional UPDATE, never by read-then-write logic in this package.
package matching

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/comradezone/dating/internal/cache"
	"github.com/comradezone/dating/internal/config"
	"github.com/comradezone/dating/internal/db"
	svcErr "github.com/comradezone/dating/internal/errors"
	"github.com/comradezone/dating/internal/repository"
)

// DailySuperLikes is the number of super-likes a profile gets per calendar day.
const DailySuperLikes = 3

// Engine is safe for concurrent use.
type Engine struct {
	db       *gorm.DB
	cache    *cache.RedisCache
	log      *slog.Logger
	validate *validator.Validate

	now func() time.Time
	loc *time.Location

	defaultLimit int
	maxLimit     int
	pageSize     int
}

type Option func(*Engine)

// WithClock replaces time.Now. Tests use it to cross day boundaries.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLocation sets the timezone in which a quota day starts and ends.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// WithLimits overrides the candidate batch default/maximum and the
// incoming-likes page size. Non-positive values keep the current setting.
func WithLimits(defaultLimit, maxLimit, pageSize int) Option {
	return func(e *Engine) {
		if defaultLimit > 0 {
			e.defaultLimit = defaultLimit
		}
		if maxLimit > 0 {
			e.maxLimit = maxLimit
		}
		if pageSize > 0 {
			e.pageSize = pageSize
		}
	}
}

// NewEngine wires the engine. rc may be nil, in which case incoming-like
// counts are always read from the database.
func NewEngine(database *gorm.DB, rc *cache.RedisCache, log *slog.Logger, opts ...Option) *Engine {
	if log == nil {
		log = slog.Default()
	}
	e := &Engine{
		db:           database,
		cache:        rc,
		log:          log.With("component", "matching"),
		validate:     newValidator(),
		now:          time.Now,
		loc:          time.UTC,
		defaultLimit: 10,
		maxLimit:     50,
		pageSize:     20,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.maxLimit < e.defaultLimit {
		e.maxLimit = e.defaultLimit
	}
	return e
}

// NewEngineFromConfig builds an engine using the dating section of cfg.
func NewEngineFromConfig(
	cfg *config.Config,
	database *gorm.DB,
	rc *cache.RedisCache,
	log *slog.Logger,
	opts ...Option,
) (*Engine, error) {
	loc, err := time.LoadLocation(cfg.Dating.Timezone)
	if err != nil {
		return nil, err
	}
	base := []Option{
		WithLocation(loc),
		WithLimits(cfg.Dating.DefaultCandidateLimit, cfg.Dating.MaxCandidateLimit, cfg.Dating.IncomingLikesPageSize),
	}
	return NewEngine(database, rc, log, append(base, opts...)...), nil
}

// startOfDay returns local midnight of the day containing t.
func (e *Engine) startOfDay(t time.Time) time.Time {
	local := t.In(e.loc)
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, e.loc)
}

func (e *Engine) nextReset(t time.Time) time.Time {
	return e.startOfDay(t).AddDate(0, 0, 1)
}

func (e *Engine) clampLimit(limit int) int {
	if limit <= 0 {
		return e.defaultLimit
	}
	if limit > e.maxLimit {
		return e.maxLimit
	}
	return limit
}

// requireProfile loads the acting profile. A missing one is reported as
// ProfileRequired, not NotFound, so clients can route to profile creation.
func (e *Engine) requireProfile(ctx context.Context, profiles *repository.ProfileRepository, id string) (*db.Profile, error) {
	if id == "" {
		return nil, svcErr.Validation("profile id is required",
			svcErr.FieldViolation{Field: "profile_id", Description: "must not be empty"})
	}
	p, err := profiles.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svcErr.ProfileRequired("create a dating profile first")
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// findTarget loads a profile referenced by the caller.
func (e *Engine) findTarget(ctx context.Context, profiles *repository.ProfileRepository, id string) (*db.Profile, error) {
	if id == "" {
		return nil, svcErr.NotFound("profile not found")
	}
	p, err := profiles.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svcErr.NotFound("profile not found")
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// lockPair locks the acting and the referenced profile for the rest of the
// transaction. A missing actor is ProfileRequired, a missing other NotFound.
func (e *Engine) lockPair(ctx context.Context, profiles *repository.ProfileRepository, actorID, otherID string) error {
	pair, err := profiles.LockPair(ctx, actorID, otherID)
	if err != nil {
		return err
	}
	if _, ok := pair[actorID]; !ok {
		return svcErr.ProfileRequired("create a dating profile first")
	}
	if _, ok := pair[otherID]; !ok {
		return svcErr.NotFound("profile not found")
	}
	return nil
}

// fail converts store failures into Internal errors and logs them. Engine
// errors pass through untouched.
func (e *Engine) fail(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := svcErr.As(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	e.log.ErrorContext(ctx, op+" failed", "err", err)
	return svcErr.Internal(op, err)
}

// invalidateLikeCounts drops cached counters after a committed write. Cache
// errors only cost freshness within the TTL, so they are logged, not returned.
func (e *Engine) invalidateLikeCounts(ctx context.Context, profileIDs ...string) {
	if e.cache == nil {
		return
	}
	if err := e.cache.InvalidateIncomingLikeCounts(ctx, profileIDs...); err != nil {
		e.log.WarnContext(ctx, "invalidate like counts", "profiles", profileIDs, "err", err)
	}
}
