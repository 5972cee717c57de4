// Package dbtest opens isolated in-memory databases for tests.
package dbtest

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/comradezone/dating/internal/db"
)

// Open returns a migrated in-memory SQLite database private to t.
// The pool is capped at one connection, which both keeps the in-memory
// database alive and serializes concurrent transactions.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	database, err := gorm.Open(sqlite.Open(dsn), db.GormConfig(logger.Silent))
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(database))
	return database
}

// ProfileOption tweaks a profile built by NewProfile.
type ProfileOption func(*db.Profile)

func WithAge(age int) ProfileOption { return func(p *db.Profile) { p.Age = age } }

func WithAgeRange(minAge, maxAge int) ProfileOption {
	return func(p *db.Profile) { p.MinAge, p.MaxAge = minAge, maxAge }
}

func Seeking(genders ...db.Gender) ProfileOption {
	return func(p *db.Profile) { p.SeekingGenders = db.NewGenderSet(genders...) }
}

func Hidden() ProfileOption { return func(p *db.Profile) { p.ShowMe = false } }

func WithCompleteness(score int) ProfileOption {
	return func(p *db.Profile) { p.Completeness = score }
}

func WithSuperLikes(remaining int, lastReset time.Time) ProfileOption {
	return func(p *db.Profile) {
		p.SuperLikesRemaining = remaining
		p.LastSuperLikeReset = lastReset.UTC()
	}
}

// NewProfile inserts a profile with sensible defaults: age 21, seeking every
// gender in the 18–30 range, visible, full super-like quota reset now.
func NewProfile(t *testing.T, database *gorm.DB, name string, gender db.Gender, opts ...ProfileOption) *db.Profile {
	t.Helper()

	p := &db.Profile{
		AccountID:           uuid.NewString(),
		DisplayName:         name,
		Age:                 21,
		Gender:              gender,
		SeekingGenders:      db.NewGenderSet(db.AllGenders...),
		MinAge:              18,
		MaxAge:              30,
		ShowMe:              true,
		Completeness:        60,
		SuperLikesRemaining: 3,
		LastSuperLikeReset:  time.Now().UTC(),
	}
	p.SetInterests(nil)
	for _, opt := range opts {
		opt(p)
	}
	require.NoError(t, database.Create(p).Error)
	return p
}
