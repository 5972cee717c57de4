package repository

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/comradezone/dating/internal/db"
)

// MatchRepository provides data access for matches. Pairs are always stored
// normalized (see db.NormalizePair), so one lookup covers both orderings.
type MatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(database *gorm.DB) *MatchRepository {
	return &MatchRepository{db: database}
}

// CreateIfAbsent inserts a match for the unordered pair {a, b}.
//
// Behavior:
//   - Returns true only if this call inserted the row.
//   - An existing row (active or not) is left untouched and yields false.
//   - A duplicate-key error from a concurrent writer is absorbed as false.
func (r *MatchRepository) CreateIfAbsent(ctx context.Context, a, b string, at time.Time) (bool, error) {
	p1, p2 := db.NormalizePair(a, b)
	m := db.Match{
		Profile1ID: p1,
		Profile2ID: p2,
		Active:     true,
		MatchedAt:  at.UTC(),
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile1_id"}, {Name: "profile2_id"}},
			DoNothing: true,
		}).
		Create(&m)
	if res.Error != nil {
		if stderrors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, errors.Wrap(res.Error, "create match")
	}
	return res.RowsAffected == 1, nil
}

// GetByID returns the match or an error wrapping gorm.ErrRecordNotFound.
func (r *MatchRepository) GetByID(ctx context.Context, id string) (*db.Match, error) {
	var m db.Match
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, errors.Wrapf(err, "get match %s", id)
	}
	return &m, nil
}

// FindByPair returns the match for {a, b}, or nil when none exists.
func (r *MatchRepository) FindByPair(ctx context.Context, a, b string) (*db.Match, error) {
	p1, p2 := db.NormalizePair(a, b)
	var matches []db.Match
	err := r.db.WithContext(ctx).
		Where("profile1_id = ? AND profile2_id = ?", p1, p2).
		Limit(1).
		Find(&matches).Error
	if err != nil {
		return nil, errors.Wrap(err, "find match")
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

// ListActive returns the active matches of a profile, most recent activity first.
func (r *MatchRepository) ListActive(ctx context.Context, profileID string) ([]db.Match, error) {
	var matches []db.Match
	err := r.db.WithContext(ctx).
		Where("(profile1_id = ? OR profile2_id = ?) AND active = ?", profileID, profileID, true).
		Order("COALESCE(last_message_at, matched_at) DESC, id").
		Find(&matches).Error
	if err != nil {
		return nil, errors.Wrap(err, "list matches")
	}
	return matches, nil
}

// Deactivate flips active to false. Deactivating twice is a no-op.
func (r *MatchRepository) Deactivate(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("id = ?", id).
		Update("active", false).Error
	return errors.Wrap(err, "deactivate match")
}

// DeactivatePair deactivates the match of {a, b} if there is one.
func (r *MatchRepository) DeactivatePair(ctx context.Context, a, b string) (int64, error) {
	p1, p2 := db.NormalizePair(a, b)
	res := r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("profile1_id = ? AND profile2_id = ? AND active = ?", p1, p2, true).
		Update("active", false)
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "deactivate match pair")
	}
	return res.RowsAffected, nil
}

// TouchLastMessage stamps last_message_at on an active match.
// Returns false when the match is missing or inactive.
func (r *MatchRepository) TouchLastMessage(ctx context.Context, id string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("id = ? AND active = ?", id, true).
		Update("last_message_at", at.UTC())
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "touch match")
	}
	return res.RowsAffected > 0, nil
}
