package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/comradezone/dating/internal/db"
)

// ProfileRepository provides data access for dating profiles, including the
// super-like quota columns.
type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

func (r *ProfileRepository) Create(ctx context.Context, p *db.Profile) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(p).Error, "create profile")
}

// UpdateAttributes writes the owner-editable columns only; quota columns are
// never touched here.
func (r *ProfileRepository) UpdateAttributes(ctx context.Context, p *db.Profile) error {
	err := r.db.WithContext(ctx).
		Model(p).
		Select("display_name", "age", "gender", "seeking_genders", "min_age", "max_age",
			"show_me", "completeness", "bio", "interests", "updated_at").
		Updates(p).Error
	return errors.Wrap(err, "update profile")
}

// GetByID returns the profile or an error wrapping gorm.ErrRecordNotFound.
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*db.Profile, error) {
	var p db.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, errors.Wrapf(err, "get profile %s", id)
	}
	return &p, nil
}

func (r *ProfileRepository) GetByAccountID(ctx context.Context, accountID string) (*db.Profile, error) {
	var p db.Profile
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&p).Error; err != nil {
		return nil, errors.Wrapf(err, "get profile for account %s", accountID)
	}
	return &p, nil
}

// FindByIDs loads profiles in one query, keyed by id. Missing ids are absent.
func (r *ProfileRepository) FindByIDs(ctx context.Context, ids []string) (map[string]db.Profile, error) {
	out := make(map[string]db.Profile, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var profiles []db.Profile
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, errors.Wrap(err, "find profiles")
	}
	for _, p := range profiles {
		out[p.ID] = p
	}
	return out, nil
}

// LockPair loads both profiles FOR UPDATE, locking in id order so two
// transactions on the same pair queue up instead of interleaving. Missing
// profiles are absent from the map. SQLite has no row locks and relies on
// its single writer instead.
func (r *ProfileRepository) LockPair(ctx context.Context, a, b string) (map[string]db.Profile, error) {
	var profiles []db.Profile
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", []string{a, b}).
		Order("id").
		Find(&profiles).Error
	if err != nil {
		return nil, errors.Wrap(err, "lock profile pair")
	}
	out := make(map[string]db.Profile, len(profiles))
	for _, p := range profiles {
		out[p.ID] = p
	}
	return out, nil
}

// ListCandidates returns up to limit profiles the requester may swipe on.
//
// Behavior:
//   - Excludes the requester, hidden profiles (show_me = false) and anyone
//     the requester already has a swipe row for.
//   - Excludes blocks in both directions.
//   - Candidate gender must be in the requester's sought set, and the
//     requester's gender in the candidate's sought set (bitmask AND).
//   - Candidate age must be within the requester's [min_age, max_age].
//   - Ordered by completeness DESC, created_at DESC.
//
// Example:
//
//	repo.ListCandidates(ctx, me, 10)
func (r *ProfileRepository) ListCandidates(ctx context.Context, requester *db.Profile, limit int) ([]db.Profile, error) {
	sought := requester.SeekingGenders.Genders()
	myBit := requester.Gender.Bit()
	if len(sought) == 0 || myBit == 0 || limit <= 0 {
		return []db.Profile{}, nil
	}

	var profiles []db.Profile
	err := r.db.WithContext(ctx).
		Table("profiles p").
		Select("p.*").
		Where("p.id <> ?", requester.ID).
		Where("p.show_me = ?", true).
		Where("p.gender IN ?", sought).
		Where("(p.seeking_genders & ?) <> 0", int(myBit)).
		Where("p.age BETWEEN ? AND ?", requester.MinAge, requester.MaxAge).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM swipes s
				WHERE s.actor_id = ?
				  AND s.target_id = p.id
			)`, requester.ID).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM blocks b
				WHERE (b.blocker_id = ? AND b.blocked_id = p.id)
				   OR (b.blocker_id = p.id AND b.blocked_id = ?)
			)`, requester.ID, requester.ID).
		Order("p.completeness DESC, p.created_at DESC").
		Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, errors.Wrap(err, "list candidates")
	}
	return profiles, nil
}

// ResetSuperLikesIfStale refills the quota when the last reset happened
// before startOfDay. It is a single conditional UPDATE, so concurrent callers
// cannot refill twice. Returns whether a reset happened.
func (r *ProfileRepository) ResetSuperLikesIfStale(
	ctx context.Context,
	profileID string,
	startOfDay, now time.Time,
	daily int,
) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db.Profile{}).
		Where("id = ? AND last_super_like_reset < ?", profileID, startOfDay.UTC()).
		UpdateColumns(map[string]any{
			"super_likes_remaining": daily,
			"last_super_like_reset": now.UTC(),
		})
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "reset super likes")
	}
	return res.RowsAffected > 0, nil
}

// ConsumeSuperLike decrements the quota only if a unit remains.
// Returns false when the quota is exhausted.
func (r *ProfileRepository) ConsumeSuperLike(ctx context.Context, profileID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db.Profile{}).
		Where("id = ? AND super_likes_remaining > 0", profileID).
		UpdateColumn("super_likes_remaining", gorm.Expr("super_likes_remaining - 1"))
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "consume super like")
	}
	return res.RowsAffected > 0, nil
}
