package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/comradezone/dating/internal/db"
	"github.com/comradezone/dating/internal/utils/pagination"
)

// SwipeRepository provides data access methods for the Swipe model.
// It encapsulates all queries related to likes/passes/super-likes between profiles.
type SwipeRepository struct {
	db *gorm.DB
}

// NewSwipeRepository creates a new repository bound to the given DB connection.
func NewSwipeRepository(database *gorm.DB) *SwipeRepository {
	return &SwipeRepository{db: database}
}

// Upsert inserts or updates the swipe made by actor -> target.
//
// Behavior:
//   - If (actor_id, target_id) pair exists → the row's type is overwritten.
//   - If it doesn’t exist → a new row is inserted.
//   - Composite PK + ON CONFLICT make this a single statement, so rapid
//     duplicate requests cannot produce two rows.
//
// Example:
//
//	repo.Upsert(ctx, "a", "b", db.SwipeLike) // profile a liked profile b
func (r *SwipeRepository) Upsert(
	ctx context.Context,
	actorID, targetID string,
	swipeType db.SwipeType,
) error {
	swipe := db.Swipe{
		ActorID:  actorID,
		TargetID: targetID,
		Type:     swipeType,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "actor_id"}, {Name: "target_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"type", "updated_at"}),
		}).
		Create(&swipe).Error
	return errors.Wrap(err, "upsert swipe")
}

// HasLiked checks whether an actor has liked or super-liked a target.
//
// Example:
//
//	repo.HasLiked(ctx, "b", "a") // -> true if profile b liked profile a
func (r *SwipeRepository) HasLiked(ctx context.Context, actorID, targetID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Swipe{}).
		Where("actor_id = ? AND target_id = ? AND type IN ?", actorID, targetID, positiveTypes()).
		Count(&count).Error
	return count > 0, errors.Wrap(err, "check like")
}

// GetIncomingLikes returns likes received by target that target has not acted upon.
//
// Behavior:
//   - Only swipes where target_id = X and type is LIKE or SUPER_LIKE are considered.
//   - Excludes actors that X already swiped on (in any direction of interest).
//   - Excludes pairs with a block in either direction.
//   - Ordered by updated_at DESC, actor_id DESC.
//   - Supports cursor-based pagination via paginationToken.
//
// Example:
//
//	repo.GetIncomingLikes(ctx, "x", nil, 20) // first 20 pending likes for x
func (r *SwipeRepository) GetIncomingLikes(
	ctx context.Context,
	targetID string,
	paginationToken *string,
	limit int,
) ([]db.Swipe, *string, error) {
	if limit <= 0 {
		return nil, nil, errors.Errorf("incoming likes: limit must be positive, got %d", limit)
	}
	var swipes []db.Swipe

	// decode cursor if provided
	cursor, err := pagination.Decode(getString(paginationToken))
	if err != nil {
		return nil, nil, err
	}

	query := r.incomingLikes(ctx, targetID).
		Select("s.*").
		Order("s.updated_at DESC, s.actor_id DESC").
		Limit(limit + 1)

	// apply cursor
	if !cursor.IsZero() {
		ts := cursor.Time()
		query = query.Where(
			"(s.updated_at < ? OR (s.updated_at = ? AND s.actor_id < ?))",
			ts, ts, cursor.ProfileID,
		)
	}

	if err := query.Find(&swipes).Error; err != nil {
		return nil, nil, errors.Wrap(err, "list incoming likes")
	}

	// pagination: build next cursor if needed
	var nextToken *string
	if len(swipes) > limit {
		last := swipes[limit-1]
		token, err := pagination.Encode(pagination.After(last.ActorID, last.UpdatedAt))
		if err != nil {
			return nil, nil, errors.Wrap(err, "encode incoming likes cursor")
		}
		nextToken = &token
		swipes = swipes[:limit]
	}

	return swipes, nextToken, nil
}

// CountIncomingLikes returns how many pending likes target has.
// Same predicate as GetIncomingLikes; used behind the Redis cache (DB is fallback).
func (r *SwipeRepository) CountIncomingLikes(ctx context.Context, targetID string) (int64, error) {
	var count int64
	if err := r.incomingLikes(ctx, targetID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count incoming likes")
	}
	return count, nil
}

func (r *SwipeRepository) incomingLikes(ctx context.Context, targetID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("swipes s").
		Where("s.target_id = ? AND s.type IN ?", targetID, positiveTypes()).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM swipes s2
				WHERE s2.actor_id = ?
				  AND s2.target_id = s.actor_id
			)`, targetID).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM blocks b
				WHERE (b.blocker_id = ? AND b.blocked_id = s.actor_id)
				   OR (b.blocker_id = s.actor_id AND b.blocked_id = ?)
			)`, targetID, targetID)
}

func positiveTypes() []db.SwipeType {
	return []db.SwipeType{db.SwipeLike, db.SwipeSuperLike}
}

// getString safely dereferences a string pointer for pagination tokens.
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
