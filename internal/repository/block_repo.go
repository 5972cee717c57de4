package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/comradezone/dating/internal/db"
)

// BlockRepository provides data access for blocks.
type BlockRepository struct {
	db *gorm.DB
}

func NewBlockRepository(database *gorm.DB) *BlockRepository {
	return &BlockRepository{db: database}
}

// Create records blocker -> blocked. Blocking twice is a no-op.
func (r *BlockRepository) Create(ctx context.Context, blockerID, blockedID string) error {
	block := db.Block{BlockerID: blockerID, BlockedID: blockedID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "blocker_id"}, {Name: "blocked_id"}},
			DoNothing: true,
		}).
		Create(&block).Error
	return errors.Wrap(err, "create block")
}

// ExistsBetween reports whether either profile blocked the other.
func (r *BlockRepository) ExistsBetween(ctx context.Context, a, b string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Block{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)", a, b, b, a).
		Count(&count).Error
	return count > 0, errors.Wrap(err, "check block")
}
