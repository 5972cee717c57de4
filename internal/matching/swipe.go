package matching

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/comradezone/dating/internal/db"
	svcErr "github.com/comradezone/dating/internal/errors"
	"github.com/comradezone/dating/internal/repository"
)

// SwipeResult tells the caller whether the swipe completed a match.
type SwipeResult struct {
	Matched bool
	// MatchID is set when Matched is true.
	MatchID string
}

// Quota is a profile's super-like allowance for the current day.
type Quota struct {
	Remaining int
	ResetsAt  time.Time
}

// RecordSwipe writes actor's action on target and runs match detection.
//
// Behavior:
//   - actor == target or an unknown type → Validation, nothing written.
//   - Missing actor → ProfileRequired. Missing target, or a block between the
//     two in either direction → NotFound.
//   - SUPER_LIKE consumes one unit of the daily quota in the same
//     transaction as the swipe write; with no unit left → QuotaExhausted and
//     nothing is written.
//   - The (actor, target) row is upserted, so a later action overwrites the
//     earlier type.
//   - LIKE and SUPER_LIKE check for a reciprocal positive swipe and create the
//     match at most once per pair.
//
// Example:
//
//	res, err := engine.RecordSwipe(ctx, "a", "b", db.SwipeLike)
//	// res.Matched is true if b had already liked a
func (e *Engine) RecordSwipe(ctx context.Context, actorID, targetID string, swipeType db.SwipeType) (SwipeResult, error) {
	if actorID == "" || targetID == "" {
		return SwipeResult{}, svcErr.Validation("profile ids are required",
			svcErr.FieldViolation{Field: "target_id", Description: "must not be empty"})
	}
	if actorID == targetID {
		return SwipeResult{}, svcErr.Validation("cannot swipe on yourself",
			svcErr.FieldViolation{Field: "target_id", Description: "must differ from the acting profile"})
	}
	if !swipeType.Valid() {
		return SwipeResult{}, svcErr.Validation("unknown swipe type",
			svcErr.FieldViolation{Field: "type", Description: "must be one of LIKE, PASS, SUPER_LIKE"})
	}

	var res SwipeResult
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profiles := repository.NewProfileRepository(tx)
		if err := e.lockPair(ctx, profiles, actorID, targetID); err != nil {
			return err
		}
		blocked, err := repository.NewBlockRepository(tx).ExistsBetween(ctx, actorID, targetID)
		if err != nil {
			return err
		}
		if blocked {
			return svcErr.NotFound("profile not found")
		}

		if swipeType == db.SwipeSuperLike {
			if err := e.consumeSuperLike(ctx, profiles, actorID); err != nil {
				return err
			}
		}

		if err := repository.NewSwipeRepository(tx).Upsert(ctx, actorID, targetID, swipeType); err != nil {
			return err
		}

		if swipeType.Positive() {
			res, err = e.detectMatch(ctx, tx, actorID, targetID)
			return err
		}
		return nil
	})
	if err != nil {
		return SwipeResult{}, e.fail(ctx, "record swipe", err)
	}

	e.invalidateLikeCounts(ctx, actorID, targetID)
	e.log.DebugContext(ctx, "swipe recorded",
		"actor", actorID, "target", targetID, "type", swipeType, "matched", res.Matched)
	return res, nil
}

// consumeSuperLike applies the day rollover, then takes one unit. Both steps
// are conditional UPDATEs, so two concurrent requests can never take the
// last unit twice.
func (e *Engine) consumeSuperLike(ctx context.Context, profiles *repository.ProfileRepository, profileID string) error {
	now := e.now()
	if _, err := profiles.ResetSuperLikesIfStale(ctx, profileID, e.startOfDay(now), now, DailySuperLikes); err != nil {
		return err
	}
	ok, err := profiles.ConsumeSuperLike(ctx, profileID)
	if err != nil {
		return err
	}
	if !ok {
		return svcErr.QuotaExhausted("no super-likes left today", e.nextReset(now))
	}
	return nil
}

// detectMatch runs after a positive swipe by actor on target, inside the
// swipe transaction. Only the caller whose insert created the row sees
// Matched; an existing match, active or not, is left alone.
func (e *Engine) detectMatch(ctx context.Context, tx *gorm.DB, actorID, targetID string) (SwipeResult, error) {
	liked, err := repository.NewSwipeRepository(tx).HasLiked(ctx, targetID, actorID)
	if err != nil || !liked {
		return SwipeResult{}, err
	}

	matches := repository.NewMatchRepository(tx)
	created, err := matches.CreateIfAbsent(ctx, actorID, targetID, e.now())
	if err != nil || !created {
		return SwipeResult{}, err
	}
	m, err := matches.FindByPair(ctx, actorID, targetID)
	if err != nil {
		return SwipeResult{}, err
	}
	e.log.InfoContext(ctx, "match created", "match", m.ID, "a", actorID, "b", targetID)
	return SwipeResult{Matched: true, MatchID: m.ID}, nil
}

// SuperLikeQuota reports today's remaining super-likes without writing: a
// stale reset stamp reads as a full quota.
func (e *Engine) SuperLikeQuota(ctx context.Context, profileID string) (Quota, error) {
	p, err := e.requireProfile(ctx, repository.NewProfileRepository(e.db), profileID)
	if err != nil {
		return Quota{}, e.fail(ctx, "super-like quota", err)
	}
	now := e.now()
	remaining := p.SuperLikesRemaining
	if p.LastSuperLikeReset.Before(e.startOfDay(now)) {
		remaining = DailySuperLikes
	}
	return Quota{Remaining: remaining, ResetsAt: e.nextReset(now)}, nil
}
