package matching

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/comradezone/dating/internal/db"
	svcErr "github.com/comradezone/dating/internal/errors"
	"github.com/comradezone/dating/internal/repository"
)

// Match is one active match as seen by one of its parties.
type Match struct {
	ID            string
	Other         Profile
	MatchedAt     time.Time
	LastMessageAt *time.Time
}

// ListMatches returns the active matches of profileID, most recent activity
// (last message, else match time) first.
func (e *Engine) ListMatches(ctx context.Context, profileID string) ([]Match, error) {
	profiles := repository.NewProfileRepository(e.db)
	if _, err := e.requireProfile(ctx, profiles, profileID); err != nil {
		return nil, e.fail(ctx, "list matches", err)
	}

	rows, err := repository.NewMatchRepository(e.db).ListActive(ctx, profileID)
	if err != nil {
		return nil, e.fail(ctx, "list matches", err)
	}

	otherIDs := make([]string, 0, len(rows))
	for i := range rows {
		other, _ := rows[i].OtherProfileID(profileID)
		otherIDs = append(otherIDs, other)
	}
	others, err := profiles.FindByIDs(ctx, otherIDs)
	if err != nil {
		return nil, e.fail(ctx, "list matches", err)
	}

	out := make([]Match, 0, len(rows))
	for i, m := range rows {
		other, ok := others[otherIDs[i]]
		if !ok {
			continue
		}
		out = append(out, Match{
			ID:            m.ID,
			Other:         newProfileView(&other),
			MatchedAt:     m.MatchedAt,
			LastMessageAt: m.LastMessageAt,
		})
	}
	return out, nil
}

// partyMatch loads a match the requester belongs to. Not being a party reads
// the same as the match not existing.
func (e *Engine) partyMatch(ctx context.Context, matches *repository.MatchRepository, matchID, profileID string) (*db.Match, error) {
	if matchID == "" || profileID == "" {
		return nil, svcErr.NotFound("match not found")
	}
	m, err := matches.GetByID(ctx, matchID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svcErr.NotFound("match not found")
	}
	if err != nil {
		return nil, err
	}
	if _, ok := m.OtherProfileID(profileID); !ok {
		return nil, svcErr.NotFound("match not found")
	}
	return m, nil
}

// Unmatch deactivates a match on behalf of one of its parties. History is
// kept. Unmatching an inactive match succeeds without changes.
func (e *Engine) Unmatch(ctx context.Context, matchID, requesterID string) error {
	matches := repository.NewMatchRepository(e.db)
	m, err := e.partyMatch(ctx, matches, matchID, requesterID)
	if err != nil {
		return e.fail(ctx, "unmatch", err)
	}
	if !m.Active {
		return nil
	}
	if err := matches.Deactivate(ctx, m.ID); err != nil {
		return e.fail(ctx, "unmatch", err)
	}
	e.log.InfoContext(ctx, "unmatched", "match", m.ID, "by", requesterID)
	return nil
}

// BlockProfile hides blocked from blocker and vice versa, and ends any match
// between them.
//
// Behavior:
//   - blocker == blocked → Validation.
//   - Missing blocker → ProfileRequired, missing blocked → NotFound.
//   - Both profile rows are locked first, the block row is written before
//     the match is deactivated, all in one transaction, so a concurrent
//     swipe on the pair waits and then sees the block.
//   - Blocking twice succeeds and changes nothing.
func (e *Engine) BlockProfile(ctx context.Context, blockerID, blockedID string) error {
	if blockerID == "" || blockedID == "" {
		return svcErr.Validation("profile ids are required",
			svcErr.FieldViolation{Field: "blocked_id", Description: "must not be empty"})
	}
	if blockerID == blockedID {
		return svcErr.Validation("cannot block yourself",
			svcErr.FieldViolation{Field: "blocked_id", Description: "must differ from the acting profile"})
	}

	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := e.lockPair(ctx, repository.NewProfileRepository(tx), blockerID, blockedID); err != nil {
			return err
		}
		if err := repository.NewBlockRepository(tx).Create(ctx, blockerID, blockedID); err != nil {
			return err
		}
		n, err := repository.NewMatchRepository(tx).DeactivatePair(ctx, blockerID, blockedID)
		if err != nil {
			return err
		}
		if n > 0 {
			e.log.InfoContext(ctx, "match ended by block", "blocker", blockerID, "blocked", blockedID)
		}
		return nil
	})
	if err != nil {
		return e.fail(ctx, "block profile", err)
	}

	e.invalidateLikeCounts(ctx, blockerID, blockedID)
	return nil
}

// TouchMatch records message activity on an active match. The messaging
// thread calls it so ListMatches can order by recency.
func (e *Engine) TouchMatch(ctx context.Context, matchID, profileID string) error {
	matches := repository.NewMatchRepository(e.db)
	m, err := e.partyMatch(ctx, matches, matchID, profileID)
	if err != nil {
		return e.fail(ctx, "touch match", err)
	}
	touched, err := matches.TouchLastMessage(ctx, m.ID, e.now())
	if err != nil {
		return e.fail(ctx, "touch match", err)
	}
	if !touched {
		return svcErr.NotFound("match is no longer active")
	}
	return nil
}
