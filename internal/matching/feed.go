package matching

import (
	"context"
	"errors"
	"time"

	"github.com/comradezone/dating/internal/db"
	svcErr "github.com/comradezone/dating/internal/errors"
	"github.com/comradezone/dating/internal/repository"
	"github.com/comradezone/dating/internal/utils/pagination"
)

// IncomingLike is a pending like: the liker has not been swiped on back.
type IncomingLike struct {
	Profile   Profile
	SuperLike bool
	LikedAt   time.Time
}

// IncomingLikesPage is one page of IncomingLike. NextPageToken is empty on
// the last page.
type IncomingLikesPage struct {
	Likes         []IncomingLike
	NextPageToken string
}

// ListCandidates returns up to limit profiles the requester may swipe on,
// best-completed first. limit <= 0 means the configured default; larger
// values are capped at the configured maximum.
//
// A requester without a profile gets ProfileRequired. No candidates is an
// empty slice, not an error.
func (e *Engine) ListCandidates(ctx context.Context, requesterID string, limit int) ([]Profile, error) {
	profiles := repository.NewProfileRepository(e.db)
	me, err := e.requireProfile(ctx, profiles, requesterID)
	if err != nil {
		return nil, e.fail(ctx, "list candidates", err)
	}

	rows, err := profiles.ListCandidates(ctx, me, e.clampLimit(limit))
	if err != nil {
		return nil, e.fail(ctx, "list candidates", err)
	}
	out := make([]Profile, 0, len(rows))
	for i := range rows {
		out = append(out, newProfileView(&rows[i]))
	}
	return out, nil
}

// ListIncomingLikes pages through the profiles that liked profileID and have
// not been swiped on by it, most recent first. Blocked pairs never appear.
func (e *Engine) ListIncomingLikes(ctx context.Context, profileID, pageToken string) (IncomingLikesPage, error) {
	profiles := repository.NewProfileRepository(e.db)
	if _, err := e.requireProfile(ctx, profiles, profileID); err != nil {
		return IncomingLikesPage{}, e.fail(ctx, "list incoming likes", err)
	}

	var token *string
	if pageToken != "" {
		token = &pageToken
	}
	swipes, next, err := repository.NewSwipeRepository(e.db).GetIncomingLikes(ctx, profileID, token, e.pageSize)
	if errors.Is(err, pagination.ErrInvalidToken) {
		return IncomingLikesPage{}, svcErr.Validation("invalid page token",
			svcErr.FieldViolation{Field: "page_token", Description: "was not issued by this service"})
	}
	if err != nil {
		return IncomingLikesPage{}, e.fail(ctx, "list incoming likes", err)
	}

	ids := make([]string, 0, len(swipes))
	for _, s := range swipes {
		ids = append(ids, s.ActorID)
	}
	likers, err := profiles.FindByIDs(ctx, ids)
	if err != nil {
		return IncomingLikesPage{}, e.fail(ctx, "list incoming likes", err)
	}

	page := IncomingLikesPage{Likes: make([]IncomingLike, 0, len(swipes))}
	for _, s := range swipes {
		liker, ok := likers[s.ActorID]
		if !ok {
			continue
		}
		page.Likes = append(page.Likes, IncomingLike{
			Profile:   newProfileView(&liker),
			SuperLike: s.Type == db.SwipeSuperLike,
			LikedAt:   s.UpdatedAt,
		})
	}
	if next != nil {
		page.NextPageToken = *next
	}
	return page, nil
}

// CountIncomingLikes returns the number of pending likes.
// Cache-first strategy:
//  1. Read likes:incoming:count:<id> from Redis.
//  2. On a miss or a Redis failure, count in the database.
//  3. Write the fresh count back with the configured TTL.
//
// Writes that change the count invalidate the key, so a hit is at most as
// stale as a concurrent write.
func (e *Engine) CountIncomingLikes(ctx context.Context, profileID string) (int64, error) {
	if _, err := e.requireProfile(ctx, repository.NewProfileRepository(e.db), profileID); err != nil {
		return 0, e.fail(ctx, "count incoming likes", err)
	}

	if e.cache != nil {
		n, hit, err := e.cache.GetIncomingLikeCount(ctx, profileID)
		if err != nil {
			e.log.WarnContext(ctx, "like count cache read", "profile", profileID, "err", err)
		} else if hit {
			return n, nil
		}
	}

	count, err := repository.NewSwipeRepository(e.db).CountIncomingLikes(ctx, profileID)
	if err != nil {
		return 0, e.fail(ctx, "count incoming likes", err)
	}

	if e.cache != nil {
		if err := e.cache.SetIncomingLikeCount(ctx, profileID, count); err != nil {
			e.log.WarnContext(ctx, "like count cache write", "profile", profileID, "err", err)
		}
	}
	return count, nil
}
