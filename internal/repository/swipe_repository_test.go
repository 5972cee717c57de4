package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comradezone/dating/internal/config"
	"github.com/comradezone/dating/internal/db"
	"github.com/comradezone/dating/internal/db/dbtest"
	"github.com/comradezone/dating/internal/repository"
	"github.com/comradezone/dating/internal/utils/pagination"
)

func TestUpsertSwipe_OverwritesType(t *testing.T) {
	ctx := context.Background()
	dbase := dbtest.Open(t)
	repo := repository.NewSwipeRepository(dbase)

	// insert pass
	require.NoError(t, repo.Upsert(ctx, "a", "b", db.SwipePass))
	// overturn to like
	require.NoError(t, repo.Upsert(ctx, "a", "b", db.SwipeLike))

	var swipes []db.Swipe
	require.NoError(t, dbase.Find(&swipes).Error)
	require.Len(t, swipes, 1)
	assert.Equal(t, db.SwipeLike, swipes[0].Type)
	assert.Equal(t, "a", swipes[0].ActorID)
	assert.Equal(t, "b", swipes[0].TargetID)
}

func TestHasLiked(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSwipeRepository(dbtest.Open(t))

	require.NoError(t, repo.Upsert(ctx, "a", "b", db.SwipeSuperLike))
	require.NoError(t, repo.Upsert(ctx, "c", "b", db.SwipePass))

	liked, err := repo.HasLiked(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = repo.HasLiked(ctx, "c", "b")
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestGetIncomingLikes_Filters(t *testing.T) {
	ctx := context.Background()
	dbase := dbtest.Open(t)
	repo := repository.NewSwipeRepository(dbase)
	blocks := repository.NewBlockRepository(dbase)

	// 1,2,3,4 liked 99
	require.NoError(t, repo.Upsert(ctx, "1", "99", db.SwipeLike))
	require.NoError(t, repo.Upsert(ctx, "2", "99", db.SwipeSuperLike))
	require.NoError(t, repo.Upsert(ctx, "3", "99", db.SwipeLike))
	require.NoError(t, repo.Upsert(ctx, "4", "99", db.SwipeLike))
	// 5 passed 99 → never an incoming like
	require.NoError(t, repo.Upsert(ctx, "5", "99", db.SwipePass))
	// 99 already acted on 2 → exclude
	require.NoError(t, repo.Upsert(ctx, "99", "2", db.SwipePass))
	// 3 blocked 99 → exclude
	require.NoError(t, blocks.Create(ctx, "3", "99"))

	swipes, next, err := repo.GetIncomingLikes(ctx, "99", nil, 10)
	require.NoError(t, err)
	assert.Nil(t, next)

	var actors []string
	for _, s := range swipes {
		actors = append(actors, s.ActorID)
	}
	assert.ElementsMatch(t, []string{"1", "4"}, actors)

	count, err := repo.CountIncomingLikes(ctx, "99")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGetIncomingLikes_Pagination(t *testing.T) {
	ctx := context.Background()
	dbase := dbtest.Open(t)
	repo := repository.NewSwipeRepository(dbase)

	base := time.Now().UTC().Truncate(time.Millisecond)
	for i, actor := range []string{"a", "b", "c", "d", "e"} {
		s := db.Swipe{ActorID: actor, TargetID: "x", Type: db.SwipeLike}
		require.NoError(t, dbase.Create(&s).Error)
		// distinct, increasing timestamps: e is the newest
		at := base.Add(time.Duration(i) * time.Second)
		require.NoError(t, dbase.Model(&db.Swipe{}).
			Where("actor_id = ? AND target_id = ?", actor, "x").
			UpdateColumn("updated_at", at).Error)
	}

	page1, next, err := repo.GetIncomingLikes(ctx, "x", nil, 2)
	require.NoError(t, err)
	require.NotNil(t, next)
	require.Len(t, page1, 2)
	assert.Equal(t, "e", page1[0].ActorID)
	assert.Equal(t, "d", page1[1].ActorID)

	page2, next, err := repo.GetIncomingLikes(ctx, "x", next, 2)
	require.NoError(t, err)
	require.NotNil(t, next)
	require.Len(t, page2, 2)
	assert.Equal(t, "c", page2[0].ActorID)
	assert.Equal(t, "b", page2[1].ActorID)

	page3, next, err := repo.GetIncomingLikes(ctx, "x", next, 2)
	require.NoError(t, err)
	assert.Nil(t, next)
	require.Len(t, page3, 1)
	assert.Equal(t, "a", page3[0].ActorID)
}

func TestGetIncomingLikes_BadToken(t *testing.T) {
	bad := "!!"
	_, _, err := repository.NewSwipeRepository(dbtest.Open(t)).GetIncomingLikes(context.Background(), "x", &bad, 5)
	assert.ErrorIs(t, err, pagination.ErrInvalidToken)
}

// openLikeProduction opens sqlite through db.NewDB so timestamps carry the
// same precision as a deployed service.
func openLikeProduction(t *testing.T) *likePager {
	t.Helper()
	cfg := config.New()
	cfg.DB.Driver = "sqlite"
	cfg.DB.DSN = fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	cfg.DB.LogLevel = "silent"
	cfg.DB.AutoMigrate = true

	dbase, err := db.NewDB(cfg)
	require.NoError(t, err)
	sqlDB, err := dbase.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return &likePager{repo: repository.NewSwipeRepository(dbase)}
}

type likePager struct {
	repo *repository.SwipeRepository
}

// drain pages through every incoming like of target and counts how often
// each actor shows up.
func (f *likePager) drain(t *testing.T, target string, pageSize int) map[string]int {
	t.Helper()
	seen := map[string]int{}
	var token *string
	for page := 0; ; page++ {
		require.Less(t, page, 1000, "pagination does not terminate")
		swipes, next, err := f.repo.GetIncomingLikes(context.Background(), target, token, pageSize)
		require.NoError(t, err)
		require.LessOrEqual(t, len(swipes), pageSize)
		for _, s := range swipes {
			seen[s.ActorID]++
		}
		if next == nil {
			return seen
		}
		token = next
	}
}

func TestGetIncomingLikes_BackToBackLikesAllReachable(t *testing.T) {
	ctx := context.Background()
	f := openLikeProduction(t)

	const likers = 60
	for i := 0; i < likers; i++ {
		require.NoError(t, f.repo.Upsert(ctx, fmt.Sprintf("a%03d", i), "me", db.SwipeLike))
	}

	seen := f.drain(t, "me", 5)
	assert.Len(t, seen, likers)
	for actor, n := range seen {
		assert.Equal(t, 1, n, "actor %s returned %d times", actor, n)
	}
}

func TestGetIncomingLikes_SameMillisecond(t *testing.T) {
	ctx := context.Background()
	dbase := dbtest.Open(t)
	repo := repository.NewSwipeRepository(dbase)

	base := time.Now().UTC().Truncate(time.Millisecond)
	actors := []string{"a", "b", "c", "d", "e", "f", "g"}
	for i, actor := range actors {
		require.NoError(t, repo.Upsert(ctx, actor, "x", db.SwipeLike))
		// all inside one millisecond; c and d share an instant
		at := base.Add(time.Duration(i*100) * time.Microsecond)
		if actor == "d" {
			at = base.Add(200 * time.Microsecond)
		}
		require.NoError(t, dbase.Model(&db.Swipe{}).
			Where("actor_id = ? AND target_id = ?", actor, "x").
			UpdateColumn("updated_at", at).Error)
	}

	seen := (&likePager{repo: repo}).drain(t, "x", 2)
	assert.Len(t, seen, len(actors))
	for actor, n := range seen {
		assert.Equal(t, 1, n, "actor %s returned %d times", actor, n)
	}

	page, _, err := repo.GetIncomingLikes(ctx, "x", nil, 3)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, []string{"g", "f", "e"}, []string{page[0].ActorID, page[1].ActorID, page[2].ActorID})
}

func TestGetIncomingLikes_RejectsNonPositiveLimit(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSwipeRepository(dbtest.Open(t))
	require.NoError(t, repo.Upsert(ctx, "a", "x", db.SwipeLike))

	for _, limit := range []int{0, -1} {
		assert.NotPanics(t, func() {
			_, _, err := repo.GetIncomingLikes(ctx, "x", nil, limit)
			assert.Error(t, err)
		})
	}
}
