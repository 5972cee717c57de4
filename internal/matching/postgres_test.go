package matching_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comradezone/dating/internal/db"
	"github.com/comradezone/dating/internal/db/dbtest"
	svcErr "github.com/comradezone/dating/internal/errors"
	"github.com/comradezone/dating/internal/matching"
)

// These run against a real postgres so row locks and read-committed
// isolation are in play, unlike the single-connection sqlite fixture.

func TestPostgres_ConcurrentReciprocalLikesMatchOnce(t *testing.T) {
	gdb := dbtest.OpenPostgres(t)
	engine := matching.NewEngine(gdb, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		a := dbtest.NewProfile(t, gdb, "a", db.GenderMale)
		b := dbtest.NewProfile(t, gdb, "b", db.GenderFemale)

		var wg sync.WaitGroup
		results := make([]matching.SwipeResult, 2)
		errs := make([]error, 2)
		for j, pair := range [][2]string{{a.ID, b.ID}, {b.ID, a.ID}} {
			wg.Add(1)
			go func(j int, actor, target string) {
				defer wg.Done()
				results[j], errs[j] = engine.RecordSwipe(ctx, actor, target, db.SwipeLike)
			}(j, pair[0], pair[1])
		}
		wg.Wait()

		require.NoError(t, errs[0])
		require.NoError(t, errs[1])
		assert.True(t, results[0].Matched || results[1].Matched, "round %d produced no match", i)

		var n int64
		p1, p2 := db.NormalizePair(a.ID, b.ID)
		require.NoError(t, gdb.Model(&db.Match{}).Where("profile1_id = ? AND profile2_id = ?", p1, p2).Count(&n).Error)
		assert.Equal(t, int64(1), n)
	}
}

func TestPostgres_ConcurrentSuperLikesRespectQuota(t *testing.T) {
	gdb := dbtest.OpenPostgres(t)
	engine := matching.NewEngine(gdb, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	actor := dbtest.NewProfile(t, gdb, "actor", db.GenderMale)
	targets := make([]*db.Profile, 8)
	for i := range targets {
		targets[i] = dbtest.NewProfile(t, gdb, "t", db.GenderFemale)
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok        int
		exhausted int
	)
	for _, target := range targets {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := engine.RecordSwipe(ctx, actor.ID, id, db.SwipeSuperLike)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case svcErr.KindOf(err) == svcErr.KindQuotaExhausted:
				exhausted++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(target.ID)
	}
	wg.Wait()

	assert.Equal(t, matching.DailySuperLikes, ok)
	assert.Equal(t, len(targets)-matching.DailySuperLikes, exhausted)

	var stored db.Profile
	require.NoError(t, gdb.First(&stored, "id = ?", actor.ID).Error)
	assert.Zero(t, stored.SuperLikesRemaining)
}
