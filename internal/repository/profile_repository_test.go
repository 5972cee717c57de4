package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/comradezone/dating/internal/db"
	"github.com/comradezone/dating/internal/db/dbtest"
	"github.com/comradezone/dating/internal/repository"
)

func candidateIDs(profiles []db.Profile) []string {
	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestListCandidates_Eligibility(t *testing.T) {
	ctx := context.Background()
	dbase := dbtest.Open(t)
	repo := repository.NewProfileRepository(dbase)
	swipes := repository.NewSwipeRepository(dbase)
	blocks := repository.NewBlockRepository(dbase)

	// A: male seeking female, 18–25
	a := dbtest.NewProfile(t, dbase, "A", db.GenderMale,
		dbtest.Seeking(db.GenderFemale), dbtest.WithAgeRange(18, 25))

	ok := dbtest.NewProfile(t, dbase, "eligible", db.GenderFemale, dbtest.WithAge(20))
	dbtest.NewProfile(t, dbase, "too old", db.GenderFemale, dbtest.WithAge(26))
	dbtest.NewProfile(t, dbase, "wrong gender", db.GenderMale, dbtest.WithAge(20))
	dbtest.NewProfile(t, dbase, "not seeking men", db.GenderFemale,
		dbtest.WithAge(20), dbtest.Seeking(db.GenderFemale))
	dbtest.NewProfile(t, dbase, "hidden", db.GenderFemale, dbtest.WithAge(20), dbtest.Hidden())
	swiped := dbtest.NewProfile(t, dbase, "already passed", db.GenderFemale, dbtest.WithAge(20))
	blockedByA := dbtest.NewProfile(t, dbase, "blocked by A", db.GenderFemale, dbtest.WithAge(20))
	blockingA := dbtest.NewProfile(t, dbase, "blocks A", db.GenderFemale, dbtest.WithAge(20))
	likesA := dbtest.NewProfile(t, dbase, "liked A", db.GenderFemale, dbtest.WithAge(22))

	require.NoError(t, swipes.Upsert(ctx, a.ID, swiped.ID, db.SwipePass))
	require.NoError(t, blocks.Create(ctx, a.ID, blockedByA.ID))
	require.NoError(t, blocks.Create(ctx, blockingA.ID, a.ID))
	// incoming likes do not hide a candidate
	require.NoError(t, swipes.Upsert(ctx, likesA.ID, a.ID, db.SwipeLike))

	got, err := repo.ListCandidates(ctx, a, 50)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{ok.ID, likesA.ID}, candidateIDs(got))
}

func TestListCandidates_OrderAndLimit(t *testing.T) {
	ctx := context.Background()
	dbase := dbtest.Open(t)
	repo := repository.NewProfileRepository(dbase)

	me := dbtest.NewProfile(t, dbase, "me", db.GenderNonBinary)
	low := dbtest.NewProfile(t, dbase, "low", db.GenderFemale, dbtest.WithCompleteness(20))
	high := dbtest.NewProfile(t, dbase, "high", db.GenderMale, dbtest.WithCompleteness(100))
	olderMid := dbtest.NewProfile(t, dbase, "mid-older", db.GenderFemale, dbtest.WithCompleteness(60))
	newerMid := dbtest.NewProfile(t, dbase, "mid-newer", db.GenderFemale, dbtest.WithCompleteness(60))
	require.NoError(t, dbase.Model(olderMid).UpdateColumn("created_at", time.Now().UTC().Add(-time.Hour)).Error)

	got, err := repo.ListCandidates(ctx, me, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{high.ID, newerMid.ID, olderMid.ID, low.ID}, candidateIDs(got))

	got, err = repo.ListCandidates(ctx, me, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{high.ID, newerMid.ID}, candidateIDs(got))
}

func TestListCandidates_EmptySoughtSet(t *testing.T) {
	dbase := dbtest.Open(t)
	me := dbtest.NewProfile(t, dbase, "me", db.GenderMale, dbtest.Seeking())
	dbtest.NewProfile(t, dbase, "other", db.GenderFemale)

	got, err := repository.NewProfileRepository(dbase).ListCandidates(context.Background(), me, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSuperLikeQuota_ConditionalUpdates(t *testing.T) {
	ctx := context.Background()
	dbase := dbtest.Open(t)
	repo := repository.NewProfileRepository(dbase)

	now := time.Now().UTC()
	startOfDay := now.Truncate(24 * time.Hour)
	yesterday := startOfDay.Add(-time.Hour)
	p := dbtest.NewProfile(t, dbase, "p", db.GenderFemale, dbtest.WithSuperLikes(0, yesterday))

	// exhausted: cannot consume
	consumed, err := repo.ConsumeSuperLike(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, consumed)

	// stale → reset to 3 exactly once
	reset, err := repo.ResetSuperLikesIfStale(ctx, p.ID, startOfDay, now, 3)
	require.NoError(t, err)
	assert.True(t, reset)
	reset, err = repo.ResetSuperLikesIfStale(ctx, p.ID, startOfDay, now, 3)
	require.NoError(t, err)
	assert.False(t, reset)

	for i := 0; i < 3; i++ {
		consumed, err = repo.ConsumeSuperLike(ctx, p.ID)
		require.NoError(t, err)
		assert.True(t, consumed)
	}
	consumed, err = repo.ConsumeSuperLike(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, consumed)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.SuperLikesRemaining)
}

func TestProfile_GetAndUpdate(t *testing.T) {
	ctx := context.Background()
	dbase := dbtest.Open(t)
	repo := repository.NewProfileRepository(dbase)

	p := dbtest.NewProfile(t, dbase, "before", db.GenderFemale, dbtest.WithSuperLikes(1, time.Now()))

	p.DisplayName = "after"
	p.ShowMe = false
	p.SuperLikesRemaining = 3 // must not be written by UpdateAttributes
	require.NoError(t, repo.UpdateAttributes(ctx, p))

	got, err := repo.GetByAccountID(ctx, p.AccountID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.DisplayName)
	assert.False(t, got.ShowMe)
	assert.Equal(t, 1, got.SuperLikesRemaining)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	byID, err := repo.FindByIDs(ctx, []string{p.ID, "missing"})
	require.NoError(t, err)
	assert.Len(t, byID, 1)
	assert.Equal(t, "after", byID[p.ID].DisplayName)
}
