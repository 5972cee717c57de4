package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comradezone/dating/internal/db/dbtest"
	"github.com/comradezone/dating/internal/repository"
)

func TestCreateIfAbsent_OncePerUnorderedPair(t *testing.T) {
	ctx := context.Background()
	dbase := dbtest.Open(t)
	repo := repository.NewMatchRepository(dbase)
	now := time.Now()

	created, err := repo.CreateIfAbsent(ctx, "b", "a", now)
	require.NoError(t, err)
	assert.True(t, created)

	// reversed order is the same pair
	created, err = repo.CreateIfAbsent(ctx, "a", "b", now)
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	require.NoError(t, dbase.Table("matches").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	m, err := repo.FindByPair(ctx, "b", "a")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "a", m.Profile1ID)
	assert.Equal(t, "b", m.Profile2ID)
	assert.True(t, m.Active)
}

func TestDeactivateAndList(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMatchRepository(dbtest.Open(t))
	now := time.Now()

	_, err := repo.CreateIfAbsent(ctx, "me", "x", now.Add(-2*time.Hour))
	require.NoError(t, err)
	_, err = repo.CreateIfAbsent(ctx, "y", "me", now.Add(-time.Hour))
	require.NoError(t, err)
	_, err = repo.CreateIfAbsent(ctx, "me", "z", now.Add(-30*time.Minute))
	require.NoError(t, err)

	xm, err := repo.FindByPair(ctx, "me", "x")
	require.NoError(t, err)
	touched, err := repo.TouchLastMessage(ctx, xm.ID, now)
	require.NoError(t, err)
	assert.True(t, touched)

	n, err := repo.DeactivatePair(ctx, "z", "me")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = repo.DeactivatePair(ctx, "z", "me")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	list, err := repo.ListActive(ctx, "me")
	require.NoError(t, err)
	require.Len(t, list, 2)
	// x has the freshest activity (message), then y (matched an hour ago)
	other0, _ := list[0].OtherProfileID("me")
	other1, _ := list[1].OtherProfileID("me")
	assert.Equal(t, "x", other0)
	assert.Equal(t, "y", other1)

	zm, err := repo.FindByPair(ctx, "me", "z")
	require.NoError(t, err)
	touched, err = repo.TouchLastMessage(ctx, zm.ID, now)
	require.NoError(t, err)
	assert.False(t, touched, "inactive match cannot be touched")

	require.NoError(t, repo.Deactivate(ctx, xm.ID))
	require.NoError(t, repo.Deactivate(ctx, xm.ID))
	got, err := repo.GetByID(ctx, xm.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestBlocks(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBlockRepository(dbtest.Open(t))

	require.NoError(t, repo.Create(ctx, "a", "b"))
	require.NoError(t, repo.Create(ctx, "a", "b"))

	exists, err := repo.ExistsBetween(ctx, "b", "a")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsBetween(ctx, "a", "c")
	require.NoError(t, err)
	assert.False(t, exists)
}
