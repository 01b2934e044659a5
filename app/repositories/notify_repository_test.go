package repositories

import (
	"context"
	"testing"

	"github.com/DevarshLade/lade-studio/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyCreateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotifyRepository(db)
	ctx := context.Background()

	req := &models.ProductNotifyRequest{ProductID: "prod-1", Email: "asha@example.com"}
	require.NoError(t, repo.Create(ctx, req))

	// The same (product, email) pair again is an already-subscribed no-op.
	again := &models.ProductNotifyRequest{ProductID: "prod-1", Email: "asha@example.com"}
	require.NoError(t, repo.Create(ctx, again))

	requests, err := repo.FindByProductID(ctx, "prod-1")
	require.NoError(t, err)
	assert.Len(t, requests, 1)

	exists, err := repo.Exists(ctx, "prod-1", "asha@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, "prod-1", "ravi@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNotifyDifferentProductsAreIndependent(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotifyRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.ProductNotifyRequest{ProductID: "prod-1", Email: "asha@example.com"}))
	require.NoError(t, repo.Create(ctx, &models.ProductNotifyRequest{ProductID: "prod-2", Email: "asha@example.com"}))

	requests, err := repo.FindByProductID(ctx, "prod-2")
	require.NoError(t, err)
	assert.Len(t, requests, 1)
}
