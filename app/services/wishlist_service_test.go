package services

import (
	"context"
	"testing"

	"github.com/DevarshLade/lade-studio/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newWishlistService(db *gorm.DB) *WishlistService {
	return NewWishlistService(
		db,
		repositories.NewWishlistRepository(db),
		repositories.NewProductRepository(db),
	)
}

func TestWishlistToggle(t *testing.T) {
	db := newTestDB(t)
	svc := newWishlistService(db)
	ctx := context.Background()

	pot := createTestProduct(t, db, "Hand Painted Pot", 450.00, false)

	inWishlist, err := svc.Toggle(ctx, "user-1", pot.ID)
	require.NoError(t, err)
	assert.True(t, inWishlist)

	items, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, pot.ID, items[0].ProductID)

	// Toggling again removes the entry.
	inWishlist, err = svc.Toggle(ctx, "user-1", pot.ID)
	require.NoError(t, err)
	assert.False(t, inWishlist)

	items, err = svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestWishlistToggleUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newWishlistService(db)

	_, err := svc.Toggle(context.Background(), "user-1", "nope")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestWishlistIsPerUser(t *testing.T) {
	db := newTestDB(t)
	svc := newWishlistService(db)
	ctx := context.Background()

	pot := createTestProduct(t, db, "Hand Painted Pot", 450.00, false)

	_, err := svc.Toggle(ctx, "user-1", pot.ID)
	require.NoError(t, err)

	items, err := svc.List(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, items)
}
