package repositories

import (
	"context"
	"testing"

	"github.com/DevarshLade/lade-studio/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewCompositeIndexExists(t *testing.T) {
	db := newTestDB(t)

	// Eligibility counting queries on (product_id, user_id) rely on this
	// composite index, as does the wishlist toggle on its own pair.
	assert.True(t, db.Migrator().HasIndex(&models.Review{}, "idx_reviews_user_product"))
	assert.True(t, db.Migrator().HasIndex(&models.WishlistItem{}, "idx_wishlist_user_product"))
}

func TestCountByUserAndProduct(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &models.Review{
			ProductID:  "prod-1",
			UserID:     "user-1",
			AuthorName: "Asha",
			Rating:     4,
		}))
	}
	require.NoError(t, repo.Create(ctx, &models.Review{
		ProductID:  "prod-1",
		UserID:     "user-2",
		AuthorName: "Ravi",
		Rating:     5,
	}))

	count, err := repo.CountByUserAndProduct(ctx, "user-1", "prod-1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	count, err = repo.CountByUserAndProduct(ctx, "user-1", "prod-2")
	require.NoError(t, err)
	assert.Zero(t, count)
}
