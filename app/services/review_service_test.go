package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/DevarshLade/lade-studio/app/models"
	"github.com/DevarshLade/lade-studio/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(
		validator.New(),
		repositories.NewReviewRepository(db),
		repositories.NewProductRepository(db),
	)
}

func TestCreateReview(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	ctx := context.Background()

	pot := createTestProduct(t, db, "Hand Painted Pot", 450.00, false)

	review, err := svc.CreateReview(ctx, "user-1", ReviewInput{
		ProductID:  pot.ID,
		AuthorName: "Asha",
		Rating:     5,
		Comment:    "Lovely colors.",
		ImageURLs:  []string{"https://img.example.com/pot.jpg"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, review.ID)

	reviews, total, err := svc.ListReviews(ctx, pot.ID, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, reviews, 1)
	assert.Equal(t, []string{"https://img.example.com/pot.jpg"}, reviews[0].ImageURLs)
}

func TestCreateReviewValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	ctx := context.Background()

	pot := createTestProduct(t, db, "Hand Painted Pot", 450.00, false)

	t.Run("rating out of range", func(t *testing.T) {
		_, err := svc.CreateReview(ctx, "user-1", ReviewInput{
			ProductID:  pot.ID,
			AuthorName: "Asha",
			Rating:     6,
		})
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := svc.CreateReview(ctx, "user-1", ReviewInput{
			ProductID:  "nope",
			AuthorName: "Asha",
			Rating:     4,
		})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestCreateReviewEnforcesPerUserCap(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	ctx := context.Background()

	pot := createTestProduct(t, db, "Hand Painted Pot", 450.00, false)

	for i := 0; i < models.MaxReviewsPerProduct; i++ {
		_, err := svc.CreateReview(ctx, "user-1", ReviewInput{
			ProductID:  pot.ID,
			AuthorName: "Asha",
			Rating:     4,
			Comment:    fmt.Sprintf("review %d", i+1),
		})
		require.NoError(t, err)
	}

	_, err := svc.CreateReview(ctx, "user-1", ReviewInput{
		ProductID:  pot.ID,
		AuthorName: "Asha",
		Rating:     4,
	})
	assert.ErrorIs(t, err, ErrReviewLimitReached)

	// The cap is per user; a different user can still review.
	_, err = svc.CreateReview(ctx, "user-2", ReviewInput{
		ProductID:  pot.ID,
		AuthorName: "Ravi",
		Rating:     5,
	})
	assert.NoError(t, err)
}
