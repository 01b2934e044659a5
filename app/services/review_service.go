package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/DevarshLade/lade-studio/app/models"
	"github.com/DevarshLade/lade-studio/app/repositories"
	"github.com/go-playground/validator/v10"
)

var ErrReviewLimitReached = errors.New("review limit reached for this product")

type ReviewInput struct {
	ProductID  string   `json:"product_id" validate:"required"`
	AuthorName string   `json:"author_name" validate:"required"`
	Rating     int      `json:"rating" validate:"required,min=1,max=5"`
	Comment    string   `json:"comment"`
	ImageURLs  []string `json:"image_urls"`
}

type ReviewService struct {
	validator   *validator.Validate
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepositoryImpl
}

func NewReviewService(
	validator *validator.Validate,
	reviewRepo repositories.ReviewRepository,
	productRepo repositories.ProductRepositoryImpl,
) *ReviewService {
	return &ReviewService{
		validator:   validator,
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// CreateReview checks eligibility by counting existing rows for the
// (user, product) pair before inserting. Concurrent submissions can still
// slip past the count; the cap is a business rule, not a hard constraint.
func (s *ReviewService) CreateReview(ctx context.Context, userID string, input ReviewInput) (*models.Review, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", input.ProductID, err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, input.ProductID)
	}

	count, err := s.reviewRepo.CountByUserAndProduct(ctx, userID, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to count existing reviews: %w", err)
	}
	if count >= models.MaxReviewsPerProduct {
		return nil, ErrReviewLimitReached
	}

	review := &models.Review{
		ProductID:  input.ProductID,
		UserID:     userID,
		AuthorName: input.AuthorName,
		Rating:     input.Rating,
		Comment:    input.Comment,
		ImageURLs:  input.ImageURLs,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) ListReviews(ctx context.Context, productID string, limit, offset int) ([]models.Review, int64, error) {
	return s.reviewRepo.FindByProductID(ctx, productID, limit, offset)
}
