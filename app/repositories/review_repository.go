package repositories

import (
	"context"

	"github.com/DevarshLade/lade-studio/app/models"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	FindByProductID(ctx context.Context, productID string, limit, offset int) ([]models.Review, int64, error)
	CountByUserAndProduct(ctx context.Context, userID, productID string) (int64, error)
	RatingSummary(ctx context.Context, productID string) (count int64, average float64, err error)
}

type gormReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &gormReviewRepository{db: db}
}

func (r *gormReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *gormReviewRepository) FindByProductID(ctx context.Context, productID string, limit, offset int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Review{}).Where("product_id = ?", productID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error

	return reviews, total, err
}

func (r *gormReviewRepository) RatingSummary(ctx context.Context, productID string) (int64, float64, error) {
	var summary struct {
		Count   int64
		Average float64
	}
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS average").
		Where("product_id = ?", productID).
		Scan(&summary).Error
	return summary.Count, summary.Average, err
}

func (r *gormReviewRepository) CountByUserAndProduct(ctx context.Context, userID, productID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count, err
}
