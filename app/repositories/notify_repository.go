package repositories

import (
	"context"
	"errors"

	"github.com/DevarshLade/lade-studio/app/models"
	"gorm.io/gorm"
)

type NotifyRepository interface {
	Create(ctx context.Context, req *models.ProductNotifyRequest) error
	Exists(ctx context.Context, productID, email string) (bool, error)
	FindByProductID(ctx context.Context, productID string) ([]models.ProductNotifyRequest, error)
}

type gormNotifyRepository struct {
	db *gorm.DB
}

func NewNotifyRepository(db *gorm.DB) NotifyRepository {
	return &gormNotifyRepository{db: db}
}

func (r *gormNotifyRepository) Create(ctx context.Context, req *models.ProductNotifyRequest) error {
	err := r.db.WithContext(ctx).Create(req).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		// Already subscribed; idempotent success.
		return nil
	}
	return err
}

func (r *gormNotifyRepository) Exists(ctx context.Context, productID, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ProductNotifyRequest{}).
		Where("product_id = ? AND email = ?", productID, email).
		Count(&count).Error
	return count > 0, err
}

func (r *gormNotifyRepository) FindByProductID(ctx context.Context, productID string) ([]models.ProductNotifyRequest, error) {
	var requests []models.ProductNotifyRequest
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
