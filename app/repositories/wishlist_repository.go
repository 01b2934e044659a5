package repositories

import (
	"context"
	"errors"

	"github.com/DevarshLade/lade-studio/app/models"
	"gorm.io/gorm"
)

type WishlistRepository interface {
	FindByUserID(ctx context.Context, userID string) ([]models.WishlistItem, error)
	Find(ctx context.Context, tx *gorm.DB, userID, productID string) (*models.WishlistItem, error)
	Create(ctx context.Context, tx *gorm.DB, item *models.WishlistItem) error
	Delete(ctx context.Context, tx *gorm.DB, userID, productID string) error
}

type gormWishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &gormWishlistRepository{db: db}
}

func (r *gormWishlistRepository) FindByUserID(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := r.db.WithContext(ctx).
		Preload("Product.Images").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *gormWishlistRepository) Find(ctx context.Context, tx *gorm.DB, userID, productID string) (*models.WishlistItem, error) {
	var item models.WishlistItem
	err := tx.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *gormWishlistRepository) Create(ctx context.Context, tx *gorm.DB, item *models.WishlistItem) error {
	return tx.WithContext(ctx).Create(item).Error
}

func (r *gormWishlistRepository) Delete(ctx context.Context, tx *gorm.DB, userID, productID string) error {
	return tx.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{}).Error
}
