package services

import (
	"context"
	"fmt"

	"github.com/DevarshLade/lade-studio/app/models"
	"github.com/DevarshLade/lade-studio/app/repositories"
	"gorm.io/gorm"
)

type WishlistService struct {
	db           *gorm.DB
	wishlistRepo repositories.WishlistRepository
	productRepo  repositories.ProductRepositoryImpl
}

func NewWishlistService(
	db *gorm.DB,
	wishlistRepo repositories.WishlistRepository,
	productRepo repositories.ProductRepositoryImpl,
) *WishlistService {
	return &WishlistService{
		db:           db,
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// Toggle flips wishlist membership for (user, product) and returns the new
// state. The check and the insert-or-delete run in one transaction, and the
// composite unique index catches any concurrent double-insert, so the legacy
// non-atomic client fallback is gone.
func (s *WishlistService) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return false, fmt.Errorf("failed to get product %s: %w", productID, err)
	}
	if product == nil {
		return false, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	existing, err := s.wishlistRepo.Find(ctx, tx, userID, productID)
	if err != nil {
		tx.Rollback()
		return false, fmt.Errorf("failed to check wishlist membership: %w", err)
	}

	var inWishlist bool
	if existing != nil {
		if err := s.wishlistRepo.Delete(ctx, tx, userID, productID); err != nil {
			tx.Rollback()
			return false, fmt.Errorf("failed to remove wishlist item: %w", err)
		}
		inWishlist = false
	} else {
		item := &models.WishlistItem{UserID: userID, ProductID: productID}
		if err := s.wishlistRepo.Create(ctx, tx, item); err != nil {
			tx.Rollback()
			return false, fmt.Errorf("failed to add wishlist item: %w", err)
		}
		inWishlist = true
	}

	if err := tx.Commit().Error; err != nil {
		return false, fmt.Errorf("failed to commit wishlist toggle: %w", err)
	}
	return inWishlist, nil
}

func (s *WishlistService) List(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	return s.wishlistRepo.FindByUserID(ctx, userID)
}
