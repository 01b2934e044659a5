package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/DevarshLade/lade-studio/app/models"
	"gorm.io/gorm"
)

type AddressRepository interface {
	CreateAddress(ctx context.Context, address *models.UserAddress) error
	FindAddressByID(ctx context.Context, id string) (*models.UserAddress, error)
	FindAddressesByUserID(ctx context.Context, userID string) ([]models.UserAddress, error)
	UpdateAddress(ctx context.Context, address *models.UserAddress) error
	DeleteAddress(ctx context.Context, id string) error
	SetDefaultAddress(ctx context.Context, userID, addressID string) error
	GetDefaultAddressByUserID(ctx context.Context, userID string) (*models.UserAddress, error)
}

type GormAddressRepository struct {
	db *gorm.DB
}

func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

func (r *GormAddressRepository) CreateAddress(ctx context.Context, address *models.UserAddress) error {
	if address.IsDefault {

		err := r.db.WithContext(ctx).Model(&models.UserAddress{}).
			Where("user_id = ? AND id != ?", address.UserID, address.ID).
			Update("is_default", false).Error
		if err != nil {
			log.Printf("GormAddressRepository: Failed to unset default status for other addresses for user %s: %v", address.UserID, err)
			return fmt.Errorf("failed to unset old default address: %w", err)
		}
	} else {

		var count int64
		r.db.WithContext(ctx).Model(&models.UserAddress{}).Where("user_id = ?", address.UserID).Count(&count)
		if count == 0 {
			address.IsDefault = true
		}
	}

	if err := r.db.WithContext(ctx).Create(address).Error; err != nil {
		log.Printf("GormAddressRepository: Failed to create address for user %s: %v", address.UserID, err)
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

func (r *GormAddressRepository) FindAddressByID(ctx context.Context, id string) (*models.UserAddress, error) {
	var address models.UserAddress
	if err := r.db.WithContext(ctx).First(&address, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find address by ID: %w", err)
	}
	return &address, nil
}

func (r *GormAddressRepository) FindAddressesByUserID(ctx context.Context, userID string) ([]models.UserAddress, error) {
	var addresses []models.UserAddress
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("is_default DESC, created_at DESC").Find(&addresses).Error; err != nil {
		return nil, fmt.Errorf("failed to find addresses by user ID: %w", err)
	}
	return addresses, nil
}

func (r *GormAddressRepository) UpdateAddress(ctx context.Context, address *models.UserAddress) error {
	if address.IsDefault {

		err := r.db.WithContext(ctx).Model(&models.UserAddress{}).
			Where("user_id = ? AND id != ?", address.UserID, address.ID).
			Update("is_default", false).Error
		if err != nil {
			return fmt.Errorf("failed to unset old default address during update: %w", err)
		}
	}
	if err := r.db.WithContext(ctx).Save(address).Error; err != nil {
		return fmt.Errorf("failed to update address: %w", err)
	}
	return nil
}

func (r *GormAddressRepository) DeleteAddress(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.UserAddress{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	return nil
}

// SetDefaultAddress performs the clear-then-set two-step inside one
// transaction so the user never ends up with zero or two defaults.
func (r *GormAddressRepository) SetDefaultAddress(ctx context.Context, userID, addressID string) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Model(&models.UserAddress{}).Where("user_id = ?", userID).Update("is_default", false).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to unset existing default addresses: %w", err)
	}

	result := tx.Model(&models.UserAddress{}).Where("id = ? AND user_id = ?", addressID, userID).Update("is_default", true)
	if result.Error != nil {
		tx.Rollback()
		return fmt.Errorf("failed to set new default address: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return fmt.Errorf("address %s not found for user", addressID)
	}

	return tx.Commit().Error
}

func (r *GormAddressRepository) GetDefaultAddressByUserID(ctx context.Context, userID string) (*models.UserAddress, error) {
	var address models.UserAddress
	err := r.db.WithContext(ctx).Where("user_id = ? AND is_default = ?", userID, true).First(&address).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get default address: %w", err)
	}
	return &address, nil
}
