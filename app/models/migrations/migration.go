package migrations

import (
	"github.com/DevarshLade/lade-studio/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.WishlistItem{},
		&models.UserAddress{},
		&models.CustomDesignRequest{},
		&models.ProductNotifyRequest{},
	)
}
