package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WishlistItem links a user to a liked product. The composite unique index
// makes the toggle safe against concurrent double-inserts.
type WishlistItem struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID    string    `gorm:"size:64;not null;uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	ProductID string    `gorm:"size:36;not null;uniqueIndex:idx_wishlist_user_product" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (w *WishlistItem) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return
}
