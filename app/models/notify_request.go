package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductNotifyRequest records a "notify me when available" signup for a
// sold-out product. Duplicate (product, email) pairs are rejected by the index
// and treated as already-subscribed.
type ProductNotifyRequest struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID string    `gorm:"size:36;not null;uniqueIndex:idx_notify_product_email" json:"product_id"`
	Email     string    `gorm:"size:255;not null;uniqueIndex:idx_notify_product_email" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (n *ProductNotifyRequest) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return
}
