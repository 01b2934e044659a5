package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem snapshots the product price at purchase time. PriceAtPurchase is
// deliberately decoupled from the live Product.Price.
type OrderItem struct {
	ID              string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderID         string          `gorm:"size:36;not null;index" json:"order_id"`
	Order           *Order          `gorm:"foreignKey:OrderID;references:ID" json:"-"`
	ProductID       string          `gorm:"size:36;not null;index" json:"product_id"`
	Product         *Product        `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
	ProductName     string          `gorm:"size:255;not null" json:"product_name"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	PriceAtPurchase decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price_at_purchase"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"subtotal"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}
