package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

// PaymentMethodCOD is the only payment method the store accepts.
const PaymentMethodCOD = "cod"

type Order struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderCode string `gorm:"size:255;unique;not null" json:"order_code"`
	UserID    string `gorm:"size:64;index" json:"user_id,omitempty"`

	CustomerName  string `gorm:"size:255;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:255" json:"customer_email"`
	CustomerPhone string `gorm:"size:20;not null" json:"customer_phone"`
	Address1      string `gorm:"type:text;not null" json:"address1"`
	Address2      string `gorm:"type:text" json:"address2"`
	City          string `gorm:"size:100;not null" json:"city"`
	State         string `gorm:"size:100;not null" json:"state"`
	Pincode       string `gorm:"size:10;not null" json:"pincode"`

	OrderItems    []OrderItem     `json:"order_items"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"subtotal"`
	ShippingCost  decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"shipping_cost"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"total_amount"`
	PaymentMethod string          `gorm:"size:20;not null" json:"payment_method"`
	Status        string          `gorm:"size:20;default:'Processing';index" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}
