package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID            string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	Slug          string          `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description   string          `gorm:"type:text" json:"description"`
	Price         decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	OriginalPrice decimal.Decimal `gorm:"type:decimal(16,2);default:0.00" json:"original_price"`
	CategoryID    string          `gorm:"size:36;index" json:"category_id"`
	Category      *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Images        []ProductImage  `json:"images"`
	SoldOut       bool            `gorm:"default:false" json:"sold_out"`
	IsFeatured    bool            `gorm:"default:false;index" json:"is_featured"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

type ProductImage struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID string    `gorm:"size:36;not null;index" json:"product_id"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	Position  int       `gorm:"default:0" json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (pi *ProductImage) BeforeCreate(tx *gorm.DB) (err error) {
	if pi.ID == "" {
		pi.ID = uuid.New().String()
	}
	return
}
