package fakers

import (
	"math/rand"
	"time"

	"github.com/DevarshLade/lade-studio/app/helpers"
	"github.com/DevarshLade/lade-studio/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var categoryNames = []string{
	"Paintings",
	"Pots",
	"Fridge Magnets",
	"Hand Painted Jewelry",
	"Home Decor",
}

func CategoryNames() []string {
	return categoryNames
}

func CategoryFaker(db *gorm.DB, name string) *models.Category {
	return &models.Category{
		ID:        uuid.New().String(),
		Name:      name,
		Slug:      helpers.GenerateSlug(name),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func ProductFaker(db *gorm.DB, category *models.Category) *models.Product {
	name := faker.Word() + " " + faker.Word()

	productID := uuid.New().String()
	price := decimal.NewFromInt(int64(rand.Intn(4500) + 499))

	numImages := rand.Intn(3) + 1
	productImages := make([]models.ProductImage, numImages)
	for i := 0; i < numImages; i++ {
		productImages[i] = models.ProductImage{
			ID:        uuid.New().String(),
			ProductID: productID,
			URL:       "/images/products/placeholder.jpg",
			Position:  i,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
	}

	return &models.Product{
		ID:            productID,
		Name:          name,
		Slug:          helpers.GenerateSlug(name + "-" + uuid.NewString()[:6]),
		Description:   faker.Paragraph(),
		Price:         price,
		OriginalPrice: price.Add(decimal.NewFromInt(int64(rand.Intn(500)))),
		CategoryID:    category.ID,
		Images:        productImages,
		SoldOut:       rand.Intn(10) == 0,
		IsFeatured:    rand.Intn(4) == 0,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}
