package services

import (
	"context"
	"testing"

	"github.com/DevarshLade/lade-studio/app/models"
	"github.com/DevarshLade/lade-studio/app/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createProductWithSlug(t *testing.T, db *gorm.DB, name, slug string) *models.Product {
	t.Helper()

	product := &models.Product{
		ID:    uuid.New().String(),
		Name:  name,
		Slug:  slug,
		Price: decimal.NewFromInt(100),
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestRepairSlugs(t *testing.T) {
	db := newTestDB(t)
	svc := NewSlugService(repositories.NewProductRepository(db))
	ctx := context.Background()

	clean := createProductWithSlug(t, db, "Hand Painted Pot", "hand-painted-pot")
	messy := createProductWithSlug(t, db, "Warli Art!!", "Warli Art!!")
	blank := createProductWithSlug(t, db, "Terracotta Diya", " ")

	result, err := svc.RepairSlugs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Scanned)
	assert.Equal(t, 2, result.Repaired)

	var got models.Product
	require.NoError(t, db.First(&got, "id = ?", messy.ID).Error)
	assert.Equal(t, "warli-art", got.Slug)

	got = models.Product{}
	require.NoError(t, db.First(&got, "id = ?", blank.ID).Error)
	assert.Equal(t, "terracotta-diya", got.Slug)

	got = models.Product{}
	require.NoError(t, db.First(&got, "id = ?", clean.ID).Error)
	assert.Equal(t, "hand-painted-pot", got.Slug)
}

func TestRepairSlugsDeduplicates(t *testing.T) {
	db := newTestDB(t)
	svc := NewSlugService(repositories.NewProductRepository(db))
	ctx := context.Background()

	createProductWithSlug(t, db, "Hand Painted Pot", "hand-painted-pot")
	dupe := createProductWithSlug(t, db, "Hand Painted Pot", "Hand Painted Pot")

	result, err := svc.RepairSlugs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Repaired)

	var got models.Product
	require.NoError(t, db.First(&got, "id = ?", dupe.ID).Error)
	assert.Equal(t, "hand-painted-pot-2", got.Slug)
}

func TestRepairSlugsIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewSlugService(repositories.NewProductRepository(db))
	ctx := context.Background()

	createProductWithSlug(t, db, "Hand Painted Pot", "Hand Painted Pot")
	createProductWithSlug(t, db, "Hand Painted Pot", "totally wrong")

	first, err := svc.RepairSlugs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Repaired)

	// A second pass finds nothing left to fix, suffixed duplicates included.
	second, err := svc.RepairSlugs(ctx)
	require.NoError(t, err)
	assert.Zero(t, second.Repaired)
}

func TestRepairSlugsUsesFallbackForUnnameableProducts(t *testing.T) {
	db := newTestDB(t)
	svc := NewSlugService(repositories.NewProductRepository(db))
	ctx := context.Background()

	nameless := createProductWithSlug(t, db, "!!!", "???")

	_, err := svc.RepairSlugs(ctx)
	require.NoError(t, err)

	var got models.Product
	require.NoError(t, db.First(&got, "id = ?", nameless.ID).Error)
	assert.Equal(t, "unnamed-product", got.Slug)
}
