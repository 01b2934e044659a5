package services

import (
	"fmt"
	"testing"

	"github.com/DevarshLade/lade-studio/app/helpers"
	"github.com/DevarshLade/lade-studio/app/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DevarshLade/lade-studio/app/models/migrations"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A plain ":memory:" DSN gives every pooled connection its own empty
	// database; the shared-cache DSN keeps all of them on one database so
	// transactions and repository reads see the same tables.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price float64, soldOut bool) *models.Product {
	t.Helper()

	product := &models.Product{
		ID:      uuid.New().String(),
		Name:    name,
		Slug:    helpers.GenerateSlug(name + "-" + uuid.NewString()[:6]),
		Price:   decimal.NewFromFloat(price),
		SoldOut: soldOut,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
