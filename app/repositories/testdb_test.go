package repositories

import (
	"fmt"
	"testing"

	"github.com/DevarshLade/lade-studio/app/models/migrations"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
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
