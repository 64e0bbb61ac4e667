package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a uniquely named in-memory SQLite database and migrates
// the full schema into it.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, telegramID int64) *entity.User {
	t.Helper()

	user := &entity.User{TelegramID: telegramID, Username: "user", IsActive: true}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string) *entity.Product {
	t.Helper()
	ctx := context.Background()

	category := &entity.Category{Name: "Drinks"}
	require.NoError(t, NewCategoryRepository(db).Create(ctx, category))

	product := &entity.Product{
		CategoryID: category.ID,
		Name:       name,
		Price:      decimal.RequireFromString(price),
	}
	require.NoError(t, NewProductRepository(db).Create(ctx, product))

	return product
}
