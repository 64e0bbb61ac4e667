package postgres

import (
	"context"
	"testing"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
	"github.com/Dim-Aks/Bot-shop/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_LineLifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCartRepository(db)

	user := seedUser(t, db, 111)
	product := seedProduct(t, db, "Latte", "250.50")

	_, err := repo.FindLineForUpdate(ctx, user.ID, product.ID)
	require.ErrorIs(t, err, repository.ErrCartLineNotFound)

	line := &entity.CartLine{
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  2,
		Price:     product.Price,
	}
	require.NoError(t, repo.Create(ctx, line))
	require.NotZero(t, line.ID)

	found, err := repo.FindLineForUpdate(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, line.ID, found.ID)
	assert.Equal(t, 2, found.Quantity)
	assert.True(t, found.Price.Equal(decimal.RequireFromString("250.50")))

	require.NoError(t, repo.UpdateQuantity(ctx, line.ID, 5))

	found, err = repo.FindLineForUpdate(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, found.Quantity)
}

func TestCartRepository_DuplicateLineRejected(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCartRepository(db)

	user := seedUser(t, db, 111)
	product := seedProduct(t, db, "Latte", "250.50")

	first := &entity.CartLine{UserID: user.ID, ProductID: product.ID, Quantity: 1, Price: product.Price}
	require.NoError(t, repo.Create(ctx, first))

	second := &entity.CartLine{UserID: user.ID, ProductID: product.ID, Quantity: 1, Price: product.Price}
	assert.Error(t, repo.Create(ctx, second))
}

func TestCartRepository_FetchItemsJoinsProduct(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCartRepository(db)

	user := seedUser(t, db, 111)
	product := seedProduct(t, db, "Latte", "250.50")
	product.Photo = "media/latte.jpg"
	require.NoError(t, NewProductRepository(db).Update(ctx, product))

	require.NoError(t, repo.Create(ctx, &entity.CartLine{
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  2,
		Price:     decimal.RequireFromString("199.99"), // Older snapshot than the catalog price.
	}))

	items, err := repo.FetchItems(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Latte", items[0].Name)
	assert.Equal(t, "media/latte.jpg", items[0].Photo)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("199.99")))
	assert.True(t, items[0].Subtotal().Equal(decimal.RequireFromString("399.98")))
}

func TestCartRepository_DeleteLineIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCartRepository(db)

	user := seedUser(t, db, 111)
	product := seedProduct(t, db, "Latte", "250.50")

	line := &entity.CartLine{UserID: user.ID, ProductID: product.ID, Quantity: 1, Price: product.Price}
	require.NoError(t, repo.Create(ctx, line))

	require.NoError(t, repo.DeleteLine(ctx, line.ID))
	// A second delete of the same line still succeeds.
	require.NoError(t, repo.DeleteLine(ctx, line.ID))

	items, err := repo.FetchItems(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartRepository_DeleteByUserLeavesOthersAlone(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCartRepository(db)

	alice := seedUser(t, db, 111)
	bob := seedUser(t, db, 222)
	product := seedProduct(t, db, "Latte", "250.50")

	require.NoError(t, repo.Create(ctx, &entity.CartLine{
		UserID: alice.ID, ProductID: product.ID, Quantity: 1, Price: product.Price}))
	require.NoError(t, repo.Create(ctx, &entity.CartLine{
		UserID: bob.ID, ProductID: product.ID, Quantity: 3, Price: product.Price}))

	require.NoError(t, repo.DeleteByUser(ctx, alice.ID))

	aliceItems, err := repo.FetchItems(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, aliceItems)

	bobItems, err := repo.FetchItems(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, bobItems, 1)
}
