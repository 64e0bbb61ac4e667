package postgres

import (
	"context"
	"testing"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
	"github.com/Dim-Aks/Bot-shop/internal/domain/repository"
	"github.com/Dim-Aks/Bot-shop/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitPersistsAllWrites(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, 111)
	product := seedProduct(t, db, "Latte", "250.50")

	tm := NewTransactionManager(db)
	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewCartRepository().Create(ctx, &entity.CartLine{
			UserID:    user.ID,
			ProductID: product.ID,
			Quantity:  1,
			Price:     product.Price,
		})
	})
	require.NoError(t, err)

	items, err := NewCartRepository(db).FetchItems(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestTransactionManager_ErrorRollsBackAllWrites(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, 111)
	product := seedProduct(t, db, "Latte", "250.50")

	boom := errors.New("boom")
	tm := NewTransactionManager(db)
	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewCartRepository().Create(ctx, &entity.CartLine{
			UserID:    user.ID,
			ProductID: product.ID,
			Quantity:  1,
			Price:     product.Price,
		}); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	items, err := NewCartRepository(db).FetchItems(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUserRepository_ListActiveFiltersInactive(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	active := seedUser(t, db, 111)
	inactive := seedUser(t, db, 222)
	inactive.IsActive = false
	require.NoError(t, repo.Update(ctx, inactive))

	users, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, active.TelegramID, users[0].TelegramID)
}

func TestUserRepository_FindByTelegramID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	seedUser(t, db, 111)

	user, err := repo.FindByTelegramID(ctx, 111)
	require.NoError(t, err)
	assert.Equal(t, int64(111), user.TelegramID)

	_, err = repo.FindByTelegramID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestMailingRepository_MarkSentFlipsFlag(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewMailingRepository(db)

	mailing := &entity.Mailing{Text: "Hello"}
	require.NoError(t, repo.Create(ctx, mailing))
	require.False(t, mailing.Sent)

	require.NoError(t, repo.MarkSent(ctx, mailing.ID))

	found, err := repo.FindByID(ctx, mailing.ID)
	require.NoError(t, err)
	assert.True(t, found.Sent)
}

func TestProductRepository_NotFoundSentinels(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := NewProductRepository(db).FindByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	_, err = NewCategoryRepository(db).FindByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)

	_, err = NewSubCategoryRepository(db).FindByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrSubCategoryNotFound)
}

func TestSubCategoryRepository_ListByCategory(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	categoryRepo := NewCategoryRepository(db)
	subRepo := NewSubCategoryRepository(db)

	drinks := &entity.Category{Name: "Drinks"}
	food := &entity.Category{Name: "Food"}
	require.NoError(t, categoryRepo.Create(ctx, drinks))
	require.NoError(t, categoryRepo.Create(ctx, food))

	require.NoError(t, subRepo.Create(ctx, &entity.SubCategory{CategoryID: drinks.ID, Name: "Coffee"}))
	require.NoError(t, subRepo.Create(ctx, &entity.SubCategory{CategoryID: drinks.ID, Name: "Tea"}))
	require.NoError(t, subRepo.Create(ctx, &entity.SubCategory{CategoryID: food.ID, Name: "Desserts"}))

	subs, err := subRepo.ListByCategory(ctx, drinks.ID)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "Coffee", subs[0].Name)
	assert.Equal(t, "Tea", subs[1].Name)
}
