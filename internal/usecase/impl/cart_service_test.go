package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
	"github.com/Dim-Aks/Bot-shop/internal/domain/repository"
	"github.com/Dim-Aks/Bot-shop/internal/mocks"
	"github.com/Dim-Aks/Bot-shop/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubRepoFactory hands out fixed repositories, standing in for the
// transaction-bound factory.
type stubRepoFactory struct {
	users    repository.UserRepository
	products repository.ProductRepository
	carts    repository.CartRepository
	mailings repository.MailingRepository
}

func (f *stubRepoFactory) NewUserRepository() repository.UserRepository       { return f.users }
func (f *stubRepoFactory) NewProductRepository() repository.ProductRepository { return f.products }
func (f *stubRepoFactory) NewCartRepository() repository.CartRepository       { return f.carts }
func (f *stubRepoFactory) NewMailingRepository() repository.MailingRepository { return f.mailings }

// stubTxManager runs the callback directly against the stub factory. Commit
// and rollback behavior is covered by the persistence tests.
type stubTxManager struct {
	factory repository.RepositoryFactory
	calls   int
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	m.calls++

	return fn(m.factory)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCartServiceForTest(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	cartRepo repository.CartRepository,
) (usecase.CartUsecase, *stubTxManager) {
	tx := &stubTxManager{factory: &stubRepoFactory{
		users:    userRepo,
		products: productRepo,
		carts:    cartRepo,
	}}

	return &cartService{
		txManager: tx,
		userRepo:  userRepo,
		cartRepo:  cartRepo,
		logger:    discardLogger(),
	}, tx
}

func TestAddToCart_NewLineSnapshotsPrice(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	productRepo := new(mocks.ProductRepository)
	cartRepo := new(mocks.CartRepository)

	user := &entity.User{ID: 7, TelegramID: 111}
	product := &entity.Product{ID: 42, Name: "Latte", Price: decimal.RequireFromString("250.50")}

	userRepo.On("FindByTelegramID", mock.Anything, int64(111)).Return(user, nil)
	cartRepo.On("FindLineForUpdate", mock.Anything, uint(7), uint(42)).
		Return(nil, repository.ErrCartLineNotFound)
	productRepo.On("FindByID", mock.Anything, uint(42)).Return(product, nil)
	cartRepo.On("Create", mock.Anything, mock.MatchedBy(func(line *entity.CartLine) bool {
		return line.UserID == 7 && line.ProductID == 42 &&
			line.Quantity == 2 && line.Price.Equal(product.Price)
	})).Return(nil)

	service, tx := newCartServiceForTest(userRepo, productRepo, cartRepo)

	ok := service.AddToCart(context.Background(), 111, 42, 2)

	assert.True(t, ok)
	assert.Equal(t, 1, tx.calls)
	cartRepo.AssertExpectations(t)
}

func TestAddToCart_ExistingLineAccumulatesKeepingPrice(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	productRepo := new(mocks.ProductRepository)
	cartRepo := new(mocks.CartRepository)

	user := &entity.User{ID: 7, TelegramID: 111}
	line := &entity.CartLine{ID: 3, UserID: 7, ProductID: 42, Quantity: 2,
		Price: decimal.RequireFromString("199.99")}

	userRepo.On("FindByTelegramID", mock.Anything, int64(111)).Return(user, nil)
	cartRepo.On("FindLineForUpdate", mock.Anything, uint(7), uint(42)).Return(line, nil)
	cartRepo.On("UpdateQuantity", mock.Anything, uint(3), 5).Return(nil)

	service, _ := newCartServiceForTest(userRepo, productRepo, cartRepo)

	ok := service.AddToCart(context.Background(), 111, 42, 3)

	assert.True(t, ok)
	cartRepo.AssertExpectations(t)
	// The catalog price must not be consulted: the snapshot stays as is.
	productRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	cartRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddToCart_UnknownUserRefused(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	productRepo := new(mocks.ProductRepository)
	cartRepo := new(mocks.CartRepository)

	userRepo.On("FindByTelegramID", mock.Anything, int64(999)).
		Return(nil, repository.ErrUserNotFound)

	service, _ := newCartServiceForTest(userRepo, productRepo, cartRepo)

	assert.False(t, service.AddToCart(context.Background(), 999, 42, 1))
	cartRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddToCart_UnknownProductRefused(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	productRepo := new(mocks.ProductRepository)
	cartRepo := new(mocks.CartRepository)

	userRepo.On("FindByTelegramID", mock.Anything, int64(111)).
		Return(&entity.User{ID: 7, TelegramID: 111}, nil)
	cartRepo.On("FindLineForUpdate", mock.Anything, uint(7), uint(42)).
		Return(nil, repository.ErrCartLineNotFound)
	productRepo.On("FindByID", mock.Anything, uint(42)).
		Return(nil, repository.ErrProductNotFound)

	service, _ := newCartServiceForTest(userRepo, productRepo, cartRepo)

	assert.False(t, service.AddToCart(context.Background(), 111, 42, 1))
	cartRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddToCart_NonPositiveQuantityRefusedWithoutTransaction(t *testing.T) {
	service, tx := newCartServiceForTest(
		new(mocks.UserRepository), new(mocks.ProductRepository), new(mocks.CartRepository))

	assert.False(t, service.AddToCart(context.Background(), 111, 42, 0))
	assert.False(t, service.AddToCart(context.Background(), 111, 42, -3))
	assert.Equal(t, 0, tx.calls)
}

func TestFetchCart_UnknownUserHasEmptyCart(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	cartRepo := new(mocks.CartRepository)

	userRepo.On("FindByTelegramID", mock.Anything, int64(999)).
		Return(nil, repository.ErrUserNotFound)

	service, _ := newCartServiceForTest(userRepo, new(mocks.ProductRepository), cartRepo)

	items, err := service.FetchCart(context.Background(), 999)

	require.NoError(t, err)
	assert.Empty(t, items)
	cartRepo.AssertNotCalled(t, "FetchItems", mock.Anything, mock.Anything)
}

func TestFetchCart_ReturnsJoinedItems(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	cartRepo := new(mocks.CartRepository)

	items := []entity.CartItem{
		{LineID: 1, Name: "Latte", Quantity: 2, Price: decimal.RequireFromString("250.50")},
		{LineID: 2, Name: "Croissant", Quantity: 1, Price: decimal.RequireFromString("120.00")},
	}
	userRepo.On("FindByTelegramID", mock.Anything, int64(111)).
		Return(&entity.User{ID: 7, TelegramID: 111}, nil)
	cartRepo.On("FetchItems", mock.Anything, uint(7)).Return(items, nil)

	service, _ := newCartServiceForTest(userRepo, new(mocks.ProductRepository), cartRepo)

	got, err := service.FetchCart(context.Background(), 111)

	require.NoError(t, err)
	assert.Equal(t, items, got)
	assert.True(t, entity.CartTotal(got).Equal(decimal.RequireFromString("621.00")))
}

func TestRemoveLine_AbsentLineStillSucceeds(t *testing.T) {
	cartRepo := new(mocks.CartRepository)
	cartRepo.On("DeleteLine", mock.Anything, uint(5)).Return(nil)

	service, _ := newCartServiceForTest(new(mocks.UserRepository), new(mocks.ProductRepository), cartRepo)

	assert.True(t, service.RemoveLine(context.Background(), 5))
}

func TestClearCart_DeletesAllLinesOfUser(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	cartRepo := new(mocks.CartRepository)

	userRepo.On("FindByTelegramID", mock.Anything, int64(111)).
		Return(&entity.User{ID: 7, TelegramID: 111}, nil)
	cartRepo.On("DeleteByUser", mock.Anything, uint(7)).Return(nil)

	service, _ := newCartServiceForTest(userRepo, new(mocks.ProductRepository), cartRepo)

	assert.True(t, service.ClearCart(context.Background(), 111))
	cartRepo.AssertExpectations(t)
}
