package mocks

import (
	"context"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
	"github.com/Dim-Aks/Bot-shop/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// CatalogUsecase is a mock of usecase.CatalogUsecase.
type CatalogUsecase struct {
	mock.Mock
}

func (m *CatalogUsecase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *CatalogUsecase) ListSubCategories(ctx context.Context, categoryID uint) ([]*entity.SubCategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.SubCategory), args.Error(1)
}

func (m *CatalogUsecase) GetSubCategory(ctx context.Context, id uint) (*entity.SubCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.SubCategory), args.Error(1)
}

func (m *CatalogUsecase) ListProducts(ctx context.Context, subCategoryID uint) ([]*entity.Product, error) {
	args := m.Called(ctx, subCategoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *CatalogUsecase) ListAllProducts(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *CatalogUsecase) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *CatalogUsecase) CreateCategory(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *CatalogUsecase) UpdateCategory(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *CatalogUsecase) DeleteCategory(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CatalogUsecase) CreateSubCategory(ctx context.Context, subCategory *entity.SubCategory) error {
	return m.Called(ctx, subCategory).Error(0)
}

func (m *CatalogUsecase) UpdateSubCategory(ctx context.Context, subCategory *entity.SubCategory) error {
	return m.Called(ctx, subCategory).Error(0)
}

func (m *CatalogUsecase) DeleteSubCategory(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CatalogUsecase) CreateProduct(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *CatalogUsecase) UpdateProduct(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *CatalogUsecase) DeleteProduct(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// UserUsecase is a mock of usecase.UserUsecase.
type UserUsecase struct {
	mock.Mock
}

func (m *UserUsecase) RegisterOrRefresh(ctx context.Context, profile usecase.TelegramProfile) (*entity.User, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserUsecase) GetByTelegramID(ctx context.Context, telegramID int64) (*entity.User, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserUsecase) Get(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserUsecase) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *UserUsecase) SetActive(ctx context.Context, id uint, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

// CartUsecase is a mock of usecase.CartUsecase.
type CartUsecase struct {
	mock.Mock
}

func (m *CartUsecase) AddToCart(ctx context.Context, telegramID int64, productID uint, quantity int) bool {
	return m.Called(ctx, telegramID, productID, quantity).Bool(0)
}

func (m *CartUsecase) FetchCart(ctx context.Context, telegramID int64) ([]entity.CartItem, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.CartItem), args.Error(1)
}

func (m *CartUsecase) RemoveLine(ctx context.Context, lineID uint) bool {
	return m.Called(ctx, lineID).Bool(0)
}

func (m *CartUsecase) ClearCart(ctx context.Context, telegramID int64) bool {
	return m.Called(ctx, telegramID).Bool(0)
}

func (m *CartUsecase) ItemsForUser(ctx context.Context, userID uint) ([]entity.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.CartItem), args.Error(1)
}

// CheckoutUsecase is a mock of usecase.CheckoutUsecase.
type CheckoutUsecase struct {
	mock.Mock
}

func (m *CheckoutUsecase) State(chatID int64) usecase.CheckoutState {
	return m.Called(chatID).Get(0).(usecase.CheckoutState)
}

func (m *CheckoutUsecase) BeginQuantity(chatID int64, productID uint) {
	m.Called(chatID, productID)
}

func (m *CheckoutUsecase) SubmitQuantity(ctx context.Context, chatID, telegramID int64, text string) (int, error) {
	args := m.Called(ctx, chatID, telegramID, text)

	return args.Int(0), args.Error(1)
}

func (m *CheckoutUsecase) BeginCheckout(chatID int64) {
	m.Called(chatID)
}

func (m *CheckoutUsecase) SubmitName(chatID int64, name string) {
	m.Called(chatID, name)
}

func (m *CheckoutUsecase) SubmitAddress(chatID int64, address string) {
	m.Called(chatID, address)
}

func (m *CheckoutUsecase) SubmitPhone(ctx context.Context, chatID, telegramID int64, phone string) (*usecase.OrderSummary, error) {
	args := m.Called(ctx, chatID, telegramID, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.OrderSummary), args.Error(1)
}

func (m *CheckoutUsecase) Pay(ctx context.Context, chatID, telegramID int64) error {
	return m.Called(ctx, chatID, telegramID).Error(0)
}

func (m *CheckoutUsecase) Cancel(chatID int64) {
	m.Called(chatID)
}

func (m *CheckoutUsecase) ConfirmPayment(ctx context.Context, chatID, telegramID int64) error {
	return m.Called(ctx, chatID, telegramID).Error(0)
}

// MailingUsecase is a mock of usecase.MailingUsecase.
type MailingUsecase struct {
	mock.Mock
}

func (m *MailingUsecase) Get(ctx context.Context, id uint) (*entity.Mailing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Mailing), args.Error(1)
}

func (m *MailingUsecase) List(ctx context.Context) ([]*entity.Mailing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Mailing), args.Error(1)
}

func (m *MailingUsecase) Create(ctx context.Context, mailing *entity.Mailing) error {
	return m.Called(ctx, mailing).Error(0)
}

func (m *MailingUsecase) Update(ctx context.Context, mailing *entity.Mailing) error {
	return m.Called(ctx, mailing).Error(0)
}

func (m *MailingUsecase) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MailingUsecase) Send(ctx context.Context, id uint) (*usecase.MailingReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.MailingReport), args.Error(1)
}
