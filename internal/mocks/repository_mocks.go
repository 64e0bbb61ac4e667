// Package mocks provides hand-written testify mocks for the repository,
// service and use case interfaces used in unit tests.
package mocks

import (
	"context"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
	"github.com/Dim-Aks/Bot-shop/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// UserRepository is a mock of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByTelegramID(ctx context.Context, telegramID int64) (*entity.User, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *UserRepository) ListActive(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

// CategoryRepository is a mock of repository.CategoryRepository.
type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *CategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *CategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *CategoryRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// SubCategoryRepository is a mock of repository.SubCategoryRepository.
type SubCategoryRepository struct {
	mock.Mock
}

func (m *SubCategoryRepository) FindByID(ctx context.Context, id uint) (*entity.SubCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.SubCategory), args.Error(1)
}

func (m *SubCategoryRepository) ListByCategory(ctx context.Context, categoryID uint) ([]*entity.SubCategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.SubCategory), args.Error(1)
}

func (m *SubCategoryRepository) Create(ctx context.Context, subCategory *entity.SubCategory) error {
	return m.Called(ctx, subCategory).Error(0)
}

func (m *SubCategoryRepository) Update(ctx context.Context, subCategory *entity.SubCategory) error {
	return m.Called(ctx, subCategory).Error(0)
}

func (m *SubCategoryRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// ProductRepository is a mock of repository.ProductRepository.
type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *ProductRepository) ListBySubCategory(ctx context.Context, subCategoryID uint) ([]*entity.Product, error) {
	args := m.Called(ctx, subCategoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *ProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *ProductRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// CartRepository is a mock of repository.CartRepository.
type CartRepository struct {
	mock.Mock
}

func (m *CartRepository) FindLineForUpdate(ctx context.Context, userID, productID uint) (*entity.CartLine, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CartLine), args.Error(1)
}

func (m *CartRepository) Create(ctx context.Context, line *entity.CartLine) error {
	return m.Called(ctx, line).Error(0)
}

func (m *CartRepository) UpdateQuantity(ctx context.Context, lineID uint, quantity int) error {
	return m.Called(ctx, lineID, quantity).Error(0)
}

func (m *CartRepository) FetchItems(ctx context.Context, userID uint) ([]entity.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.CartItem), args.Error(1)
}

func (m *CartRepository) DeleteLine(ctx context.Context, lineID uint) error {
	return m.Called(ctx, lineID).Error(0)
}

func (m *CartRepository) DeleteByUser(ctx context.Context, userID uint) error {
	return m.Called(ctx, userID).Error(0)
}

// MailingRepository is a mock of repository.MailingRepository.
type MailingRepository struct {
	mock.Mock
}

func (m *MailingRepository) FindByID(ctx context.Context, id uint) (*entity.Mailing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Mailing), args.Error(1)
}

func (m *MailingRepository) List(ctx context.Context) ([]*entity.Mailing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Mailing), args.Error(1)
}

func (m *MailingRepository) Create(ctx context.Context, mailing *entity.Mailing) error {
	return m.Called(ctx, mailing).Error(0)
}

func (m *MailingRepository) Update(ctx context.Context, mailing *entity.Mailing) error {
	return m.Called(ctx, mailing).Error(0)
}

func (m *MailingRepository) MarkSent(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MailingRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// TransactionManager is a mock of repository.TransactionManager that runs
// the callback against a RepositoryFactory mock.
type TransactionManager struct {
	mock.Mock
}

func (m *TransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// RepositoryFactory is a mock of repository.RepositoryFactory.
type RepositoryFactory struct {
	mock.Mock
}

func (m *RepositoryFactory) NewUserRepository() repository.UserRepository {
	return m.Called().Get(0).(repository.UserRepository)
}

func (m *RepositoryFactory) NewProductRepository() repository.ProductRepository {
	return m.Called().Get(0).(repository.ProductRepository)
}

func (m *RepositoryFactory) NewCartRepository() repository.CartRepository {
	return m.Called().Get(0).(repository.CartRepository)
}

func (m *RepositoryFactory) NewMailingRepository() repository.MailingRepository {
	return m.Called().Get(0).(repository.MailingRepository)
}
