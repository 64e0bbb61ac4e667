package repository

import (
	"context"
	"errors"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
)

var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrSubCategoryNotFound is returned when a subcategory is not found.
	ErrSubCategoryNotFound = errors.New("subcategory not found")
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

// CategoryRepository defines the standard operations for category persistence.
type CategoryRepository interface {
	// FindByID retrieves a single category by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Category, error)

	// List retrieves all categories in insertion order.
	List(ctx context.Context) ([]*entity.Category, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update modifies an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category by its ID.
	Delete(ctx context.Context, id uint) error
}

// SubCategoryRepository defines the standard operations for subcategory persistence.
type SubCategoryRepository interface {
	// FindByID retrieves a single subcategory by its ID.
	FindByID(ctx context.Context, id uint) (*entity.SubCategory, error)

	// ListByCategory retrieves all subcategories belonging to a category.
	ListByCategory(ctx context.Context, categoryID uint) ([]*entity.SubCategory, error)

	// Create persists a new subcategory.
	Create(ctx context.Context, subCategory *entity.SubCategory) error

	// Update modifies an existing subcategory.
	Update(ctx context.Context, subCategory *entity.SubCategory) error

	// Delete removes a subcategory by its ID.
	Delete(ctx context.Context, id uint) error
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Product, error)

	// ListBySubCategory retrieves all products belonging to a subcategory.
	ListBySubCategory(ctx context.Context, subCategoryID uint) ([]*entity.Product, error)

	// List retrieves all products in insertion order.
	List(ctx context.Context) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by its ID.
	Delete(ctx context.Context, id uint) error
}
