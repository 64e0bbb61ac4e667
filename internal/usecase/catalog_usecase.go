// Package usecase defines the application-layer interfaces and their
// data transfer types. Implementations live in usecase/impl.
package usecase

import (
	"context"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
)

// CatalogUsecase exposes catalog browsing for the bot and catalog
// management for the admin API.
type CatalogUsecase interface {
	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// ListSubCategories retrieves the subcategories of a category.
	ListSubCategories(ctx context.Context, categoryID uint) ([]*entity.SubCategory, error)

	// GetSubCategory retrieves a single subcategory.
	GetSubCategory(ctx context.Context, id uint) (*entity.SubCategory, error)

	// ListProducts retrieves the products of a subcategory.
	ListProducts(ctx context.Context, subCategoryID uint) ([]*entity.Product, error)

	// ListAllProducts retrieves the whole product catalog for the admin
	// listing.
	ListAllProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct retrieves a single product. A missing product is reported
	// with repository.ErrProductNotFound, never a nil result.
	GetProduct(ctx context.Context, id uint) (*entity.Product, error)

	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, category *entity.Category) error

	// UpdateCategory modifies an existing category.
	UpdateCategory(ctx context.Context, category *entity.Category) error

	// DeleteCategory removes a category and, via cascading constraints,
	// its subcategories and products.
	DeleteCategory(ctx context.Context, id uint) error

	// CreateSubCategory persists a new subcategory.
	CreateSubCategory(ctx context.Context, subCategory *entity.SubCategory) error

	// UpdateSubCategory modifies an existing subcategory.
	UpdateSubCategory(ctx context.Context, subCategory *entity.SubCategory) error

	// DeleteSubCategory removes a subcategory.
	DeleteSubCategory(ctx context.Context, id uint) error

	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// UpdateProduct modifies an existing product.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, id uint) error
}
