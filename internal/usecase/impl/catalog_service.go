// Package impl contains the concrete use case services.
package impl

import (
	"context"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
	"github.com/Dim-Aks/Bot-shop/internal/domain/repository"
	"github.com/Dim-Aks/Bot-shop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	categoryRepo    repository.CategoryRepository
	subCategoryRepo repository.SubCategoryRepository
	productRepo     repository.ProductRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CategoryRepo    repository.CategoryRepository
	SubCategoryRepo repository.SubCategoryRepository
	ProductRepo     repository.ProductRepository
}

// NewCatalogService creates a new catalog service instance.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		categoryRepo:    params.CategoryRepo,
		subCategoryRepo: params.SubCategoryRepo,
		productRepo:     params.ProductRepo,
	}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (s *catalogService) ListSubCategories(ctx context.Context, categoryID uint) ([]*entity.SubCategory, error) {
	subCategories, err := s.subCategoryRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subcategories")
	}

	return subCategories, nil
}

func (s *catalogService) GetSubCategory(ctx context.Context, id uint) (*entity.SubCategory, error) {
	return s.subCategoryRepo.FindByID(ctx, id)
}

func (s *catalogService) ListProducts(ctx context.Context, subCategoryID uint) ([]*entity.Product, error) {
	products, err := s.productRepo.ListBySubCategory(ctx, subCategoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (s *catalogService) ListAllProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

func (s *catalogService) CreateCategory(ctx context.Context, category *entity.Category) error {
	return s.categoryRepo.Create(ctx, category)
}

func (s *catalogService) UpdateCategory(ctx context.Context, category *entity.Category) error {
	if _, err := s.categoryRepo.FindByID(ctx, category.ID); err != nil {
		return err
	}

	return s.categoryRepo.Update(ctx, category)
}

func (s *catalogService) DeleteCategory(ctx context.Context, id uint) error {
	return s.categoryRepo.Delete(ctx, id)
}

func (s *catalogService) CreateSubCategory(ctx context.Context, subCategory *entity.SubCategory) error {
	// The category reference must exist; surface a not-found before the
	// insert instead of relying on the constraint for the common case.
	if _, err := s.categoryRepo.FindByID(ctx, subCategory.CategoryID); err != nil {
		return err
	}

	return s.subCategoryRepo.Create(ctx, subCategory)
}

func (s *catalogService) UpdateSubCategory(ctx context.Context, subCategory *entity.SubCategory) error {
	if _, err := s.subCategoryRepo.FindByID(ctx, subCategory.ID); err != nil {
		return err
	}

	return s.subCategoryRepo.Update(ctx, subCategory)
}

func (s *catalogService) DeleteSubCategory(ctx context.Context, id uint) error {
	return s.subCategoryRepo.Delete(ctx, id)
}

func (s *catalogService) CreateProduct(ctx context.Context, product *entity.Product) error {
	if _, err := s.categoryRepo.FindByID(ctx, product.CategoryID); err != nil {
		return err
	}
	if product.SubCategoryID != nil {
		if _, err := s.subCategoryRepo.FindByID(ctx, *product.SubCategoryID); err != nil {
			return err
		}
	}

	return s.productRepo.Create(ctx, product)
}

func (s *catalogService) UpdateProduct(ctx context.Context, product *entity.Product) error {
	if _, err := s.productRepo.FindByID(ctx, product.ID); err != nil {
		return err
	}

	return s.productRepo.Update(ctx, product)
}

func (s *catalogService) DeleteProduct(ctx context.Context, id uint) error {
	return s.productRepo.Delete(ctx, id)
}
