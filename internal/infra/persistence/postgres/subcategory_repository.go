package postgres

import (
	"context"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
	domainerrors "github.com/Dim-Aks/Bot-shop/internal/domain/errors"
	"github.com/Dim-Aks/Bot-shop/internal/domain/repository"
	"github.com/Dim-Aks/Bot-shop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subCategoryRepository implements the repository.SubCategoryRepository interface using GORM.
type subCategoryRepository struct {
	db *gorm.DB
}

// NewSubCategoryRepository is the constructor for subCategoryRepository.
func NewSubCategoryRepository(db *gorm.DB) repository.SubCategoryRepository {
	return &subCategoryRepository{db: db}
}

// FindByID retrieves a single subcategory by its ID.
func (repo *subCategoryRepository) FindByID(ctx context.Context, id uint) (*entity.SubCategory, error) {
	var subCategoryM model.SubCategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&subCategoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find subcategory by id")
	}

	return toSubCategoryDomain(&subCategoryM), nil
}

// ListByCategory retrieves all subcategories belonging to a category.
func (repo *subCategoryRepository) ListByCategory(ctx context.Context, categoryID uint) ([]*entity.SubCategory, error) {
	var subCategoryModels []*model.SubCategoryModel

	if err := repo.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id").
		Find(&subCategoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subcategories by category")
	}

	subCategories := make([]*entity.SubCategory, 0, len(subCategoryModels))
	for _, subCategoryM := range subCategoryModels {
		subCategories = append(subCategories, toSubCategoryDomain(subCategoryM))
	}

	return subCategories, nil
}

// Create persists a new subcategory.
func (repo *subCategoryRepository) Create(ctx context.Context, subCategory *entity.SubCategory) error {
	subCategoryM := fromSubCategoryDomain(subCategory)

	if err := repo.db.WithContext(ctx).Create(subCategoryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("subcategory references a missing category")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required subcategory information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subcategory")
	}

	subCategory.ID = subCategoryM.ID
	subCategory.CreatedAt = subCategoryM.CreatedAt
	subCategory.UpdatedAt = subCategoryM.UpdatedAt

	return nil
}

// Update modifies an existing subcategory.
func (repo *subCategoryRepository) Update(ctx context.Context, subCategory *entity.SubCategory) error {
	subCategoryM := fromSubCategoryDomain(subCategory)

	if err := repo.db.WithContext(ctx).Save(subCategoryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("subcategory references a missing category")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update subcategory")
	}

	subCategory.UpdatedAt = subCategoryM.UpdatedAt

	return nil
}

// Delete removes a subcategory by its ID.
func (repo *subCategoryRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.SubCategoryModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete subcategory")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubCategoryNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toSubCategoryDomain(data *model.SubCategoryModel) *entity.SubCategory {
	if data == nil {
		return nil
	}

	return &entity.SubCategory{
		ID:          data.ID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromSubCategoryDomain(data *entity.SubCategory) *model.SubCategoryModel {
	if data == nil {
		return nil
	}

	return &model.SubCategoryModel{
		ID:          data.ID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
