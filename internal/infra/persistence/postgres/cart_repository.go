package postgres

import (
	"context"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
	domainerrors "github.com/Dim-Aks/Bot-shop/internal/domain/errors"
	"github.com/Dim-Aks/Bot-shop/internal/domain/repository"
	"github.com/Dim-Aks/Bot-shop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindLineForUpdate retrieves the cart line for a (user, product) pair with a
// row-level lock, so that concurrent adds for the same pair serialize inside
// the surrounding transaction.
func (repo *cartRepository) FindLineForUpdate(ctx context.Context, userID, productID uint) (*entity.CartLine, error) {
	var lineM model.CartLineModel

	tx := repo.db.WithContext(ctx)
	// SQLite has no row-level locks; writers serialize on the whole database.
	if tx.Dialector.Name() == "postgres" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if err := tx.
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&lineM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartLineNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart line")
	}

	return toCartLineDomain(&lineM), nil
}

// Create persists a new cart line with its price snapshot.
func (repo *cartRepository) Create(ctx context.Context, line *entity.CartLine) error {
	lineM := fromCartLineDomain(line)

	if err := repo.db.WithContext(ctx).Create(lineM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("cart line already exists for this user and product")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("cart line references a missing user or product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart line")
	}

	line.ID = lineM.ID

	return nil
}

// UpdateQuantity sets the quantity of an existing line.
func (repo *cartRepository) UpdateQuantity(ctx context.Context, lineID uint, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartLineModel{}).
		Where("id = ?", lineID).
		Update("quantity", quantity)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart line quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// FetchItems retrieves a user's cart lines joined with the product name and photo.
func (repo *cartRepository) FetchItems(ctx context.Context, userID uint) ([]entity.CartItem, error) {
	var lineModels []*model.CartLineModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Find(&lineModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch cart items")
	}

	items := make([]entity.CartItem, 0, len(lineModels))
	for _, lineM := range lineModels {
		item := entity.CartItem{
			LineID:   lineM.ID,
			Quantity: lineM.Quantity,
			Price:    lineM.Price,
		}
		if lineM.Product != nil {
			item.Name = lineM.Product.Name
			item.Photo = lineM.Product.Photo
		}
		items = append(items, item)
	}

	return items, nil
}

// DeleteLine removes a single line by its own ID. Deleting zero rows is
// reported as success.
func (repo *cartRepository) DeleteLine(ctx context.Context, lineID uint) error {
	if err := repo.db.WithContext(ctx).Delete(&model.CartLineModel{}, lineID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart line")
	}

	return nil
}

// DeleteByUser removes all lines belonging to a user.
func (repo *cartRepository) DeleteByUser(ctx context.Context, userID uint) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartLineModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}

// --- Mapper Functions ---

func toCartLineDomain(data *model.CartLineModel) *entity.CartLine {
	if data == nil {
		return nil
	}

	return &entity.CartLine{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Price:     data.Price,
	}
}

func fromCartLineDomain(data *entity.CartLine) *model.CartLineModel {
	if data == nil {
		return nil
	}

	return &model.CartLineModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Price:     data.Price,
	}
}
