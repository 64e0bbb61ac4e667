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

// mailingRepository implements the repository.MailingRepository interface using GORM.
type mailingRepository struct {
	db *gorm.DB
}

// NewMailingRepository is the constructor for mailingRepository.
func NewMailingRepository(db *gorm.DB) repository.MailingRepository {
	return &mailingRepository{db: db}
}

// FindByID retrieves a single mailing by its ID.
func (repo *mailingRepository) FindByID(ctx context.Context, id uint) (*entity.Mailing, error) {
	var mailingM model.MailingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&mailingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMailingNotFound
		}

		return nil, errors.Wrap(err, "failed to find mailing by id")
	}

	return toMailingDomain(&mailingM), nil
}

// List retrieves all mailings, newest scheduled first.
func (repo *mailingRepository) List(ctx context.Context) ([]*entity.Mailing, error) {
	var mailingModels []*model.MailingModel

	if err := repo.db.WithContext(ctx).
		Order("send_at DESC").
		Find(&mailingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list mailings")
	}

	mailings := make([]*entity.Mailing, 0, len(mailingModels))
	for _, mailingM := range mailingModels {
		mailings = append(mailings, toMailingDomain(mailingM))
	}

	return mailings, nil
}

// Create persists a new mailing with the sent flag unset.
func (repo *mailingRepository) Create(ctx context.Context, mailing *entity.Mailing) error {
	mailingM := fromMailingDomain(mailing)
	mailingM.Sent = false

	if err := repo.db.WithContext(ctx).Create(mailingM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required mailing information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create mailing")
	}

	mailing.ID = mailingM.ID
	mailing.Sent = mailingM.Sent
	mailing.CreatedAt = mailingM.CreatedAt
	mailing.UpdatedAt = mailingM.UpdatedAt

	return nil
}

// Update modifies an existing mailing.
func (repo *mailingRepository) Update(ctx context.Context, mailing *entity.Mailing) error {
	mailingM := fromMailingDomain(mailing)

	if err := repo.db.WithContext(ctx).Save(mailingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update mailing")
	}

	mailing.UpdatedAt = mailingM.UpdatedAt

	return nil
}

// MarkSent sets the sent flag of a mailing.
func (repo *mailingRepository) MarkSent(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MailingModel{}).
		Where("id = ?", id).
		Update("sent", true)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark mailing as sent")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMailingNotFound
	}

	return nil
}

// Delete removes a mailing by its ID.
func (repo *mailingRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.MailingModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete mailing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMailingNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toMailingDomain(data *model.MailingModel) *entity.Mailing {
	if data == nil {
		return nil
	}

	return &entity.Mailing{
		ID:        data.ID,
		Text:      data.Text,
		MediaFile: data.MediaFile,
		SendAt:    data.SendAt,
		Sent:      data.Sent,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromMailingDomain(data *entity.Mailing) *model.MailingModel {
	if data == nil {
		return nil
	}

	return &model.MailingModel{
		ID:        data.ID,
		Text:      data.Text,
		MediaFile: data.MediaFile,
		SendAt:    data.SendAt,
		Sent:      data.Sent,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
