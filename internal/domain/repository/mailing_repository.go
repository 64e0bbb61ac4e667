package repository

import (
	"context"
	"errors"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
)

// ErrMailingNotFound is returned when a mailing is not found.
var ErrMailingNotFound = errors.New("mailing not found")

// MailingRepository defines the standard operations for mailing persistence.
type MailingRepository interface {
	// FindByID retrieves a single mailing by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Mailing, error)

	// List retrieves all mailings, newest scheduled first.
	List(ctx context.Context) ([]*entity.Mailing, error)

	// Create persists a new mailing with the sent flag unset.
	Create(ctx context.Context, mailing *entity.Mailing) error

	// Update modifies an existing mailing.
	Update(ctx context.Context, mailing *entity.Mailing) error

	// MarkSent sets the sent flag of a mailing.
	MarkSent(ctx context.Context, id uint) error

	// Delete removes a mailing by its ID.
	Delete(ctx context.Context, id uint) error
}
