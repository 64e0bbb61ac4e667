package usecase

import (
	"context"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
)

// MailingReport summarizes one fan-out run so partial failure is visible to
// the admin instead of being silently swallowed.
type MailingReport struct {
	Recipients int `json:"recipients"` // Active users iterated.
	Delivered  int `json:"delivered"`  // Messages accepted by the transport.
	Failed     int `json:"failed"`     // Per-recipient delivery failures, logged and skipped.
	Skipped    int `json:"skipped"`    // Recipients skipped because the mailing had nothing to deliver.
}

// MailingUsecase manages admin mailings and their best-effort fan-out.
type MailingUsecase interface {
	// Get retrieves a single mailing.
	Get(ctx context.Context, id uint) (*entity.Mailing, error)

	// List retrieves all mailings.
	List(ctx context.Context) ([]*entity.Mailing, error)

	// Create persists a new, unsent mailing.
	Create(ctx context.Context, mailing *entity.Mailing) error

	// Update modifies an unsent mailing.
	Update(ctx context.Context, mailing *entity.Mailing) error

	// Delete removes a mailing.
	Delete(ctx context.Context, id uint) error

	// Send fans the mailing out to every active user, one recipient at a
	// time. An already-sent mailing is refused up front. Individual
	// delivery failures never abort the loop; the sent flag is set exactly
	// once after the loop completes.
	Send(ctx context.Context, id uint) (*MailingReport, error)
}
