package impl

import (
	"context"
	"log/slog"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
	domainerrors "github.com/Dim-Aks/Bot-shop/internal/domain/errors"
	"github.com/Dim-Aks/Bot-shop/internal/domain/repository"
	"github.com/Dim-Aks/Bot-shop/internal/domain/service"
	"github.com/Dim-Aks/Bot-shop/internal/errors"
	"github.com/Dim-Aks/Bot-shop/internal/usecase"

	"go.uber.org/fx"
)

type mailingService struct {
	mailingRepo repository.MailingRepository
	userRepo    repository.UserRepository
	messenger   service.Messenger
	logger      *slog.Logger
}

// MailingServiceParams holds dependencies for MailingService, injected by Fx.
type MailingServiceParams struct {
	fx.In

	MailingRepo repository.MailingRepository
	UserRepo    repository.UserRepository
	Messenger   service.Messenger
	Logger      *slog.Logger
}

// NewMailingService creates a new mailing service instance.
func NewMailingService(params MailingServiceParams) usecase.MailingUsecase {
	return &mailingService{
		mailingRepo: params.MailingRepo,
		userRepo:    params.UserRepo,
		messenger:   params.Messenger,
		logger:      params.Logger,
	}
}

func (s *mailingService) Get(ctx context.Context, id uint) (*entity.Mailing, error) {
	return s.mailingRepo.FindByID(ctx, id)
}

func (s *mailingService) List(ctx context.Context) ([]*entity.Mailing, error) {
	return s.mailingRepo.List(ctx)
}

func (s *mailingService) Create(ctx context.Context, mailing *entity.Mailing) error {
	if !mailing.HasContent() {
		return domainerrors.ErrMailingEmpty
	}
	mailing.Sent = false

	return s.mailingRepo.Create(ctx, mailing)
}

func (s *mailingService) Update(ctx context.Context, mailing *entity.Mailing) error {
	existing, err := s.mailingRepo.FindByID(ctx, mailing.ID)
	if err != nil {
		return err
	}
	if existing.Sent {
		return domainerrors.ErrMailingAlreadySent
	}
	if !mailing.HasContent() {
		return domainerrors.ErrMailingEmpty
	}

	return s.mailingRepo.Update(ctx, mailing)
}

func (s *mailingService) Delete(ctx context.Context, id uint) error {
	return s.mailingRepo.Delete(ctx, id)
}

// Send fans the mailing out to every active user. Delivery is best-effort:
// a failed recipient is counted and logged, never retried, and never stops
// the loop. The sent flag flips exactly once, after the loop.
func (s *mailingService) Send(ctx context.Context, id uint) (*usecase.MailingReport, error) {
	mailing, err := s.mailingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mailing.Sent {
		return nil, domainerrors.ErrMailingAlreadySent
	}

	recipients, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mailing recipients")
	}

	report := &usecase.MailingReport{Recipients: len(recipients)}
	switch {
	case !mailing.HasContent():
		// Rows predating content validation can be empty. The run still
		// counts as a send; there is just nothing to deliver.
		report.Skipped = len(recipients)
	default:
		for _, user := range recipients {
			if err := s.deliver(ctx, user.TelegramID, mailing); err != nil {
				report.Failed++
				s.logger.Warn("mailing delivery failed",
					slog.Any("mailing_id", mailing.ID),
					slog.Int64("telegram_id", user.TelegramID),
					slog.Any("error", err))

				continue
			}
			report.Delivered++
		}
	}

	if err := s.mailingRepo.MarkSent(ctx, mailing.ID); err != nil {
		return report, errors.Wrap(err, "failed to mark mailing as sent")
	}

	s.logger.Info("mailing sent",
		slog.Any("mailing_id", mailing.ID),
		slog.Int("recipients", report.Recipients),
		slog.Int("delivered", report.Delivered),
		slog.Int("failed", report.Failed))

	return report, nil
}

func (s *mailingService) deliver(ctx context.Context, telegramID int64, mailing *entity.Mailing) error {
	if mailing.MediaFile != "" {
		return s.messenger.SendPhoto(ctx, telegramID, mailing.MediaFile, mailing.Text)
	}

	return s.messenger.SendText(ctx, telegramID, mailing.Text)
}
