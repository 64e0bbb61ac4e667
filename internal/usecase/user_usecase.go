package usecase

import (
	"context"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
)

// TelegramProfile carries the profile fields delivered with a chat update.
type TelegramProfile struct {
	TelegramID int64
	Username   string
	FirstName  string
	LastName   string
}

// UserUsecase manages the user directory.
type UserUsecase interface {
	// RegisterOrRefresh creates the user on first contact or refreshes the
	// profile fields when they changed. It never deactivates anyone.
	RegisterOrRefresh(ctx context.Context, profile TelegramProfile) (*entity.User, error)

	// GetByTelegramID retrieves a user by their Telegram account ID.
	GetByTelegramID(ctx context.Context, telegramID int64) (*entity.User, error)

	// Get retrieves a user by the internal key.
	Get(ctx context.Context, id uint) (*entity.User, error)

	// List retrieves all users for the admin listing.
	List(ctx context.Context) ([]*entity.User, error)

	// SetActive flips the active flag of a user.
	SetActive(ctx context.Context, id uint, active bool) error
}
