// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByTelegramID retrieves a single user by their Telegram account ID.
	FindByTelegramID(ctx context.Context, telegramID int64) (*entity.User, error)

	// FindByID retrieves a single user by the internal surrogate key.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// List retrieves all users, newest first.
	List(ctx context.Context) ([]*entity.User, error)

	// ListActive retrieves all users whose active flag is set.
	ListActive(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error
}
