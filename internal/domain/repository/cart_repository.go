package repository

import (
	"context"
	"errors"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
)

// ErrCartLineNotFound is returned when a cart line lookup finds nothing.
var ErrCartLineNotFound = errors.New("cart line not found")

// CartRepository defines the standard operations for cart line persistence.
type CartRepository interface {
	// FindLineForUpdate retrieves the cart line for a (user, product) pair,
	// taking a row-level lock when the backing store supports one. Returns
	// ErrCartLineNotFound when no line exists yet.
	FindLineForUpdate(ctx context.Context, userID, productID uint) (*entity.CartLine, error)

	// Create persists a new cart line with its price snapshot.
	Create(ctx context.Context, line *entity.CartLine) error

	// UpdateQuantity sets the quantity of an existing line.
	UpdateQuantity(ctx context.Context, lineID uint, quantity int) error

	// FetchItems retrieves a user's cart lines joined with the product
	// name and photo. Order is not guaranteed.
	FetchItems(ctx context.Context, userID uint) ([]entity.CartItem, error)

	// DeleteLine removes a single line by its own ID. Deleting an absent
	// line is not an error.
	DeleteLine(ctx context.Context, lineID uint) error

	// DeleteByUser removes all lines belonging to a user.
	DeleteByUser(ctx context.Context, userID uint) error
}
