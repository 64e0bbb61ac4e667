package usecase

import (
	"context"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
)

// CartUsecase manages the per-user cart ledger. Bot-facing operations are
// keyed by the Telegram account ID; a missing user or product is a logged
// refusal, not an error, mirroring how the bot re-prompts instead of failing.
type CartUsecase interface {
	// AddToCart adds quantity of a product to the user's cart inside a
	// single transaction. An existing line accumulates quantity and keeps
	// its original price snapshot; a new line snapshots the product's
	// current price. Returns false when the user or product is absent or
	// the transaction fails; nothing is partially applied.
	AddToCart(ctx context.Context, telegramID int64, productID uint, quantity int) bool

	// FetchCart returns the user's cart joined with product data, in no
	// guaranteed order. An unknown user has an empty cart.
	FetchCart(ctx context.Context, telegramID int64) ([]entity.CartItem, error)

	// RemoveLine deletes one cart line by its own identifier. Deleting an
	// already-absent line also reports success.
	RemoveLine(ctx context.Context, lineID uint) bool

	// ClearCart deletes all cart lines of the user.
	ClearCart(ctx context.Context, telegramID int64) bool

	// ItemsForUser returns the cart of a user by internal key, for the
	// admin listing.
	ItemsForUser(ctx context.Context, userID uint) ([]entity.CartItem, error)
}
