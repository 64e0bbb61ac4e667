package usecase

import (
	"context"
	"errors"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidQuantity reports quantity input that is not a positive integer.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	// ErrSessionExpired reports that the product remembered by the session
	// no longer exists in the catalog.
	ErrSessionExpired = errors.New("checkout session expired")
	// ErrCartEmpty reports a checkout attempted over an empty cart.
	ErrCartEmpty = errors.New("cart is empty")
	// ErrPaymentUnavailable reports a missing payment provider credential.
	ErrPaymentUnavailable = errors.New("payment provider is not configured")
	// ErrInvalidTotal reports a stored order total that is not payable.
	ErrInvalidTotal = errors.New("order total must be positive")
)

// CheckoutState is the tag of a conversation's position in the checkout
// workflow.
type CheckoutState int

const (
	// StateIdle means no workflow is in progress.
	StateIdle CheckoutState = iota
	// StateAwaitingQuantity waits for a numeric quantity after "add to cart".
	StateAwaitingQuantity
	// StateAwaitingName waits for the delivery name.
	StateAwaitingName
	// StateAwaitingAddress waits for the delivery address.
	StateAwaitingAddress
	// StateAwaitingPhone waits for the contact phone number.
	StateAwaitingPhone
	// StateAwaitingPayment waits for the pay/cancel decision.
	StateAwaitingPayment
)

// String returns the state tag name for logs.
func (s CheckoutState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingQuantity:
		return "awaiting_quantity"
	case StateAwaitingName:
		return "awaiting_name"
	case StateAwaitingAddress:
		return "awaiting_address"
	case StateAwaitingPhone:
		return "awaiting_phone"
	case StateAwaitingPayment:
		return "awaiting_payment"
	default:
		return "unknown"
	}
}

// OrderSummary is the payment confirmation rendered at the end of the
// delivery form.
type OrderSummary struct {
	Items   []entity.CartItem
	Total   decimal.Decimal
	Name    string
	Address string
	Phone   string
}

// CheckoutUsecase owns the checkout finite-state machine and the per-
// conversation scratch data. Scratch data is ephemeral: it does not survive
// a process restart.
type CheckoutUsecase interface {
	// State reports the conversation's current workflow state.
	State(chatID int64) CheckoutState

	// BeginQuantity moves Idle -> AwaitingQuantity, remembering the product.
	BeginQuantity(chatID int64, productID uint)

	// SubmitQuantity consumes the text entered in AwaitingQuantity. On a
	// parsed positive integer the cart is updated; in every outcome the
	// conversation returns to Idle. Returns ErrInvalidQuantity for
	// non-numeric or non-positive input and ErrSessionExpired when the
	// remembered product is gone.
	SubmitQuantity(ctx context.Context, chatID, telegramID int64, text string) (int, error)

	// BeginCheckout moves Idle -> AwaitingName.
	BeginCheckout(chatID int64)

	// SubmitName stores the delivery name and moves to AwaitingAddress.
	SubmitName(chatID int64, name string)

	// SubmitAddress stores the delivery address and moves to AwaitingPhone.
	SubmitAddress(chatID int64, address string)

	// SubmitPhone stores the phone, re-fetches the cart and computes the
	// total. An empty cart aborts the whole workflow back to Idle with
	// ErrCartEmpty. Otherwise the conversation holds in AwaitingPayment.
	SubmitPhone(ctx context.Context, chatID, telegramID int64, phone string) (*OrderSummary, error)

	// Pay validates the stored total and the payment credential, then
	// issues the invoice. The state is left in AwaitingPayment until the
	// payment confirmation event arrives.
	Pay(ctx context.Context, chatID, telegramID int64) error

	// Cancel discards the scratch data unconditionally.
	Cancel(chatID int64)

	// ConfirmPayment handles the external payment confirmation: clears the
	// cart and resets the conversation regardless of its prior state.
	ConfirmPayment(ctx context.Context, chatID, telegramID int64) error
}
