// Package service defines interfaces for external collaborators the use cases
// depend on, keeping the application layer free of transport-specific types.
package service

import (
	"context"

	"github.com/shopspring/decimal"
)

// Messenger abstracts the chat transport used to push messages to recipients
// outside of a request/reply exchange: mailing fan-out, invoices, and the
// channel-subscription gate. Implemented by the Telegram client in infra.
type Messenger interface {
	// SendText delivers a plain text message to a chat.
	SendText(ctx context.Context, chatID int64, text string) error

	// SendPhoto delivers a photo with an optional caption to a chat.
	// The photo reference is a local file path or an already-uploaded file ID.
	SendPhoto(ctx context.Context, chatID int64, photo, caption string) error

	// SendInvoice issues a payment request for the given fixed-point amount.
	// The amount is converted to minor currency units by the implementation.
	SendInvoice(ctx context.Context, chatID int64, title, description, payload string, amount decimal.Decimal) error

	// IsChannelMember reports whether the user is subscribed to the given
	// channel. Errors are reported as non-membership by callers.
	IsChannelMember(ctx context.Context, channel string, userID int64) (bool, error)
}
