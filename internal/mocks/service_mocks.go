package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// Messenger is a mock of service.Messenger.
type Messenger struct {
	mock.Mock
}

func (m *Messenger) SendText(ctx context.Context, chatID int64, text string) error {
	return m.Called(ctx, chatID, text).Error(0)
}

func (m *Messenger) SendPhoto(ctx context.Context, chatID int64, photo, caption string) error {
	return m.Called(ctx, chatID, photo, caption).Error(0)
}

func (m *Messenger) SendInvoice(ctx context.Context, chatID int64, title, description, payload string, amount decimal.Decimal) error {
	return m.Called(ctx, chatID, title, description, payload, amount).Error(0)
}

func (m *Messenger) IsChannelMember(ctx context.Context, channel string, userID int64) (bool, error) {
	args := m.Called(ctx, channel, userID)

	return args.Bool(0), args.Error(1)
}
