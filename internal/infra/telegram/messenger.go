package telegram

import (
	"context"
	"log/slog"
	"os"

	"github.com/Dim-Aks/Bot-shop/config"
	"github.com/Dim-Aks/Bot-shop/internal/domain/service"
	"github.com/Dim-Aks/Bot-shop/internal/errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var minorUnitsPerMajor = decimal.NewFromInt(100)

type messenger struct {
	bot     *tgbotapi.BotAPI
	payment config.PaymentConfig
	logger  *slog.Logger
}

// MessengerParams holds dependencies for the Messenger, injected by Fx.
type MessengerParams struct {
	fx.In

	Bot    *tgbotapi.BotAPI
	Config *config.Config
	Logger *slog.Logger
}

// NewMessenger creates the Bot API backed Messenger.
func NewMessenger(params MessengerParams) service.Messenger {
	return &messenger{
		bot:     params.Bot,
		payment: params.Config.Payment,
		logger:  params.Logger,
	}
}

// The Bot API client has no context plumbing, so each call checks for
// cancellation before hitting the network.
func (m *messenger) SendText(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	if _, err := m.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return errors.Wrap(err, "failed to send message")
	}

	return nil
}

func (m *messenger) SendPhoto(ctx context.Context, chatID int64, photo, caption string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	msg := tgbotapi.NewPhoto(chatID, photoFile(photo))
	msg.Caption = caption
	if _, err := m.bot.Send(msg); err != nil {
		return errors.Wrap(err, "failed to send photo")
	}

	return nil
}

func (m *messenger) SendInvoice(ctx context.Context, chatID int64, title, description, payload string, amount decimal.Decimal) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	prices := []tgbotapi.LabeledPrice{{
		Label:  title,
		Amount: int(amount.Mul(minorUnitsPerMajor).IntPart()),
	}}
	invoice := tgbotapi.NewInvoice(chatID, title, description, payload,
		m.payment.ProviderToken, "", m.payment.Currency, prices)
	invoice.NeedName = true
	invoice.NeedPhoneNumber = true

	if _, err := m.bot.Send(invoice); err != nil {
		return errors.Wrap(err, "failed to send invoice")
	}

	return nil
}

func (m *messenger) IsChannelMember(ctx context.Context, channel string, userID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errors.WithStack(err)
	}

	member, err := m.bot.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			SuperGroupUsername: channel,
			UserID:             userID,
		},
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to query channel membership")
	}

	switch member.Status {
	case "creator", "administrator", "member":
		return true, nil
	default:
		return false, nil
	}
}

// photoFile resolves the stored media reference: a path on disk is uploaded,
// anything else is treated as an already-uploaded file ID.
func photoFile(photo string) tgbotapi.RequestFileData {
	if _, err := os.Stat(photo); err == nil {
		return tgbotapi.FilePath(photo)
	}

	return tgbotapi.FileID(photo)
}
