package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Dim-Aks/Bot-shop/config"
	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
	"github.com/Dim-Aks/Bot-shop/internal/domain/repository"
	"github.com/Dim-Aks/Bot-shop/internal/domain/service"
	"github.com/Dim-Aks/Bot-shop/internal/errors"
	"github.com/Dim-Aks/Bot-shop/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// newInvoicePayload mints the opaque token that correlates an invoice with
// its successful-payment event.
func newInvoicePayload() string {
	return uuid.NewString()
}

type checkoutService struct {
	sessions  *sessionStore
	cart      usecase.CartUsecase
	catalog   usecase.CatalogUsecase
	messenger service.Messenger
	payment   config.PaymentConfig
	logger    *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Cart      usecase.CartUsecase
	Catalog   usecase.CatalogUsecase
	Messenger service.Messenger
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCheckoutService creates a new checkout service instance. The session
// store it owns is process-local; restarting the service resets every
// conversation to Idle.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		sessions:  newSessionStore(),
		cart:      params.Cart,
		catalog:   params.Catalog,
		messenger: params.Messenger,
		payment:   params.Config.Payment,
		logger:    params.Logger,
	}
}

func (s *checkoutService) State(chatID int64) usecase.CheckoutState {
	return s.sessions.state(chatID)
}

func (s *checkoutService) BeginQuantity(chatID int64, productID uint) {
	s.sessions.update(chatID, func(session *checkoutSession) {
		session.State = usecase.StateAwaitingQuantity
		session.ProductID = productID
	})
}

// SubmitQuantity consumes the quantity prompt's reply. Whatever the outcome,
// the conversation does not stay in AwaitingQuantity: a bad reply returns the
// user to Idle instead of trapping them in a re-prompt loop.
func (s *checkoutService) SubmitQuantity(ctx context.Context, chatID, telegramID int64, text string) (int, error) {
	session, ok := s.sessions.snapshot(chatID)
	s.sessions.reset(chatID)
	if !ok || session.State != usecase.StateAwaitingQuantity {
		return 0, usecase.ErrSessionExpired
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || quantity <= 0 {
		return 0, usecase.ErrInvalidQuantity
	}

	if _, err := s.catalog.GetProduct(ctx, session.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return 0, usecase.ErrSessionExpired
		}

		return 0, errors.Wrap(err, "failed to verify product")
	}

	if !s.cart.AddToCart(ctx, telegramID, session.ProductID, quantity) {
		return 0, errors.New("failed to add product to cart")
	}

	return quantity, nil
}

func (s *checkoutService) BeginCheckout(chatID int64) {
	s.sessions.update(chatID, func(session *checkoutSession) {
		*session = checkoutSession{State: usecase.StateAwaitingName}
	})
}

func (s *checkoutService) SubmitName(chatID int64, name string) {
	s.sessions.update(chatID, func(session *checkoutSession) {
		session.Name = strings.TrimSpace(name)
		session.State = usecase.StateAwaitingAddress
	})
}

func (s *checkoutService) SubmitAddress(chatID int64, address string) {
	s.sessions.update(chatID, func(session *checkoutSession) {
		session.Address = strings.TrimSpace(address)
		session.State = usecase.StateAwaitingPhone
	})
}

func (s *checkoutService) SubmitPhone(ctx context.Context, chatID, telegramID int64, phone string) (*usecase.OrderSummary, error) {
	items, err := s.cart.FetchCart(ctx, telegramID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch cart for checkout")
	}
	if len(items) == 0 {
		// The cart emptied underneath the form; the order no longer exists.
		s.sessions.reset(chatID)

		return nil, usecase.ErrCartEmpty
	}

	total := entity.CartTotal(items)

	var summary *usecase.OrderSummary
	s.sessions.update(chatID, func(session *checkoutSession) {
		session.Phone = strings.TrimSpace(phone)
		session.Total = total
		session.State = usecase.StateAwaitingPayment

		summary = &usecase.OrderSummary{
			Items:   items,
			Total:   total,
			Name:    session.Name,
			Address: session.Address,
			Phone:   session.Phone,
		}
	})

	return summary, nil
}

func (s *checkoutService) Pay(ctx context.Context, chatID, telegramID int64) error {
	session, ok := s.sessions.snapshot(chatID)
	if !ok || session.State != usecase.StateAwaitingPayment {
		return usecase.ErrSessionExpired
	}
	if s.payment.ProviderToken == "" {
		return usecase.ErrPaymentUnavailable
	}
	if !session.Total.IsPositive() {
		return usecase.ErrInvalidTotal
	}

	payload := newInvoicePayload()
	description := fmt.Sprintf("Delivery to %s, %s", session.Name, session.Address)
	if err := s.messenger.SendInvoice(ctx, chatID, "Order payment", description, payload, session.Total); err != nil {
		return errors.Wrap(err, "failed to send invoice")
	}

	s.logger.Info("invoice issued",
		slog.Int64("chat_id", chatID),
		slog.String("payload", payload),
		slog.String("total", session.Total.String()))

	return nil
}

func (s *checkoutService) Cancel(chatID int64) {
	s.sessions.reset(chatID)
}

// ConfirmPayment reacts to the transport's successful-payment event. The
// event is authoritative: the cart and the session are cleared no matter
// which state the conversation is in.
func (s *checkoutService) ConfirmPayment(ctx context.Context, chatID, telegramID int64) error {
	s.sessions.reset(chatID)

	if !s.cart.ClearCart(ctx, telegramID) {
		return errors.New("failed to clear cart after payment")
	}

	s.logger.Info("payment confirmed", slog.Int64("chat_id", chatID))

	return nil
}
