package impl

import (
	"context"
	"log/slog"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
	"github.com/Dim-Aks/Bot-shop/internal/domain/repository"
	"github.com/Dim-Aks/Bot-shop/internal/errors"
	"github.com/Dim-Aks/Bot-shop/internal/usecase"

	"go.uber.org/fx"
)

type cartService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	CartRepo  repository.CartRepository
	Logger    *slog.Logger
}

// NewCartService creates a new cart service instance.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		cartRepo:  params.CartRepo,
		logger:    params.Logger,
	}
}

// AddToCart merges the add into an existing line or creates a new one with a
// price snapshot, all inside one transaction so two concurrent adds for the
// same (user, product) pair cannot both insert.
func (s *cartService) AddToCart(ctx context.Context, telegramID int64, productID uint, quantity int) bool {
	if quantity <= 0 {
		s.logger.Warn("rejected non-positive cart quantity",
			slog.Int64("telegram_id", telegramID),
			slog.Int("quantity", quantity))

		return false
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.NewUserRepository()
		productRepo := factory.NewProductRepository()
		cartRepo := factory.NewCartRepository()

		user, err := userRepo.FindByTelegramID(ctx, telegramID)
		if err != nil {
			return errors.Wrap(err, "failed to resolve cart owner")
		}

		line, err := cartRepo.FindLineForUpdate(ctx, user.ID, productID)
		if err == nil {
			// Repeat add: accumulate quantity, keep the original snapshot.
			return cartRepo.UpdateQuantity(ctx, line.ID, line.Quantity+quantity)
		}
		if !errors.Is(err, repository.ErrCartLineNotFound) {
			return errors.Wrap(err, "failed to look up cart line")
		}

		product, err := productRepo.FindByID(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to resolve product")
		}

		return cartRepo.Create(ctx, &entity.CartLine{
			UserID:    user.ID,
			ProductID: product.ID,
			Quantity:  quantity,
			Price:     product.Price,
		})
	})
	if err != nil {
		s.logger.Error("failed to add product to cart",
			slog.Int64("telegram_id", telegramID),
			slog.Any("product_id", productID),
			slog.Any("error", err))

		return false
	}

	return true
}

func (s *cartService) FetchCart(ctx context.Context, telegramID int64) ([]entity.CartItem, error) {
	user, err := s.userRepo.FindByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to resolve cart owner")
	}

	items, err := s.cartRepo.FetchItems(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch cart items")
	}

	return items, nil
}

func (s *cartService) RemoveLine(ctx context.Context, lineID uint) bool {
	if err := s.cartRepo.DeleteLine(ctx, lineID); err != nil {
		s.logger.Error("failed to remove cart line",
			slog.Any("line_id", lineID),
			slog.Any("error", err))

		return false
	}

	return true
}

func (s *cartService) ClearCart(ctx context.Context, telegramID int64) bool {
	user, err := s.userRepo.FindByTelegramID(ctx, telegramID)
	if err != nil {
		s.logger.Error("failed to resolve cart owner for clear",
			slog.Int64("telegram_id", telegramID),
			slog.Any("error", err))

		return false
	}

	if err := s.cartRepo.DeleteByUser(ctx, user.ID); err != nil {
		s.logger.Error("failed to clear cart",
			slog.Int64("telegram_id", telegramID),
			slog.Any("error", err))

		return false
	}

	return true
}

func (s *cartService) ItemsForUser(ctx context.Context, userID uint) ([]entity.CartItem, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	return s.cartRepo.FetchItems(ctx, userID)
}
