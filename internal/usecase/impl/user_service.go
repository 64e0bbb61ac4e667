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

type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService creates a new user service instance.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (s *userService) RegisterOrRefresh(ctx context.Context, profile usecase.TelegramProfile) (*entity.User, error) {
	user, err := s.userRepo.FindByTelegramID(ctx, profile.TelegramID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to look up user")
		}

		user = &entity.User{
			TelegramID: profile.TelegramID,
			Username:   profile.Username,
			FirstName:  profile.FirstName,
			LastName:   profile.LastName,
			IsActive:   true,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to register user")
		}

		s.logger.Info("registered new user",
			slog.Int64("telegram_id", user.TelegramID),
			slog.String("username", user.Username))

		return user, nil
	}

	if user.Username == profile.Username &&
		user.FirstName == profile.FirstName &&
		user.LastName == profile.LastName {
		return user, nil
	}

	user.Username = profile.Username
	user.FirstName = profile.FirstName
	user.LastName = profile.LastName
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to refresh user profile")
	}

	return user, nil
}

func (s *userService) GetByTelegramID(ctx context.Context, telegramID int64) (*entity.User, error) {
	return s.userRepo.FindByTelegramID(ctx, telegramID)
}

func (s *userService) Get(ctx context.Context, id uint) (*entity.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *userService) List(ctx context.Context) ([]*entity.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) SetActive(ctx context.Context, id uint, active bool) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.IsActive == active {
		return nil
	}

	user.IsActive = active

	return s.userRepo.Update(ctx, user)
}
