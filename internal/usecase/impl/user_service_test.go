package impl

import (
	"context"
	"testing"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
	"github.com/Dim-Aks/Bot-shop/internal/domain/repository"
	"github.com/Dim-Aks/Bot-shop/internal/mocks"
	"github.com/Dim-Aks/Bot-shop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserServiceForTest(userRepo *mocks.UserRepository) usecase.UserUsecase {
	return &userService{userRepo: userRepo, logger: discardLogger()}
}

func TestRegisterOrRefresh_FirstContactCreatesActiveUser(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	userRepo.On("FindByTelegramID", mock.Anything, int64(111)).
		Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
		return user.TelegramID == 111 && user.Username == "ivan" && user.IsActive
	})).Return(nil)

	service := newUserServiceForTest(userRepo)

	user, err := service.RegisterOrRefresh(context.Background(), usecase.TelegramProfile{
		TelegramID: 111,
		Username:   "ivan",
		FirstName:  "Ivan",
	})

	require.NoError(t, err)
	assert.True(t, user.IsActive)
	userRepo.AssertExpectations(t)
}

func TestRegisterOrRefresh_ChangedProfileIsRefreshed(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	existing := &entity.User{ID: 7, TelegramID: 111, Username: "ivan", FirstName: "Ivan", IsActive: false}
	userRepo.On("FindByTelegramID", mock.Anything, int64(111)).Return(existing, nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
		// The active flag is admin-owned; a profile refresh must not touch it.
		return user.Username == "vanya" && !user.IsActive
	})).Return(nil)

	service := newUserServiceForTest(userRepo)

	user, err := service.RegisterOrRefresh(context.Background(), usecase.TelegramProfile{
		TelegramID: 111,
		Username:   "vanya",
		FirstName:  "Ivan",
	})

	require.NoError(t, err)
	assert.Equal(t, "vanya", user.Username)
	userRepo.AssertExpectations(t)
}

func TestRegisterOrRefresh_UnchangedProfileSkipsUpdate(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	existing := &entity.User{ID: 7, TelegramID: 111, Username: "ivan", FirstName: "Ivan", IsActive: true}
	userRepo.On("FindByTelegramID", mock.Anything, int64(111)).Return(existing, nil)

	service := newUserServiceForTest(userRepo)

	_, err := service.RegisterOrRefresh(context.Background(), usecase.TelegramProfile{
		TelegramID: 111,
		Username:   "ivan",
		FirstName:  "Ivan",
	})

	require.NoError(t, err)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSetActive_FlipsFlag(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	userRepo.On("FindByID", mock.Anything, uint(7)).
		Return(&entity.User{ID: 7, IsActive: true}, nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
		return user.ID == 7 && !user.IsActive
	})).Return(nil)

	service := newUserServiceForTest(userRepo)

	require.NoError(t, service.SetActive(context.Background(), 7, false))
	userRepo.AssertExpectations(t)
}

func TestSetActive_NoopWhenUnchanged(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	userRepo.On("FindByID", mock.Anything, uint(7)).
		Return(&entity.User{ID: 7, IsActive: true}, nil)

	service := newUserServiceForTest(userRepo)

	require.NoError(t, service.SetActive(context.Background(), 7, true))
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
