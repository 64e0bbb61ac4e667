package impl

import (
	"context"
	"errors"
	"testing"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
	domainerrors "github.com/Dim-Aks/Bot-shop/internal/domain/errors"
	"github.com/Dim-Aks/Bot-shop/internal/mocks"
	"github.com/Dim-Aks/Bot-shop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMailingServiceForTest(
	mailingRepo *mocks.MailingRepository,
	userRepo *mocks.UserRepository,
	messenger *mocks.Messenger,
) usecase.MailingUsecase {
	return &mailingService{
		mailingRepo: mailingRepo,
		userRepo:    userRepo,
		messenger:   messenger,
		logger:      discardLogger(),
	}
}

func activeUsers(ids ...int64) []*entity.User {
	users := make([]*entity.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, &entity.User{TelegramID: id, IsActive: true})
	}

	return users
}

func TestSend_TextMailingFansOutToActiveUsers(t *testing.T) {
	mailingRepo := new(mocks.MailingRepository)
	userRepo := new(mocks.UserRepository)
	messenger := new(mocks.Messenger)

	mailing := &entity.Mailing{ID: 1, Text: "Grand opening!"}
	mailingRepo.On("FindByID", mock.Anything, uint(1)).Return(mailing, nil)
	userRepo.On("ListActive", mock.Anything).Return(activeUsers(10, 20, 30), nil)
	messenger.On("SendText", mock.Anything, int64(10), "Grand opening!").Return(nil)
	messenger.On("SendText", mock.Anything, int64(20), "Grand opening!").Return(nil)
	messenger.On("SendText", mock.Anything, int64(30), "Grand opening!").Return(nil)
	mailingRepo.On("MarkSent", mock.Anything, uint(1)).Return(nil).Once()

	service := newMailingServiceForTest(mailingRepo, userRepo, messenger)

	report, err := service.Send(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, &usecase.MailingReport{Recipients: 3, Delivered: 3}, report)
	mailingRepo.AssertExpectations(t)
	messenger.AssertExpectations(t)
}

func TestSend_MediaMailingUsesTextAsCaption(t *testing.T) {
	mailingRepo := new(mocks.MailingRepository)
	userRepo := new(mocks.UserRepository)
	messenger := new(mocks.Messenger)

	mailing := &entity.Mailing{ID: 2, Text: "New menu", MediaFile: "media/menu.jpg"}
	mailingRepo.On("FindByID", mock.Anything, uint(2)).Return(mailing, nil)
	userRepo.On("ListActive", mock.Anything).Return(activeUsers(10), nil)
	messenger.On("SendPhoto", mock.Anything, int64(10), "media/menu.jpg", "New menu").Return(nil)
	mailingRepo.On("MarkSent", mock.Anything, uint(2)).Return(nil)

	service := newMailingServiceForTest(mailingRepo, userRepo, messenger)

	report, err := service.Send(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Delivered)
	messenger.AssertNotCalled(t, "SendText", mock.Anything, mock.Anything, mock.Anything)
}

func TestSend_FailedRecipientDoesNotAbortFanOut(t *testing.T) {
	mailingRepo := new(mocks.MailingRepository)
	userRepo := new(mocks.UserRepository)
	messenger := new(mocks.Messenger)

	mailing := &entity.Mailing{ID: 3, Text: "Hello"}
	mailingRepo.On("FindByID", mock.Anything, uint(3)).Return(mailing, nil)
	userRepo.On("ListActive", mock.Anything).Return(activeUsers(10, 20, 30), nil)
	messenger.On("SendText", mock.Anything, int64(10), "Hello").Return(nil)
	messenger.On("SendText", mock.Anything, int64(20), "Hello").
		Return(errors.New("bot was blocked by the user"))
	messenger.On("SendText", mock.Anything, int64(30), "Hello").Return(nil)
	mailingRepo.On("MarkSent", mock.Anything, uint(3)).Return(nil).Once()

	service := newMailingServiceForTest(mailingRepo, userRepo, messenger)

	report, err := service.Send(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, &usecase.MailingReport{Recipients: 3, Delivered: 2, Failed: 1}, report)
	messenger.AssertExpectations(t)
}

func TestSend_AlreadySentRefused(t *testing.T) {
	mailingRepo := new(mocks.MailingRepository)
	userRepo := new(mocks.UserRepository)
	messenger := new(mocks.Messenger)

	mailingRepo.On("FindByID", mock.Anything, uint(4)).
		Return(&entity.Mailing{ID: 4, Text: "Hello", Sent: true}, nil)

	service := newMailingServiceForTest(mailingRepo, userRepo, messenger)

	_, err := service.Send(context.Background(), 4)

	assert.ErrorIs(t, err, domainerrors.ErrMailingAlreadySent)
	userRepo.AssertNotCalled(t, "ListActive", mock.Anything)
	mailingRepo.AssertNotCalled(t, "MarkSent", mock.Anything, mock.Anything)
}

func TestSend_EmptyMailingSkipsEveryRecipient(t *testing.T) {
	mailingRepo := new(mocks.MailingRepository)
	userRepo := new(mocks.UserRepository)
	messenger := new(mocks.Messenger)

	mailingRepo.On("FindByID", mock.Anything, uint(5)).
		Return(&entity.Mailing{ID: 5}, nil)
	userRepo.On("ListActive", mock.Anything).Return(activeUsers(10, 20), nil)
	mailingRepo.On("MarkSent", mock.Anything, uint(5)).Return(nil)

	service := newMailingServiceForTest(mailingRepo, userRepo, messenger)

	report, err := service.Send(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, &usecase.MailingReport{Recipients: 2, Skipped: 2}, report)
	messenger.AssertNotCalled(t, "SendText", mock.Anything, mock.Anything, mock.Anything)
	messenger.AssertNotCalled(t, "SendPhoto", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_EmptyMailingRejected(t *testing.T) {
	mailingRepo := new(mocks.MailingRepository)

	service := newMailingServiceForTest(mailingRepo, new(mocks.UserRepository), new(mocks.Messenger))

	err := service.Create(context.Background(), &entity.Mailing{})

	assert.ErrorIs(t, err, domainerrors.ErrMailingEmpty)
	mailingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdate_SentMailingRejected(t *testing.T) {
	mailingRepo := new(mocks.MailingRepository)

	mailingRepo.On("FindByID", mock.Anything, uint(6)).
		Return(&entity.Mailing{ID: 6, Text: "old", Sent: true}, nil)

	service := newMailingServiceForTest(mailingRepo, new(mocks.UserRepository), new(mocks.Messenger))

	err := service.Update(context.Background(), &entity.Mailing{ID: 6, Text: "new"})

	assert.ErrorIs(t, err, domainerrors.ErrMailingAlreadySent)
	mailingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
