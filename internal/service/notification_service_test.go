package service

import (
	"context"
	"testing"

	apperrors "cookbook/internal/errors"
	"cookbook/internal/models"
	repomocks "cookbook/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestNotificationService_ListNotifications(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("returns paginated notifications", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockNotificationRepository(ctrl)
		mockRepo.EXPECT().
			FindByUserID(gomock.Any(), userID, 1, 10).
			Return([]models.Notification{
				{ID: primitive.NewObjectID(), UserID: userID, Title: "Recipe Approved"},
			}, 1, nil)

		service := NewNotificationService(mockRepo)
		resp, err := service.ListNotifications(context.Background(), userID, 1, 10)

		require.NoError(t, err)
		assert.Len(t, resp.Items, 1)
		assert.Equal(t, 1, resp.Pagination.TotalItems)
	})

	t.Run("applies default pagination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockNotificationRepository(ctrl)
		mockRepo.EXPECT().
			FindByUserID(gomock.Any(), userID, 1, 10).
			Return([]models.Notification{}, 0, nil)

		service := NewNotificationService(mockRepo)
		resp, err := service.ListNotifications(context.Background(), userID, 0, 0)

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Pagination.Page)
		assert.Equal(t, 10, resp.Pagination.Limit)
	})
}

func TestNotificationService_UnreadCount(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("returns unread count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockNotificationRepository(ctrl)
		mockRepo.EXPECT().
			CountUnread(gomock.Any(), userID).
			Return(3, nil)

		service := NewNotificationService(mockRepo)
		count, err := service.UnreadCount(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	userID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()
	notificationID := primitive.NewObjectID()

	t.Run("marks own notification as read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockNotificationRepository(ctrl)
		mockRepo.EXPECT().
			FindByID(gomock.Any(), notificationID).
			Return(&models.Notification{ID: notificationID, UserID: userID}, nil)
		mockRepo.EXPECT().
			MarkRead(gomock.Any(), notificationID).
			Return(nil)

		service := NewNotificationService(mockRepo)
		err := service.MarkRead(context.Background(), userID, notificationID)

		assert.NoError(t, err)
	})

	t.Run("refuses to mark another user's notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockNotificationRepository(ctrl)
		mockRepo.EXPECT().
			FindByID(gomock.Any(), notificationID).
			Return(&models.Notification{ID: notificationID, UserID: otherID}, nil)

		service := NewNotificationService(mockRepo)
		err := service.MarkRead(context.Background(), userID, notificationID)

		assert.Equal(t, apperrors.ErrNotNotificationOwner, err)
	})

	t.Run("returns error when notification not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockNotificationRepository(ctrl)
		mockRepo.EXPECT().
			FindByID(gomock.Any(), notificationID).
			Return(nil, apperrors.ErrNotificationNotFound)

		service := NewNotificationService(mockRepo)
		err := service.MarkRead(context.Background(), userID, notificationID)

		assert.Equal(t, apperrors.ErrNotificationNotFound, err)
	})
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("marks all notifications as read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockNotificationRepository(ctrl)
		mockRepo.EXPECT().
			MarkAllRead(gomock.Any(), userID).
			Return(nil)

		service := NewNotificationService(mockRepo)
		err := service.MarkAllRead(context.Background(), userID)

		assert.NoError(t, err)
	})
}

func TestNotificationService_DeleteNotification(t *testing.T) {
	userID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()
	notificationID := primitive.NewObjectID()

	t.Run("deletes own notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockNotificationRepository(ctrl)
		mockRepo.EXPECT().
			FindByID(gomock.Any(), notificationID).
			Return(&models.Notification{ID: notificationID, UserID: userID}, nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), notificationID).
			Return(nil)

		service := NewNotificationService(mockRepo)
		err := service.DeleteNotification(context.Background(), userID, notificationID)

		assert.NoError(t, err)
	})

	t.Run("refuses to delete another user's notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockNotificationRepository(ctrl)
		mockRepo.EXPECT().
			FindByID(gomock.Any(), notificationID).
			Return(&models.Notification{ID: notificationID, UserID: otherID}, nil)

		service := NewNotificationService(mockRepo)
		err := service.DeleteNotification(context.Background(), userID, notificationID)

		assert.Equal(t, apperrors.ErrNotNotificationOwner, err)
	})
}
