package service

import (
	"context"

	apperrors "cookbook/internal/errors"
	"cookbook/internal/models"
	"cookbook/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationService handles business logic for notification operations.
type NotificationService struct {
	repo repository.NotificationRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(repo repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// ListNotifications retrieves paginated notifications for a user, newest first.
func (s *NotificationService) ListNotifications(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.NotificationListResponse, error) {
	page, limit = normalizePage(page, limit)

	notifications, total, err := s.repo.FindByUserID(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.NotificationListResponse{
		Items:      notifications,
		Pagination: buildPagination(page, limit, total),
	}, nil
}

// UnreadCount returns the number of unread notifications for a user.
func (s *NotificationService) UnreadCount(ctx context.Context, userID primitive.ObjectID) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}

// MarkRead marks a notification as read. Only the recipient can do this.
func (s *NotificationService) MarkRead(ctx context.Context, userID, id primitive.ObjectID) error {
	notification, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if notification.UserID != userID {
		return apperrors.ErrNotNotificationOwner
	}
	return s.repo.MarkRead(ctx, id)
}

// MarkAllRead marks all of a user's notifications as read.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID primitive.ObjectID) error {
	return s.repo.MarkAllRead(ctx, userID)
}

// DeleteNotification removes a notification. Only the recipient can do this.
func (s *NotificationService) DeleteNotification(ctx context.Context, userID, id primitive.ObjectID) error {
	notification, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if notification.UserID != userID {
		return apperrors.ErrNotNotificationOwner
	}
	return s.repo.Delete(ctx, id)
}
