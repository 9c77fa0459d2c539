package handler

import (
	"errors"

	apperrors "cookbook/internal/errors"
	"cookbook/internal/middleware"
	"cookbook/internal/models"
	"cookbook/internal/service"
	"cookbook/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationHandler handles HTTP requests for notification operations.
type NotificationHandler struct {
	service service.NotificationServicer
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(service service.NotificationServicer) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ListNotifications godoc
// @Summary      List notifications
// @Description  Retrieve the current user's notifications, newest first
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Items per page (max 10)"
// @Success      200    {object}  response.Response{data=models.NotificationListResponse}
// @Failure      401    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	page, limit := pageParams(c)

	result, err := h.service.ListNotifications(c.Request.Context(), middleware.GetUserObjectID(c), page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// UnreadCount godoc
// @Summary      Count unread notifications
// @Description  Return the number of unread notifications for the current user
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=models.UnreadCountResponse}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.service.UnreadCount(c.Request.Context(), middleware.GetUserObjectID(c))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, models.UnreadCountResponse{Count: count})
}

// MarkRead godoc
// @Summary      Mark a notification as read
// @Description  Mark one of the current user's notifications as read
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Notification ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.NotFound(c, apperrors.ErrNotificationNotFound.Error())
		return
	}

	err = h.service.MarkRead(c.Request.Context(), middleware.GetUserObjectID(c), id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotificationNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrNotNotificationOwner):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Message(c, "notification marked as read")
}

// MarkAllRead godoc
// @Summary      Mark all notifications as read
// @Description  Mark all of the current user's notifications as read
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.service.MarkAllRead(c.Request.Context(), middleware.GetUserObjectID(c)); err != nil {
		response.InternalError(c)
		return
	}

	response.Message(c, "all notifications marked as read")
}

// DeleteNotification godoc
// @Summary      Delete a notification
// @Description  Remove one of the current user's notifications
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Notification ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.NotFound(c, apperrors.ErrNotificationNotFound.Error())
		return
	}

	err = h.service.DeleteNotification(c.Request.Context(), middleware.GetUserObjectID(c), id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotificationNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrNotNotificationOwner):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Message(c, "notification deleted")
}
