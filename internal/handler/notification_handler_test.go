package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "cookbook/internal/errors"
	"cookbook/internal/models"
	"cookbook/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewNotificationHandler(t *testing.T) {
	mockService := &mocks.MockNotificationService{}
	handler := NewNotificationHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestNotificationHandler_ListNotifications(t *testing.T) {
	userID := primitive.NewObjectID()

	tests := []struct {
		name           string
		query          string
		mockSetup      func(*mocks.MockNotificationService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:  "returns notifications newest first",
			query: "?page=1&limit=10",
			mockSetup: func(m *mocks.MockNotificationService) {
				m.ListNotificationsFunc = func(ctx context.Context, uid primitive.ObjectID, page, limit int) (*models.NotificationListResponse, error) {
					assert.Equal(t, userID, uid)
					return &models.NotificationListResponse{
						Items: []models.Notification{
							{ID: primitive.NewObjectID(), Type: models.NotificationTypeRecipe, Message: "Your recipe was approved"},
						},
						Pagination: models.Pagination{Page: 1, Limit: 10, TotalItems: 1, TotalPages: 1},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, true, resp["success"])
				data := resp["data"].(map[string]interface{})
				items := data["items"].([]interface{})
				assert.Len(t, items, 1)
			},
		},
		{
			name:  "internal server error",
			query: "",
			mockSetup: func(m *mocks.MockNotificationService) {
				m.ListNotificationsFunc = func(ctx context.Context, uid primitive.ObjectID, page, limit int) (*models.NotificationListResponse, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockNotificationService{}
			tt.mockSetup(mockService)

			handler := NewNotificationHandler(mockService)

			router := gin.New()
			router.GET("/notifications", authAs(userID, "Alice", models.RoleUser), handler.ListNotifications)

			req := httptest.NewRequest(http.MethodGet, "/notifications"+tt.query, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestNotificationHandler_UnreadCount(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("returns unread count", func(t *testing.T) {
		mockService := &mocks.MockNotificationService{
			UnreadCountFunc: func(ctx context.Context, uid primitive.ObjectID) (int, error) {
				assert.Equal(t, userID, uid)
				return 4, nil
			},
		}

		handler := NewNotificationHandler(mockService)

		router := gin.New()
		router.GET("/notifications/unread-count", authAs(userID, "Alice", models.RoleUser), handler.UnreadCount)

		req := httptest.NewRequest(http.MethodGet, "/notifications/unread-count", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		assert.NoError(t, err)
		data := resp["data"].(map[string]interface{})
		assert.Equal(t, float64(4), data["count"])
	})

	t.Run("internal server error", func(t *testing.T) {
		mockService := &mocks.MockNotificationService{
			UnreadCountFunc: func(ctx context.Context, uid primitive.ObjectID) (int, error) {
				return 0, errors.New("database error")
			},
		}

		handler := NewNotificationHandler(mockService)

		router := gin.New()
		router.GET("/notifications/unread-count", authAs(userID, "Alice", models.RoleUser), handler.UnreadCount)

		req := httptest.NewRequest(http.MethodGet, "/notifications/unread-count", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	userID := primitive.NewObjectID()
	notificationID := primitive.NewObjectID()

	tests := []struct {
		name           string
		notificationID string
		mockSetup      func(*mocks.MockNotificationService)
		expectedStatus int
	}{
		{
			name:           "marks own notification as read",
			notificationID: notificationID.Hex(),
			mockSetup: func(m *mocks.MockNotificationService) {
				m.MarkReadFunc = func(ctx context.Context, uid, id primitive.ObjectID) error {
					assert.Equal(t, userID, uid)
					assert.Equal(t, notificationID, id)
					return nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "refuses another user's notification",
			notificationID: notificationID.Hex(),
			mockSetup: func(m *mocks.MockNotificationService) {
				m.MarkReadFunc = func(ctx context.Context, uid, id primitive.ObjectID) error {
					return apperrors.ErrNotNotificationOwner
				}
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "notification not found",
			notificationID: notificationID.Hex(),
			mockSetup: func(m *mocks.MockNotificationService) {
				m.MarkReadFunc = func(ctx context.Context, uid, id primitive.ObjectID) error {
					return apperrors.ErrNotificationNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid notification ID",
			notificationID: "not-an-id",
			mockSetup:      func(m *mocks.MockNotificationService) {},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockNotificationService{}
			tt.mockSetup(mockService)

			handler := NewNotificationHandler(mockService)

			router := gin.New()
			router.PUT("/notifications/:id/read", authAs(userID, "Alice", models.RoleUser), handler.MarkRead)

			req := httptest.NewRequest(http.MethodPut, "/notifications/"+tt.notificationID+"/read", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("marks all notifications as read", func(t *testing.T) {
		called := false
		mockService := &mocks.MockNotificationService{
			MarkAllReadFunc: func(ctx context.Context, uid primitive.ObjectID) error {
				called = true
				assert.Equal(t, userID, uid)
				return nil
			},
		}

		handler := NewNotificationHandler(mockService)

		router := gin.New()
		router.PUT("/notifications/read-all", authAs(userID, "Alice", models.RoleUser), handler.MarkAllRead)

		req := httptest.NewRequest(http.MethodPut, "/notifications/read-all", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, called)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockService := &mocks.MockNotificationService{
			MarkAllReadFunc: func(ctx context.Context, uid primitive.ObjectID) error {
				return errors.New("database error")
			},
		}

		handler := NewNotificationHandler(mockService)

		router := gin.New()
		router.PUT("/notifications/read-all", authAs(userID, "Alice", models.RoleUser), handler.MarkAllRead)

		req := httptest.NewRequest(http.MethodPut, "/notifications/read-all", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestNotificationHandler_DeleteNotification(t *testing.T) {
	userID := primitive.NewObjectID()
	notificationID := primitive.NewObjectID()

	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockNotificationService)
		expectedStatus int
	}{
		{
			name: "deletes own notification",
			mockSetup: func(m *mocks.MockNotificationService) {
				m.DeleteNotificationFunc = func(ctx context.Context, uid, id primitive.ObjectID) error {
					return nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "refuses another user's notification",
			mockSetup: func(m *mocks.MockNotificationService) {
				m.DeleteNotificationFunc = func(ctx context.Context, uid, id primitive.ObjectID) error {
					return apperrors.ErrNotNotificationOwner
				}
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "notification not found",
			mockSetup: func(m *mocks.MockNotificationService) {
				m.DeleteNotificationFunc = func(ctx context.Context, uid, id primitive.ObjectID) error {
					return apperrors.ErrNotificationNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockNotificationService{}
			tt.mockSetup(mockService)

			handler := NewNotificationHandler(mockService)

			router := gin.New()
			router.DELETE("/notifications/:id", authAs(userID, "Alice", models.RoleUser), handler.DeleteNotification)

			req := httptest.NewRequest(http.MethodDelete, "/notifications/"+notificationID.Hex(), nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
