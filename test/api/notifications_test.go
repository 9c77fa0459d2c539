//go:build api

package api

import (
	"net/http"
	"testing"

	"cookbook/internal/models"
	"cookbook/test/api/testserver"
	"cookbook/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// seedNotifications registers a user and plants count notifications for them.
func seedNotifications(t *testing.T, authHelper *testserver.AuthHelper, notifHelper *testserver.NotificationHelper, email string, count int) (string, []primitive.ObjectID) {
	t.Helper()

	user, accessToken := authHelper.CreateAuthenticatedUser(t, "Notified User", email, "password123")
	userID, err := primitive.ObjectIDFromHex(testserver.GetIDFromResponse(t, user))
	require.NoError(t, err)

	ids := make([]primitive.ObjectID, 0, count)
	for i := 0; i < count; i++ {
		n := notifHelper.SeedNotification(t, &models.Notification{
			UserID:  userID,
			Title:   "Recipe Approved",
			Message: "Your recipe has been approved.",
			Link:    "/recipes/" + primitive.NewObjectID().Hex(),
			Type:    models.NotificationTypeRecipe,
		})
		ids = append(ids, n.ID)
	}
	return accessToken, ids
}

// TestListNotifications tests the GET /api/v1/notifications endpoint.
func TestListNotifications(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	notifHelper := testserver.NewNotificationHelper(testServer)

	accessToken, _ := seedNotifications(t, authHelper, notifHelper, "inbox@example.com", 3)
	otherToken, _ := seedNotifications(t, authHelper, notifHelper, "otherinbox@example.com", 1)

	t.Run("success - lists own notifications only", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/notifications", accessToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		items, ok := resp.Data["items"].([]interface{})
		require.True(t, ok)
		assert.Len(t, items, 3)

		pagination := resp.Data["pagination"].(map[string]interface{})
		assert.Equal(t, float64(3), pagination["totalItems"])
	})

	t.Run("success - respects pagination parameters", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/notifications?page=2&limit=2", accessToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		items, ok := resp.Data["items"].([]interface{})
		require.True(t, ok)
		assert.Len(t, items, 1)
	})

	t.Run("success - another user sees their own inbox", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/notifications", otherToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		items, ok := resp.Data["items"].([]interface{})
		require.True(t, ok)
		assert.Len(t, items, 1)
	})

	t.Run("error - unauthorized without token", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/notifications", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// TestUnreadCount tests the GET /api/v1/notifications/unread-count endpoint.
func TestUnreadCount(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	notifHelper := testserver.NewNotificationHelper(testServer)

	accessToken, ids := seedNotifications(t, authHelper, notifHelper, "counter@example.com", 2)

	t.Run("success - counts unread notifications", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/notifications/unread-count", accessToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, float64(2), resp.Data["count"])
	})

	t.Run("success - reading one decrements the count", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/notifications/"+ids[0].Hex()+"/read", accessToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w2 := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/notifications/unread-count", accessToken, nil)
		assert.Equal(t, http.StatusOK, w2.Code)

		resp := testutil.ParseAPIResponse(t, w2)
		assert.Equal(t, float64(1), resp.Data["count"])
	})
}

// TestMarkNotificationRead tests the PUT /api/v1/notifications/:id/read endpoint.
func TestMarkNotificationRead(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	notifHelper := testserver.NewNotificationHelper(testServer)

	accessToken, ids := seedNotifications(t, authHelper, notifHelper, "reader@example.com", 1)
	strangerToken, _ := seedNotifications(t, authHelper, notifHelper, "nosy@example.com", 0)

	t.Run("success - marks own notification as read", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/notifications/"+ids[0].Hex()+"/read", accessToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		w2 := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/notifications", accessToken, nil)
		require.Equal(t, http.StatusOK, w2.Code)

		resp := testutil.ParseAPIResponse(t, w2)
		items := resp.Data["items"].([]interface{})
		require.Len(t, items, 1)

		notification := items[0].(map[string]interface{})
		assert.Equal(t, true, notification["isRead"])
	})

	t.Run("error - cannot mark another user's notification", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/notifications/"+ids[0].Hex()+"/read", strangerToken, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("error - unknown notification id", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/notifications/507f1f77bcf86cd799439099/read", accessToken, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("error - malformed notification id", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/notifications/not-an-id/read", accessToken, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestMarkAllNotificationsRead tests the PUT /api/v1/notifications/read-all endpoint.
func TestMarkAllNotificationsRead(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	notifHelper := testserver.NewNotificationHelper(testServer)

	accessToken, _ := seedNotifications(t, authHelper, notifHelper, "readall@example.com", 3)
	otherToken, _ := seedNotifications(t, authHelper, notifHelper, "untouched@example.com", 1)

	t.Run("success - clears the unread count", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/notifications/read-all", accessToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		w2 := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/notifications/unread-count", accessToken, nil)
		require.Equal(t, http.StatusOK, w2.Code)

		resp := testutil.ParseAPIResponse(t, w2)
		assert.Equal(t, float64(0), resp.Data["count"])
	})

	t.Run("success - other users' notifications stay unread", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/notifications/unread-count", otherToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, float64(1), resp.Data["count"])
	})
}

// TestDeleteNotification tests the DELETE /api/v1/notifications/:id endpoint.
func TestDeleteNotification(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	notifHelper := testserver.NewNotificationHelper(testServer)

	accessToken, ids := seedNotifications(t, authHelper, notifHelper, "cleaner@example.com", 2)
	strangerToken, _ := seedNotifications(t, authHelper, notifHelper, "meddler@example.com", 0)

	t.Run("error - cannot delete another user's notification", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/notifications/"+ids[0].Hex(), strangerToken, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("success - deletes own notification", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/notifications/"+ids[0].Hex(), accessToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		w2 := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/notifications", accessToken, nil)
		require.Equal(t, http.StatusOK, w2.Code)

		resp := testutil.ParseAPIResponse(t, w2)
		items := resp.Data["items"].([]interface{})
		assert.Len(t, items, 1)
	})

	t.Run("error - unknown notification id", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/notifications/507f1f77bcf86cd799439099", accessToken, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
