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
)

// TestGetMe tests the GET /api/v1/users/me endpoint.
func TestGetMe(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	userData, accessToken := authHelper.CreateAuthenticatedUser(t, "Me User", "me@example.com", "password123")

	t.Run("success - returns own profile", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/me", accessToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Data)

		assert.Equal(t, "me@example.com", resp.Data["email"])
		assert.Equal(t, "Me User", resp.Data["name"])
		assert.Equal(t, userData["id"], resp.Data["id"])

		// Password must never leak
		_, hasPassword := resp.Data["password"]
		assert.False(t, hasPassword, "password should not be in response")
	})

	t.Run("error - unauthorized without token", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/me", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// TestGetUser tests the GET /api/v1/users/:id endpoint.
func TestGetUser(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	targetData, _ := authHelper.CreateAuthenticatedUser(t, "Target User", "target@example.com", "password123")
	_, viewerToken := authHelper.CreateAuthenticatedUser(t, "Viewer User", "viewer@example.com", "password123")

	targetID := testserver.GetIDFromResponse(t, targetData)

	t.Run("success - returns another user's public profile", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/"+targetID, viewerToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.True(t, resp.Success)
		assert.Equal(t, "Target User", resp.Data["name"])
	})

	t.Run("error - unknown user id", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/507f1f77bcf86cd799439099", viewerToken, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("error - malformed user id", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/not-a-hex-id", viewerToken, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestUpdateMe tests the PUT /api/v1/users/me endpoint.
func TestUpdateMe(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	_, accessToken := authHelper.CreateAuthenticatedUser(t, "Update User", "update@example.com", "password123")

	t.Run("success - updates name", func(t *testing.T) {
		newName := "Updated Name"
		req := models.UpdateUserRequest{Name: &newName}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/users/me", accessToken, req)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.True(t, resp.Success)
		assert.Equal(t, "Updated Name", resp.Data["name"])
	})

	t.Run("success - updates email", func(t *testing.T) {
		newEmail := "updated@example.com"
		req := models.UpdateUserRequest{Email: &newEmail}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/users/me", accessToken, req)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "updated@example.com", resp.Data["email"])
	})

	t.Run("error - email already taken", func(t *testing.T) {
		authHelper.RegisterUser(t, "Other User", "taken@example.com", "password123")

		takenEmail := "taken@example.com"
		req := models.UpdateUserRequest{Email: &takenEmail}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/users/me", accessToken, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("error - invalid email format", func(t *testing.T) {
		badEmail := "not-an-email"
		req := models.UpdateUserRequest{Email: &badEmail}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/users/me", accessToken, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - unauthorized without token", func(t *testing.T) {
		newName := "Nobody"
		req := models.UpdateUserRequest{Name: &newName}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPut, "/api/v1/users/me", req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// TestRequestAvatarUpload tests the POST /api/v1/users/me/avatar endpoint.
func TestRequestAvatarUpload(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	_, accessToken := authHelper.CreateAuthenticatedUser(t, "Avatar User", "avatar@example.com", "password123")

	t.Run("success - returns pre-signed upload url", func(t *testing.T) {
		req := models.AvatarUploadRequest{Format: "png"}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/users/me/avatar", accessToken, req)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.True(t, resp.Success)

		uploadURL, ok := resp.Data["uploadUrl"].(string)
		assert.True(t, ok, "uploadUrl should be a string")
		assert.NotEmpty(t, uploadURL)
	})

	t.Run("error - unsupported format", func(t *testing.T) {
		req := models.AvatarUploadRequest{Format: "bmp"}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/users/me/avatar", accessToken, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - missing format", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/users/me/avatar", accessToken, map[string]string{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
