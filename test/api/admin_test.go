//go:build api

package api

import (
	"context"
	"net/http"
	"testing"

	"cookbook/internal/models"
	"cookbook/test/api/testserver"
	"cookbook/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestAdminAccess tests that /admin routes are limited to admins.
func TestAdminAccess(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	_, userToken := authHelper.CreateAuthenticatedUser(t, "Plain User", "plain@example.com", "password123")
	_, adminToken := authHelper.CreateAdminUser(t, "Admin", "admin@example.com", "password123")

	t.Run("error - regular user is forbidden", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/admin/recipes/pending", userToken, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("error - anonymous is unauthorized", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/admin/recipes/pending", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("success - admin is allowed", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/admin/recipes/pending", adminToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

// TestListPendingRecipes tests the GET /api/v1/admin/recipes/pending endpoint.
func TestListPendingRecipes(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	recipeHelper := testserver.NewRecipeHelper(testServer)

	_, authorToken := authHelper.CreateAuthenticatedUser(t, "Queue Author", "queue@example.com", "password123")
	_, adminToken := authHelper.CreateAdminUser(t, "Queue Admin", "queueadmin@example.com", "password123")

	recipeHelper.CreateRecipe(t, authorToken, "Awaiting One")
	recipeHelper.CreateRecipe(t, authorToken, "Awaiting Two")
	recipeHelper.CreateApprovedRecipe(t, authorToken, "Already Live")

	t.Run("success - lists only pending recipes", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/admin/recipes/pending", adminToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		items, ok := resp.Data["items"].([]interface{})
		require.True(t, ok)
		assert.Len(t, items, 2)

		for _, item := range items {
			recipe := item.(map[string]interface{})
			assert.Equal(t, string(models.StatusPending), recipe["status"])
		}
	})
}

// TestApproveRecipe tests the PUT /api/v1/admin/recipes/:id/approve endpoint.
func TestApproveRecipe(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	recipeHelper := testserver.NewRecipeHelper(testServer)

	_, authorToken := authHelper.CreateAuthenticatedUser(t, "Approve Author", "approveauthor@example.com", "password123")
	_, adminToken := authHelper.CreateAdminUser(t, "Approve Admin", "approveadmin@example.com", "password123")

	t.Run("success - approves and notifies the owner", func(t *testing.T) {
		data := recipeHelper.CreateRecipe(t, authorToken, "Worthy Recipe")
		recipeID := testserver.GetIDFromResponse(t, data)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/admin/recipes/"+recipeID+"/approve", adminToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, string(models.StatusApproved), resp.Data["status"])

		// The recipe is now publicly visible
		w2 := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/recipes/"+recipeID, nil)
		assert.Equal(t, http.StatusOK, w2.Code)

		// The owner received an approval notification
		w3 := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/notifications", authorToken, nil)
		require.Equal(t, http.StatusOK, w3.Code)

		notifResp := testutil.ParseAPIResponse(t, w3)
		items, ok := notifResp.Data["items"].([]interface{})
		require.True(t, ok)
		require.NotEmpty(t, items)

		latest := items[0].(map[string]interface{})
		assert.Equal(t, "Recipe Approved", latest["title"])
		assert.Contains(t, latest["message"], "Worthy Recipe")
	})

	t.Run("error - unknown recipe id", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/admin/recipes/507f1f77bcf86cd799439099/approve", adminToken, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestRejectRecipe tests the PUT /api/v1/admin/recipes/:id/reject endpoint.
func TestRejectRecipe(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	recipeHelper := testserver.NewRecipeHelper(testServer)

	_, authorToken := authHelper.CreateAuthenticatedUser(t, "Reject Author", "rejectauthor@example.com", "password123")
	_, adminToken := authHelper.CreateAdminUser(t, "Reject Admin", "rejectadmin@example.com", "password123")

	t.Run("success - rejects with a reason and notifies the owner", func(t *testing.T) {
		data := recipeHelper.CreateRecipe(t, authorToken, "Vague Recipe")
		recipeID := testserver.GetIDFromResponse(t, data)

		req := models.RejectRecipeRequest{Reason: "Steps are too vague"}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/admin/recipes/"+recipeID+"/reject", adminToken, req)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, string(models.StatusRejected), resp.Data["status"])
		assert.Equal(t, "Steps are too vague", resp.Data["rejectionReason"])

		w2 := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/notifications", authorToken, nil)
		require.Equal(t, http.StatusOK, w2.Code)

		notifResp := testutil.ParseAPIResponse(t, w2)
		items, ok := notifResp.Data["items"].([]interface{})
		require.True(t, ok)
		require.NotEmpty(t, items)

		latest := items[0].(map[string]interface{})
		assert.Equal(t, "Recipe Rejected", latest["title"])
		assert.Contains(t, latest["message"], "Steps are too vague")
	})

	t.Run("success - rejecting without a reason records a default", func(t *testing.T) {
		data := recipeHelper.CreateRecipe(t, authorToken, "Unexplained Recipe")
		recipeID := testserver.GetIDFromResponse(t, data)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/admin/recipes/"+recipeID+"/reject", adminToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, string(models.StatusRejected), resp.Data["status"])
		assert.Equal(t, "Not specified", resp.Data["rejectionReason"])
	})

	t.Run("error - unknown recipe id", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/admin/recipes/507f1f77bcf86cd799439099/reject", adminToken, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestAdminUpdateRecipe tests the PUT /api/v1/admin/recipes/:id endpoint.
func TestAdminUpdateRecipe(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	recipeHelper := testserver.NewRecipeHelper(testServer)

	_, authorToken := authHelper.CreateAuthenticatedUser(t, "Override Author", "overrideauthor@example.com", "password123")
	_, adminToken := authHelper.CreateAdminUser(t, "Override Admin", "overrideadmin@example.com", "password123")

	t.Run("success - edits an approved recipe", func(t *testing.T) {
		approvedID := recipeHelper.CreateApprovedRecipe(t, authorToken, "Needs A Fix")

		newTitle := "Fixed Up"
		req := models.AdminUpdateRecipeRequest{Title: &newTitle}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/admin/recipes/"+approvedID.Hex(), adminToken, req)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "Fixed Up", resp.Data["title"])
		assert.Equal(t, string(models.StatusApproved), resp.Data["status"])
	})

	t.Run("success - overrides status directly", func(t *testing.T) {
		approvedID := recipeHelper.CreateApprovedRecipe(t, authorToken, "Demoted Recipe")

		status := models.StatusPending
		req := models.AdminUpdateRecipeRequest{Status: &status}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/admin/recipes/"+approvedID.Hex(), adminToken, req)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, string(models.StatusPending), resp.Data["status"])

		// No longer publicly visible
		w2 := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/recipes/"+approvedID.Hex(), nil)
		assert.Equal(t, http.StatusNotFound, w2.Code)
	})

	t.Run("error - invalid status value", func(t *testing.T) {
		approvedID := recipeHelper.CreateApprovedRecipe(t, authorToken, "Bad Status Recipe")

		req := map[string]interface{}{"status": "published"}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/admin/recipes/"+approvedID.Hex(), adminToken, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestAdminDeleteRecipe tests the DELETE /api/v1/admin/recipes/:id endpoint.
func TestAdminDeleteRecipe(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	recipeHelper := testserver.NewRecipeHelper(testServer)

	_, authorToken := authHelper.CreateAuthenticatedUser(t, "Remove Author", "removeauthor@example.com", "password123")
	_, adminToken := authHelper.CreateAdminUser(t, "Remove Admin", "removeadmin@example.com", "password123")

	t.Run("success - deletes an approved recipe", func(t *testing.T) {
		approvedID := recipeHelper.CreateApprovedRecipe(t, authorToken, "Gone For Good")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/admin/recipes/"+approvedID.Hex(), adminToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		w2 := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/recipes/"+approvedID.Hex(), nil)
		assert.Equal(t, http.StatusNotFound, w2.Code)
	})

	t.Run("error - unknown recipe id", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/admin/recipes/507f1f77bcf86cd799439099", adminToken, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestListUsers tests the GET /api/v1/admin/users endpoint.
func TestListUsers(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	_, adminToken := authHelper.CreateAdminUser(t, "Directory Admin", "diradmin@example.com", "password123")
	authHelper.CreateAuthenticatedUser(t, "Member One", "member1@example.com", "password123")
	authHelper.CreateAuthenticatedUser(t, "Member Two", "member2@example.com", "password123")

	t.Run("success - lists users with pagination", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/admin/users?page=1&limit=2", adminToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		items, ok := resp.Data["items"].([]interface{})
		require.True(t, ok)
		assert.Len(t, items, 2)

		pagination := resp.Data["pagination"].(map[string]interface{})
		assert.Equal(t, float64(3), pagination["totalItems"])
		assert.Equal(t, float64(2), pagination["totalPages"])

		// Password hashes never leave the server
		first := items[0].(map[string]interface{})
		_, exposed := first["password"]
		assert.False(t, exposed)
	})
}

// TestSetUserRole tests the PUT /api/v1/admin/users/:id/role endpoint.
func TestSetUserRole(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	_, adminToken := authHelper.CreateAdminUser(t, "Role Admin", "roleadmin@example.com", "password123")

	user, _ := authHelper.CreateAuthenticatedUser(t, "Promotable", "promotable@example.com", "password123")
	userID := testserver.GetIDFromResponse(t, user)

	t.Run("success - promotes a user to admin", func(t *testing.T) {
		req := models.UpdateRoleRequest{Role: models.RoleAdmin}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/admin/users/"+userID+"/role", adminToken, req)

		assert.Equal(t, http.StatusOK, w.Code)

		// A fresh login carries the new role into the token claims
		promotedToken := authHelper.GetAccessToken(t, "promotable@example.com", "password123")
		w2 := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/admin/users", promotedToken, nil)
		assert.Equal(t, http.StatusOK, w2.Code)
	})

	t.Run("error - invalid role value", func(t *testing.T) {
		req := map[string]interface{}{"role": "superuser"}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/admin/users/"+userID+"/role", adminToken, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - unknown user id", func(t *testing.T) {
		req := models.UpdateRoleRequest{Role: models.RoleAdmin}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/admin/users/507f1f77bcf86cd799439099/role", adminToken, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestSetUserBlocked tests the PUT /api/v1/admin/users/:id/block endpoint.
func TestSetUserBlocked(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	_, adminToken := authHelper.CreateAdminUser(t, "Block Admin", "blockadmin@example.com", "password123")

	user, userToken := authHelper.CreateAuthenticatedUser(t, "Blockable", "blockable@example.com", "password123")
	userID := testserver.GetIDFromResponse(t, user)

	blocked := true
	unblocked := false

	t.Run("success - blocking locks the user out", func(t *testing.T) {
		req := models.SetBlockedRequest{IsBlocked: &blocked}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/admin/users/"+userID+"/block", adminToken, req)

		assert.Equal(t, http.StatusOK, w.Code)

		// Existing access token is refused
		w2 := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/me", userToken, nil)
		assert.Equal(t, http.StatusForbidden, w2.Code)

		// Fresh login is refused too
		loginReq := models.LoginRequest{Email: "blockable@example.com", Password: "password123"}
		w3 := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/login", loginReq)
		assert.Equal(t, http.StatusForbidden, w3.Code)
	})

	t.Run("success - unblocking restores access", func(t *testing.T) {
		req := models.SetBlockedRequest{IsBlocked: &unblocked}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/admin/users/"+userID+"/block", adminToken, req)

		assert.Equal(t, http.StatusOK, w.Code)

		w2 := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/me", userToken, nil)
		assert.Equal(t, http.StatusOK, w2.Code)
	})

	t.Run("error - missing blocked flag", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/admin/users/"+userID+"/block", adminToken, map[string]interface{}{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestAdminDeleteUser tests the DELETE /api/v1/admin/users/:id endpoint.
func TestAdminDeleteUser(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	recipeHelper := testserver.NewRecipeHelper(testServer)

	_, adminToken := authHelper.CreateAdminUser(t, "Purge Admin", "purgeadmin@example.com", "password123")

	user, userToken := authHelper.CreateAuthenticatedUser(t, "Departing User", "departing@example.com", "password123")
	userID := testserver.GetIDFromResponse(t, user)
	userOID, err := primitive.ObjectIDFromHex(userID)
	require.NoError(t, err)

	data := recipeHelper.CreateRecipe(t, userToken, "Orphaned Recipe")
	recipeID := testserver.GetIDFromResponse(t, data)

	t.Run("success - deletes the user and their data", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/admin/users/"+userID, adminToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		// Profile is gone
		w2 := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/"+userID, adminToken, nil)
		assert.Equal(t, http.StatusNotFound, w2.Code)

		// Their recipes are gone with them
		w3 := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/recipes/"+recipeID, adminToken, nil)
		assert.Equal(t, http.StatusNotFound, w3.Code)

		// Their sessions were revoked
		tokens, err := testServer.RefreshTokenRepo.FindAllByUserID(context.Background(), userOID)
		require.NoError(t, err)
		assert.Empty(t, tokens)
	})

	t.Run("error - unknown user id", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/admin/users/507f1f77bcf86cd799439099", adminToken, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
