//go:build api

package testserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"cookbook/internal/models"
	"cookbook/pkg/response"
	"cookbook/test/testutil"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// RegisterUser registers a new user and returns the response data.
func (ah *AuthHelper) RegisterUser(t *testing.T, name, email, password string) map[string]interface{} {
	t.Helper()

	req := models.CreateUserRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/register", req)
	require.Equal(t, http.StatusCreated, w.Code, "register should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "register response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// Login logs in a user and returns the auth response containing tokens.
func (ah *AuthHelper) Login(t *testing.T, email, password string) map[string]interface{} {
	t.Helper()

	req := models.LoginRequest{
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "login response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// GetAccessToken logs in and returns just the access token.
func (ah *AuthHelper) GetAccessToken(t *testing.T, email, password string) string {
	t.Helper()

	data := ah.Login(t, email, password)
	token, ok := data["accessToken"].(string)
	require.True(t, ok, "accessToken should be a string")

	return token
}

// CreateAuthenticatedUser creates a user and returns the user data and access token.
func (ah *AuthHelper) CreateAuthenticatedUser(t *testing.T, name, email, password string) (userData map[string]interface{}, accessToken string) {
	t.Helper()

	authData := ah.RegisterUser(t, name, email, password)

	accessToken, ok := authData["accessToken"].(string)
	require.True(t, ok, "accessToken should be a string")

	userData, ok = authData["user"].(map[string]interface{})
	require.True(t, ok, "user should be an object")

	return userData, accessToken
}

// CreateDefaultUser creates a user with default test credentials.
func (ah *AuthHelper) CreateDefaultUser(t *testing.T) (userData map[string]interface{}, accessToken string) {
	t.Helper()
	return ah.CreateAuthenticatedUser(t, "Test User", "test@example.com", "password123")
}

// CreateAdminUser registers a user, promotes them to admin directly in the
// database, and returns the user data and a fresh access token.
func (ah *AuthHelper) CreateAdminUser(t *testing.T, name, email, password string) (userData map[string]interface{}, accessToken string) {
	t.Helper()
	ctx := context.Background()

	userData, _ = ah.CreateAuthenticatedUser(t, name, email, password)

	adminID := GetObjectIDFromResponse(t, userData)
	require.NoError(t, ah.server.UserRepo.SetRole(ctx, adminID, models.RoleAdmin), "failed to promote user to admin")

	// Login again so the subject of the token matches the promoted user
	accessToken = ah.GetAccessToken(t, email, password)
	return userData, accessToken
}

// SeedUser directly inserts a user into the database (bypasses API).
func (ah *AuthHelper) SeedUser(t *testing.T, user *models.User) *models.User {
	t.Helper()
	ctx := context.Background()

	err := ah.server.UserRepo.Create(ctx, user)
	require.NoError(t, err, "failed to seed user")

	return user
}

// RecipeHelper provides recipe-related helpers for API tests.
type RecipeHelper struct {
	server *TestServer
}

// NewRecipeHelper creates a new recipe helper.
func NewRecipeHelper(server *TestServer) *RecipeHelper {
	return &RecipeHelper{server: server}
}

// CreateRecipe submits a recipe via the API and returns the response data.
func (rh *RecipeHelper) CreateRecipe(t *testing.T, token, title string) map[string]interface{} {
	t.Helper()

	req := models.CreateRecipeRequest{
		Title:       title,
		Description: "A recipe created in a test",
		Ingredients: []string{"water", "tea leaves", "milk"},
		Steps:       []string{"boil water", "add tea", "simmer"},
		CookingTime: 15,
	}

	w := testutil.MakeAuthRequest(t, rh.server.Router, http.MethodPost, "/api/v1/recipes", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create recipe should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "create recipe response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// CreateApprovedRecipe submits a recipe via the API and approves it directly
// in the database, returning its ObjectID.
func (rh *RecipeHelper) CreateApprovedRecipe(t *testing.T, token, title string) primitive.ObjectID {
	t.Helper()
	ctx := context.Background()

	data := rh.CreateRecipe(t, token, title)
	recipeID := GetObjectIDFromResponse(t, data)

	err := rh.server.RecipeRepo.SetStatus(ctx, recipeID, models.StatusApproved, "")
	require.NoError(t, err, "failed to approve recipe")

	return recipeID
}

// SeedRecipe directly inserts a recipe into the database (bypasses API).
// Note: the repository's Create method forces status to pending; use
// RecipeRepo.SetStatus afterwards for other statuses.
func (rh *RecipeHelper) SeedRecipe(t *testing.T, recipe *models.Recipe) *models.Recipe {
	t.Helper()
	ctx := context.Background()

	err := rh.server.RecipeRepo.Create(ctx, recipe)
	require.NoError(t, err, "failed to seed recipe")

	return recipe
}

// NotificationHelper provides notification-related helpers for API tests.
type NotificationHelper struct {
	server *TestServer
}

// NewNotificationHelper creates a new notification helper.
func NewNotificationHelper(server *TestServer) *NotificationHelper {
	return &NotificationHelper{server: server}
}

// SeedNotification directly inserts a notification into the database.
func (nh *NotificationHelper) SeedNotification(t *testing.T, notification *models.Notification) *models.Notification {
	t.Helper()
	ctx := context.Background()

	err := nh.server.NotificationRepo.Create(ctx, notification)
	require.NoError(t, err, "failed to seed notification")

	return notification
}

// ParseResponseData is a generic helper to parse response data into a specific type.
func ParseResponseData[T any](t *testing.T, data map[string]interface{}) T {
	t.Helper()

	jsonBytes, err := json.Marshal(data)
	require.NoError(t, err, "failed to marshal response data")

	var result T
	err = json.Unmarshal(jsonBytes, &result)
	require.NoError(t, err, "failed to unmarshal response data")

	return result
}

// GetIDFromResponse extracts the ID from response data.
// It handles both direct ID fields and nested user objects (for auth responses).
func GetIDFromResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	if id, ok := data["id"].(string); ok {
		return id
	}

	if user, ok := data["user"].(map[string]interface{}); ok {
		if id, ok := user["id"].(string); ok {
			return id
		}
	}

	t.Fatal("id should be a string in response data (checked: id, user.id)")
	return ""
}

// GetObjectIDFromResponse extracts and parses the ID as ObjectID.
func GetObjectIDFromResponse(t *testing.T, data map[string]interface{}) primitive.ObjectID {
	t.Helper()

	idStr := GetIDFromResponse(t, data)
	oid, err := primitive.ObjectIDFromHex(idStr)
	require.NoError(t, err, "failed to parse ObjectID")

	return oid
}
