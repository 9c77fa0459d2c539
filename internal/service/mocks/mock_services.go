// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"cookbook/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc  func(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error)
	LoginFunc     func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	RefreshFunc   func(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	LogoutFunc    func(ctx context.Context, req *models.LogoutRequest) error
	LogoutAllFunc func(ctx context.Context, userID primitive.ObjectID) error
}

func (m *MockAuthService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Logout(ctx context.Context, req *models.LogoutRequest) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, req)
	}
	return nil
}

func (m *MockAuthService) LogoutAll(ctx context.Context, userID primitive.ObjectID) error {
	if m.LogoutAllFunc != nil {
		return m.LogoutAllFunc(ctx, userID)
	}
	return nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetUserFunc             func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateProfileFunc       func(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	RequestAvatarUploadFunc func(ctx context.Context, id primitive.ObjectID, req *models.AvatarUploadRequest) (*models.AvatarUploadResponse, error)
	ListUsersFunc           func(ctx context.Context, page, limit int) (*models.UserListResponse, error)
	SetRoleFunc             func(ctx context.Context, id primitive.ObjectID, role string) error
	SetBlockedFunc          func(ctx context.Context, id primitive.ObjectID, blocked bool) error
	DeleteUserFunc          func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockUserService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockUserService) RequestAvatarUpload(ctx context.Context, id primitive.ObjectID, req *models.AvatarUploadRequest) (*models.AvatarUploadResponse, error) {
	if m.RequestAvatarUploadFunc != nil {
		return m.RequestAvatarUploadFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockUserService) ListUsers(ctx context.Context, page, limit int) (*models.UserListResponse, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx, page, limit)
	}
	return nil, nil
}

func (m *MockUserService) SetRole(ctx context.Context, id primitive.ObjectID, role string) error {
	if m.SetRoleFunc != nil {
		return m.SetRoleFunc(ctx, id, role)
	}
	return nil
}

func (m *MockUserService) SetBlocked(ctx context.Context, id primitive.ObjectID, blocked bool) error {
	if m.SetBlockedFunc != nil {
		return m.SetBlockedFunc(ctx, id, blocked)
	}
	return nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil
}

// MockRecipeService is a mock implementation of RecipeServicer.
type MockRecipeService struct {
	SubmitRecipeFunc       func(ctx context.Context, userID primitive.ObjectID, userName string, req *models.CreateRecipeRequest) (*models.Recipe, error)
	ListApprovedFunc       func(ctx context.Context, page, limit int) (*models.RecipeListResponse, error)
	GetRecipeFunc          func(ctx context.Context, viewerID primitive.ObjectID, viewerRole string, id primitive.ObjectID) (*models.Recipe, error)
	UpdateRecipeFunc       func(ctx context.Context, userID, id primitive.ObjectID, req *models.UpdateRecipeRequest) (*models.Recipe, error)
	DeleteRecipeFunc       func(ctx context.Context, userID, id primitive.ObjectID) error
	ListMineFunc           func(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.RecipeListResponse, error)
	ListSavedFunc          func(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.RecipeListResponse, error)
	ToggleLikeFunc         func(ctx context.Context, userID primitive.ObjectID, role, userName string, recipeID primitive.ObjectID) (*models.LikeResponse, error)
	SaveRecipeFunc         func(ctx context.Context, userID primitive.ObjectID, role, userName string, recipeID primitive.ObjectID) error
	UnsaveRecipeFunc       func(ctx context.Context, userID, recipeID primitive.ObjectID) error
	RequestImageUploadFunc func(ctx context.Context, userID primitive.ObjectID, role string, recipeID primitive.ObjectID, req *models.ImageUploadRequest) (*models.ImageUploadResponse, error)
}

func (m *MockRecipeService) SubmitRecipe(ctx context.Context, userID primitive.ObjectID, userName string, req *models.CreateRecipeRequest) (*models.Recipe, error) {
	if m.SubmitRecipeFunc != nil {
		return m.SubmitRecipeFunc(ctx, userID, userName, req)
	}
	return nil, nil
}

func (m *MockRecipeService) ListApproved(ctx context.Context, page, limit int) (*models.RecipeListResponse, error) {
	if m.ListApprovedFunc != nil {
		return m.ListApprovedFunc(ctx, page, limit)
	}
	return nil, nil
}

func (m *MockRecipeService) GetRecipe(ctx context.Context, viewerID primitive.ObjectID, viewerRole string, id primitive.ObjectID) (*models.Recipe, error) {
	if m.GetRecipeFunc != nil {
		return m.GetRecipeFunc(ctx, viewerID, viewerRole, id)
	}
	return nil, nil
}

func (m *MockRecipeService) UpdateRecipe(ctx context.Context, userID, id primitive.ObjectID, req *models.UpdateRecipeRequest) (*models.Recipe, error) {
	if m.UpdateRecipeFunc != nil {
		return m.UpdateRecipeFunc(ctx, userID, id, req)
	}
	return nil, nil
}

func (m *MockRecipeService) DeleteRecipe(ctx context.Context, userID, id primitive.ObjectID) error {
	if m.DeleteRecipeFunc != nil {
		return m.DeleteRecipeFunc(ctx, userID, id)
	}
	return nil
}

func (m *MockRecipeService) ListMine(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.RecipeListResponse, error) {
	if m.ListMineFunc != nil {
		return m.ListMineFunc(ctx, userID, page, limit)
	}
	return nil, nil
}

func (m *MockRecipeService) ListSaved(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.RecipeListResponse, error) {
	if m.ListSavedFunc != nil {
		return m.ListSavedFunc(ctx, userID, page, limit)
	}
	return nil, nil
}

func (m *MockRecipeService) ToggleLike(ctx context.Context, userID primitive.ObjectID, role, userName string, recipeID primitive.ObjectID) (*models.LikeResponse, error) {
	if m.ToggleLikeFunc != nil {
		return m.ToggleLikeFunc(ctx, userID, role, userName, recipeID)
	}
	return nil, nil
}

func (m *MockRecipeService) SaveRecipe(ctx context.Context, userID primitive.ObjectID, role, userName string, recipeID primitive.ObjectID) error {
	if m.SaveRecipeFunc != nil {
		return m.SaveRecipeFunc(ctx, userID, role, userName, recipeID)
	}
	return nil
}

func (m *MockRecipeService) UnsaveRecipe(ctx context.Context, userID, recipeID primitive.ObjectID) error {
	if m.UnsaveRecipeFunc != nil {
		return m.UnsaveRecipeFunc(ctx, userID, recipeID)
	}
	return nil
}

func (m *MockRecipeService) RequestImageUpload(ctx context.Context, userID primitive.ObjectID, role string, recipeID primitive.ObjectID, req *models.ImageUploadRequest) (*models.ImageUploadResponse, error) {
	if m.RequestImageUploadFunc != nil {
		return m.RequestImageUploadFunc(ctx, userID, role, recipeID, req)
	}
	return nil, nil
}

// MockModerationService is a mock implementation of ModerationServicer.
type MockModerationService struct {
	ListPendingFunc       func(ctx context.Context, page, limit int) (*models.RecipeListResponse, error)
	ApproveRecipeFunc     func(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error)
	RejectRecipeFunc      func(ctx context.Context, id primitive.ObjectID, reason string) (*models.Recipe, error)
	AdminUpdateRecipeFunc func(ctx context.Context, id primitive.ObjectID, req *models.AdminUpdateRecipeRequest) (*models.Recipe, error)
	AdminDeleteRecipeFunc func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockModerationService) ListPending(ctx context.Context, page, limit int) (*models.RecipeListResponse, error) {
	if m.ListPendingFunc != nil {
		return m.ListPendingFunc(ctx, page, limit)
	}
	return nil, nil
}

func (m *MockModerationService) ApproveRecipe(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error) {
	if m.ApproveRecipeFunc != nil {
		return m.ApproveRecipeFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockModerationService) RejectRecipe(ctx context.Context, id primitive.ObjectID, reason string) (*models.Recipe, error) {
	if m.RejectRecipeFunc != nil {
		return m.RejectRecipeFunc(ctx, id, reason)
	}
	return nil, nil
}

func (m *MockModerationService) AdminUpdateRecipe(ctx context.Context, id primitive.ObjectID, req *models.AdminUpdateRecipeRequest) (*models.Recipe, error) {
	if m.AdminUpdateRecipeFunc != nil {
		return m.AdminUpdateRecipeFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockModerationService) AdminDeleteRecipe(ctx context.Context, id primitive.ObjectID) error {
	if m.AdminDeleteRecipeFunc != nil {
		return m.AdminDeleteRecipeFunc(ctx, id)
	}
	return nil
}

// MockNotificationService is a mock implementation of NotificationServicer.
type MockNotificationService struct {
	ListNotificationsFunc  func(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.NotificationListResponse, error)
	UnreadCountFunc        func(ctx context.Context, userID primitive.ObjectID) (int, error)
	MarkReadFunc           func(ctx context.Context, userID, id primitive.ObjectID) error
	MarkAllReadFunc        func(ctx context.Context, userID primitive.ObjectID) error
	DeleteNotificationFunc func(ctx context.Context, userID, id primitive.ObjectID) error
}

func (m *MockNotificationService) ListNotifications(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.NotificationListResponse, error) {
	if m.ListNotificationsFunc != nil {
		return m.ListNotificationsFunc(ctx, userID, page, limit)
	}
	return nil, nil
}

func (m *MockNotificationService) UnreadCount(ctx context.Context, userID primitive.ObjectID) (int, error) {
	if m.UnreadCountFunc != nil {
		return m.UnreadCountFunc(ctx, userID)
	}
	return 0, nil
}

func (m *MockNotificationService) MarkRead(ctx context.Context, userID, id primitive.ObjectID) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, userID, id)
	}
	return nil
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, userID primitive.ObjectID) error {
	if m.MarkAllReadFunc != nil {
		return m.MarkAllReadFunc(ctx, userID)
	}
	return nil
}

func (m *MockNotificationService) DeleteNotification(ctx context.Context, userID, id primitive.ObjectID) error {
	if m.DeleteNotificationFunc != nil {
		return m.DeleteNotificationFunc(ctx, userID, id)
	}
	return nil
}
