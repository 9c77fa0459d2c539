// Package service contains business logic for the application.
package service

import (
	"context"

	"cookbook/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	Logout(ctx context.Context, req *models.LogoutRequest) error
	LogoutAll(ctx context.Context, userID primitive.ObjectID) error
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	RequestAvatarUpload(ctx context.Context, id primitive.ObjectID, req *models.AvatarUploadRequest) (*models.AvatarUploadResponse, error)

	// Admin operations
	ListUsers(ctx context.Context, page, limit int) (*models.UserListResponse, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) error
	SetBlocked(ctx context.Context, id primitive.ObjectID, blocked bool) error
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

// RecipeServicer defines the interface for recipe operations.
type RecipeServicer interface {
	SubmitRecipe(ctx context.Context, userID primitive.ObjectID, userName string, req *models.CreateRecipeRequest) (*models.Recipe, error)
	ListApproved(ctx context.Context, page, limit int) (*models.RecipeListResponse, error)
	GetRecipe(ctx context.Context, viewerID primitive.ObjectID, viewerRole string, id primitive.ObjectID) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, userID, id primitive.ObjectID, req *models.UpdateRecipeRequest) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, userID, id primitive.ObjectID) error
	ListMine(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.RecipeListResponse, error)
	ListSaved(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.RecipeListResponse, error)
	ToggleLike(ctx context.Context, userID primitive.ObjectID, role, userName string, recipeID primitive.ObjectID) (*models.LikeResponse, error)
	SaveRecipe(ctx context.Context, userID primitive.ObjectID, role, userName string, recipeID primitive.ObjectID) error
	UnsaveRecipe(ctx context.Context, userID, recipeID primitive.ObjectID) error
	RequestImageUpload(ctx context.Context, userID primitive.ObjectID, role string, recipeID primitive.ObjectID, req *models.ImageUploadRequest) (*models.ImageUploadResponse, error)
}

// ModerationServicer defines the interface for admin recipe moderation.
type ModerationServicer interface {
	ListPending(ctx context.Context, page, limit int) (*models.RecipeListResponse, error)
	ApproveRecipe(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error)
	RejectRecipe(ctx context.Context, id primitive.ObjectID, reason string) (*models.Recipe, error)
	AdminUpdateRecipe(ctx context.Context, id primitive.ObjectID, req *models.AdminUpdateRecipeRequest) (*models.Recipe, error)
	AdminDeleteRecipe(ctx context.Context, id primitive.ObjectID) error
}

// NotificationServicer defines the interface for notification operations.
type NotificationServicer interface {
	ListNotifications(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.NotificationListResponse, error)
	UnreadCount(ctx context.Context, userID primitive.ObjectID) (int, error)
	MarkRead(ctx context.Context, userID, id primitive.ObjectID) error
	MarkAllRead(ctx context.Context, userID primitive.ObjectID) error
	DeleteNotification(ctx context.Context, userID, id primitive.ObjectID) error
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer         = (*AuthService)(nil)
	_ UserServicer         = (*UserService)(nil)
	_ RecipeServicer       = (*RecipeService)(nil)
	_ ModerationServicer   = (*ModerationService)(nil)
	_ NotificationServicer = (*NotificationService)(nil)
)
