// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"cookbook/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		user: models.User{
			ID:           primitive.NewObjectID(),
			Name:         "Test User",
			Email:        fmt.Sprintf("test-%s@example.com", primitive.NewObjectID().Hex()[:8]),
			Password:     "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", // "password123" hashed
			Role:         models.RoleUser,
			SavedRecipes: []primitive.ObjectID{},
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		},
	}
}

func (b *UserBuilder) WithID(id primitive.ObjectID) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.user.Password = password
	return b
}

func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.user.Role = models.RoleAdmin
	return b
}

func (b *UserBuilder) Blocked() *UserBuilder {
	b.user.IsBlocked = true
	return b
}

func (b *UserBuilder) WithSavedRecipes(ids ...primitive.ObjectID) *UserBuilder {
	b.user.SavedRecipes = ids
	return b
}

func (b *UserBuilder) Build() models.User {
	return b.user
}

func (b *UserBuilder) BuildPtr() *models.User {
	return &b.user
}

// ===== Recipe Fixtures =====

// RecipeBuilder provides fluent API for building test recipes.
type RecipeBuilder struct {
	recipe models.Recipe
}

// NewRecipe creates a new RecipeBuilder with sensible defaults.
func NewRecipe() *RecipeBuilder {
	return &RecipeBuilder{
		recipe: models.Recipe{
			ID:          primitive.NewObjectID(),
			Title:       "Test Recipe",
			Description: "A test recipe",
			Ingredients: []string{"water", "tea leaves"},
			Steps:       []string{"boil water", "steep"},
			CookingTime: 15,
			Status:      models.StatusPending,
			Likes:       []primitive.ObjectID{},
			CreatedBy:   primitive.NewObjectID(),
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		},
	}
}

func (b *RecipeBuilder) WithID(id primitive.ObjectID) *RecipeBuilder {
	b.recipe.ID = id
	return b
}

func (b *RecipeBuilder) WithTitle(title string) *RecipeBuilder {
	b.recipe.Title = title
	return b
}

func (b *RecipeBuilder) WithCreatedBy(userID primitive.ObjectID) *RecipeBuilder {
	b.recipe.CreatedBy = userID
	return b
}

func (b *RecipeBuilder) Pending() *RecipeBuilder {
	b.recipe.Status = models.StatusPending
	return b
}

func (b *RecipeBuilder) Approved() *RecipeBuilder {
	b.recipe.Status = models.StatusApproved
	return b
}

func (b *RecipeBuilder) Rejected(reason string) *RecipeBuilder {
	b.recipe.Status = models.StatusRejected
	b.recipe.RejectionReason = reason
	return b
}

func (b *RecipeBuilder) LikedBy(userIDs ...primitive.ObjectID) *RecipeBuilder {
	b.recipe.Likes = userIDs
	return b
}

func (b *RecipeBuilder) WithImageKey(key string) *RecipeBuilder {
	b.recipe.ImageKey = key
	return b
}

func (b *RecipeBuilder) Build() models.Recipe {
	return b.recipe
}

func (b *RecipeBuilder) BuildPtr() *models.Recipe {
	return &b.recipe
}

// ===== Notification Fixtures =====

// NotificationBuilder provides fluent API for building test notifications.
type NotificationBuilder struct {
	notification models.Notification
}

// NewNotification creates a new NotificationBuilder with sensible defaults.
func NewNotification() *NotificationBuilder {
	return &NotificationBuilder{
		notification: models.Notification{
			ID:        primitive.NewObjectID(),
			UserID:    primitive.NewObjectID(),
			Title:     "Recipe Approved",
			Message:   "Your recipe \"Test Recipe\" has been approved.",
			Link:      "/recipes/" + primitive.NewObjectID().Hex(),
			Type:      models.NotificationTypeRecipe,
			IsRead:    false,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *NotificationBuilder) WithID(id primitive.ObjectID) *NotificationBuilder {
	b.notification.ID = id
	return b
}

func (b *NotificationBuilder) WithUserID(userID primitive.ObjectID) *NotificationBuilder {
	b.notification.UserID = userID
	return b
}

func (b *NotificationBuilder) WithTitle(title string) *NotificationBuilder {
	b.notification.Title = title
	return b
}

func (b *NotificationBuilder) WithType(notificationType string) *NotificationBuilder {
	b.notification.Type = notificationType
	return b
}

func (b *NotificationBuilder) Read() *NotificationBuilder {
	b.notification.IsRead = true
	return b
}

func (b *NotificationBuilder) Build() models.Notification {
	return b.notification
}

func (b *NotificationBuilder) BuildPtr() *models.Notification {
	return &b.notification
}

// ===== RefreshToken Fixtures =====

// RefreshTokenBuilder provides fluent API for building test refresh tokens.
type RefreshTokenBuilder struct {
	token models.RefreshToken
}

// NewRefreshToken creates a new RefreshTokenBuilder with sensible defaults.
func NewRefreshToken() *RefreshTokenBuilder {
	return &RefreshTokenBuilder{
		token: models.RefreshToken{
			ID:        primitive.NewObjectID(),
			Token:     fmt.Sprintf("rf_%s", primitive.NewObjectID().Hex()),
			UserID:    primitive.NewObjectID(),
			ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
			CreatedAt: time.Now(),
		},
	}
}

func (b *RefreshTokenBuilder) WithID(id primitive.ObjectID) *RefreshTokenBuilder {
	b.token.ID = id
	return b
}

func (b *RefreshTokenBuilder) WithToken(token string) *RefreshTokenBuilder {
	b.token.Token = token
	return b
}

func (b *RefreshTokenBuilder) WithUserID(userID primitive.ObjectID) *RefreshTokenBuilder {
	b.token.UserID = userID
	return b
}

func (b *RefreshTokenBuilder) Expired() *RefreshTokenBuilder {
	b.token.ExpiresAt = time.Now().Add(-24 * time.Hour)
	return b
}

func (b *RefreshTokenBuilder) Build() models.RefreshToken {
	return b.token
}

func (b *RefreshTokenBuilder) BuildPtr() *models.RefreshToken {
	return &b.token
}
