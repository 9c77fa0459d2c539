// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User role constants.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a user in the system.
type User struct {
	ID                  primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name                string               `json:"name" bson:"name" example:"Jane Doe"`
	Email               string               `json:"email" bson:"email" example:"jane@example.com"`
	Password            string               `json:"-" bson:"password"` // "-" = never include in JSON response
	Role                string               `json:"role" bson:"role" example:"user"`
	IsBlocked           bool                 `json:"isBlocked" bson:"isBlocked" example:"false"`
	SavedRecipes        []primitive.ObjectID `json:"savedRecipes" bson:"savedRecipes"`
	Avatar              string               `json:"avatar" bson:"-" example:"https://bucket.s3.amazonaws.com/avatars/507f.jpg?X-Amz-Signature=..."` // Pre-signed URL, not stored in DB
	AvatarKey           string               `json:"-" bson:"avatarKey"`                                                                             // S3 key, not exposed in JSON
	ResetToken          string               `json:"-" bson:"resetToken,omitempty"`
	ResetTokenExpiresAt *time.Time           `json:"-" bson:"resetTokenExpiresAt,omitempty"`
	CreatedAt           time.Time            `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt           time.Time            `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// IsAdmin reports whether the user holds moderation authority.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasSaved reports whether the recipe id is in the user's saved list.
func (u *User) HasSaved(recipeID primitive.ObjectID) bool {
	for _, id := range u.SavedRecipes {
		if id == recipeID {
			return true
		}
	}
	return false
}

// CreateUserRequest is the payload for registering a user.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100" example:"Jane Doe"`
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
}

// UpdateUserRequest is the payload for updating a user's profile.
type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=100" example:"Jane D."`
	Email *string `json:"email" binding:"omitempty,email" example:"jane.d@example.com"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// UpdateRoleRequest is the admin payload for changing a user's role.
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin" example:"admin"`
}

// SetBlockedRequest is the admin payload for blocking or unblocking a user.
type SetBlockedRequest struct {
	IsBlocked *bool `json:"isBlocked" binding:"required" example:"true"`
}

// AvatarUploadRequest is the payload for requesting an avatar upload URL.
type AvatarUploadRequest struct {
	Format string `json:"format" binding:"required,oneof=jpg jpeg png webp" example:"png"`
}

// AvatarUploadResponse is the response with a pre-signed avatar upload URL.
type AvatarUploadResponse struct {
	UploadURL string `json:"uploadUrl" example:"https://s3.amazonaws.com/bucket/avatars/...?X-Amz-Algorithm=..."`
}

// UserListResponse is the admin response for listing users.
type UserListResponse struct {
	Items      []User     `json:"items"`
	Pagination Pagination `json:"pagination"`
}
