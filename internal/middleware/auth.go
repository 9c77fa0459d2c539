// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"context"
	"strings"

	"cookbook/internal/models"
	"cookbook/pkg/auth"
	"cookbook/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Context keys for storing user data
const (
	UserIDKey   = "userID"
	UserRoleKey = "userRole"
	UserNameKey = "userName"
)

// UserFinder is the interface required by the auth middleware to resolve the
// authenticated user. This allows the middleware to be decoupled from the full
// repository implementation.
type UserFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// Auth returns a middleware that validates JWT tokens and resolves the user.
func Auth(tokenManager auth.TokenManager, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := authenticate(c, tokenManager, users)
		if !ok {
			return
		}

		// Store user data in context for handlers to use
		c.Set(UserIDKey, user.ID.Hex())
		c.Set(UserRoleKey, user.Role)
		c.Set(UserNameKey, user.Name)

		c.Next()
	}
}

// OptionalAuth returns a middleware that resolves the user when a valid token
// is present but lets anonymous requests continue. Requests carrying an
// Authorization header that fails validation are still rejected.
func OptionalAuth(tokenManager auth.TokenManager, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		user, ok := authenticate(c, tokenManager, users)
		if !ok {
			return
		}

		c.Set(UserIDKey, user.ID.Hex())
		c.Set(UserRoleKey, user.Role)
		c.Set(UserNameKey, user.Name)

		c.Next()
	}
}

// RequireAdmin returns a middleware that rejects non-admin users.
// Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserRole(c) != models.RoleAdmin {
			response.Forbidden(c, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, tokenManager auth.TokenManager, users UserFinder) (*models.User, bool) {
	// Get Authorization header
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c, "missing authorization header")
		c.Abort()
		return nil, false
	}

	// Check Bearer prefix
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		response.Unauthorized(c, "invalid authorization header format")
		c.Abort()
		return nil, false
	}

	// Validate token
	claims, err := tokenManager.ValidateToken(parts[1])
	if err != nil {
		response.Unauthorized(c, "invalid or expired token")
		c.Abort()
		return nil, false
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		response.Unauthorized(c, "invalid token subject")
		c.Abort()
		return nil, false
	}

	// Resolve the user so role changes and blocks take effect immediately
	user, err := users.FindByID(c.Request.Context(), userID)
	if err != nil {
		response.Unauthorized(c, "user not found")
		c.Abort()
		return nil, false
	}

	if user.IsBlocked {
		response.Forbidden(c, "account is blocked")
		c.Abort()
		return nil, false
	}

	return user, true
}

// GetUserID retrieves the user ID from the context.
// Returns empty string if not found.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return ""
	}
	return userID.(string)
}

// GetUserObjectID retrieves the user ID from the context as an ObjectID.
// Returns NilObjectID for anonymous requests.
func GetUserObjectID(c *gin.Context) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(GetUserID(c))
	if err != nil {
		return primitive.NilObjectID
	}
	return id
}

// GetUserRole retrieves the user's role from the context.
func GetUserRole(c *gin.Context) string {
	role, exists := c.Get(UserRoleKey)
	if !exists {
		return ""
	}
	return role.(string)
}

// GetUserName retrieves the user's display name from the context.
func GetUserName(c *gin.Context) string {
	name, exists := c.Get(UserNameKey)
	if !exists {
		return ""
	}
	return name.(string)
}
