// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserBlocked        = errors.New("account is blocked")
)

// Auth errors
var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrAdminRequired       = errors.New("admin role required")
)

// Recipe errors
var (
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrNotRecipeOwner     = errors.New("you can only modify your own recipes")
	ErrRecipeNotEditable  = errors.New("only pending recipes can be edited")
	ErrRecipeNotDeletable = errors.New("approved recipes cannot be deleted by their owner")
	ErrRecipeOwnerMissing = errors.New("recipe has no owner")
)

// Save errors
var (
	ErrRecipeAlreadySaved = errors.New("recipe is already saved")
)

// Notification errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotNotificationOwner = errors.New("you can only manage your own notifications")
)
