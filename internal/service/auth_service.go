// Package service contains business logic for the application.
package service

import (
	"context"
	"time"

	"cookbook/internal/cache"
	apperrors "cookbook/internal/errors"
	"cookbook/internal/models"
	"cookbook/internal/repository"
	"cookbook/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthService handles authentication business logic.
type AuthService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	cache            cache.Cache
	jwtManager       auth.TokenManager
	accessTokenTTL   time.Duration
	refreshTokenTTL  time.Duration
}

// AuthServiceConfig holds configuration for AuthService.
type AuthServiceConfig struct {
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Cache            cache.Cache
	JWTManager       auth.TokenManager
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo:         cfg.UserRepo,
		refreshTokenRepo: cfg.RefreshTokenRepo,
		cache:            cfg.Cache,
		jwtManager:       cfg.JWTManager,
		accessTokenTTL:   cfg.AccessTokenTTL,
		refreshTokenTTL:  cfg.RefreshTokenTTL,
	}
}

// Register creates a new user account and returns auth tokens.
func (s *AuthService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashedPassword,
		Name:     req.Name,
		Role:     models.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.generateAuthResponse(ctx, user)
}

// Login authenticates a user and returns auth tokens.
// Blocked accounts are refused even with valid credentials.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.IsBlocked {
		return nil, apperrors.ErrUserBlocked
	}

	return s.generateAuthResponse(ctx, user)
}

// Refresh exchanges a refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
	// Try cache first
	userID, err := s.cache.GetRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, err
	}

	// Cache miss - check database
	if userID == "" {
		refreshToken, err := s.refreshTokenRepo.FindByToken(ctx, req.RefreshToken)
		if err != nil {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		userID = refreshToken.UserID.Hex()

		// Cache the token for next time
		ttl := time.Until(refreshToken.ExpiresAt)
		if ttl > 0 {
			_ = s.cache.SetRefreshToken(ctx, req.RefreshToken, userID, ttl)
		}
	}

	// Refuse refresh for blocked or deleted accounts
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	user, err := s.userRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if user.IsBlocked {
		return nil, apperrors.ErrUserBlocked
	}

	// Generate new access token
	accessToken, err := s.jwtManager.GenerateToken(userID)
	if err != nil {
		return nil, err
	}

	return &models.RefreshResponse{
		AccessToken: accessToken,
		ExpiresIn:   int(s.accessTokenTTL.Seconds()),
	}, nil
}

// Logout invalidates a refresh token.
func (s *AuthService) Logout(ctx context.Context, req *models.LogoutRequest) error {
	// Delete from database
	if err := s.refreshTokenRepo.DeleteByToken(ctx, req.RefreshToken); err != nil {
		return err
	}

	// Delete from cache
	_ = s.cache.DeleteRefreshToken(ctx, req.RefreshToken)

	return nil
}

// LogoutAll invalidates all refresh tokens for a user.
func (s *AuthService) LogoutAll(ctx context.Context, userID primitive.ObjectID) error {
	tokens, err := s.refreshTokenRepo.FindAllByUserID(ctx, userID)
	if err != nil {
		return err
	}

	// Extract token strings for cache deletion
	if len(tokens) > 0 {
		tokenStrings := make([]string, len(tokens))
		for i, t := range tokens {
			tokenStrings[i] = t.Token
		}

		// Batch delete from cache (best-effort)
		_ = s.cache.DeleteRefreshTokens(ctx, tokenStrings)
	}

	return s.refreshTokenRepo.DeleteByUserID(ctx, userID)
}

// generateAuthResponse creates access and refresh tokens for a user.
func (s *AuthService) generateAuthResponse(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	refreshTokenStr, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	refreshToken := &models.RefreshToken{
		Token:     refreshTokenStr,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.refreshTokenTTL),
	}

	if err := s.refreshTokenRepo.Create(ctx, refreshToken); err != nil {
		return nil, err
	}

	// Cache refresh token (best-effort)
	_ = s.cache.SetRefreshToken(ctx, refreshTokenStr, user.ID.Hex(), s.refreshTokenTTL)

	return &models.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenStr,
		ExpiresIn:    int(s.accessTokenTTL.Seconds()),
		User:         *user,
	}, nil
}
