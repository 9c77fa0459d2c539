package service

import (
	"context"
	"time"

	"cookbook/internal/cache"
	"cookbook/internal/models"
	"cookbook/internal/repository"
	"cookbook/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const userCacheTTL = 15 * time.Minute

// UserService handles business logic for user operations.
type UserService struct {
	userRepo         repository.UserRepository
	recipeRepo       repository.RecipeRepository
	notificationRepo repository.NotificationRepository
	refreshTokenRepo repository.RefreshTokenRepository
	cache            cache.Cache
	storage          storage.Storage
}

// UserServiceConfig holds configuration for UserService.
type UserServiceConfig struct {
	UserRepo         repository.UserRepository
	RecipeRepo       repository.RecipeRepository
	NotificationRepo repository.NotificationRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Cache            cache.Cache
	Storage          storage.Storage
}

// NewUserService creates a new UserService.
func NewUserService(cfg UserServiceConfig) *UserService {
	return &UserService{
		userRepo:         cfg.UserRepo,
		recipeRepo:       cfg.RecipeRepo,
		notificationRepo: cfg.NotificationRepo,
		refreshTokenRepo: cfg.RefreshTokenRepo,
		cache:            cfg.Cache,
		storage:          cfg.Storage,
	}
}

// GetUser retrieves a user by ID (with caching).
func (s *UserService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	// Try cache first
	cacheKey := cache.UserCacheKey(id.Hex())
	var cached models.User
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err == nil && found {
		s.attachAvatarURL(ctx, &cached)
		return &cached, nil // Cache hit
	}

	// Cache miss - get from database
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Store in cache (ignore errors - cache is best effort)
	_ = s.cache.Set(ctx, cacheKey, user, userCacheTTL)

	s.attachAvatarURL(ctx, user)
	return user, nil
}

// UpdateProfile updates a user's own profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.UserCacheKey(id.Hex()))

	s.attachAvatarURL(ctx, user)
	return user, nil
}

// RequestAvatarUpload generates a pre-signed URL for uploading an avatar and
// records the object key on the user.
func (s *UserService) RequestAvatarUpload(ctx context.Context, id primitive.ObjectID, req *models.AvatarUploadRequest) (*models.AvatarUploadResponse, error) {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	key := storage.AvatarKey(id.Hex(), req.Format)
	uploadURL, err := s.storage.GetPresignedPutURL(ctx, key, storage.ContentTypeForFormat(req.Format), uploadURLExpiry)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SetAvatarKey(ctx, id, key); err != nil {
		return nil, err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.UserCacheKey(id.Hex()))

	return &models.AvatarUploadResponse{UploadURL: uploadURL}, nil
}

// ListUsers retrieves paginated users for the admin panel.
func (s *UserService) ListUsers(ctx context.Context, page, limit int) (*models.UserListResponse, error) {
	page, limit = normalizePage(page, limit)

	users, total, err := s.userRepo.FindAll(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	for i := range users {
		s.attachAvatarURL(ctx, &users[i])
	}

	return &models.UserListResponse{
		Items:      users,
		Pagination: buildPagination(page, limit, total),
	}, nil
}

// SetRole changes a user's role.
func (s *UserService) SetRole(ctx context.Context, id primitive.ObjectID, role string) error {
	if err := s.userRepo.SetRole(ctx, id, role); err != nil {
		return err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.UserCacheKey(id.Hex()))

	return nil
}

// SetBlocked blocks or unblocks a user. Blocking also revokes the user's
// refresh tokens so existing sessions cannot be renewed.
func (s *UserService) SetBlocked(ctx context.Context, id primitive.ObjectID, blocked bool) error {
	if err := s.userRepo.SetBlocked(ctx, id, blocked); err != nil {
		return err
	}

	if blocked {
		_ = s.revokeRefreshTokens(ctx, id)
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.UserCacheKey(id.Hex()))

	return nil
}

// DeleteUser removes a user along with their recipes, notifications and sessions.
func (s *UserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	// Cascade cleanup. Each step is independent; a failure here leaves
	// orphaned documents but never a half-deleted user.
	if err := s.recipeRepo.DeleteAllByCreatedBy(ctx, id); err != nil {
		return err
	}
	if err := s.notificationRepo.DeleteAllByUserID(ctx, id); err != nil {
		return err
	}
	if err := s.revokeRefreshTokens(ctx, id); err != nil {
		return err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.UserCacheKey(id.Hex()))

	return nil
}

// revokeRefreshTokens removes all refresh tokens for a user from the database
// and the cache.
func (s *UserService) revokeRefreshTokens(ctx context.Context, id primitive.ObjectID) error {
	tokens, err := s.refreshTokenRepo.FindAllByUserID(ctx, id)
	if err != nil {
		return err
	}

	if len(tokens) > 0 {
		tokenStrings := make([]string, len(tokens))
		for i, t := range tokens {
			tokenStrings[i] = t.Token
		}
		_ = s.cache.DeleteRefreshTokens(ctx, tokenStrings)
	}

	return s.refreshTokenRepo.DeleteByUserID(ctx, id)
}

// attachAvatarURL resolves the user's avatar key to a pre-signed URL.
func (s *UserService) attachAvatarURL(ctx context.Context, user *models.User) {
	if user.AvatarKey == "" {
		return
	}
	url, err := s.storage.GetPresignedURL(ctx, user.AvatarKey, presignedURLExpiry)
	if err != nil {
		// URL stays empty on presign failure
		return
	}
	user.Avatar = url
}
