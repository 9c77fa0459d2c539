package service

import (
	"context"
	"fmt"
	"log"

	"cookbook/internal/cache"
	apperrors "cookbook/internal/errors"
	"cookbook/internal/models"
	"cookbook/internal/repository"
	"cookbook/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// defaultRejectionReason is recorded when an admin rejects without a reason.
const defaultRejectionReason = "Not specified"

// ModerationService handles admin review of submitted recipes.
type ModerationService struct {
	recipeRepo       repository.RecipeRepository
	notificationRepo repository.NotificationRepository
	cache            cache.Cache
	storage          storage.Storage
}

// ModerationServiceConfig holds configuration for ModerationService.
type ModerationServiceConfig struct {
	RecipeRepo       repository.RecipeRepository
	NotificationRepo repository.NotificationRepository
	Cache            cache.Cache
	Storage          storage.Storage
}

// NewModerationService creates a new ModerationService.
func NewModerationService(cfg ModerationServiceConfig) *ModerationService {
	return &ModerationService{
		recipeRepo:       cfg.RecipeRepo,
		notificationRepo: cfg.NotificationRepo,
		cache:            cfg.Cache,
		storage:          cfg.Storage,
	}
}

// ListPending retrieves the paginated moderation queue.
func (s *ModerationService) ListPending(ctx context.Context, page, limit int) (*models.RecipeListResponse, error) {
	page, limit = normalizePage(page, limit)

	recipes, total, err := s.recipeRepo.FindByStatus(ctx, models.StatusPending, page, limit)
	if err != nil {
		return nil, err
	}

	attachImageURLs(ctx, s.storage, recipes)

	return &models.RecipeListResponse{
		Items:      recipes,
		Pagination: buildPagination(page, limit, total),
	}, nil
}

// ApproveRecipe marks a recipe as approved and notifies its owner. The status
// change is persisted before the notification so the owner is never told
// about an approval that failed to commit.
func (s *ModerationService) ApproveRecipe(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.recipeRepo.SetStatus(ctx, id, models.StatusApproved, ""); err != nil {
		return nil, err
	}
	recipe.Status = models.StatusApproved
	recipe.RejectionReason = ""

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.RecipeCacheKey(id.Hex()))

	if !recipe.CreatedBy.IsZero() {
		notification := &models.Notification{
			UserID:  recipe.CreatedBy,
			Title:   "Recipe Approved",
			Message: fmt.Sprintf("Your recipe %q has been approved.", recipe.Title),
			Link:    "/recipes/" + id.Hex(),
			Type:    models.NotificationTypeRecipe,
		}
		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			log.Printf("Failed to create approval notification for recipe %s: %v", id.Hex(), err)
		}
	}

	attachImageURL(ctx, s.storage, recipe)
	return recipe, nil
}

// RejectRecipe marks a recipe as rejected with a reason and notifies its
// owner. A recipe without a resolvable owner cannot be rejected.
func (s *ModerationService) RejectRecipe(ctx context.Context, id primitive.ObjectID, reason string) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if recipe.CreatedBy.IsZero() {
		return nil, apperrors.ErrRecipeOwnerMissing
	}

	if reason == "" {
		reason = defaultRejectionReason
	}

	if err := s.recipeRepo.SetStatus(ctx, id, models.StatusRejected, reason); err != nil {
		return nil, err
	}
	recipe.Status = models.StatusRejected
	recipe.RejectionReason = reason

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.RecipeCacheKey(id.Hex()))

	notification := &models.Notification{
		UserID:  recipe.CreatedBy,
		Title:   "Recipe Rejected",
		Message: fmt.Sprintf("Your recipe %q was rejected: %s", recipe.Title, reason),
		Link:    "/my-recipes",
		Type:    models.NotificationTypeRecipe,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		log.Printf("Failed to create rejection notification for recipe %s: %v", id.Hex(), err)
	}

	attachImageURL(ctx, s.storage, recipe)
	return recipe, nil
}

// AdminUpdateRecipe edits any recipe, optionally overriding its status
// directly. Unlike the owner path, no status precondition applies and no
// notifications are emitted.
func (s *ModerationService) AdminUpdateRecipe(ctx context.Context, id primitive.ObjectID, req *models.AdminUpdateRecipeRequest) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Ingredients != nil {
		recipe.Ingredients = *req.Ingredients
	}
	if req.Steps != nil {
		recipe.Steps = *req.Steps
	}
	if req.CookingTime != nil {
		recipe.CookingTime = *req.CookingTime
	}

	if err := s.recipeRepo.Update(ctx, recipe); err != nil {
		return nil, err
	}

	if req.Status != nil && *req.Status != recipe.Status {
		reason := recipe.RejectionReason
		if *req.Status != models.StatusRejected {
			reason = ""
		}
		if err := s.recipeRepo.SetStatus(ctx, id, *req.Status, reason); err != nil {
			return nil, err
		}
		recipe.Status = *req.Status
		recipe.RejectionReason = reason
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.RecipeCacheKey(id.Hex()))

	attachImageURL(ctx, s.storage, recipe)
	return recipe, nil
}

// AdminDeleteRecipe removes any recipe unconditionally.
func (s *ModerationService) AdminDeleteRecipe(ctx context.Context, id primitive.ObjectID) error {
	if err := s.recipeRepo.Delete(ctx, id); err != nil {
		return err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.RecipeCacheKey(id.Hex()))

	return nil
}
