package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"cookbook/internal/authz"
	"cookbook/internal/cache"
	apperrors "cookbook/internal/errors"
	"cookbook/internal/models"
	"cookbook/internal/queue"
	"cookbook/internal/repository"
	"cookbook/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	presignedURLExpiry = 1 * time.Hour
	uploadURLExpiry    = 15 * time.Minute
	recipeCacheTTL     = 5 * time.Minute
)

// RecipeService handles business logic for recipe operations.
type RecipeService struct {
	recipeRepo       repository.RecipeRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	cache            cache.Cache
	storage          storage.Storage
	queue            queue.Queue
	authorizer       authz.Authorizer
}

// RecipeServiceConfig holds configuration for RecipeService.
type RecipeServiceConfig struct {
	RecipeRepo       repository.RecipeRepository
	UserRepo         repository.UserRepository
	NotificationRepo repository.NotificationRepository
	Cache            cache.Cache
	Storage          storage.Storage
	Queue            queue.Queue
	Authorizer       authz.Authorizer
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(cfg RecipeServiceConfig) *RecipeService {
	return &RecipeService{
		recipeRepo:       cfg.RecipeRepo,
		userRepo:         cfg.UserRepo,
		notificationRepo: cfg.NotificationRepo,
		cache:            cfg.Cache,
		storage:          cfg.Storage,
		queue:            cfg.Queue,
		authorizer:       cfg.Authorizer,
	}
}

// SubmitRecipe creates a new recipe in pending status and queues a broadcast
// to notify admins about the new submission.
func (s *RecipeService) SubmitRecipe(ctx context.Context, userID primitive.ObjectID, userName string, req *models.CreateRecipeRequest) (*models.Recipe, error) {
	recipe := &models.Recipe{
		Title:       req.Title,
		Description: req.Description,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
		Image:       req.Image,
		CookingTime: req.CookingTime,
		CreatedBy:   userID,
	}

	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, err
	}

	// Admin broadcast is best-effort: the submission succeeded either way
	job := queue.BroadcastJob{
		RecipeID:      recipe.ID,
		RecipeTitle:   recipe.Title,
		SubmitterName: userName,
	}
	if err := s.queue.Enqueue(job); err != nil {
		log.Printf("Failed to enqueue broadcast for recipe %s: %v", recipe.ID.Hex(), err)
	}

	return recipe, nil
}

// ListApproved retrieves paginated publicly visible recipes.
func (s *RecipeService) ListApproved(ctx context.Context, page, limit int) (*models.RecipeListResponse, error) {
	page, limit = normalizePage(page, limit)

	recipes, total, err := s.recipeRepo.FindByStatus(ctx, models.StatusApproved, page, limit)
	if err != nil {
		return nil, err
	}

	attachImageURLs(ctx, s.storage, recipes)

	return &models.RecipeListResponse{
		Items:      recipes,
		Pagination: buildPagination(page, limit, total),
	}, nil
}

// GetRecipe retrieves a single recipe, enforcing the visibility contract:
// non-approved recipes are reported as not found to anyone but their owner
// and admins.
func (s *RecipeService) GetRecipe(ctx context.Context, viewerID primitive.ObjectID, viewerRole string, id primitive.ObjectID) (*models.Recipe, error) {
	recipe, err := s.findCached(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed, err := s.authorizer.CanViewRecipe(ctx, viewerID, viewerRole, recipe)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrRecipeNotFound
	}

	attachImageURL(ctx, s.storage, recipe)
	return recipe, nil
}

// UpdateRecipe applies an owner edit. Only pending recipes can be edited.
func (s *RecipeService) UpdateRecipe(ctx context.Context, userID, id primitive.ObjectID, req *models.UpdateRecipeRequest) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if recipe.CreatedBy != userID {
		return nil, apperrors.ErrNotRecipeOwner
	}
	if recipe.Status != models.StatusPending {
		return nil, apperrors.ErrRecipeNotEditable
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

	if err := s.recipeRepo.Update(ctx, recipe); err != nil {
		return nil, err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.RecipeCacheKey(id.Hex()))

	attachImageURL(ctx, s.storage, recipe)
	return recipe, nil
}

// DeleteRecipe applies an owner delete. Approved recipes cannot be deleted
// by their owner.
func (s *RecipeService) DeleteRecipe(ctx context.Context, userID, id primitive.ObjectID) error {
	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if recipe.CreatedBy != userID {
		return apperrors.ErrNotRecipeOwner
	}
	if recipe.Status == models.StatusApproved {
		return apperrors.ErrRecipeNotDeletable
	}

	if err := s.recipeRepo.Delete(ctx, id); err != nil {
		return err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.RecipeCacheKey(id.Hex()))

	return nil
}

// ListMine retrieves paginated recipes owned by the user, in any status.
func (s *RecipeService) ListMine(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.RecipeListResponse, error) {
	page, limit = normalizePage(page, limit)

	recipes, total, err := s.recipeRepo.FindByCreatedBy(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}

	attachImageURLs(ctx, s.storage, recipes)

	return &models.RecipeListResponse{
		Items:      recipes,
		Pagination: buildPagination(page, limit, total),
	}, nil
}

// ListSaved retrieves a page of the user's saved recipes in save order.
func (s *RecipeService) ListSaved(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.RecipeListResponse, error) {
	page, limit = normalizePage(page, limit)

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := len(user.SavedRecipes)

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	pageIDs := user.SavedRecipes[start:end]
	recipes, err := s.recipeRepo.FindByIDs(ctx, pageIDs)
	if err != nil {
		return nil, err
	}

	// FindByIDs sorts by creation time; the saved list defines the order.
	byID := make(map[primitive.ObjectID]models.Recipe, len(recipes))
	for _, recipe := range recipes {
		byID[recipe.ID] = recipe
	}
	ordered := make([]models.Recipe, 0, len(recipes))
	for _, id := range pageIDs {
		if recipe, ok := byID[id]; ok {
			ordered = append(ordered, recipe)
		}
	}

	attachImageURLs(ctx, s.storage, ordered)

	return &models.RecipeListResponse{
		Items:      ordered,
		Pagination: buildPagination(page, limit, total),
	}, nil
}

// ToggleLike likes or unlikes a recipe for the user. A like notifies the
// recipe owner; an unlike is silent.
func (s *RecipeService) ToggleLike(ctx context.Context, userID primitive.ObjectID, role, userName string, recipeID primitive.ObjectID) (*models.LikeResponse, error) {
	recipe, err := s.visibleRecipe(ctx, userID, role, recipeID)
	if err != nil {
		return nil, err
	}

	likeCount := len(recipe.Likes)

	if recipe.LikedBy(userID) {
		removed, err := s.recipeRepo.RemoveLike(ctx, recipeID, userID)
		if err != nil {
			return nil, err
		}
		if removed {
			likeCount--
		}
		_ = s.cache.Delete(ctx, cache.RecipeCacheKey(recipeID.Hex()))
		return &models.LikeResponse{Liked: false, LikeCount: likeCount}, nil
	}

	added, err := s.recipeRepo.AddLike(ctx, recipeID, userID)
	if err != nil {
		return nil, err
	}
	if added {
		likeCount++
	}
	_ = s.cache.Delete(ctx, cache.RecipeCacheKey(recipeID.Hex()))

	if added && recipe.CreatedBy != userID && !recipe.CreatedBy.IsZero() {
		notification := &models.Notification{
			UserID:  recipe.CreatedBy,
			Title:   "New Like",
			Message: fmt.Sprintf("%s liked your recipe %q.", userName, recipe.Title),
			Link:    "/recipes/" + recipeID.Hex(),
			Type:    models.NotificationTypeLike,
		}
		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			log.Printf("Failed to create like notification for recipe %s: %v", recipeID.Hex(), err)
		}
	}

	return &models.LikeResponse{Liked: true, LikeCount: likeCount}, nil
}

// SaveRecipe adds a recipe to the user's saved list. Saving the same recipe
// twice is a conflict.
func (s *RecipeService) SaveRecipe(ctx context.Context, userID primitive.ObjectID, role, userName string, recipeID primitive.ObjectID) error {
	recipe, err := s.visibleRecipe(ctx, userID, role, recipeID)
	if err != nil {
		return err
	}

	added, err := s.userRepo.AddSavedRecipe(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if !added {
		return apperrors.ErrRecipeAlreadySaved
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.UserCacheKey(userID.Hex()))

	if recipe.CreatedBy != userID && !recipe.CreatedBy.IsZero() {
		notification := &models.Notification{
			UserID:  recipe.CreatedBy,
			Title:   "Recipe Saved",
			Message: fmt.Sprintf("%s saved your recipe %q.", userName, recipe.Title),
			Link:    "/recipes/" + recipeID.Hex(),
			Type:    models.NotificationTypeSave,
		}
		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			log.Printf("Failed to create save notification for recipe %s: %v", recipeID.Hex(), err)
		}
	}

	return nil
}

// UnsaveRecipe removes a recipe from the user's saved list. Removing a recipe
// that was never saved is not an error.
func (s *RecipeService) UnsaveRecipe(ctx context.Context, userID, recipeID primitive.ObjectID) error {
	if err := s.userRepo.RemoveSavedRecipe(ctx, userID, recipeID); err != nil {
		return err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.UserCacheKey(userID.Hex()))

	return nil
}

// RequestImageUpload generates a pre-signed URL for uploading a recipe image
// and records the object key on the recipe.
func (s *RecipeService) RequestImageUpload(ctx context.Context, userID primitive.ObjectID, role string, recipeID primitive.ObjectID, req *models.ImageUploadRequest) (*models.ImageUploadResponse, error) {
	recipe, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.authorizer.CanModifyRecipe(ctx, userID, role, recipe)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrNotRecipeOwner
	}

	key := storage.RecipeImageKey(recipeID.Hex(), req.Format)
	uploadURL, err := s.storage.GetPresignedPutURL(ctx, key, storage.ContentTypeForFormat(req.Format), uploadURLExpiry)
	if err != nil {
		return nil, err
	}

	if err := s.recipeRepo.SetImageKey(ctx, recipeID, key); err != nil {
		return nil, err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.RecipeCacheKey(recipeID.Hex()))

	return &models.ImageUploadResponse{UploadURL: uploadURL}, nil
}

// findCached retrieves a recipe by ID (with caching).
func (s *RecipeService) findCached(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error) {
	cacheKey := cache.RecipeCacheKey(id.Hex())
	var cached models.Recipe
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err == nil && found {
		return &cached, nil // Cache hit
	}

	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Store in cache (ignore errors - cache is best effort)
	_ = s.cache.Set(ctx, cacheKey, recipe, recipeCacheTTL)

	return recipe, nil
}

// visibleRecipe loads a recipe for a like or save action, applying the same
// visibility rule as reads: non-approved recipes are usable only by their
// owner and by admins.
func (s *RecipeService) visibleRecipe(ctx context.Context, userID primitive.ObjectID, role string, recipeID primitive.ObjectID) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	allowed, err := s.authorizer.CanViewRecipe(ctx, userID, role, recipe)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrRecipeNotFound
	}
	return recipe, nil
}

// attachImageURL resolves an uploaded image key to a pre-signed URL.
// Recipes without an uploaded image keep their stored external URL.
func attachImageURL(ctx context.Context, st storage.Storage, recipe *models.Recipe) {
	if recipe.ImageKey == "" {
		return
	}
	url, err := st.GetPresignedURL(ctx, recipe.ImageKey, presignedURLExpiry)
	if err != nil {
		// Stored URL stays in place on presign failure
		return
	}
	recipe.Image = url
}

func attachImageURLs(ctx context.Context, st storage.Storage, recipes []models.Recipe) {
	for i := range recipes {
		attachImageURL(ctx, st, &recipes[i])
	}
}
