package repository

import (
	"context"
	"errors"
	"time"

	apperrors "cookbook/internal/errors"
	"cookbook/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mocks/mock_recipe_repository.go -package=mocks cookbook/internal/repository RecipeRepository

// RecipeRepository defines the interface for recipe data operations.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error)
	FindByStatus(ctx context.Context, status models.RecipeStatus, page, limit int) ([]models.Recipe, int, error)
	FindByCreatedBy(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]models.Recipe, int, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Recipe, error)
	Update(ctx context.Context, recipe *models.Recipe) error
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.RecipeStatus, rejectionReason string) error
	SetImageKey(ctx context.Context, id primitive.ObjectID, key string) error
	AddLike(ctx context.Context, id, userID primitive.ObjectID) (bool, error)
	RemoveLike(ctx context.Context, id, userID primitive.ObjectID) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAllByCreatedBy(ctx context.Context, userID primitive.ObjectID) error
}

// recipeRepository implements RecipeRepository using MongoDB.
type recipeRepository struct {
	collection *mongo.Collection
}

// NewRecipeRepository creates a new RecipeRepository.
func NewRecipeRepository(db *mongo.Database) RecipeRepository {
	return &recipeRepository{
		collection: db.Collection("recipes"),
	}
}

// Create inserts a new recipe. Status always starts as pending.
func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	now := time.Now()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now
	recipe.Status = models.StatusPending
	recipe.RejectionReason = ""

	if recipe.Likes == nil {
		recipe.Likes = []primitive.ObjectID{}
	}

	result, err := r.collection.InsertOne(ctx, recipe)
	if err != nil {
		return err
	}

	recipe.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID retrieves a recipe by ID.
func (r *recipeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error) {
	var recipe models.Recipe

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, err
	}

	return &recipe, nil
}

// FindByStatus returns paginated recipes with the given status, newest first.
func (r *recipeRepository) FindByStatus(ctx context.Context, status models.RecipeStatus, page, limit int) ([]models.Recipe, int, error) {
	return r.findPage(ctx, bson.M{"status": status}, page, limit)
}

// FindByCreatedBy returns paginated recipes owned by a user, newest first.
func (r *recipeRepository) FindByCreatedBy(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]models.Recipe, int, error) {
	return r.findPage(ctx, bson.M{"createdBy": userID}, page, limit)
}

func (r *recipeRepository) findPage(ctx context.Context, filter bson.M, page, limit int) ([]models.Recipe, int, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * limit
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var recipes []models.Recipe
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, 0, err
	}

	if recipes == nil {
		recipes = []models.Recipe{}
	}

	return recipes, int(total), nil
}

// FindByIDs returns the recipes matching the given ids, newest first.
// Missing ids are silently skipped.
func (r *recipeRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Recipe, error) {
	if len(ids) == 0 {
		return []models.Recipe{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recipes []models.Recipe
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}

	if recipes == nil {
		recipes = []models.Recipe{}
	}

	return recipes, nil
}

// Update overwrites the mutable content fields of a recipe.
// Status, likes and ownership are managed by dedicated operations.
func (r *recipeRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	recipe.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"title":       recipe.Title,
			"description": recipe.Description,
			"ingredients": recipe.Ingredients,
			"steps":       recipe.Steps,
			"image":       recipe.Image,
			"cookingTime": recipe.CookingTime,
			"updatedAt":   recipe.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": recipe.ID}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrRecipeNotFound
	}

	return nil
}

// SetStatus persists a moderation state transition.
func (r *recipeRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status models.RecipeStatus, rejectionReason string) error {
	update := bson.M{
		"$set": bson.M{
			"status":          status,
			"rejectionReason": rejectionReason,
			"updatedAt":       time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrRecipeNotFound
	}

	return nil
}

// SetImageKey stores the S3 object key of the recipe image.
func (r *recipeRepository) SetImageKey(ctx context.Context, id primitive.ObjectID, key string) error {
	update := bson.M{
		"$set": bson.M{
			"imageKey":  key,
			"updatedAt": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrRecipeNotFound
	}

	return nil
}

// AddLike adds a user id to the recipe's likes set.
// Returns false if the user had already liked the recipe.
func (r *recipeRepository) AddLike(ctx context.Context, id, userID primitive.ObjectID) (bool, error) {
	// No updatedAt here: ModifiedCount must reflect the $addToSet alone so a
	// repeated like is detectable.
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$addToSet": bson.M{"likes": userID}},
	)
	if err != nil {
		return false, err
	}
	if result.MatchedCount == 0 {
		return false, apperrors.ErrRecipeNotFound
	}

	return result.ModifiedCount > 0, nil
}

// RemoveLike removes a user id from the recipe's likes set.
// Returns false if the user had not liked the recipe.
func (r *recipeRepository) RemoveLike(ctx context.Context, id, userID primitive.ObjectID) (bool, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$pull": bson.M{"likes": userID}},
	)
	if err != nil {
		return false, err
	}
	if result.MatchedCount == 0 {
		return false, apperrors.ErrRecipeNotFound
	}

	return result.ModifiedCount > 0, nil
}

// Delete removes a recipe from the database.
func (r *recipeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrRecipeNotFound
	}

	return nil
}

// DeleteAllByCreatedBy removes all recipes owned by a user.
// Used when an admin deletes a user account.
func (r *recipeRepository) DeleteAllByCreatedBy(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"createdBy": userID})
	return err
}
