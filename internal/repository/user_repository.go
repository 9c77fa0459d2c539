// Package repository provides data access operations for the application.
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

//go:generate mockgen -destination=mocks/mock_user_repository.go -package=mocks cookbook/internal/repository UserRepository

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context, page, limit int) ([]models.User, int, error)
	FindAdmins(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) error
	SetBlocked(ctx context.Context, id primitive.ObjectID, blocked bool) error
	SetAvatarKey(ctx context.Context, id primitive.ObjectID, key string) error
	AddSavedRecipe(ctx context.Context, userID, recipeID primitive.ObjectID) (bool, error)
	RemoveSavedRecipe(ctx context.Context, userID, recipeID primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// userRepository implements UserRepository using MongoDB.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection("users"),
	}
}

// Create inserts a new user into the database.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	// Check if user with email already exists
	existing, _ := r.FindByEmail(ctx, user.Email)
	if existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.SavedRecipes == nil {
		user.SavedRecipes = []primitive.ObjectID{}
	}

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a user by their ID.
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindByEmail finds a user by their email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindAll returns paginated users, newest first.
func (r *userRepository) FindAll(ctx context.Context, page, limit int) ([]models.User, int, error) {
	filter := bson.M{}

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

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}

	if users == nil {
		users = []models.User{}
	}

	return users, int(total), nil
}

// FindAdmins returns all users with the admin role.
func (r *userRepository) FindAdmins(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"role": models.RoleAdmin})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var admins []models.User
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, err
	}

	if admins == nil {
		admins = []models.User{}
	}

	return admins, nil
}

// Update updates a user's profile fields.
func (r *userRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error) {
	updateDoc := bson.M{"updatedAt": time.Now()}

	if update.Email != nil {
		// Check if new email is already taken by another user
		existing, _ := r.FindByEmail(ctx, *update.Email)
		if existing != nil && existing.ID != id {
			return nil, apperrors.ErrUserAlreadyExists
		}
		updateDoc["email"] = *update.Email
	}

	if update.Name != nil {
		updateDoc["name"] = *update.Name
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
	)

	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, result.Err()
	}

	return r.FindByID(ctx, id)
}

// SetRole changes a user's role.
func (r *userRepository) SetRole(ctx context.Context, id primitive.ObjectID, role string) error {
	return r.setField(ctx, id, bson.M{"role": role})
}

// SetBlocked blocks or unblocks a user.
func (r *userRepository) SetBlocked(ctx context.Context, id primitive.ObjectID, blocked bool) error {
	return r.setField(ctx, id, bson.M{"isBlocked": blocked})
}

// SetAvatarKey stores the S3 object key of the user's avatar.
func (r *userRepository) SetAvatarKey(ctx context.Context, id primitive.ObjectID, key string) error {
	return r.setField(ctx, id, bson.M{"avatarKey": key})
}

func (r *userRepository) setField(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updatedAt"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// AddSavedRecipe adds a recipe id to the user's saved set.
// Returns false if the recipe was already saved ($addToSet made no change).
func (r *userRepository) AddSavedRecipe(ctx context.Context, userID, recipeID primitive.ObjectID) (bool, error) {
	// No updatedAt here: ModifiedCount must reflect the $addToSet alone so a
	// duplicate save is detectable.
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"savedRecipes": recipeID}},
	)
	if err != nil {
		return false, err
	}
	if result.MatchedCount == 0 {
		return false, apperrors.ErrUserNotFound
	}

	return result.ModifiedCount > 0, nil
}

// RemoveSavedRecipe removes a recipe id from the user's saved set.
// Idempotent: removing an id that is not present is not an error.
func (r *userRepository) RemoveSavedRecipe(ctx context.Context, userID, recipeID primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"savedRecipes": recipeID}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Delete removes a user from the database.
func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
