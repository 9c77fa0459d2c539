package main

import (
	"bytes"
	"context"
	"log"
	"time"

	"cookbook/internal/config"
	"cookbook/internal/database"
	"cookbook/internal/models"
	"cookbook/internal/storage"
	"cookbook/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedUser represents a user document for seeding.
type SeedUser struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Email        string               `bson:"email"`
	Password     string               `bson:"password"`
	Name         string               `bson:"name"`
	Role         string               `bson:"role"`
	IsBlocked    bool                 `bson:"isBlocked"`
	SavedRecipes []primitive.ObjectID `bson:"savedRecipes"`
	CreatedAt    time.Time            `bson:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt"`
}

// SeedRecipe represents a recipe document for seeding.
type SeedRecipe struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty"`
	Title           string               `bson:"title"`
	Description     string               `bson:"description"`
	Ingredients     []string             `bson:"ingredients"`
	Steps           []string             `bson:"steps"`
	Image           string               `bson:"image"`
	ImageKey        string               `bson:"imageKey"`
	CookingTime     int                  `bson:"cookingTime"`
	Status          models.RecipeStatus  `bson:"status"`
	RejectionReason string               `bson:"rejectionReason"`
	Likes           []primitive.ObjectID `bson:"likes"`
	CreatedBy       primitive.ObjectID   `bson:"createdBy"`
	CreatedAt       time.Time            `bson:"createdAt"`
	UpdatedAt       time.Time            `bson:"updatedAt"`
}

func main() {
	log.Println("Starting seed...")

	// Load config
	cfg := config.Load()

	// Connect to MongoDB
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Connect to S3/MinIO
	s3Client := storage.NewS3Client(
		cfg.S3Endpoint,
		cfg.S3AccessKey,
		cfg.S3SecretKey,
		cfg.S3Bucket,
		cfg.S3UseSSL,
	)

	ctx := context.Background()

	// Seed users
	userIDs := seedUsers(ctx, mongoDB.Database)

	// Seed recipes and placeholder images
	seedRecipes(ctx, mongoDB.Database, s3Client, userIDs)

	log.Println("Seed completed successfully!")
}

func seedUsers(ctx context.Context, db *mongo.Database) []primitive.ObjectID {
	collection := db.Collection("users")

	// Clear existing users
	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}

	// Hash passwords
	adminPassword, _ := auth.HashPassword("admin123")
	password1, _ := auth.HashPassword("password123")
	password2, _ := auth.HashPassword("password456")

	now := time.Now()

	users := []interface{}{
		SeedUser{
			Email:        "admin@example.com",
			Password:     adminPassword,
			Name:         "Admin",
			Role:         models.RoleAdmin,
			SavedRecipes: []primitive.ObjectID{},
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		SeedUser{
			Email:        "alice@example.com",
			Password:     password1,
			Name:         "Alice Johnson",
			Role:         models.RoleUser,
			SavedRecipes: []primitive.ObjectID{},
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		SeedUser{
			Email:        "bob@example.com",
			Password:     password2,
			Name:         "Bob Smith",
			Role:         models.RoleUser,
			SavedRecipes: []primitive.ObjectID{},
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	result, err := collection.InsertMany(ctx, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seeded %d users", len(result.InsertedIDs))

	// Convert to ObjectIDs
	var userIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		userIDs = append(userIDs, id.(primitive.ObjectID))
	}

	return userIDs
}

func seedRecipes(ctx context.Context, db *mongo.Database, s3Client *storage.S3Client, userIDs []primitive.ObjectID) {
	collection := db.Collection("recipes")

	// Clear existing recipes
	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear recipes: %v", err)
	}

	now := time.Now()
	admin, alice, bob := userIDs[0], userIDs[1], userIDs[2]

	recipes := []SeedRecipe{
		{
			Title:       "Masala Chai",
			Description: "Spiced black tea simmered with milk, ginger and cardamom.",
			Ingredients: []string{"water", "black tea leaves", "whole milk", "fresh ginger", "cardamom pods", "sugar"},
			Steps:       []string{"Boil water with ginger and cardamom.", "Add tea leaves and simmer for two minutes.", "Pour in milk, bring back to a boil.", "Strain into cups and sweeten to taste."},
			CookingTime: 15,
			Status:      models.StatusApproved,
			Likes:       []primitive.ObjectID{bob, admin},
			CreatedBy:   alice,
			CreatedAt:   now.Add(-72 * time.Hour),
			UpdatedAt:   now.Add(-48 * time.Hour),
		},
		{
			Title:       "Shakshuka",
			Description: "Eggs poached in a smoky tomato and pepper sauce.",
			Ingredients: []string{"eggs", "canned tomatoes", "red bell pepper", "onion", "garlic", "smoked paprika", "cumin", "olive oil"},
			Steps:       []string{"Soften onion and pepper in olive oil.", "Add garlic and spices, cook until fragrant.", "Pour in tomatoes and simmer until thick.", "Make wells, crack in the eggs and cover until just set."},
			CookingTime: 30,
			Status:      models.StatusApproved,
			Likes:       []primitive.ObjectID{alice},
			CreatedBy:   bob,
			CreatedAt:   now.Add(-48 * time.Hour),
			UpdatedAt:   now.Add(-24 * time.Hour),
		},
		{
			Title:       "Miso Ramen",
			Description: "Quick weeknight ramen with a miso-based broth.",
			Ingredients: []string{"ramen noodles", "white miso paste", "chicken stock", "soy sauce", "scallions", "soft-boiled egg", "nori"},
			Steps:       []string{"Whisk miso into hot stock with soy sauce.", "Cook noodles separately and drain.", "Assemble bowls with broth, noodles and toppings."},
			CookingTime: 25,
			Status:      models.StatusPending,
			Likes:       []primitive.ObjectID{},
			CreatedBy:   alice,
			CreatedAt:   now.Add(-6 * time.Hour),
			UpdatedAt:   now.Add(-6 * time.Hour),
		},
		{
			Title:           "Microwave Mug Cake",
			Description:     "Chocolate cake in a mug, ready in five minutes.",
			Ingredients:     []string{"flour", "cocoa powder", "sugar", "milk", "vegetable oil"},
			Steps:           []string{"Whisk everything in a mug.", "Microwave for 90 seconds."},
			CookingTime:     5,
			Status:          models.StatusRejected,
			RejectionReason: "Duplicate of an existing recipe",
			Likes:           []primitive.ObjectID{},
			CreatedBy:       bob,
			CreatedAt:       now.Add(-24 * time.Hour),
			UpdatedAt:       now.Add(-12 * time.Hour),
		},
	}

	// Upload placeholder images and set keys for the approved recipes
	for i := range recipes {
		if recipes[i].Status != models.StatusApproved {
			continue
		}
		recipes[i].ID = primitive.NewObjectID()
		key := storage.RecipeImageKey(recipes[i].ID.Hex(), "jpg")
		uploadPlaceholderImage(ctx, s3Client, key)
		recipes[i].ImageKey = key
	}

	// Convert to []interface{} for InsertMany
	var recipesToInsert []interface{}
	for _, recipe := range recipes {
		recipesToInsert = append(recipesToInsert, recipe)
	}

	result, err := collection.InsertMany(ctx, recipesToInsert)
	if err != nil {
		log.Fatalf("Failed to seed recipes: %v", err)
	}

	log.Printf("Seeded %d recipes", len(result.InsertedIDs))
}

// uploadPlaceholderImage uploads a placeholder image file to S3.
func uploadPlaceholderImage(ctx context.Context, s3Client *storage.S3Client, key string) {
	// Minimal JPEG header followed by filler bytes
	placeholder := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0x00}, 1020)...)

	err := s3Client.PutObject(ctx, key, bytes.NewReader(placeholder), "image/jpeg")
	if err != nil {
		log.Printf("Warning: Failed to upload %s: %v", key, err)
		return
	}

	log.Printf("Uploaded placeholder image: %s", key)
}
