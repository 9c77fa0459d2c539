package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecipeStatus represents the moderation status of a recipe.
type RecipeStatus string

const (
	// StatusPending indicates the recipe is awaiting admin review.
	StatusPending RecipeStatus = "pending"
	// StatusApproved indicates the recipe passed review and is publicly visible.
	StatusApproved RecipeStatus = "approved"
	// StatusRejected indicates the recipe was declined; only the owner can see it.
	StatusRejected RecipeStatus = "rejected"
)

// Recipe represents a recipe in the system.
type Recipe struct {
	ID              primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Title           string               `json:"title" bson:"title" example:"Masala Chai"`
	Description     string               `json:"description" bson:"description" example:"Spiced black tea with milk"`
	Ingredients     []string             `json:"ingredients" bson:"ingredients" example:"water,tea leaves,milk"`
	Steps           []string             `json:"steps" bson:"steps" example:"boil water,add tea,simmer"`
	Image           string               `json:"image" bson:"image" example:"https://example.com/chai.jpg"` // External URL, or pre-signed URL when an uploaded image exists
	ImageKey        string               `json:"-" bson:"imageKey"`                                         // S3 key, not exposed in JSON
	CookingTime     int                  `json:"cookingTime" bson:"cookingTime" example:"15"`
	Status          RecipeStatus         `json:"status" bson:"status" example:"pending"`
	RejectionReason string               `json:"rejectionReason" bson:"rejectionReason" example:""`
	Likes           []primitive.ObjectID `json:"likes" bson:"likes"`
	CreatedBy       primitive.ObjectID   `json:"createdBy" bson:"createdBy" example:"507f1f77bcf86cd799439012"`
	CreatedAt       time.Time            `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt       time.Time            `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// LikedBy reports whether the user id is in the recipe's likes.
func (r *Recipe) LikedBy(userID primitive.ObjectID) bool {
	for _, id := range r.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// CreateRecipeRequest is the payload for submitting a recipe.
type CreateRecipeRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=200" example:"Masala Chai"`
	Description string   `json:"description" binding:"required,min=1,max=2000" example:"Spiced black tea with milk"`
	Ingredients []string `json:"ingredients" binding:"required,min=1,max=50,dive,required,max=200" example:"water,tea leaves"`
	Steps       []string `json:"steps" binding:"required,min=1,max=50,dive,required,max=1000" example:"boil,steep"`
	Image       string   `json:"image" binding:"omitempty,url" example:"https://example.com/chai.jpg"`
	CookingTime int      `json:"cookingTime" binding:"required,gt=0" example:"15"`
}

// UpdateRecipeRequest is the owner payload for editing a pending recipe.
type UpdateRecipeRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=1,max=200" example:"Masala Chai v2"`
	Description *string   `json:"description" binding:"omitempty,min=1,max=2000" example:"Updated description"`
	Ingredients *[]string `json:"ingredients" binding:"omitempty,min=1,max=50,dive,required,max=200"`
	Steps       *[]string `json:"steps" binding:"omitempty,min=1,max=50,dive,required,max=1000"`
}

// AdminUpdateRecipeRequest is the admin payload for editing any recipe,
// including a direct status override.
type AdminUpdateRecipeRequest struct {
	Title       *string       `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string       `json:"description" binding:"omitempty,min=1,max=2000"`
	Ingredients *[]string     `json:"ingredients" binding:"omitempty,min=1,max=50,dive,required,max=200"`
	Steps       *[]string     `json:"steps" binding:"omitempty,min=1,max=50,dive,required,max=1000"`
	CookingTime *int          `json:"cookingTime" binding:"omitempty,gt=0"`
	Status      *RecipeStatus `json:"status" binding:"omitempty,oneof=pending approved rejected"`
}

// RejectRecipeRequest is the admin payload for rejecting a recipe.
type RejectRecipeRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=1000" example:"Duplicate of an existing recipe"`
}

// LikeResponse reports the like state after a toggle.
type LikeResponse struct {
	Liked     bool `json:"liked" example:"true"`
	LikeCount int  `json:"likeCount" example:"3"`
}

// ImageUploadRequest is the payload for requesting a recipe image upload URL.
type ImageUploadRequest struct {
	Format string `json:"format" binding:"required,oneof=jpg jpeg png webp" example:"jpg"`
}

// ImageUploadResponse is the response with a pre-signed image upload URL.
type ImageUploadResponse struct {
	UploadURL string `json:"uploadUrl" example:"https://s3.amazonaws.com/bucket/recipes/...?X-Amz-Algorithm=..."`
}

// RecipeListResponse is the response for listing recipes.
type RecipeListResponse struct {
	Items      []Recipe   `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// Pagination contains pagination metadata.
type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"10"`
	TotalItems int `json:"totalItems" example:"42"`
	TotalPages int `json:"totalPages" example:"5"`
}
