package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification type tags.
const (
	// NotificationTypeAdmin tags moderation-queue broadcasts sent to admins.
	NotificationTypeAdmin = "admin"
	// NotificationTypeRecipe tags moderation decisions sent to recipe owners.
	NotificationTypeRecipe = "recipe"
	// NotificationTypeLike tags like notifications sent to recipe owners.
	NotificationTypeLike = "like"
	// NotificationTypeSave tags save notifications sent to recipe owners.
	NotificationTypeSave = "save"
)

// Notification represents an in-app notification for a user.
type Notification struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439012"`
	Title     string             `json:"title" bson:"title" example:"Recipe Approved"`
	Message   string             `json:"message" bson:"message" example:"Your recipe \"Masala Chai\" has been approved."`
	Link      string             `json:"link,omitempty" bson:"link,omitempty" example:"/recipes/507f1f77bcf86cd799439011"`
	Type      string             `json:"type,omitempty" bson:"type,omitempty" example:"recipe"`
	IsRead    bool               `json:"isRead" bson:"isRead" example:"false"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// NotificationListResponse is the response for listing notifications.
type NotificationListResponse struct {
	Items      []Notification `json:"items"`
	Pagination Pagination     `json:"pagination"`
}

// UnreadCountResponse reports the number of unread notifications.
type UnreadCountResponse struct {
	Count int `json:"count" example:"3"`
}
