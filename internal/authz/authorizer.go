// Package authz provides authorization interfaces and implementations.
// This module is designed for future migration to SpiceDB or API Gateway.
package authz

import (
	"context"

	"cookbook/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Action constants define the authorization actions.
const (
	ActionRecipeModerate  = "recipe:moderate"
	ActionRecipeEditAny   = "recipe:edit_any"
	ActionRecipeDeleteAny = "recipe:delete_any"
	ActionUserList        = "user:list"
	ActionUserSetRole     = "user:set_role"
	ActionUserSetBlocked  = "user:set_blocked"
	ActionUserDelete      = "user:delete"
)

// Authorizer defines the interface for authorization checks.
// Implementations can be swapped for SpiceDB or removed for API Gateway.
type Authorizer interface {
	// CanPerform checks if a role can perform an administrative action.
	CanPerform(ctx context.Context, role, action string) (bool, error)

	// CanViewRecipe checks if a viewer may see a recipe in its current status.
	CanViewRecipe(ctx context.Context, viewerID primitive.ObjectID, viewerRole string, recipe *models.Recipe) (bool, error)

	// CanModifyRecipe checks if a user may edit or delete a recipe they do not moderate.
	CanModifyRecipe(ctx context.Context, userID primitive.ObjectID, role string, recipe *models.Recipe) (bool, error)
}
