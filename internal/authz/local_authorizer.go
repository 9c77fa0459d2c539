package authz

import (
	"context"

	"cookbook/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LocalAuthorizer implements Authorizer using in-process role checks.
// This is the initial implementation that can be replaced with SpiceDBAuthorizer later.
type LocalAuthorizer struct{}

// NewLocalAuthorizer creates a new LocalAuthorizer.
func NewLocalAuthorizer() *LocalAuthorizer {
	return &LocalAuthorizer{}
}

// rolePermissions maps actions to the roles that can perform them.
var rolePermissions = map[string][]string{
	ActionRecipeModerate:  {models.RoleAdmin},
	ActionRecipeEditAny:   {models.RoleAdmin},
	ActionRecipeDeleteAny: {models.RoleAdmin},
	ActionUserList:        {models.RoleAdmin},
	ActionUserSetRole:     {models.RoleAdmin},
	ActionUserSetBlocked:  {models.RoleAdmin},
	ActionUserDelete:      {models.RoleAdmin},
}

// CanPerform checks if a role can perform an administrative action.
func (a *LocalAuthorizer) CanPerform(ctx context.Context, role, action string) (bool, error) {
	allowedRoles, exists := rolePermissions[action]
	if !exists {
		return false, nil // Unknown action
	}

	for _, allowed := range allowedRoles {
		if role == allowed {
			return true, nil
		}
	}

	return false, nil
}

// CanViewRecipe checks if a viewer may see a recipe in its current status.
// Approved recipes are visible to everyone, including anonymous viewers.
// Pending and rejected recipes are visible only to their owner and to admins.
func (a *LocalAuthorizer) CanViewRecipe(ctx context.Context, viewerID primitive.ObjectID, viewerRole string, recipe *models.Recipe) (bool, error) {
	if recipe.Status == models.StatusApproved {
		return true, nil
	}
	if viewerRole == models.RoleAdmin {
		return true, nil
	}
	if !viewerID.IsZero() && viewerID == recipe.CreatedBy {
		return true, nil
	}
	return false, nil
}

// CanModifyRecipe checks if a user may edit or delete a recipe outside moderation.
// Admins can modify any recipe; regular users only their own.
func (a *LocalAuthorizer) CanModifyRecipe(ctx context.Context, userID primitive.ObjectID, role string, recipe *models.Recipe) (bool, error) {
	if role == models.RoleAdmin {
		return true, nil
	}
	return userID == recipe.CreatedBy, nil
}

// Ensure LocalAuthorizer implements Authorizer interface
var _ Authorizer = (*LocalAuthorizer)(nil)
