package handler

import (
	"errors"
	"io"

	apperrors "cookbook/internal/errors"
	"cookbook/internal/models"
	"cookbook/internal/service"
	"cookbook/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminHandler handles HTTP requests for the admin panel.
type AdminHandler struct {
	moderation service.ModerationServicer
	users      service.UserServicer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(moderation service.ModerationServicer, users service.UserServicer) *AdminHandler {
	return &AdminHandler{
		moderation: moderation,
		users:      users,
	}
}

// ListPendingRecipes godoc
// @Summary      List recipes pending review
// @Description  Retrieve the paginated moderation queue
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Items per page (max 10)"
// @Success      200    {object}  response.Response{data=models.RecipeListResponse}
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/recipes/pending [get]
func (h *AdminHandler) ListPendingRecipes(c *gin.Context) {
	page, limit := pageParams(c)

	result, err := h.moderation.ListPending(c.Request.Context(), page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// ApproveRecipe godoc
// @Summary      Approve a recipe
// @Description  Mark a recipe as approved and notify its owner
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Recipe ID"
// @Success      200  {object}  response.Response{data=models.Recipe}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/recipes/{id}/approve [put]
func (h *AdminHandler) ApproveRecipe(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.NotFound(c, apperrors.ErrRecipeNotFound.Error())
		return
	}

	recipe, err := h.moderation.ApproveRecipe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrRecipeNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, recipe)
}

// RejectRecipe godoc
// @Summary      Reject a recipe
// @Description  Mark a recipe as rejected with a reason and notify its owner
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true   "Recipe ID"
// @Param        request  body      models.RejectRecipeRequest  false  "Rejection reason"
// @Success      200      {object}  response.Response{data=models.Recipe}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/recipes/{id}/reject [put]
func (h *AdminHandler) RejectRecipe(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.NotFound(c, apperrors.ErrRecipeNotFound.Error())
		return
	}

	// Body is optional; rejecting without a reason records a default
	var req models.RejectRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, err.Error())
		return
	}

	recipe, err := h.moderation.RejectRecipe(c.Request.Context(), id, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrRecipeNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrRecipeOwnerMissing):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, recipe)
}

// AdminUpdateRecipe godoc
// @Summary      Edit any recipe
// @Description  Update recipe content and optionally override its status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "Recipe ID"
// @Param        request  body      models.AdminUpdateRecipeRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Recipe}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/recipes/{id} [put]
func (h *AdminHandler) AdminUpdateRecipe(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.NotFound(c, apperrors.ErrRecipeNotFound.Error())
		return
	}

	var req models.AdminUpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	recipe, err := h.moderation.AdminUpdateRecipe(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrRecipeNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, recipe)
}

// AdminDeleteRecipe godoc
// @Summary      Delete any recipe
// @Description  Remove a recipe regardless of its status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Recipe ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/recipes/{id} [delete]
func (h *AdminHandler) AdminDeleteRecipe(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.NotFound(c, apperrors.ErrRecipeNotFound.Error())
		return
	}

	if err := h.moderation.AdminDeleteRecipe(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrRecipeNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Message(c, "recipe deleted")
}

// ListUsers godoc
// @Summary      List users
// @Description  Retrieve paginated users for the admin panel
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Items per page (max 10)"
// @Success      200    {object}  response.Response{data=models.UserListResponse}
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, limit := pageParams(c)

	result, err := h.users.ListUsers(c.Request.Context(), page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// SetUserRole godoc
// @Summary      Change a user's role
// @Description  Promote or demote a user between user and admin roles
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "User ID"
// @Param        request  body      models.UpdateRoleRequest  true  "New role"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/users/{id}/role [put]
func (h *AdminHandler) SetUserRole(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.NotFound(c, apperrors.ErrUserNotFound.Error())
		return
	}

	var req models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.users.SetRole(c.Request.Context(), id, req.Role); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Message(c, "role updated")
}

// SetUserBlocked godoc
// @Summary      Block or unblock a user
// @Description  Blocked users cannot log in, refresh sessions, or call authenticated endpoints
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "User ID"
// @Param        request  body      models.SetBlockedRequest  true  "Blocked flag"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/users/{id}/block [put]
func (h *AdminHandler) SetUserBlocked(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.NotFound(c, apperrors.ErrUserNotFound.Error())
		return
	}

	var req models.SetBlockedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.users.SetBlocked(c.Request.Context(), id, *req.IsBlocked); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Message(c, "user updated")
}

// AdminDeleteUser godoc
// @Summary      Delete a user
// @Description  Remove a user along with their recipes, notifications and sessions
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) AdminDeleteUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.NotFound(c, apperrors.ErrUserNotFound.Error())
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Message(c, "user deleted")
}
