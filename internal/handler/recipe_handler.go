package handler

import (
	"errors"
	"strconv"

	apperrors "cookbook/internal/errors"
	"cookbook/internal/middleware"
	"cookbook/internal/models"
	"cookbook/internal/service"
	"cookbook/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecipeHandler handles HTTP requests for recipe operations.
type RecipeHandler struct {
	service service.RecipeServicer
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(service service.RecipeServicer) *RecipeHandler {
	return &RecipeHandler{service: service}
}

// pageParams parses pagination query parameters.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}

// ListRecipes godoc
// @Summary      List approved recipes
// @Description  Retrieve paginated publicly visible recipes
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Items per page (max 10)"
// @Success      200    {object}  response.Response{data=models.RecipeListResponse}
// @Failure      500    {object}  response.Response
// @Router       /recipes [get]
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	page, limit := pageParams(c)

	result, err := h.service.ListApproved(c.Request.Context(), page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// GetRecipe godoc
// @Summary      Get recipe by ID
// @Description  Retrieve a single recipe. Pending and rejected recipes are visible only to their owner and admins.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Recipe ID"
// @Success      200  {object}  response.Response{data=models.Recipe}
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /recipes/{id} [get]
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.NotFound(c, apperrors.ErrRecipeNotFound.Error())
		return
	}

	viewerID := middleware.GetUserObjectID(c)
	viewerRole := middleware.GetUserRole(c)

	recipe, err := h.service.GetRecipe(c.Request.Context(), viewerID, viewerRole, id)
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

// CreateRecipe godoc
// @Summary      Submit a recipe
// @Description  Create a new recipe for admin review
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateRecipeRequest  true  "Recipe data"
// @Success      201      {object}  response.Response{data=models.Recipe}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /recipes [post]
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req models.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID := middleware.GetUserObjectID(c)
	userName := middleware.GetUserName(c)

	recipe, err := h.service.SubmitRecipe(c.Request.Context(), userID, userName, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, recipe)
}

// UpdateRecipe godoc
// @Summary      Edit own recipe
// @Description  Update a pending recipe's content. Approved and rejected recipes cannot be edited.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Recipe ID"
// @Param        request  body      models.UpdateRecipeRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Recipe}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /recipes/{id} [put]
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.NotFound(c, apperrors.ErrRecipeNotFound.Error())
		return
	}

	var req models.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	recipe, err := h.service.UpdateRecipe(c.Request.Context(), middleware.GetUserObjectID(c), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrRecipeNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrNotRecipeOwner), errors.Is(err, apperrors.ErrRecipeNotEditable):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, recipe)
}

// DeleteRecipe godoc
// @Summary      Delete own recipe
// @Description  Delete a pending or rejected recipe. Approved recipes cannot be deleted by their owner.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Recipe ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /recipes/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.NotFound(c, apperrors.ErrRecipeNotFound.Error())
		return
	}

	err = h.service.DeleteRecipe(c.Request.Context(), middleware.GetUserObjectID(c), id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrRecipeNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrNotRecipeOwner), errors.Is(err, apperrors.ErrRecipeNotDeletable):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Message(c, "recipe deleted")
}

// ListMyRecipes godoc
// @Summary      List own recipes
// @Description  Retrieve paginated recipes submitted by the current user, in any status
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Items per page (max 10)"
// @Success      200    {object}  response.Response{data=models.RecipeListResponse}
// @Failure      401    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /recipes/my [get]
func (h *RecipeHandler) ListMyRecipes(c *gin.Context) {
	page, limit := pageParams(c)

	result, err := h.service.ListMine(c.Request.Context(), middleware.GetUserObjectID(c), page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// ListSavedRecipes godoc
// @Summary      List saved recipes
// @Description  Retrieve paginated recipes the current user has saved
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Items per page (max 10)"
// @Success      200    {object}  response.Response{data=models.RecipeListResponse}
// @Failure      401    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /recipes/saved [get]
func (h *RecipeHandler) ListSavedRecipes(c *gin.Context) {
	page, limit := pageParams(c)

	result, err := h.service.ListSaved(c.Request.Context(), middleware.GetUserObjectID(c), page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// ToggleLike godoc
// @Summary      Like or unlike a recipe
// @Description  Toggle the current user's like on a recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Recipe ID"
// @Success      200  {object}  response.Response{data=models.LikeResponse}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /recipes/{id}/like [post]
func (h *RecipeHandler) ToggleLike(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.NotFound(c, apperrors.ErrRecipeNotFound.Error())
		return
	}

	result, err := h.service.ToggleLike(c.Request.Context(), middleware.GetUserObjectID(c), middleware.GetUserRole(c), middleware.GetUserName(c), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrRecipeNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// SaveRecipe godoc
// @Summary      Save a recipe
// @Description  Add a recipe to the current user's saved list
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Recipe ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /recipes/{id}/save [post]
func (h *RecipeHandler) SaveRecipe(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.NotFound(c, apperrors.ErrRecipeNotFound.Error())
		return
	}

	err = h.service.SaveRecipe(c.Request.Context(), middleware.GetUserObjectID(c), middleware.GetUserRole(c), middleware.GetUserName(c), id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrRecipeNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrRecipeAlreadySaved):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Message(c, "recipe saved")
}

// UnsaveRecipe godoc
// @Summary      Unsave a recipe
// @Description  Remove a recipe from the current user's saved list. Idempotent.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Recipe ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /recipes/{id}/save [delete]
func (h *RecipeHandler) UnsaveRecipe(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.NotFound(c, apperrors.ErrRecipeNotFound.Error())
		return
	}

	if err := h.service.UnsaveRecipe(c.Request.Context(), middleware.GetUserObjectID(c), id); err != nil {
		response.InternalError(c)
		return
	}

	response.Message(c, "recipe unsaved")
}

// RequestImageUpload godoc
// @Summary      Request recipe image upload URL
// @Description  Generate a pre-signed URL for uploading a recipe image
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Recipe ID"
// @Param        request  body      models.ImageUploadRequest  true  "Image format"
// @Success      200      {object}  response.Response{data=models.ImageUploadResponse}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /recipes/{id}/image [post]
func (h *RecipeHandler) RequestImageUpload(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.NotFound(c, apperrors.ErrRecipeNotFound.Error())
		return
	}

	var req models.ImageUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.RequestImageUpload(c.Request.Context(), middleware.GetUserObjectID(c), middleware.GetUserRole(c), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrRecipeNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrNotRecipeOwner):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, result)
}
