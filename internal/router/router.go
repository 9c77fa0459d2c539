// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "cookbook/swagger" // Import generated swagger docs

	"cookbook/internal/handler"
	"cookbook/internal/middleware"
	"cookbook/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	RecipeHandler       *handler.RecipeHandler
	AdminHandler        *handler.AdminHandler
	NotificationHandler *handler.NotificationHandler
	TokenManager        auth.TokenManager
	UserFinder          middleware.UserFinder
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := middleware.Auth(cfg.TokenManager, cfg.UserFinder)
	authOptional := middleware.OptionalAuth(cfg.TokenManager, cfg.UserFinder)

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", cfg.AuthHandler.Register)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
			authRoutes.POST("/refresh", cfg.AuthHandler.Refresh)
			authRoutes.POST("/logout", cfg.AuthHandler.Logout)
		}

		// Auth routes (protected)
		authProtected := v1.Group("/auth")
		authProtected.Use(authRequired)
		{
			authProtected.POST("/logout-all", cfg.AuthHandler.LogoutAll)
		}

		// Public recipe reads. Authentication is optional so owners and
		// admins can see their non-approved recipes.
		recipesPublic := v1.Group("/recipes")
		recipesPublic.Use(authOptional)
		{
			recipesPublic.GET("", cfg.RecipeHandler.ListRecipes)
			recipesPublic.GET("/:id", cfg.RecipeHandler.GetRecipe)
		}

		// Recipe routes (protected)
		recipes := v1.Group("/recipes")
		recipes.Use(authRequired)
		{
			recipes.POST("", cfg.RecipeHandler.CreateRecipe)
			recipes.GET("/my", cfg.RecipeHandler.ListMyRecipes)
			recipes.GET("/saved", cfg.RecipeHandler.ListSavedRecipes)
			recipes.PUT("/:id", cfg.RecipeHandler.UpdateRecipe)
			recipes.DELETE("/:id", cfg.RecipeHandler.DeleteRecipe)
			recipes.POST("/:id/like", cfg.RecipeHandler.ToggleLike)
			recipes.POST("/:id/save", cfg.RecipeHandler.SaveRecipe)
			recipes.DELETE("/:id/save", cfg.RecipeHandler.UnsaveRecipe)
			recipes.POST("/:id/image", cfg.RecipeHandler.RequestImageUpload)
		}

		// User routes (protected)
		users := v1.Group("/users")
		users.Use(authRequired)
		{
			users.GET("/me", cfg.UserHandler.GetMe)
			users.PUT("/me", cfg.UserHandler.UpdateMe)
			users.POST("/me/avatar", cfg.UserHandler.RequestAvatarUpload)
			users.GET("/:id", cfg.UserHandler.GetUser)
		}

		// Notification routes (protected)
		notifications := v1.Group("/notifications")
		notifications.Use(authRequired)
		{
			notifications.GET("", cfg.NotificationHandler.ListNotifications)
			notifications.GET("/unread-count", cfg.NotificationHandler.UnreadCount)
			notifications.PUT("/read-all", cfg.NotificationHandler.MarkAllRead)
			notifications.PUT("/:id/read", cfg.NotificationHandler.MarkRead)
			notifications.DELETE("/:id", cfg.NotificationHandler.DeleteNotification)
		}

		// Admin routes (protected, admin only)
		admin := v1.Group("/admin")
		admin.Use(authRequired, middleware.RequireAdmin())
		{
			adminRecipes := admin.Group("/recipes")
			{
				adminRecipes.GET("/pending", cfg.AdminHandler.ListPendingRecipes)
				adminRecipes.PUT("/:id/approve", cfg.AdminHandler.ApproveRecipe)
				adminRecipes.PUT("/:id/reject", cfg.AdminHandler.RejectRecipe)
				adminRecipes.PUT("/:id", cfg.AdminHandler.AdminUpdateRecipe)
				adminRecipes.DELETE("/:id", cfg.AdminHandler.AdminDeleteRecipe)
			}

			adminUsers := admin.Group("/users")
			{
				adminUsers.GET("", cfg.AdminHandler.ListUsers)
				adminUsers.PUT("/:id/role", cfg.AdminHandler.SetUserRole)
				adminUsers.PUT("/:id/block", cfg.AdminHandler.SetUserBlocked)
				adminUsers.DELETE("/:id", cfg.AdminHandler.AdminDeleteUser)
			}
		}
	}

	return r
}
