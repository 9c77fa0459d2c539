package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cookbook/internal/authz"
	"cookbook/internal/cache"
	"cookbook/internal/config"
	"cookbook/internal/database"
	"cookbook/internal/handler"
	"cookbook/internal/queue"
	"cookbook/internal/repository"
	"cookbook/internal/router"
	"cookbook/internal/service"
	"cookbook/internal/storage"
	"cookbook/internal/validator"
	"cookbook/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           CookBook API
// @version         1.0
// @description     A recipe sharing REST API with admin moderation, built with Gin, MongoDB, and Redis.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.AccessTokenSecret, cfg.AccessTokenExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	refreshTokenRepo := repository.NewRefreshTokenRepository(mongoDB.Database)
	recipeRepo := repository.NewRecipeRepository(mongoDB.Database)
	notificationRepo := repository.NewNotificationRepository(mongoDB.Database)

	// Authorization
	authorizer := authz.NewLocalAuthorizer()

	// Admin broadcast queue and processor
	broadcastQueue := queue.NewMemoryQueue(cfg.BroadcastQueueSize)
	broadcastProcessor := queue.NewProcessor(broadcastQueue, userRepo, notificationRepo, cfg.BroadcastWorkers)

	// Service layer
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Cache:            redisCache,
		JWTManager:       jwtManager,
		AccessTokenTTL:   cfg.AccessTokenExpiry,
		RefreshTokenTTL:  cfg.RefreshTokenExpiry,
	})
	userService := service.NewUserService(service.UserServiceConfig{
		UserRepo:         userRepo,
		RecipeRepo:       recipeRepo,
		NotificationRepo: notificationRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Cache:            redisCache,
		Storage:          s3Client,
	})
	recipeService := service.NewRecipeService(service.RecipeServiceConfig{
		RecipeRepo:       recipeRepo,
		UserRepo:         userRepo,
		NotificationRepo: notificationRepo,
		Cache:            redisCache,
		Storage:          s3Client,
		Queue:            broadcastQueue,
		Authorizer:       authorizer,
	})
	moderationService := service.NewModerationService(service.ModerationServiceConfig{
		RecipeRepo:       recipeRepo,
		NotificationRepo: notificationRepo,
		Cache:            redisCache,
		Storage:          s3Client,
	})
	notificationService := service.NewNotificationService(notificationRepo)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	adminHandler := handler.NewAdminHandler(moderationService, userService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:         authHandler,
		UserHandler:         userHandler,
		RecipeHandler:       recipeHandler,
		AdminHandler:        adminHandler,
		NotificationHandler: notificationHandler,
		TokenManager:        jwtManager,
		UserFinder:          userRepo,
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start broadcast processor
	broadcastProcessor.Start(ctx)

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Cancel context to signal processor shutdown
	cancel()

	// Stop broadcast processor (waits for workers)
	log.Println("Stopping broadcast processor...")
	broadcastProcessor.Stop()

	log.Println("Server shutdown complete")
}
