//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"cookbook/internal/authz"
	"cookbook/internal/cache"
	"cookbook/internal/handler"
	"cookbook/internal/queue"
	"cookbook/internal/repository"
	"cookbook/internal/router"
	"cookbook/internal/service"
	"cookbook/internal/storage"
	"cookbook/pkg/auth"
	"cookbook/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestAccessTokenSecret is the JWT secret used in tests.
	TestAccessTokenSecret = "test-secret-key-for-api-tests"
	// TestAccessTokenExpiry is the access token expiry time used in tests.
	TestAccessTokenExpiry = 15 * time.Minute
	// TestRefreshTokenExpiry is the refresh token expiry time used in tests.
	TestRefreshTokenExpiry = 7 * 24 * time.Hour
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
	// TestBroadcastWorkers is the broadcast worker count used in tests.
	TestBroadcastWorkers = 2
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	RecipeRepo       repository.RecipeRepository
	NotificationRepo repository.NotificationRepository

	// Services (for direct service access in tests)
	AuthService         service.AuthServicer
	UserService         service.UserServicer
	RecipeService       service.RecipeServicer
	ModerationService   service.ModerationServicer
	NotificationService service.NotificationServicer

	// Auth
	JWTManager *auth.JWTManager

	// Queue
	BroadcastQueue     *queue.MemoryQueue
	BroadcastProcessor *queue.Processor
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	// Cache (uses real Redis)
	redisCache := cache.NewRedis(redisContainer.URI)

	// Storage (uses real MinIO)
	s3Client := storage.NewS3Client(
		minioContainer.Endpoint,
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		false, // useSSL
	)

	// JWT Manager
	jwtManager := auth.NewJWTManager(TestAccessTokenSecret, TestAccessTokenExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	refreshTokenRepo := repository.NewRefreshTokenRepository(mongoDB.Database)
	recipeRepo := repository.NewRecipeRepository(mongoDB.Database)
	notificationRepo := repository.NewNotificationRepository(mongoDB.Database)

	// Authorization
	authorizer := authz.NewLocalAuthorizer()

	// Admin broadcast queue and processor
	broadcastQueue := queue.NewMemoryQueue(100)
	broadcastProcessor := queue.NewProcessor(broadcastQueue, userRepo, notificationRepo, TestBroadcastWorkers)

	// Service layer
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Cache:            redisCache,
		JWTManager:       jwtManager,
		AccessTokenTTL:   TestAccessTokenExpiry,
		RefreshTokenTTL:  TestRefreshTokenExpiry,
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

	return &TestServer{
		Router:              r,
		MongoDB:             mongoDB,
		Redis:               redisContainer,
		MinIO:               minioContainer,
		UserRepo:            userRepo,
		RefreshTokenRepo:    refreshTokenRepo,
		RecipeRepo:          recipeRepo,
		NotificationRepo:    notificationRepo,
		AuthService:         authService,
		UserService:         userService,
		RecipeService:       recipeService,
		ModerationService:   moderationService,
		NotificationService: notificationService,
		JWTManager:          jwtManager,
		BroadcastQueue:      broadcastQueue,
		BroadcastProcessor:  broadcastProcessor,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}

// StartBroadcastProcessor starts the admin broadcast processor.
func (ts *TestServer) StartBroadcastProcessor(ctx context.Context) {
	ts.BroadcastProcessor.Start(ctx)
}

// StopBroadcastProcessor stops the broadcast processor and resets the queue so
// subsequent tests can use it again.
func (ts *TestServer) StopBroadcastProcessor() {
	ts.BroadcastProcessor.Stop()
	ts.BroadcastQueue.Reset()
	ts.BroadcastProcessor = queue.NewProcessor(ts.BroadcastQueue, ts.UserRepo, ts.NotificationRepo, TestBroadcastWorkers)
}
