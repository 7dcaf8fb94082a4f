package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	controller "recipebook/internal/controller/http"
	"recipebook/internal/repo/persistent"
	"recipebook/internal/usecase"
	"recipebook/pkg/cache"
	"recipebook/pkg/config"
	"recipebook/pkg/database"
	"recipebook/pkg/jwt"
	"recipebook/pkg/logger"
	"recipebook/pkg/middleware"
	"recipebook/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		return nil, err
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwt.NewService(cfg.JWTSecret),
	}, nil
}

func (a *App) Run() error {
	// Repositories
	userRepo := persistent.NewUserRepository(a.db)
	categoryRepo := persistent.NewCategoryRepository(a.db)
	recipeRepo := persistent.NewRecipeRepository(a.db)
	commentRepo := persistent.NewCommentRepository(a.db)
	socialRepo := persistent.NewSocialRepository(a.db)
	feedRepo := persistent.NewFeedRepository(a.db)

	// Use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, a.log)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo)
	recipeUseCase := usecase.NewRecipeUseCase(recipeRepo, categoryRepo, a.s3Client, a.log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, recipeRepo)
	socialUseCase := usecase.NewSocialUseCase(socialRepo, userRepo, recipeRepo, a.log)
	feedUseCase := usecase.NewFeedUseCase(feedRepo, socialRepo, a.log)

	// HTTP handlers
	authHandler := controller.NewAuthHandler(authUseCase, a.log)
	categoryHandler := controller.NewCategoryHandler(categoryUseCase, a.log)
	recipeHandler := controller.NewRecipeHandler(recipeUseCase, a.log)
	commentHandler := controller.NewCommentHandler(commentUseCase, a.log)
	socialHandler := controller.NewSocialHandler(socialUseCase, a.log)
	feedHandler := controller.NewFeedHandler(feedUseCase, a.log)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	// Optional auth first so public reads can render ownership flags and the
	// rate limiter can key on the user instead of the client IP.
	api.Use(middleware.OptionalAuthMiddleware(a.jwtService))
	api.Use(middleware.RateLimitMiddleware(a.redisClient, 200, time.Minute))

	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/status", authHandler.Status)

		api.GET("/recipes", recipeHandler.ListRecipes)
		api.GET("/recipes/:id", recipeHandler.GetRecipe)
		api.GET("/categories", categoryHandler.ListCategories)
		api.GET("/categories/:id", categoryHandler.GetCategory)
		api.GET("/comments", commentHandler.ListComments)
		api.GET("/comments/:id", commentHandler.GetComment)
		api.GET("/users", authHandler.ListUsers)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(a.jwtService))

	{
		protected.POST("/auth/logout", authHandler.Logout)

		protected.POST("/recipes", recipeHandler.CreateRecipe)
		protected.PUT("/recipes/:id", recipeHandler.UpdateRecipe)
		protected.DELETE("/recipes/:id", recipeHandler.DeleteRecipe)
		protected.POST("/recipes/:id/like", socialHandler.LikeRecipe)

		protected.POST("/comments", commentHandler.CreateComment)
		protected.PUT("/comments/:id", commentHandler.UpdateComment)
		protected.DELETE("/comments/:id", commentHandler.DeleteComment)

		protected.POST("/users/:id/follow", socialHandler.FollowUser)
		protected.GET("/users/:id/is-following", socialHandler.CheckFollowStatus)

		protected.GET("/feed", feedHandler.GetFeed)
	}

	srv := &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("Server starting on port %s", a.cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if sqlDB, err := a.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if err := a.redisClient.Close(); err != nil {
		a.log.Error("Error closing Redis: %v", err)
	}

	if err := srv.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Server exited")
	return nil
}
