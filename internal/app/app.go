package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpController "github.com/AndreiVed/Social-Media-API/internal/controller/http"
	"github.com/AndreiVed/Social-Media-API/internal/repo/persistent"
	"github.com/AndreiVed/Social-Media-API/internal/usecase"
	"github.com/AndreiVed/Social-Media-API/pkg/cache"
	"github.com/AndreiVed/Social-Media-API/pkg/config"
	"github.com/AndreiVed/Social-Media-API/pkg/database"
	"github.com/AndreiVed/Social-Media-API/pkg/jwt"
	"github.com/AndreiVed/Social-Media-API/pkg/logger"
	"github.com/AndreiVed/Social-Media-API/pkg/middleware"
	"github.com/AndreiVed/Social-Media-API/pkg/queue"
	"github.com/AndreiVed/Social-Media-API/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/AndreiVed/Social-Media-API/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	queueClient *queue.Client
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	// Redis backs the refresh token blacklist, required here
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

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	jwtService := jwt.NewServiceWithTTL(
		cfg.JWTSecret,
		time.Duration(cfg.AccessTTLHours)*time.Hour,
		time.Duration(cfg.RefreshTTLHours)*time.Hour,
	)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwtService,
		queueClient: queueClient,
	}, nil
}

func (a *App) Run() error {
	// Repositories
	userRepo := persistent.NewUserRepository(a.db)
	followRepo := persistent.NewFollowRepository(a.db)
	postRepo := persistent.NewPostRepository(a.db)
	hashtagRepo := persistent.NewHashtagRepository(a.db)
	commentRepo := persistent.NewCommentRepository(a.db)
	reactionRepo := persistent.NewReactionRepository(a.db)

	// Use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, a.redisClient, a.log)
	userUseCase := usecase.NewUserUseCase(userRepo, followRepo, a.s3Client, a.queueClient, a.log)
	postUseCase := usecase.NewPostUseCase(postRepo, a.s3Client, a.log)
	feedUseCase := usecase.NewFeedUseCase(postRepo, followRepo, a.log)
	reactionUseCase := usecase.NewReactionUseCase(reactionRepo, postRepo, a.redisClient, a.queueClient, a.log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, postRepo, a.log)
	hashtagUseCase := usecase.NewHashtagUseCase(hashtagRepo, a.log)

	// HTTP handlers
	authHandler := httpController.NewAuthHandler(authUseCase)
	userHandler := httpController.NewUserHandler(userUseCase, a.log)
	postHandler := httpController.NewPostHandler(postUseCase, feedUseCase, reactionUseCase, a.log)
	commentHandler := httpController.NewCommentHandler(commentUseCase, a.log)
	hashtagHandler := httpController.NewHashtagHandler(hashtagUseCase, a.log)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/token/refresh", authHandler.Refresh)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.jwtService))
		protected.Use(middleware.RateLimitMiddleware(a.redisClient, 100, time.Minute))
		{
			protected.POST("/logout", authHandler.Logout)

			protected.GET("/users", userHandler.ListUsers)
			protected.GET("/users/me", userHandler.Me)
			protected.PUT("/users/me", userHandler.UpdateMe)
			protected.GET("/users/me/profile", userHandler.MyProfile)
			protected.PUT("/users/me/profile", userHandler.UpdateMyProfile)
			protected.POST("/users/me/profile/avatar", userHandler.UploadAvatar)
			protected.GET("/users/:id", userHandler.GetUser)
			protected.POST("/users/:id/follow", userHandler.Follow)
			protected.DELETE("/users/:id/follow", userHandler.Unfollow)
			protected.GET("/users/:id/followers", userHandler.Followers)
			protected.GET("/users/:id/following", userHandler.Following)

			protected.POST("/posts", postHandler.CreatePost)
			protected.GET("/posts", postHandler.Feed)
			protected.GET("/posts/liked-posts", postHandler.LikedPosts)
			protected.GET("/posts/:id", postHandler.GetPost)
			protected.PUT("/posts/:id", postHandler.UpdatePost)
			protected.DELETE("/posts/:id", postHandler.DeletePost)
			protected.POST("/posts/:id/upload-image", postHandler.UploadImage)
			protected.POST("/posts/:id/like", postHandler.Like)
			protected.POST("/posts/:id/dislike", postHandler.Dislike)
			protected.POST("/posts/:id/add-comment", commentHandler.AddComment)
			protected.GET("/posts/:id/comments", commentHandler.PostComments)

			protected.GET("/comments", commentHandler.MyComments)
			protected.GET("/comments/:id", commentHandler.GetComment)
			protected.PUT("/comments/:id", commentHandler.UpdateComment)
			protected.DELETE("/comments/:id", commentHandler.DeleteComment)

			protected.POST("/hashtags", hashtagHandler.CreateHashtag)
			protected.GET("/hashtags", hashtagHandler.ListHashtags)
			protected.GET("/hashtags/:id", hashtagHandler.GetHashtag)
			protected.PUT("/hashtags/:id", hashtagHandler.UpdateHashtag)
		}
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("Social media API starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if err := a.redisClient.Close(); err != nil {
		a.log.Error("Error closing Redis: %v", err)
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Server exited")
	return nil
}
