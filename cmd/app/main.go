package main

import (
	"github.com/AndreiVed/Social-Media-API/internal/app"
	"github.com/AndreiVed/Social-Media-API/pkg/config"

	_ "github.com/AndreiVed/Social-Media-API/docs" // Swagger docs
)

// @title           Social Media API
// @version         1.0
// @description     Social media backend with profiles, posts, hashtags, comments, follows and reactions.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
