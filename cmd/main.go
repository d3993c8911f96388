package main

import (
	"context"
	"log"

	"github.com/andersevenrud/userbase/config"
	"github.com/andersevenrud/userbase/db"
	"github.com/andersevenrud/userbase/internal/storage"
	"github.com/andersevenrud/userbase/internal/user/handler"
	repo "github.com/andersevenrud/userbase/internal/user/repository/postgres"
	"github.com/andersevenrud/userbase/internal/user/service"
	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.Load()

	pool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	files, err := storage.New(cfg.StorageRoot, cfg.StorageMaxBytes)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	userRepo := repo.NewUserRepository(pool)
	tokenRepo := repo.NewRefreshTokenRepository(pool)
	metadataRepo := repo.NewMetadataRepository(pool)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.AccessExpiryMin)
	authService := service.NewAuthService(userRepo, tokenRepo, tokenService)
	userService := service.NewUserService(userRepo, files)
	metadataService := service.NewMetadataService(metadataRepo)

	app := fiber.New(fiber.Config{BodyLimit: cfg.StorageMaxBytes})

	handler.RegisterRoutes(app, handler.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Profile:  handler.NewProfileHandler(userService),
		Metadata: handler.NewMetadataHandler(metadataService),
		Avatar:   handler.NewAvatarHandler(userService, cfg.StorageMaxBytes),
	}, handler.RequireAuth(tokenService, userRepo))

	log.Fatal(app.Listen(":" + cfg.Port))
}
