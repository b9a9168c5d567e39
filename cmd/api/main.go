package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eyewear-catalog/internal/auth"
	"eyewear-catalog/internal/config"
	"eyewear-catalog/internal/database"
	"eyewear-catalog/internal/routes"
	"eyewear-catalog/internal/upload"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		logger.Fatal("failed to connect to mongo", zap.Error(err))
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.MongoDB)

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	uploads, err := upload.NewService(cfg.UploadDir)
	if err != nil {
		logger.Fatal("failed to prepare upload directory", zap.Error(err))
	}

	router := gin.Default()
	routes.RegisterRoutes(router, db, tokens, uploads, logger)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
