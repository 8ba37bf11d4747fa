package main

import (
	"context"
	"net/http"
	"os"

	"github.com/Amank-07/FitTracker/internal/api"
	"github.com/Amank-07/FitTracker/internal/assistant"
	"github.com/Amank-07/FitTracker/internal/cache"
	"github.com/Amank-07/FitTracker/internal/config"
	"github.com/Amank-07/FitTracker/internal/database"
	"github.com/Amank-07/FitTracker/internal/handler"
	"github.com/Amank-07/FitTracker/internal/logger"
	model "github.com/Amank-07/FitTracker/internal/models"
	"github.com/Amank-07/FitTracker/internal/services"
	"github.com/Amank-07/FitTracker/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.ApplySchema(context.Background()); err != nil {
		logger.Error("Could not apply schema: %v", err)
		os.Exit(1)
	}

	// Cache local (historique de chat, progression, objectifs)
	store, err := cache.Open(cfg.CachePath)
	if err != nil {
		logger.Error("Could not open local cache: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	// Assistant conversationnel, avec fallback local si non configuré
	bot := assistant.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.ChatEnabled)
	if bot.Enabled() {
		logger.Success("Assistant enabled (model %s)", cfg.OpenAIModel)
	} else {
		logger.Warning("Assistant disabled, keyword fallback only")
	}

	// Cloudinary est optionnel, l'upload d'avatar renvoie 503 sans
	cloudinary, err := services.NewCloudinaryService(cfg)
	if err != nil {
		logger.Warning("Cloudinary not configured: %v", err)
		cloudinary = nil
	}

	sessions := session.NewProvider()
	sessions.Subscribe(func(user *model.UserProfile) {
		if user != nil {
			logger.Info("Session opened for %s", user.Email)
		} else {
			logger.Info("Session closed")
		}
	})

	handler.Setup(store, bot, sessions, cloudinary)

	// Initialize routes (CORS inclus)
	router := api.SetupRouter()

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
