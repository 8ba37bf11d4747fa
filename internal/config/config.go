package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	URL        string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Cloudinary (upload d'avatars), optionnel: l'upload est désactivé sans
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// Assistant conversationnel, optionnel: le fallback local prend le relais
	OpenAIAPIKey string
	OpenAIModel  string
	ChatEnabled  bool

	// Cache local (badger)
	CachePath string
}

// LoadConfig charge la configuration depuis l'environnement (.env si présent)
func LoadConfig() (*Config, error) {
	// .env absent n'est pas une erreur (production)
	_ = godotenv.Load()

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		URL:                 getEnv("APP_URL", "http://localhost:8080"),
		DBHost:              os.Getenv("DB_HOST"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		OpenAIAPIKey:        os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:         getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		ChatEnabled:         os.Getenv("CHAT_ENABLED") == "true",
		CachePath:           getEnv("CACHE_PATH", "data/cache"),
	}

	if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("missing database configuration (DB_HOST, DB_USER, DB_NAME)")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
