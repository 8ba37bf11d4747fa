package handler

import (
	"github.com/Amank-07/FitTracker/internal/assistant"
	"github.com/Amank-07/FitTracker/internal/cache"
	"github.com/Amank-07/FitTracker/internal/services"
	"github.com/Amank-07/FitTracker/internal/session"
)

// Dépendances partagées par tous les handlers, injectées au démarrage
// (même approche que database.DB pour le pool pgx)
var (
	Cache      *cache.Store
	Assistant  *assistant.Client
	Sessions   *session.Provider
	Cloudinary *services.CloudinaryService
)

// Setup branche les dépendances. À appeler avant d'enregistrer les routes.
func Setup(c *cache.Store, a *assistant.Client, s *session.Provider, cl *services.CloudinaryService) {
	Cache = c
	Assistant = a
	Sessions = s
	Cloudinary = cl
}
