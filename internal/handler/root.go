package handler

import (
	"net/http"

	"github.com/Amank-07/FitTracker/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "FitTracker API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"auth": []map[string]string{
				{"method": "POST", "path": "/auth/login", "description": "Connexion utilisateur"},
				{"method": "POST", "path": "/auth/logout", "description": "Déconnexion utilisateur"},
				{"method": "POST", "path": "/auth/signup", "description": "Inscription utilisateur"},
				{"method": "POST", "path": "/auth/register", "description": "Inscription utilisateur (alias)"},
				{"method": "POST", "path": "/auth/reset-password", "description": "Réinitialiser le mot de passe"},
			},
			"profile": []map[string]string{
				{"method": "GET", "path": "/profile", "description": "Profil de l'utilisateur connecté (avec IMC)"},
				{"method": "PUT", "path": "/profile", "description": "Mettre à jour le profil"},
				{"method": "POST", "path": "/profile/avatar", "description": "Upload avatar"},
				{"method": "GET", "path": "/profile/stats", "description": "Compteurs de la page profil"},
				{"method": "PUT", "path": "/profile/goals", "description": "Objectifs corporels"},
			},
			"workouts": []map[string]string{
				{"method": "GET", "path": "/workouts", "description": "Catalogue des workouts (?category=)"},
				{"method": "GET", "path": "/workouts/categories", "description": "Catégories disponibles"},
				{"method": "POST", "path": "/workouts/logs", "description": "Marquer un workout complété"},
				{"method": "GET", "path": "/workouts/logs", "description": "Historique des complétions (?limit=)"},
				{"method": "DELETE", "path": "/workouts/logs/{id}", "description": "Décocher un workout"},
				{"method": "DELETE", "path": "/workouts/logs", "description": "Vider l'historique"},
				{"method": "GET", "path": "/stats/home", "description": "Stats du tableau de bord (streak, calories...)"},
			},
			"nutrition": []map[string]string{
				{"method": "POST", "path": "/meals", "description": "Enregistrer un repas"},
				{"method": "GET", "path": "/meals", "description": "Repas d'une date (?date= ou ?start=&end=)"},
				{"method": "PUT", "path": "/meals/{id}", "description": "Modifier un repas"},
				{"method": "DELETE", "path": "/meals/{id}", "description": "Supprimer un repas"},
				{"method": "GET", "path": "/nutrition/summary", "description": "Totaux du jour contre les objectifs"},
				{"method": "GET", "path": "/nutrition/goals", "description": "Objectifs nutritionnels"},
				{"method": "PUT", "path": "/nutrition/goals", "description": "Mettre à jour les objectifs nutritionnels"},
				{"method": "GET", "path": "/foods", "description": "Catalogue des aliments (?search=)"},
			},
			"weight": []map[string]string{
				{"method": "POST", "path": "/weight", "description": "Enregistrer une pesée"},
				{"method": "GET", "path": "/weight", "description": "Historique de poids (?limit=)"},
				{"method": "DELETE", "path": "/weight/{id}", "description": "Supprimer une pesée"},
				{"method": "POST", "path": "/measurements", "description": "Enregistrer des mensurations"},
				{"method": "GET", "path": "/measurements", "description": "Historique des mensurations (?limit=)"},
				{"method": "GET", "path": "/progress/summary", "description": "Évolution poids et mensurations (?days=)"},
			},
			"progress": []map[string]string{
				{"method": "POST", "path": "/progress", "description": "Ajouter une entrée de progression"},
				{"method": "GET", "path": "/progress", "description": "Entrées de progression (?metric=)"},
				{"method": "DELETE", "path": "/progress/{id}", "description": "Supprimer une entrée"},
				{"method": "GET", "path": "/progress/chart", "description": "Points de graphique (?metric=)"},
				{"method": "POST", "path": "/goals", "description": "Créer un objectif chiffré"},
				{"method": "GET", "path": "/goals", "description": "Objectifs avec progression"},
				{"method": "DELETE", "path": "/goals/{id}", "description": "Supprimer un objectif"},
			},
			"chat": []map[string]string{
				{"method": "POST", "path": "/chat", "description": "Envoyer un message à l'assistant"},
				{"method": "GET", "path": "/chat/history", "description": "Transcript de la conversation"},
				{"method": "DELETE", "path": "/chat/history", "description": "Purger le transcript"},
			},
			"system": []map[string]string{
				{"method": "GET", "path": "/", "description": "Cette documentation"},
				{"method": "GET", "path": "/health", "description": "Health check"},
			},
		},
		"documentation": map[string]string{
			"authentication": "Toutes les routes sauf /, /health et /auth/* exigent le header Authorization avec le token de session",
			"format":         "Toutes les réponses suivent le format {success, data?, error?}",
		},
	}

	utils.Success(w, routes)
}
