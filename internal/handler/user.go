package handler

import (
	"net/http"

	"github.com/Amank-07/FitTracker/internal/middleware"
	model "github.com/Amank-07/FitTracker/internal/models"
	"github.com/Amank-07/FitTracker/internal/services"
	"github.com/Amank-07/FitTracker/internal/stats"
	"github.com/Amank-07/FitTracker/internal/store"
	"github.com/Amank-07/FitTracker/internal/utils"
)

// GetProfile retourne le profil de l'utilisateur connecté avec son IMC
func GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	payload := map[string]interface{}{
		"user": user,
	}
	if bmi, ok := stats.BMI(user.Weight, user.Height); ok {
		payload["bmi"] = bmi
	}

	utils.Success(w, payload)
}

// UpdateProfile met à jour les champs modifiables du profil
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	var payload model.UserProfile
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if payload.Name == "" {
		utils.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	if err := store.UpdateUserProfile(r.Context(), user.ID, &payload); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update profile: "+err.Error())
		return
	}

	updated, err := store.GetUserByID(r.Context(), user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not reload profile: "+err.Error())
		return
	}

	utils.Success(w, updated)
}

// UploadAvatar envoie l'image sur Cloudinary et sauvegarde l'URL
func UploadAvatar(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	if Cloudinary == nil {
		utils.Error(w, http.StatusServiceUnavailable, "avatar upload is not configured")
		return
	}

	// Limite à 5 MB
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		utils.Error(w, http.StatusBadRequest, "could not parse form: "+err.Error())
		return
	}

	file, _, err := r.FormFile("avatar")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "avatar file is required")
		return
	}
	defer file.Close()

	url, err := Cloudinary.UploadAvatar(r.Context(), file, user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not upload avatar: "+err.Error())
		return
	}

	if err := store.UpdateUserAvatar(r.Context(), user.ID, url); err != nil {
		// pas d'URL en base: on retire l'image uploadée pour ne pas laisser
		// d'orphelin chez Cloudinary
		if delErr := Cloudinary.DeleteImage(r.Context(), services.AvatarPublicID(user.ID)); delErr != nil {
			utils.LogError("could not remove orphaned avatar: %v", delErr)
		}
		utils.Error(w, http.StatusInternalServerError, "could not save avatar: "+err.Error())
		return
	}

	utils.Success(w, map[string]string{"avatar": url})
}

// GetProfileStats compteurs affichés sur la page profil
func GetProfileStats(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	logs, err := store.ListWorkoutLogs(r.Context(), user.ID, 0)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load workout logs: "+err.Error())
		return
	}

	weights, err := store.ListWeightLogs(r.Context(), user.ID, 0)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load weight logs: "+err.Error())
		return
	}

	payload := map[string]interface{}{
		"totalWorkouts": len(logs),
		"totalCalories": stats.TotalCaloriesBurned(logs),
		"weightEntries": len(weights),
		"currentStreak": stats.Streak(stats.CompletionTimes(logs)),
		"memberSince":   user.JoinDate,
	}
	if bmi, ok := stats.BMI(user.Weight, user.Height); ok {
		payload["bmi"] = bmi
	}

	utils.Success(w, payload)
}
