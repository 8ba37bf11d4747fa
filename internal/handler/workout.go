package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Amank-07/FitTracker/internal/cache"
	"github.com/Amank-07/FitTracker/internal/middleware"
	model "github.com/Amank-07/FitTracker/internal/models"
	"github.com/Amank-07/FitTracker/internal/stats"
	"github.com/Amank-07/FitTracker/internal/store"
	"github.com/Amank-07/FitTracker/internal/utils"
	"github.com/gorilla/mux"
)

// GetWorkouts catalogue statique, filtrable par ?category=
func GetWorkouts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	if category == "" || category == "All" {
		utils.Success(w, model.WorkoutCatalog)
		return
	}

	filtered := []model.Workout{}
	for _, wk := range model.WorkoutCatalog {
		if wk.Category == category {
			filtered = append(filtered, wk)
		}
	}

	utils.Success(w, filtered)
}

func GetWorkoutCategories(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, model.WorkoutCategories)
}

// LogWorkout marque un workout du catalogue comme complété
func LogWorkout(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	var payload struct {
		WorkoutID int      `json:"workoutId"`
		Exercises []string `json:"exercises"`
		Notes     string   `json:"notes"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	workout, ok := model.FindWorkout(payload.WorkoutID)
	if !ok {
		utils.Error(w, http.StatusNotFound, "workout not found in catalog")
		return
	}

	log := model.WorkoutLog{
		WorkoutID:      strconv.Itoa(workout.ID),
		WorkoutName:    workout.Name,
		Exercises:      payload.Exercises,
		Duration:       workout.Duration,
		CaloriesBurned: float64(workout.Calories),
		Notes:          payload.Notes,
	}

	id, err := store.CreateWorkoutLog(r.Context(), user.ID, &log)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not log workout: "+err.Error())
		return
	}

	log.ID = id
	log.UserID = user.ID
	utils.Success(w, log)
}

// GetWorkoutLogs historique des complétions, le plus récent en premier
func GetWorkoutLogs(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			utils.Error(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
	}

	logs, err := store.ListWorkoutLogs(r.Context(), user.ID, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load workout logs: "+err.Error())
		return
	}

	utils.Success(w, logs)
}

// DeleteWorkoutLog décocher un workout complété
func DeleteWorkoutLog(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	logID := mux.Vars(r)["id"]
	if err := store.DeleteWorkoutLog(r.Context(), user.ID, logID); err != nil {
		utils.Error(w, http.StatusNotFound, "could not delete workout log: "+err.Error())
		return
	}

	utils.Success(w, map[string]bool{"success": true})
}

// ClearWorkoutLogs remet l'historique à zéro
func ClearWorkoutLogs(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	if err := store.DeleteAllWorkoutLogs(r.Context(), user.ID); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not clear workout logs: "+err.Error())
		return
	}

	utils.Success(w, map[string]bool{"success": true})
}

// GetHomeStats statistiques du tableau de bord: total workouts, calories
// brûlées, streak de jours consécutifs et progression hebdomadaire
func GetHomeStats(w http.ResponseWriter, r *http.Request) {
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

	var progress []model.ProgressEntry
	Cache.Load(cache.KindProgress, user.ID, &progress)

	utils.Success(w, map[string]interface{}{
		"totalWorkouts":  len(logs),
		"totalCalories":  stats.TotalCaloriesBurned(logs),
		"currentStreak":  stats.Streak(stats.CompletionTimes(logs)),
		"weeklyProgress": stats.WeeklyProgressCount(progress, time.Now()),
	})
}
