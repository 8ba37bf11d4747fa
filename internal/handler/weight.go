package handler

import (
	"net/http"
	"strconv"

	"github.com/Amank-07/FitTracker/internal/middleware"
	model "github.com/Amank-07/FitTracker/internal/models"
	"github.com/Amank-07/FitTracker/internal/stats"
	"github.com/Amank-07/FitTracker/internal/store"
	"github.com/Amank-07/FitTracker/internal/utils"
	"github.com/gorilla/mux"
)

// LogWeight enregistre une pesée
func LogWeight(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	var wl model.WeightLog
	if err := utils.DecodeJSON(r, &wl); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if wl.Weight <= 0 {
		utils.Error(w, http.StatusBadRequest, "weight must be positive")
		return
	}
	if wl.Date == "" {
		wl.Date = utils.TodayDate()
	}

	id, err := store.CreateWeightLog(r.Context(), user.ID, &wl)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not log weight: "+err.Error())
		return
	}

	wl.ID = id
	wl.UserID = user.ID
	utils.Success(w, wl)
}

// GetWeightHistory pesées du plus récent au plus ancien, 30 par défaut
func GetWeightHistory(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	limit := 30
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			utils.Error(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
	}

	logs, err := store.ListWeightLogs(r.Context(), user.ID, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load weight logs: "+err.Error())
		return
	}

	utils.Success(w, logs)
}

func DeleteWeightLog(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	logID := mux.Vars(r)["id"]
	if err := store.DeleteWeightLog(r.Context(), user.ID, logID); err != nil {
		utils.Error(w, http.StatusNotFound, "could not delete weight log: "+err.Error())
		return
	}

	utils.Success(w, map[string]bool{"success": true})
}

// LogMeasurements enregistre des mensurations (tous les champs optionnels,
// au moins un requis)
func LogMeasurements(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	var m model.Measurement
	if err := utils.DecodeJSON(r, &m); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if m.Chest == nil && m.Waist == nil && m.Hips == nil && m.Biceps == nil &&
		m.Thighs == nil && m.Calves == nil && m.Neck == nil && m.Shoulders == nil {
		utils.Error(w, http.StatusBadRequest, "at least one measurement is required")
		return
	}
	if m.Date == "" {
		m.Date = utils.TodayDate()
	}

	id, err := store.CreateMeasurement(r.Context(), user.ID, &m)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not log measurements: "+err.Error())
		return
	}

	m.ID = id
	m.UserID = user.ID
	utils.Success(w, m)
}

func GetMeasurementHistory(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	limit := 30
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			utils.Error(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
	}

	measurements, err := store.ListMeasurements(r.Context(), user.ID, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load measurements: "+err.Error())
		return
	}

	utils.Success(w, measurements)
}

// GetProgressSummary évolution du poids et des mensurations sur ?days=
// (30 par défaut)
func GetProgressSummary(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days <= 0 {
			utils.Error(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}
	}

	// days sert aussi de limite d'historique: le bilan porte sur les N
	// dernières entrées de chaque série, pas sur tout l'historique
	weights, err := store.ListWeightLogs(r.Context(), user.ID, days)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load weight logs: "+err.Error())
		return
	}

	measurements, err := store.ListMeasurements(r.Context(), user.ID, days)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load measurements: "+err.Error())
		return
	}

	utils.Success(w, stats.Summarize(weights, measurements, days))
}

// SetFitnessGoals objectifs corporels (poids cible, masse grasse cible...)
func SetFitnessGoals(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	var goals model.FitnessGoals
	if err := utils.DecodeJSON(r, &goals); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := store.SetFitnessGoals(r.Context(), user.ID, &goals); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save fitness goals: "+err.Error())
		return
	}

	utils.Success(w, goals)
}
