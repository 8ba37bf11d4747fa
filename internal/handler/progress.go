package handler

import (
	"net/http"
	"time"

	"github.com/Amank-07/FitTracker/internal/cache"
	"github.com/Amank-07/FitTracker/internal/middleware"
	model "github.com/Amank-07/FitTracker/internal/models"
	"github.com/Amank-07/FitTracker/internal/stats"
	"github.com/Amank-07/FitTracker/internal/utils"
	"github.com/gorilla/mux"
)

// Les entrées de progression et les objectifs chiffrés vivent uniquement
// dans le cache local, jamais dans le store distant.

// AddProgressEntry ajoute une mesure ponctuelle d'une métrique
func AddProgressEntry(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	var entry model.ProgressEntry
	if err := utils.DecodeJSON(r, &entry); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if entry.Metric == "" {
		utils.Error(w, http.StatusBadRequest, "metric is required")
		return
	}
	if entry.Date == "" {
		entry.Date = utils.TodayDate()
	}
	entry.ID = utils.GenerateEntryID()
	entry.Timestamp = time.Now()

	var entries []model.ProgressEntry
	Cache.Load(cache.KindProgress, user.ID, &entries)
	entries = append(entries, entry)

	if err := Cache.Save(cache.KindProgress, user.ID, entries); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save progress: "+err.Error())
		return
	}

	utils.Success(w, entry)
}

// GetProgressEntries toutes les entrées, filtrables par ?metric=
func GetProgressEntries(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	var entries []model.ProgressEntry
	Cache.Load(cache.KindProgress, user.ID, &entries)
	if entries == nil {
		entries = []model.ProgressEntry{}
	}

	if metric := r.URL.Query().Get("metric"); metric != "" {
		filtered := []model.ProgressEntry{}
		for _, e := range entries {
			if e.Metric == metric {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	utils.Success(w, entries)
}

func DeleteProgressEntry(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	entryID := mux.Vars(r)["id"]

	var entries []model.ProgressEntry
	Cache.Load(cache.KindProgress, user.ID, &entries)

	kept := entries[:0]
	found := false
	for _, e := range entries {
		if e.ID == entryID {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		utils.Error(w, http.StatusNotFound, "progress entry not found")
		return
	}

	if err := Cache.Save(cache.KindProgress, user.ID, kept); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save progress: "+err.Error())
		return
	}

	utils.Success(w, map[string]bool{"success": true})
}

// GetProgressChart points triés par date pour la métrique demandée
func GetProgressChart(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	metric := r.URL.Query().Get("metric")
	if metric == "" {
		metric = model.MetricWeight
	}

	var entries []model.ProgressEntry
	Cache.Load(cache.KindProgress, user.ID, &entries)

	utils.Success(w, map[string]interface{}{
		"metric": metric,
		"points": stats.ChartSeries(entries, metric),
	})
}

// AddGoal crée un objectif chiffré. CurrentValue fait office de point de
// départ pour le calcul de progression.
func AddGoal(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	var goal model.Goal
	if err := utils.DecodeJSON(r, &goal); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if goal.Title == "" || goal.Metric == "" {
		utils.Error(w, http.StatusBadRequest, "title and metric are required")
		return
	}
	goal.ID = utils.GenerateEntryID()
	goal.CreatedAt = time.Now()

	var goals []model.Goal
	Cache.Load(cache.KindGoals, user.ID, &goals)
	goals = append(goals, goal)

	if err := Cache.Save(cache.KindGoals, user.ID, goals); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save goals: "+err.Error())
		return
	}

	utils.Success(w, goal)
}

// GetGoals objectifs avec leur pourcentage de progression, calculé depuis
// la dernière entrée de la métrique
func GetGoals(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	var goals []model.Goal
	Cache.Load(cache.KindGoals, user.ID, &goals)

	var entries []model.ProgressEntry
	Cache.Load(cache.KindProgress, user.ID, &entries)

	type goalWithProgress struct {
		model.Goal
		CurrentProgress float64 `json:"currentProgress"`
		LatestValue     float64 `json:"latestValue"`
	}

	result := []goalWithProgress{}
	for _, g := range goals {
		latest := g.CurrentValue
		var latestTS time.Time
		for _, e := range entries {
			if e.Metric == g.Metric && !e.Timestamp.Before(latestTS) {
				latest = e.Value
				latestTS = e.Timestamp
			}
		}
		result = append(result, goalWithProgress{
			Goal:            g,
			CurrentProgress: stats.GoalProgress(g.CurrentValue, latest, g.TargetValue),
			LatestValue:     latest,
		})
	}

	utils.Success(w, result)
}

func DeleteGoal(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	goalID := mux.Vars(r)["id"]

	var goals []model.Goal
	Cache.Load(cache.KindGoals, user.ID, &goals)

	kept := goals[:0]
	found := false
	for _, g := range goals {
		if g.ID == goalID {
			found = true
			continue
		}
		kept = append(kept, g)
	}
	if !found {
		utils.Error(w, http.StatusNotFound, "goal not found")
		return
	}

	if err := Cache.Save(cache.KindGoals, user.ID, kept); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save goals: "+err.Error())
		return
	}

	utils.Success(w, map[string]bool{"success": true})
}
