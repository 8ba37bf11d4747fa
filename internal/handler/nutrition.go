package handler

import (
	"net/http"

	"github.com/Amank-07/FitTracker/internal/middleware"
	model "github.com/Amank-07/FitTracker/internal/models"
	"github.com/Amank-07/FitTracker/internal/stats"
	"github.com/Amank-07/FitTracker/internal/store"
	"github.com/Amank-07/FitTracker/internal/utils"
	"github.com/gorilla/mux"
)

// LogMeal enregistre un repas. Les totaux sont recalculés depuis les foods
// à l'écriture puis stockés tels quels.
func LogMeal(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	var meal model.Meal
	if err := utils.DecodeJSON(r, &meal); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if meal.Name == "" {
		utils.Error(w, http.StatusBadRequest, "meal name is required")
		return
	}
	if !model.ValidMealType(meal.Type) {
		utils.Error(w, http.StatusBadRequest, "invalid meal type (breakfast, lunch, dinner, snack)")
		return
	}
	if meal.Date == "" {
		meal.Date = utils.TodayDate()
	}

	// Dénormalisation des totaux au moment de l'écriture
	meal.TotalCalories, meal.TotalProtein, meal.TotalCarbs, meal.TotalFat = 0, 0, 0, 0
	for _, f := range meal.Foods {
		meal.TotalCalories += f.Calories
		meal.TotalProtein += f.Protein
		meal.TotalCarbs += f.Carbs
		meal.TotalFat += f.Fat
	}

	id, err := store.CreateMeal(r.Context(), user.ID, &meal)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create meal: "+err.Error())
		return
	}

	meal.ID = id
	meal.UserID = user.ID
	utils.Success(w, meal)
}

// GetMeals liste les repas d'une date (par défaut aujourd'hui)
func GetMeals(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = utils.TodayDate()
	}

	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	var meals []model.Meal
	if start != "" && end != "" {
		meals, err = store.ListMealsByDateRange(r.Context(), user.ID, start, end)
	} else {
		meals, err = store.ListMealsByDate(r.Context(), user.ID, date)
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load meals: "+err.Error())
		return
	}

	utils.Success(w, meals)
}

func UpdateMeal(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	mealID := mux.Vars(r)["id"]

	var meal model.Meal
	if err := utils.DecodeJSON(r, &meal); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if meal.Type != "" && !model.ValidMealType(meal.Type) {
		utils.Error(w, http.StatusBadRequest, "invalid meal type (breakfast, lunch, dinner, snack)")
		return
	}

	meal.TotalCalories, meal.TotalProtein, meal.TotalCarbs, meal.TotalFat = 0, 0, 0, 0
	for _, f := range meal.Foods {
		meal.TotalCalories += f.Calories
		meal.TotalProtein += f.Protein
		meal.TotalCarbs += f.Carbs
		meal.TotalFat += f.Fat
	}

	if err := store.UpdateMeal(r.Context(), user.ID, mealID, &meal); err != nil {
		utils.Error(w, http.StatusNotFound, "could not update meal: "+err.Error())
		return
	}

	meal.ID = mealID
	meal.UserID = user.ID
	utils.Success(w, meal)
}

func DeleteMeal(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	mealID := mux.Vars(r)["id"]
	if err := store.DeleteMeal(r.Context(), user.ID, mealID); err != nil {
		utils.Error(w, http.StatusNotFound, "could not delete meal: "+err.Error())
		return
	}

	utils.Success(w, map[string]bool{"success": true})
}

// GetNutritionSummary totaux du jour contre les objectifs
func GetNutritionSummary(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = utils.TodayDate()
	}

	meals, err := store.ListMealsByDate(r.Context(), user.ID, date)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load meals: "+err.Error())
		return
	}

	goals, err := store.GetNutritionGoals(r.Context(), user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load nutrition goals: "+err.Error())
		return
	}

	totals := stats.DailyNutrition(meals)

	utils.Success(w, map[string]interface{}{
		"date":   date,
		"totals": totals,
		"goals":  goals,
		"remaining": map[string]float64{
			"calories": goals.DailyCalories - totals.Calories,
			"protein":  goals.DailyProtein - totals.Protein,
			"carbs":    goals.DailyCarbs - totals.Carbs,
			"fat":      goals.DailyFat - totals.Fat,
		},
		"mealCount": len(meals),
	})
}

func GetNutritionGoals(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	goals, err := store.GetNutritionGoals(r.Context(), user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load nutrition goals: "+err.Error())
		return
	}

	utils.Success(w, goals)
}

func SetNutritionGoals(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	var goals model.NutritionGoals
	if err := utils.DecodeJSON(r, &goals); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if goals.DailyCalories <= 0 {
		utils.Error(w, http.StatusBadRequest, "dailyCalories must be positive")
		return
	}

	if err := store.SetNutritionGoals(r.Context(), user.ID, &goals); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save nutrition goals: "+err.Error())
		return
	}

	utils.Success(w, goals)
}

// GetFoods catalogue des aliments, filtrable par ?search=
func GetFoods(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("search")

	var foods []model.Food
	var err error
	if term != "" {
		foods, err = store.SearchFoods(r.Context(), term)
	} else {
		foods, err = store.ListFoods(r.Context())
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load foods: "+err.Error())
		return
	}

	utils.Success(w, foods)
}
