package api

import (
	"net/http"

	"github.com/Amank-07/FitTracker/internal/handler"
	"github.com/Amank-07/FitTracker/internal/middleware"
	"github.com/Amank-07/FitTracker/internal/utils"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)
	authenticatedRoutes.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/signup", handler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/reset-password", handler.ResetPassword).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)

	// Profile
	authenticatedRoutes.HandleFunc("/profile", handler.GetProfile).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/profile", handler.UpdateProfile).Methods(http.MethodPut, http.MethodPatch)
	authenticatedRoutes.HandleFunc("/profile/avatar", handler.UploadAvatar).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/profile/stats", handler.GetProfileStats).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/profile/goals", handler.SetFitnessGoals).Methods(http.MethodPut)

	// Workouts (catalogue + logs)
	r.HandleFunc("/workouts", handler.GetWorkouts).Methods(http.MethodGet)
	r.HandleFunc("/workouts/categories", handler.GetWorkoutCategories).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/workouts/logs", handler.LogWorkout).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/workouts/logs", handler.GetWorkoutLogs).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/workouts/logs", handler.ClearWorkoutLogs).Methods(http.MethodDelete)
	authenticatedRoutes.HandleFunc("/workouts/logs/{id}", handler.DeleteWorkoutLog).Methods(http.MethodDelete)
	authenticatedRoutes.HandleFunc("/stats/home", handler.GetHomeStats).Methods(http.MethodGet)

	// Nutrition
	authenticatedRoutes.HandleFunc("/meals", handler.LogMeal).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/meals", handler.GetMeals).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/meals/{id}", handler.UpdateMeal).Methods(http.MethodPut, http.MethodPatch)
	authenticatedRoutes.HandleFunc("/meals/{id}", handler.DeleteMeal).Methods(http.MethodDelete)
	authenticatedRoutes.HandleFunc("/nutrition/summary", handler.GetNutritionSummary).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/nutrition/goals", handler.GetNutritionGoals).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/nutrition/goals", handler.SetNutritionGoals).Methods(http.MethodPut)
	r.HandleFunc("/foods", handler.GetFoods).Methods(http.MethodGet)

	// Poids et mensurations
	authenticatedRoutes.HandleFunc("/weight", handler.LogWeight).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/weight", handler.GetWeightHistory).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/weight/{id}", handler.DeleteWeightLog).Methods(http.MethodDelete)
	authenticatedRoutes.HandleFunc("/measurements", handler.LogMeasurements).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/measurements", handler.GetMeasurementHistory).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/progress/summary", handler.GetProgressSummary).Methods(http.MethodGet)

	// Progression et objectifs (cache local)
	authenticatedRoutes.HandleFunc("/progress", handler.AddProgressEntry).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/progress", handler.GetProgressEntries).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/progress/chart", handler.GetProgressChart).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/progress/{id}", handler.DeleteProgressEntry).Methods(http.MethodDelete)
	authenticatedRoutes.HandleFunc("/goals", handler.AddGoal).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/goals", handler.GetGoals).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/goals/{id}", handler.DeleteGoal).Methods(http.MethodDelete)

	// Assistant conversationnel
	authenticatedRoutes.HandleFunc("/chat", handler.SendChatMessage).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/chat/history", handler.GetChatHistory).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/chat/history", handler.ClearChatHistory).Methods(http.MethodDelete)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		utils.Error(w, http.StatusNotFound, "route not found")
	})

	return middleware.CORSMiddleware(r)
}
