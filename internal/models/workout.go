package model

import "time"

// Workout entrée du catalogue statique (non persisté, non possédé)
type Workout struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"` // Cardio, Strength, Flexibility, Yoga
	Duration    int    `json:"duration"` // minutes
	Intensity   string `json:"intensity"`
	Calories    int    `json:"calories"`
	Description string `json:"description"`
}

// WorkoutLog trace de complétion d'un workout du catalogue.
// Un workout est "complété" ssi un log avec le même workoutId existe pour
// l'utilisateur; décocher supprime le log, il n'y a pas de flag.
type WorkoutLog struct {
	ID             string    `json:"id,omitempty"`
	UserID         string    `json:"userId"`
	WorkoutID      string    `json:"workoutId"`
	WorkoutName    string    `json:"workoutName"`
	Exercises      []string  `json:"exercises"`
	Duration       int       `json:"duration"` // minutes
	CaloriesBurned float64   `json:"caloriesBurned"`
	Notes          string    `json:"notes,omitempty"`
	CompletedAt    time.Time `json:"completedAt"`
}

// WorkoutCatalog données de référence, en lecture seule
var WorkoutCatalog = []Workout{
	{ID: 1, Name: "Running", Category: "Cardio", Duration: 30, Intensity: "High", Calories: 300, Description: "Outdoor or treadmill running for cardiovascular fitness"},
	{ID: 2, Name: "Cycling", Category: "Cardio", Duration: 45, Intensity: "Medium", Calories: 250, Description: "Stationary bike or outdoor cycling"},
	{ID: 3, Name: "Jump Rope", Category: "Cardio", Duration: 20, Intensity: "High", Calories: 200, Description: "High-intensity cardio with jump rope"},
	{ID: 4, Name: "Swimming", Category: "Cardio", Duration: 40, Intensity: "Medium", Calories: 350, Description: "Full-body cardio workout in the pool"},
	{ID: 5, Name: "Push-ups", Category: "Strength", Duration: 15, Intensity: "Medium", Calories: 100, Description: "Bodyweight exercise for chest, shoulders, and triceps"},
	{ID: 6, Name: "Squats", Category: "Strength", Duration: 20, Intensity: "Medium", Calories: 120, Description: "Lower body strength exercise"},
	{ID: 7, Name: "Deadlifts", Category: "Strength", Duration: 25, Intensity: "High", Calories: 180, Description: "Compound exercise for back and legs"},
	{ID: 8, Name: "Bench Press", Category: "Strength", Duration: 30, Intensity: "High", Calories: 150, Description: "Upper body strength training"},
	{ID: 9, Name: "Stretching", Category: "Flexibility", Duration: 15, Intensity: "Low", Calories: 50, Description: "Basic stretching routine for flexibility"},
	{ID: 10, Name: "Mobility Work", Category: "Flexibility", Duration: 20, Intensity: "Low", Calories: 60, Description: "Joint mobility and flexibility exercises"},
	{ID: 11, Name: "Vinyasa Flow", Category: "Yoga", Duration: 45, Intensity: "Medium", Calories: 200, Description: "Dynamic yoga sequence with flowing movements"},
	{ID: 12, Name: "Hatha Yoga", Category: "Yoga", Duration: 60, Intensity: "Low", Calories: 150, Description: "Gentle yoga focusing on breathing and poses"},
	{ID: 13, Name: "Power Yoga", Category: "Yoga", Duration: 50, Intensity: "High", Calories: 250, Description: "Intense yoga workout for strength and flexibility"},
}

// WorkoutCategories pour le filtre par catégorie
var WorkoutCategories = []string{"All", "Cardio", "Strength", "Flexibility", "Yoga"}

// FindWorkout retourne l'entrée du catalogue correspondant à l'id
func FindWorkout(id int) (Workout, bool) {
	for _, w := range WorkoutCatalog {
		if w.ID == id {
			return w, true
		}
	}
	return Workout{}, false
}
