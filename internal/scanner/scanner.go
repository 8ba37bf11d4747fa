package scanner

import (
	"database/sql"
	"encoding/json"
	"fmt"

	model "github.com/Amank-07/FitTracker/internal/models"
	"github.com/Amank-07/FitTracker/internal/utils"
	"github.com/lib/pq"
)

// RowScanner interface minimale commune à pgx.Row et pgx.Rows
type RowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanUserProfile scanne une ligne SQL vers un UserProfile
// Utilise les types sql.Null* et les convertit automatiquement
func ScanUserProfile(row RowScanner) (*model.UserProfile, error) {
	var user model.UserProfile
	var avatar, fitnessGoal sql.NullString
	var age sql.NullInt64
	var weight, height sql.NullFloat64
	var nutritionJSON, goalsJSON []byte

	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &avatar,
		&age, &weight, &height, &fitnessGoal,
		&nutritionJSON, &goalsJSON,
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Conversions
	user.Avatar = utils.NullStringToString(avatar)
	user.FitnessGoal = utils.NullStringToString(fitnessGoal)
	user.Age = utils.NullInt64ToInt(age)
	user.Weight = utils.NullFloat64ToFloat64(weight)
	user.Height = utils.NullFloat64ToFloat64(height)

	if len(nutritionJSON) > 0 {
		var ng model.NutritionGoals
		if err := json.Unmarshal(nutritionJSON, &ng); err == nil {
			user.Nutrition = &ng
		}
	}
	if len(goalsJSON) > 0 {
		var fg model.FitnessGoals
		if err := json.Unmarshal(goalsJSON, &fg); err == nil {
			user.Goals = &fg
		}
	}

	return &user, nil
}

// ScanMeal scanne une ligne SQL vers un Meal, foods est du JSONB
func ScanMeal(row RowScanner) (*model.Meal, error) {
	var m model.Meal
	var notes sql.NullString
	var foodsJSON []byte

	err := row.Scan(
		&m.ID, &m.UserID, &m.Name, &m.Type, &foodsJSON,
		&m.TotalCalories, &m.TotalProtein, &m.TotalCarbs, &m.TotalFat,
		&notes, &m.LoggedAt, &m.Date,
	)
	if err != nil {
		return nil, err
	}

	m.Notes = utils.NullStringToString(notes)
	m.Foods = []model.FoodItem{}
	if len(foodsJSON) > 0 {
		if err := json.Unmarshal(foodsJSON, &m.Foods); err != nil {
			return nil, fmt.Errorf("could not decode meal foods: %w", err)
		}
	}

	return &m, nil
}

// ScanWorkoutLog scanne une ligne SQL vers un WorkoutLog avec pq.Array pour exercises
func ScanWorkoutLog(row RowScanner) (*model.WorkoutLog, error) {
	var l model.WorkoutLog
	var notes sql.NullString

	err := row.Scan(
		&l.ID, &l.UserID, &l.WorkoutID, &l.WorkoutName,
		pq.Array(&l.Exercises), &l.Duration, &l.CaloriesBurned,
		&notes, &l.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	l.Notes = utils.NullStringToString(notes)
	if l.Exercises == nil {
		l.Exercises = []string{}
	}

	return &l, nil
}

// ScanWeightLog scanne une ligne SQL vers un WeightLog
func ScanWeightLog(row RowScanner) (*model.WeightLog, error) {
	var wl model.WeightLog
	var bodyFat, muscleMass sql.NullFloat64
	var notes sql.NullString

	err := row.Scan(
		&wl.ID, &wl.UserID, &wl.Weight, &bodyFat, &muscleMass,
		&notes, &wl.LoggedAt, &wl.Date,
	)
	if err != nil {
		return nil, err
	}

	wl.BodyFat = utils.NullFloat64ToPointer(bodyFat)
	wl.MuscleMass = utils.NullFloat64ToPointer(muscleMass)
	wl.Notes = utils.NullStringToString(notes)

	return &wl, nil
}

// ScanMeasurement scanne une ligne SQL vers un Measurement
func ScanMeasurement(row RowScanner) (*model.Measurement, error) {
	var m model.Measurement
	var chest, waist, hips, biceps, thighs, calves, neck, shoulders sql.NullFloat64
	var notes sql.NullString

	err := row.Scan(
		&m.ID, &m.UserID, &chest, &waist, &hips, &biceps,
		&thighs, &calves, &neck, &shoulders,
		&notes, &m.LoggedAt, &m.Date,
	)
	if err != nil {
		return nil, err
	}

	m.Chest = utils.NullFloat64ToPointer(chest)
	m.Waist = utils.NullFloat64ToPointer(waist)
	m.Hips = utils.NullFloat64ToPointer(hips)
	m.Biceps = utils.NullFloat64ToPointer(biceps)
	m.Thighs = utils.NullFloat64ToPointer(thighs)
	m.Calves = utils.NullFloat64ToPointer(calves)
	m.Neck = utils.NullFloat64ToPointer(neck)
	m.Shoulders = utils.NullFloat64ToPointer(shoulders)
	m.Notes = utils.NullStringToString(notes)

	return &m, nil
}
