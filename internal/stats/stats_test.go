package stats

import (
	"testing"
	"time"

	model "github.com/Amank-07/FitTracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func day(offset int) time.Time {
	base := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func TestDailyNutrition_Empty(t *testing.T) {
	totals := DailyNutrition(nil)
	assert.Zero(t, totals.Calories)
	assert.Zero(t, totals.Protein)
	assert.Zero(t, totals.MealCount)
}

func TestDailyNutrition_SumsDenormalizedTotals(t *testing.T) {
	meals := []model.Meal{
		{TotalCalories: 295, TotalProtein: 20, TotalCarbs: 30, TotalFat: 8},
		{TotalCalories: 185, TotalProtein: 12, TotalCarbs: 15, TotalFat: 6},
	}

	totals := DailyNutrition(meals)
	assert.Equal(t, 480.0, totals.Calories)
	assert.Equal(t, 32.0, totals.Protein)
	assert.Equal(t, 45.0, totals.Carbs)
	assert.Equal(t, 14.0, totals.Fat)
	assert.Equal(t, 2, totals.MealCount)
}

func TestStreak_Empty(t *testing.T) {
	assert.Equal(t, 0, Streak(nil))
}

func TestStreak_SingleDay(t *testing.T) {
	assert.Equal(t, 1, Streak([]time.Time{day(0)}))
}

func TestStreak_ConsecutiveDays(t *testing.T) {
	// trois jours consécutifs, ordre d'entrée quelconque
	completions := []time.Time{day(-1), day(0), day(-2)}
	assert.Equal(t, 3, Streak(completions))
}

func TestStreak_GapBreaks(t *testing.T) {
	// trou d'un jour entre les deux complétions
	completions := []time.Time{day(0), day(-2)}
	assert.Equal(t, 1, Streak(completions))
}

func TestStreak_SameDayDuplicatesCountOnce(t *testing.T) {
	// deux complétions le même jour puis la veille
	completions := []time.Time{day(0), day(0).Add(-2 * time.Hour), day(-1)}
	assert.Equal(t, 2, Streak(completions))
}

func TestStreak_DifferentHoursSameDay(t *testing.T) {
	// la normalisation à minuit ignore l'heure de complétion
	morning := time.Date(2025, 6, 15, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 2, Streak([]time.Time{morning, evening}))
}

func TestWeeklyProgressCount(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	entries := []model.ProgressEntry{
		{Date: "2025-06-15"}, // aujourd'hui
		{Date: "2025-06-08"}, // pile 7 jours, inclus
		{Date: "2025-06-07"}, // 8 jours, exclu
		{Date: "not-a-date"}, // ignoré
	}

	assert.Equal(t, 2, WeeklyProgressCount(entries, now))
}

func TestWeeklyProgressCount_ServerTimezoneDoesNotShiftBound(t *testing.T) {
	// même instant vu d'un serveur à l'ouest d'UTC: la borne des 7 jours
	// reste inclusive, seule la clé calendaire compte
	west := time.FixedZone("UTC-8", -8*3600)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, west)
	entries := []model.ProgressEntry{
		{Date: "2025-06-08"},
	}

	assert.Equal(t, 1, WeeklyProgressCount(entries, now))
}

func TestGoalProgress_Increasing(t *testing.T) {
	assert.Equal(t, 50.0, GoalProgress(0, 50, 100))
	assert.Equal(t, 100.0, GoalProgress(0, 150, 100), "dépassement borné à 100")
	assert.Equal(t, 0.0, GoalProgress(0, -10, 100), "régression bornée à 0")
}

func TestGoalProgress_Decreasing(t *testing.T) {
	// perte de poids: 80 -> 70, mesuré à 75
	assert.Equal(t, 50.0, GoalProgress(80, 75, 70))
	assert.Equal(t, 100.0, GoalProgress(80, 65, 70))
	assert.Equal(t, 0.0, GoalProgress(80, 85, 70))
}

func TestGoalProgress_TargetEqualsStart(t *testing.T) {
	assert.Equal(t, 100.0, GoalProgress(70, 70, 70))
	assert.Equal(t, 100.0, GoalProgress(70, 99, 70))
}

func TestBMI(t *testing.T) {
	bmi, ok := BMI(70, 175)
	assert.True(t, ok)
	assert.InDelta(t, 22.86, bmi, 0.01)

	_, ok = BMI(0, 175)
	assert.False(t, ok)
	_, ok = BMI(70, 0)
	assert.False(t, ok)
}

func TestTotalCaloriesBurned(t *testing.T) {
	logs := []model.WorkoutLog{
		{CaloriesBurned: 300},
		{CaloriesBurned: 150},
	}
	assert.Equal(t, 450.0, TotalCaloriesBurned(logs))
	assert.Equal(t, 0.0, TotalCaloriesBurned(nil))
}
