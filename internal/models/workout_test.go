package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkoutCatalog_CategoriesAreKnown(t *testing.T) {
	known := map[string]bool{}
	for _, c := range WorkoutCategories {
		known[c] = true
	}

	for _, w := range WorkoutCatalog {
		assert.True(t, known[w.Category], "workout %q has unknown category %q", w.Name, w.Category)
		assert.NotEmpty(t, w.Name)
		assert.Positive(t, w.Duration)
		assert.Positive(t, w.Calories)
	}
}

func TestFindWorkout(t *testing.T) {
	w, ok := FindWorkout(1)
	assert.True(t, ok)
	assert.Equal(t, 1, w.ID)

	_, ok = FindWorkout(999)
	assert.False(t, ok)
}

func TestValidMealType(t *testing.T) {
	for _, valid := range []string{MealBreakfast, MealLunch, MealDinner, MealSnack} {
		assert.True(t, ValidMealType(valid))
	}
	assert.False(t, ValidMealType("brunch"))
	assert.False(t, ValidMealType(""))
}
