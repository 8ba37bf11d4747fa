package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoodSeed_NotEmptyAndWellFormed(t *testing.T) {
	assert.NotEmpty(t, FoodSeed)

	seen := map[string]bool{}
	for _, f := range FoodSeed {
		assert.NotEmpty(t, f.Name)
		assert.False(t, seen[f.Name], "duplicate food %q in seed", f.Name)
		seen[f.Name] = true

		assert.Positive(t, f.Calories, "food %q", f.Name)
		assert.NotEmpty(t, f.Serving, "food %q", f.Name)
		assert.GreaterOrEqual(t, f.Protein, 0.0)
		assert.GreaterOrEqual(t, f.Carbs, 0.0)
		assert.GreaterOrEqual(t, f.Fat, 0.0)
	}
}
