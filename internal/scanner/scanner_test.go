package scanner

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow implémente RowScanner avec des valeurs fixes, dans l'ordre des
// colonnes attendu par le scanner testé
type fakeRow struct {
	values []interface{}
}

func (f fakeRow) Scan(dest ...interface{}) error {
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = f.values[i].(string)
		case *[]byte:
			*p = f.values[i].([]byte)
		case *float64:
			*p = f.values[i].(float64)
		case *sql.NullString:
			*p = f.values[i].(sql.NullString)
		case *time.Time:
			*p = f.values[i].(time.Time)
		}
	}
	return nil
}

func mealRow(foodsJSON []byte) fakeRow {
	return fakeRow{values: []interface{}{
		"meal-1", "user-1", "Lunch", "lunch", foodsJSON,
		295.0, 33.7, 28.0, 3.9,
		sql.NullString{String: "note", Valid: true},
		time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		"2025-06-15",
	}}
}

func TestScanMeal_DecodesFoods(t *testing.T) {
	foods := []byte(`[{"name":"Chicken Breast","calories":165,"protein":31,"carbs":0,"fat":3.6}]`)

	m, err := ScanMeal(mealRow(foods))
	require.NoError(t, err)
	require.Len(t, m.Foods, 1)
	assert.Equal(t, "Chicken Breast", m.Foods[0].Name)
	assert.Equal(t, 165.0, m.Foods[0].Calories)
	assert.Equal(t, "note", m.Notes)
}

func TestScanMeal_EmptyFoods(t *testing.T) {
	m, err := ScanMeal(mealRow(nil))
	require.NoError(t, err)
	assert.NotNil(t, m.Foods)
	assert.Empty(t, m.Foods)
}

func TestScanMeal_CorruptFoodsIsAnError(t *testing.T) {
	_, err := ScanMeal(mealRow([]byte("{not json")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not decode meal foods")
}
