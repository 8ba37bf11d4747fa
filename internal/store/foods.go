package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/Amank-07/FitTracker/internal/database"
	model "github.com/Amank-07/FitTracker/internal/models"
)

// ListFoods retourne le catalogue d'aliments prédéfinis
func ListFoods(ctx context.Context) ([]model.Food, error) {
	rows, err := database.DB.Query(ctx,
		`SELECT id, name, calories, protein, carbs, fat, COALESCE(serving,'') FROM foods`,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query foods: %w", err)
	}
	defer rows.Close()

	foods := []model.Food{}
	for rows.Next() {
		var f model.Food
		if err := rows.Scan(&f.ID, &f.Name, &f.Calories, &f.Protein, &f.Carbs, &f.Fat, &f.Serving); err != nil {
			return nil, fmt.Errorf("could not scan food row: %w", err)
		}
		foods = append(foods, f)
	}

	return foods, rows.Err()
}

// SearchFoods filtre le catalogue par nom, insensible à la casse.
// Le filtrage se fait côté application sur la liste complète, le catalogue
// reste petit.
func SearchFoods(ctx context.Context, term string) ([]model.Food, error) {
	foods, err := ListFoods(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(term)
	matches := []model.Food{}
	for _, f := range foods {
		if strings.Contains(strings.ToLower(f.Name), term) {
			matches = append(matches, f)
		}
	}

	return matches, nil
}
