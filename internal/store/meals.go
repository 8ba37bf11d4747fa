// Package store regroupe les accès au stockage distant. Chaque famille
// d'opérations est scopée par l'identifiant du propriétaire: aucune requête
// ne lit ni n'écrit un enregistrement d'un autre utilisateur.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Amank-07/FitTracker/internal/database"
	model "github.com/Amank-07/FitTracker/internal/models"
	"github.com/Amank-07/FitTracker/internal/scanner"
)

const mealColumns = `id, user_id, name, type, foods,
	total_calories, total_protein, total_carbs, total_fat,
	notes, logged_at, date`

// CreateMeal insère un repas et retourne son id. Les totaux sont stockés
// tels quels, sans re-validation contre la liste foods.
func CreateMeal(ctx context.Context, ownerID string, m *model.Meal) (string, error) {
	foodsJSON, err := json.Marshal(m.Foods)
	if err != nil {
		return "", fmt.Errorf("could not encode foods: %w", err)
	}

	var id string
	err = database.DB.QueryRow(ctx, `
		INSERT INTO meals(user_id, name, type, foods, total_calories, total_protein, total_carbs, total_fat, notes, logged_at, date)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), $10)
		RETURNING id`,
		ownerID, m.Name, m.Type, foodsJSON,
		m.TotalCalories, m.TotalProtein, m.TotalCarbs, m.TotalFat,
		m.Notes, m.Date,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("could not create meal: %w", err)
	}

	return id, nil
}

// ListMealsByDate retourne les repas du propriétaire pour une date donnée
// (égalité stricte sur la clé YYYY-MM-DD)
func ListMealsByDate(ctx context.Context, ownerID, date string) ([]model.Meal, error) {
	rows, err := database.DB.Query(ctx,
		`SELECT `+mealColumns+` FROM meals WHERE user_id=$1 AND date=$2`,
		ownerID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query meals: %w", err)
	}
	defer rows.Close()

	meals := []model.Meal{}
	for rows.Next() {
		m, err := scanner.ScanMeal(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan meal row: %w", err)
		}
		meals = append(meals, *m)
	}

	return meals, rows.Err()
}

// ListMealsByDateRange retourne les repas entre deux dates incluses
func ListMealsByDateRange(ctx context.Context, ownerID, startDate, endDate string) ([]model.Meal, error) {
	rows, err := database.DB.Query(ctx,
		`SELECT `+mealColumns+` FROM meals
		 WHERE user_id=$1 AND date >= $2 AND date <= $3
		 ORDER BY date DESC`,
		ownerID, startDate, endDate,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query meals: %w", err)
	}
	defer rows.Close()

	meals := []model.Meal{}
	for rows.Next() {
		m, err := scanner.ScanMeal(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan meal row: %w", err)
		}
		meals = append(meals, *m)
	}

	return meals, rows.Err()
}

// UpdateMeal remplace les champs modifiables d'un repas
func UpdateMeal(ctx context.Context, ownerID, mealID string, m *model.Meal) error {
	foodsJSON, err := json.Marshal(m.Foods)
	if err != nil {
		return fmt.Errorf("could not encode foods: %w", err)
	}

	res, err := database.DB.Exec(ctx, `
		UPDATE meals
		SET name=$3, type=$4, foods=$5, total_calories=$6, total_protein=$7,
		    total_carbs=$8, total_fat=$9, notes=$10, date=$11
		WHERE id=$1 AND user_id=$2`,
		mealID, ownerID, m.Name, m.Type, foodsJSON,
		m.TotalCalories, m.TotalProtein, m.TotalCarbs, m.TotalFat,
		m.Notes, m.Date,
	)
	if err != nil {
		return fmt.Errorf("could not update meal: %w", err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("meal not found")
	}

	return nil
}

// DeleteMeal supprime un repas du propriétaire
func DeleteMeal(ctx context.Context, ownerID, mealID string) error {
	res, err := database.DB.Exec(ctx,
		`DELETE FROM meals WHERE id=$1 AND user_id=$2`,
		mealID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("could not delete meal: %w", err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("meal not found")
	}

	return nil
}
