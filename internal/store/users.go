package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Amank-07/FitTracker/internal/database"
	model "github.com/Amank-07/FitTracker/internal/models"
	"github.com/Amank-07/FitTracker/internal/scanner"
)

const userColumns = `id, name, email, avatar, age, weight, height, fitness_goal,
	nutrition_goals, fitness_goals, join_date, created_at, updated_at`

// GetUserByID retourne le profil d'un utilisateur actif
func GetUserByID(ctx context.Context, userID string) (*model.UserProfile, error) {
	row := database.DB.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=$1 AND deleted_at IS NULL`,
		userID,
	)

	user, err := scanner.ScanUserProfile(row)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	return user, nil
}

// UpdateUserProfile met à jour les champs éditables du profil
func UpdateUserProfile(ctx context.Context, userID string, u *model.UserProfile) error {
	res, err := database.DB.Exec(ctx, `
		UPDATE users
		SET name=$2, email=$3, age=$4, weight=$5, height=$6, fitness_goal=$7,
		    updated_at=NOW(), updated_by=$1
		WHERE id=$1 AND deleted_at IS NULL`,
		userID, u.Name, u.Email, u.Age, u.Weight, u.Height, u.FitnessGoal,
	)
	if err != nil {
		return fmt.Errorf("could not update user: %w", err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}

// UpdateUserAvatar enregistre l'URL du nouvel avatar
func UpdateUserAvatar(ctx context.Context, userID, avatarURL string) error {
	_, err := database.DB.Exec(ctx,
		`UPDATE users SET avatar=$2, updated_at=NOW(), updated_by=$1 WHERE id=$1 AND deleted_at IS NULL`,
		userID, avatarURL,
	)
	if err != nil {
		return fmt.Errorf("could not update avatar: %w", err)
	}
	return nil
}

// SetNutritionGoals remplace les objectifs nutritionnels (JSONB sur users)
func SetNutritionGoals(ctx context.Context, userID string, goals *model.NutritionGoals) error {
	payload, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("could not encode nutrition goals: %w", err)
	}

	res, err := database.DB.Exec(ctx,
		`UPDATE users SET nutrition_goals=$2, updated_at=NOW(), updated_by=$1 WHERE id=$1 AND deleted_at IS NULL`,
		userID, payload,
	)
	if err != nil {
		return fmt.Errorf("could not set nutrition goals: %w", err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}

// GetNutritionGoals retourne les objectifs nutritionnels, ou les valeurs par
// défaut si l'utilisateur n'a rien configuré
func GetNutritionGoals(ctx context.Context, userID string) (*model.NutritionGoals, error) {
	user, err := GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Nutrition == nil {
		defaults := model.DefaultNutritionGoals()
		return &defaults, nil
	}

	return user.Nutrition, nil
}

// SetFitnessGoals remplace les objectifs corporels (JSONB sur users)
func SetFitnessGoals(ctx context.Context, userID string, goals *model.FitnessGoals) error {
	payload, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("could not encode fitness goals: %w", err)
	}

	res, err := database.DB.Exec(ctx,
		`UPDATE users SET fitness_goals=$2, updated_at=NOW(), updated_by=$1 WHERE id=$1 AND deleted_at IS NULL`,
		userID, payload,
	)
	if err != nil {
		return fmt.Errorf("could not set fitness goals: %w", err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}
