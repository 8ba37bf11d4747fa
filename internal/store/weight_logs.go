package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/Amank-07/FitTracker/internal/database"
	model "github.com/Amank-07/FitTracker/internal/models"
	"github.com/Amank-07/FitTracker/internal/scanner"
)

const weightLogColumns = `id, user_id, weight, body_fat, muscle_mass, notes, logged_at, date`

// CreateWeightLog insère une pesée et retourne son id
func CreateWeightLog(ctx context.Context, ownerID string, wl *model.WeightLog) (string, error) {
	var id string
	err := database.DB.QueryRow(ctx, `
		INSERT INTO weight_logs(user_id, weight, body_fat, muscle_mass, notes, logged_at, date)
		VALUES($1, $2, $3, $4, $5, NOW(), $6)
		RETURNING id`,
		ownerID, wl.Weight, wl.BodyFat, wl.MuscleMass, wl.Notes, wl.Date,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("could not create weight log: %w", err)
	}

	return id, nil
}

// ListWeightLogs retourne l'historique de poids, le plus récent en premier,
// tronqué à limit. Tri côté application comme pour les workout logs.
func ListWeightLogs(ctx context.Context, ownerID string, limit int) ([]model.WeightLog, error) {
	rows, err := database.DB.Query(ctx,
		`SELECT `+weightLogColumns+` FROM weight_logs WHERE user_id=$1`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query weight logs: %w", err)
	}
	defer rows.Close()

	logs := []model.WeightLog{}
	for rows.Next() {
		wl, err := scanner.ScanWeightLog(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan weight log row: %w", err)
		}
		logs = append(logs, *wl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].LoggedAt.After(logs[j].LoggedAt)
	})

	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}

	return logs, nil
}

// DeleteWeightLog supprime une pesée du propriétaire
func DeleteWeightLog(ctx context.Context, ownerID, logID string) error {
	res, err := database.DB.Exec(ctx,
		`DELETE FROM weight_logs WHERE id=$1 AND user_id=$2`,
		logID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("could not delete weight log: %w", err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("weight log not found")
	}

	return nil
}
