package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/Amank-07/FitTracker/internal/database"
	model "github.com/Amank-07/FitTracker/internal/models"
	"github.com/Amank-07/FitTracker/internal/scanner"
)

const measurementColumns = `id, user_id, chest, waist, hips, biceps,
	thighs, calves, neck, shoulders, notes, logged_at, date`

// CreateMeasurement insère des mensurations et retourne leur id
func CreateMeasurement(ctx context.Context, ownerID string, m *model.Measurement) (string, error) {
	var id string
	err := database.DB.QueryRow(ctx, `
		INSERT INTO measurements(user_id, chest, waist, hips, biceps, thighs, calves, neck, shoulders, notes, logged_at, date)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), $11)
		RETURNING id`,
		ownerID, m.Chest, m.Waist, m.Hips, m.Biceps,
		m.Thighs, m.Calves, m.Neck, m.Shoulders, m.Notes, m.Date,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("could not create measurement: %w", err)
	}

	return id, nil
}

// ListMeasurements retourne l'historique de mensurations, le plus récent en premier
func ListMeasurements(ctx context.Context, ownerID string, limit int) ([]model.Measurement, error) {
	rows, err := database.DB.Query(ctx,
		`SELECT `+measurementColumns+` FROM measurements WHERE user_id=$1`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query measurements: %w", err)
	}
	defer rows.Close()

	items := []model.Measurement{}
	for rows.Next() {
		m, err := scanner.ScanMeasurement(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan measurement row: %w", err)
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].LoggedAt.After(items[j].LoggedAt)
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}
