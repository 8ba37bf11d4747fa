package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/Amank-07/FitTracker/internal/database"
	model "github.com/Amank-07/FitTracker/internal/models"
	"github.com/Amank-07/FitTracker/internal/scanner"
	"github.com/lib/pq"
	"golang.org/x/sync/errgroup"
)

const workoutLogColumns = `id, user_id, workout_id, workout_name, exercises,
	duration, calories_burned, notes, completed_at`

// CreateWorkoutLog insère un log de complétion et retourne son id
func CreateWorkoutLog(ctx context.Context, ownerID string, l *model.WorkoutLog) (string, error) {
	var id string
	err := database.DB.QueryRow(ctx, `
		INSERT INTO workout_logs(user_id, workout_id, workout_name, exercises, duration, calories_burned, notes, completed_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id`,
		ownerID, l.WorkoutID, l.WorkoutName, pq.Array(l.Exercises),
		l.Duration, l.CaloriesBurned, l.Notes,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("could not create workout log: %w", err)
	}

	return id, nil
}

// ListWorkoutLogs retourne les logs du propriétaire, les plus récents en
// premier. Le tri se fait côté application: la requête ne porte qu'un filtre
// d'égalité sur user_id, aucun index composite n'est requis.
func ListWorkoutLogs(ctx context.Context, ownerID string, limit int) ([]model.WorkoutLog, error) {
	rows, err := database.DB.Query(ctx,
		`SELECT `+workoutLogColumns+` FROM workout_logs WHERE user_id=$1`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query workout logs: %w", err)
	}
	defer rows.Close()

	logs := []model.WorkoutLog{}
	for rows.Next() {
		l, err := scanner.ScanWorkoutLog(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan workout log row: %w", err)
		}
		logs = append(logs, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].CompletedAt.After(logs[j].CompletedAt)
	})

	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}

	return logs, nil
}

// DeleteWorkoutLog supprime un log ("décocher" un workout)
func DeleteWorkoutLog(ctx context.Context, ownerID, logID string) error {
	res, err := database.DB.Exec(ctx,
		`DELETE FROM workout_logs WHERE id=$1 AND user_id=$2`,
		logID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("could not delete workout log: %w", err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("workout log not found")
	}

	return nil
}

// DeleteAllWorkoutLogs supprime tous les logs du propriétaire. Les
// suppressions partent en parallèle sans ordre garanti; un échec partiel
// laisse les logs restants en place, il n'y a pas de rollback.
func DeleteAllWorkoutLogs(ctx context.Context, ownerID string) error {
	logs, err := ListWorkoutLogs(ctx, ownerID, 0)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, l := range logs {
		logID := l.ID
		g.Go(func() error {
			return DeleteWorkoutLog(ctx, ownerID, logID)
		})
	}

	return g.Wait()
}
