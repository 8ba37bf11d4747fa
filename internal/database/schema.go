package database

import (
	"context"
	"fmt"

	model "github.com/Amank-07/FitTracker/internal/models"
)

// schema tables applicatives. Les requêtes de lecture filtrent toujours par
// user_id; seul meals porte un index (user_id, date) pour la recherche par jour.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	avatar        TEXT,
	age           INT,
	weight        DOUBLE PRECISION,
	height        DOUBLE PRECISION,
	fitness_goal  TEXT,
	nutrition_goals JSONB,
	fitness_goals   JSONB,
	join_date     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	created_by    TEXT,
	updated_by    TEXT,
	deleted_at    TIMESTAMPTZ,
	deleted_by    TEXT
);

CREATE TABLE IF NOT EXISTS sessions (
	id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id    UUID NOT NULL REFERENCES users(id),
	token      TEXT NOT NULL UNIQUE,
	ip_address TEXT,
	user_agent TEXT,
	is_active  BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	expires_at TIMESTAMPTZ NOT NULL,
	created_by TEXT,
	deleted_at TIMESTAMPTZ,
	deleted_by TEXT
);

CREATE TABLE IF NOT EXISTS meals (
	id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id        UUID NOT NULL REFERENCES users(id),
	name           TEXT NOT NULL,
	type           TEXT NOT NULL,
	foods          JSONB NOT NULL DEFAULT '[]',
	total_calories DOUBLE PRECISION NOT NULL DEFAULT 0,
	total_protein  DOUBLE PRECISION NOT NULL DEFAULT 0,
	total_carbs    DOUBLE PRECISION NOT NULL DEFAULT 0,
	total_fat      DOUBLE PRECISION NOT NULL DEFAULT 0,
	notes          TEXT,
	logged_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	date           TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_meals_user_date ON meals(user_id, date);

CREATE TABLE IF NOT EXISTS workout_logs (
	id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id         UUID NOT NULL REFERENCES users(id),
	workout_id      TEXT NOT NULL,
	workout_name    TEXT NOT NULL,
	exercises       TEXT[] NOT NULL DEFAULT '{}',
	duration        INT NOT NULL DEFAULT 0,
	calories_burned DOUBLE PRECISION NOT NULL DEFAULT 0,
	notes           TEXT,
	completed_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_workout_logs_user ON workout_logs(user_id);

CREATE TABLE IF NOT EXISTS weight_logs (
	id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id     UUID NOT NULL REFERENCES users(id),
	weight      DOUBLE PRECISION NOT NULL,
	body_fat    DOUBLE PRECISION,
	muscle_mass DOUBLE PRECISION,
	notes       TEXT,
	logged_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	date        TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_weight_logs_user ON weight_logs(user_id);

CREATE TABLE IF NOT EXISTS measurements (
	id        UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id   UUID NOT NULL REFERENCES users(id),
	chest     DOUBLE PRECISION,
	waist     DOUBLE PRECISION,
	hips      DOUBLE PRECISION,
	biceps    DOUBLE PRECISION,
	thighs    DOUBLE PRECISION,
	calves    DOUBLE PRECISION,
	neck      DOUBLE PRECISION,
	shoulders DOUBLE PRECISION,
	notes     TEXT,
	logged_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	date      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS foods (
	id       UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name     TEXT NOT NULL,
	calories DOUBLE PRECISION NOT NULL DEFAULT 0,
	protein  DOUBLE PRECISION NOT NULL DEFAULT 0,
	carbs    DOUBLE PRECISION NOT NULL DEFAULT 0,
	fat      DOUBLE PRECISION NOT NULL DEFAULT 0,
	serving  TEXT
);
`

// ApplySchema crée les tables manquantes au démarrage et sème le catalogue
// d'aliments si la table est vide
func ApplySchema(ctx context.Context) error {
	if _, err := DB.Exec(ctx, schema); err != nil {
		return fmt.Errorf("unable to apply schema: %w", err)
	}
	if err := seedFoods(ctx); err != nil {
		return fmt.Errorf("unable to seed foods: %w", err)
	}
	return nil
}

// seedFoods insère le catalogue prédéfini, uniquement si la table est vide:
// rejouer le démarrage ne duplique rien
func seedFoods(ctx context.Context) error {
	var count int
	if err := DB.QueryRow(ctx, `SELECT COUNT(*) FROM foods`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, f := range model.FoodSeed {
		_, err := DB.Exec(ctx,
			`INSERT INTO foods(name, calories, protein, carbs, fat, serving)
			 VALUES($1, $2, $3, $4, $5, $6)`,
			f.Name, f.Calories, f.Protein, f.Carbs, f.Fat, f.Serving,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
