package model

import "time"

// Métriques de progression suivies
const (
	MetricWeight     = "weight"
	MetricSteps      = "steps"
	MetricBodyFat    = "bodyFat"
	MetricMuscleMass = "muscleMass"
	MetricCustom     = "custom"
)

// ProgressEntry mesure ponctuelle d'une métrique. Stockée uniquement dans le
// cache local, jamais dans le store distant.
type ProgressEntry struct {
	ID        string    `json:"id"`
	Metric    string    `json:"metric"`
	Value     float64   `json:"value"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Timestamp time.Time `json:"timestamp"`
}

// Goal objectif chiffré sur une métrique. Stocké uniquement dans le cache
// local. CurrentValue sert à la fois de point de départ et de dernière mesure
// (comportement hérité, voir DESIGN.md).
type Goal struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Metric       string    `json:"metric"`
	CurrentValue float64   `json:"currentValue"`
	TargetValue  float64   `json:"targetValue"`
	Deadline     string    `json:"deadline,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
