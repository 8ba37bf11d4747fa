package model

import "time"

// WeightLog pesée journalisée
type WeightLog struct {
	ID         string    `json:"id,omitempty"`
	UserID     string    `json:"userId"`
	Weight     float64   `json:"weight"` // kg
	BodyFat    *float64  `json:"bodyFat,omitempty"`
	MuscleMass *float64  `json:"muscleMass,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	LoggedAt   time.Time `json:"loggedAt"`
	Date       string    `json:"date"` // YYYY-MM-DD
}

// Measurement mensurations corporelles (toutes optionnelles)
type Measurement struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"userId"`
	Chest     *float64  `json:"chest,omitempty"`
	Waist     *float64  `json:"waist,omitempty"`
	Hips      *float64  `json:"hips,omitempty"`
	Biceps    *float64  `json:"biceps,omitempty"`
	Thighs    *float64  `json:"thighs,omitempty"`
	Calves    *float64  `json:"calves,omitempty"`
	Neck      *float64  `json:"neck,omitempty"`
	Shoulders *float64  `json:"shoulders,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	LoggedAt  time.Time `json:"loggedAt"`
	Date      string    `json:"date"`
}
