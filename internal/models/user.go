package model

import (
	"time"
)

// DateFields contient les champs d'audit standard pour toutes les entités
type DateFields struct {
	CreatedBy *string   `json:"createdBy,omitempty"`
	UpdatedBy *string   `json:"updatedBy,omitempty"`
	DeletedAt time.Time `json:"deletedAt,omitempty"`
	DeletedBy *string   `json:"deletedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

type UserProfile struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Avatar      string          `json:"avatar,omitempty"`
	Age         int             `json:"age,omitempty"`
	Weight      float64         `json:"weight,omitempty"` // kg
	Height      float64         `json:"height,omitempty"` // cm
	FitnessGoal string          `json:"fitnessGoal,omitempty"`
	JoinDate    time.Time       `json:"joinDate,omitempty"`
	Nutrition   *NutritionGoals `json:"nutritionGoals,omitempty"`
	Goals       *FitnessGoals   `json:"goals,omitempty"`
	DateFields
}

// NutritionGoals objectifs nutritionnels quotidiens (stockés en JSONB sur users)
type NutritionGoals struct {
	DailyCalories float64 `json:"dailyCalories"`
	DailyProtein  float64 `json:"dailyProtein"`
	DailyCarbs    float64 `json:"dailyCarbs"`
	DailyFat      float64 `json:"dailyFat"`
}

// DefaultNutritionGoals valeurs retournées quand l'utilisateur n'a rien configuré
func DefaultNutritionGoals() NutritionGoals {
	return NutritionGoals{
		DailyCalories: 2000,
		DailyProtein:  150,
		DailyCarbs:    250,
		DailyFat:      65,
	}
}

// FitnessGoals objectifs corporels (stockés en JSONB sur users)
type FitnessGoals struct {
	TargetWeight     *float64   `json:"targetWeight,omitempty"`
	TargetBodyFat    *float64   `json:"targetBodyFat,omitempty"`
	TargetMuscleMass *float64   `json:"targetMuscleMass,omitempty"`
	Deadline         *time.Time `json:"deadline,omitempty"`
}
