// Package stats calcule les agrégats d'affichage à partir de listes déjà
// chargées en mémoire. Toutes les fonctions sont pures: aucune entrée n'est
// modifiée, et une liste vide produit toujours un agrégat zéro, jamais une
// erreur.
package stats

import (
	"sort"
	"time"

	model "github.com/Amank-07/FitTracker/internal/models"
)

// NutritionTotals agrégat journalier des macros
type NutritionTotals struct {
	Calories  float64 `json:"totalCalories"`
	Protein   float64 `json:"totalProtein"`
	Carbs     float64 `json:"totalCarbs"`
	Fat       float64 `json:"totalFat"`
	MealCount int     `json:"mealCount"`
}

// DailyNutrition additionne les totaux dénormalisés des repas
func DailyNutrition(meals []model.Meal) NutritionTotals {
	totals := NutritionTotals{MealCount: len(meals)}
	for _, m := range meals {
		totals.Calories += m.TotalCalories
		totals.Protein += m.TotalProtein
		totals.Carbs += m.TotalCarbs
		totals.Fat += m.TotalFat
	}
	return totals
}

// Streak compte les jours calendaires consécutifs en remontant depuis la
// complétion la plus récente. Les entrées d'un même jour comptent pour un
// seul jour; un trou de plus d'un jour arrête le comptage.
func Streak(completions []time.Time) int {
	if len(completions) == 0 {
		return 0
	}

	days := make([]time.Time, len(completions))
	for i, c := range completions {
		days[i] = midnight(c)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 1
	for i := 0; i < len(days)-1; i++ {
		gap := int(days[i].Sub(days[i+1]).Hours() / 24)
		switch gap {
		case 0:
			// même jour, ne compte pas deux fois
			continue
		case 1:
			streak++
		default:
			return streak
		}
	}

	return streak
}

// WeeklyProgressCount compte les entrées datées d'il y a 7 jours ou moins,
// borne incluse. La comparaison se fait sur les clés YYYY-MM-DD, qui
// s'ordonnent lexicographiquement: le fuseau du serveur n'entre pas en jeu.
func WeeklyProgressCount(entries []model.ProgressEntry, now time.Time) int {
	cutoff := now.AddDate(0, 0, -7).Format("2006-01-02")

	count := 0
	for _, e := range entries {
		if _, err := time.Parse("2006-01-02", e.Date); err != nil {
			continue
		}
		if e.Date >= cutoff {
			count++
		}
	}

	return count
}

// GoalProgress pourcentage d'avancement vers un objectif, borné à [0,100].
// Fonctionne dans les deux sens (objectif croissant ou décroissant).
// target == start signifie que l'objectif est déjà atteint: 100.
func GoalProgress(start, current, target float64) float64 {
	if target == start {
		return 100
	}

	var pct float64
	if target > start {
		pct = (current - start) / (target - start) * 100
	} else {
		pct = (start - current) / (start - target) * 100
	}

	return clamp(pct, 0, 100)
}

// BMI indice de masse corporelle. ok vaut false si le poids ou la taille
// manque: la valeur ne doit alors pas être affichée.
func BMI(weightKg, heightCm float64) (float64, bool) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, false
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM), true
}

// TotalCaloriesBurned somme des calories des logs de workout
func TotalCaloriesBurned(logs []model.WorkoutLog) float64 {
	total := 0.0
	for _, l := range logs {
		total += l.CaloriesBurned
	}
	return total
}

// CompletionTimes extrait les timestamps de complétion d'une liste de logs
func CompletionTimes(logs []model.WorkoutLog) []time.Time {
	times := make([]time.Time, len(logs))
	for i, l := range logs {
		times[i] = l.CompletedAt
	}
	return times
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
