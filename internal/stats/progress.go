package stats

import (
	"fmt"
	"math"
	"sort"

	model "github.com/Amank-07/FitTracker/internal/models"
)

// ProgressSummary bilan sur la période: variation de poids et deltas de
// mensurations entre l'entrée la plus ancienne et la plus récente
type ProgressSummary struct {
	WeightChange        float64            `json:"weightChange"`
	WeightChangePercent float64            `json:"weightChangePercent"`
	MeasurementChanges  map[string]float64 `json:"measurementChanges"`
	TotalEntries        int                `json:"totalEntries"`
	Period              string             `json:"period"`
}

// Summarize calcule le bilan à partir d'historiques triés du plus récent au
// plus ancien. Moins de deux entrées d'une série laisse sa variation à zéro.
func Summarize(weightLogs []model.WeightLog, measurements []model.Measurement, days int) ProgressSummary {
	summary := ProgressSummary{
		MeasurementChanges: map[string]float64{},
		TotalEntries:       len(weightLogs) + len(measurements),
		Period:             fmt.Sprintf("%d days", days),
	}

	if len(weightLogs) >= 2 {
		latest := weightLogs[0].Weight
		oldest := weightLogs[len(weightLogs)-1].Weight
		summary.WeightChange = latest - oldest
		if oldest != 0 {
			summary.WeightChangePercent = round1(summary.WeightChange / oldest * 100)
		}
	}

	if len(measurements) >= 2 {
		latest := measurements[0]
		oldest := measurements[len(measurements)-1]
		for name, pair := range map[string][2]*float64{
			"chest":     {latest.Chest, oldest.Chest},
			"waist":     {latest.Waist, oldest.Waist},
			"hips":      {latest.Hips, oldest.Hips},
			"biceps":    {latest.Biceps, oldest.Biceps},
			"thighs":    {latest.Thighs, oldest.Thighs},
			"calves":    {latest.Calves, oldest.Calves},
			"neck":      {latest.Neck, oldest.Neck},
			"shoulders": {latest.Shoulders, oldest.Shoulders},
		} {
			if pair[0] != nil && pair[1] != nil {
				summary.MeasurementChanges[name] = *pair[0] - *pair[1]
			}
		}
	}

	return summary
}

// ChartPoint point de série temporelle pour une métrique
type ChartPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ChartSeries série triée par date croissante pour la métrique demandée
func ChartSeries(entries []model.ProgressEntry, metric string) []ChartPoint {
	points := []ChartPoint{}
	for _, e := range entries {
		if e.Metric == metric {
			points = append(points, ChartPoint{Date: e.Date, Value: e.Value})
		}
	}

	// le format YYYY-MM-DD s'ordonne lexicographiquement
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })

	return points
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
