package stats

import (
	"testing"

	model "github.com/Amank-07/FitTracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }

func TestSummarize_WeightChange(t *testing.T) {
	// historique du plus récent au plus ancien
	weights := []model.WeightLog{
		{Weight: 78},
		{Weight: 79.5},
		{Weight: 80},
	}

	summary := Summarize(weights, nil, 30)
	assert.Equal(t, -2.0, summary.WeightChange)
	assert.Equal(t, -2.5, summary.WeightChangePercent)
	assert.Equal(t, 3, summary.TotalEntries)
	assert.Equal(t, "30 days", summary.Period)
}

func TestSummarize_WindowSelectsEntries(t *testing.T) {
	// le bilan porte sur les entrées fournies: tronquer l'historique aux N
	// plus récentes change la variation, c'est à l'appelant de passer la
	// bonne fenêtre (le handler transmet days comme limite de liste)
	full := []model.WeightLog{
		{Weight: 78},
		{Weight: 79},
		{Weight: 82},
	}

	assert.Equal(t, -4.0, Summarize(full, nil, 30).WeightChange)
	assert.Equal(t, -1.0, Summarize(full[:2], nil, 7).WeightChange)
}

func TestSummarize_SingleEntryNoChange(t *testing.T) {
	summary := Summarize([]model.WeightLog{{Weight: 80}}, nil, 7)
	assert.Zero(t, summary.WeightChange)
	assert.Equal(t, 1, summary.TotalEntries)
}

func TestSummarize_MeasurementDeltas(t *testing.T) {
	measurements := []model.Measurement{
		{Chest: fptr(101), Waist: fptr(84)},
		{Chest: fptr(100), Waist: fptr(86), Hips: fptr(95)},
	}

	summary := Summarize(nil, measurements, 30)
	assert.Equal(t, 1.0, summary.MeasurementChanges["chest"])
	assert.Equal(t, -2.0, summary.MeasurementChanges["waist"])
	// hips absent de l'entrée récente, pas de delta
	assert.NotContains(t, summary.MeasurementChanges, "hips")
}

func TestChartSeries_FiltersAndSorts(t *testing.T) {
	entries := []model.ProgressEntry{
		{Metric: model.MetricWeight, Date: "2025-06-03", Value: 79},
		{Metric: model.MetricSteps, Date: "2025-06-01", Value: 9000},
		{Metric: model.MetricWeight, Date: "2025-06-01", Value: 80},
	}

	points := ChartSeries(entries, model.MetricWeight)
	assert.Len(t, points, 2)
	assert.Equal(t, "2025-06-01", points[0].Date)
	assert.Equal(t, 80.0, points[0].Value)
	assert.Equal(t, "2025-06-03", points[1].Date)
}

func TestChartSeries_NoMatchIsEmptyNotNil(t *testing.T) {
	points := ChartSeries(nil, model.MetricWeight)
	assert.NotNil(t, points)
	assert.Empty(t, points)
}
