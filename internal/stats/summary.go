package stats

import (
	"errors"
	"math"
	"sort"

	mstats "github.com/montanaflynn/stats"

	"github.com/croplens/fieldsim-backend-go/internal/models"
)

// ErrEmptySeries signals that a series has no points to summarize. Callers
// render it as a "no data" condition, never as a fault.
var ErrEmptySeries = errors.New("series contains no data points")

const (
	// trendMinPoints is the minimum series length for a trend verdict.
	trendMinPoints = 5
	// trendThreshold is the half-mean difference beyond which the series
	// counts as moving. The boundary itself is Stable.
	trendThreshold = 0.05
)

// Histogram bucket edges on the NDVI value, highest class first.
var healthBuckets = []struct {
	label string
	low   float64 // inclusive; -inf for the bottom bucket
}{
	{"very_high", 0.7},
	{"high", 0.5},
	{"medium", 0.3},
	{"low", 0.1},
	{"very_low", math.Inf(-1)},
}

// Summarize computes descriptive statistics, the vegetation-health histogram
// and a trend verdict over a generated series.
func Summarize(series []models.SeriesPoint) (*models.FieldStatistics, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}

	values := make([]float64, len(series))
	clouds := make([]float64, len(series))
	for i, p := range series {
		values[i] = p.IndexValue
		clouds[i] = p.CloudPct
	}

	// montanaflynn errors only on empty input, which is excluded above.
	mean, _ := mstats.Mean(values)
	minVal, _ := mstats.Min(values)
	maxVal, _ := mstats.Max(values)
	std, _ := mstats.StandardDeviationPopulation(values)
	cloudMean, _ := mstats.Mean(clouds)

	return &models.FieldStatistics{
		MeanNDVI:     roundTo(mean, 3),
		MinNDVI:      roundTo(minVal, 3),
		MaxNDVI:      roundTo(maxVal, 3),
		StdNDVI:      roundTo(std, 3),
		MedianNDVI:   roundTo(median(values), 3),
		MeanCloudPct: roundTo(cloudMean, 1),
		DataPoints:   len(series),
		Histogram:    histogram(values),
		Trend:        trend(values),
	}, nil
}

// median returns the element at index N/2 of the sorted values. For even N
// this is the upper-middle element, not an average of the middle pair; the
// asymmetry is kept on purpose because consumers pin expected outputs to it.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted[len(sorted)/2]
}

// histogram classifies each value into one of five vigor buckets and reports
// per-bucket counts with percentages rounded to one decimal.
func histogram(values []float64) []models.HealthBucket {
	counts := make([]int, len(healthBuckets))
	for _, v := range values {
		for i, b := range healthBuckets {
			if v >= b.low {
				counts[i]++
				break
			}
		}
	}

	out := make([]models.HealthBucket, len(healthBuckets))
	for i, b := range healthBuckets {
		out[i] = models.HealthBucket{
			Label:   b.label,
			Count:   counts[i],
			Percent: roundTo(float64(counts[i])/float64(len(values))*100, 1),
		}
	}
	return out
}

// trend compares the mean of the first half against the second half, split at
// index N/2. A difference above +0.05 reads as Improving, below -0.05 as
// Declining; shorter series than trendMinPoints give no verdict.
func trend(values []float64) string {
	if len(values) < trendMinPoints {
		return models.TrendInsufficient
	}

	mid := len(values) / 2
	firstMean, _ := mstats.Mean(values[:mid])
	secondMean, _ := mstats.Mean(values[mid:])

	switch diff := secondMean - firstMean; {
	case diff > trendThreshold:
		return models.TrendImproving
	case diff < -trendThreshold:
		return models.TrendDeclining
	default:
		return models.TrendStable
	}
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
