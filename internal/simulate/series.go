package simulate

import (
	"math"
	"time"

	"github.com/croplens/fieldsim-backend-go/internal/models"
	"github.com/croplens/fieldsim-backend-go/internal/spatial"
)

// Tuning constants for the synthetic series. Clamp bounds are deliberate
// constants rather than invariants; variants may tighten or widen them.
const (
	// MaxSeriesPoints bounds a series regardless of date range, the engine's
	// only guard against pathological ranges.
	MaxSeriesPoints = 100

	indexFloor = -0.2
	indexCeil  = 0.9

	cloudFloor = 5.0
	cloudCeil  = 95.0

	noiseStdDev = 0.05
	cloudStdDev = 15.0

	// Revisit gap between consecutive samples, in days.
	minStepDays = 3
	maxStepDays = 7

	tropicalLatLimit  = 23.5
	temperateLatLimit = 40.0
)

// climate holds the per-zone parameters of the seasonal model. Tropics sit
// high and flat with heavy cloud; high latitudes swing wide around a low base.
type climate struct {
	baseIndex float64
	amplitude float64
	cloudMean float64
}

func classifyClimate(lat float64) climate {
	switch abs := math.Abs(lat); {
	case abs < tropicalLatLimit:
		return climate{baseIndex: 0.62, amplitude: 0.18, cloudMean: 35}
	case abs < temperateLatLimit:
		return climate{baseIndex: 0.45, amplitude: 0.30, cloudMean: 22}
	default:
		return climate{baseIndex: 0.30, amplitude: 0.40, cloudMean: 18}
	}
}

// Generate fabricates an NDVI series for a field centered at center, walking
// from start to end in random 3-7 day steps. The stream is seeded from
// tileCode plus the start date, so identical inputs always reproduce the same
// series. An inverted range produces an empty series, which is a valid result.
func Generate(center spatial.Point, start, end time.Time, tileCode string) []models.SeriesPoint {
	zone := classifyClimate(center.Lat)
	southern := center.Lat < 0

	stream := NewStream(tileCode + start.Format(models.DateLayout))

	var series []models.SeriesPoint
	for current := start; !current.After(end) && len(series) < MaxSeriesPoints; {
		doy := current.YearDay()

		phase := 2 * math.Pi * float64(doy) / 365.0
		if southern {
			// Half-cycle shift inverts the seasons.
			phase += math.Pi
		}

		seasonal := zone.amplitude * math.Sin(phase)
		noise := stream.Gaussian(0, noiseStdDev)
		index := clamp(zone.baseIndex+seasonal+noise, indexFloor, indexCeil)

		cloud := clamp(stream.Gaussian(zone.cloudMean, cloudStdDev), cloudFloor, cloudCeil)

		series = append(series, models.SeriesPoint{
			Date:       current.Format(models.DateLayout),
			IndexValue: roundTo(index, 3),
			CloudPct:   roundTo(cloud, 1),
			Season:     seasonLabel(doy, southern),
			DayOfYear:  doy,
		})

		current = current.AddDate(0, 0, stream.Int(minStepDays, maxStepDays))
	}

	return series
}

var seasonNames = [4]string{"Spring", "Summer", "Autumn", "Winter"}

// seasonLabel assigns a season from fixed day-of-year bands. The southern
// hemisphere uses the same bands with labels rotated by two seasons.
func seasonLabel(doy int, southern bool) string {
	var idx int
	switch {
	case doy >= 80 && doy < 172:
		idx = 0
	case doy >= 172 && doy < 266:
		idx = 1
	case doy >= 266 && doy < 355:
		idx = 2
	default:
		idx = 3
	}
	if southern {
		idx = (idx + 2) % 4
	}
	return seasonNames[idx]
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
