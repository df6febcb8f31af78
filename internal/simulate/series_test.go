package simulate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/croplens/fieldsim-backend-go/internal/models"
	"github.com/croplens/fieldsim-backend-go/internal/spatial"
)

func date(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestGenerateIsDeterministic(t *testing.T) {
	center := spatial.Point{Lat: -17.84, Lon: 32.54}

	a := Generate(center, date("2024-01-01"), date("2024-06-30"), "36MZA")
	b := Generate(center, date("2024-01-01"), date("2024-06-30"), "36MZA")

	require.NotEmpty(t, a)
	assert.Equal(t, a, b)
}

func TestGenerateVariesWithSeedInputs(t *testing.T) {
	center := spatial.Point{Lat: -17.84, Lon: 32.54}

	base := Generate(center, date("2024-01-01"), date("2024-06-30"), "36MZA")
	otherTile := Generate(center, date("2024-01-01"), date("2024-06-30"), "15TWG")

	assert.NotEqual(t, base, otherTile)
}

func TestGenerateRangeInvariants(t *testing.T) {
	series := Generate(spatial.Point{Lat: 48.2, Lon: 11.5}, date("2023-01-01"), date("2023-12-31"), "32UNU")
	require.NotEmpty(t, series)

	prev := time.Time{}
	for _, p := range series {
		assert.GreaterOrEqual(t, p.IndexValue, indexFloor)
		assert.LessOrEqual(t, p.IndexValue, indexCeil)
		assert.GreaterOrEqual(t, p.CloudPct, cloudFloor)
		assert.LessOrEqual(t, p.CloudPct, cloudCeil)
		assert.GreaterOrEqual(t, p.DayOfYear, 1)
		assert.LessOrEqual(t, p.DayOfYear, 366)

		d := date(p.Date)
		assert.True(t, d.After(prev), "dates must be strictly increasing")
		prev = d
	}
}

func TestGenerateInvertedRangeIsEmpty(t *testing.T) {
	series := Generate(spatial.Point{Lat: -17.84, Lon: 32.54}, date("2024-03-01"), date("2024-01-01"), "36MZA")
	assert.Empty(t, series)
}

func TestGenerateHonorsPointCap(t *testing.T) {
	series := Generate(spatial.Point{Lat: 42.1, Lon: -93.5}, date("2020-01-01"), date("2023-12-31"), "15TWG")
	assert.Len(t, series, MaxSeriesPoints)
}

func TestGenerateTropicalFieldScenario(t *testing.T) {
	// Zimbabwe field, |lat| 17.84 < 23.5 → tropical parameters.
	start, end := date("2024-01-01"), date("2024-03-01")
	series := Generate(spatial.Point{Lat: -17.84, Lon: 32.54}, start, end, "36MZA")

	require.NotEmpty(t, series)
	assert.LessOrEqual(t, len(series), 50)

	for _, p := range series {
		d := date(p.Date)
		assert.False(t, d.Before(start))
		assert.False(t, d.After(end))
	}
}

func TestClassifyClimate(t *testing.T) {
	tropical := classifyClimate(-17.8)
	assert.Equal(t, 0.62, tropical.baseIndex)
	assert.Equal(t, 0.18, tropical.amplitude)

	temperate := classifyClimate(31.2)
	assert.Equal(t, 0.45, temperate.baseIndex)
	assert.Equal(t, 0.30, temperate.amplitude)

	cool := classifyClimate(52.1)
	assert.Equal(t, 0.30, cool.baseIndex)
	assert.Equal(t, 0.40, cool.amplitude)

	// Zone boundaries belong to the next zone up.
	assert.Equal(t, 0.45, classifyClimate(23.5).baseIndex)
	assert.Equal(t, 0.30, classifyClimate(-40).baseIndex)
}

func TestSeasonLabelBands(t *testing.T) {
	tests := []struct {
		doy      int
		northern string
		southern string
	}{
		{50, "Winter", "Summer"},
		{80, "Spring", "Autumn"},
		{171, "Spring", "Autumn"},
		{172, "Summer", "Winter"},
		{265, "Summer", "Winter"},
		{266, "Autumn", "Spring"},
		{354, "Autumn", "Spring"},
		{355, "Winter", "Summer"},
		{366, "Winter", "Summer"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.northern, seasonLabel(tt.doy, false), "doy %d north", tt.doy)
		assert.Equal(t, tt.southern, seasonLabel(tt.doy, true), "doy %d south", tt.doy)
	}
}

func TestGenerateSouthernHemisphereSeasons(t *testing.T) {
	series := Generate(spatial.Point{Lat: -27.5, Lon: 150.1}, date("2024-01-01"), date("2024-01-31"), "50HMH")
	require.NotEmpty(t, series)

	// January in the southern hemisphere is summer.
	for _, p := range series {
		assert.Equal(t, "Summer", p.Season)
	}
}
