package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveKnownRegions(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name string
		lon  float64
		lat  float64
		want Match
	}{
		{"zimbabwe maize belt", 32.55, -17.85, Match{"Zimbabwe", "36MZA"}},
		{"iowa corn", -93.5, 42.1, Match{"Iowa", "15TWG"}},
		{"uk wheat", -1.5, 52.1, Match{"UK", "30UVG"}},
		{"punjab rice", 75.5, 31.2, Match{"India", "43RGN"}},
		{"queensland wheat", 150.1, -27.5, Match{"Australia", "50HMH"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.lon, tt.lat))
		})
	}
}

func TestResolveTableOrderBreaksTies(t *testing.T) {
	r := NewResolver()

	// Northern Vietnam sits inside both the China and Vietnam boxes; China is
	// declared first and must win.
	assert.Equal(t, "China", r.Resolve(105, 20).RegionName)

	// Same for the Brazil/Argentina overlap around the Paraná basin.
	assert.Equal(t, "Brazil", r.Resolve(-60, -30).RegionName)
}

func TestResolveInclusiveBounds(t *testing.T) {
	r := NewResolver()

	// All four edges of the Zimbabwe box [28,-22,33,-15] are inclusive.
	assert.Equal(t, "Zimbabwe", r.Resolve(28, -22).RegionName)
	assert.Equal(t, "Zimbabwe", r.Resolve(33, -15).RegionName)
}

func TestResolveLongitudeFallback(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name       string
		lon, lat   float64
		wantRegion string
		wantTile   string
	}{
		{"southern ocean west", -100, -80, "Americas", "18TWL"},
		{"arctic greenwich", 0, 80, "Europe/Africa", "36MZA"},
		{"siberia", 100, 60, "Asia/Pacific", "48NUG"},
		{"americas band edge", -30, 10, "Americas", "18TWL"},
		{"europe band edge", 60, -60, "Europe/Africa", "36MZA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.lon, tt.lat)
			assert.Equal(t, tt.wantRegion, got.RegionName)
			assert.Equal(t, tt.wantTile, got.TileCode)
		})
	}
}

func TestResolveNeverFails(t *testing.T) {
	r := NewResolver()

	// Out-of-range and absurd coordinates still resolve to something.
	for _, p := range [][2]float64{{-999, 12}, {999, -12}, {181, 91}, {-181, -91}, {0, 0}} {
		got := r.Resolve(p[0], p[1])
		assert.NotEmpty(t, got.RegionName)
		assert.NotEmpty(t, got.TileCode)
	}
}

func TestResolverCopiesTable(t *testing.T) {
	table := []Region{
		{Name: "Test", Bounds: [4]float64{0, 0, 10, 10}, Tiles: []string{"00AAA"}},
	}
	r := NewResolverWithTable(table)

	table[0] = Region{Name: "Mutated", Bounds: [4]float64{0, 0, 10, 10}, Tiles: []string{"XXXXX"}}

	assert.Equal(t, "Test", r.Resolve(5, 5).RegionName)
}
