package region

// Default tiles for points that miss every box, keyed by longitude band.
const (
	fallbackAmericasTile     = "18TWL"
	fallbackEuropeAfricaTile = "36MZA"
	fallbackAsiaPacificTile  = "48NUG"
)

// defaultRegions covers the major agricultural regions. Boxes are coarse on
// purpose; a point near a border can land in the "wrong" country and still be
// fine, since the match only keys the simulation.
var defaultRegions = []Region{
	// Africa
	{Name: "Zimbabwe", Bounds: [4]float64{28, -22, 33, -15}, Tiles: []string{"36MZA"}},
	{Name: "South Africa", Bounds: [4]float64{16, -35, 33, -22}, Tiles: []string{"35MPN"}},
	{Name: "Kenya", Bounds: [4]float64{33, -5, 42, 5}, Tiles: []string{"37MCS"}},
	{Name: "Nigeria", Bounds: [4]float64{2, 4, 15, 14}, Tiles: []string{"32NMJ"}},

	// Europe
	{Name: "UK", Bounds: [4]float64{-8, 50, 2, 59}, Tiles: []string{"30UVG"}},
	{Name: "France", Bounds: [4]float64{-5, 42, 8, 51}, Tiles: []string{"31UDQ"}},
	{Name: "Germany", Bounds: [4]float64{5, 47, 15, 55}, Tiles: []string{"32UNU"}},
	{Name: "Poland", Bounds: [4]float64{14, 49, 24, 55}, Tiles: []string{"34UCA"}},

	// North America
	{Name: "Iowa", Bounds: [4]float64{-97, 40, -90, 43}, Tiles: []string{"15TWG"}},
	{Name: "Nebraska", Bounds: [4]float64{-104, 40, -95, 43}, Tiles: []string{"14TNE"}},
	{Name: "California", Bounds: [4]float64{-125, 32, -114, 42}, Tiles: []string{"11SKA"}},
	{Name: "Texas", Bounds: [4]float64{-107, 25, -93, 37}, Tiles: []string{"14RMS"}},

	// South America
	{Name: "Brazil", Bounds: [4]float64{-74, -34, -34, 6}, Tiles: []string{"22KBA", "21LYH"}},
	{Name: "Argentina", Bounds: [4]float64{-74, -55, -53, -21}, Tiles: []string{"21HUB"}},
	{Name: "Colombia", Bounds: [4]float64{-79, -4, -66, 13}, Tiles: []string{"18NWK"}},

	// Asia
	{Name: "India", Bounds: [4]float64{68, 6, 97, 37}, Tiles: []string{"43RGN"}},
	{Name: "China", Bounds: [4]float64{73, 18, 135, 54}, Tiles: []string{"50RKR", "49QCC"}},
	{Name: "Thailand", Bounds: [4]float64{97, 5, 106, 21}, Tiles: []string{"47PNR"}},
	{Name: "Vietnam", Bounds: [4]float64{102, 8, 110, 24}, Tiles: []string{"48PXS"}},

	// Oceania
	{Name: "Australia", Bounds: [4]float64{112, -44, 154, -10}, Tiles: []string{"50HMH"}},
	{Name: "New Zealand", Bounds: [4]float64{166, -47, 179, -34}, Tiles: []string{"59GMJ"}},
}
