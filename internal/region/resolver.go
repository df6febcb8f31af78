package region

// Region is one entry of the lookup table: a named axis-aligned bounding box
// with its candidate MGRS tiles. The first tile is the representative one.
type Region struct {
	Name   string
	Bounds [4]float64 // minLon, minLat, maxLon, maxLat
	Tiles  []string
}

// Match is the outcome of a lookup. Every point matches something.
type Match struct {
	RegionName string
	TileCode   string
}

// Resolver maps a point to a region and tile by scanning an ordered table.
// The table is fixed at construction; Resolver is safe for concurrent use.
type Resolver struct {
	regions []Region
}

// NewResolver builds a resolver over the default agricultural region table.
func NewResolver() *Resolver {
	return NewResolverWithTable(defaultRegions)
}

// NewResolverWithTable builds a resolver over a custom table. The slice is
// copied so later mutation by the caller cannot change resolution results.
func NewResolverWithTable(regions []Region) *Resolver {
	table := make([]Region, len(regions))
	copy(table, regions)
	return &Resolver{regions: table}
}

// Resolve returns the first region whose box contains the point, checking the
// table in declaration order. Boxes overlap in places (China/Thailand/Vietnam);
// position in the table decides those ties, so the order is part of the
// contract. Points outside every box fall back to a longitude band.
func (r *Resolver) Resolve(lon, lat float64) Match {
	for _, reg := range r.regions {
		if lon >= reg.Bounds[0] && lon <= reg.Bounds[2] &&
			lat >= reg.Bounds[1] && lat <= reg.Bounds[3] {
			return Match{RegionName: reg.Name, TileCode: reg.Tiles[0]}
		}
	}

	switch {
	case lon >= -180 && lon <= -30:
		return Match{RegionName: "Americas", TileCode: fallbackAmericasTile}
	case lon > -30 && lon <= 60:
		return Match{RegionName: "Europe/Africa", TileCode: fallbackEuropeAfricaTile}
	default:
		return Match{RegionName: "Asia/Pacific", TileCode: fallbackAsiaPacificTile}
	}
}
