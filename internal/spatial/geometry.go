package spatial

import (
	"math"
)

// Point represents a 2D point with latitude and longitude
type Point struct {
	Lat float64
	Lon float64
}

// FromPairs converts [lon, lat] vertex pairs into points. Pairs with fewer
// than two members are skipped.
func FromPairs(pairs [][]float64) []Point {
	points := make([]Point, 0, len(pairs))
	for _, pair := range pairs {
		if len(pair) < 2 {
			continue
		}
		points = append(points, Point{Lon: pair[0], Lat: pair[1]})
	}
	return points
}

// Centroid calculates the arithmetic mean of the vertices. This is a vertex
// centroid, not an area-weighted one: a closing vertex that duplicates the
// first pulls the mean toward it, which is accepted behavior.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}

	var sumLat, sumLon float64
	for _, p := range points {
		sumLat += p.Lat
		sumLon += p.Lon
	}

	return Point{
		Lat: sumLat / float64(len(points)),
		Lon: sumLon / float64(len(points)),
	}
}

// BoundingBox calculates the bounding box of a set of points
// Returns (minLat, minLon, maxLat, maxLon)
func BoundingBox(points []Point) (float64, float64, float64, float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}

	minLat, maxLat := points[0].Lat, points[0].Lat
	minLon, maxLon := points[0].Lon, points[0].Lon

	for _, p := range points[1:] {
		if p.Lat < minLat {
			minLat = p.Lat
		}
		if p.Lat > maxLat {
			maxLat = p.Lat
		}
		if p.Lon < minLon {
			minLon = p.Lon
		}
		if p.Lon > maxLon {
			maxLon = p.Lon
		}
	}

	return minLat, minLon, maxLat, maxLon
}

// BoundingBoxAreaHa approximates the bounding-box area in hectares using a
// planar projection: one degree of latitude is taken as 111 km, one degree of
// longitude as 111 km scaled by cos(latitude). Not a geodesic computation.
func BoundingBoxAreaHa(minLat, minLon, maxLat, maxLon, centerLat float64) float64 {
	heightKm := (maxLat - minLat) * KmPerDegree
	widthKm := (maxLon - minLon) * KmPerDegree * math.Cos(centerLat*math.Pi/180)
	return math.Abs(heightKm*widthKm) * 100 // km² → ha
}

// RingPerimeterKm sums the haversine distances along a polygon ring, closing
// it when the last vertex differs from the first. Returns kilometers.
func RingPerimeterKm(points []Point) float64 {
	if len(points) < 2 {
		return 0
	}

	var totalMeters float64
	for i := 1; i < len(points); i++ {
		totalMeters += HaversineDistance(points[i-1].Lat, points[i-1].Lon, points[i].Lat, points[i].Lon)
	}

	first, last := points[0], points[len(points)-1]
	if first.Lat != last.Lat || first.Lon != last.Lon {
		totalMeters += HaversineDistance(last.Lat, last.Lon, first.Lat, first.Lon)
	}

	return totalMeters / 1000
}
