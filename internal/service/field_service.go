package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/croplens/fieldsim-backend-go/internal/models"
	"github.com/croplens/fieldsim-backend-go/internal/region"
	"github.com/croplens/fieldsim-backend-go/internal/simulate"
	"github.com/croplens/fieldsim-backend-go/internal/spatial"
	"github.com/croplens/fieldsim-backend-go/internal/stats"
)

// Result series are truncated to this many leading points on the wire; the
// full count still travels in total_points.
const maxResponsePoints = 20

const centroidDecimals = 4

// FieldService orchestrates polygon validation, region resolution, series
// generation and summarization. It holds no per-request state; one instance
// serves all requests concurrently.
type FieldService struct {
	resolver *region.Resolver
	archive  ArchiveChecker // optional, may be nil
}

// NewFieldService creates a new field service. archive may be nil when no
// imagery archive is configured.
func NewFieldService(resolver *region.Resolver, archive ArchiveChecker) *FieldService {
	return &FieldService{
		resolver: resolver,
		archive:  archive,
	}
}

// ResolveTile maps a point to its region and representative tile.
func (s *FieldService) ResolveTile(lon, lat float64) models.RegionMatch {
	match := s.resolver.Resolve(lon, lat)
	return models.RegionMatch{RegionName: match.RegionName, TileCode: match.TileCode}
}

// ProcessField runs the full pipeline for one field. It never returns a
// fault: validation and internal failures come back as a failure-tagged
// result carrying a message and the original field name.
func (s *FieldService) ProcessField(ctx context.Context, req models.AnalyzeRequest) *models.FieldResult {
	if len(req.Coordinates) < 3 {
		return failure(req.FieldName, "field polygon needs at least 3 coordinate pairs")
	}

	points := spatial.FromPairs(req.Coordinates)
	if len(points) < 3 {
		return failure(req.FieldName, "field polygon needs at least 3 valid [lon, lat] pairs")
	}

	start, err := time.Parse(models.DateLayout, req.StartDate)
	if err != nil {
		return failure(req.FieldName, fmt.Sprintf("invalid start_date %q, expected YYYY-MM-DD", req.StartDate))
	}
	end, err := time.Parse(models.DateLayout, req.EndDate)
	if err != nil {
		return failure(req.FieldName, fmt.Sprintf("invalid end_date %q, expected YYYY-MM-DD", req.EndDate))
	}

	center := spatial.Centroid(points)
	match := s.resolver.Resolve(center.Lon, center.Lat)

	minLat, minLon, maxLat, maxLon := spatial.BoundingBox(points)

	series := simulate.Generate(center, start, end, match.TileCode)

	ndvi := &models.NDVIData{
		Timeseries:  series,
		TotalPoints: len(series),
	}
	if len(series) > maxResponsePoints {
		ndvi.Timeseries = series[:maxResponsePoints]
	}

	summary, err := stats.Summarize(series)
	if err == nil {
		ndvi.Statistics = summary
	}
	// stats.ErrEmptySeries is a degenerate success: zero points, no summary.

	result := &models.FieldResult{
		Success:   true,
		FieldName: req.FieldName,
		Location: &models.FieldLocation{
			Center:       []float64{roundTo(center.Lon, centroidDecimals), roundTo(center.Lat, centroidDecimals)},
			RegionName:   match.RegionName,
			TileCode:     match.TileCode,
			ApproxAreaHa: roundTo(spatial.BoundingBoxAreaHa(minLat, minLon, maxLat, maxLon, center.Lat), 2),
			PerimeterKm:  roundTo(spatial.RingPerimeterKm(points), 3),
		},
		AnalysisPeriod: req.StartDate + " to " + req.EndDate,
		NDVIData:       ndvi,
	}

	if s.archive != nil {
		result.ArchiveChecked = true
		result.ArchiveAvailable = s.archive.Available(ctx, match.TileCode, req.StartDate)
	}

	return result
}

func failure(fieldName, message string) *models.FieldResult {
	return &models.FieldResult{
		Success:   false,
		FieldName: fieldName,
		Error:     message,
	}
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
