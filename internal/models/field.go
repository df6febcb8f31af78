package models

import "encoding/json"

// DateLayout is the wire format for all dates handled by the simulator.
const DateLayout = "2006-01-02"

// Polygon is an ordered list of [longitude, latitude] vertex pairs.
// The ring does not have to be explicitly closed.
type Polygon [][]float64

// AnalyzeRequest is the body of POST /api/analyze. Either Coordinates or a
// GeoJSON Polygon in Geometry must be present; Coordinates wins when both are.
type AnalyzeRequest struct {
	Coordinates Polygon         `json:"coordinates,omitempty"`
	Geometry    json.RawMessage `json:"geometry,omitempty"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	FieldName   string          `json:"field_name"`
}

// RegionMatch is the outcome of resolving a point against the region table.
type RegionMatch struct {
	RegionName string `json:"region"`
	TileCode   string `json:"mgrs_tile"`
}

// SeriesPoint is one simulated observation.
type SeriesPoint struct {
	Date       string  `json:"date"`
	IndexValue float64 `json:"ndvi"`
	CloudPct   float64 `json:"cloud_percentage"`
	Season     string  `json:"season"`
	DayOfYear  int     `json:"day_of_year"`
}

// HealthBucket is one vegetation-vigor class of the NDVI histogram.
type HealthBucket struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Trend verdicts produced by the statistics engine.
const (
	TrendImproving    = "Improving"
	TrendDeclining    = "Declining"
	TrendStable       = "Stable"
	TrendInsufficient = "Insufficient data"
)

// FieldStatistics aggregates a generated series.
type FieldStatistics struct {
	MeanNDVI     float64        `json:"mean_ndvi"`
	MinNDVI      float64        `json:"min_ndvi"`
	MaxNDVI      float64        `json:"max_ndvi"`
	StdNDVI      float64        `json:"std_ndvi"`
	MedianNDVI   float64        `json:"median_ndvi"`
	MeanCloudPct float64        `json:"mean_cloud_percentage"`
	DataPoints   int            `json:"data_points"`
	Histogram    []HealthBucket `json:"health_histogram"`
	Trend        string         `json:"trend"`
}

// FieldLocation describes where a field sits and how big it roughly is.
// AreaHa comes from a planar bounding-box approximation, not a geodesic
// computation, and should be read as an order-of-magnitude figure.
type FieldLocation struct {
	Center       []float64 `json:"center"` // [lon, lat], rounded to 4 decimals
	RegionName   string    `json:"region"`
	TileCode     string    `json:"mgrs_tile"`
	ApproxAreaHa float64   `json:"approx_area_ha"`
	PerimeterKm  float64   `json:"perimeter_km"`
}

// NDVIData carries the (truncated) series plus its summary.
type NDVIData struct {
	Timeseries  []SeriesPoint    `json:"timeseries"`
	TotalPoints int              `json:"total_points"`
	Statistics  *FieldStatistics `json:"statistics,omitempty"`
}

// FieldResult is the tagged success/failure outcome of processing a field.
// Failures carry Error and echo the field name; they are never raised as faults.
type FieldResult struct {
	Success        bool           `json:"success"`
	FieldName      string         `json:"field_name"`
	Error          string         `json:"error,omitempty"`
	Location       *FieldLocation `json:"location,omitempty"`
	AnalysisPeriod string         `json:"analysis_period,omitempty"`
	NDVIData       *NDVIData      `json:"ndvi_data,omitempty"`

	// Archive fields report the optional object-store lookup for real imagery.
	// Checked stays false when no archive is configured.
	ArchiveChecked   bool `json:"archive_checked"`
	ArchiveAvailable bool `json:"archive_available"`

	// Set at the HTTP boundary, outside the deterministic core.
	RequestID string `json:"request_id,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}
