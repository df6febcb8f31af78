package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	geojson "github.com/paulmach/go.geojson"

	"github.com/croplens/fieldsim-backend-go/internal/models"
	"github.com/croplens/fieldsim-backend-go/internal/service"
	"github.com/croplens/fieldsim-backend-go/pkg/response"
)

const defaultFieldName = "Unnamed Field"

// FieldHandler handles HTTP requests for field analysis
type FieldHandler struct {
	fieldService *service.FieldService
}

// NewFieldHandler creates a new field handler
func NewFieldHandler(fieldService *service.FieldService) *FieldHandler {
	return &FieldHandler{
		fieldService: fieldService,
	}
}

// AnalyzeField handles POST /api/analyze. The body carries either raw
// [lon, lat] coordinate pairs or a GeoJSON Polygon geometry. The result is
// returned in its own success/failure shape rather than the standard
// envelope, since failure details (echoed field name) are part of it.
func (h *FieldHandler) AnalyzeField(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.FieldName == "" {
		req.FieldName = defaultFieldName
	}

	if len(req.Coordinates) == 0 && len(req.Geometry) > 0 {
		coords, err := polygonFromGeoJSON(req.Geometry)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		req.Coordinates = coords
	}

	result := h.fieldService.ProcessField(c.Request.Context(), req)
	result.RequestID = uuid.NewString()
	result.Timestamp = time.Now().Format("2006-01-02 15:04:05")

	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ResolveTile handles GET /api/v1/tiles/resolve?lon=&lat=
func (h *FieldHandler) ResolveTile(c *gin.Context) {
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid lon parameter")
		return
	}

	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid lat parameter")
		return
	}

	response.Success(c, h.fieldService.ResolveTile(lon, lat))
}

// polygonFromGeoJSON extracts the outer ring of a GeoJSON Polygon geometry.
func polygonFromGeoJSON(raw []byte) (models.Polygon, error) {
	geom, err := geojson.UnmarshalGeometry(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid GeoJSON geometry: %w", err)
	}
	if !geom.IsPolygon() || len(geom.Polygon) == 0 {
		return nil, fmt.Errorf("geometry must be a GeoJSON Polygon")
	}
	return models.Polygon(geom.Polygon[0]), nil
}
