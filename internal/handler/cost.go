package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripcost/internal/costing"
	"tripcost/internal/domain"
	"tripcost/internal/service"
)

// CostHandler handles HTTP requests for trip cost estimates.
type CostHandler struct {
	estimateService *service.EstimateService
}

// NewCostHandler creates a new CostHandler.
func NewCostHandler(estimateService *service.EstimateService) *CostHandler {
	return &CostHandler{estimateService: estimateService}
}

// DriverRequest is the driver profile supplied by the caller.
type DriverRequest struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	WeeklyTruckCost float64 `json:"weekly_truck_cost"`
}

// CoreCostRequest is the HTTP request body for a core cost estimate.
type CoreCostRequest struct {
	Region        string                  `json:"region"`
	Driver        DriverRequest           `json:"driver"`
	DistanceMiles *float64                `json:"distance_miles" binding:"required"`
	DurationDays  float64                 `json:"duration_days"`
	// Events is taken verbatim when present, so omitted counts are zero.
	// Only an absent object falls back to one pickup and one drop.
	Events        *domain.TripEventCounts `json:"events"`
}

// CoreCostResponse is the HTTP response for a core cost estimate.
type CoreCostResponse struct {
	EstimateID  string               `json:"estimate_id"`
	Region      string               `json:"region"`
	RateVersion int                  `json:"rate_version"`
	TotalCost   float64              `json:"total_cost"`
	Breakdown   domain.CostBreakdown `json:"breakdown"`
	Metadata    domain.CostMetadata  `json:"metadata"`
}

// ItemizedCostRequest is the HTTP request body for an itemized estimate.
type ItemizedCostRequest struct {
	Region           string                  `json:"region"`
	DriverType       string                  `json:"driver_type"`
	DistanceMiles    *float64                `json:"distance_miles" binding:"required"`
	PickupLocation   string                  `json:"pickup_location"`
	DeliveryLocation string                  `json:"delivery_location"`
	Options          costing.ItemizedOptions `json:"options"`
}

// ItemizedCostResponse is the HTTP response for an itemized estimate.
type ItemizedCostResponse struct {
	EstimateID  string                  `json:"estimate_id"`
	Region      string                  `json:"region"`
	RateVersion int                     `json:"rate_version"`
	Cost        domain.ItemizedTripCost `json:"cost"`
}

// CompareCostRequest is the HTTP request body for a driver-type comparison.
type CompareCostRequest struct {
	Region           string                  `json:"region"`
	DistanceMiles    *float64                `json:"distance_miles" binding:"required"`
	PickupLocation   string                  `json:"pickup_location"`
	DeliveryLocation string                  `json:"delivery_location"`
	Options          costing.ItemizedOptions `json:"options"`
	RankBy           string                  `json:"rank_by"`
}

// CompareCostResponse is the HTTP response for a driver-type comparison.
type CompareCostResponse struct {
	EstimateID  string                `json:"estimate_id"`
	Region      string                `json:"region"`
	RateVersion int                   `json:"rate_version"`
	Options     []domain.DriverOption `json:"options"`
	Recommended *domain.DriverOption  `json:"recommended,omitempty"`
}

// BorderCheckRequest is the HTTP request body for a cross-border check.
type BorderCheckRequest struct {
	PickupLocation   string `json:"pickup_location"`
	DeliveryLocation string `json:"delivery_location"`
}

// BorderCheckResponse is the HTTP response for a cross-border check.
type BorderCheckResponse struct {
	CrossBorder bool `json:"cross_border"`
}

// EstimateCore handles POST /v1/costs/core
func (h *CostHandler) EstimateCore(c *gin.Context) {
	var req CoreCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.estimateService.EstimateCore(c.Request.Context(), service.CoreEstimateRequest{
		Region: req.Region,
		Driver: domain.DriverProfile{
			ID:              req.Driver.ID,
			Name:            req.Driver.Name,
			Type:            domain.ParseDriverType(req.Driver.Type),
			WeeklyTruckCost: req.Driver.WeeklyTruckCost,
		},
		DistanceMiles: *req.DistanceMiles,
		DurationDays:  req.DurationDays,
		Events:        req.Events,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, CoreCostResponse{
		EstimateID:  result.EstimateID,
		Region:      result.Region,
		RateVersion: result.RateVersion,
		TotalCost:   result.Result.TotalCost,
		Breakdown:   result.Result.Breakdown,
		Metadata:    result.Result.Metadata,
	})
}

// EstimateItemized handles POST /v1/costs/itemized
func (h *CostHandler) EstimateItemized(c *gin.Context) {
	var req ItemizedCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.estimateService.EstimateItemized(c.Request.Context(), service.ItemizedEstimateRequest{
		Region:           req.Region,
		DriverType:       domain.ParseDriverType(req.DriverType),
		DistanceMiles:    *req.DistanceMiles,
		PickupLocation:   req.PickupLocation,
		DeliveryLocation: req.DeliveryLocation,
		Options:          req.Options,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, ItemizedCostResponse{
		EstimateID:  result.EstimateID,
		Region:      result.Region,
		RateVersion: result.RateVersion,
		Cost:        result.Cost,
	})
}

// Compare handles POST /v1/costs/compare
func (h *CostHandler) Compare(c *gin.Context) {
	var req CompareCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.estimateService.CompareDriverTypes(c.Request.Context(), service.CompareRequest{
		Region:           req.Region,
		DistanceMiles:    *req.DistanceMiles,
		PickupLocation:   req.PickupLocation,
		DeliveryLocation: req.DeliveryLocation,
		Options:          req.Options,
		RankBy:           service.RankBy(strings.ToLower(strings.TrimSpace(req.RankBy))),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, CompareCostResponse{
		EstimateID:  result.EstimateID,
		Region:      result.Region,
		RateVersion: result.RateVersion,
		Options:     result.Options,
		Recommended: result.Recommended,
	})
}

// CheckBorder handles POST /v1/borders/check
func (h *CostHandler) CheckBorder(c *gin.Context) {
	var req BorderCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	respondJSON(c, http.StatusOK, BorderCheckResponse{
		CrossBorder: h.estimateService.CheckBorder(req.PickupLocation, req.DeliveryLocation),
	})
}
