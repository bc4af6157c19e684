package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripcost/internal/costing"
	"tripcost/internal/service"
)

// RateHandler handles HTTP requests for rate tables.
type RateHandler struct {
	rateService *service.RateService
}

// NewRateHandler creates a new RateHandler.
func NewRateHandler(rateService *service.RateService) *RateHandler {
	return &RateHandler{rateService: rateService}
}

// GetAll handles GET /v1/rates
func (h *RateHandler) GetAll(c *gin.Context) {
	tables, err := h.rateService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, tables)
}

// GetRegion handles GET /v1/rates/:region
func (h *RateHandler) GetRegion(c *gin.Context) {
	table, err := h.rateService.Resolve(c.Request.Context(), c.Param("region"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, table)
}

// PutRegion handles PUT /v1/rates/:region
//
// The body is decoded over the built-in table, so omitted fields keep their
// default values.
func (h *RateHandler) PutRegion(c *gin.Context) {
	table := costing.DefaultRateTable()
	if err := c.ShouldBindJSON(&table); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	stored, err := h.rateService.Upsert(c.Request.Context(), service.UpsertRequest{
		Region: c.Param("region"),
		Table:  table,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, stored)
}
