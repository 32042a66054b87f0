package handler

import (
	"github.com/gin-gonic/gin"

	tradeapp "github.com/mobiledger/backend/internal/application/trade"
	"github.com/mobiledger/backend/internal/interfaces/http/dto"
)

// IncentiveHandler handles monthly brand incentive endpoints
type IncentiveHandler struct {
	BaseHandler
	incentiveService *tradeapp.IncentiveService
}

// NewIncentiveHandler creates a new IncentiveHandler
func NewIncentiveHandler(incentiveService *tradeapp.IncentiveService) *IncentiveHandler {
	return &IncentiveHandler{incentiveService: incentiveService}
}

// RegisterRoutes registers incentive routes
func (h *IncentiveHandler) RegisterRoutes(rg *gin.RouterGroup) {
	incentives := rg.Group("/incentives")
	incentives.PUT("", h.Upsert)
	incentives.GET("", h.ListByPeriod)
	incentives.DELETE("/:id", h.Delete)
}

// Upsert sets the incentive amount for a brand and month
func (h *IncentiveHandler) Upsert(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}

	var req tradeapp.UpsertIncentiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.incentiveService.Upsert(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListByPeriod lists incentives for one month
func (h *IncentiveHandler) ListByPeriod(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}

	var period dto.PeriodRequest
	if err := c.ShouldBindQuery(&period); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.incentiveService.ListByPeriod(c.Request.Context(), tenantID, period.Month, period.Year)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes one incentive entry
func (h *IncentiveHandler) Delete(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid incentive ID")
		return
	}

	if err := h.incentiveService.Delete(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
