package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	reportapp "github.com/mobiledger/backend/internal/application/report"
	"github.com/mobiledger/backend/internal/interfaces/http/dto"
)

// ReportHandler handles profit and inventory report endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	reports.GET("/profit/summary", h.ProfitSummary)
	reports.GET("/profit/brands", h.BrandProfitBreakdown)
	reports.GET("/profit/models", h.ModelSalesRanking)
	reports.GET("/profit/daily", h.DailyProfitTrend)
	reports.GET("/inventory", h.InventorySnapshot)
	reports.GET("/outstanding/shops", h.ShopOutstanding)
	reports.GET("/outstanding/suppliers", h.SupplierOutstanding)
}

// ProfitSummary returns the monthly profit summary
func (h *ReportHandler) ProfitSummary(c *gin.Context) {
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

	resp, err := h.reportService.GetProfitSummary(c.Request.Context(), tenantID, period.Month, period.Year)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// BrandProfitBreakdown returns per-brand profit for one month
func (h *ReportHandler) BrandProfitBreakdown(c *gin.Context) {
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

	resp, err := h.reportService.GetBrandProfitBreakdown(c.Request.Context(), tenantID, period.Month, period.Year)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ModelSalesRanking returns the best selling models for one month
func (h *ReportHandler) ModelSalesRanking(c *gin.Context) {
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
	topN, err := strconv.Atoi(c.DefaultQuery("top", "10"))
	if err != nil || topN < 1 || topN > 100 {
		h.BadRequest(c, "Invalid top parameter")
		return
	}

	resp, err := h.reportService.GetModelSalesRanking(c.Request.Context(), tenantID, period.Month, period.Year, topN)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DailyProfitTrend returns per-day profit for one month
func (h *ReportHandler) DailyProfitTrend(c *gin.Context) {
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

	resp, err := h.reportService.GetDailyProfitTrend(c.Request.Context(), tenantID, period.Month, period.Year)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// InventorySnapshot returns the current stock position with diagnostics
func (h *ReportHandler) InventorySnapshot(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}

	resp, err := h.reportService.GetInventorySnapshot(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ShopOutstanding returns open sale dues grouped by shop
func (h *ReportHandler) ShopOutstanding(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}

	resp, err := h.reportService.GetShopOutstanding(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SupplierOutstanding returns open purchase dues grouped by supplier
func (h *ReportHandler) SupplierOutstanding(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}

	resp, err := h.reportService.GetSupplierOutstanding(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
