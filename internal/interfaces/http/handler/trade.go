package handler

import (
	"github.com/gin-gonic/gin"

	tradeapp "github.com/mobiledger/backend/internal/application/trade"
)

// TradeHandler handles purchase, sale and return endpoints
type TradeHandler struct {
	BaseHandler
	purchaseService *tradeapp.PurchaseService
	saleService     *tradeapp.SaleService
}

// NewTradeHandler creates a new TradeHandler
func NewTradeHandler(purchaseService *tradeapp.PurchaseService, saleService *tradeapp.SaleService) *TradeHandler {
	return &TradeHandler{
		purchaseService: purchaseService,
		saleService:     saleService,
	}
}

// RegisterRoutes registers trade routes
func (h *TradeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	purchases := rg.Group("/purchases")
	purchases.POST("", h.CreatePurchase)
	purchases.GET("", h.ListPurchases)
	purchases.GET("/:id", h.GetPurchase)
	purchases.GET("/bill/:number", h.GetPurchaseByBill)

	sales := rg.Group("/sales")
	sales.POST("", h.CreateSale)
	sales.GET("", h.ListSales)
	sales.GET("/:id", h.GetSale)
	sales.GET("/bill/:number", h.GetSaleBill)
	sales.POST("/returns", h.ReturnDevice)
}

// CreatePurchase records a purchase batch and registers its devices
func (h *TradeHandler) CreatePurchase(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}

	var req tradeapp.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.purchaseService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetPurchase returns one purchase record
func (h *TradeHandler) GetPurchase(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid purchase ID")
		return
	}

	resp, err := h.purchaseService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetPurchaseByBill returns a purchase record by its bill number
func (h *TradeHandler) GetPurchaseByBill(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}

	resp, err := h.purchaseService.GetByBillNumber(c.Request.Context(), tenantID, c.Param("number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListPurchases lists purchase records with pagination
func (h *TradeHandler) ListPurchases(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}

	var filter tradeapp.PurchaseListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.purchaseService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// CreateSale sells one or more devices under a single bill
func (h *TradeHandler) CreateSale(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}

	var req tradeapp.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.saleService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetSale returns one sale record
func (h *TradeHandler) GetSale(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	resp, err := h.saleService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetSaleBill returns all sale records grouped under a bill number
func (h *TradeHandler) GetSaleBill(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}

	resp, err := h.saleService.GetBill(c.Request.Context(), tenantID, c.Param("number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListSales lists sale records with pagination
func (h *TradeHandler) ListSales(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}

	var filter tradeapp.SaleListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.saleService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ReturnDevice takes a sold device back into available stock
func (h *TradeHandler) ReturnDevice(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}

	var req tradeapp.ReturnDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.saleService.Return(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
