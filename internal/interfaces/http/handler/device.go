package handler

import (
	"github.com/gin-gonic/gin"

	ledgerapp "github.com/mobiledger/backend/internal/application/ledger"
	"github.com/mobiledger/backend/internal/domain/ledger"
)

// DeviceHandler handles device ledger lookup endpoints
type DeviceHandler struct {
	BaseHandler
	deviceService *ledgerapp.DeviceService
}

// NewDeviceHandler creates a new DeviceHandler
func NewDeviceHandler(deviceService *ledgerapp.DeviceService) *DeviceHandler {
	return &DeviceHandler{deviceService: deviceService}
}

// RegisterRoutes registers device routes
func (h *DeviceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	devices := rg.Group("/devices")
	devices.GET("/imei/:imei", h.SearchByIMEI)
	devices.GET("/:id", h.GetByID)
	devices.GET("", h.ListByStatus)
}

// SearchByIMEI returns a device's full ledger trail by IMEI
func (h *DeviceHandler) SearchByIMEI(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}

	resp, err := h.deviceService.SearchByIMEI(c.Request.Context(), tenantID, c.Param("imei"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByID returns one ledger entry
func (h *DeviceHandler) GetByID(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid device ID")
		return
	}

	resp, err := h.deviceService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListByStatus lists devices in one ledger status
func (h *DeviceHandler) ListByStatus(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}

	status := ledger.DeviceStatus(c.DefaultQuery("status", string(ledger.DeviceStatusAvailable)))
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.deviceService.ListByStatus(c.Request.Context(), tenantID, status, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
