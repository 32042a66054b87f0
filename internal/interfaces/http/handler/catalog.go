package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/mobiledger/backend/internal/application/catalog"
)

// CatalogHandler handles brand and model endpoints
type CatalogHandler struct {
	BaseHandler
	brandService *catalogapp.BrandService
	modelService *catalogapp.ModelService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(brandService *catalogapp.BrandService, modelService *catalogapp.ModelService) *CatalogHandler {
	return &CatalogHandler{
		brandService: brandService,
		modelService: modelService,
	}
}

// RegisterRoutes registers catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	brands := rg.Group("/brands")
	brands.POST("", h.CreateBrand)
	brands.GET("", h.ListBrands)
	brands.GET("/:id", h.GetBrand)
	brands.PUT("/:id", h.UpdateBrand)
	brands.DELETE("/:id", h.DeleteBrand)
	brands.GET("/:id/models", h.ListModelsByBrand)

	models := rg.Group("/models")
	models.POST("", h.CreateModel)
	models.GET("", h.ListModels)
	models.GET("/:id", h.GetModel)
	models.PUT("/:id", h.UpdateModel)
	models.DELETE("/:id", h.DeleteModel)
}

// CreateBrand adds a brand to the catalog
func (h *CatalogHandler) CreateBrand(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}

	var req catalogapp.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.brandService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetBrand returns a brand with its models
func (h *CatalogHandler) GetBrand(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid brand ID")
		return
	}

	resp, err := h.brandService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListBrands lists brands for the tenant
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.brandService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateBrand renames a brand
func (h *CatalogHandler) UpdateBrand(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid brand ID")
		return
	}

	var req catalogapp.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.brandService.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteBrand removes a brand with no models
func (h *CatalogHandler) DeleteBrand(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid brand ID")
		return
	}

	if err := h.brandService.Delete(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListModelsByBrand lists the models of one brand
func (h *CatalogHandler) ListModelsByBrand(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}
	brandID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid brand ID")
		return
	}

	resp, err := h.modelService.ListByBrand(c.Request.Context(), tenantID, brandID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreateModel adds a model under a brand
func (h *CatalogHandler) CreateModel(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}

	var req catalogapp.CreateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.modelService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetModel returns one model
func (h *CatalogHandler) GetModel(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid model ID")
		return
	}

	resp, err := h.modelService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListModels lists models for the tenant
func (h *CatalogHandler) ListModels(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if brandParam := c.Query("brand_id"); brandParam != "" {
		brandID, err := uuid.Parse(brandParam)
		if err != nil {
			h.BadRequest(c, "Invalid brand ID")
			return
		}
		filter.Filters["brand_id"] = brandID
	}

	resp, err := h.modelService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateModel renames a model
func (h *CatalogHandler) UpdateModel(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid model ID")
		return
	}

	var req catalogapp.UpdateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.modelService.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteModel removes a model
func (h *CatalogHandler) DeleteModel(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant scope")
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid model ID")
		return
	}

	if err := h.modelService.Delete(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
