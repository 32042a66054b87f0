package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/catalog"
)

// CreateBrandRequest represents a request to create a brand
type CreateBrandRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// UpdateBrandRequest represents a request to rename a brand
type UpdateBrandRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// BrandResponse represents a brand in API responses
type BrandResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Models    []ModelResponse `json:"models,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToBrandResponse converts a brand to its response form
func ToBrandResponse(brand *catalog.Brand) BrandResponse {
	response := BrandResponse{
		ID:        brand.ID,
		Name:      brand.Name,
		CreatedAt: brand.CreatedAt,
		UpdatedAt: brand.UpdatedAt,
	}
	if len(brand.Models) > 0 {
		response.Models = make([]ModelResponse, len(brand.Models))
		for i := range brand.Models {
			response.Models[i] = ToModelResponse(&brand.Models[i])
		}
	}
	return response
}

// CreateModelRequest represents a request to create a model under a brand
type CreateModelRequest struct {
	BrandID uuid.UUID `json:"brand_id" binding:"required"`
	Name    string    `json:"name" binding:"required,max=100"`
}

// UpdateModelRequest represents a request to rename a model
type UpdateModelRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// ModelResponse represents a model in API responses
type ModelResponse struct {
	ID        uuid.UUID `json:"id"`
	BrandID   uuid.UUID `json:"brand_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToModelResponse converts a model to its response form
func ToModelResponse(model *catalog.Model) ModelResponse {
	return ModelResponse{
		ID:        model.ID,
		BrandID:   model.BrandID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
