package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// ==================== Shop DTOs ====================

// CreateShopRequest represents a request to register a shop
type CreateShopRequest struct {
	Name        string          `json:"name" binding:"required,max=100"`
	OwnerName   string          `json:"owner_name" binding:"required,max=100"`
	ContactInfo string          `json:"contact_info"`
	Address     string          `json:"address"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
}

// UpdateShopRequest represents a request to update shop details
type UpdateShopRequest struct {
	Name        string          `json:"name" binding:"required,max=100"`
	OwnerName   string          `json:"owner_name" binding:"required,max=100"`
	ContactInfo string          `json:"contact_info"`
	Address     string          `json:"address"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
}

// ShopResponse represents a shop in API responses
type ShopResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	OwnerName   string          `json:"owner_name"`
	ContactInfo string          `json:"contact_info,omitempty"`
	Address     string          `json:"address,omitempty"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ShopBalanceResponse pairs a shop with its derived outstanding balance
type ShopBalanceResponse struct {
	ShopResponse
	Outstanding decimal.Decimal `json:"outstanding"`
}

// ToShopResponse converts a shop to its response form
func ToShopResponse(shop *partner.Shop) ShopResponse {
	return ShopResponse{
		ID:          shop.ID,
		Name:        shop.Name,
		OwnerName:   shop.OwnerName,
		ContactInfo: shop.ContactInfo,
		Address:     shop.Address,
		CreditLimit: shop.CreditLimit,
		CreatedAt:   shop.CreatedAt,
		UpdatedAt:   shop.UpdatedAt,
	}
}

// ==================== Supplier DTOs ====================

// CreateSupplierRequest represents a request to register a supplier
type CreateSupplierRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	ContactInfo string `json:"contact_info"`
	Address     string `json:"address"`
}

// UpdateSupplierRequest represents a request to update supplier details
type UpdateSupplierRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	ContactInfo string `json:"contact_info"`
	Address     string `json:"address"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ContactInfo string    `json:"contact_info,omitempty"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToSupplierResponse converts a supplier to its response form
func ToSupplierResponse(supplier *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          supplier.ID,
		Name:        supplier.Name,
		ContactInfo: supplier.ContactInfo,
		Address:     supplier.Address,
		CreatedAt:   supplier.CreatedAt,
		UpdatedAt:   supplier.UpdatedAt,
	}
}
