package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/ledger"
	"github.com/mobiledger/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// DeviceResponse represents one ledger row for a device
type DeviceResponse struct {
	ID           uuid.UUID           `json:"id"`
	IMEI         string              `json:"imei"`
	ModelID      uuid.UUID           `json:"model_id"`
	PurchaseID   uuid.UUID           `json:"purchase_id"`
	Condition    trade.Condition     `json:"condition"`
	Status       ledger.DeviceStatus `json:"status"`
	CurrentPrice decimal.Decimal     `json:"current_price"`
	SaleID       *uuid.UUID          `json:"sale_id,omitempty"`
	ReturnedFrom *uuid.UUID          `json:"returned_from,omitempty"`
	ReturnReason string              `json:"return_reason,omitempty"`
	SoldAt       *time.Time          `json:"sold_at,omitempty"`
	ReturnedAt   *time.Time          `json:"returned_at,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}

// ToDeviceResponse converts a device to its response form
func ToDeviceResponse(device *ledger.Device) DeviceResponse {
	return DeviceResponse{
		ID:           device.ID,
		IMEI:         device.IMEI,
		ModelID:      device.ModelID,
		PurchaseID:   device.PurchaseID,
		Condition:    device.Condition,
		Status:       device.Status,
		CurrentPrice: device.CurrentPrice,
		SaleID:       device.SaleID,
		ReturnedFrom: device.ReturnedFrom,
		ReturnReason: device.ReturnReason,
		SoldAt:       device.SoldAt,
		ReturnedAt:   device.ReturnedAt,
		CreatedAt:    device.CreatedAt,
	}
}

// DeviceSaleEntry summarizes one sale a device was involved in
type DeviceSaleEntry struct {
	SaleID     uuid.UUID           `json:"sale_id"`
	BillNumber string              `json:"bill_number"`
	SalePrice  decimal.Decimal     `json:"sale_price"`
	Status     trade.PaymentStatus `json:"status"`
	SoldAt     time.Time           `json:"sold_at"`
}

// DeviceHistoryResponse is the full trail for one IMEI: every ledger row
// the IMEI ever occupied (newest first) plus every sale it appeared in
type DeviceHistoryResponse struct {
	IMEI    string            `json:"imei"`
	Current *DeviceResponse   `json:"current,omitempty"`
	History []DeviceResponse  `json:"history"`
	Sales   []DeviceSaleEntry `json:"sales"`
}
