package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/mobiledger/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// Ledger errors
var (
	ErrDuplicateDevice    = shared.NewDomainError("DUPLICATE_DEVICE", "An active device with this IMEI already exists")
	ErrDeviceNotFound     = shared.NewDomainError("DEVICE_NOT_FOUND", "No device with this IMEI exists for the tenant")
	ErrDeviceNotAvailable = shared.NewDomainError("DEVICE_NOT_AVAILABLE", "Device is not available for sale")
	ErrDeviceNotSold      = shared.NewDomainError("DEVICE_NOT_SOLD", "Device is not in sold state")
)

// DeviceStatus represents the lifecycle state of a physical device
type DeviceStatus string

const (
	DeviceStatusAvailable DeviceStatus = "AVAILABLE"
	DeviceStatusSold      DeviceStatus = "SOLD"
	DeviceStatusReturned  DeviceStatus = "RETURNED"
)

// IsValid checks if the status is a valid DeviceStatus
func (s DeviceStatus) IsValid() bool {
	switch s {
	case DeviceStatusAvailable, DeviceStatusSold, DeviceStatusReturned:
		return true
	}
	return false
}

// String returns the string representation of DeviceStatus
func (s DeviceStatus) String() string {
	return string(s)
}

// IsActive returns true for states that block re-registration of the IMEI.
// A RETURNED device is inactive: the same IMEI may be re-acquired through
// a brand-new purchase record.
func (s DeviceStatus) IsActive() bool {
	return s == DeviceStatusAvailable || s == DeviceStatusSold
}

// CanTransitionTo checks if the status can transition to the target status.
// RETURNED is terminal for a device row; re-entry into circulation happens
// by registering a new Device under a new purchase, never by mutating this one.
func (s DeviceStatus) CanTransitionTo(target DeviceStatus) bool {
	switch s {
	case DeviceStatusAvailable:
		return target == DeviceStatusSold
	case DeviceStatusSold:
		return target == DeviceStatusReturned
	case DeviceStatusReturned:
		return false
	}
	return false
}

// Device tracks one physical handset by IMEI through its lifecycle.
// It is owned by the purchase record that introduced it and referenced by
// whichever sale (or return) currently applies to it. A device never holds
// two simultaneous sale links.
type Device struct {
	shared.TenantAggregateRoot
	IMEI         string          `gorm:"not null;size:50;index:idx_devices_tenant_imei,priority:2"`
	ModelID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	PurchaseID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Condition    trade.Condition `gorm:"not null;size:10"`
	Status       DeviceStatus    `gorm:"not null;size:20;index"`
	CurrentPrice decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	SaleID       *uuid.UUID      `gorm:"type:uuid;index"`
	ReturnID     *uuid.UUID      `gorm:"type:uuid"`
	ReturnedFrom *uuid.UUID      `gorm:"type:uuid"` // sale the device came back from
	ReturnReason string          `gorm:"size:200"`
	SoldAt       *time.Time
	ReturnedAt   *time.Time
}

// TableName returns the table name for GORM
func (Device) TableName() string {
	return "devices"
}

// NewDevice registers a device in AVAILABLE state under a purchase record.
// The IMEI is treated as an opaque identifier; uniqueness among active
// devices is enforced by the registrar, not here.
func NewDevice(tenantID uuid.UUID, imei string, modelID, purchaseID uuid.UUID, condition trade.Condition, purchasePrice decimal.Decimal) (*Device, error) {
	imei = strings.TrimSpace(imei)
	if imei == "" {
		return nil, shared.NewDomainError("INVALID_IMEI", "IMEI cannot be empty")
	}
	if modelID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MODEL", "Model ID cannot be empty")
	}
	if purchaseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PURCHASE", "Purchase ID cannot be empty")
	}
	if !condition.IsValid() {
		return nil, shared.NewDomainError("INVALID_CONDITION", "Condition must be NEW or USED")
	}
	if purchasePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Purchase price cannot be negative")
	}

	device := &Device{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		IMEI:                imei,
		ModelID:             modelID,
		PurchaseID:          purchaseID,
		Condition:           condition,
		Status:              DeviceStatusAvailable,
		CurrentPrice:        purchasePrice,
	}
	device.AddDomainEvent(NewDeviceRegisteredEvent(device))
	return device, nil
}

// IsAvailable returns true if the device can be sold
func (d *Device) IsAvailable() bool {
	return d.Status == DeviceStatusAvailable
}

// MarkSold transitions the device to SOLD, linking it to the sale record.
// Fails with ErrDeviceNotAvailable when the device is already sold or returned.
func (d *Device) MarkSold(saleID uuid.UUID, priceAtSale decimal.Decimal) error {
	if saleID == uuid.Nil {
		return shared.NewDomainError("INVALID_SALE", "Sale ID cannot be empty")
	}
	if !d.Status.CanTransitionTo(DeviceStatusSold) {
		return ErrDeviceNotAvailable
	}

	now := time.Now()
	d.Status = DeviceStatusSold
	d.SaleID = &saleID
	d.CurrentPrice = priceAtSale
	d.SoldAt = &now
	d.UpdatedAt = now
	d.IncrementVersion()

	d.AddDomainEvent(NewDeviceSoldEvent(d, saleID, priceAtSale))
	return nil
}

// MarkReturned transitions the device to RETURNED. The active sale link is
// cleared but kept as the historical ReturnedFrom reference.
// Fails with ErrDeviceNotSold unless the device is currently sold.
func (d *Device) MarkReturned(returnID uuid.UUID, reason string) error {
	if returnID == uuid.Nil {
		return shared.NewDomainError("INVALID_RETURN", "Return transaction ID cannot be empty")
	}
	if !d.Status.CanTransitionTo(DeviceStatusReturned) {
		return ErrDeviceNotSold
	}

	now := time.Now()
	d.Status = DeviceStatusReturned
	d.ReturnedFrom = d.SaleID
	d.SaleID = nil
	d.ReturnID = &returnID
	d.ReturnReason = reason
	d.ReturnedAt = &now
	d.UpdatedAt = now
	d.IncrementVersion()

	d.AddDomainEvent(NewDeviceReturnedEvent(d, returnID, reason))
	return nil
}
