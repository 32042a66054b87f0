package ledger

import (
	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeDevice = "Device"

// Event type constants
const (
	EventTypeDeviceRegistered = "DeviceRegistered"
	EventTypeDeviceSold       = "DeviceSold"
	EventTypeDeviceReturned   = "DeviceReturned"
)

// DeviceRegisteredEvent is raised when a device enters the ledger
type DeviceRegisteredEvent struct {
	shared.BaseDomainEvent
	DeviceID   uuid.UUID `json:"device_id"`
	IMEI       string    `json:"imei"`
	ModelID    uuid.UUID `json:"model_id"`
	PurchaseID uuid.UUID `json:"purchase_id"`
}

// NewDeviceRegisteredEvent creates a new DeviceRegisteredEvent
func NewDeviceRegisteredEvent(device *Device) *DeviceRegisteredEvent {
	return &DeviceRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDeviceRegistered, AggregateTypeDevice, device.ID, device.TenantID),
		DeviceID:        device.ID,
		IMEI:            device.IMEI,
		ModelID:         device.ModelID,
		PurchaseID:      device.PurchaseID,
	}
}

// EventType returns the event type name
func (e *DeviceRegisteredEvent) EventType() string {
	return EventTypeDeviceRegistered
}

// DeviceSoldEvent is raised when a device is sold
type DeviceSoldEvent struct {
	shared.BaseDomainEvent
	DeviceID    uuid.UUID       `json:"device_id"`
	IMEI        string          `json:"imei"`
	SaleID      uuid.UUID       `json:"sale_id"`
	PriceAtSale decimal.Decimal `json:"price_at_sale"`
}

// NewDeviceSoldEvent creates a new DeviceSoldEvent
func NewDeviceSoldEvent(device *Device, saleID uuid.UUID, priceAtSale decimal.Decimal) *DeviceSoldEvent {
	return &DeviceSoldEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDeviceSold, AggregateTypeDevice, device.ID, device.TenantID),
		DeviceID:        device.ID,
		IMEI:            device.IMEI,
		SaleID:          saleID,
		PriceAtSale:     priceAtSale,
	}
}

// EventType returns the event type name
func (e *DeviceSoldEvent) EventType() string {
	return EventTypeDeviceSold
}

// DeviceReturnedEvent is raised when a sold device comes back
type DeviceReturnedEvent struct {
	shared.BaseDomainEvent
	DeviceID uuid.UUID `json:"device_id"`
	IMEI     string    `json:"imei"`
	ReturnID uuid.UUID `json:"return_id"`
	Reason   string    `json:"reason"`
}

// NewDeviceReturnedEvent creates a new DeviceReturnedEvent
func NewDeviceReturnedEvent(device *Device, returnID uuid.UUID, reason string) *DeviceReturnedEvent {
	return &DeviceReturnedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDeviceReturned, AggregateTypeDevice, device.ID, device.TenantID),
		DeviceID:        device.ID,
		IMEI:            device.IMEI,
		ReturnID:        returnID,
		Reason:          reason,
	}
}

// EventType returns the event type name
func (e *DeviceReturnedEvent) EventType() string {
	return EventTypeDeviceReturned
}
