package trade

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/ledger"
	"github.com/mobiledger/backend/internal/domain/partner"
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/mobiledger/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func availableDevice(t *testing.T, tenantID uuid.UUID, imei string, purchasePrice int64) *ledger.Device {
	t.Helper()
	device, err := ledger.NewDevice(tenantID, imei, uuid.New(), uuid.New(), trade.ConditionNew, decimal.NewFromInt(purchasePrice))
	require.NoError(t, err)
	return device
}

func TestSaleServiceCreate(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("grouped sale splits the payment proportionally", func(t *testing.T) {
		saleRepo := new(MockSaleRecordRepository)
		deviceRepo := new(MockDeviceRepository)
		shopRepo := new(MockShopRepository)
		service := NewSaleService(saleRepo, deviceRepo, shopRepo, &MockTransactionManager{})

		first := availableDevice(t, tenantID, "356938035643801", 800)
		second := availableDevice(t, tenantID, "356938035643802", 2500)

		saleRepo.On("GenerateBillNumber", ctx, tenantID).Return("BILL-20260830-0001", nil)
		deviceRepo.On("FindActiveByIMEI", ctx, tenantID, "356938035643801").Return(first, nil)
		deviceRepo.On("FindActiveByIMEI", ctx, tenantID, "356938035643802").Return(second, nil)

		var saved []*trade.SaleRecord
		saleRepo.On("SaveAll", ctx, mock.AnythingOfType("[]*trade.SaleRecord")).Run(func(args mock.Arguments) {
			saved = args.Get(1).([]*trade.SaleRecord)
		}).Return(nil)
		deviceRepo.On("SaveWithLock", ctx, mock.AnythingOfType("*ledger.Device")).Return(nil)

		response, err := service.Create(ctx, tenantID, CreateSaleRequest{
			Lines: []SaleLineInput{
				{IMEI: "356938035643801", SalePrice: decimal.NewFromInt(1000)},
				{IMEI: "356938035643802", SalePrice: decimal.NewFromInt(3000)},
			},
			CustomerType: trade.CustomerTypeIndividual,
			CustomerName: "Walk-in",
			PaidAmount:   decimal.NewFromInt(2000),
		})
		require.NoError(t, err)

		require.Len(t, saved, 2)
		assert.Equal(t, "500", saved[0].PaidAmount.String())
		assert.Equal(t, "1500", saved[1].PaidAmount.String())
		assert.Equal(t, "500", saved[0].DueAmount.String())
		assert.Equal(t, "1500", saved[1].DueAmount.String())
		assert.True(t, saved[0].BalanceConsistent())
		assert.True(t, saved[1].BalanceConsistent())

		assert.Equal(t, "200", saved[0].Profit.String())
		assert.Equal(t, "500", saved[1].Profit.String())

		assert.Equal(t, ledger.DeviceStatusSold, first.Status)
		assert.Equal(t, *first.SaleID, saved[0].ID)

		assert.Equal(t, "BILL-20260830-0001", response.BillNumber)
		assert.Equal(t, "4000", response.TotalPrice.String())
		assert.Equal(t, "2000", response.TotalDue.String())
		assert.Equal(t, trade.PaymentStatusPartial, response.Status)
	})

	t.Run("unknown IMEI fails with device not found", func(t *testing.T) {
		saleRepo := new(MockSaleRecordRepository)
		deviceRepo := new(MockDeviceRepository)
		service := NewSaleService(saleRepo, deviceRepo, new(MockShopRepository), &MockTransactionManager{})

		saleRepo.On("GenerateBillNumber", ctx, tenantID).Return("BILL-20260830-0002", nil)
		deviceRepo.On("FindActiveByIMEI", ctx, tenantID, "356938035643809").Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, tenantID, CreateSaleRequest{
			Lines:        []SaleLineInput{{IMEI: "356938035643809", SalePrice: decimal.NewFromInt(1000)}},
			CustomerType: trade.CustomerTypeIndividual,
		})
		assert.ErrorIs(t, err, ledger.ErrDeviceNotFound)
	})

	t.Run("already sold device fails with device not available", func(t *testing.T) {
		saleRepo := new(MockSaleRecordRepository)
		deviceRepo := new(MockDeviceRepository)
		service := NewSaleService(saleRepo, deviceRepo, new(MockShopRepository), &MockTransactionManager{})

		sold := availableDevice(t, tenantID, "356938035643803", 800)
		require.NoError(t, sold.MarkSold(uuid.New(), decimal.NewFromInt(1000)))

		saleRepo.On("GenerateBillNumber", ctx, tenantID).Return("BILL-20260830-0003", nil)
		deviceRepo.On("FindActiveByIMEI", ctx, tenantID, "356938035643803").Return(sold, nil)

		_, err := service.Create(ctx, tenantID, CreateSaleRequest{
			Lines:        []SaleLineInput{{IMEI: "356938035643803", SalePrice: decimal.NewFromInt(1000)}},
			CustomerType: trade.CustomerTypeIndividual,
		})
		assert.ErrorIs(t, err, ledger.ErrDeviceNotAvailable)
		saleRepo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
	})

	t.Run("credit sale past the shop limit is rejected", func(t *testing.T) {
		saleRepo := new(MockSaleRecordRepository)
		deviceRepo := new(MockDeviceRepository)
		shopRepo := new(MockShopRepository)
		service := NewSaleService(saleRepo, deviceRepo, shopRepo, &MockTransactionManager{})

		shop, err := partner.NewShop(tenantID, "City Mobiles", "Asif")
		require.NoError(t, err)
		require.NoError(t, shop.SetCreditLimit(decimal.NewFromInt(10000)))

		device := availableDevice(t, tenantID, "356938035643804", 800)

		saleRepo.On("GenerateBillNumber", ctx, tenantID).Return("BILL-20260830-0004", nil)
		deviceRepo.On("FindActiveByIMEI", ctx, tenantID, "356938035643804").Return(device, nil)
		shopRepo.On("FindByIDForTenant", ctx, tenantID, shop.ID).Return(shop, nil)
		saleRepo.On("SumOutstandingByShop", ctx, tenantID, shop.ID).Return(decimal.NewFromInt(9500), nil)

		_, err = service.Create(ctx, tenantID, CreateSaleRequest{
			Lines:        []SaleLineInput{{IMEI: "356938035643804", SalePrice: decimal.NewFromInt(1000)}},
			CustomerType: trade.CustomerTypeShop,
			ShopID:       &shop.ID,
			PaidAmount:   decimal.Zero,
		})
		assert.ErrorIs(t, err, partner.ErrCreditLimitExceeded)
	})

	t.Run("rejects paid amount over the bill total", func(t *testing.T) {
		saleRepo := new(MockSaleRecordRepository)
		deviceRepo := new(MockDeviceRepository)
		service := NewSaleService(saleRepo, deviceRepo, new(MockShopRepository), &MockTransactionManager{})

		device := availableDevice(t, tenantID, "356938035643805", 800)
		saleRepo.On("GenerateBillNumber", ctx, tenantID).Return("BILL-20260830-0005", nil)
		deviceRepo.On("FindActiveByIMEI", ctx, tenantID, "356938035643805").Return(device, nil)

		_, err := service.Create(ctx, tenantID, CreateSaleRequest{
			Lines:        []SaleLineInput{{IMEI: "356938035643805", SalePrice: decimal.NewFromInt(1000)}},
			CustomerType: trade.CustomerTypeIndividual,
			PaidAmount:   decimal.NewFromInt(1500),
		})
		require.Error(t, err)
	})
}

func TestSaleServiceReturn(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("sold device moves to returned", func(t *testing.T) {
		saleRepo := new(MockSaleRecordRepository)
		deviceRepo := new(MockDeviceRepository)
		service := NewSaleService(saleRepo, deviceRepo, new(MockShopRepository), &MockTransactionManager{})

		device := availableDevice(t, tenantID, "356938035643806", 800)
		saleID := uuid.New()
		require.NoError(t, device.MarkSold(saleID, decimal.NewFromInt(1000)))

		deviceRepo.On("FindActiveByIMEI", ctx, tenantID, "356938035643806").Return(device, nil)
		deviceRepo.On("SaveWithLock", ctx, device).Return(nil)

		response, err := service.Return(ctx, tenantID, ReturnDeviceRequest{IMEI: "356938035643806", Reason: "screen defect"})
		require.NoError(t, err)

		assert.Equal(t, ledger.DeviceStatusReturned, response.Status)
		assert.Equal(t, saleID, *device.ReturnedFrom)
		assert.Nil(t, device.SaleID)
	})

	t.Run("available device cannot be returned", func(t *testing.T) {
		saleRepo := new(MockSaleRecordRepository)
		deviceRepo := new(MockDeviceRepository)
		service := NewSaleService(saleRepo, deviceRepo, new(MockShopRepository), &MockTransactionManager{})

		device := availableDevice(t, tenantID, "356938035643807", 800)
		deviceRepo.On("FindActiveByIMEI", ctx, tenantID, "356938035643807").Return(device, nil)

		_, err := service.Return(ctx, tenantID, ReturnDeviceRequest{IMEI: "356938035643807"})
		assert.ErrorIs(t, err, ledger.ErrDeviceNotSold)
	})
}

type capturingBus struct {
	events []shared.DomainEvent
}

func (b *capturingBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	b.events = append(b.events, events...)
	return nil
}

func (b *capturingBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {}
func (b *capturingBus) Unsubscribe(handler shared.EventHandler)                     {}

func TestSaleServicePublishesLedgerEvents(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	saleRepo := new(MockSaleRecordRepository)
	deviceRepo := new(MockDeviceRepository)
	service := NewSaleService(saleRepo, deviceRepo, new(MockShopRepository), &MockTransactionManager{})
	bus := &capturingBus{}
	service.SetEventBus(bus)

	device := availableDevice(t, tenantID, "356938035643801", 800)
	device.ClearDomainEvents()

	saleRepo.On("GenerateBillNumber", ctx, tenantID).Return("BILL-20260830-0001", nil)
	deviceRepo.On("FindActiveByIMEI", ctx, tenantID, "356938035643801").Return(device, nil)
	saleRepo.On("SaveAll", ctx, mock.AnythingOfType("[]*trade.SaleRecord")).Return(nil)
	deviceRepo.On("SaveWithLock", ctx, mock.AnythingOfType("*ledger.Device")).Return(nil)

	_, err := service.Create(ctx, tenantID, CreateSaleRequest{
		Lines:        []SaleLineInput{{IMEI: "356938035643801", SalePrice: decimal.NewFromInt(1000)}},
		CustomerType: trade.CustomerTypeIndividual,
		CustomerName: "Walk-in",
		PaidAmount:   decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	require.Len(t, bus.events, 1)
	assert.Equal(t, ledger.EventTypeDeviceSold, bus.events[0].EventType())
	assert.Equal(t, tenantID, bus.events[0].TenantID())
	assert.Empty(t, device.GetDomainEvents())
}
