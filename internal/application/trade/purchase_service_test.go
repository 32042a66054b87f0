package trade

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/ledger"
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/mobiledger/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPurchaseServiceCreate(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	modelID := uuid.New()

	baseRequest := func() CreatePurchaseRequest {
		return CreatePurchaseRequest{
			ModelID:    modelID,
			Condition:  trade.ConditionNew,
			Quantity:   2,
			UnitPrice:  decimal.NewFromInt(40000),
			IMEIs:      []string{"356938035643801", "356938035643802"},
			PaidAmount: decimal.NewFromInt(50000),
		}
	}

	t.Run("records the batch and registers one device per IMEI", func(t *testing.T) {
		purchaseRepo := new(MockPurchaseRecordRepository)
		deviceRepo := new(MockDeviceRepository)
		service := NewPurchaseService(purchaseRepo, deviceRepo, &MockTransactionManager{})

		purchaseRepo.On("GenerateBillNumber", ctx, tenantID).Return("PURCHASE-20260830-0001", nil)
		deviceRepo.On("FindActiveByIMEI", ctx, tenantID, mock.AnythingOfType("string")).Return(nil, shared.ErrNotFound)
		purchaseRepo.On("Save", ctx, mock.AnythingOfType("*trade.PurchaseRecord")).Return(nil)
		deviceRepo.On("SaveAll", ctx, mock.MatchedBy(func(devices []*ledger.Device) bool {
			return len(devices) == 2 && devices[0].Status == ledger.DeviceStatusAvailable
		})).Return(nil)

		response, err := service.Create(ctx, tenantID, baseRequest())
		require.NoError(t, err)

		assert.Equal(t, "PURCHASE-20260830-0001", response.BillNumber)
		assert.Equal(t, "80000", response.TotalCost.String())
		assert.Equal(t, "30000", response.DueAmount.String())
		assert.Equal(t, trade.PaymentStatusPartial, response.Status)
		purchaseRepo.AssertExpectations(t)
		deviceRepo.AssertExpectations(t)
	})

	t.Run("rejects an IMEI held by an active device", func(t *testing.T) {
		purchaseRepo := new(MockPurchaseRecordRepository)
		deviceRepo := new(MockDeviceRepository)
		service := NewPurchaseService(purchaseRepo, deviceRepo, &MockTransactionManager{})

		existing, err := ledger.NewDevice(tenantID, "356938035643801", modelID, uuid.New(), trade.ConditionNew, decimal.NewFromInt(40000))
		require.NoError(t, err)

		purchaseRepo.On("GenerateBillNumber", ctx, tenantID).Return("PURCHASE-20260830-0002", nil)
		deviceRepo.On("FindActiveByIMEI", ctx, tenantID, "356938035643801").Return(existing, nil)

		_, err = service.Create(ctx, tenantID, baseRequest())
		assert.ErrorIs(t, err, ledger.ErrDuplicateDevice)
		purchaseRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		deviceRepo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
	})

	t.Run("propagates quantity mismatch from the domain", func(t *testing.T) {
		purchaseRepo := new(MockPurchaseRecordRepository)
		deviceRepo := new(MockDeviceRepository)
		service := NewPurchaseService(purchaseRepo, deviceRepo, &MockTransactionManager{})

		purchaseRepo.On("GenerateBillNumber", ctx, tenantID).Return("PURCHASE-20260830-0003", nil)

		req := baseRequest()
		req.IMEIs = []string{"356938035643801"}
		_, err := service.Create(ctx, tenantID, req)
		assert.ErrorIs(t, err, trade.ErrQuantityMismatch)
	})
}
