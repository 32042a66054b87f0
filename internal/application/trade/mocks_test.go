package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/ledger"
	"github.com/mobiledger/backend/internal/domain/partner"
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/mobiledger/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockTransactionManager runs the callback directly without a real transaction
type MockTransactionManager struct{}

func (m *MockTransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// MockPurchaseRecordRepository is a mock implementation of PurchaseRecordRepository
type MockPurchaseRecordRepository struct {
	mock.Mock
}

func (m *MockPurchaseRecordRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*trade.PurchaseRecord, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.PurchaseRecord), args.Error(1)
}

func (m *MockPurchaseRecordRepository) FindByBillNumber(ctx context.Context, tenantID uuid.UUID, billNumber string) (*trade.PurchaseRecord, error) {
	args := m.Called(ctx, tenantID, billNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.PurchaseRecord), args.Error(1)
}

func (m *MockPurchaseRecordRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[trade.PurchaseRecord], error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(shared.Paginated[trade.PurchaseRecord]), args.Error(1)
}

func (m *MockPurchaseRecordRepository) FindBySupplier(ctx context.Context, tenantID, supplierID uuid.UUID, filter shared.Filter) (shared.Paginated[trade.PurchaseRecord], error) {
	args := m.Called(ctx, tenantID, supplierID, filter)
	return args.Get(0).(shared.Paginated[trade.PurchaseRecord]), args.Error(1)
}

func (m *MockPurchaseRecordRepository) FindPendingBySupplier(ctx context.Context, tenantID, supplierID uuid.UUID) ([]*trade.PurchaseRecord, error) {
	args := m.Called(ctx, tenantID, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trade.PurchaseRecord), args.Error(1)
}

func (m *MockPurchaseRecordRepository) FindByPeriod(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]trade.PurchaseRecord, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.PurchaseRecord), args.Error(1)
}

func (m *MockPurchaseRecordRepository) GenerateBillNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	args := m.Called(ctx, tenantID)
	return args.String(0), args.Error(1)
}

func (m *MockPurchaseRecordRepository) Save(ctx context.Context, record *trade.PurchaseRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockPurchaseRecordRepository) SaveWithLock(ctx context.Context, record *trade.PurchaseRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockSaleRecordRepository is a mock implementation of SaleRecordRepository
type MockSaleRecordRepository struct {
	mock.Mock
}

func (m *MockSaleRecordRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*trade.SaleRecord, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.SaleRecord), args.Error(1)
}

func (m *MockSaleRecordRepository) FindByBillNumber(ctx context.Context, tenantID uuid.UUID, billNumber string) ([]*trade.SaleRecord, error) {
	args := m.Called(ctx, tenantID, billNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trade.SaleRecord), args.Error(1)
}

func (m *MockSaleRecordRepository) FindByIMEI(ctx context.Context, tenantID uuid.UUID, imei string) ([]trade.SaleRecord, error) {
	args := m.Called(ctx, tenantID, imei)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.SaleRecord), args.Error(1)
}

func (m *MockSaleRecordRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[trade.SaleRecord], error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(shared.Paginated[trade.SaleRecord]), args.Error(1)
}

func (m *MockSaleRecordRepository) FindByShop(ctx context.Context, tenantID, shopID uuid.UUID, filter shared.Filter) (shared.Paginated[trade.SaleRecord], error) {
	args := m.Called(ctx, tenantID, shopID, filter)
	return args.Get(0).(shared.Paginated[trade.SaleRecord]), args.Error(1)
}

func (m *MockSaleRecordRepository) FindPendingByShop(ctx context.Context, tenantID, shopID uuid.UUID) ([]*trade.SaleRecord, error) {
	args := m.Called(ctx, tenantID, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trade.SaleRecord), args.Error(1)
}

func (m *MockSaleRecordRepository) FindByPeriod(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]trade.SaleRecord, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.SaleRecord), args.Error(1)
}

func (m *MockSaleRecordRepository) SumOutstandingByShop(ctx context.Context, tenantID, shopID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, tenantID, shopID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockSaleRecordRepository) GenerateBillNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	args := m.Called(ctx, tenantID)
	return args.String(0), args.Error(1)
}

func (m *MockSaleRecordRepository) Save(ctx context.Context, record *trade.SaleRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockSaleRecordRepository) SaveAll(ctx context.Context, records []*trade.SaleRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockSaleRecordRepository) SaveWithLock(ctx context.Context, record *trade.SaleRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockDeviceRepository is a mock implementation of DeviceRepository
type MockDeviceRepository struct {
	mock.Mock
}

func (m *MockDeviceRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*ledger.Device, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Device), args.Error(1)
}

func (m *MockDeviceRepository) FindActiveByIMEI(ctx context.Context, tenantID uuid.UUID, imei string) (*ledger.Device, error) {
	args := m.Called(ctx, tenantID, imei)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Device), args.Error(1)
}

func (m *MockDeviceRepository) FindHistoryByIMEI(ctx context.Context, tenantID uuid.UUID, imei string) ([]ledger.Device, error) {
	args := m.Called(ctx, tenantID, imei)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Device), args.Error(1)
}

func (m *MockDeviceRepository) FindByPurchase(ctx context.Context, tenantID, purchaseID uuid.UUID) ([]ledger.Device, error) {
	args := m.Called(ctx, tenantID, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Device), args.Error(1)
}

func (m *MockDeviceRepository) FindByStatus(ctx context.Context, tenantID uuid.UUID, status ledger.DeviceStatus, filter shared.Filter) ([]ledger.Device, error) {
	args := m.Called(ctx, tenantID, status, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Device), args.Error(1)
}

func (m *MockDeviceRepository) CountByStatus(ctx context.Context, tenantID uuid.UUID, status ledger.DeviceStatus) (int64, error) {
	args := m.Called(ctx, tenantID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDeviceRepository) Save(ctx context.Context, device *ledger.Device) error {
	args := m.Called(ctx, device)
	return args.Error(0)
}

func (m *MockDeviceRepository) SaveAll(ctx context.Context, devices []*ledger.Device) error {
	args := m.Called(ctx, devices)
	return args.Error(0)
}

func (m *MockDeviceRepository) SaveWithLock(ctx context.Context, device *ledger.Device) error {
	args := m.Called(ctx, device)
	return args.Error(0)
}

// MockShopRepository is a mock implementation of ShopRepository
type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Shop, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Shop), args.Error(1)
}

func (m *MockShopRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Shop, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Shop), args.Error(1)
}

func (m *MockShopRepository) Save(ctx context.Context, shop *partner.Shop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}

func (m *MockShopRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

// MockIncentiveRepository is a mock implementation of IncentiveRepository
type MockIncentiveRepository struct {
	mock.Mock
}

func (m *MockIncentiveRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*trade.Incentive, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Incentive), args.Error(1)
}

func (m *MockIncentiveRepository) FindByBrandAndPeriod(ctx context.Context, tenantID, brandID uuid.UUID, month, year int) (*trade.Incentive, error) {
	args := m.Called(ctx, tenantID, brandID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Incentive), args.Error(1)
}

func (m *MockIncentiveRepository) FindByPeriod(ctx context.Context, tenantID uuid.UUID, month, year int) ([]trade.Incentive, error) {
	args := m.Called(ctx, tenantID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Incentive), args.Error(1)
}

func (m *MockIncentiveRepository) SumByPeriodRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) (map[uuid.UUID]decimal.Decimal, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]decimal.Decimal), args.Error(1)
}

func (m *MockIncentiveRepository) Save(ctx context.Context, incentive *trade.Incentive) error {
	args := m.Called(ctx, incentive)
	return args.Error(0)
}

func (m *MockIncentiveRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
