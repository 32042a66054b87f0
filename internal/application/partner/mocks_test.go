package partner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/mobiledger/backend/internal/domain/partner"
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/mobiledger/backend/internal/domain/trade"
)

// MockShopRepository is a mock implementation of partner.ShopRepository
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

// MockSupplierRepository is a mock implementation of partner.SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Supplier, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Supplier, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
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
