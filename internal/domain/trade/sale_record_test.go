package trade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSaleParams() NewSaleRecordParams {
	return NewSaleRecordParams{
		ModelID:       uuid.New(),
		IMEI:          "356938035643801",
		SalePrice:     decimal.NewFromInt(25000),
		PurchasePrice: decimal.NewFromInt(20000),
		Condition:     ConditionNew,
		CustomerType:  CustomerTypeIndividual,
		CustomerName:  "Walk-in",
		BillNumber:    "BILL-20260830-0001",
		PaidAmount:    decimal.NewFromInt(25000),
	}
}

func TestNewSaleRecord(t *testing.T) {
	tenantID := uuid.New()

	t.Run("computes profit once at creation", func(t *testing.T) {
		params := newTestSaleParams()
		record, err := NewSaleRecord(tenantID, params)
		require.NoError(t, err)

		assert.Equal(t, decimal.NewFromInt(5000).String(), record.Profit.String())
		assert.Equal(t, PaymentStatusPaid, record.Status)
		assert.True(t, record.BalanceConsistent())
		assert.Len(t, record.GetDomainEvents(), 1)
	})

	t.Run("negative profit on a loss sale is kept as-is", func(t *testing.T) {
		params := newTestSaleParams()
		params.SalePrice = decimal.NewFromInt(18000)
		params.PaidAmount = decimal.NewFromInt(18000)
		record, err := NewSaleRecord(tenantID, params)
		require.NoError(t, err)
		assert.Equal(t, decimal.NewFromInt(-2000).String(), record.Profit.String())
	})

	t.Run("shop sale on credit starts pending", func(t *testing.T) {
		shopID := uuid.New()
		params := newTestSaleParams()
		params.CustomerType = CustomerTypeShop
		params.ShopID = &shopID
		params.CustomerName = ""
		params.PaidAmount = decimal.Zero

		record, err := NewSaleRecord(tenantID, params)
		require.NoError(t, err)
		assert.Equal(t, PaymentStatusPending, record.Status)
		assert.Equal(t, record.SalePrice.String(), record.DueAmount.String())
	})

	t.Run("shop sale requires a shop reference", func(t *testing.T) {
		params := newTestSaleParams()
		params.CustomerType = CustomerTypeShop
		params.ShopID = nil
		_, err := NewSaleRecord(tenantID, params)
		assert.Error(t, err)
	})

	t.Run("individual sale cannot reference a shop", func(t *testing.T) {
		shopID := uuid.New()
		params := newTestSaleParams()
		params.ShopID = &shopID
		_, err := NewSaleRecord(tenantID, params)
		assert.Error(t, err)
	})

	t.Run("rejects paid amount over the sale price", func(t *testing.T) {
		params := newTestSaleParams()
		params.PaidAmount = params.SalePrice.Add(decimal.NewFromInt(1))
		_, err := NewSaleRecord(tenantID, params)
		assert.Error(t, err)
	})

	t.Run("rejects blank IMEI", func(t *testing.T) {
		params := newTestSaleParams()
		params.IMEI = "   "
		_, err := NewSaleRecord(tenantID, params)
		assert.Error(t, err)
	})
}

func TestSaleRecordApplyPayment(t *testing.T) {
	tenantID := uuid.New()
	shopID := uuid.New()

	newCreditSale := func(t *testing.T, price, paid decimal.Decimal) *SaleRecord {
		t.Helper()
		params := newTestSaleParams()
		params.CustomerType = CustomerTypeShop
		params.ShopID = &shopID
		params.SalePrice = price
		params.PurchasePrice = price
		params.PaidAmount = paid
		record, err := NewSaleRecord(tenantID, params)
		require.NoError(t, err)
		return record
	}

	t.Run("partial settlement", func(t *testing.T) {
		record := newCreditSale(t, decimal.NewFromInt(30000), decimal.Zero)
		profitBefore := record.Profit

		applied, err := record.ApplyPayment(decimal.NewFromInt(12000))
		require.NoError(t, err)

		assert.Equal(t, decimal.NewFromInt(12000).String(), applied.String())
		assert.Equal(t, PaymentStatusPartial, record.Status)
		assert.True(t, record.BalanceConsistent())
		assert.Equal(t, profitBefore.String(), record.Profit.String())
	})

	t.Run("overpayment is capped at the outstanding due", func(t *testing.T) {
		record := newCreditSale(t, decimal.NewFromInt(30000), decimal.NewFromInt(25000))

		applied, err := record.ApplyPayment(decimal.NewFromInt(50000))
		require.NoError(t, err)
		assert.Equal(t, decimal.NewFromInt(5000).String(), applied.String())
		assert.Equal(t, PaymentStatusPaid, record.Status)
		assert.True(t, record.BalanceConsistent())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		record := newCreditSale(t, decimal.NewFromInt(30000), decimal.Zero)
		_, err := record.ApplyPayment(decimal.Zero)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}
