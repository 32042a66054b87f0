package payment

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFOAllocationStrategy(t *testing.T) {
	strategy := NewFIFOAllocationStrategy()
	now := time.Now()

	target := func(number string, outstanding int64, recordedAt time.Time) AllocationTarget {
		return AllocationTarget{
			ID:          uuid.New(),
			Number:      number,
			Outstanding: decimal.NewFromInt(outstanding),
			RecordedAt:  recordedAt,
			CreatedAt:   recordedAt,
		}
	}

	t.Run("settles oldest records first and stops mid-record", func(t *testing.T) {
		targets := []AllocationTarget{
			target("BILL-0001", 100, now.Add(-72*time.Hour)),
			target("BILL-0002", 200, now.Add(-48*time.Hour)),
			target("BILL-0003", 300, now.Add(-24*time.Hour)),
		}

		outcome, err := strategy.Allocate(decimal.NewFromInt(250), targets)
		require.NoError(t, err)

		require.Len(t, outcome.Allocations, 2)
		assert.Equal(t, "BILL-0001", outcome.Allocations[0].Number)
		assert.Equal(t, "100", outcome.Allocations[0].Amount.String())
		assert.Equal(t, "BILL-0002", outcome.Allocations[1].Number)
		assert.Equal(t, "150", outcome.Allocations[1].Amount.String())

		assert.Equal(t, "250", outcome.TotalAllocated.String())
		assert.True(t, outcome.RemainingAmount.IsZero())
		assert.Equal(t, []uuid.UUID{targets[0].ID}, outcome.FullySettled)
		assert.Equal(t, []uuid.UUID{targets[1].ID}, outcome.PartiallyPaid)
	})

	t.Run("same-day records keep insertion order", func(t *testing.T) {
		day := now.Truncate(24 * time.Hour)
		first := target("BILL-0004", 100, day)
		second := target("BILL-0005", 100, day)
		second.CreatedAt = day.Add(time.Minute)

		outcome, err := strategy.Allocate(decimal.NewFromInt(100), []AllocationTarget{second, first})
		require.NoError(t, err)
		require.Len(t, outcome.Allocations, 1)
		assert.Equal(t, "BILL-0004", outcome.Allocations[0].Number)
	})

	t.Run("overpayment leaves a remainder", func(t *testing.T) {
		targets := []AllocationTarget{target("BILL-0006", 400, now)}

		outcome, err := strategy.Allocate(decimal.NewFromInt(1000), targets)
		require.NoError(t, err)
		assert.Equal(t, "400", outcome.TotalAllocated.String())
		assert.Equal(t, "600", outcome.RemainingAmount.String())
	})

	t.Run("no targets allocates nothing", func(t *testing.T) {
		outcome, err := strategy.Allocate(decimal.NewFromInt(500), nil)
		require.NoError(t, err)
		assert.Empty(t, outcome.Allocations)
		assert.Equal(t, "500", outcome.RemainingAmount.String())
	})

	t.Run("zero-outstanding targets are skipped", func(t *testing.T) {
		settled := target("BILL-0007", 0, now.Add(-time.Hour))
		open := target("BILL-0008", 50, now)

		outcome, err := strategy.Allocate(decimal.NewFromInt(50), []AllocationTarget{settled, open})
		require.NoError(t, err)
		require.Len(t, outcome.Allocations, 1)
		assert.Equal(t, "BILL-0008", outcome.Allocations[0].Number)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		_, err := strategy.Allocate(decimal.Zero, nil)
		assert.Error(t, err)
		_, err = strategy.Allocate(decimal.NewFromInt(-1), nil)
		assert.Error(t, err)
	})
}
