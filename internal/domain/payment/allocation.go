package payment

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AllocationTarget is one outstanding record a payment may settle
type AllocationTarget struct {
	ID          uuid.UUID       // record ID
	Number      string          // bill number, for the audit line
	Outstanding decimal.Decimal // due amount still open
	RecordedAt  time.Time       // sale/purchase date, FIFO primary key
	CreatedAt   time.Time       // insertion time, FIFO tiebreaker
}

// AllocationLine is one settled slice of a payment, persisted as part of
// the payment's audit breakdown
type AllocationLine struct {
	TargetID uuid.UUID       `json:"target_id"`
	Number   string          `json:"number"`
	Amount   decimal.Decimal `json:"amount"`
}

// AllocationLines is the JSONB-stored list of allocation lines
type AllocationLines []AllocationLine

// Value implements driver.Valuer for JSONB storage
func (l AllocationLines) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for JSONB retrieval
func (l *AllocationLines) Scan(value interface{}) error {
	if value == nil {
		*l = AllocationLines{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("unsupported type for AllocationLines")
	}
	if len(bytes) == 0 {
		*l = AllocationLines{}
		return nil
	}
	return json.Unmarshal(bytes, l)
}

// AllocationOutcome is the complete result of running a strategy over a
// set of targets
type AllocationOutcome struct {
	Allocations     []AllocationLine
	TotalAllocated  decimal.Decimal
	RemainingAmount decimal.Decimal
	FullySettled    []uuid.UUID
	PartiallyPaid   []uuid.UUID
}

// Lines returns the allocation breakdown as a persistable list
func (o *AllocationOutcome) Lines() AllocationLines {
	return AllocationLines(o.Allocations)
}

// AllocationStrategy decides how an amount spreads across targets
type AllocationStrategy interface {
	Name() string
	Allocate(amount decimal.Decimal, targets []AllocationTarget) (*AllocationOutcome, error)
}

// FIFOAllocationStrategy settles the oldest outstanding records first:
// record date ascending, insertion order for same-day records. Each target
// absorbs up to its outstanding due; the leftover stays unallocated.
type FIFOAllocationStrategy struct{}

// NewFIFOAllocationStrategy creates a FIFO allocation strategy
func NewFIFOAllocationStrategy() *FIFOAllocationStrategy {
	return &FIFOAllocationStrategy{}
}

// Name returns the strategy name
func (s *FIFOAllocationStrategy) Name() string {
	return "fifo"
}

// Allocate spreads the amount across targets in FIFO order
func (s *FIFOAllocationStrategy) Allocate(amount decimal.Decimal, targets []AllocationTarget) (*AllocationOutcome, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Allocation amount must be positive")
	}

	sorted := make([]AllocationTarget, len(targets))
	copy(sorted, targets)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].RecordedAt.Equal(sorted[j].RecordedAt) {
			return sorted[i].RecordedAt.Before(sorted[j].RecordedAt)
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	outcome := &AllocationOutcome{
		Allocations:     make([]AllocationLine, 0, len(sorted)),
		TotalAllocated:  decimal.Zero,
		RemainingAmount: amount,
		FullySettled:    make([]uuid.UUID, 0),
		PartiallyPaid:   make([]uuid.UUID, 0),
	}

	for _, target := range sorted {
		if outcome.RemainingAmount.IsZero() {
			break
		}
		if target.Outstanding.LessThanOrEqual(decimal.Zero) {
			continue
		}

		alloc := decimal.Min(outcome.RemainingAmount, target.Outstanding)
		outcome.Allocations = append(outcome.Allocations, AllocationLine{
			TargetID: target.ID,
			Number:   target.Number,
			Amount:   alloc,
		})
		outcome.TotalAllocated = outcome.TotalAllocated.Add(alloc)
		outcome.RemainingAmount = outcome.RemainingAmount.Sub(alloc)

		if alloc.GreaterThanOrEqual(target.Outstanding) {
			outcome.FullySettled = append(outcome.FullySettled, target.ID)
		} else {
			outcome.PartiallyPaid = append(outcome.PartiallyPaid, target.ID)
		}
	}

	return outcome, nil
}
