package trade

import "github.com/shopspring/decimal"

// PaymentStatus represents how much of a record's total has been settled.
// It is always derived from the paid/due balances, never set directly;
// storing it is a query convenience only.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING" // nothing paid
	PaymentStatusPartial PaymentStatus = "PARTIAL" // 0 < paid < total
	PaymentStatusPaid    PaymentStatus = "PAID"    // due = 0
)

// IsValid checks if the status is a valid PaymentStatus
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPartial, PaymentStatusPaid:
		return true
	}
	return false
}

// String returns the string representation of PaymentStatus
func (s PaymentStatus) String() string {
	return string(s)
}

// CanApplyPayment returns true if further payments can be applied
func (s PaymentStatus) CanApplyPayment() bool {
	return s == PaymentStatusPending || s == PaymentStatusPartial
}

// restrictiveness orders statuses for group aggregation:
// PENDING > PARTIAL > PAID.
func (s PaymentStatus) restrictiveness() int {
	switch s {
	case PaymentStatusPending:
		return 2
	case PaymentStatusPartial:
		return 1
	default:
		return 0
	}
}

// MoreRestrictive returns the more restrictive of two statuses
func MoreRestrictive(a, b PaymentStatus) PaymentStatus {
	if a.restrictiveness() >= b.restrictiveness() {
		return a
	}
	return b
}

// DerivePaymentStatus computes the status from balances. A zero total is
// considered fully paid.
func DerivePaymentStatus(paid, total decimal.Decimal) PaymentStatus {
	if paid.GreaterThanOrEqual(total) {
		return PaymentStatusPaid
	}
	if paid.GreaterThan(decimal.Zero) {
		return PaymentStatusPartial
	}
	return PaymentStatusPending
}
