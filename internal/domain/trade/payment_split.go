package trade

import (
	"github.com/shopspring/decimal"
)

// ProportionalSplit divides a total paid amount across line prices in
// proportion to each price. Shares are rounded to 2 decimal places, each
// share stays within [0, price], and the rounding residual is spread over
// lines with remaining headroom starting from the last line, so the
// shares always sum exactly to the total. When all prices are zero the
// total is assigned to the last line.
func ProportionalSplit(total decimal.Decimal, prices []decimal.Decimal) []decimal.Decimal {
	shares := make([]decimal.Decimal, len(prices))
	if len(prices) == 0 {
		return shares
	}

	sum := decimal.Zero
	for _, price := range prices {
		sum = sum.Add(price)
	}
	if sum.IsZero() {
		for i := range shares {
			shares[i] = decimal.Zero
		}
		shares[len(shares)-1] = total
		return shares
	}

	allocated := decimal.Zero
	for i, price := range prices {
		share := total.Mul(price).Div(sum).Round(2)
		if share.GreaterThan(price) {
			share = price
		}
		shares[i] = share
		allocated = allocated.Add(share)
	}

	residual := total.Sub(allocated)
	for i := len(shares) - 1; i >= 0 && !residual.IsZero(); i-- {
		if residual.IsPositive() {
			headroom := prices[i].Sub(shares[i])
			if headroom.IsPositive() {
				step := decimal.Min(residual, headroom)
				shares[i] = shares[i].Add(step)
				residual = residual.Sub(step)
			}
		} else if shares[i].IsPositive() {
			step := decimal.Min(residual.Neg(), shares[i])
			shares[i] = shares[i].Sub(step)
			residual = residual.Add(step)
		}
	}
	return shares
}
