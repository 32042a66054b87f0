package trade

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// BillGroup is the read-side view of a grouped sale: all sale records
// sharing a bill number, with aggregate totals and the most restrictive
// payment status across the group.
type BillGroup struct {
	BillNumber string
	Records    []*SaleRecord
	TotalPrice decimal.Decimal
	TotalPaid  decimal.Decimal
	TotalDue   decimal.Decimal
	Status     PaymentStatus
}

// GroupByBillNumber groups sale records by bill number. A record without a
// bill number forms its own singleton group. Groups are ordered by the
// earliest sale date within each group, ties by bill number.
func GroupByBillNumber(records []*SaleRecord) []*BillGroup {
	byBill := make(map[string]*BillGroup)
	for _, record := range records {
		key := record.BillNumber
		if key == "" {
			key = record.ID.String()
		}
		group, ok := byBill[key]
		if !ok {
			group = &BillGroup{
				BillNumber: record.BillNumber,
				TotalPrice: decimal.Zero,
				TotalPaid:  decimal.Zero,
				TotalDue:   decimal.Zero,
				Status:     record.Status,
			}
			byBill[key] = group
		}
		group.Records = append(group.Records, record)
		group.TotalPrice = group.TotalPrice.Add(record.SalePrice)
		group.TotalPaid = group.TotalPaid.Add(record.PaidAmount)
		group.TotalDue = group.TotalDue.Add(record.DueAmount)
		group.Status = MoreRestrictive(group.Status, record.Status)
	}

	groups := make([]*BillGroup, 0, len(byBill))
	for _, group := range byBill {
		groups = append(groups, group)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i].earliestSoldAt(), groups[j].earliestSoldAt()
		if a.Equal(b) {
			return groups[i].BillNumber < groups[j].BillNumber
		}
		return a.Before(b)
	})
	return groups
}

func (g *BillGroup) earliestSoldAt() time.Time {
	earliest := g.Records[0].SoldAt
	for _, record := range g.Records[1:] {
		if record.SoldAt.Before(earliest) {
			earliest = record.SoldAt
		}
	}
	return earliest
}
