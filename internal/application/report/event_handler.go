package report

import (
	"context"

	"github.com/mobiledger/backend/internal/domain/ledger"
	"github.com/mobiledger/backend/internal/domain/shared"
)

// CacheInvalidator drops cached profit summaries when the device ledger
// changes. Sales and returns both move profit figures, so any cached
// month for the tenant may be stale after either event.
type CacheInvalidator struct {
	reportService *ReportService
}

// NewCacheInvalidator creates a new CacheInvalidator
func NewCacheInvalidator(reportService *ReportService) *CacheInvalidator {
	return &CacheInvalidator{reportService: reportService}
}

// EventTypes returns the ledger events that affect profit reports
func (h *CacheInvalidator) EventTypes() []string {
	return []string{ledger.EventTypeDeviceSold, ledger.EventTypeDeviceReturned}
}

// Handle invalidates the tenant's cached profit summaries
func (h *CacheInvalidator) Handle(ctx context.Context, event shared.DomainEvent) error {
	h.reportService.InvalidateProfitCache(ctx, event.TenantID())
	return nil
}

var _ shared.EventHandler = (*CacheInvalidator)(nil)
