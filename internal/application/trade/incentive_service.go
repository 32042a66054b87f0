package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/mobiledger/backend/internal/domain/trade"
)

// IncentiveService manages per-brand monthly incentive amounts
type IncentiveService struct {
	incentiveRepo trade.IncentiveRepository
}

// NewIncentiveService creates a new IncentiveService
func NewIncentiveService(incentiveRepo trade.IncentiveRepository) *IncentiveService {
	return &IncentiveService{incentiveRepo: incentiveRepo}
}

// Upsert sets the incentive amount for a brand and month, replacing any
// existing entry for the same period
func (s *IncentiveService) Upsert(ctx context.Context, tenantID uuid.UUID, req UpsertIncentiveRequest) (*IncentiveResponse, error) {
	existing, err := s.incentiveRepo.FindByBrandAndPeriod(ctx, tenantID, req.BrandID, req.Month, req.Year)
	if err != nil && !shared.IsNotFound(err) {
		return nil, err
	}

	if existing != nil {
		if err := existing.UpdateAmount(req.Amount); err != nil {
			return nil, err
		}
		if err := s.incentiveRepo.Save(ctx, existing); err != nil {
			return nil, err
		}
		response := ToIncentiveResponse(existing)
		return &response, nil
	}

	incentive, err := trade.NewIncentive(tenantID, req.BrandID, req.Month, req.Year, req.Amount)
	if err != nil {
		return nil, err
	}
	if err := s.incentiveRepo.Save(ctx, incentive); err != nil {
		return nil, err
	}
	response := ToIncentiveResponse(incentive)
	return &response, nil
}

// ListByPeriod lists incentives for a month across brands
func (s *IncentiveService) ListByPeriod(ctx context.Context, tenantID uuid.UUID, month, year int) ([]IncentiveResponse, error) {
	incentives, err := s.incentiveRepo.FindByPeriod(ctx, tenantID, month, year)
	if err != nil {
		return nil, err
	}
	responses := make([]IncentiveResponse, len(incentives))
	for i := range incentives {
		responses[i] = ToIncentiveResponse(&incentives[i])
	}
	return responses, nil
}

// Delete removes an incentive entry
func (s *IncentiveService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.incentiveRepo.Delete(ctx, tenantID, id)
}
