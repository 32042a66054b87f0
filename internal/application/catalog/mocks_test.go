package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mobiledger/backend/internal/domain/catalog"
	"github.com/mobiledger/backend/internal/domain/shared"
)

// MockBrandRepository is a mock implementation of catalog.BrandRepository
type MockBrandRepository struct {
	mock.Mock
}

func (m *MockBrandRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Brand, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Brand), args.Error(1)
}

func (m *MockBrandRepository) FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*catalog.Brand, error) {
	args := m.Called(ctx, tenantID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Brand), args.Error(1)
}

func (m *MockBrandRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]catalog.Brand, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Brand), args.Error(1)
}

func (m *MockBrandRepository) Save(ctx context.Context, brand *catalog.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *MockBrandRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

// MockModelRepository is a mock implementation of catalog.ModelRepository
type MockModelRepository struct {
	mock.Mock
}

func (m *MockModelRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Model, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Model), args.Error(1)
}

func (m *MockModelRepository) FindByBrand(ctx context.Context, tenantID, brandID uuid.UUID) ([]catalog.Model, error) {
	args := m.Called(ctx, tenantID, brandID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Model), args.Error(1)
}

func (m *MockModelRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]catalog.Model, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Model), args.Error(1)
}

func (m *MockModelRepository) Save(ctx context.Context, model *catalog.Model) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

func (m *MockModelRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
