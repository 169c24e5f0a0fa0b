package service

import (
	"context"

	"github.com/fleetdesk/fleetdesk-go/internal/core/domain"
	"github.com/fleetdesk/fleetdesk-go/internal/storage"
)

// VehicleService handles vehicle management.
type VehicleService struct {
	repo VehicleRepository
}

// NewVehicleService creates a new VehicleService.
func NewVehicleService(repo VehicleRepository) *VehicleService {
	return &VehicleService{repo: repo}
}

// Create validates the draft and stores a new vehicle.
func (s *VehicleService) Create(ctx context.Context, draft domain.VehicleDraft) (*domain.Vehicle, error) {
	if violations := domain.ValidateVehicleDraft(draft); len(violations) > 0 {
		return nil, domain.NewValidationError(violations)
	}

	vehicle := &domain.Vehicle{
		Name:  draft.Name,
		Brand: draft.Brand,
		Year:  draft.Year,
	}
	if err := s.repo.Insert(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// Get retrieves a vehicle by ID.
func (s *VehicleService) Get(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return s.repo.Get(ctx, id)
}

// List retrieves one page of vehicles. A nil page means the first page.
func (s *VehicleService) List(ctx context.Context, page *int) ([]*domain.Vehicle, error) {
	return s.repo.List(ctx, storage.NormalizePage(page))
}

// Update validates the draft and fully replaces the vehicle with the
// given ID. The existing record is checked first so an update of a
// missing vehicle reports not-found before any validation side effects.
func (s *VehicleService) Update(ctx context.Context, id int64, draft domain.VehicleDraft) (*domain.Vehicle, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}

	if violations := domain.ValidateVehicleDraft(draft); len(violations) > 0 {
		return nil, domain.NewValidationError(violations)
	}

	vehicle := &domain.Vehicle{
		ID:    id,
		Name:  draft.Name,
		Brand: draft.Brand,
		Year:  draft.Year,
	}
	if err := s.repo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// Delete removes a vehicle by ID.
func (s *VehicleService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Count returns the number of stored vehicles.
func (s *VehicleService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
