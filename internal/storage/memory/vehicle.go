package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fleetdesk/fleetdesk-go/internal/core/domain"
	"github.com/fleetdesk/fleetdesk-go/internal/storage"
)

// VehicleStore provides in-memory storage for vehicles.
type VehicleStore struct {
	mu       sync.RWMutex
	vehicles map[int64]*domain.Vehicle
	nextID   int64
}

// NewVehicleStore creates an empty vehicle store.
func NewVehicleStore() *VehicleStore {
	return &VehicleStore{
		vehicles: make(map[int64]*domain.Vehicle),
		nextID:   1,
	}
}

// Get retrieves a vehicle by ID.
func (s *VehicleStore) Get(_ context.Context, id int64) (*domain.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vehicle, ok := s.vehicles[id]
	if !ok {
		return nil, domain.ErrVehicleNotFound
	}

	return vehicle.Clone(), nil
}

// Insert stores a new vehicle, assigning the next sequential ID.
// The assigned ID is written back to the given record.
func (s *VehicleStore) Insert(_ context.Context, vehicle *domain.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vehicle.ID = s.nextID
	s.nextID++

	s.vehicles[vehicle.ID] = vehicle.Clone()
	return nil
}

// Update replaces an existing vehicle.
func (s *VehicleStore) Update(_ context.Context, vehicle *domain.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.vehicles[vehicle.ID]; !exists {
		return domain.ErrVehicleNotFound
	}

	s.vehicles[vehicle.ID] = vehicle.Clone()
	return nil
}

// Delete removes a vehicle by ID.
func (s *VehicleStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.vehicles[id]; !exists {
		return domain.ErrVehicleNotFound
	}

	delete(s.vehicles, id)
	return nil
}

// List retrieves one page of vehicles ordered by ID.
func (s *VehicleStore) List(_ context.Context, page int) ([]*domain.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.vehicles))
	for id := range s.vehicles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	offset, limit := storage.PageBounds(page)
	if offset >= len(ids) {
		return []*domain.Vehicle{}, nil
	}
	if offset+limit > len(ids) {
		limit = len(ids) - offset
	}

	vehicles := make([]*domain.Vehicle, 0, limit)
	for _, id := range ids[offset : offset+limit] {
		vehicles = append(vehicles, s.vehicles[id].Clone())
	}

	return vehicles, nil
}

// Count returns the number of stored vehicles.
func (s *VehicleStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.vehicles), nil
}
