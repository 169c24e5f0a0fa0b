package service

import (
	"context"

	"github.com/fleetdesk/fleetdesk-go/internal/core/domain"
)

// AdministratorRepository defines the storage interface for administrators.
type AdministratorRepository interface {
	// Get retrieves an administrator by ID.
	Get(ctx context.Context, id int64) (*domain.Administrator, error)

	// GetByEmail retrieves an administrator by email (case-insensitive).
	GetByEmail(ctx context.Context, email string) (*domain.Administrator, error)

	// Insert stores a new administrator and assigns its ID.
	Insert(ctx context.Context, admin *domain.Administrator) error

	// List retrieves one page of administrators ordered by ID.
	List(ctx context.Context, page int) ([]*domain.Administrator, error)
}

// VehicleRepository defines the storage interface for vehicles.
type VehicleRepository interface {
	// Get retrieves a vehicle by ID.
	Get(ctx context.Context, id int64) (*domain.Vehicle, error)

	// Insert stores a new vehicle and assigns its ID.
	Insert(ctx context.Context, vehicle *domain.Vehicle) error

	// Update replaces an existing vehicle.
	Update(ctx context.Context, vehicle *domain.Vehicle) error

	// Delete removes a vehicle by ID.
	Delete(ctx context.Context, id int64) error

	// List retrieves one page of vehicles ordered by ID.
	List(ctx context.Context, page int) ([]*domain.Vehicle, error)

	// Count returns the number of stored vehicles.
	Count(ctx context.Context) (int, error)
}
