package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fleetdesk/fleetdesk-go/internal/core/domain"
	"github.com/fleetdesk/fleetdesk-go/internal/storage"
)

// VehicleStore provides SQL-backed storage for vehicles.
type VehicleStore struct {
	db *sql.DB
}

// NewVehicleStore creates a vehicle store over the given pool.
func NewVehicleStore(db *sql.DB) *VehicleStore {
	return &VehicleStore{db: db}
}

// Get retrieves a vehicle by ID.
func (s *VehicleStore) Get(ctx context.Context, id int64) (*domain.Vehicle, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, brand, year FROM vehicles WHERE id = ?`, id)

	var v domain.Vehicle
	if err := row.Scan(&v.ID, &v.Name, &v.Brand, &v.Year); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, domain.ErrStorageError.WithDetails("scan vehicle").WithCause(err)
	}
	return &v, nil
}

// Insert stores a new vehicle. The assigned ID is written back to the
// given record.
func (s *VehicleStore) Insert(ctx context.Context, vehicle *domain.Vehicle) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO vehicles (name, brand, year) VALUES (?, ?, ?)`,
		vehicle.Name, vehicle.Brand, vehicle.Year)
	if err != nil {
		return domain.ErrStorageError.WithDetails("insert vehicle").WithCause(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.ErrStorageError.WithDetails("read vehicle id").WithCause(err)
	}
	vehicle.ID = id
	return nil
}

// Update replaces an existing vehicle.
func (s *VehicleStore) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE vehicles SET name = ?, brand = ?, year = ? WHERE id = ?`,
		vehicle.Name, vehicle.Brand, vehicle.Year, vehicle.ID)
	if err != nil {
		return domain.ErrStorageError.WithDetails("update vehicle").WithCause(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.ErrStorageError.WithDetails("update vehicle").WithCause(err)
	}
	if affected == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

// Delete removes a vehicle by ID.
func (s *VehicleStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = ?`, id)
	if err != nil {
		return domain.ErrStorageError.WithDetails("delete vehicle").WithCause(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.ErrStorageError.WithDetails("delete vehicle").WithCause(err)
	}
	if affected == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

// List retrieves one page of vehicles ordered by ID.
func (s *VehicleStore) List(ctx context.Context, page int) ([]*domain.Vehicle, error) {
	offset, limit := storage.PageBounds(page)
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, brand, year FROM vehicles ORDER BY id LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, domain.ErrStorageError.WithDetails("list vehicles").WithCause(err)
	}
	defer rows.Close()

	vehicles := make([]*domain.Vehicle, 0, limit)
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Brand, &v.Year); err != nil {
			return nil, domain.ErrStorageError.WithDetails("scan vehicle").WithCause(err)
		}
		vehicles = append(vehicles, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrStorageError.WithDetails("iterate vehicles").WithCause(err)
	}

	return vehicles, nil
}

// Count returns the number of stored vehicles.
func (s *VehicleStore) Count(ctx context.Context) (int, error) {
	var count int
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vehicles`)
	if err := row.Scan(&count); err != nil {
		return 0, domain.ErrStorageError.WithDetails("count vehicles").WithCause(err)
	}
	return count, nil
}
