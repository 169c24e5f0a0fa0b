package sqlstore

import (
	"context"
	"database/sql"

	"github.com/fleetdesk/fleetdesk-go/internal/core/domain"
	"github.com/fleetdesk/fleetdesk-go/internal/storage"
)

// Schema executed on every Open. Idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS administrators (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	email    TEXT    NOT NULL UNIQUE,
	password TEXT    NOT NULL,
	role     TEXT    NOT NULL
);

CREATE TABLE IF NOT EXISTS vehicles (
	id    INTEGER PRIMARY KEY AUTOINCREMENT,
	name  TEXT    NOT NULL,
	brand TEXT    NOT NULL,
	year  INTEGER NOT NULL
);
`

// Store bundles the SQL-backed repositories sharing one connection pool.
type Store struct {
	db             *sql.DB
	Administrators *AdministratorStore
	Vehicles       *VehicleStore
}

// Open connects to the database, creates the schema and seeds the
// bootstrap administrator when none exists.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, domain.ErrStorageError.WithDetails("open database").WithCause(err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, domain.ErrStorageError.WithDetails("ping database").WithCause(err)
	}

	s := &Store{
		db:             db,
		Administrators: NewAdministratorStore(db),
		Vehicles:       NewVehicleStore(db),
	}

	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return domain.ErrStorageError.WithDetails("create schema").WithCause(err)
	}

	var count int
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM administrators`)
	if err := row.Scan(&count); err != nil {
		return domain.ErrStorageError.WithDetails("count administrators").WithCause(err)
	}
	if count > 0 {
		return nil
	}

	seed := &domain.Administrator{
		Email:    storage.SeedAdministratorEmail,
		Password: storage.SeedAdministratorPassword,
		Role:     domain.RoleAdmin,
	}
	return s.Administrators.Insert(ctx, seed)
}
