package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fleetdesk/fleetdesk-go/internal/core/domain"
	"github.com/fleetdesk/fleetdesk-go/internal/storage"
)

// AdministratorStore provides SQL-backed storage for administrators.
type AdministratorStore struct {
	db *sql.DB
}

// NewAdministratorStore creates an administrator store over the given pool.
func NewAdministratorStore(db *sql.DB) *AdministratorStore {
	return &AdministratorStore{db: db}
}

// Get retrieves an administrator by ID.
func (s *AdministratorStore) Get(ctx context.Context, id int64) (*domain.Administrator, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, email, password, role FROM administrators WHERE id = ?`, id)
	return scanAdministrator(row)
}

// GetByEmail retrieves an administrator by email (case-insensitive).
func (s *AdministratorStore) GetByEmail(ctx context.Context, email string) (*domain.Administrator, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, email, password, role FROM administrators WHERE lower(email) = lower(?)`,
		strings.TrimSpace(email))
	return scanAdministrator(row)
}

// Insert stores a new administrator. The assigned ID is written back to
// the given record.
func (s *AdministratorStore) Insert(ctx context.Context, admin *domain.Administrator) error {
	var count int
	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM administrators WHERE lower(email) = lower(?)`, admin.Email)
	if err := row.Scan(&count); err != nil {
		return domain.ErrStorageError.WithDetails("check administrator email").WithCause(err)
	}
	if count > 0 {
		return domain.ErrAdministratorConflict
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO administrators (email, password, role) VALUES (?, ?, ?)`,
		admin.Email, admin.Password, string(admin.Role))
	if err != nil {
		return domain.ErrStorageError.WithDetails("insert administrator").WithCause(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.ErrStorageError.WithDetails("read administrator id").WithCause(err)
	}
	admin.ID = id
	return nil
}

// List retrieves one page of administrators ordered by ID.
func (s *AdministratorStore) List(ctx context.Context, page int) ([]*domain.Administrator, error) {
	offset, limit := storage.PageBounds(page)
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, email, password, role FROM administrators ORDER BY id LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, domain.ErrStorageError.WithDetails("list administrators").WithCause(err)
	}
	defer rows.Close()

	admins := make([]*domain.Administrator, 0, limit)
	for rows.Next() {
		var a domain.Administrator
		var role string
		if err := rows.Scan(&a.ID, &a.Email, &a.Password, &role); err != nil {
			return nil, domain.ErrStorageError.WithDetails("scan administrator").WithCause(err)
		}
		a.Role = domain.Role(role)
		admins = append(admins, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrStorageError.WithDetails("iterate administrators").WithCause(err)
	}

	return admins, nil
}

func scanAdministrator(row *sql.Row) (*domain.Administrator, error) {
	var a domain.Administrator
	var role string
	if err := row.Scan(&a.ID, &a.Email, &a.Password, &role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAdministratorNotFound
		}
		return nil, domain.ErrStorageError.WithDetails("scan administrator").WithCause(err)
	}
	a.Role = domain.Role(role)
	return &a, nil
}
