package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/fleetdesk/fleetdesk-go/internal/core/domain"
	"github.com/fleetdesk/fleetdesk-go/internal/storage"
)

// AdministratorStore provides in-memory storage for administrators.
type AdministratorStore struct {
	mu      sync.RWMutex
	byID    map[int64]*domain.Administrator
	byEmail map[string]int64
	nextID  int64
}

// NewAdministratorStore creates an administrator store seeded with the
// bootstrap administrator.
func NewAdministratorStore() *AdministratorStore {
	s := &AdministratorStore{
		byID:    make(map[int64]*domain.Administrator),
		byEmail: make(map[string]int64),
		nextID:  1,
	}

	// Seed outside any request path, so the direct insert is safe.
	seed := &domain.Administrator{
		Email:    storage.SeedAdministratorEmail,
		Password: storage.SeedAdministratorPassword,
		Role:     domain.RoleAdmin,
	}
	seed.ID = s.nextID
	s.byID[seed.ID] = seed
	s.byEmail[normalizeEmail(seed.Email)] = seed.ID
	s.nextID++

	return s
}

// Get retrieves an administrator by ID.
func (s *AdministratorStore) Get(_ context.Context, id int64) (*domain.Administrator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	admin, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrAdministratorNotFound
	}

	return admin.Clone(), nil
}

// GetByEmail retrieves an administrator by email (case-insensitive).
func (s *AdministratorStore) GetByEmail(_ context.Context, email string) (*domain.Administrator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, domain.ErrAdministratorNotFound
	}

	return s.byID[id].Clone(), nil
}

// Insert stores a new administrator, assigning the next sequential ID.
// The assigned ID is written back to the given record.
func (s *AdministratorStore) Insert(_ context.Context, admin *domain.Administrator) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalizeEmail(admin.Email)
	if _, exists := s.byEmail[key]; exists {
		return domain.ErrAdministratorConflict
	}

	admin.ID = s.nextID
	s.nextID++

	s.byID[admin.ID] = admin.Clone()
	s.byEmail[key] = admin.ID
	return nil
}

// List retrieves one page of administrators ordered by ID.
func (s *AdministratorStore) List(_ context.Context, page int) ([]*domain.Administrator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.byID))
	for id := range s.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	offset, limit := storage.PageBounds(page)
	if offset >= len(ids) {
		return []*domain.Administrator{}, nil
	}
	if offset+limit > len(ids) {
		limit = len(ids) - offset
	}

	admins := make([]*domain.Administrator, 0, limit)
	for _, id := range ids[offset : offset+limit] {
		admins = append(admins, s.byID[id].Clone())
	}

	return admins, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
