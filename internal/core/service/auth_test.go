package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/fleetdesk/fleetdesk-go/internal/core/domain"
)

// mockAdministratorRepo is an in-test AdministratorRepository.
type mockAdministratorRepo struct {
	admins    map[string]*domain.Administrator // keyed by email
	byID      map[int64]*domain.Administrator
	insertErr error
	listErr   error
	lastPage  int
	nextID    int64
}

func newMockAdministratorRepo(admins ...*domain.Administrator) *mockAdministratorRepo {
	repo := &mockAdministratorRepo{
		admins: make(map[string]*domain.Administrator),
		byID:   make(map[int64]*domain.Administrator),
		nextID: 1,
	}
	for _, a := range admins {
		if a.ID == 0 {
			a.ID = repo.nextID
		}
		if a.ID >= repo.nextID {
			repo.nextID = a.ID + 1
		}
		repo.admins[a.Email] = a
		repo.byID[a.ID] = a
	}
	return repo
}

func (m *mockAdministratorRepo) Get(_ context.Context, id int64) (*domain.Administrator, error) {
	admin, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrAdministratorNotFound
	}
	return admin.Clone(), nil
}

func (m *mockAdministratorRepo) GetByEmail(_ context.Context, email string) (*domain.Administrator, error) {
	admin, ok := m.admins[email]
	if !ok {
		return nil, domain.ErrAdministratorNotFound
	}
	return admin.Clone(), nil
}

func (m *mockAdministratorRepo) Insert(_ context.Context, admin *domain.Administrator) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	if _, exists := m.admins[admin.Email]; exists {
		return domain.ErrAdministratorConflict
	}
	admin.ID = m.nextID
	m.nextID++
	m.admins[admin.Email] = admin.Clone()
	m.byID[admin.ID] = m.admins[admin.Email]
	return nil
}

func (m *mockAdministratorRepo) List(_ context.Context, page int) ([]*domain.Administrator, error) {
	m.lastPage = page
	if m.listErr != nil {
		return nil, m.listErr
	}
	admins := make([]*domain.Administrator, 0, len(m.byID))
	for id := int64(1); id < m.nextID; id++ {
		if a, ok := m.byID[id]; ok {
			admins = append(admins, a.Clone())
		}
	}
	return admins, nil
}

func TestAuthService_Login(t *testing.T) {
	repo := newMockAdministratorRepo(
		&domain.Administrator{ID: 1, Email: "adm@teste.com", Password: "teste", Role: domain.RoleAdmin},
		&domain.Administrator{ID: 2, Email: "editor@teste.com", Password: "teste", Role: domain.RoleEditor},
	)
	svc := NewAuthService(repo, nil)
	ctx := context.Background()

	t.Run("valid admin credentials", func(t *testing.T) {
		admin, err := svc.Login(ctx, &LoginRequest{Email: "adm@teste.com", Password: "teste"})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if admin.Role != domain.RoleAdmin {
			t.Errorf("Login() role = %q, want %q", admin.Role, domain.RoleAdmin)
		}
	})

	t.Run("valid editor credentials", func(t *testing.T) {
		admin, err := svc.Login(ctx, &LoginRequest{Email: "editor@teste.com", Password: "teste"})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if admin.Role != domain.RoleEditor {
			t.Errorf("Login() role = %q, want %q", admin.Role, domain.RoleEditor)
		}
	})

	// Every rejection is the same error, regardless of which check failed.
	rejections := []struct {
		name string
		req  LoginRequest
	}{
		{"wrong password", LoginRequest{Email: "adm@teste.com", Password: "wrong"}},
		{"unknown email", LoginRequest{Email: "ghost@teste.com", Password: "teste"}},
		{"empty email", LoginRequest{Email: "", Password: "teste"}},
		{"empty password", LoginRequest{Email: "adm@teste.com", Password: ""}},
		{"password of another account", LoginRequest{Email: "adm@teste.com", Password: "123456"}},
	}
	for _, tt := range rejections {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, &tt.req)
			if !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestAuthService_LoginBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("teste"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("GenerateFromPassword() error = %v", err)
	}
	repo := newMockAdministratorRepo(
		&domain.Administrator{ID: 1, Email: "adm@teste.com", Password: string(hash), Role: domain.RoleAdmin},
	)
	svc := NewAuthService(repo, BcryptComparer{})
	ctx := context.Background()

	if _, err := svc.Login(ctx, &LoginRequest{Email: "adm@teste.com", Password: "teste"}); err != nil {
		t.Errorf("Login() error = %v", err)
	}
	_, err = svc.Login(ctx, &LoginRequest{Email: "adm@teste.com", Password: "wrong"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("Login(wrong) error = %v, want ErrInvalidCredentials", err)
	}
}

func TestPlaintextComparer(t *testing.T) {
	c := PlaintextComparer{}
	if err := c.Compare("teste", "teste"); err != nil {
		t.Errorf("Compare(equal) error = %v", err)
	}
	if err := c.Compare("teste", "Teste"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("Compare(different) error = %v, want ErrInvalidCredentials", err)
	}
	if err := c.Compare("teste", "teste "); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("Compare(padding) error = %v, want ErrInvalidCredentials", err)
	}
}

func TestRateLimiterRegistry(t *testing.T) {
	registry := NewRateLimiterRegistry(1, 2)

	// Burst of 2 is allowed, the third request in the same instant is not.
	if !registry.Allow("10.0.0.1") {
		t.Error("first request should be allowed")
	}
	if !registry.Allow("10.0.0.1") {
		t.Error("second request should be allowed within burst")
	}
	if registry.Allow("10.0.0.1") {
		t.Error("third request should be throttled")
	}

	// A different client has its own bucket.
	if !registry.Allow("10.0.0.2") {
		t.Error("different client should not share the bucket")
	}

	registry.Clear()
	if !registry.Allow("10.0.0.1") {
		t.Error("Clear() should reset the buckets")
	}
}
