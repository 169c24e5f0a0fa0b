package service

import (
	"context"
	"crypto/subtle"
	"sync"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/fleetdesk/fleetdesk-go/internal/core/domain"
)

// CredentialComparer checks a provided password against the stored
// credential. Implementations must not reveal how far the comparison got.
type CredentialComparer interface {
	Compare(stored, provided string) error
}

// PlaintextComparer compares credentials stored as plain text.
type PlaintextComparer struct{}

// Compare performs a constant-time equality check.
func (PlaintextComparer) Compare(stored, provided string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(provided)) != 1 {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// BcryptComparer compares credentials stored as bcrypt hashes.
type BcryptComparer struct{}

// Compare checks the provided password against the stored hash.
func (BcryptComparer) Compare(stored, provided string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(provided)); err != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// AuthService authenticates administrators by email and password.
type AuthService struct {
	repo     AdministratorRepository
	comparer CredentialComparer
}

// NewAuthService creates a new AuthService. A nil comparer defaults to
// PlaintextComparer.
func NewAuthService(repo AdministratorRepository, comparer CredentialComparer) *AuthService {
	if comparer == nil {
		comparer = PlaintextComparer{}
	}
	return &AuthService{
		repo:     repo,
		comparer: comparer,
	}
}

// LoginRequest contains the submitted credentials.
type LoginRequest struct {
	Email    string
	Password string
}

// Login authenticates the credentials and returns the matching
// administrator. Every failure, whether the account does not exist or
// the password is wrong, returns ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*domain.Administrator, error) {
	if req.Email == "" || req.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	admin, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.comparer.Compare(admin.Password, req.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return admin, nil
}

// ============================================================================
// RateLimiterRegistry - per-client request throttling
// ============================================================================

// RateLimiterRegistry manages one token-bucket limiter per client key
// (typically the remote IP).
type RateLimiterRegistry struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewRateLimiterRegistry creates a registry handing out limiters with
// the given sustained rate (requests per second) and burst.
func NewRateLimiterRegistry(perSecond float64, burst int) *RateLimiterRegistry {
	return &RateLimiterRegistry{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(perSecond),
		burst:    burst,
	}
}

// Allow reports whether the client identified by key may proceed.
func (r *RateLimiterRegistry) Allow(key string) bool {
	return r.getOrCreate(key).Allow()
}

func (r *RateLimiterRegistry) getOrCreate(key string) *rate.Limiter {
	r.mu.RLock()
	limiter, exists := r.limiters[key]
	r.mu.RUnlock()

	if exists {
		return limiter
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := r.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(r.limit, r.burst)
	r.limiters[key] = limiter
	return limiter
}

// Clear removes all limiters.
func (r *RateLimiterRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.limiters = make(map[string]*rate.Limiter)
}
