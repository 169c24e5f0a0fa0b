package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fleetdesk/fleetdesk-go/internal/core/domain"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = 24 * time.Hour

// Identity is the authenticated principal extracted from a verified token.
type Identity struct {
	Email string
	Role  domain.Role
}

// TokenService issues and verifies HMAC-SHA-256 signed JWTs.
//
// The signing key is immutable after construction: tokens issued before
// a restart with a new key simply fail verification.
type TokenService struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewTokenService creates a TokenService. An empty signing key is a
// configuration error: the caller must treat it as fatal rather than
// fall back to unsigned tokens. A non-positive ttl selects
// DefaultTokenTTL.
func NewTokenService(signingKey string, ttl time.Duration) (*TokenService, error) {
	if signingKey == "" {
		return nil, domain.ErrMissingSigningKey
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &TokenService{
		key: []byte(signingKey),
		ttl: ttl,
		now: time.Now,
	}, nil
}

// Issue signs a token for the given administrator. The role travels
// both as the application claim "profile" and as the authorization
// claim "role"; Verify reads the latter.
func (s *TokenService) Issue(admin *domain.Administrator) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":     admin.Email,
		"email":   admin.Email,
		"profile": string(admin.Role),
		"role":    string(admin.Role),
		"iat":     jwt.NewNumericDate(now),
		"exp":     jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", domain.ErrInternalServer.WithDetails("sign token").WithCause(err)
	}
	return signed, nil
}

// Verify checks the signature, expiry and claims of a token and returns
// the identity it carries. Every failure mode collapses to
// ErrTokenInvalid so a caller cannot learn which check rejected the
// token.
func (s *TokenService) Verify(tokenString string) (*Identity, error) {
	parsed, err := jwt.Parse(tokenString,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return s.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if email == "" || !domain.IsValidRole(role) {
		return nil, domain.ErrTokenInvalid
	}

	return &Identity{
		Email: email,
		Role:  domain.Role(role),
	}, nil
}

// Authorize verifies the token and checks its role against the required
// set. An empty required set admits any verified identity.
func (s *TokenService) Authorize(tokenString string, required ...domain.Role) (*Identity, error) {
	identity, err := s.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	if len(required) == 0 {
		return identity, nil
	}
	for _, role := range required {
		if identity.Role == role {
			return identity, nil
		}
	}

	return nil, domain.ErrRoleNotAllowed
}
