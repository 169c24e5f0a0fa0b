package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DomainError represents a business domain error with a structured error code.
// The last four digits of a code mirror the HTTP status family the error
// maps to at the edge (4040 -> 404, 5001 -> 500, and so on).
type DomainError struct {
	Code    string // Error code (e.g., "FD-VEH-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// Wrap wraps an error with this domain error as the cause.
func (e *DomainError) Wrap(cause error) *DomainError {
	return e.WithCause(cause)
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true // Only check if it's a DomainError
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Authentication Errors (AUTH)
// ============================================================================

var (
	// ErrInvalidCredentials indicates the email/password pair did not match
	// a known administrator. Deliberately unspecific: callers must not be
	// able to tell a missing account from a wrong password.
	ErrInvalidCredentials = NewDomainError("FD-AUTH-4010", "invalid credentials")

	// ErrTokenInvalid indicates the bearer token failed verification.
	// Covers missing, malformed, expired and badly-signed tokens alike.
	ErrTokenInvalid = NewDomainError("FD-AUTH-4011", "invalid token")

	// ErrRoleNotAllowed indicates the token is valid but its role is not
	// in the set required by the route.
	ErrRoleNotAllowed = NewDomainError("FD-AUTH-4030", "role not allowed")
)

// ============================================================================
// Administrator Errors (ADM)
// ============================================================================

var (
	// ErrAdministratorNotFound indicates the requested administrator was not found.
	ErrAdministratorNotFound = NewDomainError("FD-ADM-4040", "administrator not found")

	// ErrAdministratorConflict indicates the email is already registered.
	ErrAdministratorConflict = NewDomainError("FD-ADM-4090", "administrator email already registered")
)

// ============================================================================
// Vehicle Errors (VEH)
// ============================================================================

var (
	// ErrVehicleNotFound indicates the requested vehicle was not found.
	ErrVehicleNotFound = NewDomainError("FD-VEH-4040", "vehicle not found")
)

// ============================================================================
// Validation Errors (VAL)
// ============================================================================

var (
	// ErrValidation indicates a draft failed validation. The individual
	// violation messages travel in Details, joined by "; ".
	ErrValidation = NewDomainError("FD-VAL-4000", "validation failed")
)

// NewValidationError builds an ErrValidation carrying the given
// violation messages.
func NewValidationError(violations []string) *DomainError {
	return ErrValidation.WithDetails(strings.Join(violations, "; "))
}

// ValidationMessages extracts the individual violation messages from a
// validation error. Returns nil when err is not an ErrValidation.
func ValidationMessages(err error) []string {
	var de *DomainError
	if !errors.As(err, &de) || de.Code != ErrValidation.Code {
		return nil
	}
	if de.Details == "" {
		return nil
	}
	return strings.Split(de.Details, "; ")
}

// ============================================================================
// System Errors (SYS)
// ============================================================================

var (
	// ErrBadRequest indicates a malformed request.
	ErrBadRequest = NewDomainError("FD-SYS-4000", "bad request")

	// ErrRateLimited indicates too many requests.
	ErrRateLimited = NewDomainError("FD-SYS-4290", "too many requests")

	// ErrInternalServer indicates an internal server error.
	ErrInternalServer = NewDomainError("FD-SYS-5000", "internal server error")

	// ErrStorageError indicates a storage layer error.
	ErrStorageError = NewDomainError("FD-SYS-5001", "storage error")
)

// ============================================================================
// Configuration Errors (CFG)
// ============================================================================

var (
	// ErrMissingSigningKey indicates the token signing key is not
	// configured. Fatal at startup: the server must refuse to boot rather
	// than issue unsigned or empty tokens.
	ErrMissingSigningKey = NewDomainError("FD-CFG-5001", "token signing key not configured")
)
