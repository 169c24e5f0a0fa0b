package domain

import "strings"

// Role defines the permission level of an administrator account.
type Role string

const (
	// RoleAdmin has full access: administrator management plus every
	// vehicle operation.
	RoleAdmin Role = "Adm"

	// RoleEditor can create and read vehicles but cannot modify or
	// delete them, and has no access to administrator management.
	RoleEditor Role = "Editor"
)

// ValidRoles returns all valid roles.
func ValidRoles() []Role {
	return []Role{RoleAdmin, RoleEditor}
}

// IsValidRole checks if a string is a valid role.
func IsValidRole(r string) bool {
	switch Role(r) {
	case RoleAdmin, RoleEditor:
		return true
	}
	return false
}

// Administrator represents an operator account that can authenticate
// against the API. The password is a stored secret and never leaves the
// process in a response body.
type Administrator struct {
	// ID is the storage-assigned identifier, unique and sequential.
	ID int64 `json:"id"`

	// Email is the login identifier, unique among administrators.
	Email string `json:"email"`

	// Password is the stored credential (never serialized).
	Password string `json:"-"`

	// Role defines the permission level (Adm or Editor).
	Role Role `json:"role"`
}

// Clone creates a copy of the administrator.
func (a *Administrator) Clone() *Administrator {
	clone := *a
	return &clone
}

// AdministratorDraft is the unvalidated input for creating an
// administrator. A draft carries no identity: the ID is assigned by
// storage once the draft passes validation.
type AdministratorDraft struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Administrator field constraints.
const (
	MaxEmailLength    = 255
	MaxPasswordLength = 50
	MaxRoleLength     = 10
)

// ValidateAdministratorDraft checks a draft against the administrator
// field rules and returns every violation found, not just the first.
// An empty slice means the draft is valid.
func ValidateAdministratorDraft(d AdministratorDraft) []string {
	var violations []string

	if strings.TrimSpace(d.Email) == "" {
		violations = append(violations, "email must not be empty")
	} else if len(d.Email) > MaxEmailLength {
		violations = append(violations, "email exceeds 255 characters")
	}

	if d.Password == "" {
		violations = append(violations, "password must not be empty")
	} else if len(d.Password) > MaxPasswordLength {
		violations = append(violations, "password exceeds 50 characters")
	}

	if strings.TrimSpace(d.Role) == "" {
		violations = append(violations, "role must not be empty")
	} else if !IsValidRole(d.Role) {
		violations = append(violations, "role must be one of: Adm, Editor")
	}

	return violations
}
