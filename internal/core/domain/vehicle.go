package domain

import (
	"fmt"
	"strings"
)

// MinVehicleYear is the oldest model year the fleet accepts.
const MinVehicleYear = 1950

// Vehicle represents a fleet vehicle.
type Vehicle struct {
	// ID is the storage-assigned identifier, unique and sequential.
	ID int64 `json:"id"`

	// Name is the model name (e.g., "Fiesta").
	Name string `json:"name"`

	// Brand is the manufacturer (e.g., "Ford").
	Brand string `json:"brand"`

	// Year is the model year, MinVehicleYear or later.
	Year int `json:"year"`
}

// Clone creates a copy of the vehicle.
func (v *Vehicle) Clone() *Vehicle {
	clone := *v
	return &clone
}

// VehicleDraft is the unvalidated input for creating or replacing a
// vehicle. The ID comes from storage (create) or the route (update),
// never from the draft itself.
type VehicleDraft struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}

// Vehicle field constraints.
const (
	MaxVehicleNameLength  = 150
	MaxVehicleBrandLength = 100
)

// ValidateVehicleDraft checks a draft against the vehicle field rules
// and returns every violation found, not just the first. An empty slice
// means the draft is valid.
func ValidateVehicleDraft(d VehicleDraft) []string {
	var violations []string

	if strings.TrimSpace(d.Name) == "" {
		violations = append(violations, "name must not be empty")
	} else if len(d.Name) > MaxVehicleNameLength {
		violations = append(violations, "name exceeds 150 characters")
	}

	if strings.TrimSpace(d.Brand) == "" {
		violations = append(violations, "brand must not be empty")
	} else if len(d.Brand) > MaxVehicleBrandLength {
		violations = append(violations, "brand exceeds 100 characters")
	}

	if d.Year < MinVehicleYear {
		violations = append(violations, fmt.Sprintf("year must be %d or later", MinVehicleYear))
	}

	return violations
}
