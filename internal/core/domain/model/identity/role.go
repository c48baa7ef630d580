package identity

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// Role classifies a user for permission checks. Roles are immutable after
// user creation and must be one of the four known values.
type Role string

const (
	// RoleCustomerService handles intake: creating shipments and the
	// initial "Shipment Created" status.
	RoleCustomerService Role = "customer_service"

	// RoleWarehouse moves shipments through sorting and hands them over
	// for delivery.
	RoleWarehouse Role = "warehouse"

	// RoleDriver operates vehicles: pickup, out-for-delivery, delivery.
	RoleDriver Role = "driver"

	// RoleAdmin is granted every status transition unconditionally.
	RoleAdmin Role = "admin"
)

func validRoles() map[Role]bool {
	return map[Role]bool{
		RoleCustomerService: true,
		RoleWarehouse:       true,
		RoleDriver:          true,
		RoleAdmin:           true,
	}
}

// NewRole parses a role tag, rejecting anything outside the known set.
func NewRole(tag string) (Role, error) {
	role := Role(tag)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks the role against the known set.
func (r Role) Validate() error {
	if !validRoles()[r] {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
	}
	return nil
}

// String returns the role tag.
func (r Role) String() string {
	return string(r)
}
