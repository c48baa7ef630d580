package identity

// statusPermissions maps each role to the status labels it may apply to a
// shipment. The table is the single authority for transition permissions;
// there is no per-status subclassing or transition graph. Admin is handled
// separately and is allowed everything, including labels not listed here.
//
// A role absent from the table is granted nothing.
func statusPermissions() map[Role][]string {
	return map[Role][]string{
		RoleCustomerService: {
			"Shipment Created",
		},
		RoleWarehouse: {
			"In Transit",
			"In Transit - Sorting",
			"Out for Delivery",
		},
		RoleDriver: {
			"Picked Up",
			"Out for Delivery",
			"Delivered",
		},
	}
}

// roleMaySetStatus consults the permission table. Admin is granted every
// status unconditionally.
func roleMaySetStatus(role Role, statusLabel string) bool {
	if role == RoleAdmin {
		return true
	}
	for _, allowed := range statusPermissions()[role] {
		if allowed == statusLabel {
			return true
		}
	}
	return false
}

// AllowedStatuses returns the labels a role may apply, nil for admin
// (which may apply anything) and for unknown roles (which may apply nothing);
// use RoleMaySetStatus for an authoritative answer.
func AllowedStatuses(role Role) []string {
	labels := statusPermissions()[role]
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}

// RoleMaySetStatus reports whether the role may apply the given status label.
func RoleMaySetStatus(role Role, statusLabel string) bool {
	return roleMaySetStatus(role, statusLabel)
}
