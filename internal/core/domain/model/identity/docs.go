// Package identity models the people operating the system: users with roles,
// password verification with a five-strike lockout, and the role-based
// permission table that gates shipment status transitions.
//
// The permission table is data, not behavior: each role maps to the set of
// status labels it may apply, with admin granted everything. Roles are
// immutable after construction.
//
// Callers are represented as an Actor, which is either an authenticated User
// or the anonymous public-query capability. Anonymous actors can read
// tracking history but can never mutate anything.
package identity
