// Package kernel contains shared value objects used across the domain model:
// entity identifiers (UUID) and shipment tracking identifiers (TrackingID).
//
// Kernel types are immutable, validated at construction, and safe for
// concurrent use. Aggregates in the identity, shipment, and tracking packages
// build on these types instead of raw strings so that invalid identifiers are
// caught at the boundary.
package kernel
