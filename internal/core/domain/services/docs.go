// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the parcel tracking system.
//
// The package includes:
//   - TransitionPlanner: A domain service deciding which vehicle action a
//     status transition implies
//
// Domain services hold business logic that spans aggregates and does not
// naturally belong to any single one of them.
package services
