package services

import (
	"parceltrack/internal/core/domain/model/shipment"
)

// VehicleAction is the fleet-side effect a status transition implies.
type VehicleAction int

const (
	// ActionNone means the transition does not touch a vehicle.
	ActionNone VehicleAction = iota

	// ActionLoad means the parcel weight is added to the vehicle.
	ActionLoad

	// ActionUnload means the parcel weight is removed from the vehicle.
	ActionUnload
)

// TransitionPlanner decides which vehicle action a target status implies.
// The mapping is pure: handlers own the actual loading and unloading.
//
// Business rules:
//   - "Picked Up" and "Out for Delivery" put the parcel on the vehicle.
//   - "Delivered" takes it off.
//   - Every other label, including exception labels, leaves the vehicle
//     untouched.
type TransitionPlanner struct{}

// NewTransitionPlanner creates a new TransitionPlanner instance.
func NewTransitionPlanner() *TransitionPlanner {
	return &TransitionPlanner{}
}

// PlanVehicleAction maps a target status label to the implied vehicle action.
func (p *TransitionPlanner) PlanVehicleAction(statusLabel string) VehicleAction {
	switch statusLabel {
	case shipment.StatusPickedUp, shipment.StatusOutForDelivery:
		return ActionLoad
	case shipment.StatusDelivered:
		return ActionUnload
	}
	return ActionNone
}
