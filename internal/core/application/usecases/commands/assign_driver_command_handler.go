package commands

import (
	"context"

	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// AssignDriverCommandHandler handles driver assignments to fleet vehicles.
type AssignDriverCommandHandler struct {
	vehicles ports.VehicleRegistry
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(vehicles ports.VehicleRegistry) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{vehicles: vehicles}
}

// Handle processes the driver assignment command.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	veh, err := h.vehicles.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}
	if veh == nil {
		return errs.NewObjectNotFoundError("vehicle", cmd.VehicleID())
	}

	return veh.AssignDriver(cmd.Driver())
}
