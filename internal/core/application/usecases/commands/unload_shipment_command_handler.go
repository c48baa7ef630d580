package commands

import (
	"context"
	"fmt"

	"parceltrack/internal/core/domain/model/tracking"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// UnloadShipmentCommandHandler takes a parcel off a vehicle and writes the
// vehicle-transit audit entry.
type UnloadShipmentCommandHandler struct {
	shipments ports.ShipmentRepository
	vehicles  ports.VehicleRegistry
	ledger    ports.TrackingLedger
}

// NewUnloadShipmentCommandHandler creates a handler for vehicle unloading.
func NewUnloadShipmentCommandHandler(
	shipments ports.ShipmentRepository,
	vehicles ports.VehicleRegistry,
	ledger ports.TrackingLedger,
) UnloadShipmentCommandHandler {
	return UnloadShipmentCommandHandler{
		shipments: shipments,
		vehicles:  vehicles,
		ledger:    ledger,
	}
}

// Handle processes the unloading command.
func (h *UnloadShipmentCommandHandler) Handle(ctx context.Context, cmd UnloadShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.shipments.Get(ctx, cmd.TrackingID())
	if err != nil {
		return err
	}

	veh, err := h.vehicles.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}
	if veh == nil {
		return errs.NewObjectNotFoundError("vehicle", cmd.VehicleID())
	}

	veh.RemoveLoad(aggregate.WeightKg())

	location := cmd.Location()
	if location == "" {
		location = fmt.Sprintf("Vehicle %s", veh.ID())
	}

	h.ledger.Append(ctx, tracking.EventInput{
		TrackingID:  aggregate.TrackingID(),
		Location:    location,
		StatusLabel: UnloadedFromVehicleLabel,
		Actor:       cmd.Actor().Username(),
		VehicleID:   veh.ID(),
		Kind:        tracking.KindVehicleTransit,
	})
	return nil
}
