package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/core/domain/model/tracking"
	"parceltrack/internal/core/domain/model/vehicle"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/telemetry"
)

// UpdateShipmentStatusCommandHandler executes the guarded status transition.
//
// Order of operations under the shipment's transition lock:
//  1. authorize the actor for the target label;
//  2. best-effort release of the currently held warehouse;
//  3. load onto the vehicle when the target label implies it;
//  4. unload from the vehicle on delivery;
//  5. reserve the destination warehouse;
//  6. commit the status cache (and eta when given);
//  7. append the vehicle-transit audit entry when step 3 or 4 moved weight;
//  8. append the ledger event.
//
// A capacity refusal in step 3 or 5 aborts the transition: the status cache
// keeps its old label and no ledger event is appended. A load already
// performed when step 5 fails is compensated by unloading.
type UpdateShipmentStatusCommandHandler struct {
	shipments  ports.ShipmentRepository
	warehouses ports.WarehouseRegistry
	vehicles   ports.VehicleRegistry
	ledger     ports.TrackingLedger
	planner    *services.TransitionPlanner
	metrics    *telemetry.Metrics
	log        *slog.Logger
}

// NewUpdateShipmentStatusCommandHandler creates a handler for status
// transitions.
func NewUpdateShipmentStatusCommandHandler(
	shipments ports.ShipmentRepository,
	warehouses ports.WarehouseRegistry,
	vehicles ports.VehicleRegistry,
	ledger ports.TrackingLedger,
	planner *services.TransitionPlanner,
	metrics *telemetry.Metrics,
	log *slog.Logger,
) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		shipments:  shipments,
		warehouses: warehouses,
		vehicles:   vehicles,
		ledger:     ledger,
		planner:    planner,
		metrics:    metrics,
		log:        log,
	}
}

// Handle processes the status transition command.
func (h *UpdateShipmentStatusCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanSetStatus(cmd.StatusLabel()) {
		return errs.NewUnauthorizedError(
			cmd.Actor().Username(),
			fmt.Sprintf("set status %q", cmd.StatusLabel()),
		)
	}

	aggregate, err := h.shipments.Get(ctx, cmd.TrackingID())
	if err != nil {
		return err
	}

	aggregate.LockTransition()
	defer aggregate.UnlockTransition()

	h.releaseHeldWarehouse(ctx, aggregate)

	veh, action, err := h.applyVehicleAction(ctx, cmd, aggregate)
	if err != nil {
		return err
	}

	if err := h.reserveDestination(ctx, cmd, aggregate, veh, action == services.ActionLoad); err != nil {
		return err
	}

	if err := aggregate.CommitStatus(cmd.StatusLabel()); err != nil {
		return err
	}
	if !cmd.ETA().IsZero() {
		aggregate.CommitETA(cmd.ETA())
	}

	h.appendVehicleTransit(ctx, cmd, aggregate, veh, action)

	h.ledger.Append(ctx, tracking.EventInput{
		TrackingID:    aggregate.TrackingID(),
		Location:      cmd.Location(),
		StatusLabel:   cmd.StatusLabel(),
		Actor:         cmd.Actor().Username(),
		VehicleID:     cmd.VehicleID(),
		WarehouseID:   aggregate.WarehouseID(),
		Kind:          eventKind(cmd),
		ETA:           aggregate.ETA(),
		ExceptionKind: cmd.ExceptionKind(),
	})

	h.metrics.ObserveStatusTransition(cmd.StatusLabel())
	return nil
}

// releaseHeldWarehouse frees the shipment's current warehouse slot. A
// registry miss is logged and skipped: a stale cache entry must not wedge
// the shipment in place.
func (h *UpdateShipmentStatusCommandHandler) releaseHeldWarehouse(ctx context.Context, aggregate *shipment.Shipment) {
	held := aggregate.WarehouseID()
	if held == "" {
		return
	}

	wh, err := h.warehouses.Get(ctx, held)
	if err != nil || wh == nil {
		h.log.Warn("held warehouse did not resolve, proceeding without release",
			"trackingId", aggregate.TrackingID().String(),
			"warehouseId", held)
	} else {
		wh.Remove(aggregate.TrackingID())
	}

	aggregate.ClearWarehouse()
}

// applyVehicleAction loads or unloads the parcel per the transition plan.
// Returns the resolved vehicle and the action that was performed.
func (h *UpdateShipmentStatusCommandHandler) applyVehicleAction(
	ctx context.Context,
	cmd UpdateShipmentStatusCommand,
	aggregate *shipment.Shipment,
) (*vehicle.Vehicle, services.VehicleAction, error) {
	if cmd.VehicleID() == "" {
		return nil, services.ActionNone, nil
	}

	veh, err := h.vehicles.Get(ctx, cmd.VehicleID())
	if err != nil {
		return nil, services.ActionNone, err
	}
	if veh == nil {
		return nil, services.ActionNone, errs.NewObjectNotFoundError("vehicle", cmd.VehicleID())
	}

	switch h.planner.PlanVehicleAction(cmd.StatusLabel()) {
	case services.ActionLoad:
		if err := veh.AddLoad(aggregate.WeightKg()); err != nil {
			if errors.Is(err, errs.ErrCapacityExceeded) {
				h.metrics.ObserveCapacityRejection("vehicle")
			}
			return nil, services.ActionNone, err
		}
		return veh, services.ActionLoad, nil

	case services.ActionUnload:
		veh.RemoveLoad(aggregate.WeightKg())
		return veh, services.ActionUnload, nil
	}

	return veh, services.ActionNone, nil
}

// appendVehicleTransit records the load or unload performed by this
// transition, so the weight mutation never goes unrecorded. Written only
// once the transition is past every abort point.
func (h *UpdateShipmentStatusCommandHandler) appendVehicleTransit(
	ctx context.Context,
	cmd UpdateShipmentStatusCommand,
	aggregate *shipment.Shipment,
	veh *vehicle.Vehicle,
	action services.VehicleAction,
) {
	if veh == nil || action == services.ActionNone {
		return
	}

	label := LoadedToVehicleLabel
	if action == services.ActionUnload {
		label = UnloadedFromVehicleLabel
	}

	h.ledger.Append(ctx, tracking.EventInput{
		TrackingID:  aggregate.TrackingID(),
		Location:    fmt.Sprintf("Vehicle %s", veh.ID()),
		StatusLabel: label,
		Actor:       cmd.Actor().Username(),
		VehicleID:   veh.ID(),
		Kind:        tracking.KindVehicleTransit,
	})
}

// reserveDestination moves the parcel into the destination warehouse. A
// refusal aborts the transition, undoing a load performed earlier in the
// same transition.
func (h *UpdateShipmentStatusCommandHandler) reserveDestination(
	ctx context.Context,
	cmd UpdateShipmentStatusCommand,
	aggregate *shipment.Shipment,
	veh *vehicle.Vehicle,
	loaded bool,
) error {
	destID := cmd.DestinationWarehouseID()
	if destID == "" {
		return nil
	}

	compensate := func() {
		if loaded && veh != nil {
			veh.RemoveLoad(aggregate.WeightKg())
		}
	}

	wh, err := h.warehouses.Get(ctx, destID)
	if err != nil {
		compensate()
		return err
	}
	if wh == nil {
		compensate()
		return errs.NewObjectNotFoundError("warehouse", destID)
	}

	if err := wh.Store(aggregate.TrackingID()); err != nil {
		if errors.Is(err, errs.ErrCapacityExceeded) {
			h.metrics.ObserveCapacityRejection("warehouse")
		}
		compensate()
		return err
	}

	aggregate.AssignWarehouse(destID)
	return nil
}

func eventKind(cmd UpdateShipmentStatusCommand) tracking.EventKind {
	switch {
	case cmd.ExceptionKind() != "":
		return tracking.KindException
	case cmd.StatusLabel() == shipment.StatusDelivered:
		return tracking.KindDelivered
	}
	return tracking.KindTransit
}
