package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"parceltrack/internal/core/domain/model/rates"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/core/domain/model/tracking"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/telemetry"
)

// OriginLocation is recorded on the creation event when no home warehouse
// could be resolved.
const OriginLocation = "Origin Facility"

// CreateShipmentCommandHandler prices a shipment, registers it, reserves its
// home warehouse, and writes the creation entry to the tracking ledger.
//
// The home warehouse is a soft dependency: an id that does not resolve, or a
// warehouse that refuses the reservation, downgrades the shipment to
// unwarehoused instead of failing creation.
type CreateShipmentCommandHandler struct {
	shipments  ports.ShipmentRepository
	warehouses ports.WarehouseRegistry
	ledger     ports.TrackingLedger
	tiers      *rates.Catalog
	metrics    *telemetry.Metrics
	log        *slog.Logger
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(
	shipments ports.ShipmentRepository,
	warehouses ports.WarehouseRegistry,
	ledger ports.TrackingLedger,
	tiers *rates.Catalog,
	metrics *telemetry.Metrics,
	log *slog.Logger,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		shipments:  shipments,
		warehouses: warehouses,
		ledger:     ledger,
		tiers:      tiers,
		metrics:    metrics,
		log:        log,
	}
}

// Handle processes the shipment creation command.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanCreateShipment() {
		return errs.NewUnauthorizedError(cmd.Actor().Username(), "create shipment")
	}

	tier, ok := h.tiers.Get(cmd.TierID())
	if !ok {
		return errs.NewObjectNotFoundError("tier", cmd.TierID())
	}

	aggregate, err := shipment.NewShipment(
		cmd.TrackingID(),
		cmd.CustomerID(),
		tier,
		cmd.WeightKg(),
		cmd.Dimensions(),
		cmd.DeclaredValue(),
		cmd.Description(),
		cmd.SpecialTags(),
		cmd.DistanceKm(),
		cmd.ETADays(),
	)
	if err != nil {
		return err
	}

	if err := h.shipments.Add(ctx, aggregate); err != nil {
		return err
	}

	location := OriginLocation
	if id := cmd.HomeWarehouseID(); id != "" {
		if h.reserveHomeWarehouse(ctx, aggregate, id) {
			location = fmt.Sprintf("Warehouse %s", id)
		}
	}

	h.ledger.Append(ctx, tracking.EventInput{
		TrackingID:  aggregate.TrackingID(),
		Location:    location,
		StatusLabel: shipment.StatusCreated,
		Actor:       cmd.Actor().Username(),
		WarehouseID: aggregate.WarehouseID(),
		Kind:        tracking.KindCreated,
		ETA:         aggregate.ETA(),
	})

	h.metrics.ObserveShipmentCreated(tier.ID())
	return nil
}

// reserveHomeWarehouse attempts the initial warehouse reservation and
// reports whether it held.
func (h *CreateShipmentCommandHandler) reserveHomeWarehouse(ctx context.Context, aggregate *shipment.Shipment, warehouseID string) bool {
	wh, err := h.warehouses.Get(ctx, warehouseID)
	if err != nil || wh == nil {
		h.log.Warn("home warehouse did not resolve, creating shipment unwarehoused",
			"trackingId", aggregate.TrackingID().String(),
			"warehouseId", warehouseID)
		return false
	}

	if err := wh.Store(aggregate.TrackingID()); err != nil {
		if errors.Is(err, errs.ErrCapacityExceeded) {
			h.metrics.ObserveCapacityRejection("warehouse")
		}
		h.log.Warn("home warehouse refused reservation, creating shipment unwarehoused",
			"trackingId", aggregate.TrackingID().String(),
			"warehouseId", warehouseID,
			"error", err)
		return false
	}

	aggregate.AssignWarehouse(warehouseID)
	return true
}
