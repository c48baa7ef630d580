package queries

import (
	"context"
	"sort"

	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// VehicleActivityQueryHandler projects a vehicle's current state, its ledger
// events, and the distinct shipments it has carried.
type VehicleActivityQueryHandler struct {
	vehicles ports.VehicleRegistry
	ledger   ports.TrackingLedger
}

// NewVehicleActivityQueryHandler creates a handler for activity lookups.
func NewVehicleActivityQueryHandler(vehicles ports.VehicleRegistry, ledger ports.TrackingLedger) VehicleActivityQueryHandler {
	return VehicleActivityQueryHandler{
		vehicles: vehicles,
		ledger:   ledger,
	}
}

// Handle returns the vehicle's activity snapshot.
func (h VehicleActivityQueryHandler) Handle(ctx context.Context, query VehicleActivityQuery) (VehicleActivityResponse, error) {
	if err := query.Validate(); err != nil {
		return VehicleActivityResponse{}, err
	}

	veh, err := h.vehicles.Get(ctx, query.VehicleID())
	if err != nil {
		return VehicleActivityResponse{}, err
	}
	if veh == nil {
		return VehicleActivityResponse{}, errs.NewObjectNotFoundError("vehicle", query.VehicleID())
	}

	events, err := h.ledger.Search(ctx, ports.EventFilter{VehicleID: veh.ID()})
	if err != nil {
		return VehicleActivityResponse{}, err
	}

	seen := make(map[string]bool)
	var shipmentIDs []string
	for _, event := range events {
		id := event.TrackingID().String()
		if !seen[id] {
			seen[id] = true
			shipmentIDs = append(shipmentIDs, id)
		}
	}
	sort.Strings(shipmentIDs)

	response := VehicleActivityResponse{
		VehicleID:   veh.ID(),
		VehicleType: veh.VehicleType(),
		CapacityKg:  veh.CapacityKg(),
		CurrentLoad: veh.CurrentLoad(),
		Status:      string(veh.Status()),
		Events:      toEventViews(events),
		ShipmentIDs: shipmentIDs,
	}
	if driver := veh.Driver(); driver != nil {
		response.DriverUsername = driver.Username()
	}
	return response, nil
}
