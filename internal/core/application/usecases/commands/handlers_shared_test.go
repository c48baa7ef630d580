package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"parceltrack/internal/adapters/out/inmem/billingledger"
	"parceltrack/internal/adapters/out/inmem/shipmentrepo"
	"parceltrack/internal/adapters/out/inmem/trackingledger"
	"parceltrack/internal/adapters/out/inmem/vehiclerepo"
	"parceltrack/internal/adapters/out/inmem/warehouserepo"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/rates"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/core/domain/model/tracking"
	"parceltrack/internal/core/domain/model/vehicle"
	"parceltrack/internal/core/domain/model/warehouse"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fixture wires the in-memory adapters the way the composition root does.
type fixture struct {
	shipments  *shipmentrepo.InMemShipmentRepository
	warehouses *warehouserepo.InMemWarehouseRegistry
	vehicles   *vehiclerepo.InMemVehicleRegistry
	ledger     *trackingledger.InMemTrackingLedger
	billing    *billingledger.InMemBillingLedger
	tiers      *rates.Catalog
	log        *slog.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	shipments := shipmentrepo.NewInMemShipmentRepository()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	tiers, err := rates.NewCatalog(rates.BuiltInTiers()...)
	require.NoError(t, err)

	return &fixture{
		shipments:  shipments,
		warehouses: warehouserepo.NewInMemWarehouseRegistry(),
		vehicles:   vehiclerepo.NewInMemVehicleRegistry(),
		ledger:     trackingledger.NewInMemTrackingLedger(shipments, nil, log),
		billing:    billingledger.NewInMemBillingLedger(),
		tiers:      tiers,
		log:        log,
	}
}

func (f *fixture) createHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(f.shipments, f.warehouses, f.ledger, f.tiers, nil, f.log)
}

func (f *fixture) updateHandler() commands.UpdateShipmentStatusCommandHandler {
	return commands.NewUpdateShipmentStatusCommandHandler(
		f.shipments, f.warehouses, f.vehicles, f.ledger,
		services.NewTransitionPlanner(), nil, f.log,
	)
}

func (f *fixture) updateHandlerWithLedger(ledger ports.TrackingLedger) commands.UpdateShipmentStatusCommandHandler {
	return commands.NewUpdateShipmentStatusCommandHandler(
		f.shipments, f.warehouses, f.vehicles, ledger,
		services.NewTransitionPlanner(), nil, f.log,
	)
}

func (f *fixture) addWarehouse(t *testing.T, id string, capacity int) *warehouse.Warehouse {
	t.Helper()
	w, err := warehouse.NewWarehouse(id, "Hub "+id, capacity)
	require.NoError(t, err)
	require.NoError(t, f.warehouses.Add(context.Background(), w))
	return w
}

func (f *fixture) addVehicle(t *testing.T, id string, capacityKg float64) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(id, "van", capacityKg)
	require.NoError(t, err)
	require.NoError(t, f.vehicles.Add(context.Background(), v))
	return v
}

// createShipment registers a 5 kg standard-tier shipment through the create
// handler and returns it.
func (f *fixture) createShipment(t *testing.T, actor identity.Actor, homeWarehouseID string) *shipment.Shipment {
	t.Helper()
	ctx := context.Background()

	trackingID := kernel.NewTrackingID()
	cmd, err := commands.NewCreateShipmentCommand(
		actor, trackingID, kernel.NewUUID(), "STD",
		5, "30x20x10", 1000, "books", nil, 200, 0, homeWarehouseID,
	)
	require.NoError(t, err)

	handler := f.createHandler()
	require.NoError(t, handler.Handle(ctx, cmd))

	aggregate, err := f.shipments.Get(ctx, trackingID)
	require.NoError(t, err)
	return aggregate
}

func actorWithRole(t *testing.T, username string, role identity.Role) identity.Actor {
	t.Helper()
	user, err := identity.NewUser(kernel.NewUUID(), username, "s3cret-pass", role)
	require.NoError(t, err)
	return identity.UserActor(user)
}

func adminActor(t *testing.T) identity.Actor {
	t.Helper()
	return actorWithRole(t, "root", identity.RoleAdmin)
}

// MockTrackingLedger asserts on ledger interactions, in particular that
// aborted transitions never append.
type MockTrackingLedger struct{ mock.Mock }

func (m *MockTrackingLedger) Append(ctx context.Context, input tracking.EventInput) *tracking.Event {
	args := m.Called(ctx, input)
	if event, ok := args.Get(0).(*tracking.Event); ok {
		return event
	}
	return nil
}

func (m *MockTrackingLedger) History(_ context.Context, _ kernel.TrackingID) ([]*tracking.Event, error) {
	return nil, nil
}

func (m *MockTrackingLedger) CurrentStatus(_ context.Context, _ kernel.TrackingID) (string, error) {
	return "", nil
}

func (m *MockTrackingLedger) Search(_ context.Context, _ ports.EventFilter) ([]*tracking.Event, error) {
	return nil, nil
}

func (m *MockTrackingLedger) Health(_ context.Context) ports.LedgerHealth {
	return ports.LedgerHealth{State: ports.HealthUp}
}

func (m *MockTrackingLedger) ConsistencyIssues(_ context.Context) (int, error) {
	return 0, nil
}

func (m *MockTrackingLedger) Errors(_ context.Context) []string {
	return nil
}
