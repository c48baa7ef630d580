package cmd

import (
	"log"
	"log/slog"

	"parceltrack/internal/adapters/out/inmem/billingledger"
	"parceltrack/internal/adapters/out/inmem/shipmentrepo"
	"parceltrack/internal/adapters/out/inmem/trackingledger"
	"parceltrack/internal/adapters/out/inmem/vehiclerepo"
	"parceltrack/internal/adapters/out/inmem/warehouserepo"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/rates"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/jobs"
	"parceltrack/internal/pkg/telemetry"
)

// CompositionRoot wires adapters, domain services, and shared infrastructure
// once at process start. Handlers are created on demand from these shared
// pieces.
type CompositionRoot struct {
	shipments  ports.ShipmentRepository
	warehouses ports.WarehouseRegistry
	vehicles   ports.VehicleRegistry
	ledger     ports.TrackingLedger
	billing    ports.BillingLedger
	tiers      *rates.Catalog
	planner    *services.TransitionPlanner
	metrics    *telemetry.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, logger *slog.Logger) CompositionRoot {
	tiers, err := rates.NewCatalog(rates.BuiltInTiers()...)
	if err != nil {
		log.Fatalf("failed to build rate catalog: %v", err)
	}

	shipments := shipmentrepo.NewInMemShipmentRepository()
	metrics := telemetry.NewMetrics()

	return CompositionRoot{
		shipments:  shipments,
		warehouses: warehouserepo.NewInMemWarehouseRegistry(),
		vehicles:   vehiclerepo.NewInMemVehicleRegistry(),
		ledger:     trackingledger.NewInMemTrackingLedger(shipments, metrics, logger),
		billing:    billingledger.NewInMemBillingLedger(),
		tiers:      tiers,
		planner:    services.NewTransitionPlanner(),
		metrics:    metrics,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(
		c.shipments, c.warehouses, c.ledger, c.tiers, c.metrics, c.logger,
	)
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	return commands.NewUpdateShipmentStatusCommandHandler(
		c.shipments, c.warehouses, c.vehicles, c.ledger, c.planner, c.metrics, c.logger,
	)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.vehicles)
}

func (c *CompositionRoot) CreateLoadShipmentCommandHandler() commands.LoadShipmentCommandHandler {
	return commands.NewLoadShipmentCommandHandler(c.shipments, c.vehicles, c.ledger, c.metrics)
}

func (c *CompositionRoot) CreateUnloadShipmentCommandHandler() commands.UnloadShipmentCommandHandler {
	return commands.NewUnloadShipmentCommandHandler(c.shipments, c.vehicles, c.ledger)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(c.shipments, c.billing)
}

func (c *CompositionRoot) CreateRefundPaymentCommandHandler() commands.RefundPaymentCommandHandler {
	return commands.NewRefundPaymentCommandHandler(c.shipments, c.billing)
}

func (c *CompositionRoot) CreateShipmentHistoryQueryHandler() queries.ShipmentHistoryQueryHandler {
	return queries.NewShipmentHistoryQueryHandler(c.ledger)
}

func (c *CompositionRoot) CreateCurrentStatusQueryHandler() queries.CurrentStatusQueryHandler {
	return queries.NewCurrentStatusQueryHandler(c.ledger, c.shipments)
}

func (c *CompositionRoot) CreateSearchTrackingEventsQueryHandler() queries.SearchTrackingEventsQueryHandler {
	return queries.NewSearchTrackingEventsQueryHandler(c.ledger)
}

func (c *CompositionRoot) CreateLedgerHealthQueryHandler() queries.LedgerHealthQueryHandler {
	return queries.NewLedgerHealthQueryHandler(c.ledger)
}

func (c *CompositionRoot) CreateCustomerStatementQueryHandler() queries.CustomerStatementQueryHandler {
	return queries.NewCustomerStatementQueryHandler(c.billing)
}

func (c *CompositionRoot) CreateWarehouseInventoryQueryHandler() queries.WarehouseInventoryQueryHandler {
	return queries.NewWarehouseInventoryQueryHandler(c.warehouses, c.ledger)
}

func (c *CompositionRoot) CreateVehicleActivityQueryHandler() queries.VehicleActivityQueryHandler {
	return queries.NewVehicleActivityQueryHandler(c.vehicles, c.ledger)
}

func (c *CompositionRoot) CreateJobManager(monitorSpec string) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateLedgerHealthQueryHandler(), monitorSpec, c.logger)
}
