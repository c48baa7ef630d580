// Package ports defines the outbound contracts of the application core:
// repositories for the shipment, warehouse, and vehicle aggregates, the
// append-only tracking ledger, and the billing ledger. Adapters implement
// these interfaces; handlers depend only on them.
package ports
