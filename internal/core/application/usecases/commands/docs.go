// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: guarded
// construction, permission check, mutation, audit ledger append.
//
// Handlers depend on the ports directly. There is no transactional unit of
// work: the stores are in-process, and atomicity of a multi-step transition
// comes from the shipment's transition lock plus explicit compensation of
// partial vehicle loads.
package commands
