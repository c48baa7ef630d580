// Package warehouse models capacity-bounded holding areas. A warehouse tracks
// which shipments it currently stores and refuses to go over capacity; its
// status is derived from occupancy except when operators close it.
package warehouse

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// Status of a warehouse.
type Status string

const (
	// StatusActive means the warehouse accepts shipments.
	StatusActive Status = "ACTIVE"

	// StatusFull means occupancy reached capacity; derived, never set directly
	// by business flow (operators may still force it via MarkStatus).
	StatusFull Status = "FULL"

	// StatusClosed means the warehouse refuses new shipments until reopened.
	StatusClosed Status = "CLOSED"
)

// Validate checks the status against the known set.
func (s Status) Validate() error {
	switch s {
	case StatusActive, StatusFull, StatusClosed:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid warehouse status", string(s)))
}

var (
	// ErrWarehouseIsNotConstructed is returned when a Warehouse was not
	// created through the NewWarehouse factory method.
	ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")

	// ErrWarehouseClosed indicates the warehouse refuses shipments because
	// it is administratively closed, not because it is out of space.
	ErrWarehouseClosed = errors.New("warehouse is closed")
)

// Warehouse is a named, capacity-bounded holding area.
//
// Invariants:
//   - occupancy never exceeds capacity;
//   - status is FULL exactly when occupancy equals capacity and the
//     warehouse is not closed;
//   - storing the same shipment twice is idempotent, removal of an absent
//     shipment is a no-op.
//
// The capacity check-and-store runs as one atomic unit under the warehouse's
// own mutex, so concurrent stores cannot over-allocate.
type Warehouse struct {
	id       string
	location string
	capacity int

	mu     sync.Mutex
	stored map[string]bool
	status Status

	guard guard.ConstructorGuard
}

// NewWarehouse creates an active, empty warehouse.
// Capacity must be positive; id and location must be non-empty.
func NewWarehouse(id, location string, capacity int) (*Warehouse, error) {
	w := &Warehouse{
		stored: make(map[string]bool),
		status: StatusActive,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setLocation(location),
		w.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// Validate ensures the Warehouse was constructed via NewWarehouse.
func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

// ID returns the warehouse identifier.
func (w *Warehouse) ID() string {
	return w.id
}

// Location returns the warehouse's physical location.
func (w *Warehouse) Location() string {
	return w.location
}

// Capacity returns the maximum number of shipments the warehouse holds.
func (w *Warehouse) Capacity() int {
	return w.capacity
}

// Status returns the current warehouse status.
func (w *Warehouse) Status() Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// Occupancy returns the number of shipments currently stored.
func (w *Warehouse) Occupancy() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.stored)
}

// IsFull reports whether occupancy reached capacity.
func (w *Warehouse) IsFull() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.stored) >= w.capacity
}

// Holds reports whether the given shipment is currently stored here.
func (w *Warehouse) Holds(trackingID kernel.TrackingID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stored[trackingID.String()]
}

// StoredIDs returns the tracking ids currently stored, sorted for
// deterministic rendering.
func (w *Warehouse) StoredIDs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	ids := make([]string, 0, len(w.stored))
	for id := range w.stored {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Store reserves space for a shipment. Fails with ErrWarehouseClosed on a
// closed warehouse and with a CapacityExceededError when at capacity, leaving
// occupancy unchanged in both cases.
func (w *Warehouse) Store(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.status == StatusClosed {
		return ErrWarehouseClosed
	}

	if !w.stored[trackingID.String()] && len(w.stored) >= w.capacity {
		w.recomputeStatus()
		return errs.NewCapacityExceededError(w.id)
	}

	w.stored[trackingID.String()] = true
	w.recomputeStatus()
	return nil
}

// Remove releases a shipment's space. Removing an id that is not stored is a
// no-op; a FULL warehouse reopens once below capacity.
func (w *Warehouse) Remove(trackingID kernel.TrackingID) {
	w.mu.Lock()
	defer w.mu.Unlock()

	delete(w.stored, trackingID.String())
	w.recomputeStatus()
}

// MarkStatus forces a status, e.g. closing a warehouse for maintenance.
// Reopening recomputes FULL/ACTIVE from current occupancy.
func (w *Warehouse) MarkStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.status = status
	if w.status != StatusClosed {
		w.recomputeStatus()
	}
	return nil
}

// recomputeStatus derives FULL/ACTIVE from occupancy. Callers hold w.mu.
func (w *Warehouse) recomputeStatus() {
	if w.status == StatusClosed {
		return
	}
	if len(w.stored) >= w.capacity {
		w.status = StatusFull
	} else {
		w.status = StatusActive
	}
}

func (w *Warehouse) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id is required")
	}
	w.id = id
	return nil
}

func (w *Warehouse) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location is required")
	}
	w.location = location
	return nil
}

func (w *Warehouse) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity", fmt.Errorf("%d is not greater than 0", capacity))
	}
	w.capacity = capacity
	return nil
}
