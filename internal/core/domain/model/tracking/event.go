// Package tracking models the append-only movement history: immutable events
// ordered by a ledger-assigned sequence number.
package tracking

import (
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// EventKind classifies a ledger entry.
type EventKind string

const (
	KindCreated        EventKind = "CREATED"
	KindTransit        EventKind = "TRANSIT"
	KindVehicleTransit EventKind = "VEHICLE_TRANSIT"
	KindDelivered      EventKind = "DELIVERED"
	KindException      EventKind = "EXCEPTION"
)

// Validate checks the kind against the known set.
func (k EventKind) Validate() error {
	switch k {
	case KindCreated, KindTransit, KindVehicleTransit, KindDelivered, KindException:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid event kind", string(k)))
}

// ErrEventIsNotConstructed is returned when an Event was not created through
// the NewEvent factory method.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")

// EventInput carries the caller-supplied facts of a ledger entry. Sequence
// and, when Timestamp is zero, the timestamp are assigned by the ledger.
type EventInput struct {
	TrackingID    kernel.TrackingID
	Timestamp     time.Time
	Location      string
	StatusLabel   string
	Actor         string
	VehicleID     string
	WarehouseID   string
	Kind          EventKind
	ETA           time.Time
	ExceptionKind string
}

// Event is one immutable entry in the tracking ledger. Actor, vehicle id,
// warehouse id, eta, and exception kind are optional and zero-valued when
// absent.
type Event struct {
	sequence      int64
	trackingID    kernel.TrackingID
	timestamp     time.Time
	location      string
	statusLabel   string
	actor         string
	vehicleID     string
	warehouseID   string
	kind          EventKind
	eta           time.Time
	exceptionKind string

	guard guard.ConstructorGuard
}

// NewEvent creates a ledger entry with the given sequence number. A zero
// input timestamp defaults to now.
func NewEvent(sequence int64, input EventInput) (*Event, error) {
	e := &Event{
		sequence:      sequence,
		actor:         input.Actor,
		vehicleID:     input.VehicleID,
		warehouseID:   input.WarehouseID,
		eta:           input.ETA,
		exceptionKind: input.ExceptionKind,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setSequence(sequence),
		e.setTrackingID(input.TrackingID),
		e.setLocation(input.Location),
		e.setStatusLabel(input.StatusLabel),
		e.setKind(input.Kind),
	); err != nil {
		return nil, err
	}

	e.timestamp = input.Timestamp
	if e.timestamp.IsZero() {
		e.timestamp = time.Now()
	}

	return e, nil
}

// Validate ensures the Event was constructed via NewEvent.
func (e *Event) Validate() error {
	if e == nil {
		return ErrEventIsNotConstructed
	}
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// Sequence returns the ledger-assigned, monotonically increasing sequence
// number.
func (e *Event) Sequence() int64 {
	return e.sequence
}

// TrackingID returns the shipment the event belongs to.
func (e *Event) TrackingID() kernel.TrackingID {
	return e.trackingID
}

// Timestamp returns when the event happened.
func (e *Event) Timestamp() time.Time {
	return e.timestamp
}

// Location returns where the event happened.
func (e *Event) Location() string {
	return e.location
}

// StatusLabel returns the status recorded by the event.
func (e *Event) StatusLabel() string {
	return e.statusLabel
}

// Actor returns the username that recorded the event, empty for system
// events.
func (e *Event) Actor() string {
	return e.actor
}

// VehicleID returns the vehicle involved, empty when none.
func (e *Event) VehicleID() string {
	return e.vehicleID
}

// WarehouseID returns the warehouse involved, empty when none.
func (e *Event) WarehouseID() string {
	return e.warehouseID
}

// Kind returns the event classification.
func (e *Event) Kind() EventKind {
	return e.kind
}

// ETA returns the delivery estimate recorded with the event, zero when none.
func (e *Event) ETA() time.Time {
	return e.eta
}

// ExceptionKind returns the exception classification, empty for normal
// events.
func (e *Event) ExceptionKind() string {
	return e.exceptionKind
}

func (e *Event) setSequence(sequence int64) error {
	if sequence < 0 {
		return errs.NewValueIsInvalidErrorWithCause("sequence", fmt.Errorf("%d is negative", sequence))
	}
	e.sequence = sequence
	return nil
}

func (e *Event) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	e.trackingID = trackingID
	return nil
}

func (e *Event) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location is required")
	}
	e.location = location
	return nil
}

func (e *Event) setStatusLabel(statusLabel string) error {
	if statusLabel == "" {
		return errs.NewValueIsRequiredError("statusLabel is required")
	}
	e.statusLabel = statusLabel
	return nil
}

func (e *Event) setKind(kind EventKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	e.kind = kind
	return nil
}
