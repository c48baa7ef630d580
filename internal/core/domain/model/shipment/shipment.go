// Package shipment holds the central aggregate of the lifecycle engine: a
// parcel with its rate snapshot, cached status, and current location facts.
package shipment

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/rates"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// defaultETADays is used when the caller does not ask for a specific
// delivery window.
const defaultETADays = 2

// ErrShipmentIsNotConstructed is returned when a Shipment was not created
// through the NewShipment factory method.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment is a parcel moving through the delivery network.
//
// The rate outcome is a snapshot: billing cost is derived once at
// construction from the tier's rate card and never recomputed, so later rate
// changes do not retroactively reprice shipments. The authoritative movement
// history lives in the tracking ledger; the aggregate only caches the current
// status, eta, and holding warehouse for fast reads.
//
// TransitionLock serializes multi-step status transitions on this shipment.
// The inner mutex only guards field access; a transition takes the outer lock
// for its whole check-mutate-append unit.
type Shipment struct {
	trackingID    kernel.TrackingID
	customerID    kernel.UUID
	weightKg      float64
	dimensions    string
	declaredValue float64
	description   string
	tierID        string
	specialTags   []string
	distanceKm    float64
	billingCost   float64
	createdAt     time.Time

	mu            sync.Mutex
	currentStatus string
	eta           time.Time
	warehouseID   string

	transitionMu sync.Mutex

	guard guard.ConstructorGuard
}

// NewShipment creates a shipment priced against the given tier, with status
// "Shipment Created" and an eta of now plus etaDays (0 means the default of
// two days).
func NewShipment(
	trackingID kernel.TrackingID,
	customerID kernel.UUID,
	tier *rates.Tier,
	weightKg float64,
	dimensions string,
	declaredValue float64,
	description string,
	specialTags []string,
	distanceKm float64,
	etaDays int,
) (*Shipment, error) {
	s := &Shipment{
		currentStatus: StatusCreated,
		createdAt:     time.Now(),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setTrackingID(trackingID),
		s.setCustomerID(customerID),
		s.setWeightKg(weightKg),
		s.setDimensions(dimensions),
		s.setDeclaredValue(declaredValue),
		s.setDescription(description),
		s.setDistanceKm(distanceKm),
		tier.Validate(),
	); err != nil {
		return nil, err
	}

	if etaDays < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("etaDays", fmt.Errorf("%d is negative", etaDays))
	}
	if etaDays == 0 {
		etaDays = defaultETADays
	}

	s.specialTags = make([]string, len(specialTags))
	copy(s.specialTags, specialTags)

	s.tierID = tier.ID()
	s.billingCost = tier.Quote(weightKg, distanceKm, s.specialTags, declaredValue)
	s.eta = s.createdAt.AddDate(0, 0, etaDays)

	return s, nil
}

// Validate ensures the Shipment was constructed via NewShipment.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// TrackingID returns the shipment's tracking identifier.
func (s *Shipment) TrackingID() kernel.TrackingID {
	return s.trackingID
}

// CustomerID returns the owning customer's id.
func (s *Shipment) CustomerID() kernel.UUID {
	return s.customerID
}

// WeightKg returns the parcel weight in kilograms.
func (s *Shipment) WeightKg() float64 {
	return s.weightKg
}

// Dimensions returns the parcel dimensions as given at creation.
func (s *Shipment) Dimensions() string {
	return s.dimensions
}

// DeclaredValue returns the insured value.
func (s *Shipment) DeclaredValue() float64 {
	return s.declaredValue
}

// Description returns the free-form contents description.
func (s *Shipment) Description() string {
	return s.description
}

// TierID returns the id of the rate card the shipment was priced with.
func (s *Shipment) TierID() string {
	return s.tierID
}

// SpecialTags returns a copy of the special service tags.
func (s *Shipment) SpecialTags() []string {
	tags := make([]string, len(s.specialTags))
	copy(tags, s.specialTags)
	return tags
}

// DistanceKm returns the planned delivery distance.
func (s *Shipment) DistanceKm() float64 {
	return s.distanceKm
}

// BillingCost returns the cost snapshot taken at creation.
func (s *Shipment) BillingCost() float64 {
	return s.billingCost
}

// CreatedAt returns the creation time.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// CurrentStatus returns the cached status label.
func (s *Shipment) CurrentStatus() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentStatus
}

// ETA returns the current delivery estimate.
func (s *Shipment) ETA() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eta
}

// WarehouseID returns the id of the warehouse currently holding the parcel,
// empty when it is not warehoused.
func (s *Shipment) WarehouseID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.warehouseID
}

// CommitStatus updates the cached status label. The label set is open; only
// an empty label is rejected.
func (s *Shipment) CommitStatus(label string) error {
	if label == "" {
		return errs.NewValueIsRequiredError("status label is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentStatus = label
	return nil
}

// CommitETA replaces the delivery estimate.
func (s *Shipment) CommitETA(eta time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eta = eta
}

// AssignWarehouse records the warehouse currently holding the parcel.
func (s *Shipment) AssignWarehouse(warehouseID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warehouseID = warehouseID
}

// ClearWarehouse records that the parcel left its warehouse.
func (s *Shipment) ClearWarehouse() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warehouseID = ""
}

// LockTransition takes the shipment's transition lock. Transitions on the
// same shipment serialize; transitions on different shipments run in
// parallel.
func (s *Shipment) LockTransition() {
	s.transitionMu.Lock()
}

// UnlockTransition releases the transition lock.
func (s *Shipment) UnlockTransition() {
	s.transitionMu.Unlock()
}

func (s *Shipment) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	s.trackingID = trackingID
	return nil
}

func (s *Shipment) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	s.customerID = customerID
	return nil
}

func (s *Shipment) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg", fmt.Errorf("%v is not greater than 0", weightKg))
	}
	s.weightKg = weightKg
	return nil
}

func (s *Shipment) setDimensions(dimensions string) error {
	if dimensions == "" {
		return errs.NewValueIsRequiredError("dimensions is required")
	}
	s.dimensions = dimensions
	return nil
}

func (s *Shipment) setDeclaredValue(declaredValue float64) error {
	if declaredValue < 0 {
		return errs.NewValueIsInvalidErrorWithCause("declaredValue", fmt.Errorf("%v is negative", declaredValue))
	}
	s.declaredValue = declaredValue
	return nil
}

func (s *Shipment) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description is required")
	}
	s.description = description
	return nil
}

func (s *Shipment) setDistanceKm(distanceKm float64) error {
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm", fmt.Errorf("%v is negative", distanceKm))
	}
	s.distanceKm = distanceKm
	return nil
}
