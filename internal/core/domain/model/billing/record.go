// Package billing models the payment side of a shipment: immutable payment
// records, per-customer statements, and the customer classification that
// picks the payment method.
package billing

import (
	"errors"
	"fmt"
	"math"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// Method names a way a shipment gets paid for.
type Method string

const (
	MethodImmediate Method = "Immediate Payment"
	MethodPrepaid   Method = "Prepaid"
	MethodMonthly   Method = "Monthly Billing"
	MethodRefund    Method = "Refund"
)

// Validate checks the method against the known set.
func (m Method) Validate() error {
	switch m {
	case MethodImmediate, MethodPrepaid, MethodMonthly, MethodRefund:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("method", fmt.Errorf("%q is not a valid payment method", string(m)))
}

// ErrRecordIsNotConstructed is returned when a Record was not created through
// the NewRecord factory method.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// Record is one immutable payment ledger entry.
//
// The amount is normalized per method: prepaid records always carry zero
// (the charge was settled up front), refund records always carry a strictly
// negative amount regardless of the sign the caller passed.
type Record struct {
	customerID kernel.UUID
	trackingID kernel.TrackingID
	amount     float64
	method     Method
	timestamp  time.Time
	isRefund   bool

	guard guard.ConstructorGuard
}

// NewRecord creates a payment record, normalizing the amount for the method.
func NewRecord(customerID kernel.UUID, trackingID kernel.TrackingID, amount float64, method Method) (*Record, error) {
	r := &Record{
		timestamp: time.Now(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setCustomerID(customerID),
		r.setTrackingID(trackingID),
		r.setMethod(method),
	); err != nil {
		return nil, err
	}

	switch method {
	case MethodPrepaid:
		r.amount = 0
	case MethodRefund:
		if amount == 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("amount", errors.New("refund amount must be non-zero"))
		}
		r.amount = -math.Abs(amount)
		r.isRefund = true
	default:
		if amount < 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is negative", amount))
		}
		r.amount = amount
	}

	return r, nil
}

// Validate ensures the Record was constructed via NewRecord.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// CustomerID returns the paying customer's id.
func (r *Record) CustomerID() kernel.UUID {
	return r.customerID
}

// TrackingID returns the shipment the payment is for.
func (r *Record) TrackingID() kernel.TrackingID {
	return r.trackingID
}

// Amount returns the normalized amount. Negative iff the record is a refund.
func (r *Record) Amount() float64 {
	return r.amount
}

// PaymentMethod returns how the payment was made.
func (r *Record) PaymentMethod() Method {
	return r.method
}

// Timestamp returns when the record was written.
func (r *Record) Timestamp() time.Time {
	return r.timestamp
}

// IsRefund reports whether the record is a refund.
func (r *Record) IsRefund() bool {
	return r.isRefund
}

func (r *Record) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	r.customerID = customerID
	return nil
}

func (r *Record) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	r.trackingID = trackingID
	return nil
}

func (r *Record) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	r.method = method
	return nil
}
