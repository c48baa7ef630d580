package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/billing"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents a request to charge a customer for a
// shipment, dispatched by the customer's classification.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	customerID     kernel.UUID
	trackingID     kernel.TrackingID
	classification billing.Classification

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a payment recording command.
func NewRecordPaymentCommand(customerID kernel.UUID, trackingID kernel.TrackingID, classification billing.Classification) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setTrackingID(trackingID),
		cmd.setClassification(classification),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// CustomerID returns the paying customer's id.
func (c RecordPaymentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// TrackingID returns the shipment being paid for.
func (c RecordPaymentCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Classification returns how the customer pays.
func (c RecordPaymentCommand) Classification() billing.Classification {
	return c.classification
}

func (c *RecordPaymentCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *RecordPaymentCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *RecordPaymentCommand) setClassification(classification billing.Classification) error {
	if err := classification.Validate(); err != nil {
		return err
	}
	c.classification = classification
	return nil
}
