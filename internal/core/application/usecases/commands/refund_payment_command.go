package commands

import (
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrRefundPaymentCommandIsNotConstructed = errors.New(
	"RefundPaymentCommand must be created via NewRefundPaymentCommand constructor",
)

// RefundPaymentCommand represents a request to refund a customer for a
// shipment. A zero amount means the shipment's full billing cost.
type RefundPaymentCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	trackingID kernel.TrackingID
	amount     float64

	guard guard.ConstructorGuard
}

// NewRefundPaymentCommand creates a refund command.
func NewRefundPaymentCommand(customerID kernel.UUID, trackingID kernel.TrackingID, amount float64) (RefundPaymentCommand, error) {
	cmd := RefundPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setTrackingID(trackingID),
		cmd.setAmount(amount),
	); err != nil {
		return RefundPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRefundPaymentCommandIsNotConstructed)
}

// CustomerID returns the customer receiving the refund.
func (c RefundPaymentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// TrackingID returns the shipment being refunded.
func (c RefundPaymentCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Amount returns the refund amount, 0 for the full billing cost.
func (c RefundPaymentCommand) Amount() float64 {
	return c.amount
}

func (c *RefundPaymentCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *RefundPaymentCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *RefundPaymentCommand) setAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is negative", amount))
	}
	c.amount = amount
	return nil
}
