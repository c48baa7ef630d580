package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/billing"
	"parceltrack/internal/core/ports"
)

// ErrShipmentNotOwnedByCustomer indicates a payment for a shipment that
// belongs to a different customer.
var ErrShipmentNotOwnedByCustomer = errors.New("shipment is not owned by the paying customer")

// RecordPaymentCommandHandler charges a customer the shipment's billing cost
// through the method implied by their classification.
type RecordPaymentCommandHandler struct {
	shipments ports.ShipmentRepository
	billing   ports.BillingLedger
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
func NewRecordPaymentCommandHandler(shipments ports.ShipmentRepository, billing ports.BillingLedger) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		shipments: shipments,
		billing:   billing,
	}
}

// Handle processes the payment command.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.shipments.Get(ctx, cmd.TrackingID())
	if err != nil {
		return err
	}
	if !aggregate.CustomerID().IsEqual(cmd.CustomerID()) {
		return ErrShipmentNotOwnedByCustomer
	}

	method, err := cmd.Classification().PaymentMethod()
	if err != nil {
		return err
	}

	switch method {
	case billing.MethodImmediate:
		_, err = h.billing.PayImmediate(ctx, cmd.CustomerID(), cmd.TrackingID(), aggregate.BillingCost())
	case billing.MethodPrepaid:
		_, err = h.billing.PayPrepaid(ctx, cmd.CustomerID(), cmd.TrackingID())
	case billing.MethodMonthly:
		_, err = h.billing.AddToStatement(ctx, cmd.CustomerID(), cmd.TrackingID(), aggregate.BillingCost())
	}
	return err
}
