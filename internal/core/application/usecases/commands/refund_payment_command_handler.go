package commands

import (
	"context"

	"parceltrack/internal/core/ports"
)

// RefundPaymentCommandHandler records a refund against a shipment.
type RefundPaymentCommandHandler struct {
	shipments ports.ShipmentRepository
	billing   ports.BillingLedger
}

// NewRefundPaymentCommandHandler creates a handler for refunds.
func NewRefundPaymentCommandHandler(shipments ports.ShipmentRepository, billing ports.BillingLedger) RefundPaymentCommandHandler {
	return RefundPaymentCommandHandler{
		shipments: shipments,
		billing:   billing,
	}
}

// Handle processes the refund command.
func (h *RefundPaymentCommandHandler) Handle(ctx context.Context, cmd RefundPaymentCommand) error {
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

	amount := cmd.Amount()
	if amount == 0 {
		amount = aggregate.BillingCost()
	}

	_, err = h.billing.Refund(ctx, cmd.CustomerID(), cmd.TrackingID(), amount)
	return err
}
