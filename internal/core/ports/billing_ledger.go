package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/billing"
	"parceltrack/internal/core/domain/model/kernel"
)

// BillingLedger defines the payment recording contract.
type BillingLedger interface {
	// PayImmediate records a one-off charge paid at once.
	PayImmediate(ctx context.Context, customerID kernel.UUID, trackingID kernel.TrackingID, amount float64) (*billing.Record, error)

	// PayPrepaid records a charge settled up front; the stored amount is
	// always zero.
	PayPrepaid(ctx context.Context, customerID kernel.UUID, trackingID kernel.TrackingID) (*billing.Record, error)

	// AddToStatement records a charge on the customer's monthly statement,
	// creating the statement on first use.
	AddToStatement(ctx context.Context, customerID kernel.UUID, trackingID kernel.TrackingID, amount float64) (*billing.Record, error)

	// Refund records a refund; the stored amount is always strictly
	// negative.
	Refund(ctx context.Context, customerID kernel.UUID, trackingID kernel.TrackingID, amount float64) (*billing.Record, error)

	// ListForCustomer returns the customer's records in append order.
	ListForCustomer(ctx context.Context, customerID kernel.UUID) ([]*billing.Record, error)

	// ListAll returns every record in append order.
	ListAll(ctx context.Context) ([]*billing.Record, error)

	// StatementFor returns the customer's statement, nil when none exists.
	StatementFor(ctx context.Context, customerID kernel.UUID) (*billing.Statement, error)
}
