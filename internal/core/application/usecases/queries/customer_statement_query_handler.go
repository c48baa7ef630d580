package queries

import (
	"context"

	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// CustomerStatementQueryHandler projects a customer's billing statement.
type CustomerStatementQueryHandler struct {
	billing ports.BillingLedger
}

// NewCustomerStatementQueryHandler creates a handler for statement lookups.
func NewCustomerStatementQueryHandler(billing ports.BillingLedger) CustomerStatementQueryHandler {
	return CustomerStatementQueryHandler{billing: billing}
}

// Handle returns the customer's statement. A customer without a statement
// yields an ObjectNotFoundError.
func (h CustomerStatementQueryHandler) Handle(ctx context.Context, query CustomerStatementQuery) (CustomerStatementResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerStatementResponse{}, err
	}

	statement, err := h.billing.StatementFor(ctx, query.CustomerID())
	if err != nil {
		return CustomerStatementResponse{}, err
	}
	if statement == nil {
		return CustomerStatementResponse{}, errs.NewObjectNotFoundError("statement", query.CustomerID().String())
	}

	records := statement.Records()
	views := make([]RecordView, 0, len(records))
	for _, record := range records {
		views = append(views, RecordView{
			TrackingID: record.TrackingID().String(),
			Amount:     record.Amount(),
			Method:     string(record.PaymentMethod()),
			Timestamp:  record.Timestamp(),
			IsRefund:   record.IsRefund(),
		})
	}

	return CustomerStatementResponse{
		CustomerID: statement.CustomerID().String(),
		CreatedAt:  statement.CreatedAt(),
		Total:      statement.Total(),
		Records:    views,
	}, nil
}
