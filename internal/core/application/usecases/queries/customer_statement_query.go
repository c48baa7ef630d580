package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrCustomerStatementQueryIsNotConstructed = errors.New(
	"CustomerStatementQuery must be created via NewCustomerStatementQuery constructor",
)

// CustomerStatementQuery retrieves a contract customer's monthly statement.
type CustomerStatementQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCustomerStatementQuery creates a statement query for the customer.
func NewCustomerStatementQuery(customerID kernel.UUID) (CustomerStatementQuery, error) {
	if err := customerID.Validate(); err != nil {
		return CustomerStatementQuery{}, err
	}

	return CustomerStatementQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CustomerStatementQuery) Validate() error {
	return q.guard.Validate(ErrCustomerStatementQueryIsNotConstructed)
}

// CustomerID returns the statement owner to look up.
func (q CustomerStatementQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// RecordView is the read-side projection of one billing record.
type RecordView struct {
	TrackingID string
	Amount     float64
	Method     string
	Timestamp  time.Time
	IsRefund   bool
}

// CustomerStatementResponse is a statement with its recomputed total.
type CustomerStatementResponse struct {
	CustomerID string
	CreatedAt  time.Time
	Total      float64
	Records    []RecordView
}
