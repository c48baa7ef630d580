// Package billingledger implements the billing ledger in memory: an append
// order record list plus lazily created per-customer statements.
package billingledger

import (
	"context"
	"sync"

	"parceltrack/internal/core/domain/model/billing"
	"parceltrack/internal/core/domain/model/kernel"
)

// InMemBillingLedger implements BillingLedger in memory.
type InMemBillingLedger struct {
	mu         sync.Mutex
	records    []*billing.Record
	statements map[string]*billing.Statement
}

// NewInMemBillingLedger creates an empty billing ledger.
func NewInMemBillingLedger() *InMemBillingLedger {
	return &InMemBillingLedger{
		statements: make(map[string]*billing.Statement),
	}
}

// PayImmediate records a one-off charge paid at once.
func (l *InMemBillingLedger) PayImmediate(_ context.Context, customerID kernel.UUID, trackingID kernel.TrackingID, amount float64) (*billing.Record, error) {
	return l.append(customerID, trackingID, amount, billing.MethodImmediate)
}

// PayPrepaid records a charge settled up front. The record amount is zero.
func (l *InMemBillingLedger) PayPrepaid(_ context.Context, customerID kernel.UUID, trackingID kernel.TrackingID) (*billing.Record, error) {
	return l.append(customerID, trackingID, 0, billing.MethodPrepaid)
}

// AddToStatement records a monthly charge, opening the customer's statement
// on first use.
func (l *InMemBillingLedger) AddToStatement(_ context.Context, customerID kernel.UUID, trackingID kernel.TrackingID, amount float64) (*billing.Record, error) {
	record, err := billing.NewRecord(customerID, trackingID, amount, billing.MethodMonthly)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	statement, ok := l.statements[customerID.String()]
	if !ok {
		statement, err = billing.NewStatement(customerID)
		if err != nil {
			return nil, err
		}
		l.statements[customerID.String()] = statement
	}

	if err := statement.Append(record); err != nil {
		return nil, err
	}

	l.records = append(l.records, record)
	return record, nil
}

// Refund records a refund. The record amount is strictly negative.
func (l *InMemBillingLedger) Refund(_ context.Context, customerID kernel.UUID, trackingID kernel.TrackingID, amount float64) (*billing.Record, error) {
	return l.append(customerID, trackingID, amount, billing.MethodRefund)
}

// ListForCustomer returns the customer's records in append order.
func (l *InMemBillingLedger) ListForCustomer(_ context.Context, customerID kernel.UUID) ([]*billing.Record, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var owned []*billing.Record
	for _, record := range l.records {
		if record.CustomerID().IsEqual(customerID) {
			owned = append(owned, record)
		}
	}
	return owned, nil
}

// ListAll returns every record in append order.
func (l *InMemBillingLedger) ListAll(_ context.Context) ([]*billing.Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	all := make([]*billing.Record, len(l.records))
	copy(all, l.records)
	return all, nil
}

// StatementFor returns the customer's statement, nil when none exists.
func (l *InMemBillingLedger) StatementFor(_ context.Context, customerID kernel.UUID) (*billing.Statement, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.statements[customerID.String()], nil
}

func (l *InMemBillingLedger) append(customerID kernel.UUID, trackingID kernel.TrackingID, amount float64, method billing.Method) (*billing.Record, error) {
	record, err := billing.NewRecord(customerID, trackingID, amount, method)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, record)
	return record, nil
}
