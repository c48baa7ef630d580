package billing

import (
	"errors"
	"sync"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	// ErrStatementIsNotConstructed is returned when a Statement was not
	// created through the NewStatement factory method.
	ErrStatementIsNotConstructed = errors.New("Statement must be created via NewStatement constructor")

	// ErrRecordCustomerMismatch indicates an attempt to append another
	// customer's record to a statement.
	ErrRecordCustomerMismatch = errors.New("record belongs to a different customer")
)

// Statement collects a contract customer's monthly billing records.
//
// The total is not stored: it is recomputed from the non-refund records on
// every read, so a statement can never drift from its records.
type Statement struct {
	customerID kernel.UUID
	createdAt  time.Time

	mu      sync.Mutex
	records []*Record

	guard guard.ConstructorGuard
}

// NewStatement creates an empty statement for the customer.
func NewStatement(customerID kernel.UUID) (*Statement, error) {
	s := &Statement{
		createdAt: time.Now(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	s.customerID = customerID

	return s, nil
}

// Validate ensures the Statement was constructed via NewStatement.
func (s *Statement) Validate() error {
	if s == nil {
		return ErrStatementIsNotConstructed
	}
	return s.guard.Validate(ErrStatementIsNotConstructed)
}

// CustomerID returns the statement owner's id.
func (s *Statement) CustomerID() kernel.UUID {
	return s.customerID
}

// CreatedAt returns when the statement was opened.
func (s *Statement) CreatedAt() time.Time {
	return s.createdAt
}

// Append adds a record to the statement. The record must belong to the
// statement's customer.
func (s *Statement) Append(record *Record) error {
	if err := record.Validate(); err != nil {
		return err
	}
	if !record.CustomerID().IsEqual(s.customerID) {
		return ErrRecordCustomerMismatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

// Records returns a copy of the statement's records in append order.
func (s *Statement) Records() []*Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]*Record, len(s.records))
	copy(records, s.records)
	return records
}

// Total recomputes the amount due as the sum of non-refund records.
func (s *Statement) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, record := range s.records {
		if record.IsRefund() {
			continue
		}
		total += record.Amount()
	}
	return total
}
