package queries

import (
	"errors"
	"time"

	"parceltrack/internal/pkg/guard"
)

var ErrLedgerHealthQueryIsNotConstructed = errors.New(
	"LedgerHealthQuery must be created via NewLedgerHealthQuery constructor",
)

// LedgerHealthQuery retrieves the tracking ledger's health snapshot plus its
// consistency diagnosis.
type LedgerHealthQuery struct {
	guard guard.ConstructorGuard
}

// NewLedgerHealthQuery creates a parameterless health query.
func NewLedgerHealthQuery() LedgerHealthQuery {
	return LedgerHealthQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q LedgerHealthQuery) Validate() error {
	return q.guard.Validate(ErrLedgerHealthQueryIsNotConstructed)
}

// LedgerHealthResponse is the ledger's operational snapshot.
type LedgerHealthResponse struct {
	State             string
	EventCount        int
	ErrorCount        int
	LastEventAt       time.Time
	ConsistencyIssues int
	Errors            []string
}
