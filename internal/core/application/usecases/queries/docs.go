// Package queries contains the read side of the CQRS split: parameter
// objects with guarded construction and handlers that project domain state
// into plain response structs. Queries never mutate state.
package queries
