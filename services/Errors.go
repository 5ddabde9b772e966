package services

import (
	"errors"
	"fmt"
)

// Precondition and lookup failures surfaced by the core. Controllers map
// these to HTTP statuses; nothing in this package knows about HTTP.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrForbidden        = errors.New("not allowed")
	ErrAlreadyInState   = errors.New("already in the requested state")
	ErrNotInState       = errors.New("not in the requested state")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")
	ErrSelfReference    = errors.New("cannot follow yourself")
	ErrInvalidRange     = errors.New("event ends before it starts")
	ErrDuplicate        = errors.New("already exists")
	ErrBadCredentials   = errors.New("invalid credentials")
)

// StoreError wraps an opaque document-store failure. Op names the write
// that failed and, in a two-write sequence, states which write had
// already succeeded so a reconciliation job knows what is left dangling.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
