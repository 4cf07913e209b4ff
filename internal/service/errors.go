package service

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyExists rejects an idempotent no-op: the membership being
	// added already holds.
	ErrAlreadyExists = errors.New("already exists")

	// ErrSelfFollow rejects follow edges from a user to themselves.
	ErrSelfFollow = errors.New("users cannot follow themselves")

	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords so callers cannot probe which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrForbidden rejects a mutation by a caller who does not own the
	// entity.
	ErrForbidden = errors.New("not the owner")
)

// PartialUpdateError reports that the second half of a paired two-row
// mutation failed after the first half was committed. The stored relation is
// recorded on one side only until an out-of-band reconciliation repairs it.
type PartialUpdateError struct {
	Op      string
	Applied string
	Failed  string
	Err     error
}

func (e *PartialUpdateError) Error() string {
	return fmt.Sprintf("%s: applied to %s but failed on %s: %v", e.Op, e.Applied, e.Failed, e.Err)
}

func (e *PartialUpdateError) Unwrap() error {
	return e.Err
}
