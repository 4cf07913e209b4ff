package service

import (
	"errors"
	"log"

	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/store"
)

// pairedWriteAttempts bounds the retry of the second half of a paired
// mutation before it is surfaced as a PartialUpdateError.
const pairedWriteAttempts = 3

// completePaired drives the second half of a two-row mutation after the
// first half has committed. The companion write must be idempotent: a retry
// after a failed save re-reads the row and re-applies the mutation. When the
// budget is exhausted the one-sided state is logged for reconciliation and
// returned as a *PartialUpdateError.
func completePaired(op, applied, failed string, write func() error) error {
	var err error
	for attempt := 0; attempt < pairedWriteAttempts; attempt++ {
		if err = write(); err == nil {
			return nil
		}
		if errors.Is(err, store.ErrNotFound) {
			// The companion row is gone; retrying cannot repair that.
			break
		}
	}

	perr := &PartialUpdateError{Op: op, Applied: applied, Failed: failed, Err: err}
	log.Printf("partial update needs reconciliation: %v", perr)
	return perr
}
