package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"orgsync/internal/domain"
)

// classify maps constraint violations onto the domain's item-scoped sentinels
// so a single bad record never aborts the caller's batch.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23503": // foreign_key_violation
			return fmt.Errorf("%w: %v", domain.ErrDependencyMissing, err)
		case "23502", "23514", "22001", "22P02": // not-null, check, bad value
			return fmt.Errorf("%w: %v", domain.ErrInvalidEntity, err)
		}
	}
	return err
}
