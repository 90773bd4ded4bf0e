package postgres

import (
	"errors"

	"github.com/lib/pq"

	"mesa/shared/constant"
)

// IsUniqueViolation reports whether err is a postgres unique-constraint
// violation, e.g. the active (date, time) reservation index firing.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}
