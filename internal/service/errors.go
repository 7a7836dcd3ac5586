package service

import (
	"database/sql"
	"errors"

	"eats-backend/internal/domain"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// kindOf folds a repository error into the closed error-kind set.
func kindOf(err error) domain.ErrorKind {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.KindNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.KindConflict
	}
	return domain.KindUnknown
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
