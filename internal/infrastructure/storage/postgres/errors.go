package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the repositories care about.
const (
	codeUniqueViolation = "23505"
	codeCheckViolation  = "23514"
)

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	return hasSQLState(err, codeUniqueViolation)
}

// IsCheckViolation reports whether err is a check constraint violation.
// The stock_entries non-negativity CHECK surfaces this way if a decrement
// ever slips past the row-lock availability check.
func IsCheckViolation(err error) bool {
	return hasSQLState(err, codeCheckViolation)
}

func hasSQLState(err error, state string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == state
	}
	return false
}
