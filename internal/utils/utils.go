package utils

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsPGForeignKeyViolation reports whether err is a PostgreSQL foreign key
// violation (code 23503) — an insert or update referencing a parent row
// that does not exist.
func IsPGForeignKeyViolation(err error) bool {
	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		return pge.Code == "23503"
	}
	return false
}

// IsPGCheckViolation reports whether err is a PostgreSQL check constraint
// violation (code 23514), e.g. an energy value outside 0..10.
func IsPGCheckViolation(err error) bool {
	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		return pge.Code == "23514"
	}
	return false
}
