package dbx

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	return pgCode(err) == pgerrcode.UniqueViolation
}

// IsInvalidInput reports whether PostgreSQL rejected a parameter's text form,
// e.g. a malformed UUID.
func IsInvalidInput(err error) bool {
	return pgCode(err) == pgerrcode.InvalidTextRepresentation
}
