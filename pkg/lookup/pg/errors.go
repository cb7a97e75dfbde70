package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
	ErrFailedToParseDBConfig    = errors.New("failed to parse db config")
	ErrHealthcheckFailed        = errors.New("healthcheck failed, connection is not available")
	ErrUnknownKind              = errors.New("no table registered for kind")
	ErrFailedToDecodeRow        = errors.New("failed to decode row")
)

// IsNotFoundError detects pgx.ErrNoRows.
func IsNotFoundError(err error) bool {
	return err != nil && errors.Is(err, pgx.ErrNoRows)
}

// IsInvalidValueError detects identifiers the column type cannot hold,
// e.g. "abc" against an integer key (SQLSTATE 22P02) or an out of range
// number (SQLSTATE 22003). Such an identifier names no row.
func IsInvalidValueError(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && (pgErr.Code == "22P02" || pgErr.Code == "22003")
}
