package store

import (
	"errors"

	"github.com/filetransfer/filetransfer_api/internal/errlocal"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// dbError turns a driver error into a LocalError. Missing rows become
// ErrNotFound and unique violations ErrConflict, the rest is internal.
func dbError(err error, entity string, details map[string]any) error {
	if err == nil {
		return nil
	}

	var local errlocal.LocalError
	if errors.As(err, &local) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return errlocal.NewErrNotFound(entity+" not found", err.Error(), details)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return errlocal.NewErrConflict(entity+" already exists", pgErr.Detail, details)
		case pgerrcode.ForeignKeyViolation:
			return errlocal.NewErrBadRequest(entity+" references a missing row", pgErr.Detail, details)
		}
	}

	return errlocal.NewErrInternal("database error", err.Error(), details)
}
