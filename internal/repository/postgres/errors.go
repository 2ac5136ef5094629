package postgres

import (
	"errors"

	"github.com/baharkarakas/timebank-backend/internal/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// mapErr translates driver errors into domain errors; others pass through.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return models.ErrUserExists
		case pgerrcode.NumericValueOutOfRange:
			return models.ErrOutOfRange
		}
	}
	return err
}
