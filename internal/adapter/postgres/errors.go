package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/growthbox-backend/internal/domain"
)

// SQLSTATE codes with a domain meaning.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
)

var constraintErrors = map[string]error{
	codeUniqueViolation:     domain.ErrAlreadyExists,
	codeForeignKeyViolation: domain.ErrNotFound,
	codeCheckViolation:      domain.ErrValidation,
	codeNotNullViolation:    domain.ErrValidation,
}

// MapError translates a driver error into a domain error prefixed with the
// entity (and id, when known). Context errors keep their identity.
func MapError(err error, entity, id string) error {
	if err == nil {
		return nil
	}
	label := entity
	if id != "" {
		label += " " + id
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", label, err)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", label, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if derr, ok := constraintErrors[pgErr.Code]; ok {
			return fmt.Errorf("%s: %w", label, derr)
		}
		return fmt.Errorf("%s: %w", label, err)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.SafeToRetry(err) {
		return fmt.Errorf("%s: %w: %v", label, domain.ErrBackendUnavailable, err)
	}
	return fmt.Errorf("%s: %w", label, err)
}
