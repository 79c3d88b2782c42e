package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/zephyr-centrum/internal/config"
	"github.com/MKhiriev/zephyr-centrum/internal/logger"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Constraint names declared in migrations/postgres.
const (
	pgUsernameConstraint = "users_username_key"
	pgEmailConstraint    = "users_email_key"
)

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := open(ctx, DriverPostgres, cfg, log)
	if err != nil {
		return nil, err
	}

	return &DB{
		DB:          conn,
		driver:      DriverPostgres,
		builder:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		uniqueField: postgresUniqueField,
		logger:      log,
	}, nil
}

func postgresError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr, true
	}

	return nil, false
}

func postgresUniqueField(err error) (string, bool) {
	pgErr, ok := postgresError(err)
	if !ok || pgErr.Code != pgerrcode.UniqueViolation {
		return "", false
	}

	switch pgErr.ConstraintName {
	case pgUsernameConstraint:
		return "username", true
	case pgEmailConstraint:
		return "email", true
	default:
		return "", true
	}
}
