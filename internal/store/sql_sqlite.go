package store

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/zephyr-centrum/internal/config"
	"github.com/MKhiriev/zephyr-centrum/internal/logger"
	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"
)

func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := open(ctx, DriverSQLite, cfg, log)
	if err != nil {
		return nil, err
	}

	return &DB{
		DB:          conn,
		driver:      DriverSQLite,
		builder:     sq.StatementBuilder.PlaceholderFormat(sq.Question),
		uniqueField: sqliteUniqueField,
		logger:      log,
	}, nil
}

// sqliteUniqueField reads the column from messages of the form
// "UNIQUE constraint failed: users.email".
func sqliteUniqueField(err error) (string, bool) {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique {
		return "", false
	}

	msg := sqliteErr.Error()
	switch {
	case strings.Contains(msg, "users.username"):
		return "username", true
	case strings.Contains(msg, "users.email"):
		return "email", true
	default:
		return "", true
	}
}
