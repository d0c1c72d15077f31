package dbx

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Driver names accepted by sql.Open.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// Dialect adapts postgres-flavoured SQL ($1, $2, ...) to a concrete driver.
type Dialect interface {
	// Driver returns the database/sql driver name.
	Driver() string
	// GooseDialect returns the goose dialect name used for migrations.
	GooseDialect() string
	// Rebind rewrites placeholders for the driver.
	Rebind(query string) string
}

// PostgresDialect is the identity dialect for pgx.
type PostgresDialect struct{}

func (PostgresDialect) Driver() string             { return DriverPostgres }
func (PostgresDialect) GooseDialect() string       { return "pgx" }
func (PostgresDialect) Rebind(query string) string { return query }

var dollarPlaceholder = regexp.MustCompile(`\$(\d+)`)

// SQLiteDialect rewrites $N into SQLite's numbered ?N parameters.
type SQLiteDialect struct{}

func (SQLiteDialect) Driver() string       { return DriverSQLite }
func (SQLiteDialect) GooseDialect() string { return "sqlite3" }
func (SQLiteDialect) Rebind(query string) string {
	return dollarPlaceholder.ReplaceAllString(query, "?$1")
}

// DialectFor returns the dialect for a driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case DriverPostgres, "postgres":
		return PostgresDialect{}, nil
	case DriverSQLite, "sqlite3":
		return SQLiteDialect{}, nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

// IsUniqueViolation reports whether err comes from a unique constraint.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
			return true
		}
		return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "UNIQUE")
	}

	return false
}
