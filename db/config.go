package db

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/pkg/errors"

	// Register the modernc SQLite driver with database/sql.
	_ "modernc.org/sqlite"
)

// Config captures the SQLite store configuration.
type Config struct {
	// Path is the database location, or ":memory:" for in-memory use.
	Path string

	// BusyTimeout configures the sqlite busy timeout via PRAGMA busy_timeout.
	BusyTimeout time.Duration

	// ForeignKeys enables PRAGMA foreign_keys on the connection.
	ForeignKeys bool
}

// Open opens the single database connection described by the config.
//
// The pool exposed by database/sql is pinned to exactly one connection:
// raw BEGIN/COMMIT/ROLLBACK statements are only meaningful if every
// statement in between runs on the same session. The coordinator in the
// tx package relies on this.
func Open(config Config) (*sql.DB, error) {
	path := config.Path
	if path == "" {
		path = ":memory:"
	}

	handle, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %s", path)
	}

	handle.SetMaxOpenConns(1)
	handle.SetMaxIdleConns(1)

	if err := applyPragmas(context.Background(), handle, config); err != nil {
		handle.Close()
		return nil, err
	}

	return handle, nil
}

// OpenMemory opens a fresh in-memory database, for tests or ephemeral use.
func OpenMemory() (*sql.DB, error) {
	return Open(Config{Path: ":memory:"})
}

func applyPragmas(ctx context.Context, handle *sql.DB, config Config) error {
	if config.BusyTimeout > 0 {
		ms := strconv.FormatInt(config.BusyTimeout.Milliseconds(), 10)
		if _, err := handle.ExecContext(ctx, "PRAGMA busy_timeout = "+ms); err != nil {
			return errors.Wrap(err, "failed to set busy timeout")
		}
	}
	if config.ForeignKeys {
		if _, err := handle.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			return errors.Wrap(err, "failed to enable foreign keys")
		}
	}
	return nil
}
