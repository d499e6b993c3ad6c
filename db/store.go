package db

import (
	"context"
	"database/sql"

	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nfisher2/SoloDB/core"
	sqlscript "github.com/nfisher2/SoloDB/sql"
)

var (
	// ErrNoRows is returned by GetRow when the query produced no rows.
	ErrNoRows = errors.New("no rows in result")
)

// Querier is the seam between the store and the underlying connection.
// It is satisfied by *sql.DB (and by *sql.Tx, though the store never
// opens driver-level transactions itself; see the tx package).
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)

// Store wraps the single database connection with uniform query helpers.
// Every failure funnels through one wrapping routine that logs it and
// attaches the statement text plus a call-site stack before surfacing it.
type Store struct {
	querier Querier
	log     *zap.Logger
}

// NewStore creates a store on top of the given connection. A nil logger
// falls back to a no-op logger.
func NewStore(querier Querier, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		querier: querier,
		log:     log,
	}
}

// Querier exposes the underlying connection seam, for callers that need
// raw access to the connection.
func (store *Store) Querier() Querier {
	return store.querier
}

// Execute runs a statement and returns its execution metadata.
func (store *Store) Execute(ctx context.Context, query string, args ...any) (ExecResult, error) {
	result, err := store.querier.ExecContext(ctx, query, args...)
	if err != nil {
		return ExecResult{}, store.fail(err, query)
	}

	// SQLite always knows both; other drivers may not, and that is fine.
	lastID, _ := result.LastInsertId()
	affected, _ := result.RowsAffected()

	return ExecResult{
		LastInsertID: lastID,
		RowsAffected: affected,
	}, nil
}

// ExecScript runs a multi-statement script. Statements are separated by
// semicolons; semicolons inside string literals and comments are left
// alone. No parameters are bound.
func (store *Store) ExecScript(ctx context.Context, script string) error {
	for _, statement := range sqlscript.SplitStatements(script) {
		if _, err := store.querier.ExecContext(ctx, statement); err != nil {
			return store.fail(err, statement)
		}
	}
	return nil
}

// GetRows returns every result row, in order.
func (store *Store) GetRows(ctx context.Context, query string, args ...any) ([]core.Row, error) {
	var rows []core.Row
	if err := sqlscan.Select(ctx, store.querier, &rows, query, args...); err != nil {
		return nil, store.fail(err, query)
	}
	return rows, nil
}

// GetRow returns the first result row, or ErrNoRows if there is none.
// Further rows are not an error; they are simply not read.
func (store *Store) GetRow(ctx context.Context, query string, args ...any) (core.Row, error) {
	rows, err := store.querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, store.fail(err, query)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, store.fail(err, query)
		}
		return nil, ErrNoRows
	}

	columns, err := rows.Columns()
	if err != nil {
		return nil, store.fail(err, query)
	}
	values, err := scanValues(rows)
	if err != nil {
		return nil, store.fail(err, query)
	}

	row := make(core.Row, len(columns))
	for index, column := range columns {
		row[column] = values[index]
	}
	return row, nil
}

// GetRowOrNull returns the first result row, or nil (and no error) if
// the query produced no rows.
func (store *Store) GetRowOrNull(ctx context.Context, query string, args ...any) (core.Row, error) {
	row, err := store.GetRow(ctx, query, args...)
	if errors.Is(err, ErrNoRows) {
		return nil, nil
	}
	return row, err
}

// GetValue returns the first column of the first row, or nil if the
// query produced no rows.
func (store *Store) GetValue(ctx context.Context, query string, args ...any) (any, error) {
	rows, err := store.querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, store.fail(err, query)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, store.fail(err, query)
		}
		return nil, nil
	}

	values, err := scanValues(rows)
	if err != nil {
		return nil, store.fail(err, query)
	}

	return values[0], nil
}

// GetColumn returns the first column of every row, in order.
func (store *Store) GetColumn(ctx context.Context, query string, args ...any) ([]any, error) {
	rows, err := store.querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, store.fail(err, query)
	}
	defer rows.Close()

	var column []any
	for rows.Next() {
		values, err := scanValues(rows)
		if err != nil {
			return nil, store.fail(err, query)
		}
		column = append(column, values[0])
	}
	if err := rows.Err(); err != nil {
		return nil, store.fail(err, query)
	}

	return column, nil
}

// GetMap builds a mapping from the first column to the second column
// across all rows. Duplicate keys are last-write-wins, not an error.
func (store *Store) GetMap(ctx context.Context, query string, args ...any) (map[string]any, error) {
	rows, err := store.querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, store.fail(err, query)
	}
	defer rows.Close()

	result := make(map[string]any)
	for rows.Next() {
		values, err := scanValues(rows)
		if err != nil {
			return nil, store.fail(err, query)
		}
		if len(values) < 2 {
			return nil, store.fail(errors.New("query must select at least two columns"), query)
		}
		result[core.MapKey(values[0])] = values[1]
	}
	if err := rows.Err(); err != nil {
		return nil, store.fail(err, query)
	}

	return result, nil
}

// Query returns the result with its column order preserved, for callers
// that render rows (the CLI shell).
func (store *Store) Query(ctx context.Context, query string, args ...any) (QueryResult, error) {
	rows, err := store.querier.QueryContext(ctx, query, args...)
	if err != nil {
		return QueryResult{}, store.fail(err, query)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return QueryResult{}, store.fail(err, query)
	}

	result := QueryResult{Columns: columns}
	for rows.Next() {
		values, err := scanValues(rows)
		if err != nil {
			return QueryResult{}, store.fail(err, query)
		}
		row := make(core.Row, len(columns))
		for index, column := range columns {
			row[column] = values[index]
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return QueryResult{}, store.fail(err, query)
	}

	return result, nil
}

// fail is the single wrapping routine every helper funnels failures
// through: it records the failure to the log and returns the driver
// error wrapped with the statement text and the call-site stack.
func (store *Store) fail(err error, query string) error {
	wrapped := errors.Wrapf(err, "statement failed: %s", query)
	store.log.Error("statement failed",
		zap.String("query", query),
		zap.Error(err),
	)
	return wrapped
}

// scanValues scans the current row into a positional value slice.
func scanValues(rows *sql.Rows) ([]any, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	values := make([]any, len(columns))
	pointers := make([]any, len(columns))
	for index := range values {
		pointers[index] = &values[index]
	}

	if err := rows.Scan(pointers...); err != nil {
		return nil, err
	}

	return values, nil
}
