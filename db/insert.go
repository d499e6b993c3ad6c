package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/nfisher2/SoloDB/core"
)

// Insert writes the record into the table as
// INSERT INTO table(cols) VALUES (?, ...), binding every value as a
// positional parameter.
//
// A record with zero fields is a degenerate no-op: it is logged at
// error level and skipped without a statement, and the returned
// ExecResult carries no row identifier.
func (store *Store) Insert(ctx context.Context, table string, record core.Record) (ExecResult, error) {
	return store.insert(ctx, table, record, false)
}

// Replace is Insert with INSERT OR REPLACE semantics.
func (store *Store) Replace(ctx context.Context, table string, record core.Record) (ExecResult, error) {
	return store.insert(ctx, table, record, true)
}

func (store *Store) insert(ctx context.Context, table string, record core.Record, replace bool) (ExecResult, error) {
	if len(record) == 0 {
		store.log.Error("refusing to insert empty record", zap.String("table", table))
		return ExecResult{}, nil
	}

	columns := record.Columns()

	builder := sq.Insert(table).
		Columns(columns...).
		Values(record.Values(columns)...)
	if replace {
		builder = builder.Options("OR REPLACE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return ExecResult{}, store.fail(err, "INSERT INTO "+table)
	}

	return store.Execute(ctx, query, args...)
}
