// Package SoloDB provides a serialized-transaction access layer for a
// single embedded SQLite connection.
//
// SoloDB sits in front of one database connection shared by many
// concurrent callers. It guarantees that at most one transaction is
// ever open against the connection, that code already inside a
// transaction joins it instead of nesting or deadlocking, and that
// every failure is logged and surfaced with full diagnostic context.
//
// # Quick Start
//
// Open an in-memory database:
//
//	instance, err := SoloDB.OpenMemory(logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer instance.Close()
//
//	store := instance.Store
//	store.ExecScript(ctx, "CREATE TABLE notes (id INTEGER PRIMARY KEY, title TEXT)")
//
//	err = instance.Coordinator.RunInTransaction(ctx, func(ctx context.Context) error {
//	    _, err := store.Insert(ctx, "notes", core.Record{"title": "hello"})
//	    return err
//	})
//
// # Layers
//
//   - db: the query executor (Execute, GetRow, GetRows, GetValue,
//     GetColumn, GetMap, Insert, Replace) over the one connection
//   - tx: the transaction coordinator (global slot, reentrancy,
//     commit/rollback lifecycle)
//   - core: the row and record types exchanged with application code
package SoloDB
