// Package db provides the query execution layer for SoloDB.
//
// The Store type is the main entry point for running SQL statements
// against the single underlying connection. It turns low-level driver
// calls into uniform helpers and normalizes every failure into one
// wrapped error that carries the statement text and call-site stack.
//
// # Store Usage
//
//	handle, err := db.Open(db.Config{Path: "app.db"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store := db.NewStore(handle, logger)
//
//	row, err := store.GetRow(ctx, "SELECT * FROM notes WHERE id = ?", 1)
//	value, err := store.GetValue(ctx, "SELECT MAX(id) FROM sync")
//
// # Helpers
//
//   - Execute: statement metadata (last insert id, rows affected)
//   - GetRows: every row, in order
//   - GetRow: first row, or ErrNoRows
//   - GetRowOrNull: first row, or nil without an error
//   - GetValue: first column of the first row, or nil
//   - GetColumn: first column of every row
//   - GetMap: first column to second column, last write wins
//   - Insert / Replace: record writes with positional binding only
//
// The store opens no transactions of its own; transaction lifecycle
// belongs to the tx package.
package db
