// Package core provides core types used throughout SoloDB.
//
// The package defines the fundamental row and record shapes exchanged
// between the query executor and application code.
//
// # Row
//
// Row is how query results come back: a mapping from column name to the
// value the driver produced for it.
//
//	row, _ := store.GetRow(ctx, "SELECT id, title FROM notes WHERE id = ?", 1)
//	title := row["title"]
//
// # Record
//
// Record carries the column values for an insert or replace. Column
// order is derived from the record deterministically (sorted), so the
// same record always produces the same statement text.
//
//	record := core.Record{"title": "groceries", "body": "milk, eggs"}
//	result, _ := store.Insert(ctx, "notes", record)
package core
