// Package sql provides lightweight statement scanning for SoloDB.
//
// SoloDB does not parse SQL; the embedded engine does that. What the rest
// of the codebase needs is script handling: cutting a multi-statement
// script into individual statements without tripping over semicolons in
// string literals or comments, and classifying a statement by its leading
// keyword.
//
// # Splitting Scripts
//
//	for _, statement := range sql.SplitStatements(script) {
//	    // each statement is trimmed and non-blank
//	}
//
// # Classifying Statements
//
//	if sql.IsQuery(statement) {
//	    // SELECT, PRAGMA, EXPLAIN, WITH, VALUES
//	}
package sql
