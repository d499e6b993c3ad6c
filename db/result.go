package db

import (
	"fmt"
	"io"

	"github.com/nfisher2/SoloDB/core"
)

// ExecResult carries the execution metadata for a write statement.
type ExecResult struct {
	LastInsertID int64
	RowsAffected int64
}

// QueryResult is a result set with its column order preserved.
type QueryResult struct {
	Columns []string
	Rows    []core.Row
}

// Display renders the result set as a text table followed by a row count.
func (result QueryResult) Display(w io.Writer) {
	if len(result.Rows) > 0 {
		table := newTableWriter(w)
		table.Header(result.Columns)
		for _, row := range result.Rows {
			cells := make([]string, len(result.Columns))
			for index, column := range result.Columns {
				cells[index] = core.MapKey(row[column])
			}
			table.Row(cells)
		}
		table.Render()
	}
	fmt.Fprintf(w, "%d row(s)\n", len(result.Rows))
}
