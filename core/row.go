package core

import (
	"fmt"
	"sort"
)

// Row is a single result row: column name to driver value.
type Row map[string]any

// Record holds the column values for a pending write.
type Record map[string]any

// Columns returns the record's column names in sorted order so the
// generated statement and its bound parameters line up deterministically.
func (record Record) Columns() []string {
	columns := make([]string, 0, len(record))
	for column := range record {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}

// Values returns the record's values in the order of the given columns.
func (record Record) Values(columns []string) []any {
	values := make([]any, len(columns))
	for index, column := range columns {
		values[index] = record[column]
	}
	return values
}

// MapKey renders a column value as a map key. Database keys arrive as
// driver-dependent types (string, int64, []byte), all of which collapse
// to their natural text form.
func MapKey(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
