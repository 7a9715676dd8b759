package dataset

import (
	"sort"
	"time"
)

// Row is a single record of a dataset: column name to scalar value.
// Values are limited to what JSON can carry (string, float64, bool, nil).
type Row map[string]any

// Dataset is the unit of persistence and sync. The id is client-generated
// at creation and never reassigned. Rows are always replaced as a whole,
// never patched per-row.
type Dataset struct {
	ID        string   `json:"id"`
	OwnerID   string   `json:"ownerId"`
	Name      string   `json:"name"`
	Rows      []Row    `json:"rows"`
	Columns   []string `json:"columns"`
	CreatedAt int64    `json:"createdAt"` // epoch milliseconds
	RowCount  int      `json:"rowCount"`
}

// ColumnsOf derives the ordered column names from the first row. Go maps do
// not preserve insertion order, so columns are sorted to keep the derivation
// deterministic. An empty row set yields no columns.
func ColumnsOf(rows []Row) []string {
	if len(rows) == 0 {
		return nil
	}
	cols := make([]string, 0, len(rows[0]))
	for name := range rows[0] {
		cols = append(cols, name)
	}
	sort.Strings(cols)
	return cols
}

// NowMillis returns the current time as epoch milliseconds, the timestamp
// unit used for CreatedAt and queue diagnostics.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
