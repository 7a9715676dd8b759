// Package ingest parses uploaded CSV and JSON payloads into dataset rows.
package ingest

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/maxixo/datavista/internal/dataset"
)

var (
	ErrNoHeader      = errors.New("csv has no header row")
	ErrNotObjectList = errors.New("json must be an array of objects")
)

// CSV parses comma-separated input. The first record is the header; cell
// values are coerced to number, boolean or nil where they parse as such,
// and stay strings otherwise.
func CSV(r io.Reader) ([]dataset.Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var rows []dataset.Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}

		row := make(dataset.Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = coerce(record[i])
			}
		}
		rows = append(rows, row)
	}

	if err := dataset.Validate(rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// coerce turns a CSV cell into the scalar it looks like.
func coerce(cell string) any {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" || strings.EqualFold(trimmed, "null") {
		return nil
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return n
	}
	switch strings.ToLower(trimmed) {
	case "true":
		return true
	case "false":
		return false
	}
	return cell
}

// JSON parses an array of flat objects. Nested objects and arrays are
// rejected; rows carry scalar values only.
func JSON(r io.Reader) ([]dataset.Row, error) {
	var raw []map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotObjectList, err)
	}

	rows := make([]dataset.Row, 0, len(raw))
	for i, obj := range raw {
		row := make(dataset.Row, len(obj))
		for col, v := range obj {
			switch v.(type) {
			case string, float64, bool, nil:
				row[col] = v
			default:
				return nil, fmt.Errorf("row %d column %q: value must be a scalar", i, col)
			}
		}
		rows = append(rows, row)
	}

	if err := dataset.Validate(rows); err != nil {
		return nil, err
	}
	return rows, nil
}
