// Package transform applies filter, sort and group-by operations to an
// in-memory row set. Every function returns a new slice; input rows are
// never mutated.
package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/maxixo/datavista/internal/dataset"
)

// FilterOperator names a row predicate.
type FilterOperator string

const (
	OpEquals   FilterOperator = "equals"
	OpContains FilterOperator = "contains"
	OpGreater  FilterOperator = "greater"
	OpLess     FilterOperator = "less"
	OpBetween  FilterOperator = "between"
)

// FilterConfig selects rows where the column matches the operator. Value2
// is only used by the between operator (inclusive bounds).
type FilterConfig struct {
	Column   string         `json:"column"`
	Operator FilterOperator `json:"operator"`
	Value    any            `json:"value"`
	Value2   any            `json:"value2,omitempty"`
}

// SortDirection is asc or desc.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

type SortConfig struct {
	Column    string        `json:"column"`
	Direction SortDirection `json:"direction"`
}

// AggregationOp names a group-by aggregation.
type AggregationOp string

const (
	AggSum   AggregationOp = "sum"
	AggAvg   AggregationOp = "avg"
	AggCount AggregationOp = "count"
	AggMin   AggregationOp = "min"
	AggMax   AggregationOp = "max"
)

type Aggregation struct {
	Column    string        `json:"column"`
	Operation AggregationOp `json:"operation"`
}

type GroupByConfig struct {
	Column       string        `json:"column"`
	Aggregations []Aggregation `json:"aggregations"`
}

// Filter returns the rows matching the predicate. An unknown operator
// matches everything.
func Filter(rows []dataset.Row, cfg FilterConfig) []dataset.Row {
	out := make([]dataset.Row, 0, len(rows))
	for _, row := range rows {
		if matches(row[cfg.Column], cfg) {
			out = append(out, row)
		}
	}
	return out
}

func matches(value any, cfg FilterConfig) bool {
	switch cfg.Operator {
	case OpEquals:
		return value == cfg.Value
	case OpContains:
		return strings.Contains(
			strings.ToLower(stringify(value)),
			strings.ToLower(stringify(cfg.Value)),
		)
	case OpGreater:
		return numeric(value) > numeric(cfg.Value)
	case OpLess:
		return numeric(value) < numeric(cfg.Value)
	case OpBetween:
		n := numeric(value)
		return n >= numeric(cfg.Value) && n <= numeric(cfg.Value2)
	default:
		return true
	}
}

// Sort returns a sorted copy of the rows. Numeric values compare
// numerically, everything else compares as strings; the sort is stable.
func Sort(rows []dataset.Row, cfg SortConfig) []dataset.Row {
	out := make([]dataset.Row, len(rows))
	copy(out, rows)

	sort.SliceStable(out, func(i, j int) bool {
		if cfg.Direction == Desc {
			return lessValue(out[j][cfg.Column], out[i][cfg.Column])
		}
		return lessValue(out[i][cfg.Column], out[j][cfg.Column])
	})
	return out
}

func lessValue(a, b any) bool {
	na, aOK := toNumber(a)
	nb, bOK := toNumber(b)
	if aOK && bOK {
		return na < nb
	}
	return stringify(a) < stringify(b)
}

// GroupBy collapses rows into one row per distinct value of the group
// column, in order of first appearance, with one `<column>_<op>` result
// column per aggregation.
func GroupBy(rows []dataset.Row, cfg GroupByConfig) []dataset.Row {
	type group struct {
		value any
		items []dataset.Row
	}

	var order []string
	groups := make(map[string]*group)
	for _, row := range rows {
		v := row[cfg.Column]
		key := stringify(v)
		g, ok := groups[key]
		if !ok {
			g = &group{value: v}
			groups[key] = g
			order = append(order, key)
		}
		g.items = append(g.items, row)
	}

	out := make([]dataset.Row, 0, len(order))
	for _, key := range order {
		g := groups[key]
		result := dataset.Row{cfg.Column: g.value}
		for _, agg := range cfg.Aggregations {
			result[fmt.Sprintf("%s_%s", agg.Column, agg.Operation)] = aggregate(g.items, agg)
		}
		out = append(out, result)
	}
	return out
}

func aggregate(items []dataset.Row, agg Aggregation) float64 {
	values := make([]float64, len(items))
	for i, item := range items {
		values[i] = numeric(item[agg.Column])
	}

	switch agg.Operation {
	case AggCount:
		return float64(len(values))
	case AggSum, AggAvg:
		var sum float64
		for _, v := range values {
			sum += v
		}
		if agg.Operation == AggAvg && len(values) > 0 {
			return sum / float64(len(values))
		}
		return sum
	case AggMin:
		min := values[0]
		for _, v := range values[1:] {
			if v < min {
				min = v
			}
		}
		return min
	case AggMax:
		max := values[0]
		for _, v := range values[1:] {
			if v > max {
				max = v
			}
		}
		return max
	default:
		return 0
	}
}

// Apply runs the full pipeline: filters first, then grouping, then sorting.
func Apply(rows []dataset.Row, filters []FilterConfig, groupBy *GroupByConfig, sortCfg *SortConfig) []dataset.Row {
	out := rows
	for _, f := range filters {
		out = Filter(out, f)
	}
	if groupBy != nil {
		out = GroupBy(out, *groupBy)
	}
	if sortCfg != nil {
		out = Sort(out, *sortCfg)
	}
	return out
}

// numeric coerces a scalar to float64, defaulting to 0 when it cannot be
// interpreted as a number.
func numeric(v any) float64 {
	n, _ := toNumber(v)
	return n
}

func toNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		n, err := strconv.ParseFloat(t, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
