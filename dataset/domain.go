// File: domain.go
// Role: inferDomain — chooses the most specific Domain the column's values
// admit, in decreasing specificity: binary (values ⊆ {0,1} or booleans) >
// integer (all values integral) > real (any other float) > categorical
// (strings and everything else).
package dataset

import "github.com/leoware/pqp-go/symbols"

// inferDomain builds the most specific Domain that covers column's values.
// Returns ErrUnsupportedColumnType for a column that is not one of the four
// accepted slice types, ErrEmptyColumn for a zero-row column.
func inferDomain(column interface{}) (symbols.Domain, error) {
	switch col := column.(type) {
	case []bool:
		if len(col) == 0 {
			return nil, ErrEmptyColumn
		}
		return symbols.NewBinaryDomain(), nil

	case []int64:
		if len(col) == 0 {
			return nil, ErrEmptyColumn
		}
		min, max := col[0], col[0]
		for _, v := range col[1:] {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		if min >= 0 && max <= 1 {
			return symbols.NewBinaryDomain(), nil
		}
		return symbols.NewIntegerDomain(int(min), int(max))

	case []float64:
		if len(col) == 0 {
			return nil, ErrEmptyColumn
		}
		min, max := col[0], col[0]
		integral := true
		for _, v := range col {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
			if v != float64(int64(v)) {
				integral = false
			}
		}
		if integral && min >= 0 && max <= 1 {
			return symbols.NewBinaryDomain(), nil
		}
		if integral {
			return symbols.NewIntegerDomain(int(min), int(max))
		}
		return symbols.NewRealDomain(min, max)

	case []string:
		if len(col) == 0 {
			return nil, ErrEmptyColumn
		}
		values := make([]interface{}, len(col))
		for i, v := range col {
			values[i] = v
		}
		return symbols.NewCategoricalDomain(values)

	default:
		return nil, ErrUnsupportedColumnType
	}
}

// columnLen reports the row count of a supported column type, or -1 for an
// unsupported one.
func columnLen(column interface{}) int {
	switch col := column.(type) {
	case []bool:
		return len(col)
	case []int64:
		return len(col)
	case []float64:
		return len(col)
	case []string:
		return len(col)
	default:
		return -1
	}
}

// columnValues enumerates a column's raw values as interface{}, for domain
// membership checks.
func columnValues(column interface{}) []interface{} {
	switch col := column.(type) {
	case []bool:
		out := make([]interface{}, len(col))
		for i, v := range col {
			out[i] = v
		}
		return out
	case []int64:
		out := make([]interface{}, len(col))
		for i, v := range col {
			out[i] = v
		}
		return out
	case []float64:
		out := make([]interface{}, len(col))
		for i, v := range col {
			out[i] = v
		}
		return out
	case []string:
		out := make([]interface{}, len(col))
		for i, v := range col {
			out[i] = v
		}
		return out
	default:
		return nil
	}
}
