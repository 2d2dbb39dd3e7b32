// File: compare.go
// Role: row-level value comparison and counting over a dataset.View's raw
// columns, tolerant of the small numeric type zoo a caller's bindings/
// EqualityEvents may use (int, int64, float64) against the View's declared
// []int64/[]float64/[]bool/[]string columns.
package estimate

import "fmt"

// countRows returns the number of rows in m's View satisfying every
// (column name -> value) pair in conditions.
func (m *MultinomialEstimator) countRows(conditions map[string]interface{}) (int, error) {
	if len(conditions) == 0 {
		return m.view.RowsCount(), nil
	}

	cols := make(map[string]interface{}, len(conditions))
	for name := range conditions {
		col, err := m.view.Column(name)
		if err != nil {
			return 0, err
		}
		cols[name] = col
	}

	count := 0
	n := m.view.RowsCount()
rows:
	for i := 0; i < n; i++ {
		for name, want := range conditions {
			got, err := columnValueAt(cols[name], i)
			if err != nil {
				return 0, err
			}
			if !valuesEqual(got, want) {
				continue rows
			}
		}
		count++
	}

	return count, nil
}

func columnValueAt(col interface{}, i int) (interface{}, error) {
	switch c := col.(type) {
	case []bool:
		return c[i], nil
	case []int64:
		return c[i], nil
	case []float64:
		return c[i], nil
	case []string:
		return c[i], nil
	default:
		return nil, fmt.Errorf("estimate: unsupported column type %T", col)
	}
}

// toFloat64 normalizes the small set of value types a column or bound value
// may hold into a float64, for numeric contexts (Expectation's weighted sum).
func toFloat64(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		return x, true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// valuesEqual compares a column value against a target value (typically
// drawn from an EqualityEvent), tolerating the int/int64/float64/bool
// numeric-type zoo while keeping strings exact.
func valuesEqual(got, want interface{}) bool {
	if gf, ok := toFloat64(got); ok {
		if wf, ok := toFloat64(want); ok {
			return gf == wf
		}
		return false
	}
	gs, gok := got.(string)
	ws, wok := want.(string)
	return gok && wok && gs == ws
}
