package main

import (
	"fmt"

	"github.com/leoware/pqp-go/dataset"
)

// buildView converts a datasetSpec's loosely-typed YAML columns (each
// element is whatever yaml.v3 decoded a scalar into: bool, int, float64,
// or string) into the strictly-typed columns dataset.NewView requires.
func buildView(spec datasetSpec) (*dataset.View, error) {
	if len(spec.Columns) == 0 {
		return nil, fmt.Errorf("dataset.columns is required")
	}

	columns := make(map[string]interface{}, len(spec.Columns))
	for name, raw := range spec.Columns {
		col, err := convertColumn(raw)
		if err != nil {
			return nil, fmt.Errorf("dataset.columns.%s: %w", name, err)
		}
		columns[name] = col
	}

	return dataset.NewView(columns)
}

// convertColumn classifies a column's elements and converts it to the
// narrowest dataset.NewView-supported type: []bool if every element is a
// bool, []int64 if every element is an int, []float64 if every element is
// numeric (int or float64) with at least one float64, []string if every
// element is a string.
func convertColumn(raw []interface{}) (interface{}, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty column")
	}

	allBool, allInt, allNumeric, allString := true, true, true, true
	for _, v := range raw {
		switch v.(type) {
		case bool:
			allInt, allNumeric, allString = false, false, false
		case int:
			allBool, allString = false, false
		case float64:
			allBool, allInt, allString = false, false, false
		case string:
			allBool, allInt, allNumeric = false, false, false
		default:
			return nil, fmt.Errorf("unsupported value %v (%T)", v, v)
		}
	}

	switch {
	case allBool:
		out := make([]bool, len(raw))
		for i, v := range raw {
			out[i] = v.(bool)
		}
		return out, nil
	case allInt:
		out := make([]int64, len(raw))
		for i, v := range raw {
			out[i] = int64(v.(int))
		}
		return out, nil
	case allNumeric:
		out := make([]float64, len(raw))
		for i, v := range raw {
			switch n := v.(type) {
			case int:
				out[i] = float64(n)
			case float64:
				out[i] = n
			}
		}
		return out, nil
	case allString:
		out := make([]string, len(raw))
		for i, v := range raw {
			out[i] = v.(string)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("mixed-type column")
	}
}
