// File: quantize.go
// Role: Quantize — bins a numeric column into nBins equal-width buckets
// over its observed [min, max] range and replaces it with a categorical
// column of bucket midpoints, mirroring the original's `pandas.cut(...).mid`
// behavior (data.py:quantize) without pulling in a dataframe library.
package dataset

import (
	"fmt"
	"math"
	"sort"

	"github.com/leoware/pqp-go/symbols"
)

// Quantize returns a new View in which the column named by nameOrVar (a
// string or symbols.Variable) has been replaced by nBins equal-width bins
// over its observed range, each row mapped to its bin's midpoint and the
// column's Domain becoming categorical over the resulting midpoints. nBins
// defaults to 2 if omitted. The new View's provenance Step records which
// intervals mapped to which midpoint.
//
// Returns ErrColumnNotFound if the column doesn't exist,
// ErrQuantizeRequiresNumeric if it isn't []int64 or []float64, or
// ErrTooFewBins if an explicit nBins < 1 is given.
func (v *View) Quantize(nameOrVar interface{}, nBins ...int) (*View, error) {
	bins := 2
	if len(nBins) > 0 {
		bins = nBins[0]
	}
	if bins < 1 {
		return nil, ErrTooFewBins
	}

	name, err := resolveName(nameOrVar)
	if err != nil {
		return nil, err
	}
	col, ok := v.columns[name]
	if !ok {
		return nil, ErrColumnNotFound
	}

	values, err := numericValues(col)
	if err != nil {
		return nil, err
	}

	midpoints, width := binMidpoints(values, bins)

	newColumns := make(map[string]interface{}, len(v.columns))
	for n, c := range v.columns {
		newColumns[n] = c
	}
	newColumns[name] = midpoints

	categories := make([]interface{}, len(midpoints))
	for i, m := range midpoints {
		categories[i] = m
	}
	domain, err := symbols.NewCategoricalDomain(categories)
	if err != nil {
		return nil, err
	}

	nv, err := NewView(newColumns, WithDomain(name, domain))
	if err != nil {
		return nil, err
	}

	sub := nv.step.Substep(fmt.Sprintf("Quantizing %s into %d bins", name, bins))
	for _, mid := range uniqueSorted(midpoints) {
		sub.Write(fmt.Sprintf("Mapping elements on (%g, %g] to %g", mid-width/2, mid+width/2, mid))
	}

	return nv, nil
}

func numericValues(col interface{}) ([]float64, error) {
	switch c := col.(type) {
	case []int64:
		out := make([]float64, len(c))
		for i, v := range c {
			out[i] = float64(v)
		}
		return out, nil
	case []float64:
		return append([]float64(nil), c...), nil
	default:
		return nil, ErrQuantizeRequiresNumeric
	}
}

// binMidpoints maps each value in values to the midpoint of its equal-width
// bin over [min(values), max(values)] split into nBins buckets, also
// reporting the bin width. Bins are closed on the right, (lo, hi], and the
// lowest bin also holds min itself. A degenerate range (min == max) places
// every value in a single zero-width bin at that value.
func binMidpoints(values []float64, nBins int) ([]float64, float64) {
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	out := make([]float64, len(values))
	span := max - min
	if span == 0 {
		for i := range values {
			out[i] = min
		}
		return out, 0
	}

	width := span / float64(nBins)
	for i, v := range values {
		bin := int(math.Ceil((v-min)/width)) - 1
		if bin < 0 {
			bin = 0
		}
		if bin >= nBins {
			bin = nBins - 1
		}
		lo := min + float64(bin)*width
		hi := lo + width
		out[i] = (lo + hi) / 2
	}

	return out, width
}

func uniqueSorted(values []float64) []float64 {
	seen := make(map[float64]struct{}, len(values))
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}
