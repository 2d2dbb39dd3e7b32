// File: domain.go
// Role: Domain tagged variants (Binary, Categorical, Integer, Real) and the
// common Domain contract: Contains, Cardinality, EnumerateValues.
//
// Determinism:
//   - EnumerateValues() returns values in a stable, sorted-by-string order
//     for Categorical domains and ascending order for Integer/Binary domains.
//
// AI-Hints (file):
//   - Real domains are the only Domain variant with infinite cardinality;
//     Cardinality() returns -1 for them, and EnumerateValues() returns
//     ErrNotDiscrete.
package symbols

import (
	"fmt"
	"sort"
)

// Kind tags which Domain variant a value belongs to.
type Kind int

// Domain variant tags.
const (
	BinaryKind Kind = iota
	CategoricalKind
	IntegerKind
	RealKind
)

// String renders the Kind as its canonical lowercase name.
func (k Kind) String() string {
	switch k {
	case BinaryKind:
		return "binary"
	case CategoricalKind:
		return "categorical"
	case IntegerKind:
		return "integer"
	case RealKind:
		return "real"
	default:
		return "unknown"
	}
}

// Domain describes the set of values a Variable may take on.
//
// Implementations are immutable once constructed. Real is the only variant
// with infinite cardinality (EnumerateValues fails with ErrNotDiscrete).
type Domain interface {
	// Kind reports which tagged variant this Domain is.
	Kind() Kind
	// Contains reports whether value is a member of the domain.
	Contains(value interface{}) bool
	// Cardinality returns the number of values in the domain, or -1 if infinite.
	Cardinality() int
	// EnumerateValues lists every value in the domain in a stable order.
	// Returns ErrNotDiscrete for infinite (Real) domains.
	EnumerateValues() ([]interface{}, error)
	// String renders a short human-readable description of the domain.
	String() string
}

// BinaryDomain is the domain {0, 1}.
type BinaryDomain struct{}

// NewBinaryDomain returns the singleton-shaped {0,1} domain.
func NewBinaryDomain() Domain { return BinaryDomain{} }

// Kind implements Domain.
func (BinaryDomain) Kind() Kind { return BinaryKind }

// Contains implements Domain; accepts 0/1 as int or float64, or bool.
func (BinaryDomain) Contains(value interface{}) bool {
	switch v := value.(type) {
	case int:
		return v == 0 || v == 1
	case int64:
		return v == 0 || v == 1
	case float64:
		return v == 0 || v == 1
	case bool:
		return true
	default:
		return false
	}
}

// Cardinality implements Domain.
func (BinaryDomain) Cardinality() int { return 2 }

// EnumerateValues implements Domain.
func (BinaryDomain) EnumerateValues() ([]interface{}, error) {
	return []interface{}{0, 1}, nil
}

// String implements Domain.
func (BinaryDomain) String() string { return "{0, 1}" }

// CategoricalDomain is a finite, unordered set of opaque values.
type CategoricalDomain struct {
	values map[interface{}]struct{}
}

// NewCategoricalDomain builds a CategoricalDomain from the given values.
// Duplicate values are deduplicated. Returns ErrEmptyDomain if values is empty.
func NewCategoricalDomain(values []interface{}) (Domain, error) {
	if len(values) == 0 {
		return nil, ErrEmptyDomain
	}
	set := make(map[interface{}]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	return CategoricalDomain{values: set}, nil
}

// Kind implements Domain.
func (CategoricalDomain) Kind() Kind { return CategoricalKind }

// Contains implements Domain.
func (d CategoricalDomain) Contains(value interface{}) bool {
	_, ok := d.values[value]
	return ok
}

// Cardinality implements Domain.
func (d CategoricalDomain) Cardinality() int { return len(d.values) }

// EnumerateValues implements Domain, sorted by string form for determinism.
func (d CategoricalDomain) EnumerateValues() ([]interface{}, error) {
	out := make([]interface{}, 0, len(d.values))
	for v := range d.values {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return fmt.Sprint(out[i]) < fmt.Sprint(out[j])
	})

	return out, nil
}

// String implements Domain.
func (d CategoricalDomain) String() string {
	vals, _ := d.EnumerateValues()
	return fmt.Sprintf("%v", vals)
}

// IntegerDomain is the inclusive integer range [Min, Max].
type IntegerDomain struct {
	Min, Max int
}

// NewIntegerDomain builds an IntegerDomain over the inclusive range [min,max].
// Returns ErrEmptyDomain if min > max.
func NewIntegerDomain(min, max int) (Domain, error) {
	if min > max {
		return nil, ErrEmptyDomain
	}

	return IntegerDomain{Min: min, Max: max}, nil
}

// Kind implements Domain.
func (IntegerDomain) Kind() Kind { return IntegerKind }

// Contains implements Domain.
func (d IntegerDomain) Contains(value interface{}) bool {
	switch v := value.(type) {
	case int:
		return v >= d.Min && v <= d.Max
	case int64:
		return int(v) >= d.Min && int(v) <= d.Max
	case float64:
		return v == float64(int(v)) && int(v) >= d.Min && int(v) <= d.Max
	default:
		return false
	}
}

// Cardinality implements Domain.
func (d IntegerDomain) Cardinality() int { return d.Max - d.Min + 1 }

// EnumerateValues implements Domain, ascending from Min to Max.
func (d IntegerDomain) EnumerateValues() ([]interface{}, error) {
	out := make([]interface{}, 0, d.Cardinality())
	for v := d.Min; v <= d.Max; v++ {
		out = append(out, v)
	}

	return out, nil
}

// String implements Domain.
func (d IntegerDomain) String() string {
	return fmt.Sprintf("[%d, %d]", d.Min, d.Max)
}

// RealDomain is the closed interval [Min, Max] of real numbers; infinite
// cardinality, not enumerable.
type RealDomain struct {
	Min, Max float64
}

// NewRealDomain builds a RealDomain over the closed interval [min,max].
// Returns ErrEmptyDomain if min > max.
func NewRealDomain(min, max float64) (Domain, error) {
	if min > max {
		return nil, ErrEmptyDomain
	}

	return RealDomain{Min: min, Max: max}, nil
}

// Kind implements Domain.
func (RealDomain) Kind() Kind { return RealKind }

// Contains implements Domain.
func (d RealDomain) Contains(value interface{}) bool {
	switch v := value.(type) {
	case float64:
		return v >= d.Min && v <= d.Max
	case int:
		return float64(v) >= d.Min && float64(v) <= d.Max
	default:
		return false
	}
}

// Cardinality implements Domain; -1 signals infinite cardinality.
func (RealDomain) Cardinality() int { return -1 }

// EnumerateValues implements Domain; always fails for a continuous domain.
func (RealDomain) EnumerateValues() ([]interface{}, error) {
	return nil, ErrNotDiscrete
}

// String implements Domain.
func (d RealDomain) String() string {
	return fmt.Sprintf("[%g, %g]", d.Min, d.Max)
}
