// File: view.go
// Role: View — an immutable columnar dataset: a fixed set of named columns
// (all the same row count) each paired with a symbols.Variable. Built once
// by NewView and never mutated afterward (Quantize returns a new View
// rather than mutating its receiver), mirroring the teacher's
// "mutable only during construction" convention without the mutex, since
// a View carries no post-construction mutation path at all.
//
// AI-Hints (file):
//   - Construction opens a "Data Processing" ledger Step recording one
//     domain assumption per column, an inferred-domain note for every
//     column whose Domain was not declared, and a unit-domain warning for
//     any domain with cardinality <= 1. The Step is advisory provenance;
//     nothing in it is fatal.
package dataset

import (
	"fmt"
	"sort"

	"github.com/leoware/pqp-go/ledger"
	"github.com/leoware/pqp-go/symbols"
)

// ViewOption customizes NewView's domain inference and validation for
// individual columns.
type ViewOption func(*viewConfig)

type viewConfig struct {
	domains  map[string]symbols.Domain
	validate bool
}

// WithDomain overrides the inferred Domain for the column named name.
// Panics if domain is nil, matching the teacher's fail-fast option
// constructors.
func WithDomain(name string, domain symbols.Domain) ViewOption {
	if domain == nil {
		panic("dataset: WithDomain(nil)")
	}
	return func(c *viewConfig) {
		c.domains[name] = domain
	}
}

// WithValidateDomain controls whether NewView eagerly checks every value of
// a column against its declared Domain (on by default; inferred domains
// contain their column's values by construction).
func WithValidateDomain(validate bool) ViewOption {
	return func(c *viewConfig) {
		c.validate = validate
	}
}

// View is an immutable set of equal-length named columns, each backed by a
// symbols.Variable describing its Domain.
type View struct {
	columns map[string]interface{}
	vars    map[string]symbols.Variable
	rows    int
	step    *ledger.Step
}

// NewView builds a View from columns (name -> []bool/[]int64/[]float64/
// []string, all the same length). Every column's Domain is inferred from
// its values unless overridden via WithDomain; declared Domains are
// validated against the column's values unless WithValidateDomain(false)
// is given.
//
// Returns ErrNoColumns if columns is empty, ErrUnsupportedColumnType if a
// value isn't one of the four accepted slice types, ErrRowCountMismatch if
// columns disagree on row count, or symbols.ErrDomainValidation if a value
// falls outside its column's declared Domain.
func NewView(columns map[string]interface{}, opts ...ViewOption) (*View, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}

	cfg := &viewConfig{domains: make(map[string]symbols.Domain), validate: true}
	for _, opt := range opts {
		opt(cfg)
	}

	step := ledger.NewStep("Data Processing")

	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := -1
	colsCopy := make(map[string]interface{}, len(columns))
	varsOut := make(map[string]symbols.Variable, len(columns))

	for _, name := range names {
		col := columns[name]
		n := columnLen(col)
		if n < 0 {
			return nil, ErrUnsupportedColumnType
		}
		if rows == -1 {
			rows = n
		} else if n != rows {
			return nil, ErrRowCountMismatch
		}

		domain := cfg.domains[name]
		if domain == nil {
			d, err := inferDomain(col)
			if err != nil {
				return nil, err
			}
			domain = d
			step.Write(fmt.Sprintf("Inferred domain for variable %q", name))
		} else if cfg.validate {
			for _, val := range columnValues(col) {
				if !domain.Contains(val) {
					return nil, fmt.Errorf("%w: column %q value %v not in %s", symbols.ErrDomainValidation, name, val, domain)
				}
			}
		}

		if c := domain.Cardinality(); c >= 0 && c <= 1 {
			step.Write(fmt.Sprintf("Warning: domain for variable %q has cardinality %d", name, c))
		}
		step.Assume(fmt.Sprintf("%s is on %s", name, domain))

		v, err := symbols.NewVariableWithDomain(name, domain)
		if err != nil {
			return nil, err
		}

		colsCopy[name] = col
		varsOut[name] = v
	}

	return &View{columns: colsCopy, vars: varsOut, rows: rows, step: step}, nil
}

// RowsCount returns the number of rows in the View.
func (v *View) RowsCount() int { return v.rows }

// Step returns the "Data Processing" provenance Step accumulated while the
// View was constructed (domain assumptions, inference notes, quantization
// sub-steps).
func (v *View) Step() *ledger.Step { return v.step }

// Column returns the raw column data for name.
// Returns ErrColumnNotFound if name is not a column of v.
func (v *View) Column(name string) (interface{}, error) {
	col, ok := v.columns[name]
	if !ok {
		return nil, ErrColumnNotFound
	}
	return col, nil
}

// Variable returns the Variable (name + Domain) associated with a column.
// Returns ErrColumnNotFound if name is not a column of v.
func (v *View) Variable(name string) (symbols.Variable, error) {
	variable, ok := v.vars[name]
	if !ok {
		return symbols.Variable{}, ErrColumnNotFound
	}
	return variable, nil
}

// DomainOf returns the Domain of the column named by nameOrVar, which may
// be a string or a symbols.Variable. Returns ErrColumnNotFound if absent.
func (v *View) DomainOf(nameOrVar interface{}) (symbols.Domain, error) {
	name, err := resolveName(nameOrVar)
	if err != nil {
		return nil, err
	}
	variable, ok := v.vars[name]
	if !ok {
		return nil, ErrColumnNotFound
	}
	return variable.Domain, nil
}

// Variables returns every Variable in the View, in no particular order.
func (v *View) Variables() []symbols.Variable {
	out := make([]symbols.Variable, 0, len(v.vars))
	for _, variable := range v.vars {
		out = append(out, variable)
	}
	return out
}

func resolveName(nameOrVar interface{}) (string, error) {
	switch x := nameOrVar.(type) {
	case string:
		return x, nil
	case symbols.Variable:
		return x.Name, nil
	default:
		return "", ErrColumnNotFound
	}
}
