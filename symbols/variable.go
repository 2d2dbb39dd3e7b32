// File: variable.go
// Role: Variable — the atomic named identifier of the causal model, with an
// optional attached Domain. Variables are immutable once constructed and are
// created once, then shared by reference across the graph and the algebra.
//
// AI-Hints (file):
//   - Two Variables are equal iff their Name fields are equal; Domain is
//     metadata, not identity (spec data model §3).
//   - Construct with NewVariable/NewVariableWithDomain; the zero Variable{}
//     is invalid (empty name) and must not be used.
package symbols

// Variable is a named identifier in the causal model, optionally paired with
// a Domain describing the values it may take on.
type Variable struct {
	// Name uniquely identifies this Variable. Two Variables with the same
	// Name are considered the same variable regardless of Domain.
	Name string
	// Domain is metadata describing the variable's admissible values. It may
	// be nil if the variable's domain has not yet been declared.
	Domain Domain
}

// NewVariable constructs a Variable with no declared Domain.
// Returns ErrEmptyName if name is empty.
func NewVariable(name string) (Variable, error) {
	if name == "" {
		return Variable{}, ErrEmptyName
	}

	return Variable{Name: name}, nil
}

// NewVariableWithDomain constructs a Variable paired with the given Domain.
// Returns ErrEmptyName if name is empty.
func NewVariableWithDomain(name string, domain Domain) (Variable, error) {
	if name == "" {
		return Variable{}, ErrEmptyName
	}

	return Variable{Name: name, Domain: domain}, nil
}

// MustVariable is like NewVariable but panics on error; intended for tests
// and package-level variable tables where the name is a compile-time constant.
func MustVariable(name string) Variable {
	v, err := NewVariable(name)
	if err != nil {
		panic(err)
	}

	return v
}

// Equal reports whether two Variables share the same Name. Domain is not
// part of identity.
func (v Variable) Equal(other Variable) bool {
	return v.Name == other.Name
}

// String renders the Variable's bare name.
func (v Variable) String() string {
	return v.Name
}

// MakeVars builds a Variable for each name, in order. Mirrors the
// original's make_vars convenience constructor for batch variable creation.
// Panics if any name is empty (names are expected to be compile-time
// literals at call sites; use NewVariable directly for validated input).
func MakeVars(names ...string) []Variable {
	out := make([]Variable, 0, len(names))
	for _, n := range names {
		out = append(out, MustVariable(n))
	}

	return out
}
