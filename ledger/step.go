// File: step.go
// Role: Step — the human-interpretable log of a single entrypoint call:
// free-text notes, sub-Steps, Assumptions, and Derived(key, value) entries,
// plus the assumptions list and results map those entries accumulate into.
//
// AI-Hints (file):
//   - Step is append-only within one entrypoint call and is owned by
//     exactly that call (spec §5: no cross-thread mutation), so it carries
//     no lock, unlike cgraph.Graph.
//   - logEntry is a private marker sealing the log-entry variants (string
//     note, *Step substep, Assumption, Derived) to this package.
package ledger

import (
	"fmt"
	"strings"
)

// logEntry is implemented by every value that can appear in a Step's log:
// a plain text note, a nested *Step, an Assumption, or a Derived result.
type logEntry interface {
	isLogEntry()
}

type textEntry string

func (textEntry) isLogEntry() {}

// Assumption records a single named assumption the computation relied on
// (e.g. acyclicity, positivity, non-contradictory evidence).
type Assumption struct {
	Name string
}

func (Assumption) isLogEntry() {}

// String renders the assumption in the original's "Assume: ..." form.
func (a Assumption) String() string {
	return "Assume: " + a.Name
}

// Derived records a named, timestamped-by-position result produced during
// the step (e.g. "identified_estimand" or "value").
type Derived struct {
	Key   string
	Value interface{}
}

func (Derived) isLogEntry() {}

// String renders the derived entry in the original's "Derived: k = v" form.
func (d Derived) String() string {
	return fmt.Sprintf("Derived: %s = %v", d.Key, d.Value)
}

func (*Step) isLogEntry() {}

// Step is a named node bearing a log of entries, an assumptions list, and a
// results map, accumulated over the lifetime of one entrypoint call and
// frozen into a Result when that call returns.
type Step struct {
	Name        string
	log         []logEntry
	assumptions []Assumption
	results     map[string]interface{}
}

// NewStep creates a fresh, empty Step named name.
func NewStep(name string) *Step {
	return &Step{Name: name}
}

// Substep opens a new Step, appends it to s's log in the order opened (not
// the order it later completes — spec §5 ordering guarantee), and returns
// it for the caller to populate.
func (s *Step) Substep(name string) *Step {
	sub := NewStep(name)
	s.log = append(s.log, sub)
	return sub
}

// Write appends a free-text note to s's log.
func (s *Step) Write(msg string) {
	s.log = append(s.log, textEntry(msg))
}

// Assume records an assumption both in s's log (in position) and in s's
// standalone assumptions list.
func (s *Step) Assume(name string) {
	a := Assumption{Name: name}
	s.assumptions = append(s.assumptions, a)
	s.log = append(s.log, a)
}

// Derive records a named result both in s's log (in position) and in s's
// results map. Returns ErrReservedKey for the reserved keys "operation" and
// "step".
func (s *Step) Derive(key string, value interface{}) error {
	if key == "operation" || key == "step" {
		return ErrReservedKey
	}
	s.log = append(s.log, Derived{Key: key, Value: value})
	if s.results == nil {
		s.results = make(map[string]interface{})
	}
	s.results[key] = value

	return nil
}

// Assumptions returns a defensive copy of s's recorded assumptions.
func (s *Step) Assumptions() []Assumption {
	return append([]Assumption(nil), s.assumptions...)
}

// Results returns a defensive copy of s's derived results map.
func (s *Step) Results() map[string]interface{} {
	out := make(map[string]interface{}, len(s.results))
	for k, v := range s.results {
		out[k] = v
	}
	return out
}

// logLines renders s's log as a flat list of strings, indenting nested
// sub-Step lines by one tab per level.
func (s *Step) logLines() []string {
	acc := make([]string, 0, len(s.log))
	for _, entry := range s.log {
		if sub, ok := entry.(*Step); ok {
			acc = append(acc, sub.Name)
			for _, line := range sub.logLines() {
				acc = append(acc, "\t"+line)
			}
			continue
		}
		acc = append(acc, fmt.Sprint(entry))
	}
	return acc
}

// Explain renders a human-readable derivation trace for s: its name,
// followed by its log lines indented one level.
func (s *Step) Explain() string {
	lines := s.logLines()
	if len(lines) == 0 {
		return s.Name
	}
	return s.Name + "\n\t" + strings.Join(lines, "\n\t")
}
