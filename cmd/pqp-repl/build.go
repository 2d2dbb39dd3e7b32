package main

import (
	"fmt"

	"github.com/leoware/pqp-go/cgraph"
	"github.com/leoware/pqp-go/estimand"
	"github.com/leoware/pqp-go/symbols"
	"gopkg.in/yaml.v3"
)

// buildGraph constructs a cgraph.Graph from a graphSpec.
func buildGraph(spec graphSpec) (*cgraph.Graph, error) {
	g := cgraph.NewGraph()
	for _, e := range spec.Directed {
		if err := g.AddEdge(cgraph.Directed(e[0], e[1])); err != nil {
			return nil, fmt.Errorf("directed edge %v: %w", e, err)
		}
	}
	for _, e := range spec.Bidirected {
		if err := g.AddEdge(cgraph.Bidirected(e[0], e[1])); err != nil {
			return nil, fmt.Errorf("bidirected edge %v: %w", e, err)
		}
	}
	return g, nil
}

// varMap converts a name->value map from YAML into a
// map[symbols.Variable]interface{}, the shape estimand.NewATE/NewCATE
// accept for treatment/control/subpopulation conditions. Returns nil for
// an empty/nil input so the bare-binary-variable ATE shorthand still
// applies when control is omitted.
func varMap(m map[string]interface{}) (map[symbols.Variable]interface{}, error) {
	if len(m) == 0 {
		return nil, nil
	}
	out := make(map[symbols.Variable]interface{}, len(m))
	for name, val := range m {
		v, err := symbols.NewVariable(name)
		if err != nil {
			return nil, err
		}
		out[v] = val
	}
	return out, nil
}

// buildEstimand builds an ATE (no subpopulation) or CATE (subpopulation
// present) estimand.Estimand from a querySpec.
func buildEstimand(spec querySpec) (estimand.Estimand, error) {
	outcome, err := symbols.NewVariable(spec.Outcome)
	if err != nil {
		return nil, err
	}

	treatment, err := decodeTreatment(spec.Treatment)
	if err != nil {
		return nil, err
	}

	var control interface{}
	if cv, err := varMap(spec.Control); err != nil {
		return nil, err
	} else if cv != nil {
		control = cv
	}

	if len(spec.Subpopulation) == 0 {
		return estimand.NewATE(outcome, treatment, control)
	}

	sub, err := varMap(spec.Subpopulation)
	if err != nil {
		return nil, err
	}
	return estimand.NewCATE(outcome, treatment, control, sub)
}

// decodeTreatment interprets the query.treatment YAML node: a bare scalar
// (e.g. "treatment: x") becomes a bare symbols.Variable, triggering the
// ATE bare-binary-variable shorthand; anything else is decoded as a
// name->value condition map.
func decodeTreatment(node yaml.Node) (interface{}, error) {
	switch node.Kind {
	case 0:
		return nil, fmt.Errorf("query.treatment is required")
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return nil, fmt.Errorf("query.treatment: %w", err)
		}
		return symbols.NewVariable(name)
	default:
		var m map[string]interface{}
		if err := node.Decode(&m); err != nil {
			return nil, fmt.Errorf("query.treatment: %w", err)
		}
		return varMap(m)
	}
}
