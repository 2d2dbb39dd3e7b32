package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// edgeSpec is a two-element [from, to] (directed) or [a, b] (bidirected)
// pair as written in YAML: "directed: [[z, x], [z, y]]".
type edgeSpec [2]string

// UnmarshalYAML accepts a two-element flow or block sequence.
func (e *edgeSpec) UnmarshalYAML(value *yaml.Node) error {
	var pair []string
	if err := value.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("edge %v: want exactly 2 endpoints", pair)
	}
	e[0], e[1] = pair[0], pair[1]
	return nil
}

// graphSpec describes a cgraph.Graph's edges.
type graphSpec struct {
	Directed   []edgeSpec `yaml:"directed"`
	Bidirected []edgeSpec `yaml:"bidirected"`
}

// querySpec describes an ATE or CATE estimand. Treatment/Control/
// Subpopulation map a variable name to the value it is fixed/conditioned
// to. Subpopulation is optional. Control may be omitted only when Treatment
// is a bare variable name, which selects the bare-binary-variable ATE
// shorthand (see estimand.NewATE); a map Treatment needs a Control map.
type querySpec struct {
	Outcome string `yaml:"outcome"`
	// Treatment is either a bare variable name (string, the
	// bare-binary-variable ATE shorthand — Control must then be empty) or
	// a map[variable]value condition.
	Treatment     yaml.Node              `yaml:"treatment"`
	Control       map[string]interface{} `yaml:"control"`
	Subpopulation map[string]interface{} `yaml:"subpopulation"`
}

// datasetSpec describes an inline tabular dataset and the estimator's
// Dirichlet prior strength.
type datasetSpec struct {
	Columns map[string][]interface{} `yaml:"columns"`
	Prior   float64                  `yaml:"prior"`
	Coerce  *bool                    `yaml:"coerce"`
}

// config is the top-level YAML document pqp-repl reads via --config.
type config struct {
	Graph   graphSpec    `yaml:"graph"`
	Query   querySpec    `yaml:"query"`
	Dataset *datasetSpec `yaml:"dataset"`
}

// loadConfig reads and parses a YAML config file.
func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}
	if cfg.Query.Outcome == "" {
		return nil, fmt.Errorf("config %q: query.outcome is required", path)
	}

	return &cfg, nil
}
