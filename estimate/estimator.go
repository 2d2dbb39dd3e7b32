// File: estimator.go
// Role: MultinomialEstimator construction — resolves the observed-variable
// set, coerces any non-discrete observed column via dataset.View.Quantize,
// and precomputes the Dirichlet virtual-count-per-cell (alpha_cell = alpha/K)
// used by every P evaluation.
package estimate

import (
	"github.com/leoware/pqp-go/dataset"
	"github.com/leoware/pqp-go/symbols"
)

// EstimatorOption customizes NewMultinomialEstimator.
type EstimatorOption func(*estimatorConfig)

type estimatorConfig struct {
	observed     []string
	prior        float64
	coerce       bool
	quantizeBins int
}

// WithObserved restricts the observed-variable set to names (must be a
// subset of the View's columns). Defaults to every column in the View.
func WithObserved(names ...string) EstimatorOption {
	return func(c *estimatorConfig) {
		c.observed = append([]string(nil), names...)
	}
}

// WithPrior sets the Dirichlet prior strength alpha (total virtual
// observations spread evenly across the observed joint's cells). Defaults
// to 0 (no smoothing, no positivity guarantee). Panics if alpha is negative.
func WithPrior(alpha float64) EstimatorOption {
	if alpha < 0 {
		panic("estimate: WithPrior(negative)")
	}
	return func(c *estimatorConfig) {
		c.prior = alpha
	}
}

// WithCoerce controls whether a non-discrete (real) observed column is
// quantized automatically (true, the default) or rejected with
// ErrNotDiscreteDomain (false).
func WithCoerce(coerce bool) EstimatorOption {
	return func(c *estimatorConfig) {
		c.coerce = coerce
	}
}

// WithQuantizeBins sets the bin count used when WithCoerce(true) quantizes a
// non-discrete column. Defaults to 2. Panics if bins < 1.
func WithQuantizeBins(bins int) EstimatorOption {
	if bins < 1 {
		panic("estimate: WithQuantizeBins(<1)")
	}
	return func(c *estimatorConfig) {
		c.quantizeBins = bins
	}
}

// MultinomialEstimator estimates probabilities over a fixed observed-variable
// set by counting rows in a dataset.View, smoothed by a symmetric Dirichlet
// prior.
type MultinomialEstimator struct {
	view      *dataset.View
	observed  map[string]struct{}
	prior     float64
	alphaCell float64
}

// NewMultinomialEstimator builds a MultinomialEstimator over view.
//
// Returns ErrObservedNotSubset if WithObserved names a column absent from
// view, or ErrNotDiscreteDomain if an observed column has a real Domain and
// WithCoerce(false) was given.
func NewMultinomialEstimator(view *dataset.View, opts ...EstimatorOption) (*MultinomialEstimator, error) {
	cfg := &estimatorConfig{coerce: true, quantizeBins: 2}
	for _, opt := range opts {
		opt(cfg)
	}

	observedNames := cfg.observed
	if len(observedNames) == 0 {
		for _, v := range view.Variables() {
			observedNames = append(observedNames, v.Name)
		}
	}

	observed := make(map[string]struct{}, len(observedNames))
	for _, name := range observedNames {
		if _, err := view.DomainOf(name); err != nil {
			return nil, ErrObservedNotSubset
		}
		observed[name] = struct{}{}
	}

	for name := range observed {
		dom, err := view.DomainOf(name)
		if err != nil {
			return nil, err
		}
		if dom.Kind() != symbols.RealKind {
			continue
		}
		if !cfg.coerce {
			return nil, ErrNotDiscreteDomain
		}
		quantized, err := view.Quantize(name, cfg.quantizeBins)
		if err != nil {
			return nil, err
		}
		view = quantized
	}

	est := &MultinomialEstimator{view: view, observed: observed, prior: cfg.prior}

	k, err := est.domainSizeExcluding(nil)
	if err != nil {
		return nil, err
	}
	if k > 0 {
		est.alphaCell = cfg.prior / float64(k)
	}

	return est, nil
}

// DomainOf returns the Domain of an observed variable (by name or
// symbols.Variable), delegating to the underlying View.
func (m *MultinomialEstimator) DomainOf(nameOrVar interface{}) (symbols.Domain, error) {
	return m.view.DomainOf(nameOrVar)
}

// domainSizeExcluding returns the product of cardinalities of every
// observed variable not named in exclude.
func (m *MultinomialEstimator) domainSizeExcluding(exclude map[string]struct{}) (int, error) {
	size := 1
	for name := range m.observed {
		if _, skip := exclude[name]; skip {
			continue
		}
		dom, err := m.view.DomainOf(name)
		if err != nil {
			return 0, err
		}
		size *= dom.Cardinality()
	}
	return size, nil
}
