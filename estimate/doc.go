// Package estimate evaluates an identified algebra.Expr numerically against
// a dataset.View using a multinomial likelihood smoothed by a symmetric
// Dirichlet prior: MultinomialEstimator.Estimate recursively reduces P,
// Product, Quotient, Marginal, Expectation, and Difference nodes to a single
// float64, reporting ErrPositivity on a zero-observation zero-prior cell and
// ErrNumerical when an Expectation's probabilities fail to sum to ~1.
package estimate
