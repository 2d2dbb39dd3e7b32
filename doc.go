// Package pqp is a symbolic causal-inference engine: given a causal
// diagram (a mixed graph of directed and bidirected edges) and a query
// containing do-operators, it identifies the query — rewriting it into
// an equivalent expression over the observational joint distribution,
// or reporting that no such rewrite exists — and can then estimate the
// identified expression numerically against a tabular dataset.
//
// The engine is organized as one focused package per concern:
//
//	symbols/   — Variable, Domain, Event (equality and intervention)
//	algebra/   — the expression tree, canonicalization, substitution, JSON
//	cgraph/    — the mixed directed/bidirected causal graph
//	identify/  — the Shpitser-Pearl ID/IDC identification algorithm
//	estimand/  — ATE/CATE/generic causal-query constructors
//	dataset/   — the immutable columnar dataset view and domain inference
//	estimate/  — the Dirichlet-smoothed multinomial estimator
//	ledger/    — the provenance/assumption ledger
//	cmd/pqp-repl/ — a YAML-driven CLI front-end over identify and estimate
//
// Each package is independently documented; see its own doc.go for
// details. There is no package-level API at this root: import the
// subpackage(s) a caller actually needs, e.g.
//
//	go get github.com/leoware/pqp-go/identify
package pqp
