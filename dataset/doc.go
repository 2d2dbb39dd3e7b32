// Package dataset holds the immutable columnar View a MultinomialEstimator
// counts over: named columns of []bool/[]int64/[]float64/[]string values,
// each paired with a symbols.Variable whose Domain is either declared
// explicitly (WithDomain, validated eagerly against the column's values)
// or inferred by decreasing specificity — binary when values are booleans
// or lie in {0, 1}, integer when all values are integral, real for any
// other float column, categorical for strings. Construction records a
// "Data Processing" provenance Step (one domain assumption per column,
// inference notes, quantization sub-steps), reachable via View.Step.
//
// Errors:
//
//	ErrNoColumns              - NewView got an empty column map.
//	ErrRowCountMismatch       - two columns had different lengths.
//	ErrUnsupportedColumnType  - a column was not one of the four accepted types.
//	ErrColumnNotFound         - a referenced column name isn't in the View.
//	ErrEmptyColumn            - domain inference attempted on a 0-row column.
//	ErrQuantizeRequiresNumeric - Quantize targeted a non-numeric column.
//	ErrTooFewBins             - Quantize was asked for fewer than 1 bin.
package dataset
