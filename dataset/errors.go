package dataset

import "errors"

// Sentinel errors for the dataset package.
var (
	// ErrNoColumns indicates NewView was called with an empty column map.
	ErrNoColumns = errors.New("dataset: view must have at least one column")

	// ErrRowCountMismatch indicates two columns in the same View have
	// different lengths.
	ErrRowCountMismatch = errors.New("dataset: columns have mismatched row counts")

	// ErrUnsupportedColumnType indicates a column value was not one of
	// []bool, []int64, []float64, []string.
	ErrUnsupportedColumnType = errors.New("dataset: column must be []bool, []int64, []float64, or []string")

	// ErrColumnNotFound indicates Column/DomainOf/Quantize was asked about a
	// column name not present in the View.
	ErrColumnNotFound = errors.New("dataset: column not found")

	// ErrEmptyColumn indicates domain inference was attempted on a
	// zero-length column.
	ErrEmptyColumn = errors.New("dataset: cannot infer a domain from an empty column")

	// ErrQuantizeRequiresNumeric indicates Quantize was called on a column
	// that is not []int64 or []float64.
	ErrQuantizeRequiresNumeric = errors.New("dataset: quantize requires a []int64 or []float64 column")

	// ErrTooFewBins indicates Quantize was called with nBins < 1.
	ErrTooFewBins = errors.New("dataset: quantize requires at least one bin")
)
