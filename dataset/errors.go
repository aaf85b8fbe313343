package dataset

import "errors"

// Errors returned by dataset constructors and accessors. Callers match
// them with errors.Is; wrapped messages carry the offending column or
// index.
var (
	// ErrNoColumns is returned when a table is built or used without columns.
	ErrNoColumns = errors.New("table has no columns")

	// ErrLengthMismatch is returned when columns disagree on length.
	ErrLengthMismatch = errors.New("columns must have the same length")

	// ErrEmptyColumn is returned when a column has no values.
	ErrEmptyColumn = errors.New("column has no values")

	// ErrColumnName is returned when a column name is empty or duplicated.
	ErrColumnName = errors.New("column names must be unique and non-empty")

	// ErrUnknownColumn is returned when a named column is not present.
	ErrUnknownColumn = errors.New("column not found")

	// ErrIndexRange is returned when a row index is outside the data.
	ErrIndexRange = errors.New("index out of range")

	// ErrNonFinite is returned when a value is NaN or infinite.
	ErrNonFinite = errors.New("value is not finite")

	// ErrNoData is returned when a CSV source yields no usable rows.
	ErrNoData = errors.New("no valid data found in CSV")
)
