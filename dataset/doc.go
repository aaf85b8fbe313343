// Package dataset provides aligned numeric data structures for regression.
//
// This package includes the Column and Table types for representing
// observation data, along with functions for loading, validation, and
// splitting around a candidate structural break.
//
// # Creating Columns and Tables
//
// Create a column from a slice:
//
//	y := dataset.NewColumn("sales", []float64{100, 102, 105, 103, 108})
//
// Combine columns into a table:
//
//	price := dataset.NewColumn("price", []float64{9, 9, 10, 10, 11})
//	spend := dataset.NewColumn("spend", []float64{3, 4, 4, 5, 5})
//	x, err := dataset.NewTable(price, spend)
//
// A single column can stand in for a one-column table:
//
//	x := price.Table()
//
// # Loading from CSV
//
// Load every numeric column, or a named subset:
//
//	table, err := dataset.LoadCSV("data.csv", nil)
//	table, err := dataset.LoadCSVColumns("data.csv", "price", "spend")
//
// Rows with missing or non-numeric cells in the selected columns are
// skipped so the loaded columns stay aligned.
//
// # Splitting
//
// Split a table into the rows before and after a candidate break. Both
// boundaries are inclusive:
//
//	before, after, err := x.Split(8, 9)
//
// Rows strictly between lastIndex and firstIndex belong to neither side.
//
// # Basic Statistics
//
// Calculate summary statistics on a column:
//
//	mean := y.Mean()
//	std := y.Std()
//	min := y.Min()
//	max := y.Max()
//
// # Validation
//
// Validate reports empty columns, misaligned lengths, and NaN or
// infinite values before they reach numeric code:
//
//	if err := x.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package dataset
