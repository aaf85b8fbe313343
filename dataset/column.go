// Package dataset provides aligned numeric data structures for regression.
package dataset

import (
	"fmt"
	"math"
	"sort"
)

// Column represents a named column of observations.
type Column struct {
	Name   string
	Values []float64
}

// NewColumn creates a column from values.
func NewColumn(name string, values []float64) *Column {
	return &Column{
		Name:   name,
		Values: values,
	}
}

// Len returns the number of observations in the column.
func (c *Column) Len() int {
	return len(c.Values)
}

// Mean calculates the arithmetic mean of the column.
func (c *Column) Mean() float64 {
	if len(c.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range c.Values {
		sum += v
	}
	return sum / float64(len(c.Values))
}

// Variance calculates the sample variance of the column.
func (c *Column) Variance() float64 {
	if len(c.Values) < 2 {
		return 0
	}
	mean := c.Mean()
	sumSq := 0.0
	for _, v := range c.Values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(c.Values)-1)
}

// Std calculates the standard deviation of the column.
func (c *Column) Std() float64 {
	return math.Sqrt(c.Variance())
}

// Min returns the minimum value in the column.
func (c *Column) Min() float64 {
	if len(c.Values) == 0 {
		return math.NaN()
	}
	min := c.Values[0]
	for _, v := range c.Values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value in the column.
func (c *Column) Max() float64 {
	if len(c.Values) == 0 {
		return math.NaN()
	}
	max := c.Values[0]
	for _, v := range c.Values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Median returns the median value of the column.
func (c *Column) Median() float64 {
	if len(c.Values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(c.Values))
	copy(sorted, c.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Slice returns a copy of the column from start to end (exclusive).
// Out-of-range bounds are clamped.
func (c *Column) Slice(start, end int) *Column {
	if start < 0 {
		start = 0
	}
	if end > len(c.Values) {
		end = len(c.Values)
	}
	if start >= end {
		return &Column{Name: c.Name}
	}

	values := make([]float64, end-start)
	copy(values, c.Values[start:end])

	return &Column{
		Name:   c.Name,
		Values: values,
	}
}

// Copy creates a deep copy of the column.
func (c *Column) Copy() *Column {
	values := make([]float64, len(c.Values))
	copy(values, c.Values)

	return &Column{
		Name:   c.Name,
		Values: values,
	}
}

// Table wraps the column as a single-column table. The column keeps its
// name and is not validated.
func (c *Column) Table() *Table {
	return &Table{Columns: []*Column{c}}
}

// Validate reports whether the column is usable for numeric work. The
// column must be non-empty and contain only finite values.
func (c *Column) Validate() error {
	if len(c.Values) == 0 {
		return fmt.Errorf("column %q: %w", c.Name, ErrEmptyColumn)
	}
	for i, v := range c.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("column %q row %d: %w", c.Name, i, ErrNonFinite)
		}
	}
	return nil
}
