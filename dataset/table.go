package dataset

import "fmt"

// Table represents one or more named columns sharing the same length.
// Row i of the table is the i-th value of every column.
type Table struct {
	Columns []*Column
}

// NewTable creates a table from columns. Every column must carry a unique,
// non-empty name, and all columns must have the same length.
func NewTable(columns ...*Column) (*Table, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}

	n := columns[0].Len()
	seen := make(map[string]bool, len(columns))
	for _, c := range columns {
		if c.Name == "" || seen[c.Name] {
			return nil, fmt.Errorf("column %q: %w", c.Name, ErrColumnName)
		}
		seen[c.Name] = true
		if c.Len() != n {
			return nil, fmt.Errorf("column %q has %d values, want %d: %w", c.Name, c.Len(), n, ErrLengthMismatch)
		}
	}

	return &Table{Columns: columns}, nil
}

// NumRows returns the number of rows in the table.
func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return t.Columns[0].Len()
}

// NumCols returns the number of columns in the table.
func (t *Table) NumCols() int {
	return len(t.Columns)
}

// Names returns the column names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (*Column, error) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("column %q: %w", name, ErrUnknownColumn)
}

// Row returns a copy of the values in row i, one per column.
func (t *Table) Row(i int) []float64 {
	row := make([]float64, len(t.Columns))
	for j, c := range t.Columns {
		row[j] = c.Values[i]
	}
	return row
}

// Slice returns a copy of the table from row start to end (exclusive).
// Out-of-range bounds are clamped.
func (t *Table) Slice(start, end int) *Table {
	columns := make([]*Column, len(t.Columns))
	for i, c := range t.Columns {
		columns[i] = c.Slice(start, end)
	}
	return &Table{Columns: columns}
}

// Copy creates a deep copy of the table.
func (t *Table) Copy() *Table {
	columns := make([]*Column, len(t.Columns))
	for i, c := range t.Columns {
		columns[i] = c.Copy()
	}
	return &Table{Columns: columns}
}

// Validate reports whether the table is usable for numeric work. The
// table must have at least one column, all columns must be aligned, and
// every value must be finite.
func (t *Table) Validate() error {
	if len(t.Columns) == 0 {
		return ErrNoColumns
	}
	n := t.Columns[0].Len()
	for _, c := range t.Columns {
		if c.Len() != n {
			return fmt.Errorf("column %q has %d values, want %d: %w", c.Name, c.Len(), n, ErrLengthMismatch)
		}
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}
