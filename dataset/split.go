package dataset

import "fmt"

// Split partitions the column into the rows up to and including lastIndex
// and the rows from firstIndex to the end. Both boundaries are inclusive,
// so rows strictly between them belong to neither side. The returned
// columns are copies and do not alias the source.
func (c *Column) Split(lastIndex, firstIndex int) (before, after *Column, err error) {
	if err := checkSplit(c.Len(), lastIndex, firstIndex); err != nil {
		return nil, nil, err
	}
	return c.Slice(0, lastIndex+1), c.Slice(firstIndex, c.Len()), nil
}

// Split partitions the table into the rows up to and including lastIndex
// and the rows from firstIndex to the end, with the same boundary
// semantics as Column.Split.
func (t *Table) Split(lastIndex, firstIndex int) (before, after *Table, err error) {
	if err := checkSplit(t.NumRows(), lastIndex, firstIndex); err != nil {
		return nil, nil, err
	}
	return t.Slice(0, lastIndex+1), t.Slice(firstIndex, t.NumRows()), nil
}

// checkSplit validates split positions against the row count. Only range
// is checked; overlapping or gapped splits are left to the caller.
func checkSplit(n, lastIndex, firstIndex int) error {
	if lastIndex < 0 || lastIndex >= n {
		return fmt.Errorf("lastIndex %d outside [0, %d): %w", lastIndex, n, ErrIndexRange)
	}
	if firstIndex < 0 || firstIndex >= n {
		return fmt.Errorf("firstIndex %d outside [0, %d): %w", firstIndex, n, ErrIndexRange)
	}
	return nil
}
