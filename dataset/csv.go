package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	Columns   []string // Column names to load (default: every header column)
	HasHeader bool     // Whether CSV has a header row (default: true)
	Delimiter rune     // Field delimiter (default: ',')
	SkipRows  int      // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		HasHeader: true,
		Delimiter: ',',
	}
}

// LoadCSV loads a table from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a table from an io.Reader. Rows with a missing,
// NA, or non-numeric cell in any selected column are skipped, so the
// loaded columns stay aligned. Without a header row every field becomes a
// column named col0, col1, and so on.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	// Skip rows if needed
	for i := 0; i < opts.SkipRows; i++ {
		_, err := reader.Read()
		if err != nil {
			return nil, err
		}
	}

	var names []string
	var indices []int

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		for i, h := range header {
			header[i] = strings.TrimSpace(strings.Trim(h, "\""))
		}

		if len(opts.Columns) == 0 {
			names = header
			indices = make([]int, len(header))
			for i := range header {
				indices[i] = i
			}
		} else {
			for _, want := range opts.Columns {
				found := -1
				for i, h := range header {
					if h == want {
						found = i
						break
					}
				}
				if found == -1 {
					return nil, fmt.Errorf("column %q: %w", want, ErrUnknownColumn)
				}
				names = append(names, want)
				indices = append(indices, found)
			}
		}
	}

	var values [][]float64

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		// No header: every field is a column named by position
		if names == nil {
			names = make([]string, len(record))
			indices = make([]int, len(record))
			for i := range record {
				names[i] = "col" + strconv.Itoa(i)
				indices[i] = i
			}
		}
		if values == nil {
			values = make([][]float64, len(names))
		}

		row := make([]float64, len(indices))
		ok := true
		for j, idx := range indices {
			if idx >= len(record) {
				ok = false
				break
			}
			cell := strings.TrimSpace(strings.Trim(record[idx], "\""))
			if cell == "" || cell == "NA" || cell == "NaN" || cell == "null" {
				ok = false
				break
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				ok = false
				break
			}
			row[j] = v
		}
		if !ok {
			continue // skip rows with missing or non-numeric cells
		}

		for j, v := range row {
			values[j] = append(values[j], v)
		}
	}

	if values == nil || len(values[0]) == 0 {
		return nil, ErrNoData
	}

	columns := make([]*Column, len(names))
	for i, name := range names {
		columns[i] = NewColumn(name, values[i])
	}

	return NewTable(columns...)
}

// LoadCSVColumns loads the named columns from a CSV file.
func LoadCSVColumns(filename string, columns ...string) (*Table, error) {
	opts := DefaultCSVOptions()
	opts.Columns = columns
	return LoadCSV(filename, opts)
}

// WriteCSV writes the table as CSV with a header row of column names.
func (t *Table) WriteCSV(w io.Writer) error {
	writer := bufio.NewWriter(w)

	for j, c := range t.Columns {
		if j > 0 {
			writer.WriteString(",")
		}
		writer.WriteString(c.Name)
	}
	writer.WriteString("\n")

	for i := 0; i < t.NumRows(); i++ {
		for j, c := range t.Columns {
			if j > 0 {
				writer.WriteString(",")
			}
			writer.WriteString(strconv.FormatFloat(c.Values[i], 'f', -1, 64))
		}
		writer.WriteString("\n")
	}

	return writer.Flush()
}

// SaveCSV saves a table to a CSV file.
func SaveCSV(t *Table, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return t.WriteCSV(file)
}
