// Package autochow implements automatic structural break location.
package autochow

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/David-Woroniuk/chowtest/chow"
	"github.com/David-Woroniuk/chowtest/dataset"
)

// ErrTooFewRows is returned when no candidate split satisfies the
// minimum segment size.
var ErrTooFewRows = errors.New("not enough observations to scan for a break")

// Config holds configuration for the break scan.
type Config struct {
	MinSegment int               // Minimum observations per side (default: columns + 2)
	Level      chow.Significance // Significance level for verdicts (default: 0.05)
	Trace      bool              // Print progress for each candidate
	Output     io.Writer         // Destination for trace output (default: os.Stdout)
}

// DefaultConfig returns the default scan configuration.
func DefaultConfig() *Config {
	return &Config{
		Level: chow.Significance5Pct,
	}
}

// Break describes the test outcome at one candidate split point.
type Break struct {
	Index     int     // Last row of the first segment; the second starts at Index+1
	Statistic float64 // Chow F statistic at this candidate
	PValue    float64
	Verdict   chow.Verdict
}

// Result represents the outcome of a break scan.
type Result struct {
	Breaks    []Break // One entry per candidate, in index order
	Best      *Break  // Rejecting candidate with the largest statistic, nil if none rejected
	Evaluated int     // Number of candidates evaluated
}

// Scan runs a Chow test at every candidate split point and reports the
// most likely break. Candidates are exact partitions: the first segment
// ends at index t and the second starts at t+1, for every t that leaves
// at least MinSegment observations on each side. The default minimum
// segment is one more than the parameter count, so both sub-period fits
// stay overdetermined.
func Scan(x *dataset.Table, y *dataset.Column, config *Config) (*Result, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if x == nil || x.NumCols() == 0 {
		return nil, fmt.Errorf("x: %w", dataset.ErrNoColumns)
	}

	k := x.NumCols() + 1
	minSegment := config.MinSegment
	if minSegment <= 0 {
		minSegment = k + 1
	}
	level := config.Level
	if level == 0 {
		level = chow.Significance5Pct
	}
	out := config.Output
	if out == nil {
		out = os.Stdout
	}

	n := x.NumRows()
	first := minSegment - 1
	last := n - minSegment - 1
	if first > last {
		return nil, fmt.Errorf("%d observations with minimum segment %d: %w", n, minSegment, ErrTooFewRows)
	}

	result := &Result{}
	for t := first; t <= last; t++ {
		r, err := chow.Test(x, y, t, t+1, level, nil)
		if err != nil {
			return nil, fmt.Errorf("candidate %d: %w", t, err)
		}

		b := Break{
			Index:     t,
			Statistic: r.Statistic,
			PValue:    r.PValue,
			Verdict:   r.Verdict,
		}
		result.Breaks = append(result.Breaks, b)
		result.Evaluated++

		if config.Trace {
			fmt.Fprintf(out, "candidate %d: F=%.4f p=%.5f (%s)\n", t, b.Statistic, b.PValue, b.Verdict)
		}

		if b.Verdict == chow.VerdictReject &&
			(result.Best == nil || b.Statistic > result.Best.Statistic) {
			best := b
			result.Best = &best
		}
	}

	return result, nil
}

// ScanColumn runs Scan with a single predictor column.
func ScanColumn(x *dataset.Column, y *dataset.Column, config *Config) (*Result, error) {
	if x == nil {
		return nil, fmt.Errorf("x: %w", dataset.ErrEmptyColumn)
	}
	return Scan(x.Table(), y, config)
}
