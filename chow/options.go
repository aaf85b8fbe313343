package chow

import "io"

// Options controls diagnostic output from Test. The zero value and nil
// both mean quiet operation.
type Options struct {
	Verbose bool      // Print a human-readable summary of the outcome
	Output  io.Writer // Destination for the summary (default: os.Stdout)
}

// DefaultOptions returns options with verbose output disabled.
func DefaultOptions() *Options {
	return &Options{}
}
