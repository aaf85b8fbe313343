// Package autochow implements automatic structural break location.
//
// Where chow.Test evaluates one assumed break point, Scan evaluates
// every admissible exact partition of the data and reports the
// candidate with the strongest evidence.
//
// # Basic Usage
//
// Scan with defaults (5% level, minimum segment of parameters + 1):
//
//	result, err := autochow.Scan(x, y, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if result.Best != nil {
//	    fmt.Printf("break after row %d: F = %.2f, p = %.5f\n",
//	        result.Best.Index, result.Best.Statistic, result.Best.PValue)
//	} else {
//	    fmt.Printf("no break found across %d candidates\n", result.Evaluated)
//	}
//
// # Configuration
//
// Customize the scan with Config:
//
//	config := autochow.DefaultConfig()
//	config.MinSegment = 10                  // Wider guard segments
//	config.Level = chow.Significance1Pct    // Stricter rejections
//	config.Trace = true                     // Print each candidate
//
//	result, err := autochow.Scan(x, y, config)
//
// # Reading the Result
//
// Breaks holds the outcome at every candidate in index order, which is
// useful for plotting the statistic across the series. Best is nil
// unless at least one candidate rejected the null hypothesis at the
// configured level; candidates with degenerate splits never qualify.
package autochow
