package chow

// Verdict classifies the outcome of a test.
type Verdict int

const (
	// VerdictFailToReject means the null hypothesis of equal regression
	// coefficients in the two periods could not be rejected.
	VerdictFailToReject Verdict = iota

	// VerdictReject means the null hypothesis was rejected at the
	// requested level: the two periods are better described by separate
	// regressions.
	VerdictReject

	// VerdictDegenerate means the statistic was not computable for the
	// requested split (no residual degrees of freedom, or a zero split
	// residual sum of squares) and the neutral values statistic 0 and
	// p-value 1 were reported instead.
	VerdictDegenerate
)

func (v Verdict) String() string {
	switch v {
	case VerdictFailToReject:
		return "fail to reject"
	case VerdictReject:
		return "reject"
	case VerdictDegenerate:
		return "degenerate"
	}
	return "unknown"
}
