package chow

import "strconv"

// Significance is the rejection threshold for the test. Only the three
// conventional levels are supported; any other value fails validation.
type Significance float64

// Supported significance levels.
const (
	Significance1Pct  Significance = 0.01
	Significance5Pct  Significance = 0.05
	Significance10Pct Significance = 0.10
)

// Valid reports whether the level is one of the supported constants.
func (s Significance) Valid() bool {
	switch s {
	case Significance1Pct, Significance5Pct, Significance10Pct:
		return true
	}
	return false
}

func (s Significance) String() string {
	switch s {
	case Significance1Pct:
		return "1%"
	case Significance5Pct:
		return "5%"
	case Significance10Pct:
		return "10%"
	}
	return strconv.FormatFloat(float64(s), 'g', -1, 64)
}
