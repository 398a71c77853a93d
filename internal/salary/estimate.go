// Package salary turns a salary fork into a single point estimate.
package salary

const (
	lowerOnlyFactor = 0.8
	upperOnlyFactor = 1.2
)

// Estimate predicts a salary from an optional lower and upper bound.
//
// Results are truncated toward zero. A zero bound is treated as missing,
// since boards report unspecified bounds that way, and an estimate that
// truncates to zero is reported as absent.
func Estimate(from, to *int) (int, bool) {
	lower, hasLower := bound(from)
	upper, hasUpper := bound(to)

	var estimate int
	switch {
	case hasLower && hasUpper:
		estimate = int(float64(lower+upper) / 2)
	case hasLower:
		estimate = int(float64(lower) * lowerOnlyFactor)
	case hasUpper:
		estimate = int(float64(upper) * upperOnlyFactor)
	default:
		return 0, false
	}

	if estimate == 0 {
		return 0, false
	}
	return estimate, true
}

func bound(v *int) (int, bool) {
	if v == nil || *v == 0 {
		return 0, false
	}
	return *v, true
}
