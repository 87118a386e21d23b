package builder

import "strconv"

// round rounds x to the given number of decimal places, ties to even, based
// on the exact binary value of x. This is what Python's round() does, which
// the published dataset has always been generated with.
func round(x float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return r
}
