package tareldar

import "gonum.org/v1/gonum/floats/scalar"

// vectorsEqual returns whether both 3x1 vectors are equal within ε.
func vectorsEqual(a, b []float64, ε float64) bool {
	for i := range a {
		if !scalar.EqualWithinAbs(a[i], b[i], ε) {
			return false
		}
	}
	return true
}
