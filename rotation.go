package tareldar

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// R1 rotation about the 1st axis.
func R1(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 rotation about the 2nd axis.
func R2(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// PQW2ECI converts a given vector from the perifocal (PQW) frame to the
// body-centered inertial frame via the 3-1-3 rotation R3(-Ω)R1(-i)R3(-ω).
func PQW2ECI(i, ω, Ω float64, vI []float64) []float64 {
	var mulM mat.Dense
	mulM.Mul(R3(-Ω), R1(-i))
	mulM.Mul(&mulM, R3(-ω))
	return MxV33(&mulM, vI)
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat.Dense, v []float64) []float64 {
	var rVec mat.VecDense
	rVec.MulVec(m, mat.NewVecDense(len(v), v))
	return []float64{rVec.AtVec(0), rVec.AtVec(1), rVec.AtVec(2)}
}
