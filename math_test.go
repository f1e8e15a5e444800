package tareldar

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestNormCrossDot(t *testing.T) {
	a := []float64{3, 4, 0}
	if norm(a) != 5 {
		t.Fatalf("|a|=%f", norm(a))
	}
	x := []float64{1, 0, 0}
	y := []float64{0, 1, 0}
	if !vectorsEqual(cross(x, y), []float64{0, 0, 1}, 1e-15) {
		t.Fatalf("x̂ × ŷ = %+v", cross(x, y))
	}
	if dot(x, y) != 0 {
		t.Fatalf("x̂ · ŷ = %f", dot(x, y))
	}
	if !scalar.EqualWithinAbs(dot(a, a), 25, 1e-12) {
		t.Fatalf("a · a = %f", dot(a, a))
	}
}

func TestUnit(t *testing.T) {
	if !vectorsEqual(unit([]float64{10, 0, 0}), []float64{1, 0, 0}, 1e-15) {
		t.Fatal("unit of x-aligned vector incorrect")
	}
	if !vectorsEqual(unit([]float64{0, 0, 0}), []float64{0, 0, 0}, 1e-15) {
		t.Fatal("unit of null vector must be the null vector")
	}
}

func TestDegRad(t *testing.T) {
	for _, deg := range []float64{0, 45, 90, 180, 270} {
		if !scalar.EqualWithinAbs(Rad2deg(Deg2rad(deg)), deg, 1e-12) {
			t.Fatalf("degree round trip failed for %f", deg)
		}
	}
	if !scalar.EqualWithinAbs(Deg2rad(-90), 3*math.Pi/2, 1e-12) {
		t.Fatalf("negative degrees must wrap: %f", Deg2rad(-90))
	}
	if !scalar.EqualWithinAbs(Rad2deg(-math.Pi/2), 270, 1e-12) {
		t.Fatalf("negative radians must wrap: %f", Rad2deg(-math.Pi/2))
	}
}
