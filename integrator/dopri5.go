package integrator

// Dopri5 is the embedded Dormand-Prince 5(4) scheme: seven stages yielding a
// fifth-order solution and a fourth-order companion whose difference drives
// the step-size control.
type Dopri5 struct{}

// Butcher tableau of the Dormand-Prince 5(4) pair.
var (
	dpC = [7]float64{0, 1. / 5, 3. / 10, 4. / 5, 8. / 9, 1, 1}
	dpA = [7][6]float64{
		{},
		{1. / 5},
		{3. / 40, 9. / 40},
		{44. / 45, -56. / 15, 32. / 9},
		{19372. / 6561, -25360. / 2187, 64448. / 6561, -212. / 729},
		{9017. / 3168, -355. / 33, 46732. / 5247, 49. / 176, -5103. / 18656},
		{35. / 384, 0, 500. / 1113, 125. / 192, -2187. / 6784, 11. / 84},
	}
	// dpE is b5 - b4: the weights of the embedded error estimate.
	dpE = [7]float64{71. / 57600, 0, -71. / 16695, 71. / 1920, -17253. / 339200, 22. / 525, -1. / 40}
)

// Order implements Stepper.
func (Dopri5) Order() int { return 5 }

// Adaptive implements Stepper.
func (Dopri5) Adaptive() bool { return true }

// Step implements Stepper.
func (Dopri5) Step(f Func, t float64, y []float64, h float64) ([]float64, []float64, error) {
	n := len(y)
	var k [7][]float64
	buf := make([]float64, n)

	for stage := 0; stage < 7; stage++ {
		arg := y
		if stage > 0 {
			for i := 0; i < n; i++ {
				acc := y[i]
				for j := 0; j < stage; j++ {
					acc += h * dpA[stage][j] * k[j][i]
				}
				buf[i] = acc
			}
			arg = buf
		}
		ki, err := f(t+dpC[stage]*h, arg)
		if err != nil {
			return nil, nil, err
		}
		k[stage] = ki
	}

	// The seventh stage argument is the fifth-order solution itself.
	ynew := make([]float64, n)
	yerr := make([]float64, n)
	for i := 0; i < n; i++ {
		acc := y[i]
		for j := 0; j < 6; j++ {
			acc += h * dpA[6][j] * k[j][i]
		}
		ynew[i] = acc
		var e float64
		for j := 0; j < 7; j++ {
			e += dpE[j] * k[j][i]
		}
		yerr[i] = h * e
	}
	return ynew, yerr, nil
}
