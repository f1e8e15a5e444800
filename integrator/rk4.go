package integrator

// RK4 is the classical fourth-order fixed-step Runge-Kutta scheme. It
// carries no embedded error estimate, so the driver keeps the step constant.
type RK4 struct{}

// Order implements Stepper.
func (RK4) Order() int { return 4 }

// Adaptive implements Stepper.
func (RK4) Adaptive() bool { return false }

// Step implements Stepper.
func (RK4) Step(f Func, t float64, y []float64, h float64) ([]float64, []float64, error) {
	n := len(y)
	buf := make([]float64, n)

	k1, err := f(t, y)
	if err != nil {
		return nil, nil, err
	}
	for i := range buf {
		buf[i] = y[i] + 0.5*h*k1[i]
	}
	k2, err := f(t+0.5*h, buf)
	if err != nil {
		return nil, nil, err
	}
	for i := range buf {
		buf[i] = y[i] + 0.5*h*k2[i]
	}
	k3, err := f(t+0.5*h, buf)
	if err != nil {
		return nil, nil, err
	}
	for i := range buf {
		buf[i] = y[i] + h*k3[i]
	}
	k4, err := f(t+h, buf)
	if err != nil {
		return nil, nil, err
	}

	ynew := make([]float64, n)
	for i := range ynew {
		ynew[i] = y[i] + h/6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return ynew, nil, nil
}
