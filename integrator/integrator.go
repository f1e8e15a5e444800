// Package integrator implements the Runge-Kutta schemes used for orbit
// propagation behind a single Stepper interface, plus the adaptive driver
// loop that consumes them.
package integrator

import (
	"errors"
	"fmt"
	"math"
)

// Func is the right-hand side of a first-order ODE system y' = f(t, y).
// It must not retain or mutate y.
type Func func(t float64, y []float64) ([]float64, error)

// Stepper advances a state vector by one step of size h. Embedded schemes
// also return a per-component local error estimate; fixed-step schemes
// return a nil estimate.
type Stepper interface {
	Step(f Func, t float64, y []float64, h float64) (ynew, yerr []float64, err error)
	Order() int     // Order driving the step-size control exponent.
	Adaptive() bool // Whether yerr is meaningful for step-size control.
}

// Driver failures. Solve wraps these with context; classify with errors.Is.
var (
	ErrStepUnderflow = errors.New("step size underflow")
	ErrMaxSteps      = errors.New("maximum step count exceeded")
	ErrNotFinite     = errors.New("non-finite state")
)

// Config holds the error-control settings of the driver loop. Zero fields
// take the reference defaults.
type Config struct {
	AbsTol      float64 // Default 1e-8.
	RelTol      float64 // Default 1e-6.
	InitialStep float64 // First step attempt, default 10.0.
	MinStep     float64 // Abort below this magnitude, default 1e-12.
	MaxSteps    int     // Attempted-step cap, default 1e6.
}

// DefaultConfig returns the reference error-control settings.
func DefaultConfig() Config {
	return Config{AbsTol: 1e-8, RelTol: 1e-6, InitialStep: 10.0, MinStep: 1e-12, MaxSteps: 1e6}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.AbsTol <= 0 {
		c.AbsTol = def.AbsTol
	}
	if c.RelTol <= 0 {
		c.RelTol = def.RelTol
	}
	if c.InitialStep <= 0 {
		c.InitialStep = def.InitialStep
	}
	if c.MinStep <= 0 {
		c.MinStep = def.MinStep
	}
	if c.MaxSteps <= 0 {
		c.MaxSteps = def.MaxSteps
	}
	return c
}

// Solve integrates f from t0 to tf starting at y0 and returns every accepted
// step, initial condition included. The step size of adaptive steppers is
// controlled by the weighted RMS norm of their local error estimate; a step
// is accepted when the norm is at most one, and the next step size is scaled
// by 0.9·norm^(-1/order), clamped to [0.2, 5] of the current step.
func Solve(f Func, y0 []float64, t0, tf float64, s Stepper, cfg Config) (ts []float64, ys [][]float64, err error) {
	cfg = cfg.withDefaults()
	t := t0
	y := append([]float64(nil), y0...)
	ts = append(ts, t)
	ys = append(ys, append([]float64(nil), y...))
	if tf == t0 {
		return ts, ys, nil
	}

	dir := 1.0
	if tf < t0 {
		dir = -1.0
	}
	h := cfg.InitialStep * dir

	for attempts := 0; (tf-t)*dir > 0; attempts++ {
		if attempts >= cfg.MaxSteps {
			return nil, nil, fmt.Errorf("%w after %d attempts at t=%g", ErrMaxSteps, attempts, t)
		}
		hTry := h
		if (t+hTry-tf)*dir > 0 {
			hTry = tf - t
		}
		ynew, yerr, ferr := s.Step(f, t, y, hTry)
		if ferr != nil {
			return nil, nil, fmt.Errorf("derivative evaluation at t=%g: %w", t, ferr)
		}
		for _, val := range ynew {
			if math.IsNaN(val) || math.IsInf(val, 0) {
				return nil, nil, fmt.Errorf("%w at t=%g", ErrNotFinite, t)
			}
		}

		if !s.Adaptive() {
			t += hTry
			y = ynew
			ts = append(ts, t)
			ys = append(ys, append([]float64(nil), y...))
			continue
		}

		εNorm := errorNorm(y, ynew, yerr, cfg.AbsTol, cfg.RelTol)
		if εNorm <= 1 {
			t += hTry
			y = ynew
			ts = append(ts, t)
			ys = append(ys, append([]float64(nil), y...))
			// A clamped final step may be arbitrarily small; once tf is
			// reached the controller has nothing left to decide.
			if (tf-t)*dir <= 0 {
				break
			}
		}
		// Step-size controller, cf. Hairer, Nørsett & Wanner II.4.
		factor := 0.9 * math.Pow(εNorm, -1/float64(s.Order()))
		factor = math.Min(5.0, math.Max(0.2, factor))
		h = hTry * factor
		if math.Abs(h) < cfg.MinStep {
			return nil, nil, fmt.Errorf("%w: |h|=%g at t=%g", ErrStepUnderflow, math.Abs(h), t)
		}
	}
	return ts, ys, nil
}

// errorNorm returns the weighted RMS norm of the local error estimate.
func errorNorm(y, ynew, yerr []float64, atol, rtol float64) float64 {
	var sum float64
	for i, e := range yerr {
		sc := atol + rtol*math.Max(math.Abs(y[i]), math.Abs(ynew[i]))
		sum += (e / sc) * (e / sc)
	}
	return math.Sqrt(sum / float64(len(yerr)))
}
