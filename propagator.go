package tareldar

import (
	"errors"
	"fmt"
	"math"
	"time"

	kitlog "github.com/go-kit/kit/log"

	"github.com/connor-mcnaboe/Tareldar/integrator"
)

// OdeSolver selects the numerical integration scheme.
type OdeSolver int

// Declared solver kinds. Only RungeKutta4 and DormandPrince5 are wired to a
// scheme; DormandPrince853 fails fast with ErrUnsupportedSolver.
const (
	RungeKutta4 OdeSolver = iota
	DormandPrince5
	DormandPrince853
)

// String implements the Stringer interface.
func (s OdeSolver) String() string {
	switch s {
	case RungeKutta4:
		return "RungeKutta4"
	case DormandPrince5:
		return "DormandPrince5"
	case DormandPrince853:
		return "DormandPrince853"
	default:
		return fmt.Sprintf("OdeSolver(%d)", int(s))
	}
}

// ParseOdeSolver returns the solver kind matching the provided name.
func ParseOdeSolver(name string) (OdeSolver, error) {
	switch name {
	case "RungeKutta4":
		return RungeKutta4, nil
	case "DormandPrince5":
		return DormandPrince5, nil
	case "DormandPrince853":
		return DormandPrince853, nil
	default:
		return 0, fmt.Errorf("%w: ODE solver %q", ErrParse, name)
	}
}

func (s OdeSolver) stepper() (integrator.Stepper, error) {
	switch s {
	case RungeKutta4:
		return integrator.RK4{}, nil
	case DormandPrince5:
		return integrator.Dopri5{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSolver, s)
	}
}

// Reference integration settings, in meters and seconds.
const (
	AbsTol      = 1e-8
	RelTol      = 1e-6
	InitialStep = 10.0
)

// TwoBodyDynamics is the right-hand side of the restricted two-body
// equations of motion: an inverse-square attraction toward the origin and
// nothing else, re-evaluated at every integrator stage.
type TwoBodyDynamics struct {
	Mu float64
}

// Func returns the state derivative for y = [x y z vx vy vz].
func (d TwoBodyDynamics) Func(t float64, y []float64) ([]float64, error) {
	r := norm(y[:3])
	if r == 0 {
		return nil, ErrSingularState
	}
	r3 := r * r * r
	return []float64{y[3], y[4], y[5],
		-d.Mu * y[0] / r3, -d.Mu * y[1] / r3, -d.Mu * y[2] / r3}, nil
}

// Propagator runs one mission to completion. Each instance owns its own
// integration state; nothing is shared between concurrent propagations.
type Propagator struct {
	mission Mission
	bodies  BodyTable
	logger  kitlog.Logger
}

// NewPropagator returns a propagator for the given mission, using the
// default body table and no logging.
func NewPropagator(mission Mission) *Propagator {
	return &Propagator{mission: mission, bodies: DefaultBodies, logger: kitlog.NewNopLogger()}
}

// WithBodies replaces the body table, e.g. with synthetic bodies in tests.
func (p *Propagator) WithBodies(t BodyTable) *Propagator {
	p.bodies = t
	return p
}

// WithLogger replaces the no-op logger.
func (p *Propagator) WithLogger(logger kitlog.Logger) *Propagator {
	p.logger = logger
	return p
}

// Propagate integrates the mission orbit over [epoch, epoch+duration] and
// returns every accepted step, initial state included. Propagation is
// all-or-nothing: any failure returns a nil trajectory so a truncated run
// can never be mistaken for a complete one.
func (p *Propagator) Propagate() ([]State, error) {
	m := p.mission
	body, err := p.bodies.Lookup(m.Orbit.CentralBody)
	if err != nil {
		return nil, err
	}
	stepper, err := m.Orbit.OdeSolver.stepper()
	if err != nil {
		return nil, err
	}
	R, V, err := m.Orbit.Elements.ToStateVector(body.Mu)
	if err != nil {
		return nil, err
	}

	p.logger.Log("level", "info", "subsys", "astro", "status", "starting",
		"orbit", m.Orbit, "solver", m.Orbit.OdeSolver, "duration", m.Duration)

	dynamics := TwoBodyDynamics{Mu: body.Mu}
	y0 := []float64{R[0], R[1], R[2], V[0], V[1], V[2]}
	cfg := integrator.Config{AbsTol: AbsTol, RelTol: RelTol, InitialStep: InitialStep}
	ts, ys, err := integrator.Solve(dynamics.Func, y0, 0, m.Duration.Seconds(), stepper, cfg)
	if err != nil {
		p.logger.Log("level", "error", "subsys", "astro", "status", "aborted", "err", err)
		if errors.Is(err, ErrSingularState) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrIntegrationFailure, err)
	}

	states := make([]State, len(ts))
	for i, t := range ts {
		states[i] = State{
			DT: m.Epoch.Add(time.Duration(t * float64(time.Second))),
			R:  ys[i][0:3:3],
			V:  ys[i][3:6:6],
		}
	}
	p.logger.Log("level", "info", "subsys", "astro", "status", "finished",
		"steps", len(states)-1, "Δv(m/s)", math.Abs(norm(states[len(states)-1].V)-norm(states[0].V)))
	return states, nil
}

// Propagate is a convenience wrapper running a mission with the default
// body table and no logging.
func Propagate(mission Mission) ([]State, error) {
	return NewPropagator(mission).Propagate()
}
