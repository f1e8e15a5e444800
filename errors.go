package tareldar

import "errors"

// Every failure returned by this library wraps one of these sentinels, so
// callers can classify with errors.Is without string matching.
var (
	// ErrInvalidOrbitGeometry flags a non-physical element combination,
	// e.g. a non-positive semi-latus rectum or gravitational parameter.
	ErrInvalidOrbitGeometry = errors.New("invalid orbit geometry")

	// ErrSingularState flags a zero-radius state during integration.
	ErrSingularState = errors.New("singular state: zero orbital radius")

	// ErrIntegrationFailure flags a propagation the solver could not carry
	// to completion (step underflow, non-finite state, step cap).
	ErrIntegrationFailure = errors.New("integration failure")

	// ErrUnknownBody flags a central body missing from the body table.
	ErrUnknownBody = errors.New("unknown central body")

	// ErrUnsupportedSolver flags a solver kind not wired to a scheme.
	ErrUnsupportedSolver = errors.New("unsupported ODE solver")

	// ErrParse flags an unrecognized textual value for one of the enums.
	ErrParse = errors.New("unrecognized value")
)
