package tareldar

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// Mission is a single propagation request: an orbit, a start epoch and the
// span to propagate over. It is consumed once and never mutated.
type Mission struct {
	Orbit    Orbit
	Epoch    time.Time
	Duration time.Duration
}

// DefaultMission returns a mission with the default orbit and a zero span.
func DefaultMission() Mission {
	return Mission{Orbit: DefaultOrbit()}
}

// State is one accepted trajectory sample: position and velocity in the
// body-centered inertial frame at a given date.
type State struct {
	DT time.Time
	R  []float64 // Position in meters.
	V  []float64 // Velocity in m/s.
}

// JD returns the Julian date of this sample.
func (s State) JD() float64 {
	return julian.TimeToJD(s.DT)
}

// Vector6 returns the combined [x y z vx vy vz] form of this sample.
func (s State) Vector6() []float64 {
	return []float64{s.R[0], s.R[1], s.R[2], s.V[0], s.V[1], s.V[2]}
}
