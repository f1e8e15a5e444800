package tareldar

import (
	"fmt"
	"math"
	"time"
)

// CoordinateSystem tags the frame an orbit is expressed in. Only the
// inertial frame is mechanized further; the Earth-fixed tag is carried for
// configuration round-trips.
type CoordinateSystem int

// Supported coordinate systems.
const (
	EarthCenteredInertial CoordinateSystem = iota
	EarthCenteredEarthFixed
)

// String implements the Stringer interface.
func (c CoordinateSystem) String() string {
	switch c {
	case EarthCenteredInertial:
		return "EarthCenteredInertial"
	case EarthCenteredEarthFixed:
		return "EarthCenteredEarthFixed"
	default:
		return fmt.Sprintf("CoordinateSystem(%d)", int(c))
	}
}

// ParseCoordinateSystem returns the coordinate system matching the provided name.
func ParseCoordinateSystem(name string) (CoordinateSystem, error) {
	switch name {
	case "EarthCenteredInertial":
		return EarthCenteredInertial, nil
	case "EarthCenteredEarthFixed":
		return EarthCenteredEarthFixed, nil
	default:
		return 0, fmt.Errorf("%w: coordinate system %q", ErrParse, name)
	}
}

// KeplerElements defines the six classical orbital elements of an osculating
// orbit at a given epoch. Lengths are in meters, angles in radians.
type KeplerElements struct {
	SemiMajorAxis            float64 // a
	Eccentricity             float64 // e
	Inclination              float64 // i
	LongitudeOfAscendingNode float64 // Ω
	ArgumentOfPeriapsis      float64 // ω
	TrueAnomaly              float64 // ν
}

// SemiParameter returns the semi-latus rectum p = a(1-e^2).
func (k KeplerElements) SemiParameter() float64 {
	return k.SemiMajorAxis * (1 - k.Eccentricity*k.Eccentricity)
}

// RNorm returns the orbital radius at the current true anomaly, without
// computing the radius vector.
func (k KeplerElements) RNorm() float64 {
	return k.SemiParameter() / (1 + k.Eccentricity*math.Cos(k.TrueAnomaly))
}

// VNorm returns the speed at the current true anomaly from the vis-viva
// equation, without computing the velocity vector.
func (k KeplerElements) VNorm(μ float64) float64 {
	return math.Sqrt(μ * (2/k.RNorm() - 1/k.SemiMajorAxis))
}

// Energy returns the specific mechanical energy ξ.
func (k KeplerElements) Energy(μ float64) float64 {
	return -μ / (2 * k.SemiMajorAxis)
}

// HNorm returns the norm of the specific angular momentum h = sqrt(μp).
func (k KeplerElements) HNorm(μ float64) float64 {
	return math.Sqrt(μ * k.SemiParameter())
}

// ArgLatitude returns the argument of latitude u = ω + ν.
func (k KeplerElements) ArgLatitude() float64 {
	return math.Mod(k.ArgumentOfPeriapsis+k.TrueAnomaly, 2*math.Pi)
}

// Period returns the orbital period.
func (k KeplerElements) Period(μ float64) time.Duration {
	// The time package does not trivially handle fractions of a second, so
	// compute this in a convoluted way...
	seconds := 2 * math.Pi * math.Sqrt(math.Pow(k.SemiMajorAxis, 3)/μ)
	duration, _ := time.ParseDuration(fmt.Sprintf("%.6fs", seconds))
	return duration
}

// Validate returns ErrInvalidOrbitGeometry if the elements do not describe a
// non-degenerate ellipse.
func (k KeplerElements) Validate() error {
	for _, val := range []float64{k.SemiMajorAxis, k.Eccentricity, k.Inclination,
		k.LongitudeOfAscendingNode, k.ArgumentOfPeriapsis, k.TrueAnomaly} {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return fmt.Errorf("%w: non-finite element", ErrInvalidOrbitGeometry)
		}
	}
	if k.Eccentricity < 0 {
		return fmt.Errorf("%w: negative eccentricity e=%g", ErrInvalidOrbitGeometry, k.Eccentricity)
	}
	if p := k.SemiParameter(); p <= 0 {
		return fmt.Errorf("%w: non-positive semi-latus rectum p=%g", ErrInvalidOrbitGeometry, p)
	}
	return nil
}

// ToStateVector converts the elements to position and velocity vectors in
// the body-centered inertial frame. Both vectors are built in the perifocal
// frame first and rotated through PQW2ECI: the position from the conic
// equation, the velocity from Gauss' orbital-velocity formula
// V_pqw = sqrt(μ/p)·(-sin ν, e+cos ν, 0).
func (k KeplerElements) ToStateVector(μ float64) (R, V []float64, err error) {
	if μ <= 0 || math.IsNaN(μ) {
		return nil, nil, fmt.Errorf("%w: non-positive gravitational parameter μ=%g", ErrInvalidOrbitGeometry, μ)
	}
	if err = k.Validate(); err != nil {
		return nil, nil, err
	}
	p := k.SemiParameter()
	sinν, cosν := math.Sincos(k.TrueAnomaly)
	r := p / (1 + k.Eccentricity*cosν)

	i, ω, Ω := k.Inclination, k.ArgumentOfPeriapsis, k.LongitudeOfAscendingNode
	R = PQW2ECI(i, ω, Ω, []float64{r * cosν, r * sinν, 0})
	vFact := math.Sqrt(μ / p)
	V = PQW2ECI(i, ω, Ω, []float64{-vFact * sinν, vFact * (k.Eccentricity + cosν), 0})
	return R, V, nil
}

// Orbit groups the elements with the body and frame they are expressed in,
// and the solver kind requested for propagation.
type Orbit struct {
	Elements         KeplerElements
	CentralBody      CentralBody
	CoordinateSystem CoordinateSystem
	OdeSolver        OdeSolver
}

// DefaultOrbit returns the historical default orbit: a 1 km circular
// equatorial orbit around the Earth, integrated with RK4.
func DefaultOrbit() Orbit {
	return Orbit{
		Elements:         KeplerElements{SemiMajorAxis: 1000.0},
		CentralBody:      Earth,
		CoordinateSystem: EarthCenteredInertial,
		OdeSolver:        RungeKutta4,
	}
}

// String implements the Stringer interface (angles are printed in degrees).
func (o Orbit) String() string {
	k := o.Elements
	return fmt.Sprintf("a=%.1f e=%.4f i=%.3f Ω=%.3f ω=%.3f ν=%.3f (%s)",
		k.SemiMajorAxis, k.Eccentricity, Rad2deg(k.Inclination),
		Rad2deg(k.LongitudeOfAscendingNode), Rad2deg(k.ArgumentOfPeriapsis),
		Rad2deg(k.TrueAnomaly), o.CentralBody)
}
