package tareldar

import "fmt"

// CentralBody identifies the gravitating body at the center of the frame.
type CentralBody int

// Supported central bodies.
const (
	Earth CentralBody = iota
)

// String implements the Stringer interface.
func (c CentralBody) String() string {
	switch c {
	case Earth:
		return "EARTH"
	default:
		return fmt.Sprintf("CentralBody(%d)", int(c))
	}
}

// ParseCentralBody returns the central body matching the provided name.
func ParseCentralBody(name string) (CentralBody, error) {
	switch name {
	case "EARTH":
		return Earth, nil
	default:
		return 0, fmt.Errorf("%w: central body %q", ErrParse, name)
	}
}

// Body holds the physical constants of a gravitating body. μ is in m^3/s^2,
// consistent with elements expressed in meters and seconds.
type Body struct {
	Name   string
	Mu     float64 // Gravitational parameter μ.
	Radius float64 // Equatorial radius in meters.
}

// String implements the Stringer interface.
func (b Body) String() string {
	return b.Name + " body"
}

// BodyTable maps central-body identifiers to their constants. The table is
// passed around explicitly so tests can inject synthetic bodies.
type BodyTable map[CentralBody]Body

// Lookup returns the body constants for the given identifier.
func (t BodyTable) Lookup(c CentralBody) (Body, error) {
	body, found := t[c]
	if !found {
		return Body{}, fmt.Errorf("%w: %s", ErrUnknownBody, c)
	}
	return body, nil
}

// DefaultBodies is the body table used when none is provided.
var DefaultBodies = BodyTable{
	Earth: {Name: "Earth", Mu: 398600.4418e9, Radius: 6378136.3},
}
