package tareldar

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// LoadMission reads a mission definition named `mission` (mission.toml,
// mission.yaml, ...) from the provided directory. Angles are given in
// degrees in the file and converted to radians here. Missing keys fall back
// to the default mission values.
func LoadMission(dir string) (Mission, error) {
	v := viper.New()
	v.SetConfigName("mission")
	v.AddConfigPath(dir)

	def := DefaultMission()
	v.SetDefault("orbit.semi_major_axis", def.Orbit.Elements.SemiMajorAxis)
	v.SetDefault("orbit.central_body", def.Orbit.CentralBody.String())
	v.SetDefault("orbit.coordinate_system", def.Orbit.CoordinateSystem.String())
	v.SetDefault("orbit.ode_solver", def.Orbit.OdeSolver.String())

	if err := v.ReadInConfig(); err != nil {
		return Mission{}, fmt.Errorf("reading mission config: %w", err)
	}

	body, err := ParseCentralBody(v.GetString("orbit.central_body"))
	if err != nil {
		return Mission{}, err
	}
	frame, err := ParseCoordinateSystem(v.GetString("orbit.coordinate_system"))
	if err != nil {
		return Mission{}, err
	}
	solver, err := ParseOdeSolver(v.GetString("orbit.ode_solver"))
	if err != nil {
		return Mission{}, err
	}

	elements := KeplerElements{
		SemiMajorAxis:            v.GetFloat64("orbit.semi_major_axis"),
		Eccentricity:             v.GetFloat64("orbit.eccentricity"),
		Inclination:              Deg2rad(v.GetFloat64("orbit.inclination")),
		LongitudeOfAscendingNode: Deg2rad(v.GetFloat64("orbit.longitude_of_ascending_node")),
		ArgumentOfPeriapsis:      Deg2rad(v.GetFloat64("orbit.argument_of_periapsis")),
		TrueAnomaly:              Deg2rad(v.GetFloat64("orbit.true_anomaly")),
	}
	if err = elements.Validate(); err != nil {
		return Mission{}, err
	}

	mission := Mission{
		Orbit: Orbit{
			Elements:         elements,
			CentralBody:      body,
			CoordinateSystem: frame,
			OdeSolver:        solver,
		},
	}
	if raw := v.GetString("mission.epoch"); raw != "" {
		epoch, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return Mission{}, fmt.Errorf("%w: epoch %q", ErrParse, raw)
		}
		mission.Epoch = epoch.UTC()
	}
	if raw := v.GetString("mission.duration"); raw != "" {
		duration, err := time.ParseDuration(raw)
		if err != nil {
			return Mission{}, fmt.Errorf("%w: duration %q", ErrParse, raw)
		}
		mission.Duration = duration
	}
	return mission, nil
}
