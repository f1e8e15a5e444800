package tareldar

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gonum.org/v1/gonum/floats/scalar"
)

func writeMission(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mission.toml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadMission(t *testing.T) {
	mission, err := LoadMission("testdata")
	if err != nil {
		t.Fatalf("load failed: %s", err)
	}
	o := mission.Orbit
	if o.CentralBody != Earth || o.CoordinateSystem != EarthCenteredInertial || o.OdeSolver != DormandPrince5 {
		t.Fatalf("unexpected orbit configuration: %s", o)
	}
	if !scalar.EqualWithinRel(o.Elements.SemiMajorAxis, 6.791301224674748e6, 1e-12) {
		t.Fatalf("incorrect semi-major axis %f", o.Elements.SemiMajorAxis)
	}
	if !scalar.EqualWithinAbs(o.Elements.Inclination, Deg2rad(49.49314343620572), 1e-12) {
		t.Fatalf("inclination not converted to radians: %f", o.Elements.Inclination)
	}
	if !mission.Epoch.Equal(time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)) {
		t.Fatalf("incorrect epoch %s", mission.Epoch)
	}
	if mission.Duration != time.Hour {
		t.Fatalf("incorrect duration %s", mission.Duration)
	}
}

func TestLoadMissionDefaults(t *testing.T) {
	dir := writeMission(t, "[orbit]\nsemi_major_axis = 7000000.0\n")
	mission, err := LoadMission(dir)
	if err != nil {
		t.Fatalf("load failed: %s", err)
	}
	if mission.Orbit.Elements.SemiMajorAxis != 7e6 {
		t.Fatalf("incorrect semi-major axis %f", mission.Orbit.Elements.SemiMajorAxis)
	}
	if mission.Orbit.OdeSolver != RungeKutta4 || mission.Orbit.CentralBody != Earth {
		t.Fatalf("defaults not applied: %s", mission.Orbit)
	}
	if !mission.Epoch.IsZero() || mission.Duration != 0 {
		t.Fatalf("expected zero epoch and span: %+v", mission)
	}
}

func TestLoadMissionBadSolver(t *testing.T) {
	dir := writeMission(t, "[orbit]\nsemi_major_axis = 7000000.0\node_solver = \"Euler\"\n")
	if _, err := LoadMission(dir); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestLoadMissionBadEpoch(t *testing.T) {
	dir := writeMission(t, "[orbit]\nsemi_major_axis = 7000000.0\n[mission]\nepoch = \"yesterday\"\n")
	if _, err := LoadMission(dir); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestLoadMissionBadGeometry(t *testing.T) {
	dir := writeMission(t, "[orbit]\nsemi_major_axis = 7000000.0\neccentricity = 1.0\n")
	if _, err := LoadMission(dir); !errors.Is(err, ErrInvalidOrbitGeometry) {
		t.Fatalf("expected ErrInvalidOrbitGeometry, got %v", err)
	}
}

func TestLoadMissionMissingFile(t *testing.T) {
	if _, err := LoadMission(t.TempDir()); err == nil {
		t.Fatal("expected an error for a missing mission file")
	}
}
