package tareldar

import (
	"errors"
	"testing"
)

func TestBodyTableLookup(t *testing.T) {
	body, err := DefaultBodies.Lookup(Earth)
	if err != nil {
		t.Fatalf("Earth lookup failed: %s", err)
	}
	if body.Mu != 398600.4418e9 {
		t.Fatalf("incorrect Earth μ: %g", body.Mu)
	}
	if body.String() != "Earth body" {
		t.Fatalf("incorrect body string: %s", body)
	}
}

func TestBodyTableUnknown(t *testing.T) {
	_, err := DefaultBodies.Lookup(CentralBody(42))
	if !errors.Is(err, ErrUnknownBody) {
		t.Fatalf("expected ErrUnknownBody, got %v", err)
	}
}

func TestBodyTableSynthetic(t *testing.T) {
	table := BodyTable{Earth: {Name: "Flat Earth", Mu: 1}}
	body, err := table.Lookup(Earth)
	if err != nil {
		t.Fatalf("synthetic lookup failed: %s", err)
	}
	if body.Mu != 1 {
		t.Fatalf("synthetic μ not honored: %g", body.Mu)
	}
}

func TestCentralBodyStrings(t *testing.T) {
	for _, body := range []CentralBody{Earth} {
		parsed, err := ParseCentralBody(body.String())
		if err != nil {
			t.Fatalf("could not parse %s: %s", body, err)
		}
		if parsed != body {
			t.Fatalf("round trip failed for %s", body)
		}
	}
	if _, err := ParseCentralBody("KRYPTON"); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}
