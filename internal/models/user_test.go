package models

import (
	"testing"

	"github.com/devforge/devforge-backend/internal/leveling"
)

func TestAddExperience_RecomputesLevel(t *testing.T) {
	u := User{Level: leveling.Lowest}

	if err := u.AddExperience(250); err != nil {
		t.Fatal(err)
	}
	if u.XPTotal != 250 || u.Level != "INICIANTE III" {
		t.Errorf("got xp=%d level=%q", u.XPTotal, u.Level)
	}

	if err := u.AddExperience(0); err != nil {
		t.Fatal(err)
	}
	if u.Level != "INICIANTE III" {
		t.Error("zero grant must not change the level")
	}
}

func TestAddExperience_RepeatedCallsAccumulate(t *testing.T) {
	a := User{Level: leveling.Lowest}
	b := User{Level: leveling.Lowest}

	if err := a.AddExperience(100); err != nil {
		t.Fatal(err)
	}
	if err := a.AddExperience(50); err != nil {
		t.Fatal(err)
	}
	if err := b.AddExperience(150); err != nil {
		t.Fatal(err)
	}

	if a.XPTotal != b.XPTotal || a.Level != b.Level {
		t.Errorf("100+50 and 150 diverged: %d/%q vs %d/%q", a.XPTotal, a.Level, b.XPTotal, b.Level)
	}
}

func TestAddExperience_RejectsNegative(t *testing.T) {
	u := User{XPTotal: 500, Level: "JUNIOR II"}
	if err := u.AddExperience(-10); err == nil {
		t.Fatal("expected error for negative amount")
	}
	if u.XPTotal != 500 || u.Level != "JUNIOR II" {
		t.Error("failed grant must not mutate the user")
	}
}
