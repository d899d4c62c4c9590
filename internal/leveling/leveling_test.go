package leveling

import "testing"

func TestLevelFor_Boundaries(t *testing.T) {
	cases := []struct {
		xp   int
		want string
	}{
		{0, "INICIANTE I"},
		{99, "INICIANTE I"},
		{100, "INICIANTE II"},
		{199, "INICIANTE II"},
		{200, "INICIANTE III"},
		{299, "INICIANTE III"},
		{300, "JUNIOR I"},
		{499, "JUNIOR I"},
		{500, "JUNIOR II"},
		{750, "JUNIOR III"},
		{999, "JUNIOR III"},
		{1000, "PLENO I"},
		{2000, "PLENO II"},
		{3500, "PLENO III"},
		{4999, "PLENO III"},
		{5000, "SENIOR I"},
		{7499, "SENIOR I"},
		// 7500 and 10000 share a label; see DESIGN.md.
		{7500, "SENIOR III"},
		{9999, "SENIOR III"},
		{10000, "SENIOR III"},
		{123456, "SENIOR III"},
	}
	for _, c := range cases {
		if got := LevelFor(c.xp); got != c.want {
			t.Errorf("LevelFor(%d) = %q, want %q", c.xp, got, c.want)
		}
	}
}

func TestLevelFor_NonDecreasing(t *testing.T) {
	rank := map[string]int{
		"INICIANTE I": 0, "INICIANTE II": 1, "INICIANTE III": 2,
		"JUNIOR I": 3, "JUNIOR II": 4, "JUNIOR III": 5,
		"PLENO I": 6, "PLENO II": 7, "PLENO III": 8,
		"SENIOR I": 9, "SENIOR III": 10,
	}
	prev := -1
	for xp := 0; xp <= 12000; xp++ {
		r, ok := rank[LevelFor(xp)]
		if !ok {
			t.Fatalf("LevelFor(%d) returned unknown label %q", xp, LevelFor(xp))
		}
		if r < prev {
			t.Fatalf("level rank decreased at xp=%d", xp)
		}
		prev = r
	}
}

func TestLevelFor_NegativeClampsToLowest(t *testing.T) {
	if got := LevelFor(-50); got != Lowest {
		t.Errorf("LevelFor(-50) = %q, want %q", got, Lowest)
	}
}
