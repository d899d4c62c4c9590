package services

import "testing"

func TestShouldApprove(t *testing.T) {
	cases := []struct {
		score int
		want  bool
	}{
		{1, false},
		{3, false},
		{4, false},
		{5, true},
		{6, false}, // out of domain, still must not approve
		{0, false},
	}
	for _, c := range cases {
		if got := shouldApprove(c.score); got != c.want {
			t.Errorf("shouldApprove(%d) = %v, want %v", c.score, got, c.want)
		}
	}
}
