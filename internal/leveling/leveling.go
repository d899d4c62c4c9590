// Package leveling maps accumulated experience to the platform's twelve
// seniority labels.
package leveling

import "errors"

// ErrNegativeAmount is returned when an XP grant is negative; the engine
// does not support XP loss.
var ErrNegativeAmount = errors.New("experience amount must be non-negative")

// Lowest is the label every new user starts at.
const Lowest = "INICIANTE I"

type tier struct {
	minXP int
	label string
}

// Evaluated top-down, first match wins. The 7500 tier intentionally carries
// the same label as the 10000 tier; changing it is a product decision, not
// ours. See DESIGN.md.
var tiers = []tier{
	{10000, "SENIOR III"},
	{7500, "SENIOR III"},
	{5000, "SENIOR I"},
	{3500, "PLENO III"},
	{2000, "PLENO II"},
	{1000, "PLENO I"},
	{750, "JUNIOR III"},
	{500, "JUNIOR II"},
	{300, "JUNIOR I"},
	{200, "INICIANTE III"},
	{100, "INICIANTE II"},
	{0, "INICIANTE I"},
}

// LevelFor returns the seniority label for a total XP value. Deterministic
// and side-effect free; negative totals clamp to the lowest tier.
func LevelFor(xpTotal int) string {
	for _, t := range tiers {
		if xpTotal >= t.minXP {
			return t.label
		}
	}
	return Lowest
}
