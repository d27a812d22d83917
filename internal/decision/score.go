package decision

import (
	"github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/menu"
	"github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/weather"
)

const (
	baseScore        = 100.0
	spiceHardPenalty = 100.0
)

// Score computes the affinity between a menu item and a preference vector.
// Pure: repeated calls with the same arguments return the same value. The
// weather multiplier is optional; pass nil for the neutral path. The result
// never goes below zero.
func Score(item menu.Item, prefs Preferences, w *weather.Multiplier) float64 {
	m := item.EffectiveMeta()
	score := baseScore

	// A spice-averse eater should effectively never see a hot dish, but the
	// penalty is finite so one can still surface when nothing else qualifies.
	if prefs.Spicy == 0 && m.Spicy >= 2 {
		score -= spiceHardPenalty
	}
	score -= 15 * absFloat(prefs.Spicy-m.Spicy)

	switch {
	case prefs.Soup == 0 && m.Soup == 2:
		score -= 30
	case prefs.Soup == 2 && m.Soup == 0:
		score -= 20
	default:
		score += 10 * (2 - absFloat(prefs.Soup-m.Soup))
	}

	switch {
	case prefs.Rice && !prefs.Noodle && m.Rice:
		score += 25
	case prefs.Noodle && !prefs.Rice && m.Noodle:
		score += 25
	case prefs.Rice && prefs.Noodle && (m.Rice || m.Noodle):
		score += 15
	}

	score += maxFloat(0, 15-8*absFloat(prefs.Meat-m.Meat))
	score += maxFloat(0, 15-8*absFloat(prefs.Seafood-m.Seafood))
	score += maxFloat(0, 10-5*absFloat(prefs.Veg-m.Veg))

	score -= 10 * absFloat(prefs.Time-m.Time)
	score -= 12 * absFloat(prefs.Budget-m.Budget)

	if w != nil {
		if m.Soup >= 2 {
			score *= w.Soup
		}
		if m.Spicy >= 2 {
			score *= w.Spicy
		}
		if item.IsCold() {
			score *= w.Cold
		}
	}

	if score < 0 {
		return 0
	}
	return score
}

func absFloat(v int) float64 {
	if v < 0 {
		return float64(-v)
	}
	return float64(v)
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
