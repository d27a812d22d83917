package decision

import (
	"math"
	"math/rand"
	"sort"

	"github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/menu"
)

const recentWindow = 5

// DiversePick implements random-mode selection: drop the explicitly excluded
// menu, drop recently seen menus when enough candidates remain, shuffle, and
// take the head. An empty candidate set falls back to a uniform pick over the
// full catalog.
func DiversePick(rng *rand.Rand, candidates []menu.Item, exclude string, recent []string, catalog []menu.Item) menu.Item {
	if len(candidates) == 0 {
		return catalog[rng.Intn(len(catalog))]
	}

	pool := candidates
	if exclude != "" {
		trimmed := withoutName(pool, []string{exclude})
		if len(trimmed) > 0 {
			pool = trimmed
		}
	}

	if len(recent) > recentWindow {
		recent = recent[:recentWindow]
	}
	if len(recent) > 0 {
		// Skip the recency exclusion when it would over-filter the pool.
		floor := minInt(recentWindow, int(math.Ceil(0.3*float64(len(pool)))))
		if trimmed := withoutName(pool, recent); len(trimmed) >= floor && len(trimmed) > 0 {
			pool = trimmed
		}
	}

	shuffled := make([]menu.Item, len(pool))
	copy(shuffled, pool)
	// Fisher-Yates, unbiased.
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled[0]
}

// TopCandidates scores every candidate against the preferences, sorts
// descending and keeps the top max(5, ceil(30%)) entries with positive
// scores. An empty return means weighted selection cannot proceed and the
// caller should degrade to DiversePick.
func TopCandidates(candidates []menu.Item, prefs Preferences, exclude string) []ScoredItem {
	scored := make([]ScoredItem, 0, len(candidates))
	for _, item := range candidates {
		if exclude != "" && item.Name == exclude {
			continue
		}
		scored = append(scored, ScoredItem{Item: item, Score: Score(item, prefs, nil)})
	}
	if len(scored) == 0 {
		return nil
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	keep := int(math.Ceil(0.3 * float64(len(scored))))
	if keep < 5 {
		keep = 5
	}
	if keep > len(scored) {
		keep = len(scored)
	}
	scored = scored[:keep]

	positive := scored[:0]
	for _, s := range scored {
		if s.Score > 0 {
			positive = append(positive, s)
		}
	}
	return positive
}

// WeightedPick draws one entry with probability proportional to its score.
// Degenerate inputs (single candidate, zero total) fall back to a uniform
// draw instead of failing.
func WeightedPick(rng *rand.Rand, scored []ScoredItem) ScoredItem {
	if len(scored) == 1 {
		return scored[0]
	}

	total := 0.0
	for _, s := range scored {
		total += s.Score
	}
	if total <= 0 {
		return scored[rng.Intn(len(scored))]
	}

	remainder := rng.Float64() * total
	for _, s := range scored {
		remainder -= s.Score
		if remainder <= 0 {
			return s
		}
	}
	// Floating point drift can leave a sliver; the last entry absorbs it.
	return scored[len(scored)-1]
}

func withoutName(items []menu.Item, names []string) []menu.Item {
	out := make([]menu.Item, 0, len(items))
	for _, item := range items {
		skip := false
		for _, name := range names {
			if item.Name == name {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, item)
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
