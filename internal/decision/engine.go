package decision

import (
	"math/rand"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/menu"
)

// Engine runs the full selection pipeline over a fixed catalog. The RNG is
// injected so tests can seed it; access is serialized because rand.Rand is
// not safe for concurrent use.
type Engine struct {
	catalog []menu.Item
	mu      sync.Mutex
	rng     *rand.Rand
}

// NewEngine builds an engine over the supplied catalog.
func NewEngine(catalog []menu.Item, rng *rand.Rand) *Engine {
	return &Engine{catalog: catalog, rng: rng}
}

// Decide filters, scores, selects and assembles one decision. It always
// produces a result for a non-empty catalog; degraded paths are logged with
// the fallback tier that produced them.
func (e *Engine) Decide(in Input) Result {
	candidates, tier := Filter(e.catalog, in.Who, in.How)
	if tier != TierPrimary {
		logrus.WithFields(logrus.Fields{
			"who":  in.Who,
			"how":  in.How,
			"tier": tier.String(),
		}).Info("context filter degraded to fallback tier")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	mode := "random"
	var selected menu.Item
	var score float64

	if in.Preferences != nil {
		if top := TopCandidates(candidates, *in.Preferences, in.ExcludeMenu); len(top) > 0 {
			picked := WeightedPick(e.rng, top)
			selected = picked.Item
			score = picked.Score
			mode = "personalized"
		} else {
			logrus.WithFields(logrus.Fields{
				"who":        in.Who,
				"how":        in.How,
				"candidates": len(candidates),
			}).Info("no positively scored candidates, degrading to diverse selection")
		}
	}

	if mode == "random" {
		selected = DiversePick(e.rng, candidates, in.ExcludeMenu, in.RecentMenus, e.catalog)
	}

	var reason string
	if mode == "personalized" {
		reason = PersonalizedReason(e.rng, in.Who, selected, *in.Preferences)
	} else {
		reason = Reason(e.rng, in.Who, selected)
	}

	result := Result{
		Menu:         selected.Name,
		Reason:       reason,
		Actions:      BuildActions(selected, in.How, in.Outdoor),
		Mode:         mode,
		FallbackTier: tier,
		Score:        score,
	}
	if in.How == ModeCook {
		result.Ingredients = selected.Ingredients
	}
	return result
}
