package decision

import "github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/menu"

// FallbackTier records which stage of the filter chain produced the
// candidate set, so degraded selections stay observable.
type FallbackTier int

const (
	// TierPrimary means the primary filter produced candidates.
	TierPrimary FallbackTier = iota
	// TierCategory means the quick-recipe allow-list matched nothing and
	// the filter fell back to every cook-category item.
	TierCategory
	// TierCatalog means every filter stage came up empty and the full
	// catalog was returned.
	TierCatalog
)

func (t FallbackTier) String() string {
	switch t {
	case TierPrimary:
		return "primary"
	case TierCategory:
		return "category"
	case TierCatalog:
		return "catalog"
	default:
		return "unknown"
	}
}

// Filter narrows the catalog by group context and acquisition mode. It never
// fails: each stage that yields nothing falls through to a broader one, ending
// at the full catalog. The tier that produced the result is returned for
// logging and tests.
func Filter(catalog []menu.Item, who GroupContext, how AcquisitionMode) ([]menu.Item, FallbackTier) {
	filtered := make([]menu.Item, 0, len(catalog))
	for _, item := range catalog {
		if who == GroupFamily && (!item.FamilyFriendly || item.SpicyLevel > 1) {
			continue
		}
		filtered = append(filtered, item)
	}

	if how == ModeCook {
		cookKey := menu.NormalizeKey(menu.CategoryCook)

		var allowListed, cookCategory []menu.Item
		for _, item := range filtered {
			if menu.NormalizeKey(item.Category) != cookKey {
				continue
			}
			cookCategory = append(cookCategory, item)
			if menu.IsQuickRecipe(item.Name) {
				allowListed = append(allowListed, item)
			}
		}

		if len(allowListed) > 0 {
			return allowListed, TierPrimary
		}
		if len(cookCategory) > 0 {
			return cookCategory, TierCategory
		}
		return catalog, TierCatalog
	}

	if len(filtered) == 0 {
		return catalog, TierCatalog
	}
	return filtered, TierPrimary
}
