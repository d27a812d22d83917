// Package decision implements menu selection: context filtering with an
// explicit fallback chain, preference scoring, random and weighted-random
// selection, and result assembly.
package decision

import "github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/menu"

// GroupContext describes who is eating.
type GroupContext string

const (
	GroupSolo    GroupContext = "solo"
	GroupCouple  GroupContext = "couple"
	GroupFamily  GroupContext = "family"
	GroupFriends GroupContext = "friends"
)

// ValidGroup reports whether the group context is one of the known values.
func ValidGroup(g GroupContext) bool {
	switch g {
	case GroupSolo, GroupCouple, GroupFamily, GroupFriends:
		return true
	}
	return false
}

// AcquisitionMode describes how the meal is obtained.
type AcquisitionMode string

const (
	ModeCook     AcquisitionMode = "cook"
	ModeDelivery AcquisitionMode = "delivery"
	ModeDineOut  AcquisitionMode = "dineout"
)

// ValidMode reports whether the acquisition mode is one of the known values.
func ValidMode(m AcquisitionMode) bool {
	switch m {
	case ModeCook, ModeDelivery, ModeDineOut:
		return true
	}
	return false
}

// OutdoorPreference narrows the dine-out search query.
type OutdoorPreference string

const (
	OutdoorNearby   OutdoorPreference = "nearby"
	OutdoorDowntown OutdoorPreference = "downtown"
	OutdoorScenic   OutdoorPreference = "scenic"
)

// Preferences is the survey-produced affinity vector.
type Preferences struct {
	Spicy   int  `json:"spicy"`   // 0-3
	Soup    int  `json:"soup"`    // 0-2
	Meat    int  `json:"meat"`    // 0-3
	Seafood int  `json:"seafood"` // 0-3
	Veg     int  `json:"veg"`     // 0-3
	Time    int  `json:"time"`    // 0-2
	Budget  int  `json:"budget"`  // 0-2
	Rice    bool `json:"rice"`
	Noodle  bool `json:"noodle"`
}

// Input collects everything a single decision needs. RecentMenus holds the
// most recent history names, newest first.
type Input struct {
	Who         GroupContext
	How         AcquisitionMode
	Outdoor     OutdoorPreference
	ExcludeMenu string
	RecentMenus []string
	Preferences *Preferences
}

// ActionType classifies follow-up links on a decision result.
type ActionType string

const (
	ActionRecipe     ActionType = "recipe"
	ActionYoutube    ActionType = "youtube"
	ActionShopping   ActionType = "shopping"
	ActionDelivery   ActionType = "delivery"
	ActionRestaurant ActionType = "restaurant"
)

// Action is one follow-up link rendered under a decision.
type Action struct {
	Type  ActionType `json:"type"`
	Label string     `json:"label"`
	URL   string     `json:"url"`
}

// Result is the assembled decision payload.
type Result struct {
	Menu         string       `json:"menu"`
	Reason       string       `json:"reason"`
	Ingredients  []string     `json:"ingredients,omitempty"`
	Actions      []Action     `json:"actions"`
	Mode         string       `json:"mode"`
	FallbackTier FallbackTier `json:"fallback_tier"`
	Score        float64      `json:"score,omitempty"`
}

// ScoredItem pairs a catalog item with its preference score.
type ScoredItem struct {
	Item  menu.Item
	Score float64
}
