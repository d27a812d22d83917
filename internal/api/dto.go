package api

import (
	"time"

	"github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/decision"
	"github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/store"
)

// DecisionRequest is the POST /api/decision payload. Preferences in the
// request take priority; otherwise UsePreferences loads the session profile.
type DecisionRequest struct {
	SessionID      string                `json:"session_id"`
	Who            string                `json:"who" binding:"required"`
	How            string                `json:"how" binding:"required"`
	Outdoor        string                `json:"outdoor"`
	ExcludeMenu    string                `json:"exclude_menu"`
	UsePreferences bool                  `json:"use_preferences"`
	Preferences    *decision.Preferences `json:"preferences"`
}

// DecisionResponse mirrors decision.Result plus request timing.
type DecisionResponse struct {
	Menu         string            `json:"menu"`
	Reason       string            `json:"reason"`
	Ingredients  []string          `json:"ingredients,omitempty"`
	Actions      []decision.Action `json:"actions"`
	Mode         string            `json:"mode"`
	FallbackTier string            `json:"fallback_tier"`
	Score        float64           `json:"score,omitempty"`
	ElapsedMs    int64             `json:"elapsed_ms"`
}

// PlaceDTO is one plain local-search result.
type PlaceDTO struct {
	Title    string `json:"title"`
	Address  string `json:"address"`
	Category string `json:"category"`
	Link     string `json:"link,omitempty"`
}

// HistoryDTO is the API representation of a stored decision.
type HistoryDTO struct {
	ID        string    `json:"id"`
	Menu      string    `json:"menu"`
	Mode      string    `json:"mode"`
	Reason    string    `json:"reason"`
	Who       string    `json:"who"`
	How       string    `json:"how"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryFromModel converts a store row to its DTO.
func HistoryFromModel(row store.HistoryEntry) HistoryDTO {
	return HistoryDTO{
		ID:        row.ID,
		Menu:      row.Menu,
		Mode:      row.Mode,
		Reason:    row.Reason,
		Who:       row.Who,
		How:       row.How,
		CreatedAt: row.CreatedAt,
	}
}

// PreferencesRequest is the PUT /api/preferences payload.
type PreferencesRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	decision.Preferences
}

// PreferencesDTO is the stored profile representation.
type PreferencesDTO struct {
	SessionID   string               `json:"session_id"`
	Preferences decision.Preferences `json:"preferences"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// PreferencesFromModel converts a profile row to its DTO.
func PreferencesFromModel(row store.PreferenceProfile) PreferencesDTO {
	return PreferencesDTO{
		SessionID: row.SessionID,
		Preferences: decision.Preferences{
			Spicy:   row.Spicy,
			Soup:    row.Soup,
			Meat:    row.Meat,
			Seafood: row.Seafood,
			Veg:     row.Veg,
			Time:    row.Time,
			Budget:  row.Budget,
			Rice:    row.Rice,
			Noodle:  row.Noodle,
		},
		UpdatedAt: row.UpdatedAt,
	}
}

// ProfileFromPreferences builds the store row for a save request.
func ProfileFromPreferences(sessionID string, p decision.Preferences) *store.PreferenceProfile {
	return &store.PreferenceProfile{
		SessionID: sessionID,
		Spicy:     p.Spicy,
		Soup:      p.Soup,
		Meat:      p.Meat,
		Seafood:   p.Seafood,
		Veg:       p.Veg,
		Time:      p.Time,
		Budget:    p.Budget,
		Rice:      p.Rice,
		Noodle:    p.Noodle,
	}
}

// MenuStatDTO is one row of the selection leaderboard.
type MenuStatDTO struct {
	Menu  string `json:"menu"`
	Count int    `json:"count"`
}

// MultiplierDTO is the weather-derived scoring adjustment.
type MultiplierDTO struct {
	Soup  float64 `json:"soup"`
	Spicy float64 `json:"spicy"`
	Cold  float64 `json:"cold"`
}

// WeatherResponse reports current conditions and the scoring multiplier
// they imply.
type WeatherResponse struct {
	Temperature float64       `json:"temperature"`
	Condition   string        `json:"condition"`
	Description string        `json:"description"`
	Multiplier  MultiplierDTO `json:"multiplier"`
}
