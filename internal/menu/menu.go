package menu

import (
	"regexp"
	"strings"
)

// Meta carries the ordinal attributes the preference scorer works with.
type Meta struct {
	Spicy   int      `json:"spicy"`   // 0-3
	Soup    int      `json:"soup"`    // 0-2
	Rice    bool     `json:"rice"`
	Noodle  bool     `json:"noodle"`
	Meat    int      `json:"meat"`    // 0-3
	Seafood int      `json:"seafood"` // 0-3
	Veg     int      `json:"veg"`     // 0-3
	Time    int      `json:"time"`    // 0-2
	Budget  int      `json:"budget"`  // 0-2
	Tags    []string `json:"tags,omitempty"`
}

// Item is a single catalog entry. Meta is optional; use EffectiveMeta to read
// attributes with the heuristic defaults applied.
type Item struct {
	ID             string
	Name           string
	Category       string
	Ingredients    []string
	FamilyFriendly bool
	SpicyLevel     int // 0-3
	Meta           *Meta
}

// CategoryCook marks items the cook-at-home flow draws from.
const CategoryCook = "만들어먹기"

var nonKeyRunes = regexp.MustCompile(`[\s+()\-_.]`)

// NormalizeKey lowercases and strips whitespace and punctuation so catalog
// names, categories and allow-list entries compare reliably.
func NormalizeKey(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	return nonKeyRunes.ReplaceAllString(lower, "")
}

var (
	soupPattern   = regexp.MustCompile(`국밥|국수|국|탕|찌개|전골|죽|라면|우동|칼국수`)
	noodlePattern = regexp.MustCompile(`면|파스타|우동|라면|국수|라멘`)
	ricePattern   = regexp.MustCompile(`밥|덮밥|비빔|죽`)
	coldPattern   = regexp.MustCompile(`냉면|밀면|물회|콩국수|샐러드`)
)

var (
	seafoodKeywords = []string{"꼬막", "전복", "장어", "오징어", "새우", "생선", "문어", "낙지", "조개", "굴", "게", "대게", "도다리", "매생이", "명란", "연어", "참치", "광어", "해물", "어묵"}
	meatKeywords    = []string{"고기", "삼겹살", "갈비", "불고기", "제육", "소고기", "돼지고기", "닭", "양고기", "육회", "스테이크", "치킨", "스팸", "베이컨", "햄"}
	vegKeywords     = []string{"야채", "샐러드", "비빔", "나물", "시금치", "콩나물", "채소"}
)

// TagCold marks dishes served cold; the weather multiplier keys off it.
const TagCold = "차가운"

// DefaultMeta derives scoring metadata for items the catalog does not
// annotate explicitly, keyed off name and ingredient substrings.
func DefaultMeta(item Item) Meta {
	full := item.Name + " " + strings.Join(item.Ingredients, " ")

	soup := 0
	if soupPattern.MatchString(item.Name) {
		soup = 2
	}
	meat := 0
	if containsAny(full, meatKeywords) {
		meat = 2
	}
	seafood := 0
	if containsAny(full, seafoodKeywords) {
		seafood = 2
	}
	veg := 1
	if containsAny(full, vegKeywords) {
		veg = 2
	}

	tags := []string{item.Category}
	if coldPattern.MatchString(item.Name) {
		tags = append(tags, TagCold)
	}

	return Meta{
		Spicy:   item.SpicyLevel,
		Soup:    soup,
		Rice:    item.Category == "한식" || item.Category == "일식" || ricePattern.MatchString(item.Name),
		Noodle:  noodlePattern.MatchString(item.Name),
		Meat:    meat,
		Seafood: seafood,
		Veg:     veg,
		Time:    1,
		Budget:  1,
		Tags:    tags,
	}
}

// EffectiveMeta returns the annotated metadata or the heuristic default.
func (i Item) EffectiveMeta() Meta {
	if i.Meta != nil {
		return *i.Meta
	}
	return DefaultMeta(i)
}

// IsCold reports whether the item is a cold dish.
func (i Item) IsCold() bool {
	for _, tag := range i.EffectiveMeta().Tags {
		if tag == TagCold {
			return true
		}
	}
	return coldPattern.MatchString(i.Name)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// ByName looks an item up by exact display name.
func ByName(name string) *Item {
	for i := range catalog {
		if catalog[i].Name == name {
			return &catalog[i]
		}
	}
	return nil
}

// Catalog returns the static menu catalog. The slice is shared; callers must
// not mutate it.
func Catalog() []Item {
	return catalog
}

// IsQuickRecipe reports whether the normalized name belongs to the fixed
// quick-recipe allow-list used by the cook-at-home flow.
func IsQuickRecipe(name string) bool {
	_, ok := quickRecipeKeys[NormalizeKey(name)]
	return ok
}
