package decision

import (
	"math/rand"
	"strings"

	"github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/menu"
)

var reasonTemplates = map[GroupContext][]string{
	GroupSolo: {
		"혼밥러의 최애 메뉴 등장!",
		"혼자 먹어도 전혀 외롭지 않은 선택",
		"치고 빠지기 딱 좋은 메뉴",
		"오늘 나에게 주는 힐링 한 끼",
		"혼밥의 정석, 바로 이거!",
		"나를 위한 완벽한 저녁",
	},
	GroupCouple: {
		"연인이랑 먹으면 분위기 100배",
		"둘이 먹다 하나 죽어도 모를 맛",
		"데이트 코스 완성하는 메뉴",
		"같이 먹으면 더 맛있는 마법",
		"둘이서 나눠 먹기 딱 좋은 양",
		"로맨틱 저녁의 완성",
	},
	GroupFamily: {
		"온 가족 만족도 MAX 메뉴",
		"세대 불문 사랑받는 국민 메뉴",
		"아이들 입맛도 저격하는 메뉴",
		"가족 저녁 메뉴 고민 끝!",
		"온 가족이 둘러앉아 먹기 딱",
		"가족 외식 단골 메뉴 등극",
	},
	GroupFriends: {
		"친구들이랑 같이 먹으면 꿀맛",
		"모임 분위기 UP 시키는 메뉴",
		"여럿이 먹어야 제맛인 선택",
		"다같이 먹으면 2배로 맛있어짐",
		"회식 메뉴로 완벽한 선택",
		"친구들 입맛 저격하는 선택",
	},
}

// Attribute call-out thresholds: only pronounced traits earn a mention.
func attributeCallouts(m menu.Meta) []string {
	var notes []string
	if m.Spicy >= 2 {
		notes = append(notes, "매콤한 맛")
	}
	if m.Soup >= 2 {
		notes = append(notes, "뜨끈한 국물")
	}
	if m.Meat >= 3 {
		notes = append(notes, "고기 듬뿍")
	}
	if m.Seafood >= 2 {
		notes = append(notes, "해산물 가득")
	}
	if m.Veg >= 3 {
		notes = append(notes, "채소 듬뿍")
	}
	return notes
}

// Reason builds the generic templated justification for a selection.
func Reason(rng *rand.Rand, who GroupContext, item menu.Item) string {
	templates, ok := reasonTemplates[who]
	if !ok {
		templates = reasonTemplates[GroupSolo]
	}
	text := templates[rng.Intn(len(templates))]
	if notes := attributeCallouts(item.EffectiveMeta()); len(notes) > 0 {
		text += " (" + strings.Join(notes, ", ") + ")"
	}
	return text
}

// PersonalizedReason tries a flavor-specific phrase keyed by which preference
// dimensions the item strongly satisfies, falling back to the generic
// template when none apply.
func PersonalizedReason(rng *rand.Rand, who GroupContext, item menu.Item, prefs Preferences) string {
	m := item.EffectiveMeta()

	switch {
	case prefs.Spicy >= 2 && m.Spicy >= 2:
		return "화끈한 매운맛을 찾는 입맛에 딱 맞춘 메뉴예요"
	case prefs.Soup >= 2 && m.Soup >= 2:
		return "국물이 당기는 날, 취향 저격 국물 메뉴예요"
	case prefs.Meat >= 2 && m.Meat >= 3:
		return "고기파 입맛을 제대로 저격한 든든한 메뉴예요"
	case prefs.Seafood >= 2 && m.Seafood >= 2:
		return "해산물 좋아하는 취향에 맞춘 바다 내음 가득한 메뉴예요"
	case prefs.Veg >= 2 && m.Veg >= 3:
		return "채소 듬뿍, 건강 취향에 맞춘 가벼운 한 끼예요"
	case prefs.Noodle && !prefs.Rice && m.Noodle:
		return "면 사랑 입맛에 꼭 맞는 선택이에요"
	case prefs.Rice && !prefs.Noodle && m.Rice:
		return "밥심으로 사는 취향에 딱 맞는 든든한 선택이에요"
	}

	return Reason(rng, who, item)
}
