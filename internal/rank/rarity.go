package rank

import "strings"

// Rarity tiers for the input menu name. Classification is by substring so
// compound names like "삼선짜장면" still land in the right tier.
const (
	rarityCommon   = 10
	rarityModerate = 50
	rarityRare     = 80
	rarityVeryRare = 95
	rarityDefault  = 60
)

var commonMenus = []string{
	"짜장면", "짬뽕", "김치찌개", "된장찌개", "치킨", "피자", "떡볶이", "라면",
	"삼겹살", "비빔밥", "돈까스", "김밥", "햄버거", "족발", "보쌈", "순대",
	"제육볶음", "칼국수", "냉면",
}

var moderateMenus = []string{
	"마라탕", "쌀국수", "초밥", "파스타", "카레", "샤브샤브", "부대찌개",
	"규동", "라멘", "우동", "훠궈", "양꼬치",
}

var rareMenus = []string{
	"분짜", "반미", "반쎄오", "팟타이", "똠얌꿍", "그린커리", "케밥",
	"타코", "부리토", "빠에야", "쿠스쿠스", "샥슈카", "포케",
}

var veryRareMenus = []string{
	"후무스", "타진", "푸틴", "피시앤칩스", "하기스", "아사도",
	"세비체", "졸로프", "보르시", "인제라",
}

// MenuRarity classifies a menu name into one of the four curated tiers,
// falling back to a middle score for anything unrecognized.
func MenuRarity(menuName string) int {
	name := strings.TrimSpace(menuName)
	if name == "" {
		return rarityDefault
	}
	for _, kw := range veryRareMenus {
		if strings.Contains(name, kw) {
			return rarityVeryRare
		}
	}
	for _, kw := range rareMenus {
		if strings.Contains(name, kw) {
			return rarityRare
		}
	}
	for _, kw := range moderateMenus {
		if strings.Contains(name, kw) {
			return rarityModerate
		}
	}
	for _, kw := range commonMenus {
		if strings.Contains(name, kw) {
			return rarityCommon
		}
	}
	return rarityDefault
}

// displayFor widens the per-keyword fetch when the menu itself is rare, since
// rare cuisines produce fewer usable listings per query.
func displayFor(rarity int) int {
	switch {
	case rarity >= rarityRare:
		return 15
	case rarity <= rarityCommon:
		return 5
	default:
		return 10
	}
}
