package decision

import (
	"net/url"
	"strings"

	"github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/menu"
)

// BuildActions assembles the follow-up links for a selected menu.
func BuildActions(item menu.Item, how AcquisitionMode, outdoor OutdoorPreference) []Action {
	switch how {
	case ModeCook:
		actions := []Action{
			{
				Type:  ActionRecipe,
				Label: "레시피 보기",
				URL:   "https://www.google.com/search?q=" + url.QueryEscape(item.Name+" 레시피"),
			},
			{
				Type:  ActionYoutube,
				Label: "유튜브로 배우기",
				URL:   "https://www.youtube.com/results?search_query=" + url.QueryEscape(item.Name+" 레시피"),
			},
		}
		if len(item.Ingredients) > 0 {
			actions = append(actions, Action{
				Type:  ActionShopping,
				Label: "재료 구매하기",
				URL:   "https://toss.im/shopping/search?q=" + url.QueryEscape(strings.Join(item.Ingredients, " ")),
			})
		}
		return actions

	case ModeDelivery:
		return []Action{
			{
				Type:  ActionDelivery,
				Label: "배민에서 보기",
				URL:   "https://search.naver.com/search.naver?query=" + url.QueryEscape("배민 "+item.Name+" 주문"),
			},
			{
				Type:  ActionDelivery,
				Label: "쿠팡이츠에서 보기",
				URL:   "https://search.naver.com/search.naver?query=" + url.QueryEscape("쿠팡이츠 "+item.Name+" 주문"),
			},
			{
				Type:  ActionDelivery,
				Label: "네이버지도에서 보기",
				URL:   "https://map.naver.com/v5/search/" + url.PathEscape(item.Name),
			},
		}

	case ModeDineOut:
		query := item.Name + " 맛집"
		switch outdoor {
		case OutdoorDowntown:
			query = "맛집"
		case OutdoorScenic:
			query = "전망 좋은 식당"
		}
		return []Action{
			{
				Type:  ActionRestaurant,
				Label: "네이버지도에서 식당 찾기",
				URL:   "https://map.naver.com/v5/search/" + url.PathEscape(query),
			},
		}
	}

	return nil
}
