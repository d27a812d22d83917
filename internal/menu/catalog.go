package menu

func meta(m Meta) *Meta { return &m }

// catalog is loaded once at process start and never mutated afterwards.
var catalog = []Item{
	// 한식 국물류
	{ID: "kimchi-jjigae", Name: "김치찌개", Category: "한식", Ingredients: []string{"김치", "돼지고기", "두부", "대파", "양파"}, FamilyFriendly: true, SpicyLevel: 2,
		Meta: meta(Meta{Spicy: 2, Soup: 2, Rice: true, Meat: 2, Veg: 1, Time: 0, Budget: 0, Tags: []string{"국물", "한식", "집밥"}})},
	{ID: "doenjang-jjigae", Name: "된장찌개", Category: "한식", Ingredients: []string{"된장", "두부", "감자", "호박", "대파"}, FamilyFriendly: true, SpicyLevel: 0,
		Meta: meta(Meta{Soup: 2, Rice: true, Veg: 2, Time: 0, Budget: 0, Tags: []string{"국물", "한식", "건강"}})},
	{ID: "sundubu-jjigae", Name: "순두부찌개", Category: "한식", Ingredients: []string{"순두부", "계란", "대파", "고춧가루"}, FamilyFriendly: true, SpicyLevel: 2,
		Meta: meta(Meta{Spicy: 2, Soup: 2, Rice: true, Meat: 1, Seafood: 1, Veg: 1, Time: 0, Budget: 0, Tags: []string{"국물", "한식", "얼큰"}})},
	{ID: "budae-jjigae", Name: "부대찌개", Category: "한식", FamilyFriendly: true, SpicyLevel: 2},
	{ID: "gamjatang", Name: "감자탕", Category: "한식", FamilyFriendly: true, SpicyLevel: 2},
	{ID: "galbitang", Name: "갈비탕", Category: "한식", FamilyFriendly: true, SpicyLevel: 0},
	{ID: "seolleongtang", Name: "설렁탕", Category: "한식", FamilyFriendly: true, SpicyLevel: 0},
	{ID: "samgyetang", Name: "삼계탕", Category: "한식", FamilyFriendly: true, SpicyLevel: 0},
	{ID: "yukgaejang", Name: "육개장", Category: "한식", FamilyFriendly: false, SpicyLevel: 2},
	{ID: "doejigukbap", Name: "돼지국밥", Category: "한식", FamilyFriendly: true, SpicyLevel: 0},
	{ID: "kongnamul-gukbap", Name: "콩나물국밥", Category: "한식", FamilyFriendly: true, SpicyLevel: 0},
	{ID: "chueotang", Name: "추어탕", Category: "한식", FamilyFriendly: true, SpicyLevel: 0},

	// 한식 면류
	{ID: "kalguksu", Name: "칼국수", Category: "한식", FamilyFriendly: true, SpicyLevel: 0},
	{ID: "naengmyeon", Name: "냉면", Category: "한식", FamilyFriendly: true, SpicyLevel: 0},
	{ID: "bibim-naengmyeon", Name: "비빔냉면", Category: "한식", FamilyFriendly: false, SpicyLevel: 2},
	{ID: "mulhoe", Name: "물회", Category: "한식", FamilyFriendly: false, SpicyLevel: 2},
	{ID: "janchi-guksu-sik", Name: "잔치국수", Category: "한식", FamilyFriendly: true, SpicyLevel: 0},

	// 한식 구이/볶음/밥류
	{ID: "bulgogi", Name: "불고기", Category: "한식", Ingredients: []string{"소고기", "양파", "대파", "당근", "간장"}, FamilyFriendly: true, SpicyLevel: 0,
		Meta: meta(Meta{Rice: true, Meat: 3, Veg: 1, Time: 1, Budget: 2, Tags: []string{"고기", "한식", "특별식"}})},
	{ID: "jeyuk-bokkeum", Name: "제육볶음", Category: "한식", Ingredients: []string{"돼지고기", "고추장", "양파", "대파", "마늘"}, FamilyFriendly: true, SpicyLevel: 2,
		Meta: meta(Meta{Spicy: 2, Rice: true, Meat: 3, Veg: 1, Time: 1, Budget: 1, Tags: []string{"고기", "한식", "매운"}})},
	{ID: "samgyeopsal", Name: "삼겹살", Category: "한식", Ingredients: []string{"삼겹살", "상추", "마늘", "쌈장"}, FamilyFriendly: true, SpicyLevel: 0,
		Meta: meta(Meta{Rice: true, Meat: 3, Veg: 1, Time: 1, Budget: 2, Tags: []string{"고기", "구이", "회식"}})},
	{ID: "bossam", Name: "보쌈", Category: "한식", FamilyFriendly: true, SpicyLevel: 0},
	{ID: "dakgalbi", Name: "닭갈비", Category: "한식", FamilyFriendly: true, SpicyLevel: 2,
		Meta: meta(Meta{Spicy: 2, Rice: true, Meat: 3, Veg: 2, Time: 1, Budget: 1, Tags: []string{"고기", "매운", "한식"}})},
	{ID: "galbi-jjim", Name: "갈비찜", Category: "한식", Ingredients: []string{"갈비", "당근", "감자", "대추", "간장"}, FamilyFriendly: true, SpicyLevel: 0,
		Meta: meta(Meta{Soup: 1, Rice: true, Meat: 3, Veg: 1, Time: 2, Budget: 2, Tags: []string{"고기", "특별식", "한식"}})},
	{ID: "jjimdak", Name: "찜닭", Category: "한식", FamilyFriendly: true, SpicyLevel: 2},
	{ID: "bibimbap", Name: "비빔밥", Category: "한식", Ingredients: []string{"밥", "시금치", "콩나물", "당근", "고추장"}, FamilyFriendly: true, SpicyLevel: 1,
		Meta: meta(Meta{Spicy: 1, Rice: true, Veg: 3, Time: 0, Budget: 0, Tags: []string{"한식", "건강", "채소"}})},
	{ID: "kimchi-bokkeumbap", Name: "김치볶음밥", Category: "한식", Ingredients: []string{"김치", "밥", "계란", "대파", "참기름"}, FamilyFriendly: true, SpicyLevel: 2,
		Meta: meta(Meta{Spicy: 2, Rice: true, Meat: 1, Veg: 1, Time: 0, Budget: 0, Tags: []string{"한식", "간편", "매운"}})},
	{ID: "jang-gejang", Name: "간장게장", Category: "한식", FamilyFriendly: false, SpicyLevel: 0},
	{ID: "jeonbok-juk", Name: "전복죽", Category: "한식", FamilyFriendly: true, SpicyLevel: 0},
	{ID: "jangeo-gui", Name: "장어구이", Category: "한식", FamilyFriendly: true, SpicyLevel: 0},
	{ID: "galchijorim", Name: "갈치조림", Category: "한식", FamilyFriendly: false, SpicyLevel: 2},

	// 분식
	{ID: "tteokbokki", Name: "떡볶이", Category: "분식", Ingredients: []string{"떡", "고추장", "어묵", "대파", "설탕"}, FamilyFriendly: true, SpicyLevel: 2,
		Meta: meta(Meta{Spicy: 2, Soup: 1, Seafood: 1, Veg: 1, Time: 0, Budget: 0, Tags: []string{"분식", "매운", "간식"}})},
	{ID: "gimbap", Name: "김밥", Category: "분식", Ingredients: []string{"김", "밥", "단무지", "당근", "시금치"}, FamilyFriendly: true, SpicyLevel: 0,
		Meta: meta(Meta{Rice: true, Meat: 1, Veg: 2, Time: 1, Budget: 0, Tags: []string{"분식", "간편", "도시락"}})},
	{ID: "ramyeon", Name: "라면", Category: "분식", Ingredients: []string{"라면", "계란", "대파", "김치"}, FamilyFriendly: true, SpicyLevel: 2,
		Meta: meta(Meta{Spicy: 2, Soup: 2, Noodle: true, Veg: 1, Time: 0, Budget: 0, Tags: []string{"분식", "면", "국물", "간편"}})},
	{ID: "mandu", Name: "만두", Category: "분식", FamilyFriendly: true, SpicyLevel: 0,
		Meta: meta(Meta{Soup: 1, Meat: 2, Veg: 1, Time: 0, Budget: 0, Tags: []string{"분식", "간편", "찜"}})},
	{ID: "sundae", Name: "순대", Category: "분식", FamilyFriendly: true, SpicyLevel: 0},

	// 중식
	{ID: "jjajangmyeon", Name: "짜장면", Category: "중식", FamilyFriendly: true, SpicyLevel: 0,
		Meta: meta(Meta{Noodle: true, Meat: 1, Veg: 1, Time: 0, Budget: 0, Tags: []string{"면", "중식", "배달"}})},
	{ID: "jjamppong", Name: "짬뽕", Category: "중식", FamilyFriendly: true, SpicyLevel: 2,
		Meta: meta(Meta{Spicy: 2, Soup: 2, Noodle: true, Meat: 1, Seafood: 2, Veg: 1, Time: 0, Budget: 1, Tags: []string{"면", "국물", "매운", "중식"}})},
	{ID: "tangsuyuk", Name: "탕수육", Category: "중식", FamilyFriendly: true, SpicyLevel: 0,
		Meta: meta(Meta{Rice: true, Meat: 3, Time: 1, Budget: 2, Tags: []string{"고기", "중식", "튀김"}})},
	{ID: "mapadubu", Name: "마파두부", Category: "중식", Ingredients: []string{"두부", "돼지고기", "고추", "마늘", "두반장"}, FamilyFriendly: false, SpicyLevel: 3,
		Meta: meta(Meta{Spicy: 3, Soup: 1, Rice: true, Meat: 2, Veg: 1, Time: 1, Budget: 1, Tags: []string{"매운", "중식"}})},
	{ID: "bokkeumbap", Name: "볶음밥", Category: "중식", Ingredients: []string{"밥", "계란", "당근", "양파", "대파"}, FamilyFriendly: true, SpicyLevel: 0,
		Meta: meta(Meta{Rice: true, Meat: 1, Seafood: 1, Veg: 1, Time: 0, Budget: 0, Tags: []string{"중식", "간편"}})},

	// 일식
	{ID: "chobap", Name: "초밥", Category: "일식", FamilyFriendly: true, SpicyLevel: 0,
		Meta: meta(Meta{Rice: true, Seafood: 3, Time: 1, Budget: 2, Tags: []string{"일식", "생선", "특별식"}})},
	{ID: "ramen", Name: "라멘", Category: "일식", FamilyFriendly: true, SpicyLevel: 0,
		Meta: meta(Meta{Soup: 2, Noodle: true, Meat: 2, Veg: 1, Time: 0, Budget: 1, Tags: []string{"면", "국물", "일식"}})},
	{ID: "donkaseu", Name: "돈까스", Category: "일식", FamilyFriendly: true, SpicyLevel: 0,
		Meta: meta(Meta{Rice: true, Meat: 3, Veg: 1, Time: 1, Budget: 1, Tags: []string{"일식", "튀김", "고기"}})},
	{ID: "udon", Name: "우동", Category: "일식", FamilyFriendly: true, SpicyLevel: 0,
		Meta: meta(Meta{Soup: 2, Noodle: true, Seafood: 1, Veg: 1, Time: 0, Budget: 0, Tags: []string{"면", "국물", "일식"}})},
	{ID: "gyudon", Name: "규동", Category: "일식", Ingredients: []string{"소고기", "양파", "밥", "계란", "간장"}, FamilyFriendly: true, SpicyLevel: 0,
		Meta: meta(Meta{Soup: 1, Rice: true, Meat: 3, Veg: 1, Time: 0, Budget: 1, Tags: []string{"일식", "고기", "덮밥"}})},

	// 양식/패스트푸드
	{ID: "pasta", Name: "파스타", Category: "양식", Ingredients: []string{"파스타면", "토마토소스", "마늘", "올리브오일"}, FamilyFriendly: true, SpicyLevel: 0,
		Meta: meta(Meta{Noodle: true, Meat: 1, Veg: 2, Time: 1, Budget: 1, Tags: []string{"양식", "면", "이탈리안"}})},
	{ID: "pizza", Name: "피자", Category: "양식", FamilyFriendly: true, SpicyLevel: 0,
		Meta: meta(Meta{Meat: 2, Veg: 1, Time: 1, Budget: 2, Tags: []string{"양식", "이탈리안", "배달"}})},
	{ID: "steak", Name: "스테이크", Category: "양식", Ingredients: []string{"소고기", "소금", "후추", "마늘", "버터"}, FamilyFriendly: true, SpicyLevel: 0,
		Meta: meta(Meta{Meat: 3, Veg: 1, Time: 1, Budget: 2, Tags: []string{"양식", "고기", "특별식"}})},
	{ID: "hamburger", Name: "햄버거", Category: "패스트푸드", FamilyFriendly: true, SpicyLevel: 0,
		Meta: meta(Meta{Meat: 2, Veg: 1, Time: 0, Budget: 1, Tags: []string{"양식", "패스트푸드", "간편"}})},
	{ID: "sandwich", Name: "샌드위치", Category: "패스트푸드", Ingredients: []string{"식빵", "햄", "치즈", "양상추", "토마토"}, FamilyFriendly: true, SpicyLevel: 0,
		Meta: meta(Meta{Meat: 1, Veg: 1, Time: 0, Budget: 0, Tags: []string{"간편식", "아침", "브런치"}})},
	{ID: "salad", Name: "샐러드", Category: "양식", Ingredients: []string{"양상추", "토마토", "오이", "닭가슴살", "드레싱"}, FamilyFriendly: true, SpicyLevel: 0,
		Meta: meta(Meta{Meat: 1, Veg: 3, Time: 0, Budget: 1, Tags: []string{"건강식", "채소", "다이어트", TagCold}})},
	{ID: "chikin", Name: "치킨", Category: "치킨", FamilyFriendly: true, SpicyLevel: 1,
		Meta: meta(Meta{Spicy: 1, Meat: 3, Time: 0, Budget: 2, Tags: []string{"패스트푸드", "튀김", "배달", "파티"}})},

	// 아시안
	{ID: "ssal-guksu", Name: "쌀국수", Category: "아시안", FamilyFriendly: true, SpicyLevel: 0},

	// 만들어먹기 (quick-recipe fixed set)
	{ID: "ganjang-egg-rice", Name: "간장계란밥", Category: CategoryCook, FamilyFriendly: true, SpicyLevel: 0, Ingredients: []string{"밥", "계란", "간장", "참기름"}},
	{ID: "spam-mayo-rice-bowl", Name: "스팸마요덮밥", Category: CategoryCook, FamilyFriendly: true, SpicyLevel: 0, Ingredients: []string{"밥", "스팸", "마요네즈", "계란"}},
	{ID: "tuna-mayo-bibimbap", Name: "참치마요비빔밥", Category: CategoryCook, FamilyFriendly: true, SpicyLevel: 0, Ingredients: []string{"밥", "참치", "마요네즈", "김가루"}},
	{ID: "gochujang-tuna-bibimbap", Name: "고추장 참치 비빔밥", Category: CategoryCook, FamilyFriendly: true, SpicyLevel: 2, Ingredients: []string{"밥", "참치", "고추장", "참기름"}},
	{ID: "curry-rice", Name: "카레", Category: CategoryCook, FamilyFriendly: true, SpicyLevel: 1, Ingredients: []string{"카레가루", "감자", "당근", "양파"}},
	{ID: "hayashi-rice", Name: "하이라이스", Category: CategoryCook, FamilyFriendly: true, SpicyLevel: 0, Ingredients: []string{"하이라이스가루", "소고기", "양파", "버섯"}},
	{ID: "kimchi-fried-rice", Name: "김치볶음밥", Category: CategoryCook, FamilyFriendly: true, SpicyLevel: 2, Ingredients: []string{"김치", "밥", "계란", "대파"}},
	{ID: "egg-fried-rice", Name: "계란볶음밥", Category: CategoryCook, FamilyFriendly: true, SpicyLevel: 0, Ingredients: []string{"밥", "계란", "대파", "간장"}},
	{ID: "shrimp-fried-rice", Name: "새우볶음밥", Category: CategoryCook, FamilyFriendly: true, SpicyLevel: 0, Ingredients: []string{"밥", "새우", "계란", "양파"}},
	{ID: "bibim-guksu", Name: "비빔국수", Category: CategoryCook, FamilyFriendly: true, SpicyLevel: 2, Ingredients: []string{"소면", "고추장", "참기름", "오이"}},
	{ID: "soy-bibim-guksu", Name: "간장비빔국수", Category: CategoryCook, FamilyFriendly: true, SpicyLevel: 0, Ingredients: []string{"소면", "간장", "참기름", "김가루"}},
	{ID: "aglio-olio", Name: "알리오올리오", Category: CategoryCook, FamilyFriendly: true, SpicyLevel: 0, Ingredients: []string{"파스타면", "마늘", "올리브오일", "페페론치노"}},
	{ID: "kong-guksu", Name: "콩국수", Category: CategoryCook, FamilyFriendly: true, SpicyLevel: 0, Ingredients: []string{"소면", "콩물", "오이", "소금"}},
	{ID: "tuna-kimchi-jjigae", Name: "참치 김치찌개", Category: CategoryCook, FamilyFriendly: true, SpicyLevel: 2, Ingredients: []string{"김치", "참치", "두부", "대파"}},
	{ID: "spam-budae-jjigae", Name: "스팸 부대찌개", Category: CategoryCook, FamilyFriendly: true, SpicyLevel: 2, Ingredients: []string{"스팸", "김치", "라면사리", "햄"}},
	{ID: "eomuk-tang", Name: "어묵탕", Category: CategoryCook, FamilyFriendly: true, SpicyLevel: 0, Ingredients: []string{"어묵", "무", "대파", "국간장"}},
	{ID: "tteok-mandu-guk", Name: "떡만두국", Category: CategoryCook, FamilyFriendly: true, SpicyLevel: 0, Ingredients: []string{"떡국떡", "만두", "계란", "대파"}},
	{ID: "kimchi-jeon", Name: "김치전", Category: CategoryCook, FamilyFriendly: true, SpicyLevel: 1, Ingredients: []string{"김치", "부침가루", "대파"}},
	{ID: "rolled-omelet", Name: "계란말이", Category: CategoryCook, FamilyFriendly: true, SpicyLevel: 0, Ingredients: []string{"계란", "당근", "대파", "소금"}},
	{ID: "corn-cheese", Name: "콘치즈", Category: CategoryCook, FamilyFriendly: true, SpicyLevel: 0, Ingredients: []string{"옥수수", "모짜렐라치즈", "마요네즈", "설탕"}},
}

// quickRecipeNames is the fixed allow-list for the cook-at-home flow. Cook
// category items whose name is not listed here are only reachable through the
// filter's first fallback tier.
var quickRecipeNames = []string{
	"간장계란밥", "스팸마요덮밥", "참치마요비빔밥", "고추장 참치 비빔밥", "카레", "하이라이스",
	"김치볶음밥", "계란볶음밥", "새우볶음밥",
	"비빔국수", "간장비빔국수", "알리오올리오", "잔치국수", "콩국수",
	"참치 김치찌개", "스팸 부대찌개", "순두부찌개", "어묵탕", "떡만두국",
	"김치전", "계란말이", "콘치즈",
}

var quickRecipeKeys = func() map[string]struct{} {
	set := make(map[string]struct{}, len(quickRecipeNames))
	for _, name := range quickRecipeNames {
		set[NormalizeKey(name)] = struct{}{}
	}
	return set
}()
