package rank

import "strings"

// Nearby-city presets per region, roughly a 100km radius.
var regionalPresets = map[string][]string{
	// 부산/경남권
	"양산": {"양산", "부산", "울산", "김해", "창원", "밀양", "거제", "통영", "진해", "경주"},
	"부산": {"부산", "양산", "김해", "울산", "거제", "통영", "창원", "밀양", "진해", "경주"},
	"울산": {"울산", "부산", "양산", "경주", "포항", "김해", "창원", "밀양"},
	"경남": {"창원", "김해", "진해", "거제", "통영", "부산", "양산", "울산", "사천", "밀양"},

	// 서울/경기권
	"서울": {"서울", "인천", "수원", "성남", "부천", "고양", "용인", "안양", "남양주", "화성"},
	"경기": {"수원", "성남", "용인", "고양", "부천", "안양", "화성", "평택", "시흥", "파주"},
	"인천": {"인천", "서울", "부천", "김포", "시흥", "수원", "안산", "고양"},

	// 대구/경북권
	"대구": {"대구", "경산", "구미", "포항", "경주", "안동", "영천", "칠곡"},
	"경북": {"구미", "포항", "경주", "안동", "대구", "경산", "영천", "영주", "상주", "김천"},

	// 대전/충청권
	"대전": {"대전", "세종", "청주", "천안", "아산", "공주", "논산", "보령"},
	"충남": {"천안", "아산", "공주", "논산", "보령", "대전", "세종", "청주", "서산"},
	"충북": {"청주", "충주", "제천", "대전", "세종", "천안", "음성"},
	"세종": {"세종", "대전", "청주", "천안", "공주"},

	// 광주/전라권
	"광주": {"광주", "나주", "순천", "목포", "여수", "전주", "익산"},
	"전남": {"순천", "여수", "목포", "나주", "광양", "광주", "해남", "완도"},
	"전북": {"전주", "익산", "군산", "정읍", "김제", "광주", "완주"},

	// 강원권
	"강원": {"춘천", "원주", "강릉", "속초", "동해", "삼척", "태백", "홍천"},

	// 제주권
	"제주": {"제주", "서귀포", "애월", "조천", "한림", "성산"},
}

var nationwideDefault = []string{"서울", "부산", "대구", "인천", "광주", "대전", "울산", "수원", "창원", "성남"}

// broadMatches maps province-level keywords to the preset that best covers
// them, tried after direct and partial preset matching.
var broadMatches = []struct {
	keywords []string
	preset   string
}{
	{[]string{"서울", "경기"}, "서울"},
	{[]string{"부산", "경남"}, "부산"},
	{[]string{"대구", "경북"}, "대구"},
	{[]string{"인천"}, "인천"},
	{[]string{"광주", "전남"}, "광주"},
	{[]string{"대전", "충남", "충북"}, "대전"},
	{[]string{"울산"}, "울산"},
	{[]string{"강원"}, "강원"},
	{[]string{"제주"}, "제주"},
	{[]string{"전북"}, "전북"},
}

// NearbyRegions resolves a free-form user region ("부산 해운대구") to the
// preset of nearby cities to fan the search out over. Unknown input falls
// back to major cities nationwide.
func NearbyRegions(userRegion string) []string {
	normalized := strings.TrimSpace(userRegion)
	if normalized == "" {
		return nationwideDefault
	}

	if preset, ok := regionalPresets[normalized]; ok {
		return preset
	}

	for key, preset := range regionalPresets {
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			return preset
		}
	}

	for _, bm := range broadMatches {
		for _, kw := range bm.keywords {
			if strings.Contains(normalized, kw) {
				return regionalPresets[bm.preset]
			}
		}
	}

	return []string{"서울", "부산", "대구", "인천", "광주", "대전"}
}
