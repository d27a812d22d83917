package rank

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/place"
)

// Searcher is the slice of the local-search client the rankers need.
type Searcher interface {
	Search(ctx context.Context, query string, display int, sortBy string) ([]place.Item, error)
}

// RankedPlace is one entry of the adventurous top-5.
type RankedPlace struct {
	Rank           int     `json:"rank"`
	Title          string  `json:"title"`
	Address        string  `json:"address"`
	Category       string  `json:"category"`
	Link           string  `json:"link,omitempty"`
	Keyword        string  `json:"keyword"`
	AdventureScore float64 `json:"adventure_score"`
	AdventureLevel int     `json:"adventure_level"`
}

// Search keywords fanned out per request, grouped by descriptor class.
var adventureKeywords = []string{
	"외곽", "산속", "드라이브", "시골", "숨은",
	"정통", "전문점", "현지식", "해외요리", "이색",
}

var chainKeywords = []string{
	"롯데리아", "맥도날드", "kfc", "버거킹", "맘스터치",
	"스타벅스", "이디야", "투썸플레이스", "커피빈",
	"교촌치킨", "bbq", "굽네치킨", "bhc",
	"cu", "gs25", "세븐일레븐",
	"파리바게뜨", "뚜레쥬르",
}

var adKeywords = []string{"체험단", "협찬", "이벤트", "무료", "할인"}

var rareCuisineCategories = []string{
	"베트남", "태국", "인도", "멕시코", "터키", "스페인", "그리스",
	"중동", "아프리카", "남미", "프랑스",
}

var commonCategories = []string{"치킨", "피자", "패스트푸드", "분식", "카페", "커피", "제과"}

var qualityAdjectives = []string{"맛있는", "유명한"}

var branchPattern = regexp.MustCompile(`[가-힣]+\s*(점|지점)$`)

const (
	rankCacheTTL    = 30 * time.Minute
	adventureTopN   = 5
	levelFullScore  = 30.0
	chainRejectMark = -100.0
)

// keywordBonus grades the descriptor keyword that surfaced a result.
// Specialty and authenticity markers rank highest, generic discovery
// keywords lowest.
func keywordBonus(keyword string) float64 {
	switch keyword {
	case "정통", "전문점", "현지식":
		return 15
	case "외곽", "산속", "시골", "숨은":
		return 12
	case "이색", "해외요리":
		return 10
	default:
		return 6
	}
}

func isChainStore(title, address string) bool {
	text := strings.ToLower(title + " " + address)
	for _, kw := range chainKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func hasBranchPattern(title string) bool {
	if !branchPattern.MatchString(title) {
		return false
	}
	for _, marker := range []string{"전문점", "맛집", "본점"} {
		if strings.Contains(title, marker) {
			return false
		}
	}
	return true
}

// adventureScore grades one raw search result. Chain stores short-circuit to
// a sentinel that final filtering discards.
func adventureScore(item place.Item, keyword string, rarity int) float64 {
	title := place.StripMarkup(item.Title)
	address := item.Address
	category := item.Category

	if isChainStore(title, address) {
		return chainRejectMark
	}

	score := 0.5*float64(rarity) + keywordBonus(keyword)

	if hasBranchPattern(title) {
		score -= 5
	}

	text := strings.ToLower(title + " " + address + " " + category)
	for _, kw := range adKeywords {
		if strings.Contains(text, kw) {
			score -= 3
		}
	}

	if strings.Contains(title, "전문점") || strings.Contains(title, "정통") {
		score += 8
	}
	if strings.Contains(title, "원조") || strings.Contains(title, "본점") {
		score += 10
	}

	for _, kw := range rareCuisineCategories {
		if strings.Contains(category, kw) {
			score += 6
		}
	}
	for _, kw := range commonCategories {
		if strings.Contains(category, kw) {
			score -= 4
		}
	}
	for _, kw := range qualityAdjectives {
		if strings.Contains(title, kw) {
			score += 2
		}
	}

	return score
}

type rankCacheEntry struct {
	places []RankedPlace
	expiry time.Time
}

// AdventureRanker surfaces unusual restaurants for a menu by fanning the
// local search out across descriptor keywords and composite-scoring the
// merged results.
type AdventureRanker struct {
	searcher Searcher
	cache    sync.Map
	ttl      time.Duration
}

// NewAdventureRanker wraps a searcher. A zero ttl uses the 30 minute default.
func NewAdventureRanker(searcher Searcher, ttl time.Duration) *AdventureRanker {
	if ttl <= 0 {
		ttl = rankCacheTTL
	}
	return &AdventureRanker{searcher: searcher, ttl: ttl}
}

type scoredPlace struct {
	item    place.Item
	keyword string
	score   float64
}

// Rank returns the adventurous top-5 for a menu, optionally scoped to a
// region. Individual keyword searches that fail are logged and skipped; the
// aggregate only errors when the searcher itself is unusable.
func (r *AdventureRanker) Rank(ctx context.Context, menuName, region string) ([]RankedPlace, error) {
	cacheKey := "v1:" + region + ":" + menuName + ":adventure"
	if entry, ok := r.cache.Load(cacheKey); ok {
		cached := entry.(rankCacheEntry)
		if time.Now().Before(cached.expiry) {
			logrus.WithField("key", cacheKey).Debug("adventure cache hit")
			return cached.places, nil
		}
		r.cache.Delete(cacheKey)
	}

	rarity := MenuRarity(menuName)
	display := displayFor(rarity)

	var (
		mu      sync.Mutex
		results []scoredPlace
		wg      sync.WaitGroup
	)
	for _, keyword := range adventureKeywords {
		wg.Add(1)
		go func(keyword string) {
			defer wg.Done()
			query := menuName + " " + keyword
			if region != "" {
				query = region + " " + query
			}
			items, err := r.searcher.Search(ctx, query, display, "comment")
			if err != nil {
				logrus.WithError(err).WithField("keyword", keyword).Warn("adventure keyword search failed")
				return
			}
			mu.Lock()
			for _, item := range items {
				results = append(results, scoredPlace{
					item:    item,
					keyword: keyword,
					score:   adventureScore(item, keyword, rarity),
				})
			}
			mu.Unlock()
		}(keyword)
	}
	wg.Wait()

	// Dedup on stripped title + address, keeping the best-scored sighting.
	unique := make(map[string]scoredPlace)
	for _, sp := range results {
		title := place.StripMarkup(sp.item.Title)
		key := title + ":" + sp.item.Address
		if existing, ok := unique[key]; !ok || existing.score < sp.score {
			unique[key] = sp
		}
	}

	merged := make([]scoredPlace, 0, len(unique))
	for _, sp := range unique {
		if sp.score > 0 {
			merged = append(merged, sp)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool { return merged[i].score > merged[j].score })
	if len(merged) > adventureTopN {
		merged = merged[:adventureTopN]
	}

	ranked := make([]RankedPlace, 0, len(merged))
	for i, sp := range merged {
		ranked = append(ranked, RankedPlace{
			Rank:           i + 1,
			Title:          place.StripMarkup(sp.item.Title),
			Address:        sp.item.Address,
			Category:       sp.item.Category,
			Link:           sp.item.Link,
			Keyword:        sp.keyword,
			AdventureScore: sp.score,
			AdventureLevel: adventureLevel(sp.score),
		})
	}

	r.cache.Store(cacheKey, rankCacheEntry{places: ranked, expiry: time.Now().Add(r.ttl)})

	logrus.WithFields(logrus.Fields{
		"menu":    menuName,
		"region":  region,
		"rarity":  rarity,
		"results": len(ranked),
	}).Info("adventure ranking complete")
	return ranked, nil
}

func adventureLevel(score float64) int {
	level := int(math.Round(score / levelFullScore * 100))
	if level > 100 {
		return 100
	}
	return level
}
