package rank

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/place"
)

const moodTopN = 5

var moodKeywords = []string{
	"드라이브", "데이트", "혼밥", "가성비", "분위기",
	"현지인", "웨이팅", "숨은맛집", "핫플", "맛집",
}

// MoodPlace is one unscored entry of the mood-based top-5, kept in the
// upstream relevance order.
type MoodPlace struct {
	Title    string `json:"title"`
	Address  string `json:"address"`
	Category string `json:"category"`
	Keyword  string `json:"keyword"`
}

type moodCacheEntry struct {
	places []MoodPlace
	expiry time.Time
}

// MoodRanker fans a menu search out over nearby cities with one randomly
// chosen mood keyword and merges the results without rescoring them.
type MoodRanker struct {
	searcher Searcher
	cache    sync.Map
	ttl      time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewMoodRanker wraps a searcher. A zero ttl uses the 30 minute default.
func NewMoodRanker(searcher Searcher, rng *rand.Rand, ttl time.Duration) *MoodRanker {
	if ttl <= 0 {
		ttl = rankCacheTTL
	}
	return &MoodRanker{searcher: searcher, rng: rng, ttl: ttl}
}

func (m *MoodRanker) pickKeyword() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return moodKeywords[m.rng.Intn(len(moodKeywords))]
}

// Rank returns up to 5 places for the menu across the region's nearby
// cities. Results stay in the order the upstream relevance sort produced,
// region by region; failed city searches log and contribute nothing.
func (m *MoodRanker) Rank(ctx context.Context, menuName, region string) ([]MoodPlace, error) {
	cacheKey := "mood:" + region + ":" + menuName
	if entry, ok := m.cache.Load(cacheKey); ok {
		cached := entry.(moodCacheEntry)
		if time.Now().Before(cached.expiry) {
			logrus.WithField("key", cacheKey).Debug("mood cache hit")
			return cached.places, nil
		}
		m.cache.Delete(cacheKey)
	}

	cities := NearbyRegions(region)
	keyword := m.pickKeyword()
	logrus.WithFields(logrus.Fields{
		"region":  region,
		"cities":  len(cities),
		"keyword": keyword,
	}).Info("mood place search")

	// Slot per city keeps the preset ordering stable across goroutines.
	slots := make([][]place.Item, len(cities))
	var wg sync.WaitGroup
	for i, city := range cities {
		wg.Add(1)
		go func(i int, city string) {
			defer wg.Done()
			items, err := m.searcher.Search(ctx, city+" "+menuName+" "+keyword, 5, "comment")
			if err != nil {
				logrus.WithError(err).WithField("city", city).Warn("mood city search failed")
				return
			}
			slots[i] = items
		}(i, city)
	}
	wg.Wait()

	seen := make(map[string]bool)
	places := make([]MoodPlace, 0, moodTopN)
	for _, items := range slots {
		for _, item := range items {
			title := place.StripMarkup(item.Title)
			if title == "" {
				continue
			}
			key := title + ":" + item.Address
			if seen[key] {
				continue
			}
			seen[key] = true
			places = append(places, MoodPlace{
				Title:    title,
				Address:  item.Address,
				Category: item.Category,
				Keyword:  keyword,
			})
		}
	}
	if len(places) > moodTopN {
		places = places[:moodTopN]
	}

	m.cache.Store(cacheKey, moodCacheEntry{places: places, expiry: time.Now().Add(m.ttl)})
	return places, nil
}
