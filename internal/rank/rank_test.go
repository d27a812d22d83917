package rank

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/place"
)

type fakeSearcher struct {
	results map[string][]place.Item // matched by substring of the query
	err     error
	calls   int64
}

func (f *fakeSearcher) Search(_ context.Context, query string, _ int, _ string) ([]place.Item, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	for needle, items := range f.results {
		if strings.Contains(query, needle) {
			return items, nil
		}
	}
	return nil, nil
}

func TestMenuRarityTiers(t *testing.T) {
	tests := []struct {
		menu string
		want int
	}{
		{"짜장면", 10},
		{"삼선짜장면", 10},
		{"분짜", 80},
		{"쌀국수", 50},
		{"후무스", 95},
		{"듣도보도못한음식", 60},
		{"", 60},
	}
	for _, tc := range tests {
		if got := MenuRarity(tc.menu); got != tc.want {
			t.Errorf("MenuRarity(%q) = %d, want %d", tc.menu, got, tc.want)
		}
	}
}

func TestDisplayScalesWithRarity(t *testing.T) {
	if got := displayFor(MenuRarity("분짜")); got != 15 {
		t.Fatalf("rare menu should fetch 15 per keyword, got %d", got)
	}
	if got := displayFor(MenuRarity("짜장면")); got != 5 {
		t.Fatalf("common menu should fetch 5 per keyword, got %d", got)
	}
	if got := displayFor(MenuRarity("쌀국수")); got != 10 {
		t.Fatalf("moderate menu should fetch 10 per keyword, got %d", got)
	}
}

func TestAdventureScoreRejectsChains(t *testing.T) {
	item := place.Item{Title: "교촌치킨 강남점", Address: "서울 강남구", Category: "치킨"}
	if got := adventureScore(item, "전문점", 95); got != chainRejectMark {
		t.Fatalf("chain store must score %v, got %v", chainRejectMark, got)
	}
}

func TestAdventureScoreComponents(t *testing.T) {
	rarity := 80

	specialty := place.Item{Title: "사이공 분짜 전문점", Address: "부산 외곽", Category: "베트남음식"}
	branch := place.Item{Title: "분짜하우스 서면점", Address: "부산 부산진구", Category: "베트남음식"}
	promoted := place.Item{Title: "분짜집", Address: "부산", Category: "베트남음식 체험단 이벤트"}

	s1 := adventureScore(specialty, "정통", rarity)
	s2 := adventureScore(branch, "정통", rarity)
	s3 := adventureScore(promoted, "정통", rarity)

	// 0.5*80 + 15 keyword + 8 specialty title + 6 rare category.
	if s1 != 69 {
		t.Fatalf("specialty score = %v, want 69", s1)
	}
	// Branch pattern costs 5 against the same baseline.
	if s2 != 40+15-5+6 {
		t.Fatalf("branch score = %v, want %v", s2, 40+15-5+6)
	}
	// Two ad keywords cost 3 each.
	if s3 != 40+15-6+6 {
		t.Fatalf("promoted score = %v, want %v", s3, 40+15-6+6)
	}
}

func TestAdventureScoreBranchMarkerExemption(t *testing.T) {
	exempt := place.Item{Title: "분짜 전문점 해운대점", Address: "부산", Category: "베트남음식"}
	plain := place.Item{Title: "분짜네 해운대점", Address: "부산", Category: "베트남음식"}
	if adventureScore(exempt, "숨은", 80) <= adventureScore(plain, "숨은", 80) {
		t.Fatal("specialty marker should exempt the branch penalty")
	}
}

func TestAdventureRankOrderingAndChainExclusion(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]place.Item{
		"전문점": {
			{Title: "사이공 <b>분짜</b> 전문점", Address: "부산 외곽", Category: "베트남음식"},
			{Title: "교촌치킨 강남점", Address: "서울 강남구", Category: "치킨"},
		},
		"숨은": {
			{Title: "하노이 분짜", Address: "양산", Category: "베트남음식"},
		},
	}}
	r := NewAdventureRanker(searcher, time.Minute)

	ranked, err := r.Rank(context.Background(), "분짜", "부산")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) == 0 || len(ranked) > 5 {
		t.Fatalf("expected 1-5 results, got %d", len(ranked))
	}
	for i, p := range ranked {
		if p.Rank != i+1 {
			t.Fatalf("rank not 1-indexed sequential at %d: %d", i, p.Rank)
		}
		if p.AdventureScore <= 0 {
			t.Fatalf("non-positive score %v survived", p.AdventureScore)
		}
		if i > 0 && ranked[i].AdventureScore > ranked[i-1].AdventureScore {
			t.Fatal("results not sorted descending")
		}
		if strings.Contains(p.Title, "교촌치킨") {
			t.Fatal("chain store survived ranking")
		}
		if strings.Contains(p.Title, "<b>") {
			t.Fatalf("markup left in title %q", p.Title)
		}
		if p.AdventureLevel < 0 || p.AdventureLevel > 100 {
			t.Fatalf("adventure level out of range: %d", p.AdventureLevel)
		}
	}
}

func TestAdventureRankDedupKeepsMax(t *testing.T) {
	// The same place surfaces under two keywords; only the higher-scored
	// sighting may survive.
	dup := place.Item{Title: "하노이 분짜", Address: "양산", Category: "베트남음식"}
	searcher := &fakeSearcher{results: map[string][]place.Item{
		"정통":   {dup},
		"드라이브": {dup},
	}}
	r := NewAdventureRanker(searcher, time.Minute)

	ranked, err := r.Rank(context.Background(), "분짜", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 1 {
		t.Fatalf("expected 1 deduplicated result, got %d", len(ranked))
	}
	want := adventureScore(dup, "정통", 80)
	if ranked[0].AdventureScore != want {
		t.Fatalf("dedup kept score %v, want the max %v", ranked[0].AdventureScore, want)
	}
}

func TestAdventureRankCaches(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]place.Item{
		"전문점": {{Title: "분짜 전문점", Address: "서울", Category: "베트남음식"}},
	}}
	r := NewAdventureRanker(searcher, time.Minute)

	if _, err := r.Rank(context.Background(), "분짜", "서울"); err != nil {
		t.Fatalf("first rank: %v", err)
	}
	first := atomic.LoadInt64(&searcher.calls)
	if _, err := r.Rank(context.Background(), "분짜", "서울"); err != nil {
		t.Fatalf("second rank: %v", err)
	}
	if atomic.LoadInt64(&searcher.calls) != first {
		t.Fatal("cached request hit the searcher again")
	}
}

func TestAdventureRankDegradesOnSearchFailure(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("upstream down")}
	r := NewAdventureRanker(searcher, time.Minute)

	ranked, err := r.Rank(context.Background(), "분짜", "")
	if err != nil {
		t.Fatalf("branch failures must not fail the aggregate: %v", err)
	}
	if len(ranked) != 0 {
		t.Fatalf("expected empty result, got %d", len(ranked))
	}
}

func TestNearbyRegions(t *testing.T) {
	tests := []struct {
		in    string
		first string
	}{
		{"부산", "부산"},
		{"부산 해운대구", "부산"},
		{"경남", "창원"},
		{"", "서울"},
	}
	for _, tc := range tests {
		got := NearbyRegions(tc.in)
		if len(got) == 0 || got[0] != tc.first {
			t.Errorf("NearbyRegions(%q) first = %v, want %q", tc.in, got, tc.first)
		}
	}
	if got := NearbyRegions("화성시 어딘가"); len(got) == 0 {
		t.Error("unknown region must fall back to a non-empty default")
	}
}

func TestMoodRankDedupAndOrder(t *testing.T) {
	shared := place.Item{Title: "국밥명가", Address: "부산 중구", Category: "한식"}
	searcher := &fakeSearcher{results: map[string][]place.Item{
		"부산": {shared, {Title: "<b>돼지국밥</b> 원조집", Address: "부산 서구", Category: "한식"}},
		"양산": {shared, {Title: "양산 국밥", Address: "양산", Category: "한식"}},
	}}
	m := NewMoodRanker(searcher, rand.New(rand.NewSource(1)), time.Minute)

	places, err := m.Rank(context.Background(), "국밥", "부산")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(places) == 0 || len(places) > 5 {
		t.Fatalf("expected 1-5 places, got %d", len(places))
	}

	seen := map[string]bool{}
	for _, p := range places {
		key := p.Title + ":" + p.Address
		if seen[key] {
			t.Fatalf("duplicate place %q", key)
		}
		seen[key] = true
		if strings.Contains(p.Title, "<b>") {
			t.Fatalf("markup left in title %q", p.Title)
		}
		if p.Keyword == "" {
			t.Fatal("mood keyword not recorded")
		}
	}
	// The 부산 preset starts with 부산 itself, so its relevance-ordered
	// results must come first.
	if places[0].Title != "국밥명가" {
		t.Fatalf("preset ordering not preserved, first = %q", places[0].Title)
	}
}

func TestMoodRankDegradesOnFailure(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("upstream down")}
	m := NewMoodRanker(searcher, rand.New(rand.NewSource(2)), time.Minute)

	places, err := m.Rank(context.Background(), "국밥", "")
	if err != nil {
		t.Fatalf("branch failures must not fail the aggregate: %v", err)
	}
	if len(places) != 0 {
		t.Fatalf("expected empty result, got %d", len(places))
	}
}
