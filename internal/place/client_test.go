package place

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"highlight tags", "<b>교촌치킨</b> 강남점", "교촌치킨 강남점"},
		{"entities", "국밥 &amp; 수육 &quot;본점&quot;", `국밥 & 수육 "본점"`},
		{"plain", "순대국밥", "순대국밥"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripMarkup(tc.input); got != tc.expected {
				t.Fatalf("expected %q got %q", tc.expected, got)
			}
		})
	}
}

func TestNewClientRequiresCredentials(t *testing.T) {
	if _, err := NewClient(Config{ClientID: "id"}); err != ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestSearchStripsAndCaches(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.Header.Get("X-Naver-Client-Id") != "id" {
			t.Errorf("missing client id header")
		}
		fmt.Fprint(w, `{"items":[
			{"title":"<b>양산</b>국밥","category":"한식&gt;국밥","address":"경남 양산시"},
			{"title":"  ","address":"무시될 항목"},
			{"title":"이모네","address":"","roadAddress":"부산 금정구"}
		]}`)
	}))
	defer server.Close()

	client, err := NewClient(Config{ClientID: "id", ClientSecret: "secret", BaseURL: server.URL, CacheTTL: time.Minute})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	items, err := client.Search(context.Background(), "양산 국밥", 5, "comment")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items (blank title dropped), got %d", len(items))
	}
	if items[0].Title != "양산국밥" {
		t.Fatalf("markup not stripped: %q", items[0].Title)
	}
	if items[0].Category != "한식>국밥" {
		t.Fatalf("entity not unescaped in category: %q", items[0].Category)
	}
	if items[1].Address != "부산 금정구" {
		t.Fatalf("road address fallback not applied: %q", items[1].Address)
	}

	if _, err := client.Search(context.Background(), "양산 국밥", 5, "comment"); err != nil {
		t.Fatalf("cached search: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected single upstream call, got %d", got)
	}
}

func TestSearchUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewClient(Config{ClientID: "id", ClientSecret: "secret", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.Search(context.Background(), "국밥", 5, "comment"); err == nil {
		t.Fatal("expected error for non-OK status")
	}
}
