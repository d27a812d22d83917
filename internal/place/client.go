// Package place wraps the Naver local-business search API.
package place

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"
)

// Config drives Naver local search client behaviour.
type Config struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	Timeout      time.Duration
	CacheTTL     time.Duration
}

// Item is one local search hit, with HTML markup already stripped.
type Item struct {
	Title    string `json:"title"`
	Link     string `json:"link,omitempty"`
	Category string `json:"category"`
	Address  string `json:"address"`
}

// Client performs local searches with basic response caching.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	cacheTTL     time.Duration
	cache        sync.Map // map[string]cacheEntry
}

type cacheEntry struct {
	at    time.Time
	items []Item
}

// ErrMissingCredentials is returned when the client cannot authenticate.
var ErrMissingCredentials = errors.New("naver client missing credentials")

// NewClient constructs a local search client if configuration is valid.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.ClientID) == "" || strings.TrimSpace(cfg.ClientSecret) == "" {
		return nil, ErrMissingCredentials
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = "https://openapi.naver.com/v1/search/local.json"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	return &Client{
		httpClient:   &http.Client{Timeout: timeout},
		baseURL:      baseURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		cacheTTL:     ttl,
	}, nil
}

// Search runs a local search for the given query. Results are cached per
// (query, display, sort) for the configured TTL; concurrent misses may both
// hit the upstream, which is acceptable for this workload.
func (c *Client) Search(ctx context.Context, query string, display int, sortBy string) ([]Item, error) {
	if c == nil {
		return nil, errors.New("naver client is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if display <= 0 {
		display = 5
	}
	if sortBy == "" {
		sortBy = "comment"
	}

	key := fmt.Sprintf("%s|%d|%s", query, display, sortBy)
	if entry, ok := c.cache.Load(key); ok {
		cached := entry.(cacheEntry)
		if time.Since(cached.at) < c.cacheTTL {
			return cached.items, nil
		}
		c.cache.Delete(key)
	}

	items, err := c.performRequest(ctx, query, display, sortBy)
	if err != nil {
		return nil, err
	}

	c.cache.Store(key, cacheEntry{at: time.Now(), items: items})
	return items, nil
}

func (c *Client) performRequest(ctx context.Context, query string, display int, sortBy string) ([]Item, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("display", fmt.Sprintf("%d", display))
	params.Set("sort", sortBy)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Naver-Client-Id", c.clientID)
	req.Header.Set("X-Naver-Client-Secret", c.clientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("naver local api status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode naver response: %w", err)
	}

	items := make([]Item, 0, len(payload.Items))
	for _, raw := range payload.Items {
		title := StripMarkup(raw.Title)
		if strings.TrimSpace(title) == "" {
			continue
		}
		address := strings.TrimSpace(raw.Address)
		if address == "" {
			address = strings.TrimSpace(raw.RoadAddress)
		}
		items = append(items, Item{
			Title:    title,
			Link:     strings.TrimSpace(raw.Link),
			Category: StripMarkup(raw.Category),
			Address:  address,
		})
	}
	return items, nil
}

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Category    string `json:"category"`
	Address     string `json:"address"`
	RoadAddress string `json:"roadAddress"`
}

var tagPattern = regexp.MustCompile(`</?[a-zA-Z]+>`)

// StripMarkup removes the highlight tags and HTML entities Naver embeds in
// text fields. Dedup keys and display values must go through this first.
func StripMarkup(text string) string {
	return html.UnescapeString(tagPattern.ReplaceAllString(text, ""))
}
