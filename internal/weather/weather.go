// Package weather fetches current conditions from Open-Meteo and converts
// them into scoring multipliers for the preference scorer.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Condition is the coarse weather bucket used for scoring.
type Condition string

const (
	ConditionClear   Condition = "clear"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionCloudy  Condition = "cloudy"
	ConditionUnknown Condition = "unknown"
)

// Data is a current-weather snapshot.
type Data struct {
	Temperature float64   `json:"temperature"`
	Condition   Condition `json:"condition"`
}

// Multiplier adjusts menu scores multiplicatively. All factors are 1.0 when
// weather data is unavailable.
type Multiplier struct {
	Soup  float64 `json:"soup"`
	Spicy float64 `json:"spicy"`
	Cold  float64 `json:"cold"`
}

// Config drives the Open-Meteo client. The API needs no credentials.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client fetches current weather for a coordinate.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient constructs an Open-Meteo client with defaults filled in.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.open-meteo.com/v1/forecast"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

type forecastResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

// Current fetches the current weather for the supplied coordinate.
func (c *Client) Current(ctx context.Context, latitude, longitude float64) (*Data, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(latitude, 'f', 4, 64))
	params.Set("longitude", strconv.FormatFloat(longitude, 'f', 4, 64))
	params.Set("current_weather", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather api status %d", resp.StatusCode)
	}

	var payload forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}

	return &Data{
		Temperature: payload.CurrentWeather.Temperature,
		Condition:   conditionFromCode(payload.CurrentWeather.WeatherCode),
	}, nil
}

func conditionFromCode(code int) Condition {
	switch {
	case code == 0 || code == 1:
		return ConditionClear
	case code >= 51 && code <= 67:
		return ConditionRain
	case code >= 71 && code <= 77:
		return ConditionSnow
	default:
		return ConditionCloudy
	}
}

// MultiplierFor maps weather data onto score multipliers. Nil data yields the
// neutral multiplier.
func MultiplierFor(data *Data) Multiplier {
	m := Multiplier{Soup: 1.0, Spicy: 1.0, Cold: 1.0}
	if data == nil {
		return m
	}

	if data.Temperature < 10 {
		m.Soup = 1.3
		m.Spicy = 1.2
		m.Cold = 0.7
	} else if data.Temperature > 25 {
		m.Soup = 0.8
		m.Spicy = 0.9
		m.Cold = 1.3
	}

	if data.Condition == ConditionRain || data.Condition == ConditionSnow {
		m.Soup *= 1.2
		m.Spicy *= 1.1
	}

	return m
}

// Describe produces the short banner text shown alongside a recommendation.
// Returns an empty string when there is nothing noteworthy to say.
func Describe(data *Data) string {
	if data == nil {
		return ""
	}
	switch {
	case data.Temperature < 10 && (data.Condition == ConditionRain || data.Condition == ConditionSnow):
		return "추운 날씨에 비까지... 따뜻한 국물이 딱이겠어요"
	case data.Temperature < 10:
		return "쌀쌀한 날씨네요. 따뜻한 음식 어때요?"
	case data.Temperature > 25:
		return "더운 날씨! 시원하고 가볍게 먹기 좋은 날이에요"
	case data.Condition == ConditionRain:
		return "비 오는 날엔 따끈한 음식이 제맛!"
	default:
		return ""
	}
}
