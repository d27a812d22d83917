package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/api"
	"github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/place"
	"github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/weather"
)

func main() {
	baseDir, err := os.Getwd()
	if err != nil {
		logrus.Fatalf("determine working directory: %v", err)
	}

	dataDir := filepath.Join(baseDir, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		logrus.Fatalf("create data directory: %v", err)
	}

	naverCfg := place.Config{
		ClientID:     os.Getenv("NAVER_CLIENT_ID"),
		ClientSecret: os.Getenv("NAVER_CLIENT_SECRET"),
	}
	if timeout := os.Getenv("NAVER_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			naverCfg.Timeout = d
		}
	}
	if ttl := os.Getenv("NAVER_CACHE_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			naverCfg.CacheTTL = d
		}
	}

	weatherCfg := weather.Config{}
	if timeout := os.Getenv("WEATHER_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			weatherCfg.Timeout = d
		}
	}

	var rankTTL time.Duration
	if ttl := os.Getenv("RANK_CACHE_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			rankTTL = d
		}
	}

	allowedOrigins := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if origins := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); origins != "" {
		allowedOrigins = nil
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	cfg := api.Config{
		DBPath:         filepath.Join(dataDir, "what-to-eat.db"),
		AllowedOrigins: allowedOrigins,
		NaverConfig:    naverCfg,
		WeatherConfig:  weatherCfg,
		RankCacheTTL:   rankTTL,
	}
	if override := strings.TrimSpace(os.Getenv("WHAT_TO_EAT_DB_PATH")); override != "" {
		cfg.DBPath = override
	}

	server, err := api.NewServer(cfg)
	if err != nil {
		logrus.Fatalf("create server: %v", err)
	}

	router, err := server.Router()
	if err != nil {
		logrus.Fatalf("configure router: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.Infof("starting what-should-i-eat backend on :%s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
