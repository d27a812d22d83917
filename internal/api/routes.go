package api

import (
	"errors"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/decision"
	"github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/menu"
	"github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/place"
	"github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/rank"
	"github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/store"
	"github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/util"
	"github.com/Parkkt1472-hub/what-should-i-eat-sub000/internal/weather"
)

// Config defines server dependencies.
type Config struct {
	DBPath         string
	AllowedOrigins []string
	SilentDB       bool
	NaverConfig    place.Config
	WeatherConfig  weather.Config
	RankCacheTTL   time.Duration
	RandomSeed     int64
}

// Server wires HTTP handlers with persistence, the decision engine and the
// external search clients.
type Server struct {
	db             *store.Database
	engine         *decision.Engine
	places         *place.Client
	adventure      *rank.AdventureRanker
	mood           *rank.MoodRanker
	weatherClient  *weather.Client
	allowedOrigins []string
}

const recentMenuWindow = 5

// NewServer constructs the API server.
func NewServer(cfg Config) (*Server, error) {
	if cfg.DBPath == "" {
		return nil, errors.New("db path required")
	}
	db, err := store.Open(cfg.DBPath, cfg.SilentDB)
	if err != nil {
		return nil, err
	}

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine := decision.NewEngine(menu.Catalog(), rand.New(rand.NewSource(seed)))

	server := &Server{
		db:             db,
		engine:         engine,
		weatherClient:  weather.NewClient(cfg.WeatherConfig),
		allowedOrigins: cfg.AllowedOrigins,
	}

	if strings.TrimSpace(cfg.NaverConfig.ClientID) == "" || strings.TrimSpace(cfg.NaverConfig.ClientSecret) == "" {
		logrus.Info("local place search disabled - no Naver credentials configured")
	} else {
		client, err := place.NewClient(cfg.NaverConfig)
		if err != nil {
			return nil, err
		}
		server.places = client
		server.adventure = rank.NewAdventureRanker(client, cfg.RankCacheTTL)
		server.mood = rank.NewMoodRanker(client, rand.New(rand.NewSource(seed+1)), cfg.RankCacheTTL)
		logrus.WithFields(logrus.Fields{
			"ttl":     cfg.NaverConfig.CacheTTL,
			"timeout": cfg.NaverConfig.Timeout,
		}).Info("local place search enabled")
	}

	return server, nil
}

// Close releases server resources.
func (s *Server) Close() error {
	return s.db.Close()
}

// Router configures gin routes.
func (s *Server) Router() (*gin.Engine, error) {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowCredentials = true
	if len(s.allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.allowedOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	r.GET("/api/healthz", s.handleHealth)
	r.GET("/api/config", s.handleConfig)

	api := r.Group("/api")
	{
		api.POST("/decision", s.handleDecision)
		api.GET("/local", s.handleLocal)
		api.GET("/adventure", s.handleAdventure)
		api.GET("/mood-places", s.handleMoodPlaces)
		api.GET("/weather", s.handleWeather)
		api.GET("/history", s.handleListHistory)
		api.DELETE("/history/:id", s.handleDeleteHistory)
		api.DELETE("/history", s.handleClearHistory)
		api.GET("/preferences", s.handleGetPreferences)
		api.PUT("/preferences", s.handlePutPreferences)
		api.GET("/stats", s.handleStats)
	}

	return r, nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleConfig(c *gin.Context) {
	categories := make(map[string]bool)
	for _, item := range menu.Catalog() {
		categories[item.Category] = true
	}
	c.JSON(http.StatusOK, gin.H{
		"catalog_size":    len(menu.Catalog()),
		"categories":      len(categories),
		"place_search":    s.places != nil,
		"weather_lookup":  true,
		"history_enabled": true,
	})
}

func (s *Server) handleDecision(c *gin.Context) {
	timer := util.StartTimer()

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}

	who := decision.GroupContext(req.Who)
	if !decision.ValidGroup(who) {
		s.renderError(c, http.StatusBadRequest, errors.New("invalid who: expected solo, couple, family or friends"))
		return
	}
	how := decision.AcquisitionMode(req.How)
	if !decision.ValidMode(how) {
		s.renderError(c, http.StatusBadRequest, errors.New("invalid how: expected cook, delivery or dineout"))
		return
	}

	in := decision.Input{
		Who:         who,
		How:         how,
		Outdoor:     decision.OutdoorPreference(req.Outdoor),
		ExcludeMenu: req.ExcludeMenu,
		Preferences: req.Preferences,
	}

	if req.SessionID != "" {
		recent, err := s.db.RecentMenus(req.SessionID, recentMenuWindow)
		if err != nil {
			logrus.WithError(err).Warn("load recent menus")
		} else {
			in.RecentMenus = recent
		}
		if in.Preferences == nil && req.UsePreferences {
			profile, err := s.db.GetPreferences(req.SessionID)
			if err != nil {
				logrus.WithError(err).Warn("load preference profile")
			} else if profile != nil {
				prefs := PreferencesFromModel(*profile).Preferences
				in.Preferences = &prefs
			}
		}
	}

	result := s.engine.Decide(in)

	if req.SessionID != "" {
		err := s.db.AppendHistory(&store.HistoryEntry{
			SessionID: req.SessionID,
			Menu:      result.Menu,
			Mode:      result.Mode,
			Reason:    result.Reason,
			Who:       req.Who,
			How:       req.How,
		})
		if err != nil {
			logrus.WithError(err).Warn("persist decision history")
		}
	}
	if err := s.db.IncrementMenuStat(result.Menu); err != nil {
		logrus.WithError(err).Warn("increment menu stat")
	}

	c.JSON(http.StatusOK, DecisionResponse{
		Menu:         result.Menu,
		Reason:       result.Reason,
		Ingredients:  result.Ingredients,
		Actions:      result.Actions,
		Mode:         result.Mode,
		FallbackTier: result.FallbackTier.String(),
		Score:        result.Score,
		ElapsedMs:    timer.ElapsedMs(),
	})
}

func (s *Server) handleLocal(c *gin.Context) {
	menuName := strings.TrimSpace(c.Query("menu"))
	if menuName == "" {
		s.renderError(c, http.StatusBadRequest, errors.New("menu parameter is required"))
		return
	}
	if s.places == nil {
		s.renderError(c, http.StatusInternalServerError, place.ErrMissingCredentials)
		return
	}

	query := menuName + " 맛집"
	if location := strings.TrimSpace(c.Query("location")); location != "" {
		query = location + " " + query
	}

	items, err := s.places.Search(c.Request.Context(), query, 5, "comment")
	if err != nil {
		s.renderError(c, http.StatusBadGateway, err)
		return
	}

	dtos := make([]PlaceDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, PlaceDTO{
			Title:    item.Title,
			Address:  item.Address,
			Category: item.Category,
			Link:     item.Link,
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": dtos})
}

func (s *Server) handleAdventure(c *gin.Context) {
	menuName := strings.TrimSpace(c.Query("menu"))
	if menuName == "" {
		s.renderError(c, http.StatusBadRequest, errors.New("menu parameter is required"))
		return
	}
	if s.adventure == nil {
		s.renderError(c, http.StatusInternalServerError, place.ErrMissingCredentials)
		return
	}

	ranked, err := s.adventure.Rank(c.Request.Context(), menuName, strings.TrimSpace(c.Query("region")))
	if err != nil {
		s.renderError(c, http.StatusBadGateway, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": ranked})
}

func (s *Server) handleMoodPlaces(c *gin.Context) {
	menuName := strings.TrimSpace(c.Query("menu"))
	if menuName == "" {
		s.renderError(c, http.StatusBadRequest, errors.New("menu parameter is required"))
		return
	}
	if s.mood == nil {
		s.renderError(c, http.StatusInternalServerError, place.ErrMissingCredentials)
		return
	}

	places, err := s.mood.Rank(c.Request.Context(), menuName, strings.TrimSpace(c.Query("region")))
	if err != nil {
		s.renderError(c, http.StatusBadGateway, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": places})
}

func (s *Server) handleWeather(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		s.renderError(c, http.StatusBadRequest, errors.New("lat and lon parameters are required"))
		return
	}

	data, err := s.weatherClient.Current(c.Request.Context(), lat, lon)
	if err != nil {
		s.renderError(c, http.StatusBadGateway, err)
		return
	}

	m := weather.MultiplierFor(data)
	c.JSON(http.StatusOK, WeatherResponse{
		Temperature: data.Temperature,
		Condition:   string(data.Condition),
		Description: weather.Describe(data),
		Multiplier:  MultiplierDTO{Soup: m.Soup, Spicy: m.Spicy, Cold: m.Cold},
	})
}

func (s *Server) handleListHistory(c *gin.Context) {
	sessionID := strings.TrimSpace(c.Query("session_id"))
	if sessionID == "" {
		s.renderError(c, http.StatusBadRequest, errors.New("session_id parameter is required"))
		return
	}

	rows, err := s.db.ListHistory(sessionID, 0)
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, err)
		return
	}
	dtos := make([]HistoryDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, HistoryFromModel(row))
	}
	c.JSON(http.StatusOK, gin.H{"items": dtos})
}

func (s *Server) handleDeleteHistory(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		s.renderError(c, http.StatusBadRequest, errors.New("history id is required"))
		return
	}
	if err := s.db.DeleteHistoryEntry(id); err != nil {
		s.renderError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (s *Server) handleClearHistory(c *gin.Context) {
	sessionID := strings.TrimSpace(c.Query("session_id"))
	if sessionID == "" {
		s.renderError(c, http.StatusBadRequest, errors.New("session_id parameter is required"))
		return
	}
	if err := s.db.ClearHistory(sessionID); err != nil {
		s.renderError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": sessionID})
}

func (s *Server) handleGetPreferences(c *gin.Context) {
	sessionID := strings.TrimSpace(c.Query("session_id"))
	if sessionID == "" {
		s.renderError(c, http.StatusBadRequest, errors.New("session_id parameter is required"))
		return
	}

	profile, err := s.db.GetPreferences(sessionID)
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, err)
		return
	}
	if profile == nil {
		s.renderError(c, http.StatusNotFound, errors.New("no preferences stored for session"))
		return
	}
	c.JSON(http.StatusOK, PreferencesFromModel(*profile))
}

func (s *Server) handlePutPreferences(c *gin.Context) {
	var req PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}
	if err := s.db.SavePreferences(ProfileFromPreferences(req.SessionID, req.Preferences)); err != nil {
		s.renderError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": req.SessionID})
}

func (s *Server) handleStats(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	rows, err := s.db.TopMenus(limit)
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, err)
		return
	}
	dtos := make([]MenuStatDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, MenuStatDTO{Menu: row.Menu, Count: row.Count})
	}
	c.JSON(http.StatusOK, gin.H{"items": dtos})
}

func (s *Server) renderError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}
