// go_discovery — career trajectory pattern mining MCP server.
//
// Mines "success profiles" for a target role/company via the Proxycurl
// Person Search API, extracts the role each person held immediately before
// the target role (the golden step), and analyzes gaps between a candidate
// CV and those patterns. Exposes three MCP tools: career_patterns,
// trajectory_gap, pattern_peek.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_discovery/internal/discoveryserver"
	"github.com/anatolykoptev/go_discovery/internal/engine"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	_ = godotenv.Load()

	initEngine()

	slog.Info("starting go_discovery",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_discovery",
		Version: version,
	}, nil)

	discoveryserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 3))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_discovery",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		ProxycurlAPIKey:  env.Str("PROXYCURL_API_KEY", ""),
		ProxycurlAPIBase: env.Str("PROXYCURL_API_BASE", engine.DefaultProxycurlAPIBase),
		LLMAPIKey:        env.Str("LLM_API_KEY", ""),
		LLMAPIBase:       env.Str("LLM_API_BASE", "https://api.openai.com/v1"),
		LLMModel:         env.Str("LLM_MODEL", "gpt-4o-mini"),
		LLMTemperature:   env.Float("LLM_TEMPERATURE", 0.2),
		LLMMaxTokens:     env.Int("LLM_MAX_TOKENS", 1024),
		PageSize:         env.Int("SEARCH_PAGE_SIZE", 25),
		MinDirectResults: env.Int("MIN_DIRECT_RESULTS", 5),
		MaxPeerCompanies: env.Int("MAX_PEER_COMPANIES", 3),
		MockProfilesPath: env.Str("MOCK_PROFILES_PATH", "mock_profiles.json"),
		CachePath:        env.Str("CACHE_PATH", "discovery_cache.sqlite3"),
		DatabaseURL:      env.Str("DATABASE_URL", ""),
		CacheMaxAge:      env.Duration("CACHE_MAX_AGE", 0),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	if c.LLMAPIKey != "" {
		c.LLMClient = llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
			llm.WithMaxTokens(c.LLMMaxTokens),
			llm.WithTemperature(c.LLMTemperature),
			llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
		)
	} else {
		slog.Warn("LLM_API_KEY not set; peer company suggestion disabled")
	}

	engine.Init(c)

	engine.CacheTTL = env.Duration("CACHE_L1_TTL", 15*time.Minute)
	engine.InitCache(openStore(c))
}

// openStore selects the durable cache tier: Postgres when DATABASE_URL is
// set, SQLite otherwise. A store that fails to open disables caching rather
// than aborting startup.
func openStore(c engine.Config) engine.ProfileStore {
	if c.DatabaseURL != "" {
		store, err := engine.ConnectPostgresStore(context.Background(), c.DatabaseURL, c.CacheMaxAge)
		if err != nil {
			slog.Warn("postgres store init failed, falling back to sqlite", slog.Any("error", err))
		} else {
			return store
		}
	}

	store, err := engine.OpenSQLiteStore(c.CachePath, c.CacheMaxAge)
	if err != nil {
		slog.Warn("sqlite store init failed, caching disabled", slog.Any("error", err))
		return nil
	}
	slog.Info("sqlite store opened", slog.String("path", c.CachePath))
	return store
}
