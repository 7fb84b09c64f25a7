package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	ProxycurlAPIKey  string
	ProxycurlAPIBase string
	LLMAPIKey        string
	LLMAPIBase       string
	LLMModel         string
	LLMTemperature   float64
	LLMMaxTokens     int

	// PageSize is requested from the search provider per call.
	PageSize int
	// MinDirectResults is the threshold below which the search is widened
	// to LLM-suggested peer companies.
	MinDirectResults int
	// MaxPeerCompanies caps how many peer companies are searched.
	MaxPeerCompanies int

	MockProfilesPath string
	CachePath        string
	DatabaseURL      string
	CacheMaxAge      time.Duration // 0 = cached profile sets never expire

	HTTPClient *http.Client
	LLMClient  *llm.Client

	Searcher ProfileSearcher // nil = Proxycurl client built from the fields above
	Advisor  PeerAdvisor     // nil = no-op (no peer widening)
	Vocab    GapVocab        // zero value = DefaultGapVocab()
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages and tools.
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration and fills in
// the default collaborators for any left nil.
func Init(c Config) {
	if c.PageSize <= 0 {
		c.PageSize = 25
	}
	if c.MinDirectResults <= 0 {
		c.MinDirectResults = 5
	}
	if c.MaxPeerCompanies <= 0 {
		c.MaxPeerCompanies = 3
	}
	if c.Searcher == nil {
		c.Searcher = NewProxycurlClient(c.ProxycurlAPIBase, c.ProxycurlAPIKey, c.HTTPClient)
	}
	if c.Advisor == nil {
		if c.LLMClient != nil && c.LLMAPIKey != "" {
			c.Advisor = &llmAdvisor{max: c.MaxPeerCompanies}
		} else {
			c.Advisor = noopAdvisor{}
		}
	}
	if len(c.Vocab.Technical) == 0 && len(c.Vocab.Soft) == 0 {
		c.Vocab = DefaultGapVocab()
	}
	cfg = c
	Cfg = &cfg
}
