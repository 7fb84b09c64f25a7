package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	SearchRequests     atomic.Int64
	SearchResults      atomic.Int64
	LLMCalls           atomic.Int64
	LLMErrors          atomic.Int64
	PeerSuggestions    atomic.Int64
	ProfilesNormalized atomic.Int64
	PatternsDerived    atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"search_requests":     metrics.SearchRequests.Load(),
		"search_results":      metrics.SearchResults.Load(),
		"llm_calls":           metrics.LLMCalls.Load(),
		"llm_errors":          metrics.LLMErrors.Load(),
		"peer_suggestions":    metrics.PeerSuggestions.Load(),
		"profiles_normalized": metrics.ProfilesNormalized.Load(),
		"patterns_derived":    metrics.PatternsDerived.Load(),
		"cache_hits":          hits,
		"cache_misses":        misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"search_requests", "search_results",
		"llm_calls", "llm_errors", "peer_suggestions",
		"profiles_normalized", "patterns_derived",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}
