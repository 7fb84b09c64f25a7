package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go-kit/llm"
)

// PeerAdvisor suggests peer companies when direct search results are
// sparse. Always best-effort: implementations return an empty slice on any
// failure, never an error.
type PeerAdvisor interface {
	SuggestPeers(ctx context.Context, role, company string) []string
}

// noopAdvisor is the default when no LLM is configured.
type noopAdvisor struct{}

func (noopAdvisor) SuggestPeers(context.Context, string, string) []string { return nil }

const peerPrompt = `You are a career intelligence assistant.
Given the target role '%s' at company '%s', suggest %d peer companies of similar size, prestige, and industry.
Return ONLY a comma-separated list of company names, no extra text.`

// llmAdvisor asks the configured LLM for peer companies.
type llmAdvisor struct {
	max int
}

func (a *llmAdvisor) SuggestPeers(ctx context.Context, role, company string) []string {
	prompt := fmt.Sprintf(peerPrompt, role, company, a.max)

	metrics.LLMCalls.Add(1)
	raw, err := cfg.LLMClient.Complete(ctx, "", prompt,
		llm.WithChatTemperature(0.2),
		llm.WithChatMaxTokens(100),
	)
	if err != nil {
		metrics.LLMErrors.Add(1)
		slog.Warn("peer suggestion failed", slog.Any("error", err))
		return nil
	}

	peers := parsePeerList(stripFences(raw), a.max)
	if len(peers) > 0 {
		metrics.PeerSuggestions.Add(int64(len(peers)))
		slog.Info("peer companies suggested", slog.Any("peers", peers))
	}
	return peers
}

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// parsePeerList splits a comma-separated LLM reply, trims entries, drops
// empties, and caps the result at max.
func parsePeerList(raw string, max int) []string {
	var peers []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			peers = append(peers, p)
		}
	}
	if len(peers) > max {
		peers = peers[:max]
	}
	return peers
}
