package engine

import (
	"context"
	"log/slog"
	"strings"
)

// FetchCareerPatterns is the main acquisition entry point.
//
// Resolution order:
//  1. Cached profile set for (company, role), unless use_mock is set.
//  2. Mock file when use_mock is set (missing file is fatal).
//  3. Live provider search; when direct results are sparse, the search is
//     widened to best-effort peer-company suggestions before normalizing
//     and caching.
//
// Provider and credential errors propagate unmodified. Data-quality
// problems inside individual profiles never do.
func FetchCareerPatterns(ctx context.Context, targetRole, targetCompany string, useMock bool) ([]SuccessProfile, SuccessPattern, error) {
	targetRole = strings.TrimSpace(targetRole)
	targetCompany = strings.TrimSpace(targetCompany)

	if !useMock {
		if cached, ok := CacheGetProfiles(ctx, targetCompany, targetRole); ok {
			slog.Info("loaded cached success profiles",
				slog.Int("count", len(cached)),
				slog.String("role", targetRole),
				slog.String("company", targetCompany),
			)
			return cached, DeriveSuccessPattern(cached, targetRole, targetCompany), nil
		}
	}

	if useMock {
		profiles, err := LoadMockProfiles(cfg.MockProfilesPath)
		if err != nil {
			return nil, SuccessPattern{}, err
		}
		return profiles, DeriveSuccessPattern(profiles, targetRole, targetCompany), nil
	}

	raw, err := cfg.Searcher.Search(ctx, targetRole, targetCompany, cfg.PageSize)
	if err != nil {
		return nil, SuccessPattern{}, err
	}

	// Thin direct results: widen to peer companies. The advisory call is
	// best-effort, but the searches it triggers are not.
	if len(raw) < cfg.MinDirectResults {
		for _, peer := range cfg.Advisor.SuggestPeers(ctx, targetRole, targetCompany) {
			more, err := cfg.Searcher.Search(ctx, targetRole, peer, cfg.PageSize)
			if err != nil {
				return nil, SuccessPattern{}, err
			}
			raw = append(raw, more...)
		}
	}

	profiles := make([]SuccessProfile, 0, len(raw))
	for _, r := range raw {
		profiles = append(profiles, NormalizeProfile(r))
	}
	if len(profiles) == 0 {
		slog.Warn("no profiles found",
			slog.String("role", targetRole),
			slog.String("company", targetCompany),
		)
	}

	CacheSetProfiles(ctx, targetCompany, targetRole, profiles)
	return profiles, DeriveSuccessPattern(profiles, targetRole, targetCompany), nil
}
