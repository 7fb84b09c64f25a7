package engine

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ProfileStore is the durable tier of the fingerprinted cache: one profile
// set per literal (company, role) key, last write wins, atomic replace.
// Keys are case-sensitive as provided.
type ProfileStore interface {
	Load(ctx context.Context, company, role string) ([]SuccessProfile, bool, error)
	Save(ctx context.Context, company, role string, profiles []SuccessProfile) error
	Close() error
}

// patternCache provides 2-tier caching: L1 in-memory + L2 durable store.
// L1 is fast but lost on restart; the store survives restarts.
var patternCache *tieredCache

// CacheTTL controls how long profile sets stay in the L1 tier.
var CacheTTL = 15 * time.Minute

// Cache metrics — atomic counters for thread-safe access.
var (
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
)

type tieredCache struct {
	l1    sync.Map // key → *l1Entry
	store ProfileStore
}

type l1Entry struct {
	profiles  []SuccessProfile
	expiresAt time.Time
}

// InitCache wires the durable store behind the L1 memory tier.
// Call after Init(). store may be nil, which disables caching entirely.
func InitCache(store ProfileStore) {
	patternCache = &tieredCache{store: store}
	slog.Info("cache: initialized",
		slog.Duration("l1_ttl", CacheTTL),
		slog.Bool("durable", store != nil),
	)
}

// CacheKey builds a deterministic L1 key from the literal key parts.
func CacheKey(parts ...string) string {
	joined := strings.Join(parts, "|")
	hash := sha256.Sum256([]byte(joined))
	return fmt.Sprintf("cp:%x", hash[:12])
}

// CacheGetProfiles tries L1, then the durable store. On a store hit the L1
// tier is populated.
func CacheGetProfiles(ctx context.Context, company, role string) ([]SuccessProfile, bool) {
	if patternCache == nil || patternCache.store == nil {
		cacheMisses.Add(1)
		return nil, false
	}
	key := CacheKey(company, role)

	if val, ok := patternCache.l1.Load(key); ok {
		entry := val.(*l1Entry)
		if time.Now().Before(entry.expiresAt) {
			cacheHits.Add(1)
			return entry.profiles, true
		}
		patternCache.l1.Delete(key)
	}

	profiles, ok, err := patternCache.store.Load(ctx, company, role)
	if err != nil {
		slog.Warn("cache: store load failed",
			slog.String("company", company), slog.String("role", role),
			slog.Any("error", err),
		)
	}
	if !ok || err != nil {
		cacheMisses.Add(1)
		return nil, false
	}

	cacheHits.Add(1)
	patternCache.l1.Store(key, &l1Entry{
		profiles:  profiles,
		expiresAt: time.Now().Add(CacheTTL),
	})
	return profiles, true
}

// CacheSetProfiles stores the profile set in both tiers. Store write
// failures are logged, not propagated: a broken cache must not fail a
// successful acquisition.
func CacheSetProfiles(ctx context.Context, company, role string, profiles []SuccessProfile) {
	if patternCache == nil || patternCache.store == nil {
		return
	}
	if err := patternCache.store.Save(ctx, company, role, profiles); err != nil {
		slog.Warn("cache: store save failed",
			slog.String("company", company), slog.String("role", role),
			slog.Any("error", err),
		)
	}
	patternCache.l1.Store(CacheKey(company, role), &l1Entry{
		profiles:  profiles,
		expiresAt: time.Now().Add(CacheTTL),
	})
}

// CacheStats returns current cache hit/miss counters.
func CacheStats() (hits, misses int64) {
	return cacheHits.Load(), cacheMisses.Load()
}
