package engine

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestCacheKey(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		k1 := CacheKey("Acme", "VP Sales")
		k2 := CacheKey("Acme", "VP Sales")
		if k1 != k2 {
			t.Errorf("CacheKey not deterministic: %q != %q", k1, k2)
		}
	})

	t.Run("case-sensitive inputs differ", func(t *testing.T) {
		if CacheKey("Acme", "VP Sales") == CacheKey("acme", "VP Sales") {
			t.Error("case variants produced the same key")
		}
	})

	t.Run("has prefix", func(t *testing.T) {
		k := CacheKey("test")
		if k[:3] != "cp:" {
			t.Errorf("expected cp: prefix, got %q", k[:3])
		}
	})
}

func TestCacheGetSetProfiles(t *testing.T) {
	store, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "cache.sqlite3"), 0)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	InitCache(store)

	ctx := context.Background()

	if _, ok := CacheGetProfiles(ctx, "Acme", "VP Sales"); ok {
		t.Error("expected miss on empty cache")
	}

	CacheSetProfiles(ctx, "Acme", "VP Sales", testProfiles("Jane"))

	got, ok := CacheGetProfiles(ctx, "Acme", "VP Sales")
	if !ok {
		t.Fatal("expected hit after set")
	}
	if len(got) != 1 || got[0].FullName != "Jane" {
		t.Errorf("got %+v", got)
	}
}

func TestCacheL1PopulatedFromStore(t *testing.T) {
	store, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "cache.sqlite3"), 0)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Save(ctx, "Acme", "VP Sales", testProfiles("Jane")); err != nil {
		t.Fatal(err)
	}

	// Fresh cache over a pre-populated store: first get is a store read.
	InitCache(store)
	if _, ok := CacheGetProfiles(ctx, "Acme", "VP Sales"); !ok {
		t.Fatal("expected hit from durable store")
	}

	// Second get must be served even after the store is gone (L1).
	store.Close()
	if _, ok := CacheGetProfiles(ctx, "Acme", "VP Sales"); !ok {
		t.Error("expected L1 hit after store populated it")
	}
}

func TestCacheL1Expiry(t *testing.T) {
	store, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "cache.sqlite3"), 0)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	InitCache(store)

	oldTTL := CacheTTL
	CacheTTL = time.Millisecond
	defer func() { CacheTTL = oldTTL }()

	ctx := context.Background()
	CacheSetProfiles(ctx, "Acme", "VP Sales", testProfiles("Jane"))
	time.Sleep(5 * time.Millisecond)

	// L1 expired; the durable store still answers.
	if _, ok := CacheGetProfiles(ctx, "Acme", "VP Sales"); !ok {
		t.Error("expected fall-through to durable store after L1 expiry")
	}
}

func TestCacheDisabled(t *testing.T) {
	InitCache(nil)
	ctx := context.Background()

	CacheSetProfiles(ctx, "Acme", "VP Sales", testProfiles("Jane"))
	if _, ok := CacheGetProfiles(ctx, "Acme", "VP Sales"); ok {
		t.Error("disabled cache must always miss")
	}
}
