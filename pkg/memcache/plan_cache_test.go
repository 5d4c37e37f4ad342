package mem

import (
	"testing"
	"time"

	"thumbforge/internal/models/db_models"
)

func TestPlanCache(t *testing.T) {
	cache := NewPlanCache()

	if _, ok := cache.Get(); ok {
		t.Fatal("empty cache should miss")
	}

	plans := []db_models.Plan{{Code: "basic"}, {Code: "pro"}}
	cache.Set(plans, time.Minute)

	got, ok := cache.Get()
	if !ok || len(got) != 2 {
		t.Fatalf("ok=%v len=%d, want hit with 2 plans", ok, len(got))
	}

	// Returned slice is a copy; mutating it must not poison the cache.
	got[0].Code = "mutated"
	got, _ = cache.Get()
	if got[0].Code != "basic" {
		t.Fatalf("cache poisoned: %s", got[0].Code)
	}

	cache.Invalidate()
	if _, ok := cache.Get(); ok {
		t.Fatal("invalidated cache should miss")
	}
}

func TestPlanCacheExpiry(t *testing.T) {
	cache := NewPlanCache()
	cache.Set([]db_models.Plan{{Code: "basic"}}, -time.Second)

	if _, ok := cache.Get(); ok {
		t.Fatal("expired entry should miss")
	}
}
