package mem

import (
	"sync"
	"time"

	"thumbforge/internal/models/db_models"
)

// PlanCache keeps the active plan catalog in process memory. The catalog is
// tiny and changes rarely, so a TTL map is enough.
type PlanCache struct {
	mu        sync.RWMutex
	plans     []db_models.Plan
	expiresAt time.Time
}

func NewPlanCache() *PlanCache {
	return &PlanCache{}
}

func (c *PlanCache) Get() ([]db_models.Plan, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.plans == nil || time.Now().After(c.expiresAt) {
		return nil, false
	}
	out := make([]db_models.Plan, len(c.plans))
	copy(out, c.plans)
	return out, true
}

func (c *PlanCache) Set(plans []db_models.Plan, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.plans = make([]db_models.Plan, len(plans))
	copy(c.plans, plans)
	c.expiresAt = time.Now().Add(ttl)
}

// Invalidate drops the cached catalog, forcing the next read through.
func (c *PlanCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.plans = nil
}
