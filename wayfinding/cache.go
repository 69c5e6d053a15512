package wayfinding

import "sync"

// LegCache memoizes Planner.Plan per (start, end, wheelchair).
// Entries never expire.
type LegCache struct {
	planner *Planner
	maxSize int

	mu     sync.RWMutex
	routes map[string]Route
	hits   int
	misses int
}

// NewLegCache wraps p. maxSize <= 0 means unbounded.
func NewLegCache(p *Planner, maxSize int) *LegCache {
	return &LegCache{planner: p, maxSize: maxSize, routes: map[string]Route{}}
}

// Plan returns a copy of the cached route, computing it on a miss.
func (c *LegCache) Plan(t Trip) Route {
	key := t.key()
	c.mu.RLock()
	r, ok := c.routes[key]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return cloneRoute(r)
	}

	r = c.planner.Plan(t)
	c.mu.Lock()
	c.misses++
	if c.maxSize > 0 && len(c.routes) >= c.maxSize {
		// full: start over
		c.routes = map[string]Route{}
	}
	c.routes[key] = r
	c.mu.Unlock()
	return cloneRoute(r)
}

// Stats returns hit and miss counters.
func (c *LegCache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

func (c *LegCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.routes)
}

func cloneRoute(r Route) Route {
	legs := make([]Leg, len(r.Legs))
	copy(legs, r.Legs)
	r.Legs = legs
	return r
}
