// SPDX-License-Identifier: EPL-2.0

package hrtf

import "sync"

// Cache hands out one shared Entry per selection for the lifetime of a
// render pass. It is safe for concurrent use. Failed loads are not cached.
type Cache struct {
	loader   *Loader
	selector Selector

	mu      sync.Mutex
	entries map[Selection]*Entry
}

func NewCache(loader *Loader) *Cache {
	return &Cache{
		loader:   loader,
		selector: loader.Database().Selector(),
		entries:  make(map[Selection]*Entry),
	}
}

// Get returns the entry for a speaker at angle degrees, loading it on
// first use.
func (c *Cache) Get(angle float64) (*Entry, error) {
	sel := c.selector.Select(angle)

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[sel]; ok {
		return e, nil
	}

	e, err := c.loader.Load(sel)
	if err != nil {
		return nil, err
	}

	c.entries[sel] = e

	return e, nil
}

// Len is the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
