package assets

import (
	"context"
	"log"

	"github.com/examforge/booklet/internal/theme"
)

// GenericFallbackPath is tried after every theme-specific candidate.
const GenericFallbackPath = "themes/shared/default-background.png"

// Cache memoizes decoded backgrounds for one document build. The attempted
// set is sticky: a key that failed once is never re-fetched within the same
// build. Not safe for concurrent builds; the assembler creates one per build
// and resets it on the way out.
type Cache struct {
	fetcher   Fetcher
	entries   map[string]*Background
	attempted map[string]bool
	fetches   int // fetch calls issued, for tests and debug logs
}

func NewCache(f Fetcher) *Cache {
	return &Cache{
		fetcher:   f,
		entries:   map[string]*Background{},
		attempted: map[string]bool{},
	}
}

// Resolve returns the embeddable background for the theme, trying candidate
// paths in priority order: theme override first, family defaults next, the
// generic fallback last. ok=false means the caller draws plain white; the
// failure stays recorded so later pages skip the network entirely.
func (c *Cache) Resolve(ctx context.Context, cfg theme.Config) (*Background, bool) {
	candidates := append(append([]string{}, cfg.BackgroundPaths...), GenericFallbackPath)
	if len(cfg.BackgroundPaths) == 0 {
		// Theme explicitly has no background; do not chase the fallback.
		return nil, false
	}

	for _, path := range candidates {
		key := cfg.ID + "|" + path
		if bg, ok := c.entries[key]; ok {
			return bg, true
		}
		if c.attempted[key] {
			continue
		}
		c.attempted[key] = true

		if c.fetcher == nil {
			continue
		}
		c.fetches++
		raw, err := c.fetcher.Fetch(ctx, path)
		if err != nil {
			log.Printf("assets: fetch %s: %v", path, err)
			continue
		}
		bg, err := PrepareImage("bg-"+cfg.ID, raw)
		if err != nil {
			log.Printf("assets: %v", err)
			continue
		}
		c.entries[key] = bg
		return bg, true
	}
	return nil, false
}

// Fetches reports how many fetch calls this cache has issued.
func (c *Cache) Fetches() int { return c.fetches }

// Reset drops every entry and attempted mark. Called when a build finishes
// so no stale asset leaks into the next document.
func (c *Cache) Reset() {
	c.entries = map[string]*Background{}
	c.attempted = map[string]bool{}
	c.fetches = 0
}
