// Package cache keeps extracted workbooks in memory for the life of the process.
//
// Entries are keyed by the path string exactly as the caller supplied it: no
// cleaning, symlink resolution or case folding is applied, so two spellings of
// the same file are two entries. Entries are never evicted or refreshed; a file
// changed on disk after it was cached keeps its cached content.
package cache

import (
	"sync"
	"sync/atomic"

	"github.com/ukaji3/excelpreview-go/pkg/excelpreview/models"
	"github.com/ukaji3/excelpreview-go/pkg/locking"
)

// Stats is a snapshot of cache counters.
type Stats struct {
	Entries int
	Hits    int64
	Misses  int64
}

// Cache maps file paths to extracted workbooks.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*models.Workbook
	group   locking.Group

	hits   atomic.Int64
	misses atomic.Int64
}

// New creates an empty cache. group serializes loads per path; nil means no locking.
func New(group locking.Group) *Cache {
	if group == nil {
		group = locking.NewNoOpGroup()
	}
	return &Cache{
		entries: make(map[string]*models.Workbook),
		group:   group,
	}
}

// Get returns the workbook cached for path.
func (c *Cache) Get(path string) (*models.Workbook, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	wb, ok := c.entries[path]
	return wb, ok
}

// Put stores wb under path, replacing any existing entry.
func (c *Cache) Put(path string, wb *models.Workbook) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = wb
}

// Delete removes the entry for path and reports whether one existed.
func (c *Cache) Delete(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[path]
	delete(c.entries, path)
	return ok
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the current counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Entries: c.Len(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}

// GetOrLoad returns the cached workbook for path, or calls load and caches its
// result. Lookup, load and insert for one path run under the cache's locking
// group, so concurrent callers trigger at most one load. The hit result is false only for
// the caller whose load ran; callers sharing that result count as hits.
// Failed loads are not cached and count as misses.
func (c *Cache) GetOrLoad(path string, load func() (*models.Workbook, error)) (*models.Workbook, bool, error) {
	loaded := false
	v, err := c.group.DoWithLock(path, func() (interface{}, error) {
		if wb, ok := c.Get(path); ok {
			return wb, nil
		}
		loaded = true
		wb, err := load()
		if err != nil {
			return nil, err
		}
		c.Put(path, wb)
		return wb, nil
	})
	if err != nil {
		c.misses.Add(1)
		return nil, false, err
	}

	if loaded {
		c.misses.Add(1)
	} else {
		c.hits.Add(1)
	}
	return v.(*models.Workbook), !loaded, nil
}
