package cache

// cache.go implements the CLI-side query cache. Queries store their responses
// under a key with one or more tags; mutations invalidate tags through a fixed
// mapping table, evicting every cached query carrying one of them.

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type Tag string

const (
	TagAuth       Tag = "Auth"
	TagBooks      Tag = "Books"
	TagShelves    Tag = "Shelves"
	TagCategories Tag = "Categories"
	TagMovies     Tag = "Movies"
)

// mutationInvalidations maps a mutation name to the tags it invalidates.
// Logout drops everything since the whole cache belongs to the session.
var mutationInvalidations = map[string][]Tag{
	"auth/register": {TagAuth},
	"auth/login":    {TagAuth},
	"auth/logout":   {TagAuth, TagBooks, TagShelves, TagCategories, TagMovies},

	"books/create": {TagBooks, TagShelves},
	"books/update": {TagBooks, TagShelves},
	"books/delete": {TagBooks, TagShelves},

	"movies/create":   {TagMovies, TagShelves},
	"movies/update":   {TagMovies, TagShelves},
	"movies/progress": {TagMovies},
	"movies/delete":   {TagMovies, TagShelves},

	"shelves/create": {TagShelves},
	"shelves/update": {TagShelves},
	"shelves/delete": {TagShelves, TagBooks, TagMovies},

	"categories/create": {TagCategories},
	"categories/delete": {TagCategories, TagBooks, TagMovies},
}

type entry struct {
	Data     json.RawMessage `json:"data"`
	Tags     []Tag           `json:"tags"`
	CachedAt time.Time       `json:"cached_at"`
}

// QueryCache is a tag-indexed response cache persisted between CLI runs.
type QueryCache struct {
	mu      sync.Mutex
	path    string
	maxAge  time.Duration
	Entries map[string]entry `json:"entries"`
}

// New loads the cache file if present; a missing or corrupt file just starts
// an empty cache.
func New(path string, maxAge time.Duration) *QueryCache {
	c := &QueryCache{
		path:    path,
		maxAge:  maxAge,
		Entries: make(map[string]entry),
	}
	if data, err := os.ReadFile(path); err == nil {
		var stored map[string]entry
		if json.Unmarshal(data, &stored) == nil {
			c.Entries = stored
		}
	}
	return c
}

// Get returns the cached payload for key, if present and fresh.
func (c *QueryCache) Get(key string, out any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.Entries[key]
	if !ok {
		return false
	}
	if c.maxAge > 0 && time.Since(e.CachedAt) > c.maxAge {
		delete(c.Entries, key)
		return false
	}
	return json.Unmarshal(e.Data, out) == nil
}

// Set stores a query result under the given tags.
func (c *QueryCache) Set(key string, value any, tags ...Tag) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	c.mu.Lock()
	c.Entries[key] = entry{Data: data, Tags: tags, CachedAt: time.Now()}
	c.mu.Unlock()
}

// InvalidateFor evicts every entry tagged by the named mutation.
func (c *QueryCache) InvalidateFor(mutation string) {
	tags, ok := mutationInvalidations[mutation]
	if !ok {
		return
	}
	c.Invalidate(tags...)
}

// Invalidate evicts every entry carrying any of the given tags.
func (c *QueryCache) Invalidate(tags ...Tag) {
	tagSet := make(map[Tag]bool, len(tags))
	for _, t := range tags {
		tagSet[t] = true
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.Entries {
		for _, t := range e.Tags {
			if tagSet[t] {
				delete(c.Entries, key)
				break
			}
		}
	}
}

// Save writes the cache back to disk. Errors are ignored; the cache is an
// optimization, not state.
func (c *QueryCache) Save() {
	c.mu.Lock()
	data, err := json.Marshal(c.Entries)
	c.mu.Unlock()
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return
	}
	_ = os.WriteFile(c.path, data, 0o600)
}

// Len reports the number of live entries.
func (c *QueryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.Entries)
}
