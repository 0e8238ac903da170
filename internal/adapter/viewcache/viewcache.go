// Package viewcache deduplicates question views per viewer inside a time
// window using an in-process expirable LRU.
package viewcache

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultSize   = 100_000
	defaultWindow = 30 * time.Minute
)

// Cache remembers which viewer has seen which question recently.
// It is safe for concurrent use.
type Cache struct {
	mu   sync.Mutex
	seen *expirable.LRU[string, struct{}]
}

// New creates a Cache holding at most size entries, each for window.
// Non-positive arguments fall back to defaults.
func New(size int, window time.Duration) *Cache {
	if size <= 0 {
		size = defaultSize
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &Cache{
		seen: expirable.NewLRU[string, struct{}](size, nil, window),
	}
}

// IncrementIfNotDuplicate reports whether the view should be counted: true
// the first time viewerKey sees questionID within the window. An empty
// viewerKey is never deduplicated.
func (c *Cache) IncrementIfNotDuplicate(questionID uuid.UUID, viewerKey string) bool {
	if viewerKey == "" {
		return true
	}
	key := questionID.String() + "|" + viewerKey

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.seen.Peek(key); ok {
		return false
	}
	c.seen.Add(key, struct{}{})
	return true
}

// Len returns the number of remembered views.
func (c *Cache) Len() int {
	return c.seen.Len()
}
