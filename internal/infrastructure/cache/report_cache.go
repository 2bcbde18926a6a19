package cache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/hostelops/backend/internal/application/accounts"
)

// keyPrefix namespaces every report cache entry
const keyPrefix = "report:"

// hostelSegment extracts the "h=" component of a report cache key.
// Keys are of the form "report:<kind>:h=<uuid>;s=...;e=...;q=...".
func hostelSegment(key string) string {
	idx := strings.Index(key, "h=")
	if idx < 0 {
		return ""
	}
	rest := key[idx+2:]
	if end := strings.IndexByte(rest, ';'); end >= 0 {
		return rest[:end]
	}
	return rest
}

// keyCoversHostel reports whether a cached entry could include data for the
// hostel. An entry with an empty hostel segment spans all hostels and is
// always covered.
func keyCoversHostel(key, hostelID string) bool {
	segment := hostelSegment(key)
	return segment == "" || segment == hostelID
}

// InMemoryReportCache implements accounts.ReportCache with a local map.
// Suitable for single-instance deployments and tests.
type InMemoryReportCache struct {
	mu      sync.RWMutex
	entries map[string]inMemoryEntry
}

type inMemoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// NewInMemoryReportCache creates a new in-memory report cache
func NewInMemoryReportCache() *InMemoryReportCache {
	return &InMemoryReportCache{
		entries: make(map[string]inMemoryEntry),
	}
}

// Get loads a cached payload into dest; ok is false on miss or expiry
func (c *InMemoryReportCache) Get(ctx context.Context, key string, dest any) bool {
	c.mu.RLock()
	entry, found := c.entries[keyPrefix+key]
	c.mu.RUnlock()

	if !found {
		return false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, keyPrefix+key)
		c.mu.Unlock()
		return false
	}

	return json.Unmarshal(entry.payload, dest) == nil
}

// Set stores a payload under key for at most ttl
func (c *InMemoryReportCache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}

	c.mu.Lock()
	c.entries[keyPrefix+key] = inMemoryEntry{
		payload:   payload,
		expiresAt: time.Now().Add(ttl),
	}
	c.mu.Unlock()
}

// InvalidateHostel drops every cached report that could include data for the
// hostel, including all-hostel entries
func (c *InMemoryReportCache) InvalidateHostel(ctx context.Context, hostelID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if keyCoversHostel(key, hostelID) {
			delete(c.entries, key)
		}
	}
}

// Len returns the number of live entries (for tests)
func (c *InMemoryReportCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var _ accounts.ReportCache = (*InMemoryReportCache)(nil)
