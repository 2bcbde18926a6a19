package accounts

import (
	"context"
	"time"
)

// ReportCache caches shaped report payloads keyed by the full filter tuple.
// Implementations must treat a miss and a backend failure the same way:
// return ok=false and let the caller recompute.
type ReportCache interface {
	// Get loads a cached payload into dest; ok is false on miss
	Get(ctx context.Context, key string, dest any) (ok bool)

	// Set stores a payload under key for at most ttl
	Set(ctx context.Context, key string, value any, ttl time.Duration)

	// InvalidateHostel drops every cached report that could include data
	// for the hostel; a nil-scope write (no hostel) drops everything
	InvalidateHostel(ctx context.Context, hostelID string)
}

// nopCache satisfies ReportCache when caching is disabled
type nopCache struct{}

// NewNopReportCache returns a cache that never hits
func NewNopReportCache() ReportCache { return nopCache{} }

func (nopCache) Get(context.Context, string, any) bool           { return false }
func (nopCache) Set(context.Context, string, any, time.Duration) {}
func (nopCache) InvalidateHostel(context.Context, string)        {}
