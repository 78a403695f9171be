// Package cached adds a write-through expirable LRU in front of any document backend.
package cached

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/PetCalendar_Go/internal/database"
	"github.com/osse101/PetCalendar_Go/internal/metrics"
)

// CacheSchemaVersion is bumped when the cached document layout changes so
// old entries are ignored.
const CacheSchemaVersion = "1.0"

type cacheEntry struct {
	version string
	body    []byte
}

// Stats reports cache occupancy.
type Stats struct {
	Size int `json:"size"`
}

// Documents caches reads of an underlying backend. Writes go to the
// backend first and then refresh the cache.
type Documents struct {
	next database.Documents
	lru  *expirable.LRU[string, *cacheEntry]
}

// New wraps next with a cache of the given size and TTL.
func New(next database.Documents, size int, ttl time.Duration) *Documents {
	return &Documents{
		next: next,
		lru:  expirable.NewLRU[string, *cacheEntry](size, nil, ttl),
	}
}

func cacheKey(userID string, kind database.Kind) string {
	return string(kind) + ":" + userID
}

func (d *Documents) Get(ctx context.Context, userID string, kind database.Kind) ([]byte, error) {
	key := cacheKey(userID, kind)
	if entry, ok := d.lru.Get(key); ok {
		if entry.version == CacheSchemaVersion {
			metrics.StoreCacheRequests.WithLabelValues(string(kind), metrics.ResultHit).Inc()
			return append([]byte(nil), entry.body...), nil
		}
		d.lru.Remove(key)
	}
	metrics.StoreCacheRequests.WithLabelValues(string(kind), metrics.ResultMiss).Inc()

	body, err := d.next.Get(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	d.set(key, body)
	return body, nil
}

func (d *Documents) Put(ctx context.Context, userID string, kind database.Kind, body []byte) error {
	key := cacheKey(userID, kind)
	if err := d.next.Put(ctx, userID, kind, body); err != nil {
		d.lru.Remove(key)
		return err
	}
	d.set(key, body)
	return nil
}

func (d *Documents) set(key string, body []byte) {
	d.lru.Add(key, &cacheEntry{
		version: CacheSchemaVersion,
		body:    append([]byte(nil), body...),
	})
}

// Invalidate drops one cached document.
func (d *Documents) Invalidate(userID string, kind database.Kind) {
	d.lru.Remove(cacheKey(userID, kind))
}

// Stats returns the number of cached documents.
func (d *Documents) Stats() Stats {
	return Stats{Size: d.lru.Len()}
}

func (d *Documents) Ping(ctx context.Context) error {
	return d.next.Ping(ctx)
}

func (d *Documents) Close() error {
	d.lru.Purge()
	return d.next.Close()
}
