package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryEmbeddingCache is a simple in-process embedding cache with
// expiration, used when Redis is not configured.
type MemoryEmbeddingCache struct {
	mu    sync.RWMutex
	items map[string]*memoryItem
	ttl   time.Duration
}

type memoryItem struct {
	vector     []float64
	expireTime time.Time
}

// NewMemoryEmbeddingCache creates a new in-memory cache
func NewMemoryEmbeddingCache(ttl time.Duration) *MemoryEmbeddingCache {
	store := &MemoryEmbeddingCache{
		items: make(map[string]*memoryItem),
		ttl:   ttl,
	}

	// Cleanup goroutine removes expired items
	go store.cleanupExpired()

	return store
}

// Get retrieves a cached vector
func (ms *MemoryEmbeddingCache) Get(_ context.Context, key string) ([]float64, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	item, exists := ms.items[key]
	if !exists {
		return nil, false
	}

	if time.Now().After(item.expireTime) {
		return nil, false
	}

	return item.vector, true
}

// Set stores a vector with the cache TTL
func (ms *MemoryEmbeddingCache) Set(_ context.Context, key string, vector []float64) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.items[key] = &memoryItem{
		vector:     vector,
		expireTime: time.Now().Add(ms.ttl),
	}
}

// cleanupExpired periodically removes expired items
func (ms *MemoryEmbeddingCache) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ms.mu.Lock()
		now := time.Now()
		for key, item := range ms.items {
			if now.After(item.expireTime) {
				delete(ms.items, key)
			}
		}
		ms.mu.Unlock()
	}
}
