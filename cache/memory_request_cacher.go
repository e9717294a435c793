package cache

import (
	"context"
	"sync"
)

// MemoryRequestCacher is the in-process fallback used when no Redis is
// configured.
type MemoryRequestCacher struct {
	mu        sync.Mutex
	entries   map[string][]string
	MaxNumber int
}

func CreateMemoryCache(maxNumber int) *MemoryRequestCacher {
	return &MemoryRequestCacher{
		entries:   make(map[string][]string),
		MaxNumber: maxNumber,
	}
}

func (cacher *MemoryRequestCacher) Write(_ context.Context, key string, value []byte) error {
	cacher.mu.Lock()
	defer cacher.mu.Unlock()

	list := append([]string{string(value)}, cacher.entries[key]...)
	if len(list) > cacher.MaxNumber {
		list = list[:cacher.MaxNumber]
	}
	cacher.entries[key] = list
	return nil
}

func (cacher *MemoryRequestCacher) Read(_ context.Context, key string) ([]string, error) {
	cacher.mu.Lock()
	defer cacher.mu.Unlock()

	list := cacher.entries[key]
	out := make([]string, len(list))
	copy(out, list)
	return out, nil
}
