package middleware

import (
	"context"
	"sync"
	"time"
)

// MemoryWindowCounter keeps one fixed window per key in process memory.
// A key's count resets the first time it is seen after its window has
// elapsed; windows of different keys are independent.
type MemoryWindowCounter struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
	now     func() time.Time
}

type windowEntry struct {
	count       int64
	windowStart time.Time
}

type MemoryCounterOption func(*MemoryWindowCounter)

// WithClock replaces the time source, letting tests move a window
// boundary without sleeping.
func WithClock(now func() time.Time) MemoryCounterOption {
	return func(m *MemoryWindowCounter) { m.now = now }
}

func CreateMemoryCounter(opts ...MemoryCounterOption) *MemoryWindowCounter {
	m := &MemoryWindowCounter{
		entries: make(map[string]*windowEntry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MemoryWindowCounter) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	ent, ok := m.entries[key]
	if !ok || now.Sub(ent.windowStart) >= window {
		ent = &windowEntry{windowStart: now}
		m.entries[key] = ent
	}

	ent.count++
	return ent.count, nil
}
