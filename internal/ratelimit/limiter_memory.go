package ratelimit

import (
	"context"
	"sync"
	"time"
)

type memoryWindow struct {
	start time.Time
	count int
}

type memoryLimiter struct {
	cfg Config
	now func() time.Time

	mu      sync.Mutex
	windows map[string]memoryWindow
	// current is the window start the map was last swept for.
	current time.Time
}

// NewMemoryLimiter keeps counters in process memory. Expired windows are
// swept once per window rollover.
func NewMemoryLimiter(cfg Config) Limiter {
	if cfg.Limit <= 0 {
		return Unlimited()
	}
	return &memoryLimiter{cfg: cfg, now: time.Now, windows: make(map[string]memoryWindow)}
}

func (l *memoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	start := windowStart(l.now(), l.cfg.Window)

	l.mu.Lock()
	defer l.mu.Unlock()

	if start.After(l.current) {
		l.sweepLocked(start)
	}

	w := l.windows[key]
	if !w.start.Equal(start) {
		w = memoryWindow{start: start}
	}
	w.count++
	l.windows[key] = w

	return result(l.cfg, w.count, start), nil
}

func (l *memoryLimiter) sweepLocked(start time.Time) {
	for k, w := range l.windows {
		if w.start.Before(start) {
			delete(l.windows, k)
		}
	}
	l.current = start
}
