package main

import (
	"sync"
	"time"
)

// joinLimiter caps fresh joins per IP with a fixed 60-second bucket.
// Reconnections bypass the limiter entirely.
type joinLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	seen   map[string]*joinBucket
}

type joinBucket struct {
	start time.Time
	count int
}

func newJoinLimiter(limit int, window time.Duration) *joinLimiter {
	return &joinLimiter{
		limit:  limit,
		window: window,
		seen:   map[string]*joinBucket{},
	}
}

func (l *joinLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.prune(now)

	b := l.seen[ip]
	if b == nil || now.Sub(b.start) >= l.window {
		l.seen[ip] = &joinBucket{start: now, count: 1}
		return true
	}
	if b.count >= l.limit {
		return false
	}
	b.count++
	return true
}

// prune drops expired buckets so the map does not grow with every IP ever
// seen.
func (l *joinLimiter) prune(now time.Time) {
	for ip, b := range l.seen {
		if now.Sub(b.start) >= l.window {
			delete(l.seen, ip)
		}
	}
}
