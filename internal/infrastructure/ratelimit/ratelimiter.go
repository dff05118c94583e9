package ratelimit

import "time"

// Limits is a sliding-window budget per key. A zero value disables that window.
type Limits struct {
	PerMinute int
	PerHour   int
	PerDay    int
}

type RateLimiter interface {
	Allow(key string, limits Limits) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}
