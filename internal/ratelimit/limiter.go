// Package ratelimit implements fixed-window request limiting keyed by an
// arbitrary string, backed by Redis for multi-instance deployments or by
// process memory otherwise.
package ratelimit

import (
	"context"
	"time"
)

// Limiter decides whether one more request under key fits in the current window.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// Result describes the state of the window after the request was counted.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Config bounds requests to Limit per Window. A non-positive Limit disables limiting.
type Config struct {
	Limit     int
	Window    time.Duration
	KeyPrefix string
}

func windowStart(now time.Time, window time.Duration) time.Time {
	return now.Truncate(window)
}

func result(cfg Config, count int, start time.Time) Result {
	return Result{
		Allowed:   count <= cfg.Limit,
		Limit:     cfg.Limit,
		Remaining: max(cfg.Limit-count, 0),
		ResetAt:   start.Add(cfg.Window),
	}
}

type unlimited struct{}

// Unlimited returns a limiter that allows everything.
func Unlimited() Limiter {
	return unlimited{}
}

func (unlimited) Allow(context.Context, string) (Result, error) {
	return Result{Allowed: true}, nil
}
