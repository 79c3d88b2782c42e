// Package ratelimit implements the admission gate shared by every transport.
//
// A single token bucket holds at most Capacity tokens and is refilled
// continuously at RefillTokens per RefillInterval. Callers take tokens with
// TryConsume, which either grants them immediately or reports how long the
// caller has to wait. A refused call never holds tokens.
package ratelimit

import (
	"errors"
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ErrInvalidBucket is returned by NewGate for non-positive parameters.
var ErrInvalidBucket = errors.New("bucket capacity, refill tokens and refill interval must be positive")

// Limiter is the admission contract consumed by the transports.
type Limiter interface {
	TryConsume(n int) Probe
}

// Probe is the outcome of a TryConsume call.
type Probe struct {
	// Allowed reports whether the tokens were taken.
	Allowed bool

	// Remaining is the number of whole tokens left in the bucket.
	Remaining int

	// Wait is the minimum time until the requested tokens become available.
	// Zero when Allowed.
	Wait time.Duration
}

// RetryAfterSeconds returns Wait rounded up to whole seconds, at least 1.
func (p Probe) RetryAfterSeconds() int64 {
	seconds := int64(math.Ceil(p.Wait.Seconds()))
	if seconds < 1 {
		return 1
	}
	return seconds
}

// Gate is a process-wide token bucket backed by [rate.Limiter].
// It is safe for concurrent use.
type Gate struct {
	mu       sync.Mutex
	limiter  *rate.Limiter
	capacity int
	now      func() time.Time
}

// Option configures a Gate.
type Option func(*Gate)

// WithClock replaces time.Now as the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) { g.now = now }
}

// NewGate builds a full bucket of capacity tokens refilled by refillTokens
// every refillInterval.
func NewGate(capacity, refillTokens int, refillInterval time.Duration, opts ...Option) (*Gate, error) {
	if capacity <= 0 || refillTokens <= 0 || refillInterval <= 0 {
		return nil, ErrInvalidBucket
	}

	perSecond := rate.Limit(float64(refillTokens) / refillInterval.Seconds())
	g := &Gate{
		limiter:  rate.NewLimiter(perSecond, capacity),
		capacity: capacity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// TryConsume atomically takes n tokens if they are available. Otherwise the
// bucket is left untouched and the returned Probe carries the wait time.
// A request for more than the capacity can never succeed; its wait is the
// time needed to refill the whole capacity.
func (g *Gate) TryConsume(n int) Probe {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()

	if n <= 0 {
		return Probe{Allowed: true, Remaining: g.remaining(now)}
	}

	if n > g.capacity {
		return Probe{
			Remaining: g.remaining(now),
			Wait:      g.durationFor(float64(g.capacity)),
		}
	}

	reservation := g.limiter.ReserveN(now, n)
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return Probe{Remaining: g.remaining(now), Wait: delay}
	}

	return Probe{Allowed: true, Remaining: g.remaining(now)}
}

func (g *Gate) remaining(now time.Time) int {
	tokens := g.limiter.TokensAt(now)
	if tokens < 0 {
		return 0
	}
	return int(math.Floor(tokens))
}

func (g *Gate) durationFor(tokens float64) time.Duration {
	return time.Duration(tokens / float64(g.limiter.Limit()) * float64(time.Second))
}
