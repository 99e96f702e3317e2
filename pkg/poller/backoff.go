package poller

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Backoff implements bounded jittered exponential backoff between failed
// fetches.
type Backoff struct {
	Min    time.Duration
	Max    time.Duration
	Factor float64
	Jitter float64 // fraction for ±jitter (0.25 = ±25%)

	attempt int
	mu      sync.Mutex
}

// DefaultBackoff starts at 1s and caps at one minute.
func DefaultBackoff() *Backoff {
	return &Backoff{
		Min:    time.Second,
		Max:    time.Minute,
		Factor: 2.0,
		Jitter: 0.25,
	}
}

// Duration returns the next wait and advances the attempt counter.
func (b *Backoff) Duration() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()

	d := float64(b.Min) * math.Pow(b.Factor, float64(b.attempt))
	if d > float64(b.Max) {
		d = float64(b.Max)
	}
	if b.Jitter > 0 {
		d += d * b.Jitter * (2*rand.Float64() - 1)
	}
	d = math.Max(float64(b.Min), math.Min(d, float64(b.Max)))

	b.attempt++
	return time.Duration(d)
}

// Reset is called after a successful fetch.
func (b *Backoff) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.attempt = 0
}

// Attempt returns the number of failures since the last Reset.
func (b *Backoff) Attempt() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.attempt
}
