// Package poller keeps an in-memory collection fresh by re-fetching it on a
// fixed interval. Failures keep the last good collection, back off, and are
// reported through State instead of being swallowed.
package poller

import (
	"context"
	"errors"
	"sync"
	"time"

	"oraconsoleapi/pkg/logger"
	"oraconsoleapi/pkg/metrics"
)

// FetchFunc loads the full collection for param.
type FetchFunc[T any] func(ctx context.Context, param string) ([]T, error)

// Config configures a Poller.
type Config[T any] struct {
	Name     string
	Interval time.Duration
	Param    string
	Fetch    FetchFunc[T]
	Backoff  *Backoff
	// OnUpdate runs on the poll goroutine after every published attempt.
	OnUpdate func(State[T])
	Metrics  *metrics.Metrics
}

// State is a copy of what the poller currently holds.
type State[T any] struct {
	Items               []T       `json:"items"`
	Err                 error     `json:"-"`
	LastError           string    `json:"last_error,omitempty"`
	ConsecutiveFailures int       `json:"consecutive_failures"`
	LastSuccess         time.Time `json:"last_success"`
	LastAttempt         time.Time `json:"last_attempt"`
	Paused              bool      `json:"paused"`
	Param               string    `json:"param"`
}

// Stale reports whether Items are left over from before a failed fetch.
func (s State[T]) Stale() bool {
	return s.Err != nil && !s.LastSuccess.IsZero()
}

// Poller runs one fetch at a time. Ticks that fire while a fetch is in
// flight are coalesced into the next one.
type Poller[T any] struct {
	cfg Config[T]

	mu     sync.RWMutex
	state  State[T]
	paramV uint64

	kick      chan struct{}
	cancel    context.CancelFunc
	done      chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
}

// ErrNoFetch is returned by New when Config.Fetch is nil.
var ErrNoFetch = errors.New("poller: fetch function is required")

// New builds a poller. It does not fetch until Start.
func New[T any](cfg Config[T]) (*Poller[T], error) {
	if cfg.Fetch == nil {
		return nil, ErrNoFetch
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Second
	}
	if cfg.Backoff == nil {
		cfg.Backoff = DefaultBackoff()
	}
	if cfg.Name == "" {
		cfg.Name = "poller"
	}
	return &Poller[T]{
		cfg:   cfg,
		state: State[T]{Param: cfg.Param},
		kick:  make(chan struct{}, 1),
		done:  make(chan struct{}),
	}, nil
}

// Start launches the loop. The first fetch happens immediately. Calling
// Start more than once has no effect.
func (p *Poller[T]) Start(ctx context.Context) {
	p.startOnce.Do(func() {
		ctx, p.cancel = context.WithCancel(ctx)
		go p.run(ctx)
	})
}

// Stop cancels the in-flight fetch and waits for the loop to exit. A result
// that arrives after Stop is discarded. Safe to call repeatedly.
func (p *Poller[T]) Stop() {
	p.stopOnce.Do(func() {
		// Consumes startOnce so a later Start is a no-op.
		p.startOnce.Do(func() {})
		if p.cancel == nil {
			return
		}
		p.cancel()
		<-p.done
	})
}

// Pause stops scheduled fetches. Held data is kept, and SetParam or
// Refresh still fetch while paused.
func (p *Poller[T]) Pause() {
	p.mu.Lock()
	p.state.Paused = true
	p.mu.Unlock()
}

// Resume restarts scheduled fetches with an immediate refresh.
func (p *Poller[T]) Resume() {
	p.mu.Lock()
	p.state.Paused = false
	p.mu.Unlock()
	p.Refresh()
}

// SetParam switches the resource parameter and refetches immediately.
// A fetch already in flight for the old parameter is not published.
func (p *Poller[T]) SetParam(param string) {
	p.mu.Lock()
	if p.state.Param != param {
		p.state.Param = param
		p.paramV++
	}
	p.mu.Unlock()
	p.Refresh()
}

// Refresh requests a fetch as soon as the current one, if any, completes.
func (p *Poller[T]) Refresh() {
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

// Snapshot returns a copy of the current state.
func (p *Poller[T]) Snapshot() State[T] {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s := p.state
	s.Items = append([]T(nil), p.state.Items...)
	return s
}

// Derive applies a pure function to the current items, e.g. counts or a
// filtered view.
func Derive[T, D any](p *Poller[T], fn func([]T) D) D {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return fn(p.state.Items)
}

func (p *Poller[T]) run(ctx context.Context) {
	defer close(p.done)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		kicked := false
		select {
		case <-ctx.Done():
			return
		case <-p.kick:
			kicked = true
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		case <-timer.C:
		}

		// Pause only holds back the interval timer; explicit requests
		// (Refresh, SetParam, Resume) always fetch.
		if !kicked {
			p.mu.RLock()
			paused := p.state.Paused
			p.mu.RUnlock()
			if paused {
				continue
			}
		}

		wait := p.poll(ctx)
		if ctx.Err() != nil {
			return
		}
		timer.Reset(wait)
	}
}

// poll performs one fetch and returns the delay before the next one.
func (p *Poller[T]) poll(ctx context.Context) time.Duration {
	p.mu.RLock()
	param, version := p.state.Param, p.paramV
	p.mu.RUnlock()

	items, err := p.cfg.Fetch(ctx, param)
	if ctx.Err() != nil {
		return 0
	}

	p.mu.Lock()
	if version != p.paramV {
		p.mu.Unlock()
		logger.Debugf("%s: discarding result for superseded param %q", p.cfg.Name, param)
		return 0
	}
	now := time.Now()
	p.state.LastAttempt = now
	wait := p.cfg.Interval
	if err != nil {
		p.state.Err = err
		p.state.LastError = err.Error()
		p.state.ConsecutiveFailures++
		wait = p.cfg.Backoff.Duration()
	} else {
		p.state.Items = items
		p.state.Err = nil
		p.state.LastError = ""
		p.state.ConsecutiveFailures = 0
		p.state.LastSuccess = now
		p.cfg.Backoff.Reset()
	}
	failures := p.state.ConsecutiveFailures
	p.mu.Unlock()

	if err != nil {
		logger.Warnf("%s: fetch failed (%d consecutive), retrying in %v: %v", p.cfg.Name, failures, wait, err)
	}
	p.cfg.Metrics.SetPollerFailures(p.cfg.Name, failures)
	if p.cfg.OnUpdate != nil {
		p.cfg.OnUpdate(p.Snapshot())
	}
	return wait
}
