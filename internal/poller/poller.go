// Package poller invokes a callback at a fixed interval while a session is
// running
package poller

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the refresh rate of the elapsed time display.
const DefaultInterval = time.Second

// Poller runs at most one periodic callback at a time. The zero value is not
// usable; create one with New.
type Poller struct {
	cancel   context.CancelFunc
	done     chan struct{}
	interval time.Duration
	mu       sync.Mutex
}

// New returns an idle poller. A non-positive interval selects
// DefaultInterval.
func New(interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Poller{
		interval: interval,
	}
}

// Active reports whether a periodic callback is currently scheduled.
func (p *Poller) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.cancel != nil
}

// Start begins invoking callback once per interval. It reports false and
// does nothing if the poller is already active.
//
// The callback runs on the poller's goroutine. It must not block on the
// goroutine that calls Stop, since Stop waits for an in-flight callback to
// return.
func (p *Poller) Start(callback func()) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	p.cancel = cancel
	p.done = done

	go p.loop(ctx, done, callback)

	return true
}

// Stop cancels the periodic callback and waits for the ticking goroutine to
// exit. The callback is never invoked after Stop returns. Calling Stop on an
// idle poller is a no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}

func (p *Poller) loop(ctx context.Context, done chan struct{}, callback func()) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// a tick and a cancellation may be ready at the same time
			if ctx.Err() != nil {
				return
			}

			callback()
		}
	}
}
