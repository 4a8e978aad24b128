package sched

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Realtime fires callbacks on wall-clock tickers. Each subscription owns a
// time.Ticker, but callbacks are funnelled through Run and execute on its
// goroutine only.
type Realtime struct {
	fire     chan *realtimeSub
	stop     chan struct{}
	stopOnce sync.Once
}

type realtimeSub struct {
	fn        func()
	cancelled atomic.Bool
	done      chan struct{}
	doneOnce  sync.Once
}

func (s *realtimeSub) Cancel() {
	s.cancelled.Store(true)
	s.doneOnce.Do(func() {
		close(s.done)
	})
}

// NewRealtime creates a wall-clock scheduler. Callbacks do not run until Run
// is called.
func NewRealtime() *Realtime {
	return &Realtime{
		fire: make(chan *realtimeSub),
		stop: make(chan struct{}),
	}
}

// Every implements Scheduler.
func (r *Realtime) Every(period time.Duration, fn func()) Subscription {
	checkPeriod(period)
	sub := &realtimeSub{
		fn:   fn,
		done: make(chan struct{}),
	}
	go r.drive(sub, period)
	return sub
}

// drive forwards ticks for one subscription until it or the scheduler ends.
// A tick that arrives while the previous one is still queued is dropped,
// matching time.Ticker semantics.
func (r *Realtime) drive(sub *realtimeSub, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			select {
			case r.fire <- sub:
			case <-sub.done:
				return
			case <-r.stop:
				return
			}
		case <-sub.done:
			return
		case <-r.stop:
			return
		}
	}
}

// Run executes due callbacks until ctx is done, then releases every ticker.
// Cancelling a subscription from inside a callback takes effect before the
// next callback is dispatched.
func (r *Realtime) Run(ctx context.Context) error {
	defer r.stopOnce.Do(func() {
		close(r.stop)
	})

	for {
		select {
		case sub := <-r.fire:
			if !sub.cancelled.Load() {
				sub.fn()
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

var _ Scheduler = (*Realtime)(nil)
