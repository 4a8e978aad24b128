package sched

import "time"

// Manual is a simulated scheduler. Time only moves when Advance is called,
// and due callbacks run on the caller's goroutine in time order.
// Callbacks due at the same instant run in subscription order.
//
// The terminal host feeds frame deltas into Advance; tests use it to step
// battles deterministically.
type Manual struct {
	now  time.Duration
	seq  uint64
	subs []*manualSub
}

type manualSub struct {
	period    time.Duration
	next      time.Duration
	seq       uint64
	fn        func()
	cancelled bool
}

func (s *manualSub) Cancel() {
	s.cancelled = true
}

// NewManual creates a simulated scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Every implements Scheduler.
func (m *Manual) Every(period time.Duration, fn func()) Subscription {
	checkPeriod(period)
	m.seq++
	sub := &manualSub{
		period: period,
		next:   m.now + period,
		seq:    m.seq,
		fn:     fn,
	}
	m.subs = append(m.subs, sub)
	return sub
}

// Now returns the simulated time elapsed since creation.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of live subscriptions.
func (m *Manual) Pending() int {
	m.prune()
	return len(m.subs)
}

// Advance moves simulated time forward by d, firing every callback that
// falls due. Returns how many callbacks ran.
func (m *Manual) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := m.now + d
	fired := 0
	for {
		sub := m.nextDue(target)
		if sub == nil {
			break
		}
		m.now = sub.next
		sub.next += sub.period
		sub.fn()
		fired++
	}
	m.now = target
	m.prune()
	return fired
}

// nextDue picks the earliest live subscription due at or before target.
func (m *Manual) nextDue(target time.Duration) *manualSub {
	var best *manualSub
	for _, s := range m.subs {
		if s.cancelled || s.next > target {
			continue
		}
		if best == nil || s.next < best.next || (s.next == best.next && s.seq < best.seq) {
			best = s
		}
	}
	return best
}

func (m *Manual) prune() {
	live := m.subs[:0]
	for _, s := range m.subs {
		if !s.cancelled {
			live = append(live, s)
		}
	}
	for i := len(live); i < len(m.subs); i++ {
		m.subs[i] = nil
	}
	m.subs = live
}

var _ Scheduler = (*Manual)(nil)
