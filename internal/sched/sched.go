// Package sched provides the periodic trigger sources that drive battle
// sessions. A session subscribes callbacks with Every and cancels the
// returned Subscription on teardown; a cancelled subscription never fires
// again.
//
// Both implementations run callbacks one at a time, so a subscriber never
// needs locking against its own ticks.
package sched

import (
	"fmt"
	"time"
)

// Scheduler delivers periodic callbacks.
type Scheduler interface {
	// Every calls fn once per period until the subscription is cancelled.
	// The first call happens one full period after subscribing.
	Every(period time.Duration, fn func()) Subscription
}

// Subscription is a handle to a periodic callback.
type Subscription interface {
	// Cancel stops further callbacks. Safe to call more than once.
	Cancel()
}

func checkPeriod(period time.Duration) {
	if period <= 0 {
		panic(fmt.Sprintf("sched: non-positive period %v", period))
	}
}
