// Package clock implements the battle pacing clock: a regenerating,
// capped resource (elixir) and a match countdown that only moves down.
//
// The clock has no notion of wall time. Callers advance it by invoking
// TickResource and TickTimer; see package sched for the ticking sources.
package clock

import "fmt"

// State is the lifecycle state of a ResourceClock.
type State int

const (
	Running State = iota
	Stopped
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Stopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Config sets the bounds and starting values of a clock.
type Config struct {
	MaxResource   int // Resource cap (10 elixir)
	StartResource int // Resource at battle start
	MatchSeconds  int // Countdown start in seconds
}

// DefaultConfig returns the standard battle values.
func DefaultConfig() Config {
	return Config{
		MaxResource:   10,
		StartResource: 10,
		MatchSeconds:  180,
	}
}

// Validate reports a configuration that would break the clock invariants.
func (c Config) Validate() error {
	switch {
	case c.MaxResource < 0:
		return fmt.Errorf("clock: max resource %d is negative", c.MaxResource)
	case c.StartResource < 0 || c.StartResource > c.MaxResource:
		return fmt.Errorf("clock: start resource %d outside [0, %d]", c.StartResource, c.MaxResource)
	case c.MatchSeconds < 0:
		return fmt.Errorf("clock: match seconds %d is negative", c.MatchSeconds)
	}
	return nil
}

// ResourceState is a read-only snapshot of the clock counters.
type ResourceState struct {
	Resource              int
	MaxResource           int
	MatchSecondsRemaining int
	State                 State
}

// ResourceClock tracks one battle's resource and countdown.
// It is not safe for concurrent use; a single scheduler drives it.
type ResourceClock struct {
	max       int
	resource  int
	remaining int
	state     State
}

// New creates a running clock from cfg.
func New(cfg Config) (*ResourceClock, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &ResourceClock{
		max:       cfg.MaxResource,
		resource:  cfg.StartResource,
		remaining: cfg.MatchSeconds,
		state:     Running,
	}
	if c.remaining == 0 {
		c.state = Stopped
	}
	return c, nil
}

// TickResource regenerates one unit of resource, saturating at the cap.
// Returns the resource after the tick. No-op once stopped.
func (c *ResourceClock) TickResource() int {
	if c.state == Running && c.resource < c.max {
		c.resource++
	}
	return c.resource
}

// TickTimer counts the match down by one second, never below zero.
// Reaching zero stops the clock. Returns the remaining seconds.
func (c *ResourceClock) TickTimer() int {
	if c.state != Running {
		return c.remaining
	}
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining == 0 {
		c.state = Stopped
	}
	return c.remaining
}

// Stop ends the clock. Later ticks have no effect.
func (c *ResourceClock) Stop() {
	c.state = Stopped
}

// State returns the lifecycle state.
func (c *ResourceClock) State() State {
	return c.state
}

// Resource returns the current resource.
func (c *ResourceClock) Resource() int {
	return c.resource
}

// Remaining returns the seconds left in the match.
func (c *ResourceClock) Remaining() int {
	return c.remaining
}

// CanAfford reports whether the current resource covers cost.
// A negative cost is a caller bug and panics.
func (c *ResourceClock) CanAfford(cost int) bool {
	if cost < 0 {
		panic(fmt.Sprintf("clock: negative cost %d", cost))
	}
	return c.resource >= cost
}

// Snapshot returns the current counters.
func (c *ResourceClock) Snapshot() ResourceState {
	return ResourceState{
		Resource:              c.resource,
		MaxResource:           c.max,
		MatchSecondsRemaining: c.remaining,
		State:                 c.state,
	}
}
