// Package battle runs a single battle session: one resource clock driven by
// a scheduler, plus the hand of cards the player can deploy from.
package battle

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-royale/internal/catalog"
	"github.com/vovakirdan/tui-royale/internal/clock"
	"github.com/vovakirdan/tui-royale/internal/sched"
)

var (
	ErrAlreadyStarted = errors.New("battle: session already started")
	ErrEnded          = errors.New("battle: session has ended")
	ErrHandSlot       = errors.New("battle: hand slot out of range")
)

// Config controls battle pacing.
type Config struct {
	Clock         clock.Config
	ResourceEvery time.Duration // Period of one resource regeneration
	TimerEvery    time.Duration // Period of one countdown second
	HandSize      int           // Cards drawn from the front of the deck
}

// DefaultConfig returns the standard pacing: +1 elixir every 2.8s and a
// three minute match.
func DefaultConfig() Config {
	return Config{
		Clock:         clock.DefaultConfig(),
		ResourceEvery: 2800 * time.Millisecond,
		TimerEvery:    time.Second,
		HandSize:      4,
	}
}

// Validate reports settings that cannot drive a session.
func (c Config) Validate() error {
	if err := c.Clock.Validate(); err != nil {
		return err
	}
	if c.ResourceEvery <= 0 || c.TimerEvery <= 0 {
		return fmt.Errorf("battle: tick periods must be positive (resource %v, timer %v)", c.ResourceEvery, c.TimerEvery)
	}
	if c.HandSize < 1 {
		return fmt.Errorf("battle: hand size %d, want >= 1", c.HandSize)
	}
	return nil
}

// EndReason describes why a session ended.
type EndReason int

const (
	EndReasonNone    EndReason = iota
	EndReasonTimeout           // Countdown reached zero
	EndReasonExit              // Host left the battle screen
)

func (r EndReason) String() string {
	switch r {
	case EndReasonNone:
		return "none"
	case EndReasonTimeout:
		return "timeout"
	case EndReasonExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only view of a session for the view layer.
type Snapshot struct {
	ID        string
	Clock     clock.ResourceState
	Remaining string // Countdown formatted as M:SS
	Hand      []catalog.Card
	Selected  int // Index into Hand, -1 if none
	Started   bool
	Ended     bool
	Reason    EndReason
}

// Session is one battle. It is driven from a single goroutine: the
// scheduler's callbacks and the host's intents must not run concurrently.
type Session struct {
	id       uuid.UUID
	cfg      Config
	clock    *clock.ResourceClock
	sched    sched.Scheduler
	subs     []sched.Subscription
	hand     []catalog.Card
	selected int
	started  bool
	ended    bool
	reason   EndReason
	done     chan struct{}
	logger   *log.Logger
}

// NewSession prepares a battle using the first cfg.HandSize cards of deck.
// A nil logger discards output.
func NewSession(cfg Config, s sched.Scheduler, deck []catalog.Card, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(deck) < cfg.HandSize {
		return nil, fmt.Errorf("battle: deck has %d cards, hand needs %d", len(deck), cfg.HandSize)
	}
	clk, err := clock.New(cfg.Clock)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	hand := make([]catalog.Card, cfg.HandSize)
	copy(hand, deck[:cfg.HandSize])

	id := uuid.New()
	return &Session{
		id:       id,
		cfg:      cfg,
		clock:    clk,
		sched:    s,
		hand:     hand,
		selected: -1,
		done:     make(chan struct{}),
		logger:   logger.With("session", id.String()),
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id.String()
}

// Start subscribes the clock to the scheduler.
func (s *Session) Start() error {
	switch {
	case s.ended:
		return ErrEnded
	case s.started:
		return ErrAlreadyStarted
	}
	s.started = true
	s.subs = append(s.subs,
		s.sched.Every(s.cfg.ResourceEvery, func() { s.TickResource() }),
		s.sched.Every(s.cfg.TimerEvery, func() { s.TickTimer() }),
	)
	s.logger.Info("battle started",
		"match", clock.FormatRemaining(s.clock.Remaining()),
		"resource", s.clock.Resource(),
	)
	if s.clock.State() == clock.Stopped {
		s.End(EndReasonTimeout)
	}
	return nil
}

// TickResource applies one regeneration tick.
func (s *Session) TickResource() int {
	r := s.clock.TickResource()
	s.logger.Debug("resource tick", "resource", r)
	return r
}

// TickTimer applies one countdown tick and ends the session at zero.
func (s *Session) TickTimer() int {
	remaining := s.clock.TickTimer()
	s.logger.Debug("timer tick", "remaining", remaining)
	if s.clock.State() == clock.Stopped && !s.ended {
		s.End(EndReasonTimeout)
	}
	return remaining
}

// End stops the clock and cancels every pending tick. Only the first call
// has an effect.
func (s *Session) End(reason EndReason) {
	if s.ended {
		return
	}
	s.ended = true
	s.reason = reason
	for _, sub := range s.subs {
		sub.Cancel()
	}
	s.subs = nil
	s.clock.Stop()
	close(s.done)

	s.logger.Info("battle ended",
		"reason", reason,
		"resource", s.clock.Resource(),
		"remaining", clock.FormatRemaining(s.clock.Remaining()),
	)
}

// Done is closed when the session ends.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Ended reports whether the session is over.
func (s *Session) Ended() bool {
	return s.ended
}

// SelectCard highlights hand card i, or clears the highlight if i is
// already selected.
func (s *Session) SelectCard(i int) error {
	if s.ended {
		return ErrEnded
	}
	if i < 0 || i >= len(s.hand) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrHandSlot, i, len(s.hand))
	}
	if s.selected == i {
		s.selected = -1
	} else {
		s.selected = i
	}
	return nil
}

// Selected returns the highlighted hand card.
func (s *Session) Selected() (catalog.Card, bool) {
	if s.selected < 0 {
		return catalog.Card{}, false
	}
	return s.hand[s.selected], true
}

// CanPlay reports whether the current resource covers hand card i.
// Nothing is deducted; deployment costs are not modelled.
func (s *Session) CanPlay(i int) bool {
	if i < 0 || i >= len(s.hand) {
		return false
	}
	return s.clock.CanAfford(s.hand[i].Cost)
}

// Snapshot returns the session state for display.
func (s *Session) Snapshot() Snapshot {
	hand := make([]catalog.Card, len(s.hand))
	copy(hand, s.hand)
	return Snapshot{
		ID:        s.ID(),
		Clock:     s.clock.Snapshot(),
		Remaining: clock.FormatRemaining(s.clock.Remaining()),
		Hand:      hand,
		Selected:  s.selected,
		Started:   s.started,
		Ended:     s.ended,
		Reason:    s.reason,
	}
}
