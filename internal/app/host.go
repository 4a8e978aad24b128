// Package app composes the deck editor and battle sessions behind a single
// intent dispatcher. The terminal host and the CLI talk to the core only
// through Host.
package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-royale/internal/battle"
	"github.com/vovakirdan/tui-royale/internal/catalog"
	"github.com/vovakirdan/tui-royale/internal/deck"
	"github.com/vovakirdan/tui-royale/internal/sched"
)

var (
	ErrNoBattle      = errors.New("app: no battle in progress")
	ErrBattleRunning = errors.New("app: battle already in progress")
	ErrUnknownIntent = errors.New("app: unknown intent")
)

// Host owns the deck composer and at most one battle session at a time.
// Dispatch must be called from a single goroutine, the same one that drives
// the scheduler.
type Host struct {
	composer *deck.Composer
	sched    sched.Scheduler
	battle   battle.Config
	session  *battle.Session
	logger   *log.Logger
}

// NewHost creates a host. Battles started through it subscribe to s.
// A nil logger discards output.
func NewHost(composer *deck.Composer, s sched.Scheduler, cfg battle.Config, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Host{
		composer: composer,
		sched:    s,
		battle:   cfg,
		logger:   logger,
	}
}

// Composer exposes the deck editor for read-only views.
func (h *Host) Composer() *deck.Composer {
	return h.composer
}

// Session returns the current battle, if one was started and not replaced.
func (h *Host) Session() (*battle.Session, bool) {
	return h.session, h.session != nil
}

// Dispatch applies one intent.
func (h *Host) Dispatch(in Intent) error {
	err := h.dispatch(in)
	if err != nil {
		h.logger.Debug("intent rejected", "intent", in, "error", err)
	}
	return err
}

func (h *Host) dispatch(in Intent) error {
	switch in := in.(type) {
	case SelectDeck:
		return h.composer.SelectDeck(in.ID)
	case BeginSlotEdit:
		return h.composer.BeginSlotEdit(in.Slot)
	case CompleteSlotEdit:
		card, ok := h.composer.Catalog().Get(in.Card)
		if !ok {
			return fmt.Errorf("%w: card %d", deck.ErrUnknownCard, in.Card)
		}
		return h.composer.CompleteSlotEdit(card)
	case CancelSlotEdit:
		h.composer.CancelSlotEdit()
		return nil
	case UseDeck:
		h.composer.UseDeck()
		h.logger.Info("deck activated", "deck", h.composer.Current().Name)
		return nil
	case StartBattle:
		return h.startBattle()
	case EndBattle:
		if h.session == nil {
			return ErrNoBattle
		}
		h.session.End(battle.EndReasonExit)
		return nil
	case SelectHandCard:
		if h.session == nil {
			return ErrNoBattle
		}
		return h.session.SelectCard(in.Index)
	case TickResource:
		if h.running() {
			h.session.TickResource()
		}
		return nil
	case TickTimer:
		if h.running() {
			h.session.TickTimer()
		}
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnknownIntent, in)
	}
}

func (h *Host) running() bool {
	return h.session != nil && !h.session.Ended()
}

// startBattle draws the hand from the active deck, falling back to the deck
// being edited when none is active.
func (h *Host) startBattle() error {
	if h.running() {
		return ErrBattleRunning
	}

	d, ok := h.composer.Decks().Active()
	if !ok {
		d = h.composer.Current()
	}
	cards := make([]catalog.Card, 0, deck.Size)
	for _, id := range d.Slots {
		c, _ := h.composer.Catalog().Get(id)
		cards = append(cards, c)
	}

	s, err := battle.NewSession(h.battle, h.sched, cards, h.logger)
	if err != nil {
		return err
	}
	if err := s.Start(); err != nil {
		return err
	}
	h.session = s
	return nil
}
