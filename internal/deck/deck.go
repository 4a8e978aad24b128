// Package deck owns the player's 8-card decks: the collection, the slot
// editor and the statistics shown on the deck builder screen.
package deck

import (
	"fmt"

	"github.com/vovakirdan/tui-royale/internal/catalog"
)

// Size is the fixed number of slots in every deck.
const Size = 8

// DeckID identifies a deck within the player's collection.
type DeckID int

// Preset is a deck as supplied by the player profile.
type Preset struct {
	ID     DeckID           `yaml:"id"`
	Name   string           `yaml:"name"`
	Cards  []catalog.CardID `yaml:"cards"`
	Active bool             `yaml:"active"`
}

// Deck is a materialized deck. Every slot references a catalog card.
type Deck struct {
	ID     DeckID
	Name   string
	Slots  [Size]catalog.CardID
	Active bool
}

// Collection is the ordered set of decks belonging to one player.
// At most one deck is active.
type Collection struct {
	decks []*Deck
	index map[DeckID]int
}

// NewCollection materializes presets against cat. Each preset must have
// exactly Size cards that exist in the catalog, deck IDs must be unique and
// no more than one preset may be active.
func NewCollection(cat *catalog.Catalog, presets []Preset) (*Collection, error) {
	c := &Collection{
		decks: make([]*Deck, 0, len(presets)),
		index: make(map[DeckID]int, len(presets)),
	}
	active := 0
	for _, p := range presets {
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("deck: duplicate deck id %d", p.ID)
		}
		if len(p.Cards) != Size {
			return nil, fmt.Errorf("deck: %q has %d cards, want %d", p.Name, len(p.Cards), Size)
		}
		d := &Deck{ID: p.ID, Name: p.Name, Active: p.Active}
		for i, id := range p.Cards {
			if !cat.Has(id) {
				return nil, fmt.Errorf("%w: deck %q slot %d references card %d", ErrUnknownCard, p.Name, i, id)
			}
			d.Slots[i] = id
		}
		if d.Active {
			active++
		}
		c.index[d.ID] = len(c.decks)
		c.decks = append(c.decks, d)
	}
	if active > 1 {
		return nil, fmt.Errorf("deck: %d decks marked active, want at most 1", active)
	}
	return c, nil
}

// Len returns the number of decks.
func (c *Collection) Len() int {
	return len(c.decks)
}

// All returns copies of every deck in order.
func (c *Collection) All() []Deck {
	out := make([]Deck, len(c.decks))
	for i, d := range c.decks {
		out[i] = *d
	}
	return out
}

// Get returns a copy of the deck with the given ID.
func (c *Collection) Get(id DeckID) (Deck, bool) {
	d := c.lookup(id)
	if d == nil {
		return Deck{}, false
	}
	return *d, true
}

// Active returns the active deck, if any.
func (c *Collection) Active() (Deck, bool) {
	for _, d := range c.decks {
		if d.Active {
			return *d, true
		}
	}
	return Deck{}, false
}

// Activate marks id as the only active deck.
func (c *Collection) Activate(id DeckID) error {
	target := c.lookup(id)
	if target == nil {
		return fmt.Errorf("%w: deck %d", ErrNotFound, id)
	}
	for _, d := range c.decks {
		d.Active = d == target
	}
	return nil
}

// Presets converts the collection back into profile presets.
func (c *Collection) Presets() []Preset {
	out := make([]Preset, len(c.decks))
	for i, d := range c.decks {
		cards := make([]catalog.CardID, Size)
		copy(cards, d.Slots[:])
		out[i] = Preset{ID: d.ID, Name: d.Name, Cards: cards, Active: d.Active}
	}
	return out
}

func (c *Collection) lookup(id DeckID) *Deck {
	i, ok := c.index[id]
	if !ok {
		return nil
	}
	return c.decks[i]
}
