package deck

import (
	"fmt"

	"github.com/vovakirdan/tui-royale/internal/catalog"
)

const noEdit = -1

// Composer edits one deck of a collection at a time.
// It assumes a single writer; the view layer calls it from its update loop.
type Composer struct {
	catalog *catalog.Catalog
	decks   *Collection
	current *Deck
	editing int
}

// NewComposer starts editing the active deck, or the first deck when none
// is active. The collection must not be empty.
func NewComposer(cat *catalog.Catalog, decks *Collection) (*Composer, error) {
	if decks.Len() == 0 {
		return nil, fmt.Errorf("%w: collection is empty", ErrNotFound)
	}
	current := decks.decks[0]
	for _, d := range decks.decks {
		if d.Active {
			current = d
			break
		}
	}
	return &Composer{
		catalog: cat,
		decks:   decks,
		current: current,
		editing: noEdit,
	}, nil
}

// SelectDeck switches the editing target. A pending slot edit is dropped,
// since it referred to the previous deck.
func (c *Composer) SelectDeck(id DeckID) error {
	d := c.decks.lookup(id)
	if d == nil {
		return fmt.Errorf("%w: deck %d", ErrNotFound, id)
	}
	c.current = d
	c.editing = noEdit
	return nil
}

// BeginSlotEdit records slot as the slot being replaced.
// The view layer opens its card picker on success.
func (c *Composer) BeginSlotEdit(slot int) error {
	if slot < 0 || slot >= Size {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, slot, Size)
	}
	c.editing = slot
	return nil
}

// CompleteSlotEdit puts card into the slot recorded by BeginSlotEdit and
// ends the edit. The same card may fill several slots.
func (c *Composer) CompleteSlotEdit(card catalog.Card) error {
	if c.editing == noEdit {
		return ErrNoActiveEdit
	}
	if !c.catalog.Has(card.ID) {
		return fmt.Errorf("%w: card %d", ErrUnknownCard, card.ID)
	}
	c.current.Slots[c.editing] = card.ID
	c.editing = noEdit
	return nil
}

// CancelSlotEdit ends any pending edit without changing the deck.
func (c *Composer) CancelSlotEdit() {
	c.editing = noEdit
}

// Editing returns the slot under edit.
func (c *Composer) Editing() (int, bool) {
	if c.editing == noEdit {
		return 0, false
	}
	return c.editing, true
}

// UseDeck makes the selected deck the collection's active deck.
func (c *Composer) UseDeck() {
	// current always belongs to the collection, so Activate cannot fail.
	_ = c.decks.Activate(c.current.ID)
}

// Current returns a copy of the deck being edited.
func (c *Composer) Current() Deck {
	return *c.current
}

// Decks returns the collection the composer edits.
func (c *Composer) Decks() *Collection {
	return c.decks
}

// Catalog returns the catalog cards are drawn from.
func (c *Composer) Catalog() *catalog.Catalog {
	return c.catalog
}

// Cards resolves the current deck's slots to catalog cards.
func (c *Composer) Cards() [Size]catalog.Card {
	var out [Size]catalog.Card
	for i, id := range c.current.Slots {
		// Slots are validated on entry, so every lookup succeeds.
		out[i], _ = c.catalog.Get(id)
	}
	return out
}

// AverageCost returns the current deck's mean cost to one decimal.
func (c *Composer) AverageCost() float64 {
	return AverageCost(c.Cards())
}

// CountByCategory counts current deck cards of the given category.
func (c *Composer) CountByCategory(category catalog.Category) int {
	return CountByCategory(c.Cards(), category)
}

// CostHistogram buckets the current deck by cost.
func (c *Composer) CostHistogram() Histogram {
	return CostHistogram(c.Cards())
}

// Stats computes the full analysis of the current deck.
func (c *Composer) Stats() Stats {
	return Analyze(c.Cards())
}
