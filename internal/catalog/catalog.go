package catalog

import "fmt"

// Catalog is an ordered, read-only set of cards looked up by ID.
type Catalog struct {
	cards []Card
	index map[CardID]int
}

// New builds a catalog from cards, keeping their order.
// Every card is validated and IDs must be unique.
func New(cards []Card) (*Catalog, error) {
	c := &Catalog{
		cards: make([]Card, 0, len(cards)),
		index: make(map[CardID]int, len(cards)),
	}
	for _, card := range cards {
		if err := card.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.index[card.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate card id %d", card.ID)
		}
		c.index[card.ID] = len(c.cards)
		c.cards = append(c.cards, card)
	}
	return c, nil
}

// Get returns the card with the given ID.
func (c *Catalog) Get(id CardID) (Card, bool) {
	i, ok := c.index[id]
	if !ok {
		return Card{}, false
	}
	return c.cards[i], true
}

// Has reports whether id is in the catalog.
func (c *Catalog) Has(id CardID) bool {
	_, ok := c.index[id]
	return ok
}

// All returns a copy of every card in catalog order.
func (c *Catalog) All() []Card {
	out := make([]Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Len returns the number of cards.
func (c *Catalog) Len() int {
	return len(c.cards)
}

// Filter selects cards for the collection screen.
// A zero field matches every card.
type Filter struct {
	Rarity   Rarity
	Category Category
}

// Match reports whether card passes the filter.
func (f Filter) Match(card Card) bool {
	return (f.Rarity == "" || card.Rarity == f.Rarity) &&
		(f.Category == "" || card.Category == f.Category)
}

// Filter returns the cards matching f, in catalog order.
func (c *Catalog) Filter(f Filter) []Card {
	var out []Card
	for _, card := range c.cards {
		if f.Match(card) {
			out = append(out, card)
		}
	}
	return out
}
