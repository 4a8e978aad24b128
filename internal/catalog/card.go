// Package catalog holds the read-only card catalog the deck editor and
// battle hand draw from. Cards are plain values; nothing in this package
// mutates a card after the catalog is built.
package catalog

import "fmt"

// CardID uniquely identifies a card in the catalog.
type CardID int

// Category is the card type shown on the collection screen.
type Category string

const (
	CategoryTroop    Category = "Troop"
	CategorySpell    Category = "Spell"
	CategoryBuilding Category = "Building"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryTroop, CategorySpell, CategoryBuilding}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryTroop, CategorySpell, CategoryBuilding:
		return true
	default:
		return false
	}
}

// ParseCategory converts a user supplied name into a Category.
// An empty string or "All" yields the zero value, which filters match everything.
func ParseCategory(s string) (Category, error) {
	if s == "" || s == "All" {
		return "", nil
	}
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("catalog: unknown category %q", s)
	}
	return c, nil
}

// Rarity is the scarcity tier of a card.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

// Rarities lists every rarity from most to least common.
var Rarities = []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}

// Valid reports whether r is a known rarity.
func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	default:
		return false
	}
}

// ParseRarity converts a user supplied name into a Rarity.
// An empty string or "All" yields the zero value.
func ParseRarity(s string) (Rarity, error) {
	if s == "" || s == "All" {
		return "", nil
	}
	r := Rarity(s)
	if !r.Valid() {
		return "", fmt.Errorf("catalog: unknown rarity %q", s)
	}
	return r, nil
}

// Card is a single catalog entry.
type Card struct {
	ID       CardID   `yaml:"id"`
	Name     string   `yaml:"name"`
	Category Category `yaml:"type"`
	Rarity   Rarity   `yaml:"rarity"`
	Cost     int      `yaml:"elixir"`
	Level    int      `yaml:"level"`
	Count    int      `yaml:"count"`     // Copies owned toward the next upgrade
	MaxCount int      `yaml:"max_count"` // Copies required for the next upgrade
}

// Progress returns owned/required copies in [0, 1].
func (c Card) Progress() float64 {
	if c.MaxCount <= 0 {
		return 0
	}
	return float64(c.Count) / float64(c.MaxCount)
}

// validate checks the per-card invariants.
func (c Card) validate() error {
	switch {
	case c.ID <= 0:
		return fmt.Errorf("catalog: card %q has non-positive id %d", c.Name, c.ID)
	case c.Name == "":
		return fmt.Errorf("catalog: card %d has no name", c.ID)
	case !c.Category.Valid():
		return fmt.Errorf("catalog: card %d has unknown category %q", c.ID, c.Category)
	case !c.Rarity.Valid():
		return fmt.Errorf("catalog: card %d has unknown rarity %q", c.ID, c.Rarity)
	case c.Cost < 1:
		return fmt.Errorf("catalog: card %d has cost %d, want >= 1", c.ID, c.Cost)
	case c.Count < 0 || c.Count > c.MaxCount:
		return fmt.Errorf("catalog: card %d owns %d of %d copies", c.ID, c.Count, c.MaxCount)
	}
	return nil
}
