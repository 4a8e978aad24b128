package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCards() []Card {
	return []Card{
		{ID: 1, Name: "Barbarians", Category: CategoryTroop, Rarity: RarityCommon, Cost: 5, Level: 13, Count: 1847, MaxCount: 2000},
		{ID: 5, Name: "Arrows", Category: CategorySpell, Rarity: RarityCommon, Cost: 3, Level: 13, Count: 1567, MaxCount: 2000},
		{ID: 8, Name: "Fireball", Category: CategorySpell, Rarity: RarityRare, Cost: 4, Level: 11, Count: 167, MaxCount: 400},
		{ID: 13, Name: "Cannon", Category: CategoryBuilding, Rarity: RarityCommon, Cost: 3, Level: 12, Count: 900, MaxCount: 2000},
		{ID: 11, Name: "Princess", Category: CategoryTroop, Rarity: RarityLegendary, Cost: 3, Level: 5, Count: 3, MaxCount: 5},
	}
}

func TestNewKeepsOrder(t *testing.T) {
	c, err := New(sampleCards())
	require.NoError(t, err)

	assert.Equal(t, 5, c.Len())
	all := c.All()
	ids := make([]CardID, len(all))
	for i, card := range all {
		ids[i] = card.ID
	}
	assert.Equal(t, []CardID{1, 5, 8, 13, 11}, ids)

	// All returns a copy.
	all[0].Name = "changed"
	first, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Barbarians", first.Name)
}

func TestGet(t *testing.T) {
	c, err := New(sampleCards())
	require.NoError(t, err)

	card, ok := c.Get(8)
	require.True(t, ok)
	assert.Equal(t, "Fireball", card.Name)
	assert.True(t, c.Has(8))

	_, ok = c.Get(99)
	assert.False(t, ok)
	assert.False(t, c.Has(99))
}

func TestNewRejectsInvalidCards(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]Card) []Card
	}{
		{"duplicate id", func(cs []Card) []Card { return append(cs, cs[0]) }},
		{"owned above max", func(cs []Card) []Card { cs[0].Count = cs[0].MaxCount + 1; return cs }},
		{"unknown category", func(cs []Card) []Card { cs[1].Category = "Hero"; return cs }},
		{"unknown rarity", func(cs []Card) []Card { cs[2].Rarity = "Mythic"; return cs }},
		{"zero cost", func(cs []Card) []Card { cs[3].Cost = 0; return cs }},
		{"zero id", func(cs []Card) []Card { cs[4].ID = 0; return cs }},
		{"missing name", func(cs []Card) []Card { cs[4].Name = ""; return cs }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.mutate(sampleCards()))
			assert.Error(t, err)
		})
	}
}

func TestFilter(t *testing.T) {
	c, err := New(sampleCards())
	require.NoError(t, err)

	assert.Len(t, c.Filter(Filter{}), 5)
	assert.Len(t, c.Filter(Filter{Rarity: RarityCommon}), 3)
	assert.Len(t, c.Filter(Filter{Category: CategorySpell}), 2)

	spells := c.Filter(Filter{Rarity: RarityCommon, Category: CategorySpell})
	require.Len(t, spells, 1)
	assert.Equal(t, "Arrows", spells[0].Name)

	assert.Empty(t, c.Filter(Filter{Rarity: RarityEpic}))
}

func TestParseFilters(t *testing.T) {
	r, err := ParseRarity("All")
	require.NoError(t, err)
	assert.Equal(t, Rarity(""), r)

	r, err = ParseRarity("Epic")
	require.NoError(t, err)
	assert.Equal(t, RarityEpic, r)

	_, err = ParseRarity("epic")
	assert.Error(t, err)

	cat, err := ParseCategory("Building")
	require.NoError(t, err)
	assert.Equal(t, CategoryBuilding, cat)

	_, err = ParseCategory("Hero")
	assert.Error(t, err)
}

func TestProgress(t *testing.T) {
	assert.InDelta(t, 0.6, Card{Count: 3, MaxCount: 5}.Progress(), 1e-9)
	assert.Equal(t, 0.0, Card{}.Progress())
}
