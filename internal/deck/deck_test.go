package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-royale/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Card{
		{ID: 1, Name: "Barbarians", Category: catalog.CategoryTroop, Rarity: catalog.RarityCommon, Cost: 5, Level: 13, Count: 1847, MaxCount: 2000},
		{ID: 2, Name: "Archers", Category: catalog.CategoryTroop, Rarity: catalog.RarityCommon, Cost: 3, Level: 13, Count: 1654, MaxCount: 2000},
		{ID: 3, Name: "Knight", Category: catalog.CategoryTroop, Rarity: catalog.RarityCommon, Cost: 3, Level: 13, Count: 1789, MaxCount: 2000},
		{ID: 4, Name: "Goblins", Category: catalog.CategoryTroop, Rarity: catalog.RarityCommon, Cost: 2, Level: 13, Count: 1234, MaxCount: 2000},
		{ID: 5, Name: "Arrows", Category: catalog.CategorySpell, Rarity: catalog.RarityCommon, Cost: 3, Level: 13, Count: 1567, MaxCount: 2000},
		{ID: 6, Name: "Giant", Category: catalog.CategoryTroop, Rarity: catalog.RarityRare, Cost: 5, Level: 11, Count: 245, MaxCount: 400},
		{ID: 7, Name: "Wizard", Category: catalog.CategoryTroop, Rarity: catalog.RarityRare, Cost: 5, Level: 11, Count: 198, MaxCount: 400},
		{ID: 8, Name: "Fireball", Category: catalog.CategorySpell, Rarity: catalog.RarityRare, Cost: 4, Level: 11, Count: 167, MaxCount: 400},
		{ID: 9, Name: "Baby Dragon", Category: catalog.CategoryTroop, Rarity: catalog.RarityEpic, Cost: 4, Level: 8, Count: 34, MaxCount: 50},
		{ID: 10, Name: "Lightning", Category: catalog.CategorySpell, Rarity: catalog.RarityEpic, Cost: 6, Level: 8, Count: 28, MaxCount: 50},
		{ID: 11, Name: "Princess", Category: catalog.CategoryTroop, Rarity: catalog.RarityLegendary, Cost: 3, Level: 5, Count: 3, MaxCount: 5},
		{ID: 12, Name: "Ice Wizard", Category: catalog.CategoryTroop, Rarity: catalog.RarityLegendary, Cost: 3, Level: 5, Count: 4, MaxCount: 5},
		{ID: 13, Name: "Cannon", Category: catalog.CategoryBuilding, Rarity: catalog.RarityCommon, Cost: 3, Level: 13, Count: 1020, MaxCount: 2000},
		{ID: 14, Name: "P.E.K.K.A", Category: catalog.CategoryTroop, Rarity: catalog.RarityEpic, Cost: 7, Level: 8, Count: 12, MaxCount: 50},
		{ID: 15, Name: "Golem", Category: catalog.CategoryTroop, Rarity: catalog.RarityEpic, Cost: 8, Level: 8, Count: 9, MaxCount: 50},
	})
	require.NoError(t, err)
	return cat
}

func testPresets() []Preset {
	return []Preset{
		{ID: 1, Name: "Main Deck", Cards: []catalog.CardID{1, 2, 3, 4, 5, 6, 7, 8}, Active: true},
		{ID: 2, Name: "Giant Deck", Cards: []catalog.CardID{6, 7, 8, 9, 1, 2, 3, 4}},
		{ID: 3, Name: "Spell Deck", Cards: []catalog.CardID{5, 8, 10, 11, 2, 3, 4, 6}},
	}
}

func testCollection(t *testing.T, cat *catalog.Catalog) *Collection {
	t.Helper()
	decks, err := NewCollection(cat, testPresets())
	require.NoError(t, err)
	return decks
}

func TestNewCollection(t *testing.T) {
	cat := testCatalog(t)
	decks := testCollection(t, cat)

	assert.Equal(t, 3, decks.Len())
	active, ok := decks.Active()
	require.True(t, ok)
	assert.Equal(t, DeckID(1), active.ID)

	d, ok := decks.Get(2)
	require.True(t, ok)
	assert.Equal(t, "Giant Deck", d.Name)
	assert.Equal(t, [Size]catalog.CardID{6, 7, 8, 9, 1, 2, 3, 4}, d.Slots)

	_, ok = decks.Get(42)
	assert.False(t, ok)
}

func TestNewCollectionRejects(t *testing.T) {
	cat := testCatalog(t)

	tests := []struct {
		name    string
		presets []Preset
		is      error
	}{
		{
			name:    "short deck",
			presets: []Preset{{ID: 1, Name: "Short", Cards: []catalog.CardID{1, 2, 3}}},
		},
		{
			name:    "unknown card",
			presets: []Preset{{ID: 1, Name: "Bad", Cards: []catalog.CardID{1, 2, 3, 4, 5, 6, 7, 99}}},
			is:      ErrUnknownCard,
		},
		{
			name: "duplicate id",
			presets: []Preset{
				{ID: 1, Name: "A", Cards: []catalog.CardID{1, 2, 3, 4, 5, 6, 7, 8}},
				{ID: 1, Name: "B", Cards: []catalog.CardID{1, 2, 3, 4, 5, 6, 7, 8}},
			},
		},
		{
			name: "two active",
			presets: []Preset{
				{ID: 1, Name: "A", Cards: []catalog.CardID{1, 2, 3, 4, 5, 6, 7, 8}, Active: true},
				{ID: 2, Name: "B", Cards: []catalog.CardID{1, 2, 3, 4, 5, 6, 7, 8}, Active: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCollection(cat, tt.presets)
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestActivateKeepsSingleActive(t *testing.T) {
	decks := testCollection(t, testCatalog(t))

	require.NoError(t, decks.Activate(3))

	active := 0
	for _, d := range decks.All() {
		if d.Active {
			active++
			assert.Equal(t, DeckID(3), d.ID)
		}
	}
	assert.Equal(t, 1, active)

	err := decks.Activate(9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPresetsRoundTrip(t *testing.T) {
	cat := testCatalog(t)
	decks := testCollection(t, cat)

	again, err := NewCollection(cat, decks.Presets())
	require.NoError(t, err)
	assert.Equal(t, decks.All(), again.All())
}

func TestCollectionCopiesAreDetached(t *testing.T) {
	decks := testCollection(t, testCatalog(t))

	d, _ := decks.Get(1)
	d.Slots[0] = 12
	fresh, _ := decks.Get(1)
	assert.Equal(t, catalog.CardID(1), fresh.Slots[0])
}
