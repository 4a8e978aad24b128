package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-royale/internal/catalog"
	"github.com/vovakirdan/tui-royale/internal/config"
	"github.com/vovakirdan/tui-royale/internal/deck"
)

func testCards() []catalog.Card {
	return []catalog.Card{
		{ID: 3, Name: "Knight", Category: catalog.CategoryTroop, Rarity: catalog.RarityCommon, Cost: 3, Level: 13, Count: 1789, MaxCount: 2000},
		{ID: 1, Name: "Barbarians", Category: catalog.CategoryTroop, Rarity: catalog.RarityCommon, Cost: 5, Level: 13, Count: 1847, MaxCount: 2000},
		{ID: 8, Name: "Fireball", Category: catalog.CategorySpell, Rarity: catalog.RarityRare, Cost: 4, Level: 11, Count: 167, MaxCount: 400},
		{ID: 13, Name: "Cannon", Category: catalog.CategoryBuilding, Rarity: catalog.RarityCommon, Cost: 3, Level: 13, Count: 1020, MaxCount: 2000},
	}
}

func testPresets() []deck.Preset {
	return []deck.Preset{
		{ID: 2, Name: "Second", Cards: []catalog.CardID{1, 1, 3, 3, 8, 8, 13, 13}},
		{ID: 1, Name: "First", Cards: []catalog.CardID{3, 1, 8, 13, 3, 1, 8, 13}, Active: true},
	}
}

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, dbPath)
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, dbPath)
}

func TestStoreCatalogRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	require.NoError(t, store.ImportCatalog(ctx, testCards()))

	cards, err := store.Cards(ctx)
	require.NoError(t, err)
	// Import order is preserved, not ID order.
	assert.Equal(t, testCards(), cards)

	cat, err := store.Catalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, cat.Len())
}

func TestStoreImportReplaces(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	require.NoError(t, store.ImportCatalog(ctx, testCards()))
	require.NoError(t, store.ImportCatalog(ctx, testCards()[:2]))

	cards, decks, err := store.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, cards)
	assert.Equal(t, 0, decks)
}

func TestStoreDecksRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	require.NoError(t, store.ImportCatalog(ctx, testCards()))
	require.NoError(t, store.ImportDecks(ctx, testPresets()))

	presets, err := store.Decks(ctx)
	require.NoError(t, err)
	assert.Equal(t, testPresets(), presets)

	cat, err := store.Catalog(ctx)
	require.NoError(t, err)
	_, err = deck.NewCollection(cat, presets)
	assert.NoError(t, err, "stored decks materialize")
}

func TestStorePlayerRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	_, ok, err := store.Player(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	want := config.Player{
		Name: "Royal Player", Level: 13, Trophies: 5247, Experience: 89650,
		Clan: "Elite Warriors", Gems: 1250, Gold: 15640,
	}
	require.NoError(t, store.ImportPlayer(ctx, want))
	want.Trophies = 5300
	require.NoError(t, store.ImportPlayer(ctx, want))

	got, ok, err := store.Player(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestStoreEmpty(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	presets, err := store.Decks(ctx)
	require.NoError(t, err)
	assert.Empty(t, presets)

	cards, err := store.Cards(ctx)
	require.NoError(t, err)
	assert.Empty(t, cards)
}
