package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-royale/internal/app"
	"github.com/vovakirdan/tui-royale/internal/battle"
	"github.com/vovakirdan/tui-royale/internal/catalog"
	"github.com/vovakirdan/tui-royale/internal/config"
	"github.com/vovakirdan/tui-royale/internal/deck"
	"github.com/vovakirdan/tui-royale/internal/sched"
)

func testHost(t *testing.T) (*app.Host, *sched.Manual) {
	t.Helper()
	cat, err := catalog.New([]catalog.Card{
		{ID: 1, Name: "Barbarians", Category: catalog.CategoryTroop, Rarity: catalog.RarityCommon, Cost: 5, Count: 1, MaxCount: 2},
		{ID: 2, Name: "Archers", Category: catalog.CategoryTroop, Rarity: catalog.RarityCommon, Cost: 3, Count: 1, MaxCount: 2},
		{ID: 3, Name: "Knight", Category: catalog.CategoryTroop, Rarity: catalog.RarityCommon, Cost: 3, Count: 1, MaxCount: 2},
		{ID: 4, Name: "Goblins", Category: catalog.CategoryTroop, Rarity: catalog.RarityCommon, Cost: 2, Count: 1, MaxCount: 2},
		{ID: 5, Name: "Arrows", Category: catalog.CategorySpell, Rarity: catalog.RarityCommon, Cost: 3, Count: 1, MaxCount: 2},
		{ID: 6, Name: "Giant", Category: catalog.CategoryTroop, Rarity: catalog.RarityRare, Cost: 5, Count: 1, MaxCount: 2},
		{ID: 7, Name: "Wizard", Category: catalog.CategoryTroop, Rarity: catalog.RarityRare, Cost: 5, Count: 1, MaxCount: 2},
		{ID: 8, Name: "Fireball", Category: catalog.CategorySpell, Rarity: catalog.RarityRare, Cost: 4, Count: 1, MaxCount: 2},
	})
	require.NoError(t, err)
	decks, err := deck.NewCollection(cat, []deck.Preset{
		{ID: 1, Name: "Main Deck", Cards: []catalog.CardID{1, 2, 3, 4, 5, 6, 7, 8}, Active: true},
		{ID: 2, Name: "Spare Deck", Cards: []catalog.CardID{6, 7, 8, 1, 2, 3, 4, 5}},
	})
	require.NoError(t, err)
	composer, err := deck.NewComposer(cat, decks)
	require.NoError(t, err)

	m := sched.NewManual()
	return app.NewHost(composer, m, battle.DefaultConfig(), nil), m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFrameClock(t *testing.T) {
	var c frameClock
	t0 := time.Unix(100, 0)

	assert.Zero(t, c.delta(t0), "first frame")
	assert.Equal(t, 40*time.Millisecond, c.delta(t0.Add(40*time.Millisecond)))
	assert.Zero(t, c.delta(t0), "out of order frame")
	assert.Equal(t, 10*time.Millisecond, c.delta(t0.Add(50*time.Millisecond)))
}

func TestElixirBar(t *testing.T) {
	assert.Contains(t, ElixirBar(4, 10), "4/10")
	assert.Contains(t, ElixirBar(12, 10), "10/10")
	assert.Contains(t, ElixirBar(-1, 10), "0/10")
}

func TestCycle(t *testing.T) {
	r := catalog.Rarity("")
	var seen []catalog.Rarity
	for range len(catalog.Rarities) + 1 {
		r = cycle(catalog.Rarities, r)
		seen = append(seen, r)
	}
	assert.Equal(t, []catalog.Rarity{
		catalog.RarityCommon, catalog.RarityRare, catalog.RarityEpic, catalog.RarityLegendary, "",
	}, seen)
}

func TestBattleModelAdvancesSession(t *testing.T) {
	host, s := testHost(t)
	require.NoError(t, host.Dispatch(app.StartBattle{}))

	var model tea.Model = NewBattleModel(host, s, 30)
	t0 := time.Unix(0, 0)
	model, cmd := model.Update(TickMsg(t0))
	assert.NotNil(t, cmd, "frame loop continues")
	model, _ = model.Update(TickMsg(t0.Add(5 * time.Second)))

	snap, ok := model.(BattleModel).Result()
	require.True(t, ok)
	assert.Equal(t, "2:55", snap.Remaining)

	model, _ = model.Update(keyMsg("2"))
	snap, _ = model.(BattleModel).Result()
	assert.Equal(t, 1, snap.Selected)

	model, _ = model.Update(keyMsg("l"))
	snap, _ = model.(BattleModel).Result()
	assert.Equal(t, 2, snap.Selected)

	_, cmd = model.Update(keyMsg("esc"))
	assert.NotNil(t, cmd)
	sess, _ := host.Session()
	assert.True(t, sess.Ended())
	assert.Equal(t, battle.EndReasonExit, sess.Snapshot().Reason)
	assert.Zero(t, s.Pending())
}

func TestBattleModelStopsTickingAfterTimeout(t *testing.T) {
	host, s := testHost(t)
	require.NoError(t, host.Dispatch(app.StartBattle{}))

	var model tea.Model = NewBattleModel(host, s, 30)
	t0 := time.Unix(0, 0)
	model, _ = model.Update(TickMsg(t0))
	model, cmd := model.Update(TickMsg(t0.Add(200 * time.Second)))
	assert.Nil(t, cmd)

	snap, _ := model.(BattleModel).Result()
	assert.True(t, snap.Ended)
	assert.Equal(t, battle.EndReasonTimeout, snap.Reason)
	assert.Contains(t, model.View(), "Battle over (timeout)")
}

func TestDeckModelReplacesSlot(t *testing.T) {
	host, _ := testHost(t)
	var model tea.Model = NewDeckModel(host, config.Player{})

	model, _ = model.Update(keyMsg("enter"))
	slot, ok := host.Composer().Editing()
	require.True(t, ok)
	assert.Equal(t, 0, slot)
	assert.Contains(t, model.View(), "Replace slot 1 with:")

	model, _ = model.Update(keyMsg("down"))
	model, _ = model.Update(keyMsg("enter"))

	_, ok = host.Composer().Editing()
	assert.False(t, ok)
	assert.Equal(t, catalog.CardID(2), host.Composer().Current().Slots[0])
	assert.Contains(t, model.View(), "slot 1: Archers")
}

func TestDeckModelPickerFilterAndCancel(t *testing.T) {
	host, _ := testHost(t)
	var model tea.Model = NewDeckModel(host, config.Player{})

	model, _ = model.Update(keyMsg("down"))
	model, _ = model.Update(keyMsg("enter"))
	model, _ = model.Update(keyMsg("t")) // Troop
	model, _ = model.Update(keyMsg("t")) // Spell
	card, ok := model.(DeckModel).picker.selected()
	require.True(t, ok)
	assert.Equal(t, "Arrows", card.Name)

	model, _ = model.Update(keyMsg("esc"))
	_, ok = host.Composer().Editing()
	assert.False(t, ok)
	assert.Equal(t, catalog.CardID(2), host.Composer().Current().Slots[1])
}

func TestDeckModelSwitchAndUse(t *testing.T) {
	host, _ := testHost(t)
	var model tea.Model = NewDeckModel(host, config.Player{})

	model, _ = model.Update(keyMsg("tab"))
	assert.Equal(t, deck.DeckID(2), host.Composer().Current().ID)

	model, _ = model.Update(keyMsg("u"))
	active, ok := host.Composer().Decks().Active()
	require.True(t, ok)
	assert.Equal(t, deck.DeckID(2), active.ID)
	assert.Contains(t, model.View(), "Spare Deck is now your battle deck")

	_, cmd := model.Update(keyMsg("q"))
	assert.NotNil(t, cmd)
}

func TestPickerSelectedFollowsCursor(t *testing.T) {
	host, _ := testHost(t)
	p := newPicker(host.Composer().Catalog())

	card, ok := p.selected()
	require.True(t, ok)
	assert.Equal(t, "Barbarians", card.Name)

	p.table.MoveDown(2)
	card, ok = p.selected()
	require.True(t, ok)
	assert.Equal(t, "Knight", card.Name)

	// A copy held in a model reads the same row.
	m := DeckModel{picker: p}
	card, ok = m.picker.selected()
	require.True(t, ok)
	assert.Equal(t, "Knight", card.Name)
}

func TestBattleModelResize(t *testing.T) {
	host, s := testHost(t)
	require.NoError(t, host.Dispatch(app.StartBattle{}))

	var model tea.Model = NewBattleModel(host, s, 30)
	model, cmd := model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 100, model.(BattleModel).help.Width)
}

func TestDeckModelShowsPlayer(t *testing.T) {
	host, _ := testHost(t)
	player := config.Player{Name: "Royal Player", Level: 13, Trophies: 5247, Clan: "Elite Warriors", Gold: 15640}

	view := NewDeckModel(host, player).View()
	assert.Contains(t, view, "Royal Player  Lvl 13  5247 trophies  Elite Warriors")
	assert.Contains(t, view, "Gold 15640")

	assert.NotContains(t, NewDeckModel(host, config.Player{}).View(), "trophies")
}
