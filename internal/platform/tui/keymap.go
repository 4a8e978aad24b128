package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// BattleKeyMap defines the key bindings for the battle screen.
type BattleKeyMap struct {
	Card1 key.Binding
	Card2 key.Binding
	Card3 key.Binding
	Card4 key.Binding
	Left  key.Binding
	Right key.Binding
	Exit  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BattleKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Card1, k.Left, k.Right, k.Exit}
}

// FullHelp returns key bindings for the full help view.
func (k BattleKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Card1, k.Card2, k.Card3, k.Card4},
		{k.Left, k.Right, k.Exit, k.Quit},
	}
}

// cards returns the bindings that select hand cards, in hand order.
func (k BattleKeyMap) cards() []key.Binding {
	return []key.Binding{k.Card1, k.Card2, k.Card3, k.Card4}
}

// DefaultBattleKeyMap returns default key bindings.
func DefaultBattleKeyMap() BattleKeyMap {
	return BattleKeyMap{
		Card1: key.NewBinding(key.WithKeys("1"), key.WithHelp("1-4", "select card")),
		Card2: key.NewBinding(key.WithKeys("2")),
		Card3: key.NewBinding(key.WithKeys("3")),
		Card4: key.NewBinding(key.WithKeys("4")),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev card"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next card"),
		),
		Exit: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "leave battle"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DeckKeyMap defines the key bindings for the deck editor.
type DeckKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextDeck key.Binding
	PrevDeck key.Binding
	Edit     key.Binding
	Cancel   key.Binding
	Use      key.Binding
	Rarity   key.Binding
	Type     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k DeckKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextDeck, k.Edit, k.Use, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k DeckKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextDeck, k.PrevDeck},
		{k.Edit, k.Cancel, k.Use},
		{k.Rarity, k.Type, k.Quit},
	}
}

// DefaultDeckKeyMap returns default key bindings.
func DefaultDeckKeyMap() DeckKeyMap {
	return DeckKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev slot"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next slot"),
		),
		NextDeck: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next deck"),
		),
		PrevDeck: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev deck"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "replace card"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "cancel"),
		),
		Use: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "use deck"),
		),
		Rarity: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rarity filter"),
		),
		Type: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "type filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
