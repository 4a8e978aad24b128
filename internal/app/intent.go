package app

import (
	"fmt"

	"github.com/vovakirdan/tui-royale/internal/catalog"
	"github.com/vovakirdan/tui-royale/internal/deck"
)

// Intent is a request from the view layer.
type Intent interface {
	intent()
}

// SelectDeck switches the deck editor to another deck.
type SelectDeck struct {
	ID deck.DeckID
}

// BeginSlotEdit opens the card picker for a deck slot.
type BeginSlotEdit struct {
	Slot int
}

// CompleteSlotEdit fills the pending slot with a catalog card.
type CompleteSlotEdit struct {
	Card catalog.CardID
}

// CancelSlotEdit closes the card picker without changes.
type CancelSlotEdit struct{}

// UseDeck makes the edited deck the active battle deck.
type UseDeck struct{}

// StartBattle opens a battle with the active deck.
type StartBattle struct{}

// EndBattle leaves the battle screen.
type EndBattle struct{}

// SelectHandCard toggles the highlight on a hand card.
type SelectHandCard struct {
	Index int
}

// TickResource applies one elixir regeneration tick by hand.
type TickResource struct{}

// TickTimer applies one countdown tick by hand.
type TickTimer struct{}

func (SelectDeck) intent()       {}
func (BeginSlotEdit) intent()    {}
func (CompleteSlotEdit) intent() {}
func (CancelSlotEdit) intent()   {}
func (UseDeck) intent()          {}
func (StartBattle) intent()      {}
func (EndBattle) intent()        {}
func (SelectHandCard) intent()   {}
func (TickResource) intent()     {}
func (TickTimer) intent()        {}

func (i SelectDeck) String() string       { return fmt.Sprintf("SelectDeck(%d)", i.ID) }
func (i BeginSlotEdit) String() string    { return fmt.Sprintf("BeginSlotEdit(%d)", i.Slot) }
func (i CompleteSlotEdit) String() string { return fmt.Sprintf("CompleteSlotEdit(%d)", i.Card) }
func (CancelSlotEdit) String() string     { return "CancelSlotEdit" }
func (UseDeck) String() string            { return "UseDeck" }
func (StartBattle) String() string        { return "StartBattle" }
func (EndBattle) String() string          { return "EndBattle" }
func (i SelectHandCard) String() string   { return fmt.Sprintf("SelectHandCard(%d)", i.Index) }
func (TickResource) String() string       { return "TickResource" }
func (TickTimer) String() string          { return "TickTimer" }
