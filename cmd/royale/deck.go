package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-royale/internal/app"
	"github.com/vovakirdan/tui-royale/internal/catalog"
	"github.com/vovakirdan/tui-royale/internal/deck"
	"github.com/vovakirdan/tui-royale/internal/platform/tui"
	"github.com/vovakirdan/tui-royale/internal/sched"
)

var (
	flagDeckID int
	flagEdits  []string
	flagUse    bool
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Show, edit or activate a deck",
	Long: `Shows a deck with its statistics. Edits replace the card in a slot
(1-8) with a card from the collection by ID and are applied in order.
Changes last for this run only.

Examples:
  royale deck
  royale deck --deck 2
  royale deck --deck 3 --edit 1=12 --edit 8=9
  royale deck --deck 2 --use`,
	Args: cobra.NoArgs,
	RunE: runDeck,
}

var deckEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Interactive deck editor",
	Long: `Opens the deck editor.

Controls:
  Up/Down     - Move between slots
  Tab         - Next deck
  Enter       - Replace the card in a slot
  R / T       - Cycle rarity / type filter in the card picker
  U           - Use this deck in battle
  Esc         - Cancel replacement
  Q/Ctrl+C    - Quit`,
	Args: cobra.NoArgs,
	RunE: runDeckEdit,
}

func init() {
	deckCmd.Flags().IntVar(&flagDeckID, "deck", 0, "Deck ID (default: active deck)")
	deckCmd.Flags().StringArrayVar(&flagEdits, "edit", nil, "Replace a slot: SLOT=CARD_ID (repeatable)")
	deckCmd.Flags().BoolVar(&flagUse, "use", false, "Make the deck the active battle deck")

	deckCmd.AddCommand(deckEditCmd)
}

// slotEdit is one parsed --edit flag.
type slotEdit struct {
	slot int // Zero based
	card catalog.CardID
}

func parseSlotEdit(s string) (slotEdit, error) {
	slotStr, cardStr, ok := strings.Cut(s, "=")
	if !ok {
		return slotEdit{}, fmt.Errorf("invalid edit %q: want SLOT=CARD_ID", s)
	}
	slot, err := strconv.Atoi(strings.TrimSpace(slotStr))
	if err != nil {
		return slotEdit{}, fmt.Errorf("invalid slot in %q: %w", s, err)
	}
	card, err := strconv.Atoi(strings.TrimSpace(cardStr))
	if err != nil {
		return slotEdit{}, fmt.Errorf("invalid card ID in %q: %w", s, err)
	}
	return slotEdit{slot: slot - 1, card: catalog.CardID(card)}, nil
}

// deckIntents turns the deck flags into intents, in the order they apply.
// selectDeck is false when --deck was not given.
func deckIntents(selectDeck bool, id int, edits []string, use bool) ([]app.Intent, error) {
	intents := make([]app.Intent, 0, 2*len(edits)+2)
	if selectDeck {
		intents = append(intents, app.SelectDeck{ID: deck.DeckID(id)})
	}
	for _, raw := range edits {
		e, err := parseSlotEdit(raw)
		if err != nil {
			return nil, err
		}
		intents = append(intents, app.BeginSlotEdit{Slot: e.slot}, app.CompleteSlotEdit{Card: e.card})
	}
	if use {
		intents = append(intents, app.UseDeck{})
	}
	return intents, nil
}

func runDeck(cmd *cobra.Command, _ []string) error {
	intents, err := deckIntents(cmd.Flags().Changed("deck"), flagDeckID, flagEdits, flagUse)
	if err != nil {
		return err
	}

	host, player, err := newHost(cmd.Context(), sched.NewManual())
	if err != nil {
		return err
	}
	for _, in := range intents {
		if err := host.Dispatch(in); err != nil {
			return err
		}
	}

	if player.Name != "" {
		fmt.Println(tui.PlayerHeader(player))
		fmt.Println()
	}
	printDeck(host.Composer())
	if len(flagEdits) > 0 {
		logger.Warn("deck edits are not saved")
	}
	return nil
}

func printDeck(c *deck.Composer) {
	d := c.Current()
	title := d.Name
	if d.Active {
		title += " (active)"
	}
	fmt.Printf("%s  [deck %d]\n\n", title, d.ID)
	for i, card := range c.Cards() {
		fmt.Printf("  %d. %s\n", i+1, tui.CardLabel(card))
	}
	fmt.Println()
	fmt.Println(tui.StatsView(c.Stats()))
}

func runDeckEdit(cmd *cobra.Command, _ []string) error {
	host, player, err := newHost(cmd.Context(), sched.NewManual())
	if err != nil {
		return err
	}
	return tui.RunDeckEditor(host, player)
}
