package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-royale/internal/catalog"
	"github.com/vovakirdan/tui-royale/internal/platform/tui"
)

var (
	flagRarity string
	flagType   string
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List the card collection",
	Long: `Shows every card in the collection with its elixir cost, level and
upgrade progress. Filters match the collection screen: "All" or empty
disables a filter.

Examples:
  royale cards
  royale cards --rarity Legendary
  royale cards --type Spell`,
	Args: cobra.NoArgs,
	RunE: runCards,
}

func init() {
	cardsCmd.Flags().StringVar(&flagRarity, "rarity", "", "Rarity filter: Common, Rare, Epic, Legendary")
	cardsCmd.Flags().StringVar(&flagType, "type", "", "Type filter: Troop, Spell, Building")
}

func runCards(cmd *cobra.Command, _ []string) error {
	rarity, err := catalog.ParseRarity(flagRarity)
	if err != nil {
		return err
	}
	category, err := catalog.ParseCategory(flagType)
	if err != nil {
		return err
	}

	cat, _, err := loadData(cmd.Context())
	if err != nil {
		return err
	}
	cards := cat.Filter(catalog.Filter{Rarity: rarity, Category: category})
	if len(cards) == 0 {
		fmt.Println("No cards match.")
		return nil
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, c := range cards {
		if len(c.Name) > maxNameLen {
			maxNameLen = len(c.Name)
		}
	}

	fmt.Printf("  %3s  %-*s  %-8s  %-9s  %6s  %5s  %-7s  %s\n", "ID", maxNameLen, "Name", "Type", "Rarity", "Elixir", "Level", "Cards", "Upgrade")
	for _, c := range cards {
		name := tui.RarityStyle(c.Rarity).Render(fmt.Sprintf("%-*s", maxNameLen, c.Name))
		fmt.Printf("  %3d  %s  %-8s  %-9s  %6d  %5d  %-7s  %3.0f%%\n",
			c.ID, name, c.Category, c.Rarity, c.Cost, c.Level, fmt.Sprintf("%d/%d", c.Count, c.MaxCount), c.Progress()*100)
	}

	fmt.Println()
	fmt.Printf("%d of %d cards\n", len(cards), cat.Len())
	return nil
}
