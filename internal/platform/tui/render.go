package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-royale/internal/catalog"
	"github.com/vovakirdan/tui-royale/internal/config"
	"github.com/vovakirdan/tui-royale/internal/deck"
)

// rarityStyles maps card rarity to lipgloss styles.
var rarityStyles = map[catalog.Rarity]lipgloss.Style{
	catalog.RarityCommon:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	catalog.RarityRare:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	catalog.RarityEpic:      lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	catalog.RarityLegendary: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	elixirStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// RarityStyle returns the style used for cards of rarity r.
func RarityStyle(r catalog.Rarity) lipgloss.Style {
	if s, ok := rarityStyles[r]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// ElixirBar renders resource as filled cells out of limit.
func ElixirBar(resource, limit int) string {
	resource = min(max(resource, 0), limit)
	return elixirStyle.Render(strings.Repeat("█", resource)) +
		emptyStyle.Render(strings.Repeat("░", limit-resource)) +
		fmt.Sprintf(" %d/%d", resource, limit)
}

// CardLabel renders a card as "(cost) Name" in its rarity colour.
func CardLabel(c catalog.Card) string {
	return RarityStyle(c.Rarity).Render(fmt.Sprintf("(%d) %s", c.Cost, c.Name))
}

// PlayerHeader renders the one-line player summary of the home screen.
func PlayerHeader(p config.Player) string {
	line := fmt.Sprintf("%s  Lvl %d  %d trophies", p.Name, p.Level, p.Trophies)
	if p.Clan != "" {
		line += "  " + p.Clan
	}
	return selectedStyle.Render(line) +
		mutedStyle.Render(fmt.Sprintf("  XP %d  Gold %d  Gems %d", p.Experience, p.Gold, p.Gems))
}

// StatsView renders the derived deck statistics.
func StatsView(s deck.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Average elixir  %.1f\n", s.AverageCost)
	fmt.Fprintf(&b, "Troops %d  Spells %d  Buildings %d\n", s.Troops, s.Spells, s.Buildings)
	fmt.Fprintf(&b, "Cost 1-3 %s\n", histogramBar(s.Costs.Low))
	fmt.Fprintf(&b, "Cost 4-6 %s\n", histogramBar(s.Costs.Mid))
	fmt.Fprintf(&b, "Cost 7+  %s", histogramBar(s.Costs.High))
	return b.String()
}

func histogramBar(n int) string {
	return elixirStyle.Render(strings.Repeat("▪", n)) + fmt.Sprintf(" %d", n)
}

// filterLabel names a filter value, "All" for the zero value.
func filterLabel[T ~string](v T) string {
	if v == "" {
		return "All"
	}
	return string(v)
}
