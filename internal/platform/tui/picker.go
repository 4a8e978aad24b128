package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-royale/internal/catalog"
)

const pickerHeight = 10

// picker is the card chooser shown while a slot edit is pending.
type picker struct {
	catalog *catalog.Catalog
	filter  catalog.Filter
	cards   []catalog.Card // Rows currently shown, in table order
	table   table.Model
}

func newPicker(cat *catalog.Catalog) picker {
	columns := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Card", Width: 16},
		{Title: "Type", Width: 9},
		{Title: "Rarity", Width: 10},
		{Title: "Elixir", Width: 6},
		{Title: "Level", Width: 5},
		{Title: "Cards", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(pickerHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	p := picker{catalog: cat, table: t}
	p.refresh()
	return p
}

// refresh reloads the rows for the current filter.
func (p *picker) refresh() {
	p.cards = p.catalog.Filter(p.filter)
	rows := make([]table.Row, len(p.cards))
	for i, c := range p.cards {
		rows[i] = table.Row{
			fmt.Sprintf("%d", c.ID),
			c.Name,
			string(c.Category),
			string(c.Rarity),
			fmt.Sprintf("%d", c.Cost),
			fmt.Sprintf("%d", c.Level),
			fmt.Sprintf("%d/%d", c.Count, c.MaxCount),
		}
	}
	p.table.SetRows(rows)
	p.table.GotoTop()
}

// selected returns the card under the table cursor.
func (p picker) selected() (catalog.Card, bool) {
	i := p.table.Cursor()
	if i < 0 || i >= len(p.cards) {
		return catalog.Card{}, false
	}
	return p.cards[i], true
}

func (p *picker) cycleRarity() {
	p.filter.Rarity = cycle(catalog.Rarities, p.filter.Rarity)
	p.refresh()
}

func (p *picker) cycleCategory() {
	p.filter.Category = cycle(catalog.Categories, p.filter.Category)
	p.refresh()
}

// cycle returns the value after cur in "All" followed by values.
func cycle[T comparable](values []T, cur T) T {
	var zero T
	if cur == zero {
		return values[0]
	}
	for i, v := range values {
		if v == cur && i+1 < len(values) {
			return values[i+1]
		}
	}
	return zero
}

func (p picker) view() string {
	header := mutedStyle.Render(fmt.Sprintf("Rarity: %s  Type: %s  (%d cards)",
		filterLabel(p.filter.Rarity), filterLabel(p.filter.Category), len(p.cards)))
	return header + "\n" + p.table.View()
}
