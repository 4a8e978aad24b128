package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-royale/internal/app"
	"github.com/vovakirdan/tui-royale/internal/config"
	"github.com/vovakirdan/tui-royale/internal/deck"
)

// DeckModel is the Bubble Tea model for the deck editor.
type DeckModel struct {
	host     *app.Host
	player   config.Player
	keys     DeckKeyMap
	help     help.Model
	picker   picker
	cursor   int // Highlighted slot
	status   string
	err      error
	quitting bool
}

// NewDeckModel creates a deck editor over the host's composer. A player
// with a name is shown above the deck.
func NewDeckModel(host *app.Host, player config.Player) DeckModel {
	return DeckModel{
		host:   host,
		player: player,
		keys:   DefaultDeckKeyMap(),
		help:   help.New(),
		picker: newPicker(host.Composer().Catalog()),
	}
}

// Init initializes the deck editor.
func (m DeckModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the deck editor.
func (m DeckModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.picking() {
			return m.handlePickerKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m DeckModel) picking() bool {
	_, ok := m.host.Composer().Editing()
	return ok
}

func (m DeckModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < deck.Size-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.NextDeck):
		m.switchDeck(1)

	case key.Matches(msg, m.keys.PrevDeck):
		m.switchDeck(-1)

	case key.Matches(msg, m.keys.Edit):
		m.err = m.host.Dispatch(app.BeginSlotEdit{Slot: m.cursor})
		m.status = ""

	case key.Matches(msg, m.keys.Use):
		m.err = m.host.Dispatch(app.UseDeck{})
		if m.err == nil {
			m.status = fmt.Sprintf("%s is now your battle deck", m.host.Composer().Current().Name)
		}
	}
	return m, nil
}

func (m DeckModel) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Edit):
		card, ok := m.picker.selected()
		if !ok {
			return m, nil
		}
		m.err = m.host.Dispatch(app.CompleteSlotEdit{Card: card.ID})
		if m.err == nil {
			m.status = fmt.Sprintf("slot %d: %s", m.cursor+1, card.Name)
		}

	case key.Matches(msg, m.keys.Cancel):
		m.err = m.host.Dispatch(app.CancelSlotEdit{})

	case key.Matches(msg, m.keys.Rarity):
		m.picker.cycleRarity()

	case key.Matches(msg, m.keys.Type):
		m.picker.cycleCategory()

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		m.picker.table, cmd = m.picker.table.Update(msg)
	}
	return m, cmd
}

// switchDeck selects the deck delta positions away in collection order.
func (m *DeckModel) switchDeck(delta int) {
	decks := m.host.Composer().Decks().All()
	cur := m.host.Composer().Current().ID
	for i, d := range decks {
		if d.ID == cur {
			next := decks[(i+delta+len(decks))%len(decks)]
			m.err = m.host.Dispatch(app.SelectDeck{ID: next.ID})
			m.status = ""
			return
		}
	}
}

// View renders the deck editor.
func (m DeckModel) View() string {
	if m.quitting {
		return ""
	}
	c := m.host.Composer()
	cur := c.Current()

	var b strings.Builder
	if m.player.Name != "" {
		b.WriteString(PlayerHeader(m.player))
		b.WriteString("\n\n")
	}
	b.WriteString(titleStyle.Render("DECK"))
	b.WriteString("  ")
	b.WriteString(m.renderTabs(cur.ID))
	b.WriteString("\n\n")

	editing, picking := c.Editing()
	slots := make([]string, 0, deck.Size)
	for i, card := range c.Cards() {
		marker := "  "
		switch {
		case picking && i == editing:
			marker = "* "
		case i == m.cursor:
			marker = "> "
		}
		slots = append(slots, fmt.Sprintf("%s%d. %s", marker, i+1, CardLabel(card)))
	}
	left := panelStyle.Render(strings.Join(slots, "\n"))
	right := panelStyle.Render(StatsView(c.Stats()))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")

	if picking {
		b.WriteString(fmt.Sprintf("\nReplace slot %d with:\n", editing+1))
		b.WriteString(m.picker.view())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(selectedStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

func (m DeckModel) renderTabs(current deck.DeckID) string {
	decks := m.host.Composer().Decks().All()
	tabs := make([]string, 0, len(decks))
	for _, d := range decks {
		name := d.Name
		if d.Active {
			name += " (active)"
		}
		if d.ID == current {
			tabs = append(tabs, selectedStyle.Render("["+name+"]"))
		} else {
			tabs = append(tabs, mutedStyle.Render(name))
		}
	}
	return strings.Join(tabs, "  ")
}

// RunDeckEditor runs the interactive deck editor until the player quits.
func RunDeckEditor(host *app.Host, player config.Player) error {
	p := tea.NewProgram(
		NewDeckModel(host, player),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
