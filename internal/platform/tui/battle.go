package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-royale/internal/app"
	"github.com/vovakirdan/tui-royale/internal/battle"
	"github.com/vovakirdan/tui-royale/internal/sched"
)

// BattleModel is the Bubble Tea model for the battle screen. Every frame
// advances the manual scheduler by the elapsed wall time, so the session's
// ticks run on the Bubble Tea update goroutine together with key intents.
type BattleModel struct {
	host     *app.Host
	sched    *sched.Manual
	fps      int
	frames   frameClock
	keys     BattleKeyMap
	help     help.Model
	err      error
	quitting bool
}

// NewBattleModel creates a battle screen for the host's current session.
func NewBattleModel(host *app.Host, s *sched.Manual, fps int) BattleModel {
	if fps <= 0 {
		fps = 30
	}
	return BattleModel{
		host:  host,
		sched: s,
		fps:   fps,
		keys:  DefaultBattleKeyMap(),
		help:  help.New(),
	}
}

// Init starts the frame loop.
func (m BattleModel) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m BattleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m BattleModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Exit):
		m.leave()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.step(-1)

	case key.Matches(msg, m.keys.Right):
		m.step(1)

	default:
		for i, b := range m.keys.cards() {
			if key.Matches(msg, b) {
				m.err = m.host.Dispatch(app.SelectHandCard{Index: i})
				break
			}
		}
	}

	return m, nil
}

// step moves the hand highlight by delta, wrapping around.
func (m *BattleModel) step(delta int) {
	s, ok := m.host.Session()
	if !ok {
		return
	}
	snap := s.Snapshot()
	n := len(snap.Hand)
	next := 0
	if snap.Selected >= 0 {
		next = (snap.Selected + delta + n) % n
	}
	if next == snap.Selected {
		return
	}
	m.err = m.host.Dispatch(app.SelectHandCard{Index: next})
}

func (m *BattleModel) leave() {
	m.quitting = true
	if s, ok := m.host.Session(); ok && !s.Ended() {
		m.err = m.host.Dispatch(app.EndBattle{})
	}
}

func (m BattleModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if d := m.frames.delta(now); d > 0 {
		m.sched.Advance(d)
	}
	if s, ok := m.host.Session(); !ok || s.Ended() {
		// Frozen result screen; keys still work.
		return m, nil
	}
	return m, tickCmd(m.fps)
}

// Result returns the final snapshot of the session.
func (m BattleModel) Result() (battle.Snapshot, bool) {
	s, ok := m.host.Session()
	if !ok {
		return battle.Snapshot{}, false
	}
	return s.Snapshot(), true
}

// View renders the battle screen.
func (m BattleModel) View() string {
	if m.quitting {
		return ""
	}
	snap, ok := m.Result()
	if !ok {
		return errorStyle.Render("no battle in progress") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("BATTLE"))
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render("Time "))
	b.WriteString(snap.Remaining)
	b.WriteString("\n\n")

	b.WriteString(m.renderHand(snap))
	b.WriteString("\n\n")
	b.WriteString("Elixir ")
	b.WriteString(ElixirBar(snap.Clock.Resource, snap.Clock.MaxResource))
	b.WriteString("\n\n")

	if snap.Ended {
		b.WriteString(selectedStyle.Render(fmt.Sprintf("Battle over (%s)", snap.Reason)))
		b.WriteString("\n\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

func (m BattleModel) renderHand(snap battle.Snapshot) string {
	s, _ := m.host.Session()
	cells := make([]string, 0, len(snap.Hand))
	for i, c := range snap.Hand {
		style := panelStyle
		if i == snap.Selected {
			style = style.BorderForeground(lipgloss.Color("229"))
		}
		label := CardLabel(c)
		if !s.CanPlay(i) {
			label = mutedStyle.Render(fmt.Sprintf("(%d) %s", c.Cost, c.Name))
		}
		cells = append(cells, style.Render(fmt.Sprintf("%d\n%s", i+1, label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// RunBattle starts a battle on host and runs the battle screen until the
// player leaves. It returns the final session snapshot.
func RunBattle(host *app.Host, s *sched.Manual, fps int) (battle.Snapshot, error) {
	if err := host.Dispatch(app.StartBattle{}); err != nil {
		return battle.Snapshot{}, err
	}

	p := tea.NewProgram(
		NewBattleModel(host, s, fps),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return battle.Snapshot{}, err
	}
	m, ok := finalModel.(BattleModel)
	if !ok {
		return battle.Snapshot{}, nil
	}
	snap, _ := m.Result()
	return snap, nil
}
