package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/XThorin/WizardChase/internal/core"
	"github.com/XThorin/WizardChase/internal/game"
	"github.com/XThorin/WizardChase/internal/i18n"
)

// lowTime is the remaining time at which the clock turns red.
const lowTime = 10

var (
	hudStyle     = lipgloss.NewStyle().Bold(true)
	lowTimeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	toastStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dialogStyle  = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("57")).
			Padding(1, 3)
)

func (m Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmExit {
		return m.updateExitDialog(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Exit):
		m.confirmExit = true
		if !m.snap.State.Paused {
			var cmd tea.Cmd
			m, cmd, _ = m.do(m.engine.Pause)
			m.pausedForExit = true
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		intent := m.engine.Pause
		if m.snap.State.Paused {
			intent = m.engine.Resume
		}
		var cmd tea.Cmd
		m, cmd, _ = m.do(intent)
		return m, cmd

	case key.Matches(msg, m.keys.Tap):
		return m.tap(m.cursorX, m.cursorY)

	case key.Matches(msg, m.keys.Up):
		m.cursorX, m.cursorY = m.field.ClampCursor(m.cursorX, m.cursorY-1)
	case key.Matches(msg, m.keys.Down):
		m.cursorX, m.cursorY = m.field.ClampCursor(m.cursorX, m.cursorY+1)
	case key.Matches(msg, m.keys.Left):
		m.cursorX, m.cursorY = m.field.ClampCursor(m.cursorX-2, m.cursorY)
	case key.Matches(msg, m.keys.Right):
		m.cursorX, m.cursorY = m.field.ClampCursor(m.cursorX+2, m.cursorY)
	}
	return m, nil
}

// updateExitDialog handles the "leave the round?" dialog. Leaving restarts
// to the welcome screen; staying resumes if the dialog paused the round.
func (m Model) updateExitDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.confirmExit = false
		m, cmd, _ = m.do(m.engine.Restart)
	case key.Matches(msg, m.keys.No):
		m.confirmExit = false
		if m.pausedForExit {
			m.pausedForExit = false
			m, cmd, _ = m.do(m.engine.Resume)
		}
	}
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.confirmExit || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	x, y := msg.X, msg.Y-hudRows
	if !m.field.Inner().Contains(x, y) {
		return m, nil
	}
	m.cursorX, m.cursorY = x, y
	return m.tap(x, y)
}

// tap resolves a tap at field cell (x, y) into an intent.
func (m Model) tap(x, y int) (tea.Model, tea.Cmd) {
	var intent func() (game.Snapshot, error)
	switch m.field.HitTest(m.snap.State, x, y) {
	case TargetPowerUp:
		intent = m.engine.CatchPowerUp
	case TargetWizard:
		intent = m.engine.CatchWizard
	default:
		return m, nil
	}
	m, cmd, _ := m.do(intent)
	return m, cmd
}

func (m Model) viewGame() string {
	st := m.snap.State
	m.field.Draw(st, m.cursorX, m.cursorY, !st.Paused)
	if st.Paused && !m.confirmExit {
		m.field.DrawCentered(m.printer.T(i18n.KeyPaused), core.ColorWhite)
	}

	var b strings.Builder
	b.WriteString(m.hudView())
	b.WriteString("\n")

	if m.confirmExit {
		b.WriteString(m.exitDialogView())
	} else {
		b.WriteString(m.field.View())
	}
	b.WriteString("\n")
	b.WriteString(centerText(toastStyle.Render(m.toast), m.width))
	b.WriteString("\n")
	b.WriteString(m.helpView())
	return b.String()
}

// hudView renders the single HUD line above the field.
func (m Model) hudView() string {
	t := m.printer.T
	st := m.snap.State

	clock := fmt.Sprintf("%s: %d", t(i18n.KeyTime), st.TimeRemaining)
	if st.TimeRemaining <= lowTime {
		clock = lowTimeStyle.Render(clock)
	} else {
		clock = hudStyle.Render(clock)
	}
	score := hudStyle.Render(fmt.Sprintf("%s: %d", t(i18n.KeyScore), st.Score))
	player := subtleStyle.Render(truncate(m.snap.Player.Name, 16))

	status := ""
	if st.Paused {
		status = titleStyle.Render(t(i18n.KeyPaused))
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(joinNonEmpty(" "+clock, score, player, status))
}

// exitDialogView replaces the field while the exit dialog is open. It keeps
// the field's height so the layout does not jump.
func (m Model) exitDialogView() string {
	t := m.printer.T
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(t(i18n.KeyExitTitle)),
		"",
		t(i18n.KeyExitMessage),
		"",
		fmt.Sprintf("[y] %s   [n] %s", t(i18n.KeyYes), t(i18n.KeyNo)),
	)
	return lipgloss.Place(m.width, fieldHeight(m.height), lipgloss.Center, lipgloss.Center, dialogStyle.Render(body))
}
