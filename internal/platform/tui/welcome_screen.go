package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/XThorin/WizardChase/internal/game"
	"github.com/XThorin/WizardChase/internal/i18n"
)

func (m Model) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Start):
		name := m.name.Value()
		var cmd tea.Cmd
		var err error
		m, cmd, err = m.do(func() (game.Snapshot, error) { return m.engine.StartGame(name) })
		if errors.Is(err, game.ErrEmptyName) {
			m.nameErr = true
		}
		return m, cmd

	case key.Matches(msg, m.keys.Settings):
		name := m.name.Value()
		var cmd tea.Cmd
		m, _, _ = m.do(func() (game.Snapshot, error) { return m.engine.SetPlayerName(name) })
		m, cmd, _ = m.do(m.engine.ShowSettings)
		return m, cmd

	case msg.Type == tea.KeyEsc:
		return m.quit()
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	if m.name.Value() != "" {
		m.nameErr = false
	}
	return m, cmd
}

func (m Model) viewWelcome() string {
	t := m.printer.T
	p := m.rules.PowerUps

	rules := panelStyle.
		Width(min(56, max(m.width-4, 20))).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(t(i18n.KeyRulesTitle)),
			t(i18n.KeyRules, m.rules.Wizard.CatchPoints, p.ScoreBonus, p.TimeBonusSeconds),
		))

	lines := []string{
		titleStyle.Render("🧙 " + t(i18n.KeyWelcomeTitle)),
		subtleStyle.Render(t(i18n.KeyWelcomeSubtitle)),
		"",
		rules,
		"",
		m.name.View(),
	}
	if m.nameErr {
		lines = append(lines, errorStyle.Render(t(i18n.KeyNameRequired)))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines,
		"",
		highlightStyle.Render(t(i18n.KeyStartGame)),
		"",
		m.helpView(),
	)
	return m.page(lines...)
}
