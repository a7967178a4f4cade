package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/XThorin/WizardChase/internal/game"
	"github.com/XThorin/WizardChase/internal/i18n"
)

// Settings rows: the language catalog followed by the two audio toggles.
func settingsRows() int {
	return len(i18n.All()) + 2
}

func (m Model) musicRow() int { return len(i18n.All()) }
func (m Model) soundRow() int { return len(i18n.All()) + 1 }

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Back):
		m, cmd, _ = m.do(m.engine.BackFromSettings)

	case key.Matches(msg, m.keys.Up):
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.settingsCursor < settingsRows()-1 {
			m.settingsCursor++
		}

	case key.Matches(msg, m.keys.Select):
		m, cmd = m.selectSetting()
	}
	return m, cmd
}

func (m Model) selectSetting() (Model, tea.Cmd) {
	var intent func() (game.Snapshot, error)
	switch row := m.settingsCursor; {
	case row == m.musicRow():
		enabled := !m.snap.MusicEnabled
		intent = func() (game.Snapshot, error) { return m.engine.SetMusicEnabled(enabled) }
	case row == m.soundRow():
		enabled := !m.snap.SoundEnabled
		intent = func() (game.Snapshot, error) { return m.engine.SetSoundEnabled(enabled) }
	default:
		code := i18n.All()[row].Code
		intent = func() (game.Snapshot, error) { return m.engine.SetLanguage(code) }
	}
	m, cmd, _ := m.do(intent)
	return m, cmd
}

func (m Model) viewSettings() string {
	t := m.printer.T

	var langs strings.Builder
	for i, l := range i18n.All() {
		if i > 0 {
			langs.WriteString("\n")
		}
		langs.WriteString(m.settingsLine(i, l.DisplayName, l.Code == m.snap.Language))
	}

	var audio strings.Builder
	audio.WriteString(m.settingsLine(m.musicRow(), fmt.Sprintf("%s: %s", t(i18n.KeyMusic), m.onOff(m.snap.MusicEnabled)), false))
	audio.WriteString("\n")
	audio.WriteString(m.settingsLine(m.soundRow(), fmt.Sprintf("%s: %s", t(i18n.KeySound), m.onOff(m.snap.SoundEnabled)), false))

	return m.page(
		titleStyle.Render("⚙ "+t(i18n.KeySettings)),
		"",
		titleStyle.Render(t(i18n.KeyLanguage)),
		panelStyle.Width(32).Render(langs.String()),
		"",
		titleStyle.Render(t(i18n.KeyAudioSettings)),
		panelStyle.Width(32).Render(audio.String()),
		"",
		m.helpView(),
	)
}

func (m Model) settingsLine(row int, label string, checked bool) string {
	cursor := "  "
	style := lipgloss.NewStyle()
	if row == m.settingsCursor {
		cursor = "> "
		style = style.Bold(true).Foreground(lipgloss.Color("229"))
	}
	mark := ""
	if checked {
		mark = " ✓"
	}
	return style.Render(cursor + label + mark)
}

func (m Model) onOff(on bool) string {
	if on {
		return m.printer.T(i18n.KeyOn)
	}
	return m.printer.T(i18n.KeyOff)
}
