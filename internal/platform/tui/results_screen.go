package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/XThorin/WizardChase/internal/game"
	"github.com/XThorin/WizardChase/internal/i18n"
	"github.com/XThorin/WizardChase/internal/share"
)

var recordStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("0")).
	Background(lipgloss.Color("11")).
	Padding(0, 2)

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.PlayAgain):
		var cmd tea.Cmd
		m, cmd, _ = m.do(m.engine.Restart)
		return m, cmd

	case key.Matches(msg, m.keys.Share):
		res := m.sharer.Share(m.snap.Player.Name, m.snap.State.Score)
		m.shared = &res
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.shared != nil {
			m.shared = nil
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.board, cmd = m.board.Update(msg)
	return m, cmd
}

func (m Model) viewResults() string {
	t := m.printer.T
	p := m.snap.Player
	st := m.snap.State

	summary := lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("%s: %s", t(i18n.KeyPlayer), p.Name),
		fmt.Sprintf("%s: %d", t(i18n.KeyFinalScore), st.Score),
		fmt.Sprintf("%s: %d %s", t(i18n.KeyTimePlayed), st.Elapsed, t(i18n.KeySeconds)),
	)

	lines := []string{
		titleStyle.Render(t(i18n.KeyGameOver)),
		subtleStyle.Render(t(i18n.KeyResults)),
		"",
		panelStyle.Render(summary),
	}
	if game.IsNewRecord(st.Score, p.HighScore) {
		lines = append(lines, "", recordStyle.Render("🏆 "+t(i18n.KeyNewRecord)))
	}

	if m.shared != nil {
		lines = append(lines, "", m.shareView(*m.shared))
	} else {
		lines = append(lines,
			"",
			titleStyle.Render(t(i18n.KeyBestScores)),
			panelStyle.Render(m.board.View(t(i18n.KeyNoScores))),
		)
	}

	lines = append(lines,
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			highlightStyle.Render(t(i18n.KeyPlayAgain)),
			"  ",
			highlightStyle.Render(t(i18n.KeyShareScore)),
		),
		"",
		m.helpView(),
	)
	return m.page(lines...)
}

// shareView shows the outcome of a share. The fallback panel carries the
// QR code of the intent URL.
func (m Model) shareView(res share.Result) string {
	t := m.printer.T
	if res.Outcome == share.OutcomeOpened {
		return subtleStyle.Render(t(i18n.KeyShareOpened))
	}

	parts := []string{
		t(i18n.KeyShareCopied),
		subtleStyle.Render(res.Message),
	}
	// Show the QR code only when it fits next to the summary.
	if res.QR != "" && lipgloss.Height(res.QR)+16 <= m.height {
		parts = append(parts, "", t(i18n.KeyShareScan), res.QR)
	} else {
		parts = append(parts, "", subtleStyle.Render(truncate(res.URL, max(m.width-8, 20))))
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Center, parts...))
}
