package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/XThorin/WizardChase/internal/storage"
)

// Scoreboard layout constants
const (
	boardRows   = 10 // Rounds loaded from the store
	boardHeight = 8  // Visible table rows
)

// ScoreSource is the part of the store the scoreboard reads.
type ScoreSource interface {
	TopScores(limit int) ([]storage.ScoreEntry, error)
}

// Scoreboard shows the best rounds on the results screen.
type Scoreboard struct {
	source  ScoreSource
	logger  *log.Logger
	scores  []storage.ScoreEntry
	columns []table.Column
	table   table.Model
}

// NewScoreboard creates a scoreboard. source may be nil when no database
// is available.
func NewScoreboard(source ScoreSource, logger *log.Logger) Scoreboard {
	b := Scoreboard{source: source, logger: logger}
	b.table = b.createTable()
	return b
}

func (b *Scoreboard) createTable() table.Model {
	b.columns = []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 8},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(b.columns),
		table.WithFocused(true),
		table.WithHeight(boardHeight),
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

	return t
}

// SetTitles relabels the player and score columns for the active language.
func (b *Scoreboard) SetTitles(player, score string) {
	cols := make([]table.Column, len(b.columns))
	copy(cols, b.columns)
	cols[1].Title = player
	cols[2].Title = score
	b.columns = cols
	b.table.SetColumns(cols)
}

// Load reads the top rounds from the store.
func (b *Scoreboard) Load() {
	if b.source == nil {
		b.scores = nil
		b.updateTableRows()
		return
	}

	scores, err := b.source.TopScores(boardRows)
	if err != nil {
		b.logger.Warn("could not load scores", "error", err)
		scores = nil
	}
	b.scores = scores
	b.updateTableRows()
}

// Len returns the number of loaded rounds.
func (b Scoreboard) Len() int {
	return len(b.scores)
}

func (b *Scoreboard) updateTableRows() {
	rows := make([]table.Row, len(b.scores))
	for i, s := range b.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			truncate(s.Player, 16),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	b.table.SetRows(rows)
	b.table.GotoTop()
}

// Update scrolls the table.
func (b Scoreboard) Update(msg tea.Msg) (Scoreboard, tea.Cmd) {
	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

// View renders the table, or empty when nothing is recorded.
func (b Scoreboard) View(empty string) string {
	if len(b.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		return emptyStyle.Render(empty)
	}
	return b.table.View()
}
