// Package tui provides the Bubble Tea front end of Wizard Chase: the four
// screens, mouse and keyboard input, and the SSH server that hosts one
// session per connection.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/XThorin/WizardChase/internal/game"
)

// toastDuration is how long a power-up toast stays visible.
const toastDuration = 1500 * time.Millisecond

// snapshotMsg carries a snapshot published by the engine.
type snapshotMsg game.Snapshot

// engineStoppedMsg is sent once the engine's update stream is closed.
type engineStoppedMsg struct{}

// resultSavedMsg is sent after a finished round reached the score store.
type resultSavedMsg struct{}

// toastExpiredMsg hides the toast of the pickup with this sequence number.
type toastExpiredMsg uint64

// runEngine runs the engine for the lifetime of ctx.
func runEngine(ctx context.Context, e *game.Engine) tea.Cmd {
	return func() tea.Msg {
		e.Run(ctx) //nolint:errcheck // Run only returns nil
		return nil
	}
}

// waitForSnapshot blocks until the engine publishes.
func waitForSnapshot(updates <-chan game.Snapshot) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return engineStoppedMsg{}
		}
		return snapshotMsg(s)
	}
}

// waitForSaved blocks until a result is saved or the engine stops.
func waitForSaved(saved <-chan struct{}, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-saved:
			return resultSavedMsg{}
		case <-done:
			return nil
		}
	}
}

func toastCmd(seq uint64) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg(seq)
	})
}
