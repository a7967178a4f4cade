package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/XThorin/WizardChase/internal/game"
)

// KeyMap holds every key binding of the app. Each screen shows the subset
// it reacts to in its help bar.
type KeyMap struct {
	// Welcome
	Start    key.Binding
	Settings key.Binding

	// Game
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Tap   key.Binding
	Pause key.Binding
	Exit  key.Binding

	// Exit dialog
	Yes key.Binding
	No  key.Binding

	// Results
	PlayAgain key.Binding
	Share     key.Binding

	// Settings
	Select key.Binding
	Back   key.Binding

	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Settings: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "settings"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Tap: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space/click", "tap"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Exit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "no"),
		),
		PlayAgain: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter/r", "play again"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// bindingHelp adapts a list of bindings to help.KeyMap.
type bindingHelp []key.Binding

// ShortHelp returns key bindings for the short help view.
func (h bindingHelp) ShortHelp() []key.Binding {
	return h
}

// FullHelp returns key bindings for the full help view.
func (h bindingHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h}
}

// helpFor returns the bindings shown on screen s.
func (k KeyMap) helpFor(s game.Screen, confirming bool) bindingHelp {
	switch s {
	case game.ScreenWelcome:
		return bindingHelp{k.Start, k.Settings, k.ForceQuit}
	case game.ScreenGame:
		if confirming {
			return bindingHelp{k.Yes, k.No}
		}
		return bindingHelp{k.Up, k.Down, k.Left, k.Right, k.Tap, k.Pause, k.Exit, k.Quit}
	case game.ScreenResults:
		return bindingHelp{k.PlayAgain, k.Share, k.Up, k.Down, k.Quit}
	case game.ScreenSettings:
		return bindingHelp{k.Up, k.Down, k.Select, k.Back, k.Quit}
	}
	return bindingHelp{k.ForceQuit}
}
