package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/XThorin/WizardChase/internal/audio"
	"github.com/XThorin/WizardChase/internal/config"
	"github.com/XThorin/WizardChase/internal/core"
	"github.com/XThorin/WizardChase/internal/game"
	"github.com/XThorin/WizardChase/internal/i18n"
	"github.com/XThorin/WizardChase/internal/share"
	"github.com/XThorin/WizardChase/internal/storage"
)

// Options configures a session model.
type Options struct {
	Runtime     core.RuntimeConfig
	Rules       config.Rules
	Audio       audio.Player   // nil plays nothing
	Store       *storage.Store // Optional; scores and preferences
	Profile     string         // Preferences key
	Preferences game.Preferences
	Sharer      *share.Sharer
	Logger      *log.Logger
}

// resultNotifier saves finished rounds and tells the UI once they are
// stored, so the scoreboard can include them.
type resultNotifier struct {
	store *storage.Store
	saved chan struct{}
}

func (n resultNotifier) SaveResult(r game.Result) error {
	if n.store != nil {
		if err := n.store.SaveResult(r); err != nil {
			return err
		}
	}
	select {
	case n.saved <- struct{}{}:
	default:
	}
	return nil
}

// Model is the Bubble Tea model of one Wizard Chase session. It renders the
// latest engine snapshot and turns input into engine intents.
type Model struct {
	engine *game.Engine
	ctx    context.Context
	cancel context.CancelFunc
	rules  config.Rules
	sharer *share.Sharer
	logger *log.Logger
	saved  chan struct{}

	snap    game.Snapshot
	printer *i18n.Printer
	keys    KeyMap
	help    help.Model
	width   int
	height  int

	// Welcome
	name    textinput.Model
	nameErr bool

	// Game
	field         *Field
	cursorX       int
	cursorY       int
	confirmExit   bool
	pausedForExit bool // The exit dialog paused the round
	toast         string
	toastSeq      uint64

	// Results
	board  Scoreboard
	shared *share.Result

	// Settings
	settingsCursor int

	quitting bool
}

// NewModel creates a session model and its engine. The engine runs until
// ctx is cancelled or the program quits.
func NewModel(ctx context.Context, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	sharer := opts.Sharer
	if sharer == nil {
		sharer = share.New(share.Options{Logger: logger})
	}
	rt := opts.Runtime
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		def := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}
	width, height := rt.ScreenW, rt.ScreenH

	saved := make(chan struct{}, 1)
	engineOpts := game.EngineOptions{
		Game: game.Options{
			Rules:       opts.Rules,
			Seed:        rt.Seed,
			Audio:       opts.Audio,
			Preferences: opts.Preferences,
		},
		Logger:  logger,
		Results: resultNotifier{store: opts.Store, saved: saved},
	}
	var source ScoreSource
	if opts.Store != nil {
		engineOpts.Preferences = opts.Store.Profile(opts.Profile)
		source = opts.Store
	}

	ctx, cancel := context.WithCancel(ctx)

	ti := textinput.New()
	ti.CharLimit = 24
	ti.Width = 24
	ti.Prompt = "> "
	ti.Focus()

	h := help.New()
	h.Width = width

	m := Model{
		engine: game.NewEngine(engineOpts),
		ctx:    ctx,
		cancel: cancel,
		rules:  opts.Rules,
		sharer: sharer,
		logger: logger,
		saved:  saved,
		keys:   DefaultKeyMap(),
		help:   h,
		width:  width,
		height: height,
		name:   ti,
		field:  NewField(opts.Rules.Field.Bounds(), width, fieldHeight(height)),
		board:  NewScoreboard(source, logger),
	}
	m.setLanguage(opts.Preferences.Language)
	return m
}

func fieldHeight(height int) int {
	return max(height-hudRows-footerRows, 0)
}

// Init starts the engine and the listeners.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		runEngine(m.ctx, m.engine),
		waitForSnapshot(m.engine.Updates()),
		waitForSaved(m.saved, m.engine.Done()),
		textinput.Blink,
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case snapshotMsg:
		var cmd tea.Cmd
		m, cmd = m.applySnapshot(game.Snapshot(msg))
		return m, tea.Batch(cmd, waitForSnapshot(m.engine.Updates()))

	case engineStoppedMsg:
		m.quitting = true
		return m, tea.Quit

	case resultSavedMsg:
		m.board.Load()
		return m, waitForSaved(m.saved, m.engine.Done())

	case toastExpiredMsg:
		if uint64(msg) == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m.quit()
		}
		switch m.snap.Screen {
		case game.ScreenWelcome:
			return m.updateWelcome(msg)
		case game.ScreenGame:
			return m.updateGame(msg)
		case game.ScreenResults:
			return m.updateResults(msg)
		case game.ScreenSettings:
			return m.updateSettings(msg)
		}

	case tea.MouseMsg:
		if m.snap.Screen == game.ScreenGame {
			return m.handleMouse(msg)
		}
		return m, nil
	}

	if m.snap.Screen == game.ScreenWelcome {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.cancel()
	return m, tea.Quit
}

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.field.Resize(msg.Width, fieldHeight(msg.Height))
	m.cursorX, m.cursorY = m.field.ClampCursor(m.cursorX, m.cursorY)
	return m
}

// do runs an intent and applies the snapshot it returns.
func (m Model) do(intent func() (game.Snapshot, error)) (Model, tea.Cmd, error) {
	s, err := intent()
	if errors.Is(err, game.ErrEngineStopped) {
		m.quitting = true
		return m, tea.Quit, err
	}
	if err != nil && !errors.Is(err, game.ErrEmptyName) {
		m.logger.Debug("intent rejected", "screen", m.snap.Screen, "error", err)
	}
	var cmd tea.Cmd
	m, cmd = m.applySnapshot(s)
	return m, cmd, err
}

// applySnapshot makes s the rendered state. Snapshots older than the
// current one are dropped, since intent replies can overtake the stream.
func (m Model) applySnapshot(s game.Snapshot) (Model, tea.Cmd) {
	if s.Version < m.snap.Version {
		return m, nil
	}
	prev := m.snap
	m.snap = s

	if s.Language != m.printer.Language().Code {
		m.setLanguage(s.Language)
	}

	var cmds []tea.Cmd
	if s.Screen != prev.Screen {
		cmds = append(cmds, m.enterScreen(s.Screen))
	}

	if s.LastPickup.Seq > m.toastSeq {
		m.toastSeq = s.LastPickup.Seq
		m.toast = m.toastText(s.LastPickup.Type)
		cmds = append(cmds, toastCmd(m.toastSeq))
	}
	return m, tea.Batch(cmds...)
}

// enterScreen resets the per-screen view state.
func (m *Model) enterScreen(s game.Screen) tea.Cmd {
	switch s {
	case game.ScreenWelcome:
		m.nameErr = false
		if m.snap.Player.Name != "" {
			m.name.SetValue(m.snap.Player.Name)
			m.name.CursorEnd()
		}
		return m.name.Focus()
	case game.ScreenGame:
		m.name.Blur()
		m.confirmExit = false
		m.pausedForExit = false
		m.toast = ""
		in := m.field.Inner()
		m.cursorX, m.cursorY = in.X+in.W/2, in.Y+in.H/2
	case game.ScreenResults:
		m.shared = nil
		m.board.Load()
	case game.ScreenSettings:
		m.name.Blur()
		m.settingsCursor = max(i18n.Index(m.snap.Language), 0)
	}
	return nil
}

func (m *Model) setLanguage(code string) {
	m.printer = i18n.NewPrinter(code)
	m.name.Placeholder = m.printer.T(i18n.KeyNameHint)
	m.board.SetTitles(m.printer.T(i18n.KeyPlayer), m.printer.T(i18n.KeyScore))
}

func (m Model) toastText(t game.PowerUpType) string {
	switch t {
	case game.PowerUpScoreMultiplier:
		return m.printer.T(i18n.KeyToastScore, m.rules.PowerUps.ScoreBonus)
	case game.PowerUpTimeBonus:
		return m.printer.T(i18n.KeyToastTime, m.rules.PowerUps.TimeBonusSeconds)
	default:
		return m.printer.T(i18n.KeyToastSlow)
	}
}

// View renders the active screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.snap.Screen {
	case game.ScreenGame:
		return m.viewGame()
	case game.ScreenResults:
		return m.viewResults()
	case game.ScreenSettings:
		return m.viewSettings()
	default:
		return m.viewWelcome()
	}
}

// helpView renders the help bar for the active screen.
func (m Model) helpView() string {
	return subtleStyle.Render(m.help.View(m.keys.helpFor(m.snap.Screen, m.confirmExit)))
}

// page centers a block of lines in the window.
func (m Model) page(lines ...string) string {
	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Snapshot returns the snapshot the model renders.
func (m Model) Snapshot() game.Snapshot {
	return m.snap
}

// Run starts a local session and blocks until the player quits.
func Run(ctx context.Context, opts Options) error {
	model := NewModel(ctx, opts)
	defer model.cancel()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func joinNonEmpty(parts ...string) string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "  ")
}
