package tui

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/XThorin/WizardChase/internal/config"
	"github.com/XThorin/WizardChase/internal/core"
	"github.com/XThorin/WizardChase/internal/game"
	"github.com/XThorin/WizardChase/internal/i18n"
	"github.com/XThorin/WizardChase/internal/share"
	"github.com/XThorin/WizardChase/internal/storage"
)

// stillRules keeps the wizard and power-ups from acting on their own.
func stillRules() config.Rules {
	r := config.DefaultRules()
	r.Wizard.MoveInterval = time.Hour
	r.PowerUps.SpawnMin = time.Hour
	r.PowerUps.SpawnMax = 2 * time.Hour
	return r
}

type testSession struct {
	model Model
	store *storage.Store
	clip  *bytes.Buffer
}

func newTestSession(t *testing.T, rules config.Rules) *testSession {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	logger := log.New(io.Discard)
	clip := &bytes.Buffer{}

	m := NewModel(context.Background(), Options{
		Runtime:     core.RuntimeConfig{ScreenW: 100, ScreenH: 40, Seed: 7},
		Rules:       rules,
		Store:       store,
		Profile:     "ava",
		Preferences: game.Preferences{Language: "en", MusicEnabled: true, SoundEnabled: true},
		Sharer:      share.New(share.Options{Clipboard: clip, Logger: logger}),
		Logger:      logger,
	})
	go m.engine.Run(m.ctx) //nolint:errcheck

	t.Cleanup(func() {
		m.cancel()
		<-m.engine.Done()
		store.Close()
	})
	return &testSession{model: m, store: store, clip: clip}
}

func (s *testSession) send(t *testing.T, msg tea.Msg) {
	t.Helper()
	next, _ := s.model.Update(msg)
	m, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	s.model = m
}

func (s *testSession) typeText(t *testing.T, text string) {
	t.Helper()
	s.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func (s *testSession) press(t *testing.T, k tea.KeyType) {
	t.Helper()
	s.send(t, tea.KeyMsg{Type: k})
}

func (s *testSession) start(t *testing.T, name string) {
	t.Helper()
	s.typeText(t, name)
	s.press(t, tea.KeyEnter)
	if got := s.model.Snapshot().Screen; got != game.ScreenGame {
		t.Fatalf("Expected game screen after start, got %v", got)
	}
}

func TestWelcomeRequiresName(t *testing.T) {
	s := newTestSession(t, stillRules())

	s.press(t, tea.KeyEnter)

	if got := s.model.Snapshot().Screen; got != game.ScreenWelcome {
		t.Errorf("Expected to stay on welcome, got %v", got)
	}
	want := s.model.printer.T(i18n.KeyNameRequired)
	if !strings.Contains(s.model.View(), want) {
		t.Errorf("Expected %q in view", want)
	}

	s.typeText(t, "A")
	if s.model.nameErr {
		t.Error("Typing should clear the name error")
	}
}

func TestStartAndTapWizardWithMouse(t *testing.T) {
	s := newTestSession(t, stillRules())
	s.start(t, "Ava")

	snap := s.model.Snapshot()
	if snap.Player.Name != "Ava" || snap.State.TimeRemaining != 60 {
		t.Fatalf("Unexpected snapshot after start: %+v", snap)
	}

	r := s.model.field.WizardRect(snap.State.Wizard)
	s.send(t, tea.MouseMsg{
		X:      r.X + 1,
		Y:      r.Y + 1 + hudRows,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})

	if got := s.model.Snapshot().State.Score; got != 10 {
		t.Errorf("Expected score 10 after tapping the wizard, got %d", got)
	}
	if !strings.Contains(s.model.View(), "Ava") {
		t.Error("Expected player name in HUD")
	}
}

func TestTapMissDoesNothing(t *testing.T) {
	s := newTestSession(t, stillRules())
	s.start(t, "Ava")

	before := s.model.Snapshot()
	r := s.model.field.WizardRect(before.State.Wizard)
	s.model.cursorX, s.model.cursorY = s.model.field.ClampCursor(r.Right()+10, r.Bottom()+5)
	s.press(t, tea.KeySpace)

	if got := s.model.Snapshot(); got.State.Score != 0 || got.Version != before.Version {
		t.Errorf("Miss should not reach the engine: %+v", got.State)
	}
}

func TestKeyboardTapAtCursor(t *testing.T) {
	s := newTestSession(t, stillRules())
	s.start(t, "Ava")

	r := s.model.field.WizardRect(s.model.Snapshot().State.Wizard)
	s.model.cursorX, s.model.cursorY = r.X+2, r.Y+1
	s.press(t, tea.KeySpace)

	if got := s.model.Snapshot().State.Score; got != 10 {
		t.Errorf("Expected score 10, got %d", got)
	}
}

func TestCursorStaysInsideField(t *testing.T) {
	s := newTestSession(t, stillRules())
	s.start(t, "Ava")

	for range 100 {
		s.press(t, tea.KeyLeft)
		s.press(t, tea.KeyUp)
	}
	in := s.model.field.Inner()
	if s.model.cursorX != in.X || s.model.cursorY != in.Y {
		t.Errorf("Cursor at (%d, %d), want (%d, %d)", s.model.cursorX, s.model.cursorY, in.X, in.Y)
	}
}

func TestPauseToggle(t *testing.T) {
	s := newTestSession(t, stillRules())
	s.start(t, "Ava")

	s.typeText(t, "p")
	if !s.model.Snapshot().State.Paused {
		t.Fatal("Expected paused round")
	}
	if !strings.Contains(s.model.View(), s.model.printer.T(i18n.KeyPaused)) {
		t.Error("Expected paused label in view")
	}

	s.typeText(t, "p")
	if s.model.Snapshot().State.Paused {
		t.Error("Expected resumed round")
	}
}

func TestExitDialogStay(t *testing.T) {
	s := newTestSession(t, stillRules())
	s.start(t, "Ava")

	s.press(t, tea.KeyEsc)
	if !s.model.confirmExit || !s.model.Snapshot().State.Paused {
		t.Fatal("Exit should open the dialog and pause")
	}
	if !strings.Contains(s.model.View(), s.model.printer.T(i18n.KeyExitTitle)) {
		t.Error("Expected exit dialog in view")
	}

	s.typeText(t, "n")
	if s.model.confirmExit {
		t.Error("Dialog should be closed")
	}
	if s.model.Snapshot().State.Paused {
		t.Error("Staying should resume the round the dialog paused")
	}
}

func TestExitDialogKeepsManualPause(t *testing.T) {
	s := newTestSession(t, stillRules())
	s.start(t, "Ava")

	s.typeText(t, "p")
	s.press(t, tea.KeyEsc)
	s.typeText(t, "n")

	if !s.model.Snapshot().State.Paused {
		t.Error("A round paused before the dialog should stay paused")
	}
}

func TestExitDialogLeave(t *testing.T) {
	s := newTestSession(t, stillRules())
	s.start(t, "Ava")

	s.press(t, tea.KeyEsc)
	s.typeText(t, "y")

	snap := s.model.Snapshot()
	if snap.Screen != game.ScreenWelcome {
		t.Fatalf("Expected welcome screen, got %v", snap.Screen)
	}
	if snap.State.Playing {
		t.Error("Round should be stopped")
	}
	if got := s.model.name.Value(); got != "Ava" {
		t.Errorf("Name input should keep the player name, got %q", got)
	}
}

func TestSettingsFlow(t *testing.T) {
	s := newTestSession(t, stillRules())

	s.press(t, tea.KeyTab)
	if got := s.model.Snapshot().Screen; got != game.ScreenSettings {
		t.Fatalf("Expected settings screen, got %v", got)
	}
	if s.model.settingsCursor != i18n.Index("en") {
		t.Errorf("Cursor should start on the active language, got %d", s.model.settingsCursor)
	}

	// Next language in the catalog.
	s.press(t, tea.KeyDown)
	s.press(t, tea.KeyEnter)
	code := i18n.All()[i18n.Index("en")+1].Code
	if got := s.model.Snapshot().Language; got != code {
		t.Fatalf("Expected language %q, got %q", code, got)
	}
	if got := s.model.printer.Language().Code; got != code {
		t.Errorf("Printer should follow the language, got %q", got)
	}

	for s.model.settingsCursor < s.model.musicRow() {
		s.press(t, tea.KeyDown)
	}
	s.press(t, tea.KeyEnter)
	if s.model.Snapshot().MusicEnabled {
		t.Error("Expected music disabled")
	}

	prefs, err := s.store.LoadPreferences("ava", game.Preferences{Language: "en", MusicEnabled: true, SoundEnabled: true})
	if err != nil {
		t.Fatalf("LoadPreferences failed: %v", err)
	}
	want := game.Preferences{Language: code, MusicEnabled: false, SoundEnabled: true}
	if prefs != want {
		t.Errorf("Stored preferences = %+v, want %+v", prefs, want)
	}

	s.press(t, tea.KeyEsc)
	if got := s.model.Snapshot().Screen; got != game.ScreenWelcome {
		t.Errorf("Expected welcome screen after back, got %v", got)
	}
}

func TestRoundEndShowsResults(t *testing.T) {
	rules := stillRules()
	rules.Round.DurationSeconds = 1
	rules.Round.TickInterval = 5 * time.Millisecond
	s := newTestSession(t, rules)
	s.start(t, "Ava")

	deadline := time.Now().Add(2 * time.Second)
	var snap game.Snapshot
	for {
		var err error
		snap, err = s.model.engine.Snapshot()
		if err != nil {
			t.Fatalf("Snapshot failed: %v", err)
		}
		if snap.Screen == game.ScreenResults {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("Round did not end")
		}
		time.Sleep(5 * time.Millisecond)
	}
	s.send(t, snapshotMsg(snap))

	if !strings.Contains(s.model.View(), s.model.printer.T(i18n.KeyGameOver)) {
		t.Error("Expected game over title")
	}

	select {
	case <-s.model.saved:
	case <-time.After(2 * time.Second):
		t.Fatal("Result was not saved")
	}
	s.send(t, resultSavedMsg{})
	if got := s.model.board.Len(); got != 1 {
		t.Errorf("Expected 1 score on the board, got %d", got)
	}

	s.typeText(t, "s")
	if s.model.shared == nil || s.model.shared.Outcome != share.OutcomeCopied {
		t.Fatalf("Expected copied share, got %+v", s.model.shared)
	}
	if !strings.Contains(s.clip.String(), "\x1b]52;") {
		t.Error("Expected OSC 52 sequence on the clipboard writer")
	}
	if !strings.Contains(s.model.View(), s.model.printer.T(i18n.KeyShareCopied)) {
		t.Error("Expected share panel in view")
	}

	s.press(t, tea.KeyEnter)
	if got := s.model.Snapshot().Screen; got != game.ScreenWelcome {
		t.Errorf("Play again should return to welcome, got %v", got)
	}
}

func TestStaleSnapshotDropped(t *testing.T) {
	s := newTestSession(t, stillRules())

	m, _ := s.model.applySnapshot(game.Snapshot{Version: 5, Language: "en", State: game.State{Score: 50}})
	m, _ = m.applySnapshot(game.Snapshot{Version: 3, Language: "en", State: game.State{Score: 20}})

	if got := m.Snapshot().State.Score; got != 50 {
		t.Errorf("Older snapshot replaced newer one: score %d", got)
	}
}

func TestPickupToast(t *testing.T) {
	s := newTestSession(t, stillRules())

	m, cmd := s.model.applySnapshot(game.Snapshot{
		Version:    1,
		Screen:     game.ScreenGame,
		Language:   "en",
		LastPickup: game.Pickup{Seq: 1, Type: game.PowerUpTimeBonus},
	})
	if cmd == nil {
		t.Error("Expected toast timer")
	}
	if want := m.printer.T(i18n.KeyToastTime, 10); m.toast != want {
		t.Errorf("Toast = %q, want %q", m.toast, want)
	}

	// An expiry for an older toast leaves the current one.
	next, _ := m.Update(toastExpiredMsg(0))
	if next.(Model).toast == "" {
		t.Error("Stale expiry cleared the toast")
	}
	next, _ = m.Update(toastExpiredMsg(1))
	if next.(Model).toast != "" {
		t.Error("Expected toast cleared")
	}
}

func TestResizeKeepsCursorInside(t *testing.T) {
	s := newTestSession(t, stillRules())
	s.start(t, "Ava")

	s.send(t, tea.WindowSizeMsg{Width: 30, Height: 12})

	if !s.model.field.Inner().Contains(s.model.cursorX, s.model.cursorY) {
		t.Errorf("Cursor (%d, %d) outside resized field", s.model.cursorX, s.model.cursorY)
	}
}

func TestHelpForScreens(t *testing.T) {
	k := DefaultKeyMap()
	for _, sc := range []game.Screen{game.ScreenWelcome, game.ScreenGame, game.ScreenResults, game.ScreenSettings} {
		if len(k.helpFor(sc, false).ShortHelp()) == 0 {
			t.Errorf("No help for %v", sc)
		}
	}
	if got := k.helpFor(game.ScreenGame, true); len(got) != 2 {
		t.Errorf("Exit dialog help should list yes and no, got %d bindings", len(got))
	}
}

type fakeScores struct {
	entries []storage.ScoreEntry
	err     error
}

func (f fakeScores) TopScores(limit int) ([]storage.ScoreEntry, error) {
	if len(f.entries) > limit {
		return f.entries[:limit], f.err
	}
	return f.entries, f.err
}

func TestScoreboardLoad(t *testing.T) {
	logger := log.New(io.Discard)

	b := NewScoreboard(fakeScores{entries: []storage.ScoreEntry{
		{Player: "Ava", Score: 120, CreatedAt: time.Now()},
		{Player: "Bo", Score: 80, CreatedAt: time.Now()},
	}}, logger)
	b.Load()
	if b.Len() != 2 {
		t.Errorf("Expected 2 scores, got %d", b.Len())
	}
	if !strings.Contains(b.View("empty"), "Ava") {
		t.Error("Expected player in table")
	}

	empty := NewScoreboard(nil, logger)
	empty.Load()
	if got := empty.View("nothing yet"); !strings.Contains(got, "nothing yet") {
		t.Errorf("Expected empty text, got %q", got)
	}
}
