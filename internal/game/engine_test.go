package game

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/XThorin/WizardChase/internal/config"
)

type resultSink struct {
	ch chan Result
}

func (s *resultSink) SaveResult(r Result) error {
	s.ch <- r
	return nil
}

type prefSink struct {
	mu    sync.Mutex
	saved []Preferences
	err   error
}

func (s *prefSink) SavePreferences(p Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, p)
	return s.err
}

func (s *prefSink) last() (Preferences, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.saved) == 0 {
		return Preferences{}, 0
	}
	return s.saved[len(s.saved)-1], len(s.saved)
}

func fastRules(duration int) config.Rules {
	r := config.DefaultRules()
	r.Round.DurationSeconds = duration
	r.Round.TickInterval = 2 * time.Millisecond
	r.Wizard.MoveInterval = 2 * time.Millisecond
	r.PowerUps.SpawnMin = time.Millisecond
	r.PowerUps.SpawnMax = 3 * time.Millisecond
	r.PowerUps.Lifetime = 5 * time.Millisecond
	return r
}

func runEngine(t *testing.T, opts EngineOptions) (*Engine, context.CancelFunc) {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Game.Seed == 0 {
		opts.Game.Seed = 7
	}
	e := NewEngine(opts)
	ctx, cancel := context.WithCancel(context.Background())
	go e.Run(ctx) //nolint:errcheck // Run only returns nil
	t.Cleanup(func() {
		cancel()
		<-e.Done()
	})
	return e, cancel
}

// waitFor polls the engine until cond holds or the deadline passes.
func waitFor(t *testing.T, e *Engine, cond func(Snapshot) bool) Snapshot {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		s, err := e.Snapshot()
		if err != nil {
			t.Fatalf("Snapshot() failed: %v", err)
		}
		if cond(s) {
			return s
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached before deadline")
	return Snapshot{}
}

func TestEngineRoundEndsAndSavesResult(t *testing.T) {
	sink := &resultSink{ch: make(chan Result, 1)}
	e, _ := runEngine(t, EngineOptions{
		Game:    Options{Rules: fastRules(50)},
		Results: sink,
	})

	if _, err := e.StartGame("Ava"); err != nil {
		t.Fatalf("StartGame() failed: %v", err)
	}
	if _, err := e.CatchWizard(); err != nil {
		t.Fatalf("CatchWizard() failed: %v", err)
	}

	select {
	case r := <-sink.ch:
		if r.Player != "Ava" || r.Score < 10 {
			t.Errorf("Unexpected result %+v", r)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("result not saved")
	}

	s := waitFor(t, e, func(s Snapshot) bool { return s.Screen == ScreenResults })
	if s.State.Playing || s.State.TimeRemaining != 0 {
		t.Errorf("Unexpected final state %+v", s.State)
	}

	// No second result for the same round.
	select {
	case r := <-sink.ch:
		t.Errorf("Unexpected second result %+v", r)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestEngineRejectsEmptyName(t *testing.T) {
	e, _ := runEngine(t, EngineOptions{Game: Options{Rules: fastRules(5)}})
	s, err := e.StartGame("")
	if !errors.Is(err, ErrEmptyName) {
		t.Fatalf("Expected ErrEmptyName, got %v", err)
	}
	if s.Screen != ScreenWelcome {
		t.Errorf("Expected WELCOME, got %s", s.Screen)
	}
}

func TestEngineRestartStopsTimers(t *testing.T) {
	e, _ := runEngine(t, EngineOptions{Game: Options{Rules: fastRules(1000)}})

	if _, err := e.StartGame("Ava"); err != nil {
		t.Fatalf("StartGame() failed: %v", err)
	}
	waitFor(t, e, func(s Snapshot) bool { return s.State.TimeRemaining < 1000 })

	s, err := e.Restart()
	if err != nil {
		t.Fatalf("Restart() failed: %v", err)
	}
	if s.Screen != ScreenWelcome {
		t.Errorf("Expected WELCOME, got %s", s.Screen)
	}
	want := State{TimeRemaining: 1000}
	if s.State != want {
		t.Errorf("State not reset: %+v", s.State)
	}

	time.Sleep(30 * time.Millisecond)
	s, _ = e.Snapshot()
	if s.State != want {
		t.Errorf("Stale timer mutated state after restart: %+v", s.State)
	}
}

func TestEnginePauseFreezesCountdown(t *testing.T) {
	e, _ := runEngine(t, EngineOptions{Game: Options{Rules: fastRules(1000)}})

	if _, err := e.StartGame("Ava"); err != nil {
		t.Fatalf("StartGame() failed: %v", err)
	}
	waitFor(t, e, func(s Snapshot) bool { return s.State.TimeRemaining < 995 })

	paused, err := e.Pause()
	if err != nil {
		t.Fatalf("Pause() failed: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	s, _ := e.Snapshot()
	if s.State.TimeRemaining != paused.State.TimeRemaining || s.State.Wizard != paused.State.Wizard {
		t.Errorf("State changed while paused: %+v -> %+v", paused.State, s.State)
	}

	if _, err := e.Resume(); err != nil {
		t.Fatalf("Resume() failed: %v", err)
	}
	waitFor(t, e, func(s Snapshot) bool { return s.State.TimeRemaining < paused.State.TimeRemaining })
}

func TestEnginePowerUpSpawnsAndExpires(t *testing.T) {
	e, _ := runEngine(t, EngineOptions{Game: Options{Rules: fastRules(1000)}})

	if _, err := e.StartGame("Ava"); err != nil {
		t.Fatalf("StartGame() failed: %v", err)
	}
	s := waitFor(t, e, func(s Snapshot) bool { return s.State.PowerUp != nil })
	bounds := fastRules(1000).Field.Bounds()
	if !bounds.Contains(s.State.PowerUp.Pos) {
		t.Errorf("Power-up out of bounds: %+v", s.State.PowerUp.Pos)
	}

	// Pausing stops new spawns; expiry still clears the visible one.
	if _, err := e.Pause(); err != nil {
		t.Fatalf("Pause() failed: %v", err)
	}
	waitFor(t, e, func(s Snapshot) bool { return s.State.PowerUp == nil })
}

func TestEnginePreferencesSavedSynchronously(t *testing.T) {
	sink := &prefSink{}
	e, _ := runEngine(t, EngineOptions{
		Game:        Options{Rules: fastRules(5), Preferences: Preferences{Language: "en", MusicEnabled: true, SoundEnabled: true}},
		Preferences: sink,
	})

	if _, err := e.SetLanguage("ja"); err != nil {
		t.Fatalf("SetLanguage() failed: %v", err)
	}
	p, n := sink.last()
	if n != 1 || p.Language != "ja" {
		t.Errorf("Expected saved language ja, got %+v (%d saves)", p, n)
	}

	if _, err := e.SetMusicEnabled(false); err != nil {
		t.Fatalf("SetMusicEnabled() failed: %v", err)
	}
	if _, err := e.SetSoundEnabled(false); err != nil {
		t.Fatalf("SetSoundEnabled() failed: %v", err)
	}
	p, n = sink.last()
	if n != 3 || p.MusicEnabled || p.SoundEnabled || p.Language != "ja" {
		t.Errorf("Unexpected saved preferences %+v (%d saves)", p, n)
	}

	if _, err := e.SetLanguage("zz"); err == nil {
		t.Error("Expected error for unknown language")
	}
	if _, n := sink.last(); n != 3 {
		t.Errorf("Invalid language should not be saved, got %d saves", n)
	}
}

func TestEnginePreferenceFailureKeepsChange(t *testing.T) {
	sink := &prefSink{err: errors.New("disk full")}
	e, _ := runEngine(t, EngineOptions{
		Game:        Options{Rules: fastRules(5)},
		Preferences: sink,
	})

	s, err := e.SetLanguage("ru")
	if err != nil {
		t.Fatalf("SetLanguage() should not surface save errors, got %v", err)
	}
	if s.Language != "ru" {
		t.Errorf("Expected ru, got %q", s.Language)
	}
}

func TestEngineUpdatesDeliverLatest(t *testing.T) {
	e, _ := runEngine(t, EngineOptions{Game: Options{Rules: fastRules(5)}})

	if _, err := e.SetPlayerName("Ava"); err != nil {
		t.Fatalf("SetPlayerName() failed: %v", err)
	}
	if _, err := e.ShowSettings(); err != nil {
		t.Fatalf("ShowSettings() failed: %v", err)
	}

	select {
	case s := <-e.Updates():
		if s.Screen != ScreenSettings || s.Player.Name != "Ava" {
			t.Errorf("Expected latest snapshot, got %+v", s)
		}
	case <-time.After(time.Second):
		t.Fatal("no update delivered")
	}
}

func TestEngineStopsOnCancel(t *testing.T) {
	e, cancel := runEngine(t, EngineOptions{Game: Options{Rules: fastRules(1000)}})

	if _, err := e.StartGame("Ava"); err != nil {
		t.Fatalf("StartGame() failed: %v", err)
	}
	cancel()

	select {
	case <-e.Done():
	case <-time.After(time.Second):
		t.Fatal("engine did not stop")
	}

	for range e.Updates() {
	}
	if _, err := e.CatchWizard(); !errors.Is(err, ErrEngineStopped) {
		t.Errorf("Expected ErrEngineStopped, got %v", err)
	}
}

func TestEngineSnapshotVersionsIncrease(t *testing.T) {
	e, _ := runEngine(t, EngineOptions{Game: Options{Rules: fastRules(5)}})

	first, err := e.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() failed: %v", err)
	}
	second, err := e.SetPlayerName("Ava")
	if err != nil {
		t.Fatalf("SetPlayerName() failed: %v", err)
	}
	if first.Version == 0 || second.Version <= first.Version {
		t.Errorf("Versions not increasing: %d then %d", first.Version, second.Version)
	}
}
