package game

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/XThorin/WizardChase/internal/config"
)

// ErrEngineStopped is returned by intents after Run has returned.
var ErrEngineStopped = errors.New("game: engine stopped")

// ResultSaver persists finished rounds.
type ResultSaver interface {
	SaveResult(r Result) error
}

// PreferenceSaver persists settings changes.
type PreferenceSaver interface {
	SavePreferences(p Preferences) error
}

// EngineOptions configures an Engine.
type EngineOptions struct {
	Game        Options
	Logger      *log.Logger
	Results     ResultSaver     // Optional
	Preferences PreferenceSaver // Optional
}

// Engine owns a Game on a single goroutine. UI intents and timer ticks are
// closures posted to its inbox and run one at a time, so every tick sees and
// replaces the whole state.
type Engine struct {
	game    *Game
	logger  *log.Logger
	results ResultSaver
	prefs   PreferenceSaver

	inbox   chan func()
	updates chan Snapshot
	done    chan struct{}
	version uint64 // Stamped on every published snapshot

	// Owned by the Run goroutine.
	ctx         context.Context
	cancelRound context.CancelFunc
}

// NewEngine creates an engine. Nothing happens until Run is called.
func NewEngine(opts EngineOptions) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		game:    New(opts.Game),
		logger:  logger,
		results: opts.Results,
		prefs:   opts.Preferences,
		inbox:   make(chan func(), 16),
		updates: make(chan Snapshot, 1),
		done:    make(chan struct{}),
	}
}

// Updates delivers snapshots after every change. Only the latest unread
// snapshot is kept. The channel is closed when Run returns.
func (e *Engine) Updates() <-chan Snapshot {
	return e.updates
}

// Done is closed when Run returns.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// Run processes intents and ticks until ctx is cancelled. Cancelling stops
// all timers and the music.
func (e *Engine) Run(ctx context.Context) error {
	e.ctx = ctx
	defer func() {
		e.stopTimers()
		e.game.audio.StopMusic()
		close(e.done)
		close(e.updates)
	}()

	e.publish()
	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-e.inbox:
			fn()
		}
	}
}

// apply runs fn on the engine goroutine and returns the resulting snapshot.
func (e *Engine) apply(fn func(g *Game) error) (Snapshot, error) {
	type reply struct {
		snap Snapshot
		err  error
	}
	replyc := make(chan reply, 1)
	job := func() {
		err := fn(e.game)
		replyc <- reply{snap: e.publish(), err: err}
	}

	select {
	case e.inbox <- job:
	case <-e.done:
		return Snapshot{}, ErrEngineStopped
	}
	select {
	case r := <-replyc:
		return r.snap, r.err
	case <-e.done:
		return Snapshot{}, ErrEngineStopped
	}
}

// publish replaces any unread snapshot with the current one and returns it.
// Only the engine goroutine sends, so the send never blocks after the drain.
func (e *Engine) publish() Snapshot {
	e.version++
	s := e.game.Snapshot()
	s.Version = e.version
	select {
	case <-e.updates:
	default:
	}
	e.updates <- s
	return s
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() (Snapshot, error) {
	return e.apply(func(*Game) error { return nil })
}

// SetPlayerName stores the name typed so far.
func (e *Engine) SetPlayerName(name string) (Snapshot, error) {
	return e.apply(func(g *Game) error {
		g.SetPlayerName(name)
		return nil
	})
}

// StartGame starts a round and its three timers.
func (e *Engine) StartGame(name string) (Snapshot, error) {
	return e.apply(func(g *Game) error {
		e.stopTimers()
		if err := g.StartGame(name); err != nil {
			return err
		}
		e.startTimers()
		e.logger.Debug("round started", "player", g.player.Name, "generation", g.gen)
		return nil
	})
}

// CatchWizard registers a hit on the wizard.
func (e *Engine) CatchWizard() (Snapshot, error) {
	return e.apply(func(g *Game) error {
		g.CatchWizard()
		return nil
	})
}

// CatchPowerUp collects the visible power-up.
func (e *Engine) CatchPowerUp() (Snapshot, error) {
	return e.apply(func(g *Game) error {
		if kind, ok := g.CatchPowerUp(); ok {
			e.logger.Debug("power-up collected", "type", kind)
		}
		return nil
	})
}

// Pause freezes the round.
func (e *Engine) Pause() (Snapshot, error) {
	return e.apply(func(g *Game) error {
		g.Pause()
		return nil
	})
}

// Resume continues a paused round.
func (e *Engine) Resume() (Snapshot, error) {
	return e.apply(func(g *Game) error {
		g.Resume()
		return nil
	})
}

// Restart cancels the timers, then resets the round and the player.
func (e *Engine) Restart() (Snapshot, error) {
	return e.apply(func(g *Game) error {
		e.stopTimers()
		g.Restart()
		return nil
	})
}

// ShowSettings opens the settings screen.
func (e *Engine) ShowSettings() (Snapshot, error) {
	return e.apply(func(g *Game) error { return g.ShowSettings() })
}

// BackFromSettings returns to the welcome screen.
func (e *Engine) BackFromSettings() (Snapshot, error) {
	return e.apply(func(g *Game) error { return g.BackFromSettings() })
}

// SetLanguage selects a language and saves it before returning.
func (e *Engine) SetLanguage(code string) (Snapshot, error) {
	return e.apply(func(g *Game) error {
		if err := g.SetLanguage(code); err != nil {
			return err
		}
		e.savePreferences(g.Preferences())
		return nil
	})
}

// SetMusicEnabled toggles music and saves the preference.
func (e *Engine) SetMusicEnabled(enabled bool) (Snapshot, error) {
	return e.apply(func(g *Game) error {
		g.SetMusicEnabled(enabled)
		e.savePreferences(g.Preferences())
		return nil
	})
}

// SetSoundEnabled toggles effects and saves the preference.
func (e *Engine) SetSoundEnabled(enabled bool) (Snapshot, error) {
	return e.apply(func(g *Game) error {
		g.SetSoundEnabled(enabled)
		e.savePreferences(g.Preferences())
		return nil
	})
}

// savePreferences writes synchronously. A failure is logged and the
// in-memory change stands.
func (e *Engine) savePreferences(p Preferences) {
	if e.prefs == nil {
		return
	}
	if err := e.prefs.SavePreferences(p); err != nil {
		e.logger.Warn("could not save preferences", "error", err)
	}
}

func (e *Engine) saveResult(r Result) {
	e.logger.Info("round finished", "round", r.RoundID, "player", r.Player, "score", r.Score, "record", r.NewRecord)
	if e.results == nil {
		return
	}
	go func() {
		if err := e.results.SaveResult(r); err != nil {
			e.logger.Warn("could not save result", "round", r.RoundID, "error", err)
		}
	}()
}

// startTimers launches the round timer, the wizard mover and the spawner
// under one context.
func (e *Engine) startTimers() {
	ctx, cancel := context.WithCancel(e.ctx)
	e.cancelRound = cancel

	gen := e.game.Generation()
	rules := e.game.Rules()
	spawnRNG := e.game.NewSpawnRNG()

	go e.every(ctx, rules.Round.TickInterval, func() { e.roundTick(gen) })
	go e.every(ctx, rules.Wizard.MoveInterval, func() {
		if e.game.MoveTick(gen) {
			e.publish()
		}
	})
	go e.spawnLoop(ctx, gen, spawnRNG, rules.PowerUps)
}

// stopTimers cancels the live round's timers, if any.
func (e *Engine) stopTimers() {
	if e.cancelRound != nil {
		e.cancelRound()
		e.cancelRound = nil
	}
}

func (e *Engine) roundTick(gen uint64) {
	if !e.game.RoundTick(gen) {
		e.publish()
		return
	}
	e.stopTimers()
	if r, ok := e.game.EndGame(); ok {
		e.saveResult(r)
	}
	e.publish()
}

// post queues fn on the engine unless ctx ends first.
func (e *Engine) post(ctx context.Context, fn func()) bool {
	select {
	case e.inbox <- fn:
		return true
	case <-ctx.Done():
		return false
	}
}

// every posts fn once per interval until ctx is cancelled.
func (e *Engine) every(ctx context.Context, interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !e.post(ctx, fn) {
				return
			}
		}
	}
}

// sleep waits for d or until ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// spawnLoop waits a random delay, then asks the engine to place a power-up.
// The delay keeps running while paused; the spawn itself is skipped.
func (e *Engine) spawnLoop(ctx context.Context, gen uint64, rng *rand.Rand, rules config.PowerUpRules) {
	for {
		if !sleep(ctx, SpawnDelay(rng, rules)) {
			return
		}
		ok := e.post(ctx, func() {
			p, spawned := e.game.SpawnTick(gen)
			if !spawned {
				return
			}
			go e.expireAfter(ctx, gen, p.ID, rules.Lifetime)
			e.publish()
		})
		if !ok {
			return
		}
	}
}

// expireAfter clears power-up id once its lifetime passes.
func (e *Engine) expireAfter(ctx context.Context, gen, id uint64, lifetime time.Duration) {
	if !sleep(ctx, lifetime) {
		return
	}
	e.post(ctx, func() {
		if e.game.ExpirePowerUp(gen, id) {
			e.publish()
		}
	})
}
