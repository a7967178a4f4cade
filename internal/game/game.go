package game

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/XThorin/WizardChase/internal/audio"
	"github.com/XThorin/WizardChase/internal/config"
	"github.com/XThorin/WizardChase/internal/core"
	"github.com/XThorin/WizardChase/internal/i18n"
)

// Preferences are the persisted player settings.
type Preferences struct {
	Language     string
	MusicEnabled bool
	SoundEnabled bool
}

// Options configures a Game.
type Options struct {
	Rules       config.Rules
	Seed        int64 // 0 means derive from the clock
	Audio       audio.Player
	Preferences Preferences
	Now         func() time.Time
}

// Game is the round state machine. It is not safe for concurrent use;
// the Engine serializes every call on its own goroutine.
type Game struct {
	rules  config.Rules
	rng    *rand.Rand
	audio  audio.Player
	now    func() time.Time
	screen Screen
	player Player
	state  State
	prefs  Preferences
	pickup Pickup

	gen         uint64 // Round generation; ticks carrying another value are stale
	nextPowerUp uint64
}

// New creates a Game on the welcome screen.
func New(opts Options) *Game {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a := opts.Audio
	if a == nil {
		a = audio.Nop{}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	prefs := opts.Preferences
	if _, err := i18n.Lookup(prefs.Language); err != nil {
		prefs.Language = i18n.English.Code
	}

	g := &Game{
		rules: opts.Rules,
		rng:   rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
		audio: a,
		now:   now,
		prefs: prefs,
	}
	g.state = g.defaultState()
	a.SetMusicEnabled(prefs.MusicEnabled)
	a.SetSoundEnabled(prefs.SoundEnabled)
	return g
}

func (g *Game) defaultState() State {
	return State{TimeRemaining: g.rules.Round.DurationSeconds}
}

// DefaultState is the state before any round and after a restart.
func (g *Game) DefaultState() State {
	return g.defaultState()
}

// Rules returns the rules the game was built with.
func (g *Game) Rules() config.Rules {
	return g.rules
}

// Generation returns the current round generation.
func (g *Game) Generation() uint64 {
	return g.gen
}

// Screen returns the active screen.
func (g *Game) Screen() Screen {
	return g.screen
}

// Preferences returns the current settings.
func (g *Game) Preferences() Preferences {
	return g.prefs
}

// Snapshot returns an immutable copy of the game for rendering.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Screen:       g.screen,
		Player:       g.player,
		State:        g.state,
		Language:     g.prefs.Language,
		MusicEnabled: g.prefs.MusicEnabled,
		SoundEnabled: g.prefs.SoundEnabled,
		LastPickup:   g.pickup,
		Generation:   g.gen,
	}
}

// SetPlayerName stores the name typed on the welcome screen.
func (g *Game) SetPlayerName(name string) {
	g.player.Name = name
}

// StartGame begins a round for name. The previous generation's ticks become
// stale the moment the generation advances.
func (g *Game) StartGame(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if g.screen != ScreenWelcome {
		return fmt.Errorf("%w: start from %s", ErrInvalidScreen, g.screen)
	}

	g.gen++
	g.player.Name = name
	g.player.Score = 0
	g.state = State{
		Playing:       true,
		TimeRemaining: g.rules.Round.DurationSeconds,
		Wizard:        g.rules.Round.Start(),
	}
	g.screen = ScreenGame
	g.audio.StartMusic()
	return nil
}

func (g *Game) live() bool {
	return g.state.Playing && !g.state.Paused
}

// CatchWizard scores a hit on the wizard and relocates it.
func (g *Game) CatchWizard() bool {
	if !g.live() {
		return false
	}
	g.addScore(g.rules.Wizard.CatchPoints)
	g.audio.Play(audio.EffectWizardCaught)
	g.state.Wizard = g.randomPosition()
	return true
}

func (g *Game) addScore(points int) {
	g.state.Score += points
	g.player.Score = g.state.Score
	if g.state.Score > g.player.HighScore {
		g.player.HighScore = g.state.Score
	}
}

// CatchPowerUp collects the visible power-up and applies its effect.
func (g *Game) CatchPowerUp() (PowerUpType, bool) {
	if !g.live() || g.state.PowerUp == nil {
		return 0, false
	}
	kind := g.state.PowerUp.Type
	g.audio.Play(audio.EffectPowerUp)

	switch kind {
	case PowerUpScoreMultiplier:
		g.addScore(g.rules.PowerUps.ScoreBonus)
	case PowerUpTimeBonus:
		g.state.TimeRemaining += g.rules.PowerUps.TimeBonusSeconds
	case PowerUpSlowMotion:
		// Only clears the power-up; the mover cadence is unchanged.
	}
	g.state.PowerUp = nil
	g.pickup = Pickup{Seq: g.pickup.Seq + 1, Type: kind}
	return kind, true
}

// RoundTick handles one countdown tick for generation gen. It reports true
// when the countdown reached zero and the round must end.
func (g *Game) RoundTick(gen uint64) bool {
	if gen != g.gen || !g.live() {
		return false
	}
	if g.state.TimeRemaining > 0 {
		g.state.TimeRemaining--
		g.state.Elapsed++
	}
	return g.state.TimeRemaining == 0
}

// MoveTick relocates the wizard for generation gen.
func (g *Game) MoveTick(gen uint64) bool {
	if gen != g.gen || !g.live() {
		return false
	}
	g.state.Wizard = g.randomPosition()
	return true
}

// SpawnTick places a new power-up for generation gen, replacing any
// visible one.
func (g *Game) SpawnTick(gen uint64) (PowerUp, bool) {
	if gen != g.gen || !g.live() {
		return PowerUp{}, false
	}
	g.nextPowerUp++
	p := &PowerUp{
		ID:   g.nextPowerUp,
		Type: PowerUpTypes[g.rng.IntN(len(PowerUpTypes))],
		Pos:  g.randomPosition(),
	}
	g.state.PowerUp = p
	return *p, true
}

// ExpirePowerUp clears the power-up with the given id if it is still the
// one on the field.
func (g *Game) ExpirePowerUp(gen, id uint64) bool {
	if gen != g.gen || g.state.PowerUp == nil || g.state.PowerUp.ID != id {
		return false
	}
	g.state.PowerUp = nil
	return true
}

// EndGame finishes the live round. It returns false if no round is live,
// so a round ends at most once.
func (g *Game) EndGame() (Result, bool) {
	if !g.state.Playing {
		return Result{}, false
	}
	g.state.Playing = false
	g.audio.StopMusic()
	g.audio.Play(audio.EffectGameOver)
	g.screen = ScreenResults

	return Result{
		RoundID:    uuid.NewString(),
		Player:     g.player.Name,
		Score:      g.state.Score,
		TimePlayed: g.state.Elapsed,
		NewRecord:  IsNewRecord(g.state.Score, g.player.HighScore),
		CreatedAt:  g.now(),
	}, true
}

// IsNewRecord reports whether the results screen shows the record banner.
func IsNewRecord(score, highScore int) bool {
	return highScore > 0 && score >= highScore
}

// Restart abandons any round and returns to the welcome screen. The player
// keeps only the name unless rules keep the high score.
func (g *Game) Restart() {
	g.gen++
	g.state = g.defaultState()
	player := Player{Name: g.player.Name}
	if g.rules.Round.KeepHighScore {
		player.HighScore = g.player.HighScore
	}
	g.player = player
	g.pickup = Pickup{}
	g.audio.StopMusic()
	g.screen = ScreenWelcome
}

// Pause freezes the live round.
func (g *Game) Pause() bool {
	if !g.state.Playing || g.state.Paused {
		return false
	}
	g.state.Paused = true
	g.audio.PauseMusic()
	return true
}

// Resume continues a paused round.
func (g *Game) Resume() bool {
	if !g.state.Playing || !g.state.Paused {
		return false
	}
	g.state.Paused = false
	g.audio.ResumeMusic()
	return true
}

// ShowSettings opens the settings screen from the welcome screen.
func (g *Game) ShowSettings() error {
	if g.screen != ScreenWelcome {
		return fmt.Errorf("%w: settings from %s", ErrInvalidScreen, g.screen)
	}
	g.screen = ScreenSettings
	return nil
}

// BackFromSettings returns to the welcome screen.
func (g *Game) BackFromSettings() error {
	if g.screen != ScreenSettings {
		return fmt.Errorf("%w: back from %s", ErrInvalidScreen, g.screen)
	}
	g.screen = ScreenWelcome
	return nil
}

// SetLanguage selects a UI language by code.
func (g *Game) SetLanguage(code string) error {
	lang, err := i18n.Lookup(code)
	if err != nil {
		return err
	}
	g.prefs.Language = lang.Code
	return nil
}

// SetMusicEnabled toggles background music.
func (g *Game) SetMusicEnabled(enabled bool) {
	g.prefs.MusicEnabled = enabled
	g.audio.SetMusicEnabled(enabled)
}

// SetSoundEnabled toggles effects.
func (g *Game) SetSoundEnabled(enabled bool) {
	g.prefs.SoundEnabled = enabled
	g.audio.SetSoundEnabled(enabled)
}

// NewSpawnRNG derives an independent generator for the spawner goroutine.
func (g *Game) NewSpawnRNG() *rand.Rand {
	return rand.New(rand.NewPCG(g.rng.Uint64(), g.rng.Uint64()))
}

// SpawnDelay draws the wait before the next spawn, uniform in
// [SpawnMin, SpawnMax).
func SpawnDelay(r *rand.Rand, rules config.PowerUpRules) time.Duration {
	span := rules.SpawnMax - rules.SpawnMin
	if span <= 0 {
		return rules.SpawnMin
	}
	return rules.SpawnMin + time.Duration(r.Int64N(int64(span)))
}

// randomPosition draws a uniform point in the field box.
func (g *Game) randomPosition() core.Vec {
	b := g.rules.Field.Bounds()
	v := b.Lerp(g.rng.Float64(), g.rng.Float64())
	// Rounding can land exactly on the open upper edge.
	if v.X >= b.MaxX {
		v.X = math.Nextafter(b.MaxX, b.MinX)
	}
	if v.Y >= b.MaxY {
		v.Y = math.Nextafter(b.MaxY, b.MinY)
	}
	return v
}
