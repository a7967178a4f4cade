// Package config provides YAML-based rules loading for Wizard Chase.
// Rules cover round timing, scoring, the spawn box and audio defaults.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/XThorin/WizardChase/internal/core"
)

// Rules contains all tunable parameters of a round.
type Rules struct {
	Round       RoundRules      `yaml:"round"`
	Wizard      WizardRules     `yaml:"wizard"`
	Field       FieldRules      `yaml:"field"`
	PowerUps    PowerUpRules    `yaml:"power_ups"`
	Audio       AudioRules      `yaml:"audio"`
	Preferences PreferenceRules `yaml:"preferences"`
}

// RoundRules defines the countdown.
type RoundRules struct {
	DurationSeconds int           `yaml:"duration_seconds"`
	TickInterval    time.Duration `yaml:"tick_interval"`
	StartX          float64       `yaml:"start_x"` // Wizard position when a round starts
	StartY          float64       `yaml:"start_y"`
	KeepHighScore   bool          `yaml:"keep_high_score"` // Preserve high score across restarts
}

// WizardRules defines the moving target.
type WizardRules struct {
	MoveInterval time.Duration `yaml:"move_interval"`
	CatchPoints  int           `yaml:"catch_points"`
}

// FieldRules is the half-open box wizards and power-ups are placed in.
type FieldRules struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// PowerUpRules defines spawning and effects of collectibles.
type PowerUpRules struct {
	SpawnMin         time.Duration `yaml:"spawn_min"`
	SpawnMax         time.Duration `yaml:"spawn_max"`
	Lifetime         time.Duration `yaml:"lifetime"`
	ScoreBonus       int           `yaml:"score_bonus"`
	TimeBonusSeconds int           `yaml:"time_bonus_seconds"`
	SlowMotion       time.Duration `yaml:"slow_motion"` // Advertised only, see SlowMotion handling in game
}

// AudioRules holds initial volumes in [0,1].
type AudioRules struct {
	MusicVolume float64 `yaml:"music_volume"`
	SoundVolume float64 `yaml:"sound_volume"`
}

// PreferenceRules holds defaults used until a stored preference exists.
type PreferenceRules struct {
	DefaultLanguage string `yaml:"default_language"`
	MusicEnabled    bool   `yaml:"music_enabled"`
	SoundEnabled    bool   `yaml:"sound_enabled"`
}

// Bounds returns the spawn box as a core.Bounds.
func (f FieldRules) Bounds() core.Bounds {
	return core.Bounds{MinX: f.MinX, MaxX: f.MaxX, MinY: f.MinY, MaxY: f.MaxY}
}

// Start returns the fixed wizard position used at round start.
func (r RoundRules) Start() core.Vec {
	return core.Vec{X: r.StartX, Y: r.StartY}
}

// Validation errors.
var (
	ErrInvalidField    = errors.New("config: field box is empty")
	ErrInvalidInterval = errors.New("config: intervals must be positive")
	ErrInvalidSpawn    = errors.New("config: spawn_max must be greater than spawn_min")
	ErrInvalidRound    = errors.New("config: round duration must be positive")
	ErrStartOutside    = errors.New("config: start position is outside the field")
)

// Validate checks the rules for values the engine cannot run with.
func (r Rules) Validate() error {
	if r.Field.MaxX <= r.Field.MinX || r.Field.MaxY <= r.Field.MinY {
		return ErrInvalidField
	}
	if r.Round.DurationSeconds <= 0 {
		return ErrInvalidRound
	}
	if r.Round.TickInterval <= 0 || r.Wizard.MoveInterval <= 0 ||
		r.PowerUps.SpawnMin <= 0 || r.PowerUps.Lifetime <= 0 {
		return ErrInvalidInterval
	}
	if r.PowerUps.SpawnMax <= r.PowerUps.SpawnMin {
		return ErrInvalidSpawn
	}
	if !r.Field.Bounds().Contains(r.Round.Start()) {
		return fmt.Errorf("%w: (%.0f, %.0f)", ErrStartOutside, r.Round.StartX, r.Round.StartY)
	}
	return nil
}
