// Package game implements the Wizard Chase round: a pure state machine
// (Game) and the Engine that owns it and drives the round timer, the
// wizard mover and the power-up spawner.
package game

import (
	"errors"
	"time"

	"github.com/XThorin/WizardChase/internal/core"
)

// Errors returned by intents with invalid input.
var (
	ErrEmptyName     = errors.New("game: player name is empty")
	ErrInvalidScreen = errors.New("game: intent not allowed on this screen")
)

// Screen is the active navigation state.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenGame
	ScreenResults
	ScreenSettings
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "WELCOME"
	case ScreenGame:
		return "GAME"
	case ScreenResults:
		return "RESULTS"
	case ScreenSettings:
		return "SETTINGS"
	default:
		return "UNKNOWN"
	}
}

// PowerUpType is the kind of collectible.
type PowerUpType int

const (
	PowerUpScoreMultiplier PowerUpType = iota
	PowerUpTimeBonus
	PowerUpSlowMotion
)

// PowerUpTypes lists every type; spawns pick uniformly from it.
var PowerUpTypes = []PowerUpType{PowerUpScoreMultiplier, PowerUpTimeBonus, PowerUpSlowMotion}

// String returns the type name.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpScoreMultiplier:
		return "SCORE_MULTIPLIER"
	case PowerUpTimeBonus:
		return "TIME_BONUS"
	case PowerUpSlowMotion:
		return "SLOW_MOTION"
	default:
		return "UNKNOWN"
	}
}

// Glyph returns the single-cell symbol drawn for the type.
func (t PowerUpType) Glyph() rune {
	switch t {
	case PowerUpScoreMultiplier:
		return '★'
	case PowerUpTimeBonus:
		return '⏱'
	case PowerUpSlowMotion:
		return '❄'
	default:
		return '?'
	}
}

// PowerUp is a spawned collectible. Position and type live in one value,
// so a power-up is either fully present or absent.
type PowerUp struct {
	ID   uint64
	Type PowerUpType
	Pos  core.Vec
}

// Player is the person at the keyboard.
type Player struct {
	Name      string
	Score     int
	HighScore int
}

// State is the per-round record.
type State struct {
	Playing       bool
	Paused        bool
	Score         int
	TimeRemaining int // Seconds, floor 0
	Elapsed       int // Unpaused seconds played
	Wizard        core.Vec
	PowerUp       *PowerUp
}

// Pickup records the most recent collected power-up so the UI can show a
// toast. Seq increases with every pickup.
type Pickup struct {
	Seq  uint64
	Type PowerUpType
}

// Snapshot is an immutable copy of everything the UI renders.
type Snapshot struct {
	Screen       Screen
	Player       Player
	State        State
	Language     string
	MusicEnabled bool
	SoundEnabled bool
	LastPickup   Pickup
	Generation   uint64
	Version      uint64 // Increases with every published snapshot; zero outside an Engine
}

// Result is the outcome of a finished round.
type Result struct {
	RoundID    string
	Player     string
	Score      int
	TimePlayed int // Seconds
	NewRecord  bool
	CreatedAt  time.Time
}
