package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/wizard.yaml
var defaultRulesYAML []byte

// DefaultRules returns the built-in rules.
func DefaultRules() Rules {
	return Rules{
		Round: RoundRules{
			DurationSeconds: 60,
			TickInterval:    time.Second,
			StartX:          100,
			StartY:          150,
		},
		Wizard: WizardRules{
			MoveInterval: time.Second,
			CatchPoints:  10,
		},
		Field: FieldRules{
			MinX: 50,
			MaxX: 350,
			MinY: 150,
			MaxY: 600,
		},
		PowerUps: PowerUpRules{
			SpawnMin:         5 * time.Second,
			SpawnMax:         15 * time.Second,
			Lifetime:         3 * time.Second,
			ScoreBonus:       50,
			TimeBonusSeconds: 10,
			SlowMotion:       5 * time.Second,
		},
		Audio: AudioRules{
			MusicVolume: 0.7,
			SoundVolume: 1.0,
		},
		Preferences: PreferenceRules{
			DefaultLanguage: "en",
			MusicEnabled:    true,
			SoundEnabled:    true,
		},
	}
}

// DefaultYAML returns the embedded default rules file.
func DefaultYAML() []byte {
	return defaultRulesYAML
}
