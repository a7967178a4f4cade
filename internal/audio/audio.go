// Package audio plays the background loop and one-shot effects.
// All sounds are synthesized with beep; there are no asset files.
// Playback is best-effort: failures are logged and never reach the caller.
package audio

// Effect names a one-shot sound.
type Effect int

const (
	EffectWizardCaught Effect = iota
	EffectPowerUp
	EffectGameOver
)

// String returns the effect name used in logs.
func (e Effect) String() string {
	switch e {
	case EffectWizardCaught:
		return "wizard_caught"
	case EffectPowerUp:
		return "powerup_collected"
	case EffectGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Player is the audio collaborator used by the round engine.
type Player interface {
	StartMusic()
	StopMusic()
	PauseMusic()
	ResumeMusic()
	Play(e Effect)
	SetMusicEnabled(enabled bool)
	SetSoundEnabled(enabled bool)
	SetMusicVolume(v float64)
	SetSoundVolume(v float64)
	Close()
}

// Nop is a Player that does nothing. SSH sessions use it.
type Nop struct{}

func (Nop) StartMusic() {}
func (Nop) StopMusic() {}
func (Nop) PauseMusic() {}
func (Nop) ResumeMusic() {}
func (Nop) Play(Effect) {}
func (Nop) SetMusicEnabled(bool) {}
func (Nop) SetSoundEnabled(bool) {}
func (Nop) SetMusicVolume(float64) {}
func (Nop) SetSoundVolume(float64) {}
func (Nop) Close() {}

var _ Player = Nop{}

// ClampVolume limits v to [0,1]. NaN maps to 0.
func ClampVolume(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
