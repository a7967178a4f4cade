package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Options configures a Speaker.
type Options struct {
	MusicVolume  float64
	SoundVolume  float64
	MusicEnabled bool
	SoundEnabled bool
	Logger       *log.Logger
}

// Speaker plays through the system audio device. Until Init succeeds it
// runs silent but still tracks music state, so callers never branch on it.
type Speaker struct {
	mu           sync.Mutex
	logger       *log.Logger
	mixer        *beep.Mixer
	music        *beep.Ctrl
	musicVol     *effects.Volume
	musicVolume  float64
	soundVolume  float64
	musicEnabled bool
	soundEnabled bool
	playing      bool // Music started and not stopped
	paused       bool // Music paused by the round
	initialized  bool
}

// NewSpeaker returns a silent Speaker; call Init to open the device.
func NewSpeaker(opts Options) *Speaker {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Speaker{
		logger:       logger,
		mixer:        &beep.Mixer{},
		musicVolume:  ClampVolume(opts.MusicVolume),
		soundVolume:  ClampVolume(opts.SoundVolume),
		musicEnabled: opts.MusicEnabled,
		soundEnabled: opts.SoundEnabled,
	}
}

// Init opens the audio device. On failure the Speaker stays silent and the
// error is returned for the caller to log.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open device: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// StartMusic starts the background loop from the beginning.
func (s *Speaker) StartMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopMusicLocked()
	if !s.musicEnabled {
		return
	}
	s.playing = true
	s.paused = false

	if !s.initialized {
		return
	}
	s.music = &beep.Ctrl{Streamer: beep.Loop(-1, newMusicLoop(sampleRate))}
	s.musicVol = withVolume(s.music, s.musicVolume)
	speaker.Lock()
	s.mixer.Add(s.musicVol)
	speaker.Unlock()
}

// StopMusic stops and discards the background loop.
func (s *Speaker) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopMusicLocked()
}

func (s *Speaker) stopMusicLocked() {
	s.playing = false
	s.paused = false
	if s.music == nil {
		return
	}
	speaker.Lock()
	// A drained Ctrl is removed from the mixer on the next stream pass.
	s.music.Streamer = nil
	speaker.Unlock()
	s.music = nil
	s.musicVol = nil
}

// PauseMusic holds the loop at its current position.
func (s *Speaker) PauseMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.playing {
		return
	}
	s.paused = true
	s.setPausedLocked(true)
}

// ResumeMusic continues a paused loop when music is enabled.
func (s *Speaker) ResumeMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.playing || !s.musicEnabled {
		return
	}
	s.paused = false
	s.setPausedLocked(false)
}

func (s *Speaker) setPausedLocked(paused bool) {
	if s.music == nil {
		return
	}
	speaker.Lock()
	s.music.Paused = paused
	speaker.Unlock()
}

// Play fires a one-shot effect when sound is enabled.
func (s *Speaker) Play(e Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.soundEnabled || !s.initialized {
		return
	}
	streamer := NewEffect(e, sampleRate)
	if streamer == nil {
		s.logger.Warn("unknown sound effect", "effect", int(e))
		return
	}
	speaker.Lock()
	s.mixer.Add(withVolume(streamer, s.soundVolume))
	speaker.Unlock()
}

// SetMusicEnabled gates the background loop. Disabling pauses a running
// loop; enabling resumes it if a round is still playing.
func (s *Speaker) SetMusicEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.musicEnabled = enabled
	switch {
	case !enabled:
		s.setPausedLocked(true)
	case s.playing && !s.paused:
		s.setPausedLocked(false)
	}
}

// SetSoundEnabled gates one-shot effects.
func (s *Speaker) SetSoundEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.soundEnabled = enabled
}

// SetMusicVolume sets the loop volume, clamped to [0,1].
func (s *Speaker) SetMusicVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.musicVolume = ClampVolume(v)
	if s.musicVol == nil {
		return
	}
	speaker.Lock()
	setVolume(s.musicVol, s.musicVolume)
	speaker.Unlock()
}

// SetSoundVolume sets the effect volume, clamped to [0,1].
func (s *Speaker) SetSoundVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.soundVolume = ClampVolume(v)
}

// MusicPlaying reports whether the loop is audible (started, not paused,
// enabled).
func (s *Speaker) MusicPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing && !s.paused && s.musicEnabled
}

// Volumes returns the current music and sound volumes.
func (s *Speaker) Volumes() (music, sound float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.musicVolume, s.soundVolume
}

// Close stops the loop and clears the mixer.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopMusicLocked()
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

var _ Player = (*Speaker)(nil)

// newMusicLoop adapts the finite tune to beep.Loop, which needs a
// StreamSeeker.
func newMusicLoop(rate beep.SampleRate) beep.StreamSeeker {
	return &replay{rate: rate, cur: NewMusic(rate)}
}

// replay rebuilds the tune on Seek so it can be looped without buffering.
type replay struct {
	rate beep.SampleRate
	cur  beep.Streamer
	pos  int
}

func (r *replay) Stream(samples [][2]float64) (int, bool) {
	n, ok := r.cur.Stream(samples)
	r.pos += n
	return n, ok
}

func (r *replay) Err() error { return r.cur.Err() }

func (r *replay) Len() int { return r.rate.N(2 * time.Second) }

func (r *replay) Position() int { return r.pos }

func (r *replay) Seek(p int) error {
	if p != 0 {
		return fmt.Errorf("audio: music can only seek to start, got %d", p)
	}
	r.cur = NewMusic(r.rate)
	r.pos = 0
	return nil
}
