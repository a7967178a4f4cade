package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator produces a fixed-length tone.
type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewTone returns a streamer that plays freq for d.
func NewTone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fade applies a linear attack and release to a finite streamer.
type fade struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewFade shapes s, which is expected to last d.
func NewFade(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.attack > 0 && f.position < f.attack {
			vol = float64(f.position) / float64(f.attack)
		}
		if remaining := f.total - f.position; f.release > 0 && remaining < f.release {
			vol = math.Max(0, float64(remaining)/float64(f.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// withVolume wraps s in a linear-to-log volume control.
// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func withVolume(s beep.Streamer, vol float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setVolume(v, vol)
	return v
}

func setVolume(v *effects.Volume, vol float64) {
	vol = ClampVolume(vol)
	if vol == 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(vol)
	v.Silent = false
}

// note is one step of a melody.
type note struct {
	freq float64
	d    time.Duration
}

func sequence(notes []note, wave WaveType, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone := NewTone(n.freq, n.d, wave, rate)
		parts = append(parts, NewFade(tone, n.d, 5*time.Millisecond, n.d/3, rate))
	}
	return beep.Seq(parts...)
}

// musicPhrase is the looped background tune: a minor arpeggio over a bass line.
var musicPhrase = []note{
	{220.00, 250 * time.Millisecond}, {261.63, 250 * time.Millisecond},
	{329.63, 250 * time.Millisecond}, {261.63, 250 * time.Millisecond},
	{196.00, 250 * time.Millisecond}, {246.94, 250 * time.Millisecond},
	{293.66, 250 * time.Millisecond}, {246.94, 250 * time.Millisecond},
}

var musicBass = []note{
	{110.00, time.Second},
	{98.00, time.Second},
}

// NewMusic returns one pass of the background tune. Callers loop it.
func NewMusic(rate beep.SampleRate) beep.Streamer {
	return beep.Mix(
		withVolume(sequence(musicPhrase, WaveTriangle, rate), 0.35),
		withVolume(sequence(musicBass, WaveSine, rate), 0.25),
	)
}

// NewEffect returns the streamer for e, or nil for unknown effects.
func NewEffect(e Effect, rate beep.SampleRate) beep.Streamer {
	switch e {
	case EffectWizardCaught:
		return withVolume(sequence([]note{
			{659.25, 70 * time.Millisecond},
			{987.77, 120 * time.Millisecond},
		}, WaveSine, rate), 0.6)
	case EffectPowerUp:
		return withVolume(sequence([]note{
			{523.25, 60 * time.Millisecond},
			{659.25, 60 * time.Millisecond},
			{783.99, 60 * time.Millisecond},
			{1046.50, 140 * time.Millisecond},
		}, WaveSquare, rate), 0.25)
	case EffectGameOver:
		return withVolume(sequence([]note{
			{392.00, 200 * time.Millisecond},
			{329.63, 200 * time.Millisecond},
			{261.63, 200 * time.Millisecond},
			{196.00, 500 * time.Millisecond},
		}, WaveTriangle, rate), 0.5)
	default:
		return nil
	}
}
