// Package sound plays the short square-wave cues requested by the game.
package sound

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/bug-to-feature/internal/core"
)

// SampleRate is the output rate used for every cue.
const SampleRate = beep.SampleRate(44100)

// Cue loudness: start at baseGain and ramp exponentially down to
// baseGain*tailGain over the tone's duration.
const (
	baseGain = 0.1
	tailGain = 0.1
)

// square is a fixed-length square wave with an exponential fade.
type square struct {
	freq     float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

// NewTone returns a streamer for t. It ends after t.Duration.
func NewTone(t core.Tone, rate beep.SampleRate) beep.Streamer {
	osc := &square{
		freq:  t.Freq,
		total: rate.N(t.Duration),
		rate:  rate,
	}
	return &effects.Volume{
		Streamer: beep.Take(osc.total, osc),
		Base:     2,
		Volume:   math.Log2(baseGain),
	}
}

func (s *square) Stream(samples [][2]float64) (n int, ok bool) {
	if s.position >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.position >= s.total {
			return i, true
		}

		val := -1.0
		if s.phase < 0.5 {
			val = 1.0
		}
		val *= s.gain()

		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

// gain falls from 1 to tailGain across the tone.
func (s *square) gain() float64 {
	if s.total <= 1 {
		return 1
	}
	progress := float64(s.position) / float64(s.total-1)
	return math.Pow(tailGain, progress)
}

func (s *square) Err() error { return nil }

// Samples returns how many samples a tone lasts at rate.
func Samples(t core.Tone, rate beep.SampleRate) int {
	return rate.N(t.Duration)
}
