package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/bug-to-feature/internal/core"
)

// Speaker plays tones on the local audio device through a shared mixer.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	rate   beep.SampleRate
	closed bool
	logger *log.Logger
}

// NewSpeaker opens the default audio device.
func NewSpeaker(logger *log.Logger) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("sound: init speaker: %w", err)
	}

	s := &Speaker{
		mixer:  &beep.Mixer{},
		rate:   SampleRate,
		logger: logger,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play mixes each tone into the output. Overlapping tones are summed.
func (s *Speaker) Play(tones ...core.Tone) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || len(tones) == 0 {
		return
	}

	speaker.Lock()
	for _, t := range tones {
		s.mixer.Add(NewTone(t, s.rate))
	}
	speaker.Unlock()

	if s.logger != nil {
		s.logger.Debug("tones queued", "count", len(tones), "playing", s.mixer.Len())
	}
}

// Close silences the mixer. Further Play calls are ignored.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Open returns a Speaker when enabled, falling back to silence when the
// device cannot be opened.
func Open(enabled bool, logger *log.Logger) core.TonePlayer {
	if !enabled {
		return core.Silent{}
	}
	sp, err := NewSpeaker(logger)
	if err != nil {
		if logger != nil {
			logger.Warn("sound disabled", "err", err)
		}
		return core.Silent{}
	}
	return sp
}
