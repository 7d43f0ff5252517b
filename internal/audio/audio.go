// Package audio plays short synthesized cues for game events.
// Cues are queued without blocking and rendered on a background goroutine
// through the beep speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	queueSize  = 8
)

// Cue identifies a sound effect.
type Cue int

const (
	CueCapture Cue = iota
	CueWon
	CueLost
)

func (c Cue) String() string {
	switch c {
	case CueCapture:
		return "capture"
	case CueWon:
		return "won"
	case CueLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Player accepts fire-and-forget cue requests.
type Player interface {
	Play(c Cue)
	Close()
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Play(Cue) {}
func (Nop) Close()   {}

// note is one tone in a cue.
type note struct {
	freq float64
	dur  time.Duration
}

var cues = map[Cue][]note{
	CueCapture: {{880, 70 * time.Millisecond}, {1320, 110 * time.Millisecond}},
	CueWon:     {{660, 120 * time.Millisecond}, {880, 120 * time.Millisecond}, {1320, 240 * time.Millisecond}},
	CueLost:    {{330, 180 * time.Millisecond}, {220, 320 * time.Millisecond}},
}

// Speaker plays cues on the system audio device.
type Speaker struct {
	queue  chan Cue
	mixer  *beep.Mixer
	logger *log.Logger
	once   sync.Once
	wg     sync.WaitGroup
}

// New opens the audio device. When muted, or when no device is available,
// it returns Nop and logs why.
func New(logger *log.Logger, muted bool) Player {
	if muted {
		logger.Debug("audio muted")
		return Nop{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		logger.Warn("audio unavailable, continuing silently", "err", err)
		return Nop{}
	}

	s := newSpeaker(logger, queueSize)
	speaker.Play(s.mixer)
	s.wg.Add(1)
	go s.run()
	return s
}

func newSpeaker(logger *log.Logger, size int) *Speaker {
	return &Speaker{
		queue:  make(chan Cue, size),
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Play queues c. A full queue drops the cue instead of waiting.
func (s *Speaker) Play(c Cue) {
	select {
	case s.queue <- c:
	default:
		s.logger.Debug("audio queue full, dropping cue", "cue", c)
	}
}

// Close stops the playback goroutine and silences the mixer.
func (s *Speaker) Close() {
	s.once.Do(func() {
		close(s.queue)
		s.wg.Wait()
		speaker.Lock()
		s.mixer.Clear()
		speaker.Unlock()
	})
}

func (s *Speaker) run() {
	defer s.wg.Done()
	for c := range s.queue {
		st, err := build(c)
		if err != nil {
			s.logger.Warn("audio cue failed", "cue", c, "err", err)
			continue
		}
		speaker.Lock()
		s.mixer.Add(st)
		speaker.Unlock()
	}
}

// build renders a cue as a sequence of attenuated sine tones.
func build(c Cue) (beep.Streamer, error) {
	notes, ok := cues[c]
	if !ok {
		return nil, fmt.Errorf("audio: unknown cue %d", int(c))
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: tone %.0fHz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), tone))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   -2,
	}, nil
}

// Length returns the duration of a cue.
func Length(c Cue) time.Duration {
	var d time.Duration
	for _, n := range cues[c] {
		d += n.dur
	}
	return d
}
