// Package audio plays short synthesized cues for game events.
// Sound is optional: callers fall back to Nop when the speaker is unavailable.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/fruit-catcher/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifies a cue.
type Sound int

const (
	SoundCatch Sound = iota
	SoundBomb
	SoundSpeedUp
	SoundGameOver
)

// String returns the cue name.
func (s Sound) String() string {
	switch s {
	case SoundCatch:
		return "catch"
	case SoundBomb:
		return "bomb"
	case SoundSpeedUp:
		return "speed-up"
	case SoundGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// ForEvent maps a step event to its cue.
func ForEvent(kind core.EventKind) (Sound, bool) {
	switch kind {
	case core.EventScoreChanged:
		return SoundCatch, true
	case core.EventLivesChanged:
		return SoundBomb, true
	case core.EventSpeedUp:
		return SoundSpeedUp, true
	case core.EventGameOver:
		return SoundGameOver, true
	default:
		return 0, false
	}
}

// Player plays cues.
type Player interface {
	Play(s Sound)
	Close()
}

// Nop is a silent Player.
type Nop struct{}

func (Nop) Play(Sound) {}
func (Nop) Close()     {}

// tone is one segment of a cue; freq 0 is a rest.
type tone struct {
	freq float64
	dur  time.Duration
}

var cues = map[Sound][]tone{
	SoundCatch:    {{freq: 660, dur: 40 * time.Millisecond}},
	SoundBomb:     {{freq: 110, dur: 120 * time.Millisecond}},
	SoundSpeedUp:  {{freq: 880, dur: 50 * time.Millisecond}, {dur: 20 * time.Millisecond}, {freq: 1320, dur: 60 * time.Millisecond}},
	SoundGameOver: {{freq: 440, dur: 150 * time.Millisecond}, {freq: 330, dur: 150 * time.Millisecond}, {freq: 220, dur: 300 * time.Millisecond}},
}

// Streamer builds the finite stream for a cue at the given volume (0..1).
func Streamer(s Sound, volume float64) (beep.Streamer, error) {
	segments, ok := cues[s]
	if !ok {
		return nil, fmt.Errorf("audio: unknown sound %d", s)
	}

	parts := make([]beep.Streamer, 0, len(segments))
	for _, t := range segments {
		n := sampleRate.N(t.dur)
		if t.freq == 0 {
			parts = append(parts, beep.Silence(n))
			continue
		}
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: cannot build %v tone: %w", s, err)
		}
		parts = append(parts, beep.Take(n, sine))
	}

	return withVolume(beep.Seq(parts...), volume), nil
}

// withVolume scales a stream linearly; beep's volume is logarithmic.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

var (
	initOnce sync.Once
	initErr  error
)

// Speaker plays cues on the default audio device.
type Speaker struct {
	mu     sync.Mutex
	volume float64
	closed bool
}

// NewSpeaker initializes the audio device. The device is shared by the
// process, so it is only initialized once.
func NewSpeaker(volume float64) (*Speaker, error) {
	initOnce.Do(func() {
		initErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	if initErr != nil {
		return nil, fmt.Errorf("audio: cannot initialize speaker: %w", initErr)
	}
	return &Speaker{volume: volume}, nil
}

// Play starts a cue without waiting for it to finish.
func (sp *Speaker) Play(s Sound) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.closed {
		return
	}
	stream, err := Streamer(s, sp.volume)
	if err != nil {
		return
	}
	speaker.Play(stream)
}

// Close silences anything still playing and ignores further cues.
func (sp *Speaker) Close() {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.closed {
		return
	}
	sp.closed = true
	speaker.Clear()
}
