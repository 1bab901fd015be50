package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/shootpack/parameter"
)

const zeroToneVolume = 0.3

// Player mixes cues into the system speaker
// All methods are no-ops until Initialize succeeds
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	freq        float64
	duration    time.Duration
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player for the given sample rate and zero cue
func NewPlayer(sampleRate int, freq float64, duration time.Duration) *Player {
	return &Player{
		rate:     beep.SampleRate(sampleRate),
		freq:     freq,
		duration: duration,
		mixer:    &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// PlayZero queues the zero-crossing cue
func (p *Player) PlayZero() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	tone := NewZeroTone(p.freq, p.duration, zeroToneVolume, p.rate)
	speaker.Lock()
	p.mixer.Add(tone)
	speaker.Unlock()
}

// Initialized reports whether the speaker is open
func (p *Player) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Cleanup silences the mixer and closes the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
