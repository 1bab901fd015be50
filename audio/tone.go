// Package audio plays the short cues triggered by gauge zero crossings
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// oscillator is a finite sine source
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewOscillator creates a sine source lasting duration
func NewOscillator(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades the head and tail of a stream to avoid clicks
type envelope struct {
	streamer beep.Streamer
	position int
	fade     int
	total    int
}

// NewEnvelope applies linear fade in and fade out of length fade over a stream of duration
func NewEnvelope(s beep.Streamer, duration, fade time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	f := rate.N(fade)
	if f*2 > total {
		f = total / 2
	}
	return &envelope{streamer: s, fade: f, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.fade > 0 {
			if e.position < e.fade {
				vol = float64(e.position) / float64(e.fade)
			} else if remaining := e.total - e.position; remaining < e.fade {
				vol = math.Max(0, float64(remaining)/float64(e.fade))
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// NewZeroTone builds the zero-crossing cue: an enveloped sine at volume (0,1]
func NewZeroTone(freq float64, duration time.Duration, volume float64, rate beep.SampleRate) beep.Streamer {
	tone := NewEnvelope(NewOscillator(freq, duration, rate), duration, duration/8, rate)
	if volume <= 0 {
		return &effects.Volume{Streamer: tone, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: tone, Base: 2, Volume: math.Log2(volume)}
}
