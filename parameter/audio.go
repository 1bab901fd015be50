package parameter

import "time"

// Audio
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer latency
	AudioBufferDuration = 100 * time.Millisecond

	// ZeroToneFrequency is the tone played when a gauge crosses zero
	ZeroToneFrequency = 220

	ZeroToneDuration = 120 * time.Millisecond
)
