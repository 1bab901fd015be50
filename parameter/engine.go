package parameter

import "time"

// Loop & Engine Timing
const (
	// FrameUpdateInterval is the frame tick interval (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// DefaultTickRate is the loop frequency in Hz when config omits it
	DefaultTickRate = 30

	// MaxFrameDelta clamps the step passed to a scene after a stall (debugger, suspend)
	MaxFrameDelta = 250 * time.Millisecond
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the input event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Viewport Defaults (world units)
const (
	DefaultViewportWidth  = 160
	DefaultViewportHeight = 120

	// Terminal cell footprint in world units, a cell is roughly twice as tall as wide
	DefaultUnitsPerCellX = 2
	DefaultUnitsPerCellY = 4
)
