package parameter

import "time"

// Gauge (status bar) bounds and defaults
const (
	GaugeMin = 0
	GaugeMax = 100

	DefaultGaugeWidth  = 20
	DefaultGaugeHeight = 4
	DefaultGaugeOffset = 4
)

// Blink
const (
	DefaultBlinkDuration = 1000 * time.Millisecond
	DefaultBlinkInterval = 50 * time.Millisecond
)

// Projectile & Scroll defaults
const (
	DefaultProjectileChance = 50
	DefaultProjectileVX     = -100
	DefaultProjectileVY     = -100

	DefaultScrollVX = -50
	DefaultScrollVY = 0
)
