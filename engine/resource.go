package engine

import "time"

// === Scene Resources ===
// Installed by NewScene, accessed via Scene.Resources

// TimeResource wraps time data for frame handlers
// Updated by Scene.Step at the start of every frame
type TimeResource struct {
	// GameTime is the accumulated scene time
	GameTime time.Duration

	// DeltaTime is the duration of the current frame
	DeltaTime time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
func (tr *TimeResource) Update(dt time.Duration) {
	tr.GameTime += dt
	tr.DeltaTime = dt
	tr.FrameNumber++
}

// ViewportResource is the visible screen area in world units
type ViewportResource struct {
	Width  float64
	Height float64
}

// CameraResource is the world offset of the viewport's top-left corner
// Entities flagged relative-to-camera ignore it
type CameraResource struct {
	X, Y float64
}

// CounterResource is the on-screen life counter the satellite row must clear
type CounterResource struct {
	Visible bool
	Value   int
}

// BackgroundResource is the scene's scrolling background layer
// Pattern rows tile in both directions, offset advances with the scroll velocity
type BackgroundResource struct {
	Pattern  []string
	VX, VY   float64
	OffsetX  float64
	OffsetY  float64
	Scrolled bool
}
