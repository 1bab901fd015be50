package parameter

// Frame Handler Priorities (lower runs first)
// Phases follow the host frame: movement, scroll, satellite layout, bar tracking
// Rendering happens after the scene step and has no phase
const (
	PriorityPhysics   = 100
	PriorityScroll    = 110
	PriorityAnimation = 200 // Satellite row layout
	PriorityGauge     = 210 // After satellite layout, bars track settled owners
)
