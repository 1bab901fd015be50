package component

// KineticComponent carries a constant velocity in world units per second
// Integrated by the kinetic system during the physics phase
type KineticComponent struct {
	VX, VY float64
}
