package component

// Flag is a bitmask of per-entity render flags
type Flag uint8

const (
	FlagInvisible        Flag = 1 << iota // Skipped by the renderer
	FlagRelativeToCamera                  // Positioned in screen space, ignores camera scroll
	FlagAutoDestroy                       // Destroyed once fully outside the viewport
)

// FlagComponent stores the active render flags of an entity
type FlagComponent struct {
	Mask Flag
}

// Has reports whether every bit of f is set
func (c FlagComponent) Has(f Flag) bool {
	return c.Mask&f == f
}
