package engine

import "time"

// System is a per-frame behaviour registered on a scene at a fixed phase
type System interface {
	// Name returns the system's name, used in logs
	Name() string

	// Priority returns the frame phase, lower values run first
	Priority() int

	// Update runs once per frame
	Update(dt time.Duration)
}

// SystemBase provides common dependencies for all systems
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	Scene     *Scene
	World     *World
	Component *ComponentStore
}

// NewSystemBase initializes base dependencies from a scene
// Call once in system constructor
func NewSystemBase(s *Scene) SystemBase {
	return SystemBase{
		Scene:     s,
		World:     s.World,
		Component: &s.World.Components,
	}
}
