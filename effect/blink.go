// Package effect holds scoped timed visual effects
package effect

import (
	"time"

	"github.com/lixenwraith/shootpack/component"
	"github.com/lixenwraith/shootpack/core"
	"github.com/lixenwraith/shootpack/engine"
)

// Blink toggles an entity's visibility on a scene interval until its duration elapses
// It owns both scene timers and always releases them together
type Blink struct {
	scene    *engine.Scene
	entity   core.Entity
	toggle   engine.TimerID
	deadline engine.TimerID
	active   bool
}

// NewBlink starts blinking e every interval for duration
// A dead entity or a non-positive duration yields an inactive Blink
func NewBlink(s *engine.Scene, e core.Entity, duration, interval time.Duration) *Blink {
	b := &Blink{scene: s, entity: e}
	if !s.World.IsAlive(e) || duration <= 0 {
		return b
	}

	b.toggle = s.SetInterval(interval, func() {
		if !s.World.IsAlive(e) {
			b.Stop()
			return
		}
		s.World.SetFlag(e, component.FlagInvisible, !s.World.HasFlag(e, component.FlagInvisible))
	})
	b.deadline = s.SetTimeout(duration, b.Stop)
	b.active = b.toggle != 0 && b.deadline != 0
	if !b.active {
		b.Stop()
	}
	return b
}

// Stop cancels both timers and leaves the entity visible, safe to call repeatedly
func (b *Blink) Stop() {
	if b.toggle != 0 {
		b.scene.ClearTimer(b.toggle)
		b.toggle = 0
	}
	if b.deadline != 0 {
		b.scene.ClearTimer(b.deadline)
		b.deadline = 0
	}
	b.scene.World.SetFlag(b.entity, component.FlagInvisible, false)
	b.active = false
}

// Active reports whether the blink is still running
func (b *Blink) Active() bool {
	return b.active
}

// Entity returns the blinking entity
func (b *Blink) Entity() core.Entity {
	return b.entity
}
