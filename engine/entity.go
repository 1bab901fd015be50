package engine

import (
	"github.com/lixenwraith/shootpack/component"
	"github.com/lixenwraith/shootpack/core"
)

// Entity primitives consumed by the satellite registry, layout and gauges
// Every setter is a no-op on dead entities

// Spawn creates an entity with a sprite centered at (x, y) and unit scale
func (w *World) Spawn(sprite component.SpriteComponent, x, y float64) core.Entity {
	e := w.CreateEntity()
	w.Components.Sprite.SetComponent(e, sprite)
	w.Components.Transform.SetComponent(e, component.TransformComponent{
		X: x, Y: y, ScaleX: 1, ScaleY: 1,
	})
	w.Components.Flag.SetComponent(e, component.FlagComponent{})
	return e
}

// SetPosition moves the entity center
func (w *World) SetPosition(e core.Entity, x, y float64) {
	if !w.IsAlive(e) {
		return
	}
	if !w.Components.Transform.Update(e, func(t *component.TransformComponent) {
		t.X, t.Y = x, y
	}) {
		w.Components.Transform.SetComponent(e, component.TransformComponent{
			X: x, Y: y, ScaleX: 1, ScaleY: 1,
		})
	}
}

// Position returns the entity center
func (w *World) Position(e core.Entity) (x, y float64, ok bool) {
	t, ok := w.Components.Transform.GetComponent(e)
	if !ok {
		return 0, 0, false
	}
	return t.X, t.Y, true
}

// SetScale applies a uniform scale holding the given anchor fixed
// Position is the center, so a middle anchor leaves it untouched
func (w *World) SetScale(e core.Entity, scale float64, anchor component.ScaleAnchor) {
	if !w.IsAlive(e) {
		return
	}
	sprite, _ := w.Components.Sprite.GetComponent(e)
	w.Components.Transform.Update(e, func(t *component.TransformComponent) {
		if anchor == component.AnchorTopLeft {
			left := t.X - sprite.Width*t.ScaleX/2
			top := t.Y - sprite.Height*t.ScaleY/2
			t.X = left + sprite.Width*scale/2
			t.Y = top + sprite.Height*scale/2
		}
		t.ScaleX, t.ScaleY = scale, scale
		t.Anchor = anchor
	})
}

// SetFlag sets or clears a render flag
func (w *World) SetFlag(e core.Entity, f component.Flag, on bool) {
	if !w.IsAlive(e) {
		return
	}
	fc, _ := w.Components.Flag.GetComponent(e)
	if on {
		fc.Mask |= f
	} else {
		fc.Mask &^= f
	}
	w.Components.Flag.SetComponent(e, fc)
}

// HasFlag reports whether the render flag is set
func (w *World) HasFlag(e core.Entity, f component.Flag) bool {
	fc, ok := w.Components.Flag.GetComponent(e)
	return ok && fc.Has(f)
}

// SetKind tags the entity with a category
func (w *World) SetKind(e core.Entity, k core.Kind) {
	if !w.IsAlive(e) {
		return
	}
	w.Components.Kind.SetComponent(e, component.KindComponent{Kind: k})
}

// KindOf returns the entity category, KindNone when untagged
func (w *World) KindOf(e core.Entity) core.Kind {
	kc, ok := w.Components.Kind.GetComponent(e)
	if !ok {
		return core.KindNone
	}
	return kc.Kind
}

// AllOfKind returns every live entity tagged k, in tagging order
func (w *World) AllOfKind(k core.Kind) []core.Entity {
	var result []core.Entity
	for _, e := range w.Components.Kind.AllEntity() {
		if kc, ok := w.Components.Kind.GetComponent(e); ok && kc.Kind == k {
			result = append(result, e)
		}
	}
	return result
}

// Width returns the unscaled sprite width
func (w *World) Width(e core.Entity) float64 {
	s, _ := w.Components.Sprite.GetComponent(e)
	return s.Width
}

// SetVelocity sets the constant velocity integrated by the kinetic system
func (w *World) SetVelocity(e core.Entity, vx, vy float64) {
	if !w.IsAlive(e) {
		return
	}
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{VX: vx, VY: vy})
}
