// Package gauge implements bounded status bars attached to scene entities
//
// A bar is an entity carrying a GaugeComponent. Setting its value to zero from a
// positive value notifies the zero handlers of the bar's kind, once per crossing.
package gauge

import (
	"github.com/lixenwraith/shootpack/component"
	"github.com/lixenwraith/shootpack/core"
	"github.com/lixenwraith/shootpack/engine"
	"github.com/lixenwraith/shootpack/parameter"
)

// ZeroHandler receives a bar whose value just reached zero
type ZeroHandler func(bar core.Entity)

// Bars manages the status bars of one scene
type Bars struct {
	world  *engine.World
	onZero map[component.GaugeKind][]ZeroHandler
}

// For returns the scene's bar manager, creating it on first use
func For(s *engine.Scene) *Bars {
	bars, _ := engine.GetOrCreateResource(s.Resources, func() *Bars {
		return newBars(s.World)
	})
	return bars
}

func newBars(w *engine.World) *Bars {
	b := &Bars{
		world:  w,
		onZero: make(map[component.GaugeKind][]ZeroHandler),
	}
	// A bar dies with its target
	w.OnDestroy(func(e core.Entity) {
		for _, bar := range w.Components.Gauge.AllEntity() {
			if g, ok := w.Components.Gauge.GetComponent(bar); ok && g.Target == e {
				w.DestroyEntity(bar)
			}
		}
	})
	return b
}

// Create spawns a full, unattached bar of the given size and kind
func (b *Bars) Create(width, height int, kind component.GaugeKind) core.Entity {
	bar := b.world.Spawn(component.SpriteComponent{
		Width:  float64(width),
		Height: float64(height),
	}, 0, 0)
	b.world.Components.Gauge.SetComponent(bar, component.GaugeComponent{
		Kind:   kind,
		Value:  parameter.GaugeMax,
		Min:    parameter.GaugeMin,
		Max:    parameter.GaugeMax,
		Width:  width,
		Height: height,
	})
	return bar
}

// AttachTo binds bar to target, a target keeps one bar per kind so a previous one is destroyed
func (b *Bars) AttachTo(bar, target core.Entity) {
	g, ok := b.world.Components.Gauge.GetComponent(bar)
	if !ok || !b.world.IsAlive(target) {
		return
	}
	if prev, ok := b.AttachedTo(g.Kind, target); ok && prev != bar {
		b.world.DestroyEntity(prev)
	}
	b.world.Components.Gauge.Update(bar, func(g *component.GaugeComponent) {
		g.Target = target
	})
}

// SetOffsetPadding sets the gap between the bar and its target's top edge
func (b *Bars) SetOffsetPadding(bar core.Entity, x, y float64) {
	b.world.Components.Gauge.Update(bar, func(g *component.GaugeComponent) {
		g.OffsetX, g.OffsetY = x, y
	})
}

// AttachedTo finds the bar of kind bound to target
func (b *Bars) AttachedTo(kind component.GaugeKind, target core.Entity) (core.Entity, bool) {
	if !target.Valid() {
		return core.InvalidEntity, false
	}
	for _, bar := range b.world.Components.Gauge.AllEntity() {
		if g, ok := b.world.Components.Gauge.GetComponent(bar); ok && g.Kind == kind && g.Target == target {
			return bar, true
		}
	}
	return core.InvalidEntity, false
}

// Target returns the entity the bar is attached to
func (b *Bars) Target(bar core.Entity) core.Entity {
	g, ok := b.world.Components.Gauge.GetComponent(bar)
	if !ok {
		return core.InvalidEntity
	}
	return g.Target
}

// Value returns the current bar value
func (b *Bars) Value(bar core.Entity) (int, bool) {
	g, ok := b.world.Components.Gauge.GetComponent(bar)
	return g.Value, ok
}

// SetValue stores v clamped to the bar bounds
// A positive to zero transition notifies the kind's zero handlers after the store
func (b *Bars) SetValue(bar core.Entity, v int) {
	var prev, next int
	var kind component.GaugeKind
	if !b.world.Components.Gauge.Update(bar, func(g *component.GaugeComponent) {
		prev = g.Value
		next = clamp(v, g.Min, g.Max)
		g.Value = next
		kind = g.Kind
	}) {
		return
	}
	if prev > 0 && next == 0 {
		b.fireZero(kind, bar)
	}
}

// Adjust moves the value by delta
// Positive deltas saturate at the upper bound, the rest at the lower bound
// Returns the new value, false when bar is not a gauge
func (b *Bars) Adjust(bar core.Entity, delta int) (int, bool) {
	g, ok := b.world.Components.Gauge.GetComponent(bar)
	if !ok {
		return 0, false
	}
	// Compare against the remaining headroom so extreme deltas cannot wrap
	var next int
	switch {
	case delta > 0 && delta >= g.Max-g.Value:
		next = g.Max
	case delta < 0 && delta <= g.Min-g.Value:
		next = g.Min
	default:
		next = g.Value + delta
	}
	b.SetValue(bar, next)
	return next, true
}

// OnZero registers fn for zero crossings of bars of kind, in registration order
func (b *Bars) OnZero(kind component.GaugeKind, fn ZeroHandler) {
	if fn == nil {
		return
	}
	b.onZero[kind] = append(b.onZero[kind], fn)
}

func (b *Bars) fireZero(kind component.GaugeKind, bar core.Entity) {
	for _, fn := range b.onZero[kind] {
		fn(bar)
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
