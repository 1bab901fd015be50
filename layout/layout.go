// Package layout packs satellite entities into a screen-anchored row that wraps near the viewport edge
//
// Compute is pure: the same ordered widths and context always yield the same slots.
// Apply pushes a computed layout onto host entities and is always run over the whole collection.
package layout

import (
	"math"

	"github.com/lixenwraith/shootpack/component"
	"github.com/lixenwraith/shootpack/core"
	"github.com/lixenwraith/shootpack/parameter"
)

// Params are the row geometry constants, in world units
type Params struct {
	BaseMargin          float64
	CounterMarginBase   float64
	CounterMarginFactor float64
	OriginY             float64
	Scale               float64
	Gap                 float64
	WrapRatio           float64
	RowStep             float64
}

// DefaultParams returns the stock row geometry
func DefaultParams() Params {
	return Params{
		BaseMargin:          parameter.SatelliteBaseMargin,
		CounterMarginBase:   parameter.SatelliteCounterMarginBase,
		CounterMarginFactor: parameter.SatelliteCounterMarginFactor,
		OriginY:             parameter.SatelliteOriginY,
		Scale:               parameter.SatelliteScale,
		Gap:                 parameter.SatelliteGap,
		WrapRatio:           parameter.SatelliteWrapRatio,
		RowStep:             parameter.SatelliteRowStep,
	}
}

// Context is the owner's on-screen situation at layout time
type Context struct {
	ViewportWidth  float64
	CounterVisible bool
	CounterValue   int
}

// Slot is the computed screen position of one satellite
type Slot struct {
	X, Y float64
}

// LeftMargin returns the row start x
// A visible counter widens the margin with its decimal magnitude; values below 1 count as 1
func LeftMargin(ctx Context, p Params) float64 {
	if !ctx.CounterVisible {
		return p.BaseMargin
	}
	v := ctx.CounterValue
	if v < 1 {
		v = 1
	}
	return math.Round(p.CounterMarginBase + (math.Log10(float64(v))+1)*p.CounterMarginFactor)
}

// Compute places items left to right from (margin, OriginY)
// After each placement x advances by width*Scale+Gap; once x passes WrapRatio of the viewport
// it resets to the margin and y moves down one row
func Compute(ctx Context, p Params, widths []float64) []Slot {
	slots := make([]Slot, len(widths))
	left := LeftMargin(ctx, p)
	limit := ctx.ViewportWidth * p.WrapRatio

	x, y := left, p.OriginY
	for i, w := range widths {
		slots[i] = Slot{X: x, Y: y}
		x += w*p.Scale + p.Gap
		if x > limit {
			x = left
			y += p.RowStep
		}
	}
	return slots
}

// Target is the host capability set Apply drives
type Target interface {
	Width(e core.Entity) float64
	SetPosition(e core.Entity, x, y float64)
	SetScale(e core.Entity, scale float64, anchor component.ScaleAnchor)
	SetFlag(e core.Entity, f component.Flag, on bool)
}

// Apply lays out satellites in order: position, middle-anchored scale, screen-space flag
// Widths are the unscaled sprite widths so repeated runs converge on identical slots
func Apply(t Target, ctx Context, p Params, satellites []core.Entity) []Slot {
	widths := make([]float64, len(satellites))
	for i, e := range satellites {
		widths[i] = t.Width(e)
	}

	slots := Compute(ctx, p, widths)
	for i, e := range satellites {
		t.SetPosition(e, slots[i].X, slots[i].Y)
		t.SetScale(e, p.Scale, component.AnchorMiddle)
		t.SetFlag(e, component.FlagRelativeToCamera, true)
	}
	return slots
}
