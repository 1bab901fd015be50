package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/shootpack/component"
	"github.com/lixenwraith/shootpack/core"
)

func TestLeftMargin(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		name string
		ctx  Context
		want float64
	}{
		{"no counter", Context{CounterVisible: false, CounterValue: 999}, 8},
		{"single digit", Context{CounterVisible: true, CounterValue: 1}, 37},
		{"three", Context{CounterVisible: true, CounterValue: 3}, 39},
		{"two digits", Context{CounterVisible: true, CounterValue: 10}, 42},
		{"three digits", Context{CounterVisible: true, CounterValue: 100}, 47},
		{"zero clamps to one", Context{CounterVisible: true, CounterValue: 0}, 37},
		{"negative clamps to one", Context{CounterVisible: true, CounterValue: -4}, 37},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LeftMargin(tt.ctx, p))
		})
	}
}

func TestComputeRowWrap(t *testing.T) {
	p := DefaultParams()
	ctx := Context{ViewportWidth: 160} // wrap past 136
	w := 14 / p.Scale                  // scaled width 14, plus gap 6 = 20 per item

	widths := make([]float64, 9)
	for i := range widths {
		widths[i] = w
	}
	slots := Compute(ctx, p, widths)

	wantX := []float64{8, 28, 48, 68, 88, 108, 128}
	for i, x := range wantX {
		assert.InDelta(t, x, slots[i].X, 1e-9, "slot %d", i)
		assert.Equal(t, 8.0, slots[i].Y, "slot %d", i)
	}
	// Seven slots fit row one, so the 8th (index 7) is the first wrapped one
	// Advancing past 128 reaches 148 > 136, the next item opens row two
	assert.InDelta(t, 8, slots[7].X, 1e-9)
	assert.Equal(t, 20.0, slots[7].Y)
	assert.InDelta(t, 28, slots[8].X, 1e-9)
	assert.Equal(t, 20.0, slots[8].Y)
}

func TestComputeWrapsToCounterMargin(t *testing.T) {
	p := DefaultParams()
	ctx := Context{ViewportWidth: 100, CounterVisible: true, CounterValue: 10}

	slots := Compute(ctx, p, []float64{100, 10})

	assert.Equal(t, Slot{X: 42, Y: 8}, slots[0])
	assert.Equal(t, Slot{X: 42, Y: 20}, slots[1])
}

func TestComputeEmpty(t *testing.T) {
	assert.Empty(t, Compute(Context{ViewportWidth: 160}, DefaultParams(), nil))
}

type placement struct {
	x, y   float64
	scale  float64
	anchor component.ScaleAnchor
	flags  component.Flag
}

type fakeTarget struct {
	widths map[core.Entity]float64
	placed map[core.Entity]*placement
	order  []core.Entity
}

func newFakeTarget(widths map[core.Entity]float64) *fakeTarget {
	return &fakeTarget{widths: widths, placed: make(map[core.Entity]*placement)}
}

func (f *fakeTarget) get(e core.Entity) *placement {
	p, ok := f.placed[e]
	if !ok {
		p = &placement{}
		f.placed[e] = p
	}
	return p
}

func (f *fakeTarget) Width(e core.Entity) float64 { return f.widths[e] }

func (f *fakeTarget) SetPosition(e core.Entity, x, y float64) {
	f.order = append(f.order, e)
	p := f.get(e)
	p.x, p.y = x, y
}

func (f *fakeTarget) SetScale(e core.Entity, s float64, a component.ScaleAnchor) {
	p := f.get(e)
	p.scale, p.anchor = s, a
}

func (f *fakeTarget) SetFlag(e core.Entity, fl component.Flag, on bool) {
	p := f.get(e)
	if on {
		p.flags |= fl
	} else {
		p.flags &^= fl
	}
}

func TestApplyPlacesInInsertionOrder(t *testing.T) {
	target := newFakeTarget(map[core.Entity]float64{1: 16, 2: 16})
	ctx := Context{ViewportWidth: 160}

	Apply(target, ctx, DefaultParams(), []core.Entity{2, 1})

	require.Equal(t, []core.Entity{2, 1}, target.order)
	first, second := target.placed[2], target.placed[1]
	assert.Less(t, first.x, second.x)
	assert.Equal(t, first.y, second.y)
	for _, p := range target.placed {
		assert.Equal(t, 0.6, p.scale)
		assert.Equal(t, component.AnchorMiddle, p.anchor)
		assert.Equal(t, component.FlagRelativeToCamera, p.flags)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	widths := map[core.Entity]float64{1: 16, 2: 40, 3: 8, 4: 120, 5: 16}
	satellites := []core.Entity{1, 2, 3, 4, 5}
	target := newFakeTarget(widths)
	ctx := Context{ViewportWidth: 160, CounterVisible: true, CounterValue: 3}

	first := Apply(target, ctx, DefaultParams(), satellites)
	snapshot := make(map[core.Entity]placement, len(target.placed))
	for e, p := range target.placed {
		snapshot[e] = *p
	}
	second := Apply(target, ctx, DefaultParams(), satellites)

	assert.Equal(t, first, second)
	for e, p := range target.placed {
		assert.Equal(t, snapshot[e], *p)
	}
}
