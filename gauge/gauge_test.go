package gauge

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/shootpack/component"
	"github.com/lixenwraith/shootpack/core"
	"github.com/lixenwraith/shootpack/engine"
	"github.com/lixenwraith/shootpack/logger"
)

func newTestBars(t *testing.T) (*engine.Scene, *Bars) {
	t.Helper()
	s := engine.NewScene("gauge", engine.ViewportResource{Width: 160, Height: 120}, 1, logger.Discard())
	return s, For(s)
}

func TestForReturnsSameManager(t *testing.T) {
	s, bars := newTestBars(t)
	assert.Same(t, bars, For(s))
}

func TestCreateStartsFull(t *testing.T) {
	_, bars := newTestBars(t)
	bar := bars.Create(20, 4, component.GaugeHealth)

	v, ok := bars.Value(bar)
	require.True(t, ok)
	assert.Equal(t, 100, v)
	assert.Equal(t, core.InvalidEntity, bars.Target(bar))
}

func TestAdjustSaturates(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"overflow clamps to max", 60, 150, 100},
		{"underflow clamps to min", 30, -200, 0},
		{"inside bounds", 50, -20, 30},
		{"zero delta", 40, 0, 40},
		{"max int delta", 60, math.MaxInt, 100},
		{"min int delta", 60, math.MinInt, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bars := newTestBars(t)
			bar := bars.Create(20, 4, component.GaugeHealth)
			bars.SetValue(bar, tt.start)

			got, ok := bars.Adjust(bar, tt.delta)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			v, _ := bars.Value(bar)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestAdjustUnknownBar(t *testing.T) {
	_, bars := newTestBars(t)
	_, ok := bars.Adjust(core.Entity(42), 10)
	assert.False(t, ok)
}

func TestSetValueClamps(t *testing.T) {
	_, bars := newTestBars(t)
	bar := bars.Create(20, 4, component.GaugeEnergy)

	bars.SetValue(bar, 250)
	v, _ := bars.Value(bar)
	assert.Equal(t, 100, v)

	bars.SetValue(bar, -5)
	v, _ = bars.Value(bar)
	assert.Equal(t, 0, v)
}

func TestZeroFiresOncePerCrossing(t *testing.T) {
	_, bars := newTestBars(t)
	bar := bars.Create(20, 4, component.GaugeHealth)
	var got []core.Entity
	bars.OnZero(component.GaugeHealth, func(b core.Entity) { got = append(got, b) })

	bars.SetValue(bar, 10)
	bars.Adjust(bar, -10)
	require.Equal(t, []core.Entity{bar}, got)

	// Staying at zero is not a crossing
	bars.Adjust(bar, -10)
	bars.SetValue(bar, 0)
	assert.Len(t, got, 1)

	// Recover, then cross again
	bars.Adjust(bar, 5)
	bars.Adjust(bar, -50)
	assert.Len(t, got, 2)
}

func TestZeroHandlersAreKindScoped(t *testing.T) {
	_, bars := newTestBars(t)
	hp := bars.Create(20, 4, component.GaugeHealth)
	energy := bars.Create(20, 4, component.GaugeEnergy)

	var order []string
	bars.OnZero(component.GaugeHealth, func(core.Entity) { order = append(order, "hp-1") })
	bars.OnZero(component.GaugeHealth, func(core.Entity) { order = append(order, "hp-2") })
	bars.OnZero(component.GaugeEnergy, func(core.Entity) { order = append(order, "energy") })
	bars.OnZero(component.GaugeEnergy, nil)

	bars.Adjust(energy, -100)
	bars.Adjust(hp, -100)

	assert.Equal(t, []string{"energy", "hp-1", "hp-2"}, order)
}

func TestAttachToKeepsOneBarPerKind(t *testing.T) {
	s, bars := newTestBars(t)
	owner := s.World.Spawn(component.SpriteComponent{Width: 16, Height: 16}, 50, 50)

	first := bars.Create(20, 4, component.GaugeHealth)
	bars.AttachTo(first, owner)
	got, ok := bars.AttachedTo(component.GaugeHealth, owner)
	require.True(t, ok)
	assert.Equal(t, first, got)

	energy := bars.Create(20, 4, component.GaugeEnergy)
	bars.AttachTo(energy, owner)

	second := bars.Create(10, 2, component.GaugeHealth)
	bars.AttachTo(second, owner)

	got, ok = bars.AttachedTo(component.GaugeHealth, owner)
	require.True(t, ok)
	assert.Equal(t, second, got)
	assert.False(t, s.World.IsAlive(first))
	assert.True(t, s.World.IsAlive(energy))
}

func TestAttachToDeadTargetIgnored(t *testing.T) {
	s, bars := newTestBars(t)
	owner := s.World.Spawn(component.SpriteComponent{Width: 16, Height: 16}, 0, 0)
	s.World.DestroyEntity(owner)

	bar := bars.Create(20, 4, component.GaugeHealth)
	bars.AttachTo(bar, owner)
	assert.Equal(t, core.InvalidEntity, bars.Target(bar))

	_, ok := bars.AttachedTo(component.GaugeHealth, core.InvalidEntity)
	assert.False(t, ok)
}

func TestBarDestroyedWithTarget(t *testing.T) {
	s, bars := newTestBars(t)
	owner := s.World.Spawn(component.SpriteComponent{Width: 16, Height: 16}, 0, 0)
	bar := bars.Create(20, 4, component.GaugeHealth)
	bars.AttachTo(bar, owner)
	bars.SetOffsetPadding(bar, 2, 3)

	g, ok := s.World.Components.Gauge.GetComponent(bar)
	require.True(t, ok)
	assert.Equal(t, 2.0, g.OffsetX)
	assert.Equal(t, 3.0, g.OffsetY)

	s.World.DestroyEntity(owner)
	assert.False(t, s.World.IsAlive(bar))
	_, ok = bars.Value(bar)
	assert.False(t, ok)
}
