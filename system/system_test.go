package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/shootpack/component"
	"github.com/lixenwraith/shootpack/engine"
	"github.com/lixenwraith/shootpack/gauge"
	"github.com/lixenwraith/shootpack/logger"
	"github.com/lixenwraith/shootpack/parameter"
)

func newTestScene() *engine.Scene {
	return engine.NewScene("system", engine.ViewportResource{Width: 160, Height: 120}, 1, logger.Discard())
}

func TestKineticMovesByVelocity(t *testing.T) {
	s := newTestScene()
	s.AddSystem(NewKineticSystem(s))

	e := s.World.Spawn(component.SpriteComponent{Width: 4, Height: 4}, 80, 60)
	s.World.SetVelocity(e, -100, 50)

	s.Step(100 * time.Millisecond)

	x, y, ok := s.World.Position(e)
	require.True(t, ok)
	assert.InDelta(t, 70.0, x, 1e-9)
	assert.InDelta(t, 65.0, y, 1e-9)
}

func TestKineticCullsAutoDestroyOffscreen(t *testing.T) {
	s := newTestScene()
	s.AddSystem(NewKineticSystem(s))

	shot := s.World.Spawn(component.SpriteComponent{Width: 2, Height: 2}, 2, 60)
	s.World.SetVelocity(shot, -100, 0)
	s.World.SetFlag(shot, component.FlagAutoDestroy, true)

	keeper := s.World.Spawn(component.SpriteComponent{Width: 2, Height: 2}, 2, 60)
	s.World.SetVelocity(keeper, -100, 0)

	s.Step(100 * time.Millisecond)

	assert.False(t, s.World.IsAlive(shot))
	assert.True(t, s.World.IsAlive(keeper))
}

func TestScrollAdvancesOnlyWhenEnabled(t *testing.T) {
	s := newTestScene()
	s.AddSystem(NewScrollSystem(s))

	s.Step(time.Second)
	assert.Zero(t, s.Background().OffsetX)

	bg := s.Background()
	bg.VX, bg.VY, bg.Scrolled = -50, 10, true
	s.Step(500 * time.Millisecond)

	assert.InDelta(t, -25.0, bg.OffsetX, 1e-9)
	assert.InDelta(t, 5.0, bg.OffsetY, 1e-9)
}

func TestGaugeFollowsTarget(t *testing.T) {
	s := newTestScene()
	s.AddSystem(NewGaugeSystem(s))
	bars := gauge.For(s)

	owner := s.World.Spawn(component.SpriteComponent{Width: 16, Height: 16}, 50, 50)
	bar := bars.Create(20, 4, component.GaugeHealth)
	bars.AttachTo(bar, owner)
	bars.SetOffsetPadding(bar, 0, 4)

	s.Step(time.Millisecond)

	// top edge 42, padding 4, half bar height 2
	x, y, _ := s.World.Position(bar)
	assert.Equal(t, 50.0, x)
	assert.Equal(t, 36.0, y)

	s.World.SetPosition(owner, 70, 30)
	s.Step(time.Millisecond)
	x, y, _ = s.World.Position(bar)
	assert.Equal(t, 70.0, x)
	assert.Equal(t, 16.0, y)
}

func TestPriorities(t *testing.T) {
	s := newTestScene()
	assert.Equal(t, parameter.PriorityPhysics, NewKineticSystem(s).Priority())
	assert.Equal(t, parameter.PriorityScroll, NewScrollSystem(s).Priority())
	assert.Equal(t, parameter.PriorityGauge, NewGaugeSystem(s).Priority())
	assert.Less(t, parameter.PriorityAnimation, parameter.PriorityGauge)
}
