package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/shootpack/component"
	"github.com/lixenwraith/shootpack/core"
)

func TestCreateAndDestroyEntity(t *testing.T) {
	w := NewWorld()
	e := w.Spawn(component.SpriteComponent{Width: 10, Height: 8}, 5, 5)
	w.SetKind(e, 3)

	require.True(t, w.IsAlive(e))
	assert.Equal(t, 1, w.EntityCount())

	var destroyed []core.Entity
	w.OnDestroy(func(d core.Entity) { destroyed = append(destroyed, d) })

	w.DestroyEntity(e)
	w.DestroyEntity(e)

	assert.False(t, w.IsAlive(e))
	assert.Equal(t, []core.Entity{e}, destroyed)
	assert.False(t, w.Components.Transform.HasComponent(e))
	assert.Equal(t, core.KindNone, w.KindOf(e))
}

func TestInvalidEntityIsNeverAlive(t *testing.T) {
	w := NewWorld()
	assert.False(t, w.IsAlive(core.InvalidEntity))
	assert.False(t, w.IsAlive(42))
}

func TestSettersIgnoreDeadEntities(t *testing.T) {
	w := NewWorld()
	w.SetPosition(7, 1, 1)
	w.SetKind(7, 1)
	w.SetFlag(7, component.FlagInvisible, true)

	assert.Equal(t, 0, w.Components.Transform.CountEntity())
	assert.Equal(t, 0, w.Components.Kind.CountEntity())
	assert.Equal(t, 0, w.Components.Flag.CountEntity())
}

func TestSetScaleAnchors(t *testing.T) {
	w := NewWorld()
	e := w.Spawn(component.SpriteComponent{Width: 10, Height: 10}, 20, 20)

	w.SetScale(e, 0.5, component.AnchorMiddle)
	x, y, _ := w.Position(e)
	assert.Equal(t, 20.0, x)
	assert.Equal(t, 20.0, y)

	w.SetScale(e, 1, component.AnchorTopLeft)
	x, y, _ = w.Position(e)
	// Top-left was (17.5, 17.5), center of the 10x10 footprint is now 22.5
	assert.InDelta(t, 22.5, x, 1e-9)
	assert.InDelta(t, 22.5, y, 1e-9)
}

func TestFlags(t *testing.T) {
	w := NewWorld()
	e := w.Spawn(component.SpriteComponent{}, 0, 0)

	w.SetFlag(e, component.FlagInvisible, true)
	w.SetFlag(e, component.FlagRelativeToCamera, true)
	assert.True(t, w.HasFlag(e, component.FlagInvisible|component.FlagRelativeToCamera))

	w.SetFlag(e, component.FlagInvisible, false)
	assert.False(t, w.HasFlag(e, component.FlagInvisible))
	assert.True(t, w.HasFlag(e, component.FlagRelativeToCamera))
}

func TestAllOfKindKeepsTaggingOrder(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	c := w.CreateEntity()
	w.SetKind(c, 2)
	w.SetKind(a, 2)
	w.SetKind(b, 1)

	assert.Equal(t, []core.Entity{c, a}, w.AllOfKind(2))
	assert.Empty(t, w.AllOfKind(9))
}

func TestWorldClear(t *testing.T) {
	w := NewWorld()
	w.Spawn(component.SpriteComponent{}, 0, 0)
	w.Clear()

	assert.Equal(t, 0, w.EntityCount())
	assert.Equal(t, core.Entity(1), w.CreateEntity())
}
