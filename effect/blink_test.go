package effect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/shootpack/component"
	"github.com/lixenwraith/shootpack/core"
	"github.com/lixenwraith/shootpack/engine"
	"github.com/lixenwraith/shootpack/logger"
)

func newBlinkScene() (*engine.Scene, core.Entity) {
	s := engine.NewScene("blink", engine.ViewportResource{Width: 160, Height: 120}, 1, logger.Discard())
	e := s.World.Spawn(component.SpriteComponent{Width: 8, Height: 8}, 10, 10)
	return s, e
}

func TestBlinkTogglesThenRestores(t *testing.T) {
	s, e := newBlinkScene()
	b := NewBlink(s, e, 200*time.Millisecond, 50*time.Millisecond)
	assert.True(t, b.Active())
	assert.Equal(t, 2, s.PendingTimers())

	s.Step(50 * time.Millisecond)
	assert.True(t, s.World.HasFlag(e, component.FlagInvisible))
	s.Step(50 * time.Millisecond)
	assert.False(t, s.World.HasFlag(e, component.FlagInvisible))
	s.Step(50 * time.Millisecond)
	assert.True(t, s.World.HasFlag(e, component.FlagInvisible))

	s.Step(50 * time.Millisecond)
	assert.False(t, b.Active())
	assert.False(t, s.World.HasFlag(e, component.FlagInvisible))
	assert.Equal(t, 0, s.PendingTimers())
}

func TestBlinkStopReleasesBothTimers(t *testing.T) {
	s, e := newBlinkScene()
	b := NewBlink(s, e, time.Second, 50*time.Millisecond)

	s.Step(50 * time.Millisecond)
	assert.True(t, s.World.HasFlag(e, component.FlagInvisible))

	b.Stop()
	b.Stop()
	assert.False(t, b.Active())
	assert.False(t, s.World.HasFlag(e, component.FlagInvisible))
	assert.Equal(t, 0, s.PendingTimers())
}

func TestBlinkDeadEntity(t *testing.T) {
	s, e := newBlinkScene()
	s.World.DestroyEntity(e)

	b := NewBlink(s, e, time.Second, 50*time.Millisecond)
	assert.False(t, b.Active())
	assert.Equal(t, 0, s.PendingTimers())
}

func TestBlinkStopsWhenEntityDies(t *testing.T) {
	s, e := newBlinkScene()
	b := NewBlink(s, e, time.Second, 50*time.Millisecond)

	s.World.DestroyEntity(e)
	s.Step(50 * time.Millisecond)

	assert.False(t, b.Active())
	assert.Equal(t, 0, s.PendingTimers())
	assert.Equal(t, e, b.Entity())
}
