package threshold

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/shootpack/core"
)

func TestFireInRegistrationOrder(t *testing.T) {
	var b Bus
	var calls []string
	b.Register(func(o core.Entity, k core.Kind) { calls = append(calls, "h1") })
	b.Register(func(o core.Entity, k core.Kind) { calls = append(calls, "h2") })

	b.Fire(5, 3)

	assert.Equal(t, []string{"h1", "h2"}, calls)
}

func TestFirePassesOwnerAndKind(t *testing.T) {
	var b Bus
	var gotOwner core.Entity
	var gotKind core.Kind
	b.Register(func(o core.Entity, k core.Kind) { gotOwner, gotKind = o, k })

	b.Fire(9, 4)

	assert.Equal(t, core.Entity(9), gotOwner)
	assert.Equal(t, core.Kind(4), gotKind)
}

func TestNoDedup(t *testing.T) {
	var b Bus
	n := 0
	h := func(core.Entity, core.Kind) { n++ }
	b.Register(h)
	b.Register(h)
	b.Register(nil)

	b.Fire(1, 1)

	assert.Equal(t, 2, n)
	assert.Equal(t, 2, b.Len())
}

func TestPanicPropagatesAndStopsFanOut(t *testing.T) {
	var b Bus
	later := false
	b.Register(func(core.Entity, core.Kind) { panic("observer failed") })
	b.Register(func(core.Entity, core.Kind) { later = true })

	assert.PanicsWithValue(t, "observer failed", func() { b.Fire(1, 1) })
	assert.False(t, later)
}

func TestRegisterDuringFire(t *testing.T) {
	var b Bus
	n := 0
	b.Register(func(core.Entity, core.Kind) {
		b.Register(func(core.Entity, core.Kind) { n++ })
	})

	b.Fire(1, 1)
	assert.Equal(t, 0, n)
	b.Fire(1, 1)
	assert.Equal(t, 1, n)
}
