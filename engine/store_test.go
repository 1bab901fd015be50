package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/shootpack/core"
)

type mockComponent struct {
	Value int
}

func TestStoreInsertionOrderSurvivesRemoval(t *testing.T) {
	s := NewStore[mockComponent]()
	for e := core.Entity(1); e <= 4; e++ {
		s.SetComponent(e, mockComponent{Value: int(e)})
	}

	s.RemoveComponent(2)

	assert.Equal(t, []core.Entity{1, 3, 4}, s.AllEntity())
	assert.Equal(t, 3, s.CountEntity())
	assert.False(t, s.HasComponent(2))
}

func TestStoreSetExistingKeepsPosition(t *testing.T) {
	s := NewStore[mockComponent]()
	s.SetComponent(1, mockComponent{Value: 1})
	s.SetComponent(2, mockComponent{Value: 2})
	s.SetComponent(1, mockComponent{Value: 10})

	assert.Equal(t, []core.Entity{1, 2}, s.AllEntity())
	v, ok := s.GetComponent(1)
	require.True(t, ok)
	assert.Equal(t, 10, v.Value)
}

func TestStoreUpdate(t *testing.T) {
	s := NewStore[mockComponent]()
	s.SetComponent(1, mockComponent{Value: 1})

	assert.True(t, s.Update(1, func(c *mockComponent) { c.Value++ }))
	assert.False(t, s.Update(9, func(c *mockComponent) { c.Value++ }))

	v, _ := s.GetComponent(1)
	assert.Equal(t, 2, v.Value)
	assert.False(t, s.HasComponent(9))
}

func TestStoreClear(t *testing.T) {
	s := NewStore[mockComponent]()
	s.SetComponent(1, mockComponent{})
	s.ClearAllComponent()

	assert.Equal(t, 0, s.CountEntity())
	assert.Empty(t, s.AllEntity())
}

type counterState struct {
	n int
}

func TestResourceStoreTypedKeys(t *testing.T) {
	rs := NewResourceStore()
	AddResource(rs, &counterState{n: 1})

	got, ok := GetResource[*counterState](rs)
	require.True(t, ok)
	assert.Equal(t, 1, got.n)

	_, ok = GetResource[*TimeResource](rs)
	assert.False(t, ok)
	assert.Panics(t, func() { MustGetResource[*TimeResource](rs) })
}

func TestGetOrCreateResourceRunsCreateOnce(t *testing.T) {
	rs := NewResourceStore()
	calls := 0
	create := func() *counterState {
		calls++
		return &counterState{n: calls}
	}

	first, created := GetOrCreateResource(rs, create)
	assert.True(t, created)
	second, created := GetOrCreateResource(rs, create)
	assert.False(t, created)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)

	rs.Clear()
	third, created := GetOrCreateResource(rs, create)
	assert.True(t, created)
	assert.NotSame(t, first, third)
}
