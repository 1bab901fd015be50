package engine

import (
	"sync"

	"github.com/lixenwraith/shootpack/core"
)

// World contains all entities of one scene and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	Components ComponentStore

	destroyHooks []func(core.Entity)
}

// NewWorld creates an empty world, entity ids start at 1
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		Components:   newComponentStore(),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	w.alive[id] = struct{}{}
	return id
}

// IsAlive reports whether e was created by this world and not yet destroyed
func (w *World) IsAlive(e core.Entity) bool {
	if !e.Valid() {
		return false
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.alive[e]
	return ok
}

// OnDestroy registers a hook run before an entity's components are removed
// Hooks run in registration order
func (w *World) OnDestroy(fn func(core.Entity)) {
	w.mu.Lock()
	w.destroyHooks = append(w.destroyHooks, fn)
	w.mu.Unlock()
}

// DestroyEntity removes the entity and all its components, no-op for dead or invalid entities
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	if _, ok := w.alive[e]; !ok {
		w.mu.Unlock()
		return
	}
	delete(w.alive, e)
	hooks := make([]func(core.Entity), len(w.destroyHooks))
	copy(hooks, w.destroyHooks)
	w.mu.Unlock()

	for _, hook := range hooks {
		hook(e)
	}
	for _, s := range w.Components.all() {
		s.RemoveComponent(e)
	}
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.alive)
}

// Clear removes all entities and components from the world
// Destroy hooks are not run, the whole world is being discarded
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	w.alive = make(map[core.Entity]struct{})
	for _, s := range w.Components.all() {
		s.ClearAllComponent()
	}
}
