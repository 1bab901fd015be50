package engine

import (
	"github.com/lixenwraith/shootpack/component"
)

// ComponentStore provides cached pointers to typed component stores
// Built once per world; pointers remain valid for the world's lifetime
type ComponentStore struct {
	Transform *Store[component.TransformComponent]
	Sprite    *Store[component.SpriteComponent]
	Flag      *Store[component.FlagComponent]
	Kind      *Store[component.KindComponent]
	Kinetic   *Store[component.KineticComponent]
	Gauge     *Store[component.GaugeComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Transform: NewStore[component.TransformComponent](),
		Sprite:    NewStore[component.SpriteComponent](),
		Flag:      NewStore[component.FlagComponent](),
		Kind:      NewStore[component.KindComponent](),
		Kinetic:   NewStore[component.KineticComponent](),
		Gauge:     NewStore[component.GaugeComponent](),
	}
}

// all returns every store type-erased, used for destroy and clear
func (cs *ComponentStore) all() []AnyStore {
	return []AnyStore{
		cs.Transform,
		cs.Sprite,
		cs.Flag,
		cs.Kind,
		cs.Kinetic,
		cs.Gauge,
	}
}
