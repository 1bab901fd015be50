package core

// Entity is a stable unique identifier for a scene entity
// Zero is never issued and marks an absent reference
type Entity uint64

// InvalidEntity is the zero reference, treated as absent by every operation
const InvalidEntity Entity = 0

// Valid reports whether the reference is non-zero
// Liveness is the host's concern, see engine.World.IsAlive
func (e Entity) Valid() bool {
	return e != InvalidEntity
}

// Kind is the category tag used for bulk matching of entities
type Kind int

// KindNone is carried by entities whose kind was never set
const KindNone Kind = 0
