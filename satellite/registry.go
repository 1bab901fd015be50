// Package satellite keeps per-owner ordered collections of attached entities
//
// Every operation treats invalid or dead references as absent: mutators do nothing,
// queries answer false. Nothing here returns an error.
package satellite

import (
	"github.com/lixenwraith/shootpack/core"
)

// Host is the entity capability set the registry needs
type Host interface {
	IsAlive(e core.Entity) bool
	KindOf(e core.Entity) core.Kind
	DestroyEntity(e core.Entity)
}

// Registry maps owners to their satellite records
// Owners are iterated in the order their record was created
type Registry struct {
	host    Host
	records map[core.Entity]*Record
	owners  []core.Entity
}

// NewRegistry creates an empty registry over host
func NewRegistry(host Host) *Registry {
	return &Registry{
		host:    host,
		records: make(map[core.Entity]*Record),
	}
}

// Attach appends satellite to owner's collection, creating the record on first use
// Re-attaching a present satellite leaves the collection unchanged
// Returns true only when the satellite was appended
func (r *Registry) Attach(owner, satellite core.Entity) bool {
	if owner == satellite || !r.host.IsAlive(owner) || !r.host.IsAlive(satellite) {
		return false
	}

	rec, ok := r.records[owner]
	if !ok {
		rec = &Record{Owner: owner}
		r.records[owner] = rec
		r.owners = append(r.owners, owner)
	}
	if rec.indexOf(satellite) >= 0 {
		return false
	}
	rec.Satellites = append(rec.Satellites, satellite)
	return true
}

// Contains reports whether satellite is in owner's collection, by identity
func (r *Registry) Contains(owner, satellite core.Entity) bool {
	if !owner.Valid() || !satellite.Valid() {
		return false
	}
	rec, ok := r.records[owner]
	return ok && rec.indexOf(satellite) >= 0
}

// ContainsKind reports whether any satellite of owner carries kind
func (r *Registry) ContainsKind(owner core.Entity, kind core.Kind) bool {
	if !owner.Valid() {
		return false
	}
	rec, ok := r.records[owner]
	if !ok {
		return false
	}
	for _, s := range rec.Satellites {
		if r.host.KindOf(s) == kind {
			return true
		}
	}
	return false
}

// Detach removes satellite from owner's collection and destroys it
// Returns false when it was not attached
func (r *Registry) Detach(owner, satellite core.Entity) bool {
	if !owner.Valid() || !satellite.Valid() {
		return false
	}
	return r.detachMatching(owner, func(e core.Entity) bool { return e == satellite }) > 0
}

// DetachKind removes and destroys every satellite of owner carrying kind, survivors keep their order
// Returns the number removed
func (r *Registry) DetachKind(owner core.Entity, kind core.Kind) int {
	if !owner.Valid() {
		return 0
	}
	return r.detachMatching(owner, func(e core.Entity) bool { return r.host.KindOf(e) == kind })
}

// detachMatching unlinks all matches before destroying any of them,
// so destroy hooks calling back into Forget see a consistent collection
func (r *Registry) detachMatching(owner core.Entity, match func(core.Entity) bool) int {
	rec, ok := r.records[owner]
	if !ok {
		return 0
	}
	idx := rec.matching(match)
	if len(idx) == 0 {
		return 0
	}
	removed := rec.removeAt(idx)
	for _, e := range removed {
		r.host.DestroyEntity(e)
	}
	return len(removed)
}

// Forget drops every trace of an entity destroyed elsewhere
// An owner loses its record, a satellite leaves every collection; nothing is destroyed
func (r *Registry) Forget(e core.Entity) {
	if !e.Valid() {
		return
	}
	if _, ok := r.records[e]; ok {
		delete(r.records, e)
		for i, o := range r.owners {
			if o == e {
				r.owners = append(r.owners[:i], r.owners[i+1:]...)
				break
			}
		}
	}
	for _, rec := range r.records {
		if i := rec.indexOf(e); i >= 0 {
			rec.removeAt([]int{i})
		}
	}
}

// Satellites returns a copy of owner's collection in attach order
func (r *Registry) Satellites(owner core.Entity) []core.Entity {
	rec, ok := r.records[owner]
	if !ok {
		return nil
	}
	out := make([]core.Entity, len(rec.Satellites))
	copy(out, rec.Satellites)
	return out
}

// Owners returns owners with a record, in record creation order
func (r *Registry) Owners() []core.Entity {
	out := make([]core.Entity, len(r.owners))
	copy(out, r.owners)
	return out
}

// Len returns the number of owners with a record
func (r *Registry) Len() int {
	return len(r.records)
}
