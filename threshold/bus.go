// Package threshold fans out gauge zero crossings to observers
package threshold

import "github.com/lixenwraith/shootpack/core"

// ObserverFunc receives the entity owning the gauge and that entity's kind
type ObserverFunc func(owner core.Entity, kind core.Kind)

// Bus is an ordered observer list
//   - Observers run in registration order
//   - The same function registered twice runs twice
//   - There is no removal, observers live as long as the bus
//   - A panicking observer unwinds Fire, later observers do not run
type Bus struct {
	observers []ObserverFunc
}

// Register appends fn, nil is ignored
func (b *Bus) Register(fn ObserverFunc) {
	if fn == nil {
		return
	}
	b.observers = append(b.observers, fn)
}

// Fire invokes every observer registered before the call, in order
// Observers registered during Fire are first invoked on the next crossing
func (b *Bus) Fire(owner core.Entity, kind core.Kind) {
	observers := b.observers
	for _, fn := range observers {
		fn(owner, kind)
	}
}

// Len returns the number of registered observers
func (b *Bus) Len() int {
	return len(b.observers)
}
