package engine

import (
	"reflect"
	"sync"
)

// ResourceStore is a typed container for singleton resources
// One store lives on each Scene, so its contents share the scene lifetime
// Keys are Go types, never strings, so unrelated packages cannot collide
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces a resource keyed by its static type T
// T should be a pointer type so holders can mutate the shared instance
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeOf((*T)(nil)).Elem()] = resource
}

// GetResource retrieves a resource of type T from the store
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	val, ok := rs.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		var zero T
		return zero, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Reserved for resources every scene installs at construction
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		panic("required resource not found: " + reflect.TypeOf((*T)(nil)).Elem().String())
	}
	return res
}

// GetOrCreateResource returns the resource of type T, constructing and storing it on first use
// create runs at most once per store and type
func GetOrCreateResource[T any](rs *ResourceStore, create func() T) (T, bool) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	rs.mu.RLock()
	val, ok := rs.resources[t]
	rs.mu.RUnlock()
	if ok {
		return val.(T), false
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()
	if val, ok := rs.resources[t]; ok {
		return val.(T), false
	}
	res := create()
	rs.resources[t] = res
	return res, true
}

// Len returns the number of stored resources
func (rs *ResourceStore) Len() int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return len(rs.resources)
}

// Clear drops every resource
func (rs *ResourceStore) Clear() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources = make(map[reflect.Type]any)
}
