package status

import (
	"slices"
	"strings"
	"sync"
)

type metric[T any] struct {
	key string
	ptr *T
}

// MetricMap holds named counters of type T, kept in key order
// Get hands out a stable pointer so writers never touch the map again
type MetricMap[T any] struct {
	mu      sync.Mutex
	metrics []metric[T]
}

// NewMetricMap creates an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

func compareKey[T any](m metric[T], key string) int {
	return strings.Compare(m.key, key)
}

// Get returns the counter for key, registering a zero value on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, found := slices.BinarySearchFunc(m.metrics, key, compareKey[T])
	if found {
		return m.metrics[i].ptr
	}
	ptr := new(T)
	m.metrics = slices.Insert(m.metrics, i, metric[T]{key: key, ptr: ptr})
	return ptr
}

// Range visits a snapshot of the counters in key order
// fn runs unlocked and may register new keys, which the current pass skips
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.Lock()
	snapshot := slices.Clone(m.metrics)
	m.mu.Unlock()

	for _, e := range snapshot {
		fn(e.key, e.ptr)
	}
}

// Count returns the number of registered counters
func (m *MetricMap[T]) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.metrics)
}
