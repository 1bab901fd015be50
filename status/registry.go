// Package status holds named runtime counters shared between the loop and its observers
package status

import (
	"sync/atomic"

	"github.com/lixenwraith/shootpack/logger"
)

// Registry is the central counter facade
// Callers cache pointers once; hot paths write straight to the atomics
type Registry struct {
	Bools *MetricMap[atomic.Bool]
	Ints  *MetricMap[atomic.Int64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools: NewMetricMap[atomic.Bool](),
		Ints:  NewMetricMap[atomic.Int64](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count()
}

// Fields snapshots every metric as log fields, in key order per type
func (r *Registry) Fields() []logger.Field {
	fields := make([]logger.Field, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		fields = append(fields, logger.F(key, v.Load()))
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		fields = append(fields, logger.F(key, v.Load()))
	})
	return fields
}
