package status

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/shootpack/logger"
)

func TestGetReturnsCachedPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("zero.crossings")
	a.Add(2)
	assert.Same(t, a, r.Ints.Get("zero.crossings"))
	assert.Equal(t, int64(2), r.Ints.Get("zero.crossings").Load())
	assert.Equal(t, 1, r.Ints.Count())
}

func TestConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get("ticks").Add(1)
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(16), r.Ints.Get("ticks").Load())
	assert.Equal(t, 1, r.TotalCount())
}

func TestFieldsSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("b").Store(2)
	r.Ints.Get("a").Store(1)
	r.Bools.Get("audio").Store(true)

	assert.Equal(t, []logger.Field{
		logger.F("a", int64(1)),
		logger.F("b", int64(2)),
		logger.F("audio", true),
	}, r.Fields())
}

func TestRangeAllowsRegistration(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("a")
	r.Ints.Get("c")

	var seen []string
	r.Ints.Range(func(key string, _ *atomic.Int64) {
		seen = append(seen, key)
		r.Ints.Get("b")
	})

	assert.Equal(t, []string{"a", "c"}, seen)
	seen = seen[:0]
	r.Ints.Range(func(key string, _ *atomic.Int64) { seen = append(seen, key) })
	assert.Equal(t, []string{"a", "b", "c"}, seen)
}
