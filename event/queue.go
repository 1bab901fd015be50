package event

import (
	"sync/atomic"

	"github.com/lixenwraith/shootpack/parameter"
)

// Queue is a lock-free MPSC ring buffer for loop events
// Thread-Safety:
//   - Push: Lock-free CAS, the input pump and signal handlers may push concurrently
//   - Consume: Single consumer (frame loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type Queue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64 // Read index
	tail      atomic.Uint64 // Write index
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

// Push adds an event, safe for concurrent producers
func (q *Queue) Push(ev GameEvent) {
	for {
		tail := q.tail.Load()
		next := tail + 1
		if !q.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & parameter.EventBufferMask
		q.events[idx] = ev
		q.published[idx].Store(true) // MUST be after write

		// Drop the oldest unread event when the ring wraps
		head := q.head.Load()
		if next-head > parameter.EventQueueSize {
			q.head.CompareAndSwap(head, next-parameter.EventQueueSize)
		}
		return
	}
}

// Consume returns all pending events in FIFO order and advances head
// Stops at the first slot whose writer has not finished publishing
func (q *Queue) Consume() []GameEvent {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if tail == head {
			return nil
		}

		available := tail - head
		if available > parameter.EventQueueSize {
			available = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		result := make([]GameEvent, 0, available)
		for i := uint64(0); i < available; i++ {
			idx := (head + i) & parameter.EventBufferMask
			if !q.published[idx].Load() {
				break
			}
			result = append(result, q.events[idx])
			q.published[idx].Store(false)
		}

		if q.head.CompareAndSwap(head, head+uint64(len(result))) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Len returns approximate pending event count
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	if diff := tail - head; diff < parameter.EventQueueSize {
		return int(diff)
	}
	return parameter.EventQueueSize
}
