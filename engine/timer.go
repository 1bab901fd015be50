package engine

import "time"

// TimerID identifies a scheduled scene timer, zero is never issued
type TimerID uint64

// minTimerInterval bounds repeating timers so one frame cannot fire them unboundedly
const minTimerInterval = time.Millisecond

type sceneTimer struct {
	id       TimerID
	due      time.Duration
	interval time.Duration
	repeat   bool
	fn       func()
}

// timerQueue runs cooperative timers against scene time
// Timers fire during Scene.Step, on the frame loop goroutine, in due order
type timerQueue struct {
	nextID TimerID
	timers []*sceneTimer
}

func (q *timerQueue) add(now, d time.Duration, repeat bool, fn func()) TimerID {
	if repeat && d < minTimerInterval {
		d = minTimerInterval
	}
	q.nextID++
	q.timers = append(q.timers, &sceneTimer{
		id:       q.nextID,
		due:      now + d,
		interval: d,
		repeat:   repeat,
		fn:       fn,
	})
	return q.nextID
}

func (q *timerQueue) cancel(id TimerID) bool {
	for i, t := range q.timers {
		if t.id == id {
			q.timers = append(q.timers[:i], q.timers[i+1:]...)
			return true
		}
	}
	return false
}

func (q *timerQueue) pending() int {
	return len(q.timers)
}

// advance fires every timer due at or before now
// Callbacks may add or cancel timers, the queue is rescanned after each fire
func (q *timerQueue) advance(now time.Duration) {
	for {
		idx := -1
		for i, t := range q.timers {
			if t.due > now {
				continue
			}
			if idx < 0 || t.due < q.timers[idx].due || (t.due == q.timers[idx].due && t.id < q.timers[idx].id) {
				idx = i
			}
		}
		if idx < 0 {
			return
		}

		t := q.timers[idx]
		if t.repeat {
			t.due += t.interval
		} else {
			q.timers = append(q.timers[:idx], q.timers[idx+1:]...)
		}
		t.fn()
	}
}

func (q *timerQueue) clear() {
	q.timers = nil
}
