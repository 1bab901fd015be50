package engine

import (
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/shootpack/logger"
)

// FrameHandler runs once per frame with the frame duration
type FrameHandler func(dt time.Duration)

type frameHandler struct {
	priority int
	seq      int
	fn       FrameHandler
}

// Scene is one logical screen: its world, its scoped resources, its frame handlers and timers
// All mutation happens on the frame loop goroutine, callbacks run to completion
type Scene struct {
	ID        uuid.UUID
	Name      string
	World     *World
	Resources *ResourceStore

	handlers []frameHandler
	seq      int
	timers   timerQueue
	rng      *rand.Rand

	onDispose []func()
	disposed  bool

	log logger.Logger
}

// NewScene creates a scene with its core resources installed
func NewScene(name string, viewport ViewportResource, seed int64, log logger.Logger) *Scene {
	s := &Scene{
		ID:        uuid.New(),
		Name:      name,
		World:     NewWorld(),
		Resources: NewResourceStore(),
		rng:       rand.New(rand.NewSource(seed)),
		log:       log,
	}

	AddResource(s.Resources, &TimeResource{})
	AddResource(s.Resources, &viewport)
	AddResource(s.Resources, &CameraResource{})
	AddResource(s.Resources, &CounterResource{})
	AddResource(s.Resources, &BackgroundResource{})

	return s
}

// Logger returns the scene-scoped logger
func (s *Scene) Logger() logger.Logger {
	return s.log
}

// Time returns the scene time resource
func (s *Scene) Time() *TimeResource {
	return MustGetResource[*TimeResource](s.Resources)
}

// Viewport returns the scene viewport resource
func (s *Scene) Viewport() *ViewportResource {
	return MustGetResource[*ViewportResource](s.Resources)
}

// Camera returns the scene camera resource
func (s *Scene) Camera() *CameraResource {
	return MustGetResource[*CameraResource](s.Resources)
}

// Counter returns the scene life counter resource
func (s *Scene) Counter() *CounterResource {
	return MustGetResource[*CounterResource](s.Resources)
}

// Background returns the scene background layer resource
func (s *Scene) Background() *BackgroundResource {
	return MustGetResource[*BackgroundResource](s.Resources)
}

// RegisterFrameHandler adds fn to the frame cycle at the given phase priority
// Lower priorities run first, equal priorities run in registration order
// Handlers registered during a frame first run on the next frame
func (s *Scene) RegisterFrameHandler(priority int, fn FrameHandler) {
	if s.disposed || fn == nil {
		return
	}
	s.seq++
	s.handlers = append(s.handlers, frameHandler{priority: priority, seq: s.seq, fn: fn})
	sort.SliceStable(s.handlers, func(i, j int) bool {
		return s.handlers[i].priority < s.handlers[j].priority
	})
}

// FrameHandlerCount returns the number of registered frame handlers
func (s *Scene) FrameHandlerCount() int {
	return len(s.handlers)
}

// AddSystem registers a system's Update as a frame handler at its priority
func (s *Scene) AddSystem(sys System) {
	s.RegisterFrameHandler(sys.Priority(), sys.Update)
}

// Step advances scene time by dt, fires due timers, then runs frame handlers in phase order
func (s *Scene) Step(dt time.Duration) {
	if s.disposed {
		return
	}
	tr := s.Time()
	tr.Update(dt)

	s.timers.advance(tr.GameTime)

	handlers := make([]frameHandler, len(s.handlers))
	copy(handlers, s.handlers)
	for _, h := range handlers {
		if s.disposed {
			return
		}
		h.fn(dt)
	}
}

// SetInterval runs fn every d of scene time until cleared
func (s *Scene) SetInterval(d time.Duration, fn func()) TimerID {
	if s.disposed || fn == nil {
		return 0
	}
	return s.timers.add(s.Time().GameTime, d, true, fn)
}

// SetTimeout runs fn once after d of scene time
func (s *Scene) SetTimeout(d time.Duration, fn func()) TimerID {
	if s.disposed || fn == nil {
		return 0
	}
	return s.timers.add(s.Time().GameTime, d, false, fn)
}

// ClearTimer cancels a pending timer, returns false if it already fired or never existed
func (s *Scene) ClearTimer(id TimerID) bool {
	return s.timers.cancel(id)
}

// PendingTimers returns the number of scheduled timers
func (s *Scene) PendingTimers() int {
	return s.timers.pending()
}

// Chance reports true with probability percent/100
func (s *Scene) Chance(percent float64) bool {
	if percent <= 0 {
		return false
	}
	if percent >= 100 {
		return true
	}
	return s.rng.Float64()*100 < percent
}

// OnDispose registers fn to run when the scene is torn down
func (s *Scene) OnDispose(fn func()) {
	s.onDispose = append(s.onDispose, fn)
}

// Disposed reports whether the scene has been torn down
func (s *Scene) Disposed() bool {
	return s.disposed
}

// Dispose tears the scene down, dropping its world, resources, timers and handlers
func (s *Scene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	for _, fn := range s.onDispose {
		fn()
	}
	s.onDispose = nil
	s.handlers = nil
	s.timers.clear()
	s.World.Clear()
	s.Resources.Clear()
}
