package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/shootpack/event"
	"github.com/lixenwraith/shootpack/logger"
	"github.com/lixenwraith/shootpack/parameter"
)

// Loop drives the active scene on a fixed tick
// Each tick: dispatch queued input events, step the current scene, render
// Everything runs on the goroutine calling Run, input producers only touch the queue
type Loop struct {
	scenes   *SceneManager
	queue    *event.Queue
	router   *event.Router
	clock    Clock
	interval time.Duration
	render   func(*Scene)

	lastTick time.Time
	ticks    atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool

	log logger.Logger
}

// NewLoop creates a loop ticking at interval, a non-positive interval falls back to the default frame interval
func NewLoop(scenes *SceneManager, queue *event.Queue, clock Clock, interval time.Duration, log logger.Logger) *Loop {
	if interval <= 0 {
		interval = parameter.FrameUpdateInterval
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if log == nil {
		log = logger.Discard()
	}
	l := &Loop{
		scenes:   scenes,
		queue:    queue,
		router:   event.NewRouter(queue),
		clock:    clock,
		interval: interval,
		stopChan: make(chan struct{}),
		log:      logger.Component(log, "loop"),
	}
	l.router.Register(event.HandlerFunc{
		Types: []event.EventType{event.EventQuit},
		Fn:    func(event.GameEvent) { l.Stop() },
	})
	return l
}

// RegisterEventHandler adds an event handler to the router, must be called before Run
func (l *Loop) RegisterEventHandler(h event.Handler) {
	l.router.Register(h)
}

// SetRenderer installs the callback run after every scene step
func (l *Loop) SetRenderer(fn func(*Scene)) {
	l.render = fn
}

// Ticks returns the number of completed ticks
func (l *Loop) Ticks() uint64 {
	return l.ticks.Load()
}

// Tick runs one loop cycle with dt measured from the previous tick
// The first tick steps by the nominal interval
func (l *Loop) Tick() {
	now := l.clock.Now()
	dt := l.interval
	if !l.lastTick.IsZero() {
		dt = now.Sub(l.lastTick)
	}
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}
	l.lastTick = now

	l.router.DispatchAll()

	if s := l.scenes.Current(); s != nil {
		s.Step(dt)
		if l.render != nil {
			l.render(s)
		}
	}
	l.ticks.Add(1)
}

// Run blocks ticking until ctx is done or Stop is called
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return nil
	}
	defer l.running.Store(false)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.log.Info("loop started", logger.F("interval", l.interval))
	for {
		select {
		case <-ctx.Done():
			l.log.Info("loop cancelled", logger.F("ticks", l.Ticks()))
			return ctx.Err()
		case <-l.stopChan:
			l.log.Info("loop stopped", logger.F("ticks", l.Ticks()))
			return nil
		case <-ticker.C:
			l.Tick()
		}
	}
}

// Stop halts Run after the current tick, safe to call more than once and from any goroutine
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
}

// Stopped reports whether Stop was called
func (l *Loop) Stopped() bool {
	select {
	case <-l.stopChan:
		return true
	default:
		return false
	}
}
