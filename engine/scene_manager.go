package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/shootpack/logger"
)

// SceneManager owns the scene stack, only the top scene is active
// Scene lifetime belongs here, everything scene-scoped dies with Pop
type SceneManager struct {
	mu       sync.Mutex
	stack    []*Scene
	viewport ViewportResource
	seed     func() int64
	onPush   []func(*Scene)
	log      logger.Logger
}

// NewSceneManager creates an empty stack; scenes inherit the given viewport
func NewSceneManager(viewport ViewportResource, log logger.Logger) *SceneManager {
	if log == nil {
		log = logger.Discard()
	}
	return &SceneManager{
		viewport: viewport,
		seed:     func() int64 { return time.Now().UnixNano() },
		log:      logger.Component(log, "scene"),
	}
}

// SetSeed replaces the random seed source for scenes pushed afterwards
func (m *SceneManager) SetSeed(seed func() int64) {
	m.mu.Lock()
	m.seed = seed
	m.mu.Unlock()
}

// OnPush registers fn to run for every scene pushed afterwards, before Push returns
func (m *SceneManager) OnPush(fn func(*Scene)) {
	m.mu.Lock()
	m.onPush = append(m.onPush, fn)
	m.mu.Unlock()
}

// Push creates a scene and makes it current, the previous scene stays suspended below it
func (m *SceneManager) Push(name string) *Scene {
	m.mu.Lock()
	s := NewScene(name, m.viewport, m.seed(), m.log.With(logger.F("scene", name)))
	m.stack = append(m.stack, s)
	hooks := make([]func(*Scene), len(m.onPush))
	copy(hooks, m.onPush)
	depth := len(m.stack)
	m.mu.Unlock()

	m.log.Info("scene pushed", logger.F("name", name), logger.F("id", s.ID), logger.F("depth", depth))
	for _, fn := range hooks {
		fn(s)
	}
	return s
}

// Pop disposes the current scene and returns the one resumed below it, nil when the stack empties
func (m *SceneManager) Pop() *Scene {
	m.mu.Lock()
	if len(m.stack) == 0 {
		m.mu.Unlock()
		return nil
	}
	top := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	var resumed *Scene
	if len(m.stack) > 0 {
		resumed = m.stack[len(m.stack)-1]
	}
	m.mu.Unlock()

	top.Dispose()
	m.log.Info("scene popped", logger.F("name", top.Name), logger.F("id", top.ID))
	return resumed
}

// Current returns the active scene, nil when none was pushed
func (m *SceneManager) Current() *Scene {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// Depth returns the number of scenes on the stack
func (m *SceneManager) Depth() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.stack)
}

// Resize updates the viewport of every scene on the stack and of scenes pushed later
func (m *SceneManager) Resize(width, height float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.viewport = ViewportResource{Width: width, Height: height}
	for _, s := range m.stack {
		vp := s.Viewport()
		vp.Width, vp.Height = width, height
	}
}

// Clear disposes every scene, top first
func (m *SceneManager) Clear() {
	for m.Depth() > 0 {
		m.Pop()
	}
}
