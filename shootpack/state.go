package shootpack

import (
	"time"

	"github.com/lixenwraith/shootpack/component"
	"github.com/lixenwraith/shootpack/core"
	"github.com/lixenwraith/shootpack/engine"
	"github.com/lixenwraith/shootpack/gauge"
	"github.com/lixenwraith/shootpack/layout"
	"github.com/lixenwraith/shootpack/logger"
	"github.com/lixenwraith/shootpack/parameter"
	"github.com/lixenwraith/shootpack/satellite"
	"github.com/lixenwraith/shootpack/threshold"
)

// SceneState is the per-scene attachment and observer data, stored as a scene resource
// It is created on first use and dropped with the scene's resources
type SceneState struct {
	Registry  *satellite.Registry
	Observers threshold.Bus

	scene               *engine.Scene
	params              *layout.Params
	frameHookRegistered bool
	log                 logger.Logger
}

// stateFor returns the scene's state, creating and wiring it on first use
func stateFor(s *engine.Scene, params *layout.Params, log logger.Logger) *SceneState {
	st, created := engine.GetOrCreateResource(s.Resources, func() *SceneState {
		return &SceneState{
			Registry: satellite.NewRegistry(s.World),
			scene:    s,
			params:   params,
			log:      log.With(logger.F("scene", s.Name), logger.F("scene_id", s.ID)),
		}
	})
	if !created {
		return st
	}

	s.World.OnDestroy(st.Registry.Forget)
	gauge.For(s).OnZero(component.GaugeHealth, st.healthZero)
	st.log.Debug("scene state created")
	return st
}

// ensureFrameHook registers the per-frame layout pass once per scene
func (st *SceneState) ensureFrameHook() {
	if st.frameHookRegistered {
		return
	}
	st.scene.RegisterFrameHandler(parameter.PriorityAnimation, func(_ time.Duration) {
		st.layoutAll()
	})
	st.frameHookRegistered = true
	st.log.Debug("frame hook registered", logger.F("priority", parameter.PriorityAnimation))
}

// FrameHookRegistered reports whether the layout pass is installed on the scene
func (st *SceneState) FrameHookRegistered() bool {
	return st.frameHookRegistered
}

func (st *SceneState) layoutContext() layout.Context {
	counter := st.scene.Counter()
	return layout.Context{
		ViewportWidth:  st.scene.Viewport().Width,
		CounterVisible: counter.Visible,
		CounterValue:   counter.Value,
	}
}

// layoutAll re-packs the satellites of every owner
func (st *SceneState) layoutAll() {
	ctx := st.layoutContext()
	for _, owner := range st.Registry.Owners() {
		layout.Apply(st.scene.World, ctx, *st.params, st.Registry.Satellites(owner))
	}
}

func (st *SceneState) layoutOwner(owner core.Entity) {
	layout.Apply(st.scene.World, st.layoutContext(), *st.params, st.Registry.Satellites(owner))
}

// healthZero forwards a health bar reaching zero to the observers as (owner, owner kind)
// Bars without a target have no owner to report
func (st *SceneState) healthZero(bar core.Entity) {
	owner := gauge.For(st.scene).Target(bar)
	if !st.scene.World.IsAlive(owner) {
		return
	}
	kind := st.scene.World.KindOf(owner)
	st.log.Debug("zero crossing",
		logger.F("owner", owner),
		logger.F("kind", kind),
		logger.F("observers", st.Observers.Len()))
	st.Observers.Fire(owner, kind)
}
