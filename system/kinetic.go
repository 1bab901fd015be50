package system

import (
	"time"

	"github.com/lixenwraith/shootpack/component"
	"github.com/lixenwraith/shootpack/core"
	"github.com/lixenwraith/shootpack/engine"
	"github.com/lixenwraith/shootpack/parameter"
)

// KineticSystem integrates constant velocities and culls auto-destroy entities that left the screen
type KineticSystem struct {
	engine.SystemBase
}

func NewKineticSystem(s *engine.Scene) engine.System {
	return &KineticSystem{SystemBase: engine.NewSystemBase(s)}
}

func (s *KineticSystem) Name() string {
	return "kinetic"
}

func (s *KineticSystem) Priority() int {
	return parameter.PriorityPhysics
}

// Update moves every entity with a KineticComponent by v*dt
func (s *KineticSystem) Update(dt time.Duration) {
	sec := dt.Seconds()
	if sec <= 0 {
		return
	}

	vp := s.Scene.Viewport()
	cam := s.Scene.Camera()

	for _, e := range s.Component.Kinetic.AllEntity() {
		k, ok := s.Component.Kinetic.GetComponent(e)
		if !ok {
			continue
		}
		s.Component.Transform.Update(e, func(t *component.TransformComponent) {
			t.X += k.VX * sec
			t.Y += k.VY * sec
		})

		if !s.World.HasFlag(e, component.FlagAutoDestroy) {
			continue
		}
		if s.offscreen(e, vp, cam) {
			s.World.DestroyEntity(e)
		}
	}
}

func (s *KineticSystem) offscreen(e core.Entity, vp *engine.ViewportResource, cam *engine.CameraResource) bool {
	t, ok := s.Component.Transform.GetComponent(e)
	if !ok {
		return false
	}
	sp, _ := s.Component.Sprite.GetComponent(e)
	halfW := sp.Width * t.ScaleX / 2
	halfH := sp.Height * t.ScaleY / 2

	x, y := t.X, t.Y
	if !s.World.HasFlag(e, component.FlagRelativeToCamera) {
		x -= cam.X
		y -= cam.Y
	}
	return x+halfW < 0 || x-halfW > vp.Width || y+halfH < 0 || y-halfH > vp.Height
}
