package system

import (
	"time"

	"github.com/lixenwraith/shootpack/component"
	"github.com/lixenwraith/shootpack/engine"
	"github.com/lixenwraith/shootpack/parameter"
)

// GaugeSystem keeps attached bars centered above their target's top edge
type GaugeSystem struct {
	engine.SystemBase
}

func NewGaugeSystem(s *engine.Scene) engine.System {
	return &GaugeSystem{SystemBase: engine.NewSystemBase(s)}
}

func (s *GaugeSystem) Name() string {
	return "gauge"
}

func (s *GaugeSystem) Priority() int {
	return parameter.PriorityGauge
}

func (s *GaugeSystem) Update(dt time.Duration) {
	for _, bar := range s.Component.Gauge.AllEntity() {
		g, ok := s.Component.Gauge.GetComponent(bar)
		if !ok || !g.Target.Valid() {
			continue
		}
		t, ok := s.Component.Transform.GetComponent(g.Target)
		if !ok {
			continue
		}
		sp, _ := s.Component.Sprite.GetComponent(g.Target)

		top := t.Y - sp.Height*t.ScaleY/2
		s.World.SetPosition(bar, t.X+g.OffsetX, top-g.OffsetY-float64(g.Height)/2)
		s.World.SetFlag(bar, component.FlagRelativeToCamera, s.World.HasFlag(g.Target, component.FlagRelativeToCamera))
	}
}
