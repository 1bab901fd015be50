package system

import (
	"time"

	"github.com/lixenwraith/shootpack/engine"
	"github.com/lixenwraith/shootpack/parameter"
)

// ScrollSystem advances the background layer offset by its scroll velocity
type ScrollSystem struct {
	engine.SystemBase
}

func NewScrollSystem(s *engine.Scene) engine.System {
	return &ScrollSystem{SystemBase: engine.NewSystemBase(s)}
}

func (s *ScrollSystem) Name() string {
	return "scroll"
}

func (s *ScrollSystem) Priority() int {
	return parameter.PriorityScroll
}

func (s *ScrollSystem) Update(dt time.Duration) {
	bg := s.Scene.Background()
	if !bg.Scrolled {
		return
	}
	sec := dt.Seconds()
	bg.OffsetX += bg.VX * sec
	bg.OffsetY += bg.VY * sec
}
