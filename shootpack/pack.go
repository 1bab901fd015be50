// Package shootpack is the client surface for satellite attachment, row layout and
// zero-crossing notification on top of the engine scenes
//
// Every call targets the current scene of the bound SceneManager. With no current scene,
// or with invalid entity references, calls do nothing and queries answer false.
package shootpack

import (
	"time"

	"github.com/lixenwraith/shootpack/component"
	"github.com/lixenwraith/shootpack/core"
	"github.com/lixenwraith/shootpack/effect"
	"github.com/lixenwraith/shootpack/engine"
	"github.com/lixenwraith/shootpack/gauge"
	"github.com/lixenwraith/shootpack/layout"
	"github.com/lixenwraith/shootpack/logger"
	"github.com/lixenwraith/shootpack/parameter"
	"github.com/lixenwraith/shootpack/threshold"
)

// Pack binds the client operations to a scene stack
type Pack struct {
	scenes *engine.SceneManager
	params layout.Params
	log    logger.Logger
}

// New creates a Pack over scenes, a nil log discards output
func New(scenes *engine.SceneManager, params layout.Params, log logger.Logger) *Pack {
	if log == nil {
		log = logger.Discard()
	}
	return &Pack{
		scenes: scenes,
		params: params,
		log:    logger.Component(log, "shootpack"),
	}
}

func (p *Pack) current() (*engine.Scene, *SceneState) {
	s := p.scenes.Current()
	if s == nil {
		return nil, nil
	}
	return s, stateFor(s, &p.params, p.log)
}

// SetParams replaces the row geometry, every scene picks it up on its next layout pass
func (p *Pack) SetParams(params layout.Params) {
	p.params = params
}

// State returns the current scene's state, nil without a current scene
func (p *Pack) State() *SceneState {
	_, st := p.current()
	return st
}

// === Attachment ===

// AttachSatellite appends satellite to owner's row; it is laid out on the next frame
func (p *Pack) AttachSatellite(owner, satellite core.Entity) {
	_, st := p.current()
	if st == nil {
		return
	}
	if !st.Registry.Attach(owner, satellite) {
		return
	}
	st.ensureFrameHook()
	st.log.Debug("satellite attached", logger.F("owner", owner), logger.F("satellite", satellite))
}

// HasSatellite reports whether satellite is attached to owner
func (p *Pack) HasSatellite(owner, satellite core.Entity) bool {
	_, st := p.current()
	return st != nil && st.Registry.Contains(owner, satellite)
}

// HasSatelliteOfKind reports whether owner has an attached satellite of kind
func (p *Pack) HasSatelliteOfKind(owner core.Entity, kind core.Kind) bool {
	_, st := p.current()
	return st != nil && st.Registry.ContainsKind(owner, kind)
}

// DetachSatellite destroys satellite and removes it from owner's row
func (p *Pack) DetachSatellite(owner, satellite core.Entity) {
	_, st := p.current()
	if st == nil {
		return
	}
	if st.Registry.Detach(owner, satellite) {
		st.log.Debug("satellite detached", logger.F("owner", owner), logger.F("satellite", satellite))
	}
}

// DetachSatellitesOfKind destroys every satellite of kind on owner and re-packs the survivors at once
func (p *Pack) DetachSatellitesOfKind(owner core.Entity, kind core.Kind) {
	_, st := p.current()
	if st == nil {
		return
	}
	n := st.Registry.DetachKind(owner, kind)
	if n > 0 {
		st.log.Debug("satellites detached", logger.F("owner", owner), logger.F("kind", kind), logger.F("count", n))
	}
	st.layoutOwner(owner)
}

// === Threshold ===

// RegisterZeroCrossingObserver adds fn to the current scene's observers
func (p *Pack) RegisterZeroCrossingObserver(fn threshold.ObserverFunc) {
	_, st := p.current()
	if st == nil || fn == nil {
		return
	}
	st.Observers.Register(fn)
	st.log.Debug("observer registered", logger.F("observers", st.Observers.Len()))
}

// AdjustGaugeValue moves bar by delta, saturating at its bounds
// A health bar falling from positive to zero notifies the observers once
func (p *Pack) AdjustGaugeValue(bar core.Entity, delta int) {
	s, _ := p.current()
	if s == nil {
		return
	}
	gauge.For(s).Adjust(bar, delta)
}

// === Host helpers ===

// BlinkSprite toggles e's visibility every interval for duration
// Non-positive durations fall back to the defaults
func (p *Pack) BlinkSprite(e core.Entity, duration, interval time.Duration) *effect.Blink {
	s, _ := p.current()
	if s == nil {
		return nil
	}
	if duration <= 0 {
		duration = parameter.DefaultBlinkDuration
	}
	if interval <= 0 {
		interval = parameter.DefaultBlinkInterval
	}
	return effect.NewBlink(s, e, duration, interval)
}

// FireProjectilesWithChance spawns, for each entity of fromKind, a projectile with probability chance percent
// Projectiles start at the source's position, travel at (vx, vy) and are culled off screen
func (p *Pack) FireProjectilesWithChance(fromKind core.Kind, chance float64, sprite component.SpriteComponent, vx, vy float64, kind core.Kind) []core.Entity {
	s, _ := p.current()
	if s == nil {
		return nil
	}

	var fired []core.Entity
	for _, src := range s.World.AllOfKind(fromKind) {
		if !s.Chance(chance) {
			continue
		}
		x, y, ok := s.World.Position(src)
		if !ok {
			continue
		}
		shot := s.World.Spawn(sprite, x, y)
		s.World.SetVelocity(shot, vx, vy)
		s.World.SetKind(shot, kind)
		s.World.SetFlag(shot, component.FlagAutoDestroy, true)
		fired = append(fired, shot)
	}
	return fired
}

// ScrollBackground sets the scene background and its scroll velocity in world units per second
func (p *Pack) ScrollBackground(pattern []string, vx, vy float64) {
	s, _ := p.current()
	if s == nil {
		return
	}
	bg := s.Background()
	bg.Pattern = append([]string(nil), pattern...)
	bg.VX, bg.VY = vx, vy
	bg.OffsetX, bg.OffsetY = 0, 0
	bg.Scrolled = true
}

// SetHPStatusBar attaches a full health bar above owner, replacing any previous one
// Non-positive sizes fall back to the defaults
func (p *Pack) SetHPStatusBar(owner core.Entity, width, height int, offset float64) core.Entity {
	s, _ := p.current()
	if s == nil || !s.World.IsAlive(owner) {
		return core.InvalidEntity
	}
	if width <= 0 {
		width = parameter.DefaultGaugeWidth
	}
	if height <= 0 {
		height = parameter.DefaultGaugeHeight
	}
	if offset < 0 {
		offset = parameter.DefaultGaugeOffset
	}

	bars := gauge.For(s)
	bar := bars.Create(width, height, component.GaugeHealth)
	bars.AttachTo(bar, owner)
	bars.SetOffsetPadding(bar, 0, offset)
	return bar
}

// ChangeHPStatusBarValue adjusts owner's health bar by delta
func (p *Pack) ChangeHPStatusBarValue(owner core.Entity, delta int) {
	s, _ := p.current()
	if s == nil {
		return
	}
	bar, ok := gauge.For(s).AttachedTo(component.GaugeHealth, owner)
	if !ok {
		return
	}
	p.AdjustGaugeValue(bar, delta)
}

// SetLifeCounter updates the on-screen counter whose width pushes the satellite row right
func (p *Pack) SetLifeCounter(value int, visible bool) {
	s, _ := p.current()
	if s == nil {
		return
	}
	c := s.Counter()
	c.Value, c.Visible = value, visible
}
