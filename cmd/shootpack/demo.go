package main

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/shootpack/audio"
	"github.com/lixenwraith/shootpack/component"
	"github.com/lixenwraith/shootpack/config"
	"github.com/lixenwraith/shootpack/core"
	"github.com/lixenwraith/shootpack/engine"
	"github.com/lixenwraith/shootpack/event"
	"github.com/lixenwraith/shootpack/logger"
	"github.com/lixenwraith/shootpack/parameter"
	"github.com/lixenwraith/shootpack/shootpack"
	"github.com/lixenwraith/shootpack/status"
	"github.com/lixenwraith/shootpack/system"
)

const (
	kindPlayer core.Kind = iota + 1
	kindEnemy
	kindShot
	kindShield
	kindBomb
)

const (
	startingLives = 3
	hitDamage     = 25
	enemyCount    = 3
	enemyFireRate = time.Second
)

var backgroundPattern = []string{
	".      .         *     ",
	"    .        .       . ",
	"  *      .        .    ",
}

// demo owns the scene content of the interactive run; every method runs on the loop goroutine
type demo struct {
	pack   *shootpack.Pack
	scenes *engine.SceneManager
	player *audio.Player
	cfg    config.Config
	log    logger.Logger

	hero  core.Entity
	lives int

	stats         *status.Registry
	statKeys      *atomic.Int64
	statAttached  *atomic.Int64
	statCrossings *atomic.Int64
}

func newDemo(pack *shootpack.Pack, scenes *engine.SceneManager, player *audio.Player, cfg config.Config, log logger.Logger) *demo {
	stats := status.NewRegistry()
	return &demo{
		pack:   pack,
		scenes: scenes,
		player: player,
		cfg:    cfg,
		log:    logger.Component(log, "demo"),
		lives:  startingLives,

		stats:         stats,
		statKeys:      stats.Ints.Get("demo.keys"),
		statAttached:  stats.Ints.Get("demo.attached"),
		statCrossings: stats.Ints.Get("demo.zero_crossings"),
	}
}

// setup populates a freshly pushed scene
func (d *demo) setup(s *engine.Scene) {
	s.AddSystem(system.NewKineticSystem(s))
	s.AddSystem(system.NewScrollSystem(s))
	s.AddSystem(system.NewGaugeSystem(s))

	vp := s.Viewport()
	d.hero = s.World.Spawn(component.SpriteComponent{Width: 8, Height: 8, Glyph: '@'}, vp.Width*0.2, vp.Height*0.6)
	s.World.SetKind(d.hero, kindPlayer)
	d.pack.SetHPStatusBar(d.hero, d.cfg.Gauge.Width, d.cfg.Gauge.Height, d.cfg.Gauge.Offset)

	for i := 0; i < enemyCount; i++ {
		y := vp.Height * float64(i+1) / float64(enemyCount+1)
		e := s.World.Spawn(component.SpriteComponent{Width: 8, Height: 8, Glyph: 'W'}, vp.Width*0.8, y)
		s.World.SetKind(e, kindEnemy)
		d.pack.SetHPStatusBar(e, d.cfg.Gauge.Width, d.cfg.Gauge.Height, d.cfg.Gauge.Offset)
	}

	d.pack.ScrollBackground(backgroundPattern, parameter.DefaultScrollVX, parameter.DefaultScrollVY)
	d.pack.SetLifeCounter(d.lives, true)

	d.pack.RegisterZeroCrossingObserver(d.logZero)
	d.pack.RegisterZeroCrossingObserver(d.playZero)
	d.pack.RegisterZeroCrossingObserver(d.resolveZero)

	s.SetInterval(enemyFireRate, func() {
		d.pack.FireProjectilesWithChance(kindEnemy, parameter.DefaultProjectileChance,
			component.SpriteComponent{Width: 2, Height: 4, Glyph: '-'},
			parameter.DefaultProjectileVX, parameter.DefaultProjectileVY, kindShot)
	})
}

func (d *demo) logZero(owner core.Entity, kind core.Kind) {
	d.statCrossings.Add(1)
	d.log.Info("gauge reached zero", logger.F("owner", owner), logger.F("kind", kind))
}

func (d *demo) playZero(core.Entity, core.Kind) {
	d.player.PlayZero()
}

// resolveZero blinks the fallen entity; enemies are removed afterwards, the hero loses a life
func (d *demo) resolveZero(owner core.Entity, kind core.Kind) {
	d.pack.BlinkSprite(owner, d.cfg.Blink.Duration(), d.cfg.Blink.Interval())

	s := d.scenes.Current()
	switch kind {
	case kindEnemy:
		s.SetTimeout(d.cfg.Blink.Duration(), func() { s.World.DestroyEntity(owner) })
	case kindPlayer:
		d.lives = max(0, d.lives-1)
		d.pack.SetLifeCounter(d.lives, true)
		if d.lives > 0 {
			d.pack.ChangeHPStatusBarValue(owner, parameter.GaugeMax)
		}
	}
}

// onKey maps demo controls onto pack operations
func (d *demo) onKey(ev event.GameEvent) {
	key, ok := ev.Payload.(*event.KeyPayload)
	if !ok {
		return
	}
	s := d.scenes.Current()
	if s == nil {
		return
	}
	d.statKeys.Add(1)

	switch key.Rune {
	case 's':
		d.attach(s, kindShield, 'S')
	case 'b':
		d.attach(s, kindBomb, 'B')
	case 'd':
		d.pack.DetachSatellitesOfKind(d.hero, kindBomb)
	case 'x':
		if st := d.pack.State(); st != nil {
			if sats := st.Registry.Satellites(d.hero); len(sats) > 0 {
				d.pack.DetachSatellite(d.hero, sats[len(sats)-1])
			}
		}
	case 'h':
		if enemies := s.World.AllOfKind(kindEnemy); len(enemies) > 0 {
			d.pack.ChangeHPStatusBarValue(enemies[0], -hitDamage)
		}
	case 'j':
		d.pack.ChangeHPStatusBarValue(d.hero, -hitDamage)
	case 'f':
		d.pack.FireProjectilesWithChance(kindPlayer, 100,
			component.SpriteComponent{Width: 2, Height: 4, Glyph: '='},
			-parameter.DefaultProjectileVX, 0, kindShot)
	}
}

func (d *demo) attach(s *engine.Scene, kind core.Kind, glyph rune) {
	x, y, ok := s.World.Position(d.hero)
	if !ok {
		return
	}
	sat := s.World.Spawn(component.SpriteComponent{Width: 14 / parameter.SatelliteScale, Height: 8, Glyph: glyph}, x, y)
	s.World.SetKind(sat, kind)
	d.pack.AttachSatellite(d.hero, sat)
	if d.pack.HasSatellite(d.hero, sat) {
		d.statAttached.Add(1)
	}
}

// onReload applies a watched config change
func (d *demo) onReload(ev event.GameEvent) {
	cfg, ok := ev.Payload.(config.Config)
	if !ok {
		return
	}
	d.cfg = cfg
	d.pack.SetParams(cfg.LayoutParams())
	d.log.Info("config reloaded", logger.F("tick_rate", cfg.Loop.TickRate))
}
