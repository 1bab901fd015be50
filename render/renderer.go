// Package render draws a scene onto a tcell screen
//
// World units map to cells by a fixed ratio per axis. Entities flagged relative to camera
// are drawn in screen space, the rest are shifted by the camera offset.
package render

import (
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shootpack/component"
	"github.com/lixenwraith/shootpack/core"
	"github.com/lixenwraith/shootpack/engine"
)

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	unitsX float64
	unitsY float64
}

// NewTerminalRenderer creates a renderer mapping unitsX by unitsY world units onto one cell
func NewTerminalRenderer(screen tcell.Screen, unitsX, unitsY float64) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, unitsX: unitsX, unitsY: unitsY}
}

// ViewportFor returns the world size covered by a screen of w by h cells
func (r *TerminalRenderer) ViewportFor(w, h int) engine.ViewportResource {
	return engine.ViewportResource{Width: float64(w) * r.unitsX, Height: float64(h) * r.unitsY}
}

// RenderFrame draws the scene and flushes the screen
// Order: background, sprites in creation order, gauges, counter
func (r *TerminalRenderer) RenderFrame(s *engine.Scene) {
	r.screen.Clear()
	if s == nil || s.Disposed() {
		r.screen.Show()
		return
	}

	r.drawBackground(s.Background())

	cam := s.Camera()
	w := s.World
	for _, e := range w.Components.Sprite.AllEntity() {
		if w.Components.Gauge.HasComponent(e) {
			continue
		}
		r.drawSprite(w, e, cam)
	}
	for _, e := range w.Components.Gauge.AllEntity() {
		r.drawGauge(w, e, cam)
	}

	r.drawCounter(s.Counter())
	r.screen.Show()
}

func (r *TerminalRenderer) drawBackground(bg *engine.BackgroundResource) {
	if len(bg.Pattern) == 0 {
		return
	}
	sw, sh := r.screen.Size()
	offX := int(math.Floor(bg.OffsetX / r.unitsX))
	offY := int(math.Floor(bg.OffsetY / r.unitsY))

	rows := len(bg.Pattern)
	for y := 0; y < sh; y++ {
		line := []rune(bg.Pattern[mod(y-offY, rows)])
		if len(line) == 0 {
			continue
		}
		for x := 0; x < sw; x++ {
			ch := line[mod(x-offX, len(line))]
			if ch != ' ' {
				r.screen.SetContent(x, y, ch, nil, StyleBackground)
			}
		}
	}
}

// cellRect converts a centered world rect to a half-open cell range, at least one cell wide
func (r *TerminalRenderer) cellRect(x, y, width, height float64) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor((x - width/2) / r.unitsX))
	y0 = int(math.Floor((y - height/2) / r.unitsY))
	x1 = max(x0+1, int(math.Ceil((x+width/2)/r.unitsX)))
	y1 = max(y0+1, int(math.Ceil((y+height/2)/r.unitsY)))
	return
}

func (r *TerminalRenderer) screenPos(w *engine.World, e core.Entity, cam *engine.CameraResource) (x, y float64, ok bool) {
	x, y, ok = w.Position(e)
	if ok && !w.HasFlag(e, component.FlagRelativeToCamera) {
		x -= cam.X
		y -= cam.Y
	}
	return
}

func (r *TerminalRenderer) drawSprite(w *engine.World, e core.Entity, cam *engine.CameraResource) {
	if w.HasFlag(e, component.FlagInvisible) {
		return
	}
	x, y, ok := r.screenPos(w, e, cam)
	if !ok {
		return
	}
	sp, _ := w.Components.Sprite.GetComponent(e)
	t, _ := w.Components.Transform.GetComponent(e)

	glyph := sp.Glyph
	if glyph == 0 {
		glyph = glyphDefault
	}
	style := StyleSprite
	if w.HasFlag(e, component.FlagRelativeToCamera) {
		style = StyleSatellite
	}

	x0, y0, x1, y1 := r.cellRect(x, y, sp.Width*t.ScaleX, sp.Height*t.ScaleY)
	r.fill(x0, y0, x1, y1, glyph, style)
}

func (r *TerminalRenderer) drawGauge(w *engine.World, e core.Entity, cam *engine.CameraResource) {
	g, ok := w.Components.Gauge.GetComponent(e)
	if !ok || !g.Target.Valid() || w.HasFlag(e, component.FlagInvisible) {
		return
	}
	x, y, ok := r.screenPos(w, e, cam)
	if !ok {
		return
	}

	x0, y0, x1, _ := r.cellRect(x, y, float64(g.Width), float64(g.Height))
	cells := x1 - x0
	filled := 0
	if span := g.Max - g.Min; span > 0 {
		filled = int(math.Round(float64(cells) * float64(g.Value-g.Min) / float64(span)))
	}

	style := StyleHealth
	if g.Kind == component.GaugeEnergy {
		style = StyleEnergy
	}
	r.fill(x0, y0, x0+filled, y0+1, glyphGaugeFull, style)
	r.fill(x0+filled, y0, x1, y0+1, glyphGaugeEmpty, StyleGaugeEmpty)
}

func (r *TerminalRenderer) drawCounter(c *engine.CounterResource) {
	if !c.Visible {
		return
	}
	text := string(glyphCounter) + " " + strconv.Itoa(c.Value)
	x := 0
	for _, ch := range text {
		r.screen.SetContent(x, 0, ch, nil, StyleCounter)
		x++
	}
}

// fill paints [x0,x1) by [y0,y1), clipped to the screen
func (r *TerminalRenderer) fill(x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	sw, sh := r.screen.Size()
	for y := max(0, y0); y < min(sh, y1); y++ {
		for x := max(0, x0); x < min(sw, x1); x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
