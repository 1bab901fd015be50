package component

// SpriteComponent is the unscaled visual footprint of an entity
// Glyph is the rune drawn by the terminal renderer
type SpriteComponent struct {
	Width  float64
	Height float64
	Glyph  rune
}
