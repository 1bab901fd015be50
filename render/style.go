package render

import "github.com/gdamore/tcell/v2"

// Palette used by the terminal renderer
var (
	StyleBackground = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	StyleSprite     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleSatellite  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	StyleHealth     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	StyleEnergy     = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	StyleGaugeEmpty = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	StyleCounter    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

const (
	glyphDefault    = '#'
	glyphGaugeFull  = '█'
	glyphGaugeEmpty = '░'
	glyphCounter    = '♥'
)
