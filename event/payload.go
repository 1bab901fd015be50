package event

// KeyPayload is a decoded key press
// Rune is zero for non-character keys, Name carries the key name then
type KeyPayload struct {
	Rune rune
	Name string
}

// ResizePayload is the terminal size in cells
type ResizePayload struct {
	Width  int
	Height int
}
