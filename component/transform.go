package component

// ScaleAnchor selects the point held fixed while an entity is scaled
type ScaleAnchor uint8

const (
	AnchorMiddle ScaleAnchor = iota // Visual center stays put
	AnchorTopLeft
)

// TransformComponent holds the entity center position and its scale
type TransformComponent struct {
	X, Y   float64
	ScaleX float64
	ScaleY float64
	Anchor ScaleAnchor
}
