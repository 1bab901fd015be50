package component

import "github.com/lixenwraith/shootpack/core"

// GaugeKind classifies status bars, a target carries at most one bar per kind
type GaugeKind uint8

const (
	GaugeHealth GaugeKind = iota + 1
	GaugeEnergy
)

// GaugeComponent is a bounded numeric bar optionally attached to a target entity
type GaugeComponent struct {
	Kind   GaugeKind
	Value  int
	Min    int
	Max    int
	Width  int
	Height int

	Target  core.Entity // Invalid when unattached
	OffsetX float64     // Padding between bar and target edge
	OffsetY float64
}
