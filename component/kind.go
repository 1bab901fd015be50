package component

import "github.com/lixenwraith/shootpack/core"

// KindComponent tags an entity with its category
type KindComponent struct {
	Kind core.Kind
}
