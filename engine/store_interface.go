package engine

import (
	"github.com/lixenwraith/shootpack/core"
)

// AnyStore is the slice of Store[T] the world needs without knowing T:
// dropping one entity on destroy and wiping everything on Clear
type AnyStore interface {
	RemoveComponent(e core.Entity)
	ClearAllComponent()
}

var _ AnyStore = (*Store[struct{}])(nil)
