package satellite

import "github.com/lixenwraith/shootpack/core"

// Record is the ordered satellite collection of one owner
// Each satellite appears at most once, order is attach order
type Record struct {
	Owner      core.Entity
	Satellites []core.Entity
}

func (r *Record) indexOf(e core.Entity) int {
	for i, s := range r.Satellites {
		if s == e {
			return i
		}
	}
	return -1
}

// matching returns ascending indices of satellites accepted by match
func (r *Record) matching(match func(core.Entity) bool) []int {
	var idx []int
	for i, s := range r.Satellites {
		if match(s) {
			idx = append(idx, i)
		}
	}
	return idx
}

// removeAt deletes the given ascending indices, walking them from the highest down
// so each removal leaves the lower, not yet visited indices valid
func (r *Record) removeAt(idx []int) []core.Entity {
	removed := make([]core.Entity, len(idx))
	for i := len(idx) - 1; i >= 0; i-- {
		at := idx[i]
		removed[i] = r.Satellites[at]
		r.Satellites = append(r.Satellites[:at], r.Satellites[at+1:]...)
	}
	return removed
}
