package njtree

// activeSet is the compact mutable sequence of node indices still
// eligible to be joined. Its order matters: the Q-selection tie-break in
// Build walks it in nested iteration order, so the same sequence of
// removeTwoAppendOne calls must always produce the same order for NJ to
// be reproducible across runs.
type activeSet struct {
	idx []int
}

// newActiveSet seeds the active set with leaf indices [0, n).
func newActiveSet(n int) *activeSet {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return &activeSet{idx: idx}
}

func (a *activeSet) len() int {
	return len(a.idx)
}

func (a *activeSet) positionOf(x int) int {
	for i, v := range a.idx {
		if v == x {
			return i
		}
	}
	return -1
}

// removeTwoAppendOne removes f and g and appends u, equivalently: replace
// f's slot with u in place, then swap-remove g. This is the single
// mutation point for the active set, mirroring how a data structure's
// invariant-preserving mutation is isolated in the file that owns it.
func (a *activeSet) removeTwoAppendOne(f, g, u int) {
	posF := a.positionOf(f)
	a.idx[posF] = u

	posG := a.positionOf(g)
	last := len(a.idx) - 1
	a.idx[posG] = a.idx[last]
	a.idx = a.idx[:last]
}
