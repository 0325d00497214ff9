package mmheap

// bubbleUp restores the invariants after the value at index i changed
// at a leaf-ward position, such as after an append. A single swap with
// the opposite-level parent settles which ordering the value belongs
// to; after that only the same-level grandparent chain can be wrong.
func (h *T[V]) bubbleUp(i int) {
	if !hasParent(i) {
		return
	}

	p := parent(i)
	if isMinLevel(i) {
		if h.less(h.data[p], h.data[i]) {
			h.data[i], h.data[p] = h.data[p], h.data[i]
			h.bubbleUpMax(p)
		} else {
			h.bubbleUpMin(i)
		}
	} else {
		if h.less(h.data[i], h.data[p]) {
			h.data[i], h.data[p] = h.data[p], h.data[i]
			h.bubbleUpMin(p)
		} else {
			h.bubbleUpMax(i)
		}
	}
}

// bubbleUpMin walks the value at i up its min-level grandparent chain
// while it is smaller than the grandparent.
func (h *T[V]) bubbleUpMin(i int) {
	for hasGrandparent(i) {
		g := grandparent(i)
		if !h.less(h.data[i], h.data[g]) {
			return
		}
		h.data[i], h.data[g] = h.data[g], h.data[i]
		i = g
	}
}

// bubbleUpMax walks the value at i up its max-level grandparent chain
// while it is larger than the grandparent.
func (h *T[V]) bubbleUpMax(i int) {
	for hasGrandparent(i) {
		g := grandparent(i)
		if !h.less(h.data[g], h.data[i]) {
			return
		}
		h.data[i], h.data[g] = h.data[g], h.data[i]
		i = g
	}
}

// trickleDown restores the invariants after the value at index i
// changed at a root-ward position, considering only indexes below end.
func (h *T[V]) trickleDown(i, end int) {
	if isMinLevel(i) {
		h.trickleDownMin(i, end)
	} else {
		h.trickleDownMax(i, end)
	}
}

// trickleDownMin pushes the value at min-level index i toward the
// leaves until it is smaller than every child and grandchild below
// end. Each step inspects at most 2 children and 4 grandchildren. A
// swap with a direct child ends the walk: only one level changed, and
// a child of a min level has no same-type descendants nearer than its
// own grandchildren, which the next caller's invariants already bound.
// A swap with a grandchild may leave the displaced value above its
// new max-level parent, fixed by one corrective swap before recursing.
func (h *T[V]) trickleDownMin(i, end int) {
	for {
		m, grand := i, false

		c := child1(i)
		if c >= end {
			return
		}
		if h.less(h.data[c], h.data[m]) {
			m = c
		}
		if c := child2(i); c < end && h.less(h.data[c], h.data[m]) {
			m = c
		}
		for g, last := grandchild1(i), grandchild4(i); g < end && g <= last; g++ {
			if h.less(h.data[g], h.data[m]) {
				m, grand = g, true
			}
		}

		if m == i {
			return
		}
		h.data[i], h.data[m] = h.data[m], h.data[i]
		if !grand {
			return
		}
		if p := parent(m); h.less(h.data[p], h.data[m]) {
			h.data[m], h.data[p] = h.data[p], h.data[m]
		}
		i = m
	}
}

// trickleDownMax is the mirror of trickleDownMin for max levels.
func (h *T[V]) trickleDownMax(i, end int) {
	for {
		m, grand := i, false

		c := child1(i)
		if c >= end {
			return
		}
		if h.less(h.data[m], h.data[c]) {
			m = c
		}
		if c := child2(i); c < end && h.less(h.data[m], h.data[c]) {
			m = c
		}
		for g, last := grandchild1(i), grandchild4(i); g < end && g <= last; g++ {
			if h.less(h.data[m], h.data[g]) {
				m, grand = g, true
			}
		}

		if m == i {
			return
		}
		h.data[i], h.data[m] = h.data[m], h.data[i]
		if !grand {
			return
		}
		if p := parent(m); h.less(h.data[m], h.data[p]) {
			h.data[m], h.data[p] = h.data[p], h.data[m]
		}
		i = m
	}
}
