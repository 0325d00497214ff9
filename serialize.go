package mmheap

import (
	"github.com/zeebo/errs/v2"

	"github.com/histdb/mmheap/rwutils"
)

// AppendTo writes the heap to w as a version byte, the element count,
// and the backing array in its current order, not sorted order.
func AppendTo[V any, RWV rwutils.RW[V]](h *T[V], w *rwutils.W) {
	w.Uint8(0) // version

	w.Varint(uint64(len(h.data)))
	for i := range h.data {
		RWV(&h.data[i]).AppendTo(w)
	}
}

// ReadFrom replaces the contents of h with elements read from r. The
// input is untrusted: the element count is checked against the
// remaining buffer before allocating, and the invariants are
// re-established with a full rebuild rather than assumed to hold.
// h keeps its comparator, so construct it normally before reading.
func ReadFrom[V any, RWV rwutils.RW[V]](h *T[V], r *rwutils.R) {
	if v := r.Uint8(); v != 0 {
		r.Invalid(errs.Errorf("heap has unknown version: %d", v))
		return
	}

	n := r.Varint()
	if n > uint64(r.Remaining()) {
		r.Invalid(errs.Errorf("heap has too many elements: %d", n))
		return
	}

	h.data = make([]V, n)
	for i := range h.data {
		RWV(&h.data[i]).ReadFrom(r)
	}

	h.rebuild()
	h.gen++
}
