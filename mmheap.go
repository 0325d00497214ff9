// Package mmheap implements a min-max heap, a double-ended priority
// queue backed by a single growable array.
//
// A min-max heap is like a binary heap except that both the minimum
// and the maximum element can be read in O(1) and removed in O(log n).
// The levels of the implicit complete binary tree alternate between
// min levels and max levels: a node on a min level is <= every one of
// its descendants, and a node on a max level is >= every one of its
// descendants. The minimum is always the root and the maximum is
// always the root or one of its children.
//
// Reference: http://cglab.ca/~morin/teaching/5408/refs/minmax.pdf
package mmheap

import (
	"cmp"
	"slices"

	"github.com/zeebo/errs/v2"
)

var (
	// ErrEmpty is returned by operations that require at least one element.
	ErrEmpty = errs.Errorf("mmheap: heap is empty")

	// ErrInvalidState is reported by iterators whose heap was mutated
	// while the iteration was in progress.
	ErrInvalidState = errs.Errorf("mmheap: heap mutated during iteration")
)

// T is a min-max heap of V. Construct with New, NewFunc, WithCapacity,
// From or FromFunc; the zero value has no comparator and is not usable.
// A T must not be shared between goroutines without external locking.
type T[V any] struct {
	_ [0]func() // no equality

	data []V
	less func(a, b V) bool
	gen  uint64
}

// New returns an empty heap ordered by <.
func New[V cmp.Ordered]() *T[V] { return NewFunc(cmp.Less[V]) }

// NewFunc returns an empty heap ordered by less. The comparator must
// describe a total order; behavior under a partial order is undefined.
func NewFunc[V any](less func(a, b V) bool) *T[V] {
	return &T[V]{less: less}
}

// WithCapacity returns an empty heap ordered by < with space for n
// elements before reallocation.
func WithCapacity[V cmp.Ordered](n int) *T[V] {
	h := New[V]()
	h.data = make([]V, 0, n)
	return h
}

// From returns a heap ordered by < that takes ownership of data and
// establishes the heap invariants in O(n).
func From[V cmp.Ordered](data []V) *T[V] { return FromFunc(cmp.Less[V], data) }

// FromFunc returns a heap ordered by less that takes ownership of data
// and establishes the heap invariants in O(n).
func FromFunc[V any](less func(a, b V) bool, data []V) *T[V] {
	h := &T[V]{data: data, less: less}
	h.rebuild()
	return h
}

// Len returns the number of elements in the heap.
func (h *T[V]) Len() int { return len(h.data) }

// Cap returns the number of elements the heap can hold before
// reallocating.
func (h *T[V]) Cap() int { return cap(h.data) }

// Clear removes every element. Capacity is retained.
func (h *T[V]) Clear() {
	clear(h.data)
	h.data = h.data[:0]
	h.gen++
}

// Grow ensures space for n more elements without reallocation.
func (h *T[V]) Grow(n int) { h.data = slices.Grow(h.data, n) }

// Clip discards unused capacity.
func (h *T[V]) Clip() { h.data = slices.Clip(h.data) }

// Push adds v to the heap.
func (h *T[V]) Push(v V) {
	h.data = append(h.data, v)
	h.bubbleUp(len(h.data) - 1)
	h.gen++
}

// PushN adds every element of vs to the heap.
func (h *T[V]) PushN(vs ...V) {
	for _, v := range vs {
		h.Push(v)
	}
}

// maxIndex returns the index holding the maximum of the first n
// elements, or -1 when n is zero. The maximum is the larger of the
// root's children when they exist.
func (h *T[V]) maxIndex(n int) int {
	switch {
	case n <= 0:
		return -1
	case n <= 2:
		return n - 1
	case h.less(h.data[1], h.data[2]):
		return 2
	default:
		return 1
	}
}

// PeekMin returns the minimum element, or ErrEmpty.
func (h *T[V]) PeekMin() (V, error) {
	if len(h.data) == 0 {
		var zero V
		return zero, ErrEmpty
	}
	return h.data[0], nil
}

// PeekMax returns the maximum element, or ErrEmpty.
func (h *T[V]) PeekMax() (V, error) {
	m := h.maxIndex(len(h.data))
	if m < 0 {
		var zero V
		return zero, ErrEmpty
	}
	return h.data[m], nil
}

// PopMin removes and returns the minimum element, or ErrEmpty.
func (h *T[V]) PopMin() (V, error) {
	if len(h.data) == 0 {
		var zero V
		return zero, ErrEmpty
	}

	n := len(h.data) - 1
	v := h.data[0]
	h.data[0] = h.data[n]

	var zero V
	h.data[n] = zero
	h.data = h.data[:n]

	if n > 0 {
		h.trickleDownMin(0, n)
	}
	h.gen++
	return v, nil
}

// PopMax removes and returns the maximum element, or ErrEmpty.
func (h *T[V]) PopMax() (V, error) {
	m := h.maxIndex(len(h.data))
	if m < 0 {
		var zero V
		return zero, ErrEmpty
	}

	n := len(h.data) - 1
	v := h.data[m]
	h.data[m] = h.data[n]

	var zero V
	h.data[n] = zero
	h.data = h.data[:n]

	if m < n {
		h.trickleDownMax(m, n)
	}
	h.gen++
	return v, nil
}

// ReplaceMin replaces the minimum element with v and returns the old
// minimum, or ErrEmpty. Cheaper than PopMin followed by Push: the last
// element is never relocated and the array never grows.
func (h *T[V]) ReplaceMin(v V) (V, error) {
	if len(h.data) == 0 {
		var zero V
		return zero, ErrEmpty
	}

	old := h.data[0]
	h.data[0] = v
	h.trickleDownMin(0, len(h.data))
	h.gen++
	return old, nil
}

// ReplaceMax replaces the maximum element with v and returns the old
// maximum, or ErrEmpty.
func (h *T[V]) ReplaceMax(v V) (V, error) {
	m := h.maxIndex(len(h.data))
	if m < 0 {
		var zero V
		return zero, ErrEmpty
	}

	old := h.data[m]
	h.data[m] = v

	// the new value may undercut the root. the root held the old
	// minimum, so after the swap both level invariants hold above m.
	if m > 0 && h.less(h.data[m], h.data[0]) {
		h.data[0], h.data[m] = h.data[m], h.data[0]
	}

	h.trickleDownMax(m, len(h.data))
	h.gen++
	return old, nil
}

// PushPopMin pushes v and then pops the minimum, without ever growing
// the backing array. On an empty heap, or when v is already the
// minimum, it returns v unchanged.
func (h *T[V]) PushPopMin(v V) V {
	if len(h.data) == 0 || h.less(v, h.data[0]) {
		return v
	}

	v, h.data[0] = h.data[0], v
	h.trickleDownMin(0, len(h.data))
	h.gen++
	return v
}

// PushPopMax pushes v and then pops the maximum, without ever growing
// the backing array. On an empty heap, or when v is already the
// maximum, it returns v unchanged.
func (h *T[V]) PushPopMax(v V) V {
	m := h.maxIndex(len(h.data))
	if m < 0 || h.less(h.data[m], v) {
		return v
	}

	v, h.data[m] = h.data[m], v
	if m > 0 && h.less(h.data[m], h.data[0]) {
		h.data[0], h.data[m] = h.data[m], h.data[0]
	}

	h.trickleDownMax(m, len(h.data))
	h.gen++
	return v
}

// popLast removes and returns the last element. Removing the last leaf
// cannot violate any level invariant.
func (h *T[V]) popLast() V {
	n := len(h.data) - 1
	v := h.data[n]

	var zero V
	h.data[n] = zero
	h.data = h.data[:n]
	h.gen++
	return v
}

// IntoSlice consumes the heap and returns its elements in arbitrary
// order, reusing the backing array. The heap is left empty.
func (h *T[V]) IntoSlice() []V {
	data := h.data
	h.data = nil
	h.gen++
	return data
}

// IntoAscending consumes the heap and returns its elements in
// ascending order, sorting in place in the backing array. The heap is
// left empty.
func (h *T[V]) IntoAscending() []V {
	data := h.data
	end := len(data)
	for {
		m := h.maxIndex(end)
		if m < 0 {
			break
		}
		end--
		data[m], data[end] = data[end], data[m]
		h.trickleDown(m, end)
	}

	h.data = nil
	h.gen++
	return data
}

// IntoDescending consumes the heap and returns its elements in
// descending order, sorting in place in the backing array. The heap is
// left empty.
func (h *T[V]) IntoDescending() []V {
	data := h.data
	for end := len(data) - 1; end > 0; end-- {
		data[0], data[end] = data[end], data[0]
		h.trickleDownMin(0, end)
	}

	h.data = nil
	h.gen++
	return data
}

// rebuild establishes the heap invariants over the whole backing array
// in O(n) by trickling down every internal node, deepest first.
func (h *T[V]) rebuild() {
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.trickleDown(i, len(h.data))
	}
}
