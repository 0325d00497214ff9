package mmheap

// Iter walks over the contents of a heap in unspecified order without
// modifying it. The heap must not be mutated while an Iter is in use:
// a mutation stops the iteration and Err reports ErrInvalidState.
type Iter[V any] struct {
	h   *T[V]
	gen uint64
	i   int
	err error
}

// Iter returns a fresh read-only iterator over the current contents.
func (h *T[V]) Iter() Iter[V] {
	return Iter[V]{h: h, gen: h.gen, i: -1}
}

func (it *Iter[V]) Next() bool {
	if it.h == nil || it.err != nil {
		return false
	}
	if it.h.gen != it.gen {
		it.err = ErrInvalidState
		return false
	}
	it.i++
	return it.i < len(it.h.data)
}

// Value returns the element the iterator is positioned on.
func (it *Iter[V]) Value() V { return it.h.data[it.i] }

func (it *Iter[V]) Err() error { return it.err }

type drainOrder uint8

const (
	drainAny drainOrder = iota
	drainAsc
	drainDesc
)

// Drain removes elements from a heap as it walks. It is one-shot:
// abandoning it early leaves the remaining elements in a valid heap.
type Drain[V any] struct {
	h     *T[V]
	order drainOrder
	cur   V
}

// Drain returns a draining iterator that consumes the heap in
// unspecified order. Each step is O(1): it removes the last leaf,
// which cannot violate any level invariant.
func (h *T[V]) Drain() Drain[V] { return Drain[V]{h: h, order: drainAny} }

// DrainAsc returns a draining iterator that consumes the heap in
// ascending order. Each step is O(log n).
func (h *T[V]) DrainAsc() Drain[V] { return Drain[V]{h: h, order: drainAsc} }

// DrainDesc returns a draining iterator that consumes the heap in
// descending order. Each step is O(log n).
func (h *T[V]) DrainDesc() Drain[V] { return Drain[V]{h: h, order: drainDesc} }

func (d *Drain[V]) Next() bool {
	if d.h == nil || d.h.Len() == 0 {
		return false
	}
	switch d.order {
	case drainAsc:
		d.cur, _ = d.h.PopMin()
	case drainDesc:
		d.cur, _ = d.h.PopMax()
	default:
		d.cur = d.h.popLast()
	}
	return true
}

// Value returns the element removed by the last call to Next.
func (d *Drain[V]) Value() V { return d.cur }
