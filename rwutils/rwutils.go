// Package rwutils provides little-endian append and consume buffers
// used by the serialization helpers.
package rwutils

import (
	"encoding/binary"

	"github.com/zeebo/errs/v2"
)

var le = binary.LittleEndian

// RW is implemented by pointers to types that know how to serialize
// themselves.
type RW[V any] interface {
	*V
	AppendTo(w *W)
	ReadFrom(r *R)
}

// W appends values to a growable buffer. The zero value is ready to
// use; Init lets it reuse an existing allocation.
type W struct {
	buf []byte
}

// Init readies the writer to append from the start of buf.
func (w *W) Init(buf []byte) { w.buf = buf[:0] }

// Done returns the written bytes.
func (w *W) Done() []byte { return w.buf }

func (w *W) Uint8(x uint8)   { w.buf = append(w.buf, x) }
func (w *W) Uint16(x uint16) { w.buf = le.AppendUint16(w.buf, x) }
func (w *W) Uint32(x uint32) { w.buf = le.AppendUint32(w.buf, x) }
func (w *W) Uint64(x uint64) { w.buf = le.AppendUint64(w.buf, x) }

func (w *W) Varint(x uint64) { w.buf = binary.AppendUvarint(w.buf, x) }

func (w *W) Bytes(buf []byte) { w.buf = append(w.buf, buf...) }

// R consumes values from a buffer. The first problem it hits sticks:
// every later read returns zero values and Done reports the error.
type R struct {
	buf []byte
	err error
}

// Init readies the reader to consume buf.
func (r *R) Init(buf []byte) { *r = R{buf: buf} }

// Done returns the unconsumed suffix and any error encountered.
func (r *R) Done() ([]byte, error) { return r.buf, r.err }

// Remaining returns the number of unconsumed bytes.
func (r *R) Remaining() int { return len(r.buf) }

// Invalid puts the reader into a failed state if it is not already in
// one, discarding the rest of the buffer.
func (r *R) Invalid(err error) {
	if r.err == nil {
		r.err = err
		r.buf = nil
	}
}

func (r *R) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if len(r.buf) < n {
		r.Invalid(errs.Errorf("short buffer: needed %d bytes, have %d", n, len(r.buf)))
		return nil
	}
	b := r.buf[:n:n]
	r.buf = r.buf[n:]
	return b
}

func (r *R) Uint8() (x uint8) {
	if b := r.take(1); b != nil {
		x = b[0]
	}
	return
}

func (r *R) Uint16() (x uint16) {
	if b := r.take(2); b != nil {
		x = le.Uint16(b)
	}
	return
}

func (r *R) Uint32() (x uint32) {
	if b := r.take(4); b != nil {
		x = le.Uint32(b)
	}
	return
}

func (r *R) Uint64() (x uint64) {
	if b := r.take(8); b != nil {
		x = le.Uint64(b)
	}
	return
}

func (r *R) Varint() (x uint64) {
	if r.err != nil {
		return 0
	}
	x, n := binary.Uvarint(r.buf)
	if n <= 0 {
		r.Invalid(errs.Errorf("invalid varint"))
		return 0
	}
	r.buf = r.buf[n:]
	return x
}

// Bytes consumes and returns the next n bytes.
func (r *R) Bytes(n int) []byte { return r.take(n) }
