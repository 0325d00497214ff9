// Package num provides small numeric types implementing the rwutils
// serialization pair, for use as heap elements.
package num

import (
	"math"

	"github.com/histdb/mmheap/rwutils"
)

type U8 uint8

func (u *U8) ReadFrom(r *rwutils.R) { *u = U8(r.Uint8()) }
func (u U8) AppendTo(w *rwutils.W)  { w.Uint8(uint8(u)) }

type U16 uint16

func (u *U16) ReadFrom(r *rwutils.R) { *u = U16(r.Uint16()) }
func (u U16) AppendTo(w *rwutils.W)  { w.Uint16(uint16(u)) }

type U32 uint32

func (u *U32) ReadFrom(r *rwutils.R) { *u = U32(r.Uint32()) }
func (u U32) AppendTo(w *rwutils.W)  { w.Uint32(uint32(u)) }

type U64 uint64

func (u *U64) ReadFrom(r *rwutils.R) { *u = U64(r.Uint64()) }
func (u U64) AppendTo(w *rwutils.W)  { w.Uint64(uint64(u)) }

type I64 int64

func (u *I64) ReadFrom(r *rwutils.R) { *u = I64(r.Uint64()) }
func (u I64) AppendTo(w *rwutils.W)  { w.Uint64(uint64(u)) }

type F64 float64

func (u *F64) ReadFrom(r *rwutils.R) { *u = F64(math.Float64frombits(r.Uint64())) }
func (u F64) AppendTo(w *rwutils.W)  { w.Uint64(math.Float64bits(float64(u))) }
