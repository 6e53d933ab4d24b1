// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dicom

import (
	"github.com/delaneyj/toolbelt"
)

// maxPooledBytes bounds the capacity of byte storage kept for reuse so that one large pixel data
// element does not stay pinned by the pool.
const maxPooledBytes = 64 * 1024

var bytePool = toolbelt.New(func() []byte { return make([]byte, 0, 64) })

// getBytes returns a zeroed byte slice of length n
func getBytes(n int) []byte {
	if n > maxPooledBytes {
		return make([]byte, n)
	}
	b := bytePool.Get()
	if cap(b) < n {
		return make([]byte, n)
	}
	b = b[:n]
	clear(b)
	return b
}

func putBytes(b []byte) {
	if b == nil || cap(b) > maxPooledBytes {
		return
	}
	bytePool.Put(b[:0])
}

// growBytes returns a slice of length n holding the first min(len(b), n) bytes of b, with the
// remainder zeroed. Capacity grows geometrically so that repeated appends stay linear.
func growBytes(b []byte, n int) []byte {
	if n <= cap(b) {
		old := len(b)
		b = b[:n]
		if n > old {
			clear(b[old:])
		}
		return b
	}
	newCap := 2 * cap(b)
	if newCap < n {
		newCap = n
	}
	nb := make([]byte, n, newCap)
	copy(nb, b)
	putBytes(b)
	return nb
}

// allocate creates an unshared cell for n elements of kind k under vr and returns it with the n
// elements to fill. It returns nil if k is not permitted for vr or the data would not fit in a
// 32-bit value length.
func allocate[T storage](vr *VR, k Kind, n int) (*cell, []T) {
	if n < 0 || !vr.permits(k) {
		return nil, nil
	}

	c := &cell{kind: k, vr: vr, n: uint32(n)}
	c.refs.Init()

	switch k {
	case KindItem, KindValue:
		c.vl = UndefinedLength
	default:
		vl := uint64(n) * uint64(k.size())
		if vl%2 != 0 {
			vl++
		}
		if vl >= UndefinedLength {
			return nil, nil
		}
		c.vl = uint32(vl)
	}

	var data []T
	switch k {
	case KindChars, KindUint8:
		b := getBytes(int(c.vl))
		if n%2 != 0 {
			b[n] = vr.paddingByte()
		}
		data = any(b).([]T)
	default:
		data = make([]T, n)
	}
	c.data = data

	return c, data[:n]
}

// install replaces the cell of v with c, releasing the previous share
func (v *Value) install(c *cell) {
	old := v.c
	v.c = c
	release(old)
}

// AllocateChars allocates space for n bytes of text under a text VR and returns the bytes to fill.
// After filling, call ComputeNumberOfValues. Odd lengths receive a padding byte. On a VR mismatch
// the Value becomes invalid and nil is returned.
func (v *Value) AllocateChars(vr *VR, n int) []byte {
	c, data := allocate[byte](vr, KindChars, n)
	v.install(c)
	v.ComputeNumberOfValues()
	return data
}

// AllocateBytes allocates space for n bytes under OB or UN
func (v *Value) AllocateBytes(vr *VR, n int) []byte {
	c, data := allocate[byte](vr, KindUint8, n)
	v.install(c)
	return data
}

// AllocateInt16s allocates space for n values under SS or OW
func (v *Value) AllocateInt16s(vr *VR, n int) []int16 {
	c, data := allocate[int16](vr, KindInt16, n)
	v.install(c)
	return data
}

// AllocateUint16s allocates space for n values under US or OW
func (v *Value) AllocateUint16s(vr *VR, n int) []uint16 {
	c, data := allocate[uint16](vr, KindUint16, n)
	v.install(c)
	return data
}

// AllocateInt32s allocates space for n values under SL or OL
func (v *Value) AllocateInt32s(vr *VR, n int) []int32 {
	c, data := allocate[int32](vr, KindInt32, n)
	v.install(c)
	return data
}

// AllocateUint32s allocates space for n values under UL or OL
func (v *Value) AllocateUint32s(vr *VR, n int) []uint32 {
	c, data := allocate[uint32](vr, KindUint32, n)
	v.install(c)
	return data
}

// AllocateFloat32s allocates space for n values under FL or OF
func (v *Value) AllocateFloat32s(vr *VR, n int) []float32 {
	c, data := allocate[float32](vr, KindFloat32, n)
	v.install(c)
	return data
}

// AllocateFloat64s allocates space for n values under FD or OD
func (v *Value) AllocateFloat64s(vr *VR, n int) []float64 {
	c, data := allocate[float64](vr, KindFloat64, n)
	v.install(c)
	return data
}

// AllocateTags allocates space for n tags under AT
func (v *Value) AllocateTags(vr *VR, n int) []Tag {
	c, data := allocate[Tag](vr, KindTag, n)
	v.install(c)
	return data
}

// AllocateItems allocates space for n items under SQ or XQ. Delimiter items count as values.
func (v *Value) AllocateItems(vr *VR, n int) []Item {
	c, data := allocate[Item](vr, KindItem, n)
	v.install(c)
	return data
}

// AllocateMultiplex allocates space for n nested values of the given VR, for example one value
// per frame of a multi-frame image.
func (v *Value) AllocateMultiplex(vr *VR, n int) []Value {
	c, data := allocate[Value](vr, KindValue, n)
	v.install(c)
	return data
}

// ComputeNumberOfValues recomputes the number of values of a text Value after its characters were
// filled in through AllocateChars or MutableChars.
func (v *Value) ComputeNumberOfValues() {
	c := v.c
	if c == nil || c.kind != KindChars {
		return
	}
	c.n = uint32(countValues(c.vr, c.data.([]byte)))
}

// ReallocateBytes resizes an OB or UN Value to n bytes, preserving its leading content, and
// returns the bytes. This supports building encapsulated data fragment by fragment: afterwards
// NumberOfValues is n and VL is UndefinedLength. A cell shared with other handles is copied first
// so that they never observe the change. It returns nil if v does not hold bytes.
func (v *Value) ReallocateBytes(n int) []byte {
	if v.c == nil || v.c.kind != KindUint8 || n < 0 || uint64(n) >= UndefinedLength {
		return nil
	}
	v.makeUnique()
	c := v.c

	padded := n + n%2
	b := growBytes(c.data.([]byte)[:c.n], padded)
	if padded > n {
		b[n] = 0x00
	}
	c.data = b
	c.n = uint32(n)
	c.vl = UndefinedLength
	return b[:n]
}

// MutableBytes returns the bytes of an OB or UN Value for in-place modification, copying the cell
// first if it is shared.
func (v *Value) MutableBytes() []byte {
	if v.c == nil || v.c.kind != KindUint8 {
		return nil
	}
	v.makeUnique()
	return v.c.data.([]byte)[:v.c.n]
}

// MutableChars returns the characters of a text Value for in-place modification, copying the cell
// first if it is shared. The padding byte is included. Call ComputeNumberOfValues afterwards.
func (v *Value) MutableChars() []byte {
	if v.c == nil || v.c.kind != KindChars {
		return nil
	}
	v.makeUnique()
	return v.c.data.([]byte)
}

// makeUnique ensures v holds the only share of its cell
func (v *Value) makeUnique() {
	if v.live() == nil || v.c.refs.Load() == 1 {
		// nothing to copy, or only a freed cell that no share holds
		return
	}
	v.install(v.c.clone())
}
