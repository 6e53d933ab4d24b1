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
	"github.com/GoogleCloudPlatform/go-dicom-value/internal/refcount"
)

// Kind identifies the type of the elements stored in a Value
type Kind uint8

// The element kinds. The zero Kind is only reported by invalid Values.
const (
	kindInvalid Kind = iota
	// KindChars is text, stored as bytes in the character set of the data set
	KindChars
	// KindUint8 is used for OB and UN
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindFloat32
	KindFloat64
	// KindTag is used for AT
	KindTag
	// KindItem is used for SQ and XQ
	KindItem
	// KindValue holds nested values, one per frame or file of multiplexed data
	KindValue
)

var kindNames = [...]string{
	kindInvalid: "invalid",
	KindChars:   "chars",
	KindUint8:   "uint8",
	KindInt16:   "int16",
	KindUint16:  "uint16",
	KindInt32:   "int32",
	KindUint32:  "uint32",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindTag:     "tag",
	KindItem:    "item",
	KindValue:   "value",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// size is the number of bytes one element of the kind occupies in a value field. Items and
// nested values have no fixed encoding and report 0.
func (k Kind) size() int {
	switch k {
	case KindChars, KindUint8:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32, KindFloat32, KindTag:
		return 4
	case KindFloat64:
		return 8
	}
	return 0
}

// storage lists the Go types that back the element kinds
type storage interface {
	byte | int16 | uint16 | int32 | uint32 | float32 | float64 | Tag | Item | Value
}

// cell is the shared, reference counted payload of a Value. Everything but refs is written only
// while a single handle owns the cell.
type cell struct {
	refs refcount.Count
	kind Kind
	vr   *VR
	// vl is the length in bytes, always even, or UndefinedLength
	vl uint32
	// n is the number of values as defined by NumberOfValues
	n uint32
	// data is a slice of the Go type backing kind. For KindChars and KindUint8 its length is
	// rounded up to an even number of bytes.
	data any
}

// dataOf returns the elements of c as []T, or nil if c does not hold T
func dataOf[T storage](c *cell) []T {
	if c == nil {
		return nil
	}
	s, _ := c.data.([]T)
	return s
}

// release drops one share of c and frees it if it was the last. A freed cell has no shares left
// to drop.
func release(c *cell) {
	if c != nil && c.kind != kindInvalid && c.refs.Dec() == 0 {
		c.free()
	}
}

// free releases nested values and returns pooled storage. Handles that borrowed the cell without
// taking a share observe an invalid Value afterwards.
func (c *cell) free() {
	switch data := c.data.(type) {
	case []byte:
		putBytes(data)
	case []Item:
		for i := range data {
			data[i].Release()
		}
	case []Value:
		for i := range data {
			data[i].Clear()
		}
	}
	c.kind = kindInvalid
	c.vr = nil
	c.data = nil
	c.n = 0
	c.vl = 0
}

// clone returns an unshared deep copy of c. Nested items and values are shared, not copied.
func (c *cell) clone() *cell {
	nc := &cell{kind: c.kind, vr: c.vr, vl: c.vl, n: c.n}
	nc.refs.Init()
	switch data := c.data.(type) {
	case []byte:
		b := getBytes(len(data))
		copy(b, data)
		nc.data = b
	case []int16:
		nc.data = append([]int16(nil), data...)
	case []uint16:
		nc.data = append([]uint16(nil), data...)
	case []int32:
		nc.data = append([]int32(nil), data...)
	case []uint32:
		nc.data = append([]uint32(nil), data...)
	case []float32:
		nc.data = append([]float32(nil), data...)
	case []float64:
		nc.data = append([]float64(nil), data...)
	case []Tag:
		nc.data = append([]Tag(nil), data...)
	case []Item:
		items := make([]Item, len(data))
		for i := range data {
			items[i] = data[i].Copy()
		}
		nc.data = items
	case []Value:
		values := make([]Value, len(data))
		for i := range data {
			values[i] = data[i].Copy()
		}
		nc.data = values
	}
	return nc
}
