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
	"bytes"
	"math"
	"slices"
)

// Equal is true if both Values are invalid, or if both have the same VR, kind and length and
// their elements are equal. Floating point elements are compared bit for bit and items are
// compared with Item.Equal. Whether the Values share a cell makes no difference.
func (v Value) Equal(o Value) bool {
	a, b := v.live(), o.live()
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	if a.vr != b.vr || a.kind != b.kind || a.n != b.n || a.vl != b.vl {
		return false
	}

	switch x := a.data.(type) {
	case []byte:
		y := dataOf[byte](b)
		if a.kind == KindUint8 {
			return bytes.Equal(x[:a.n], y[:b.n])
		}
		return bytes.Equal(x, y)
	case []int16:
		return slices.Equal(x, dataOf[int16](b))
	case []uint16:
		return slices.Equal(x, dataOf[uint16](b))
	case []int32:
		return slices.Equal(x, dataOf[int32](b))
	case []uint32:
		return slices.Equal(x, dataOf[uint32](b))
	case []float32:
		return slices.EqualFunc(x, dataOf[float32](b), func(p, q float32) bool {
			return math.Float32bits(p) == math.Float32bits(q)
		})
	case []float64:
		return slices.EqualFunc(x, dataOf[float64](b), func(p, q float64) bool {
			return math.Float64bits(p) == math.Float64bits(q)
		})
	case []Tag:
		return slices.Equal(x, dataOf[Tag](b))
	case []Item:
		y := dataOf[Item](b)
		return slices.EqualFunc(x, y, func(p, q Item) bool { return p.Equal(&q) })
	case []Value:
		return slices.EqualFunc(x, dataOf[Value](b), Value.Equal)
	}
	return false
}
