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
	"math"
	"testing"
)

func TestValue_Equal(t *testing.T) {
	item := NewItem()
	item.Set(NewTag(0x0010, 0x0010), NewString(PNVR, "Doe^John"))
	otherItem := NewItem()
	otherItem.Set(NewTag(0x0010, 0x0010), NewString(PNVR, "Roe^Jane"))

	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"independent text", NewString(CSVR, "A\\B"), NewStrings(CSVR, []string{"A", "B"}), true},
		{"changed text", NewString(CSVR, "A\\B"), NewString(CSVR, "A\\C"), false},
		{"independent numbers", NewUint16s(USVR, []uint16{1, 2}), NewValues(USVR, []int32{1, 2}), true},
		{"changed number", NewUint16s(USVR, []uint16{1, 2}), NewUint16s(USVR, []uint16{1, 3}), false},
		{"different VR", NewUint16s(USVR, []uint16{1}), NewUint16s(OWVR, []uint16{1}), false},
		{"different count", NewUint16s(USVR, []uint16{1}), NewUint16s(USVR, []uint16{1, 1}), false},
		{"different kind", NewInt16s(OWVR, []int16{1}), NewUint16s(OWVR, []uint16{1}), false},
		{"NaN equals itself bitwise", NewFloat64s(FDVR, []float64{math.NaN()}), NewFloat64s(FDVR, []float64{math.NaN()}), true},
		{"negative zero differs", NewFloat32s(FLVR, []float32{0}), NewFloat32s(FLVR, []float32{float32(math.Copysign(0, -1))}), false},
		{"tags", NewTags(ATVR, []Tag{PixelDataTag}), NewTagValue(ATVR, PixelDataTag), true},
		{"bytes", NewBytes(OBVR, []byte{1, 2, 3}), NewBytes(OBVR, []byte{1, 2, 3}), true},
		{"bytes of different length", NewBytes(OBVR, []byte{1, 2, 3}), NewBytes(OBVR, []byte{1, 2, 3, 0}), false},
		{"sequences", NewSequenceValue(&Sequence{Items: []*Item{item}}), NewSequenceValue(&Sequence{Items: []*Item{item}}), true},
		{"changed sequence", NewSequenceValue(&Sequence{Items: []*Item{item}}), NewSequenceValue(&Sequence{Items: []*Item{otherItem}}), false},
		{"multiplex", NewMultiplex(USVR, []Value{NewUint16s(USVR, []uint16{1})}), NewMultiplex(USVR, []Value{NewUint16s(USVR, []uint16{1})}), true},
		{"invalid values", Value{}, Value{}, true},
		{"invalid and valid", Value{}, Empty(USVR), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer tc.a.Clear()
			defer tc.b.Clear()
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Fatalf("%v.Equal(%v) => %v, want %v", tc.a, tc.b, got, tc.want)
			}
			if got := tc.b.Equal(tc.a); got != tc.want {
				t.Fatalf("%v.Equal(%v) => %v, want %v", tc.b, tc.a, got, tc.want)
			}
		})
	}

	item.Release()
	otherItem.Release()
}

func TestValue_EqualShared(t *testing.T) {
	v := NewString(LOVR, "shared")
	c := v.Copy()
	defer v.Clear()
	defer c.Clear()

	if !v.Equal(c) {
		t.Fatalf("a copy is not equal to its original")
	}
}
