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
	"strings"
	"testing"
)

func TestValue_String(t *testing.T) {
	item := NewItem()
	item.Set(NewTag(0x0010, 0x0010), NewString(PNVR, "Doe^John"))
	defer item.Release()

	var encapsulated Value
	encapsulated.AllocateBytes(OBVR, 0)
	encapsulated.ReallocateBytes(8)

	tests := []struct {
		name string
		in   Value
		want string
	}{
		{"text", NewString(CSVR, "A\\B "), "A\\B"},
		{"UI", NewString(UIVR, "1.2.3"), "1.2.3"},
		{"unsigned numbers", NewUint16s(USVR, []uint16{1, 65535}), "1\\65535"},
		{"signed numbers", NewInt32s(SLVR, []int32{-5}), "-5"},
		{"float32 in shortest form", NewFloat32s(FLVR, []float32{0.1, 2}), "0.1\\2"},
		{"float64", NewFloat64s(FDVR, []float64{-1.25e-7}), "-1.25e-07"},
		{"tags", NewTags(ATVR, []Tag{PixelDataTag, ItemTag}), "(7FE0,0010)\\(FFFE,E000)"},
		{"few bytes are listed", NewBytes(OBVR, []byte{1, 2, 3}), "1\\2\\3"},
		{"many bytes are summarized", NewBytes(UNVR, make([]byte, 100)), "[100 bytes]"},
		{"encapsulated bytes are summarized", encapsulated, "[8 bytes]"},
		{"sequence", NewSequenceValue(&Sequence{Items: []*Item{item}}), "\n  (0010,0010) PN Doe^John"},
		{"multiplex", NewMultiplex(USVR, []Value{NewUint16s(USVR, []uint16{1, 2}), NewUint16s(USVR, []uint16{3})}), "1\\2\\3"},
		{"empty", Empty(LOVR), ""},
		{"invalid", Value{}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer tc.in.Clear()
			if got := tc.in.String(); got != tc.want {
				t.Fatalf("String() => %q, want %q", got, tc.want)
			}
		})
	}
}

func TestValue_AppendValueToString(t *testing.T) {
	item := NewItem()
	item.Set(PixelDataTag, NewBytes(OBVR, sampleBytes))
	defer item.Release()
	seq := NewSequenceValue(&Sequence{Items: []*Item{item, {Delimiter: true}}})
	defer seq.Clear()

	tests := []struct {
		name string
		in   Value
		i    int
		want string
	}{
		{"item", seq, 0, "(item with 1 elements)"},
		{"delimiter", seq, 1, "(delimiter)"},
		{"second text value", NewString(SHVR, "A\\ B "), 1, "B"},
		{"float value", NewValues(DSVR, []float64{2.5}), 0, "2.5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := string(tc.in.AppendValueToString([]byte("prefix:"), tc.i))
			if !strings.HasPrefix(got, "prefix:") || got[len("prefix:"):] != tc.want {
				t.Fatalf("AppendValueToString(_, %d) => %q, want %q", tc.i, got, "prefix:"+tc.want)
			}
		})
	}
}
