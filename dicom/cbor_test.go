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
	"testing"

	"github.com/fxamacker/cbor/v2"
)

func TestValue_CBORRoundTrip(t *testing.T) {
	item := NewItem()
	item.Set(NewTag(0x0010, 0x0010), NewString(PNVR, "Doe^John"))
	item.Set(NewTag(0x0028, 0x0010), NewUint16s(USVR, []uint16{512}))
	defer item.Release()

	var encapsulated Value
	encapsulated.AllocateBytes(OBVR, 0)
	copy(encapsulated.ReallocateBytes(8), []byte{0xFE, 0xFF, 0x00, 0xE0, 0, 0, 0, 0})

	tests := []struct {
		name string
		in   Value
	}{
		{"text", NewString(LOVR, "A\\B")},
		{"odd length text", NewString(UIVR, "1.2.3")},
		{"bytes", NewBytes(OBVR, []byte{1, 2, 3})},
		{"encapsulated", encapsulated},
		{"int16", NewInt16s(SSVR, []int16{-1, 2})},
		{"uint16", NewUint16s(USVR, []uint16{1, 65535})},
		{"int32", NewInt32s(SLVR, []int32{math.MinInt32})},
		{"uint32", NewUint32s(ULVR, []uint32{math.MaxUint32})},
		{"float32", NewFloat32s(FLVR, []float32{0.1, float32(math.Inf(-1))})},
		{"float64", NewFloat64s(FDVR, []float64{math.Pi})},
		{"tags", NewTags(ATVR, []Tag{PixelDataTag})},
		{"sequence", NewSequenceValue(&Sequence{Items: []*Item{item, {Delimiter: true}}})},
		{"multiplex", NewMultiplex(USVR, []Value{NewUint16s(USVR, []uint16{1}), NewUint16s(USVR, []uint16{2, 3})})},
		{"empty", Empty(LOVR)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer tc.in.Clear()
			data, err := tc.in.MarshalCBOR()
			if err != nil {
				t.Fatalf("MarshalCBOR() => %v", err)
			}

			var got Value
			defer got.Clear()
			if err := got.UnmarshalCBOR(data); err != nil {
				t.Fatalf("UnmarshalCBOR(_) => %v", err)
			}
			if !got.Equal(tc.in) {
				t.Fatalf("round trip => %v (VL %d), want %v (VL %d)", got, got.VL(), tc.in, tc.in.VL())
			}
			if got.RefCount() != 1 {
				t.Fatalf("decoded RefCount() => %v, want %v", got.RefCount(), 1)
			}
		})
	}
}

func TestValue_CBORInvalid(t *testing.T) {
	data, err := Value{}.MarshalCBOR()
	if err != nil {
		t.Fatalf("MarshalCBOR() => %v", err)
	}
	if !bytes.Equal(data, []byte{0xf6}) {
		t.Fatalf("MarshalCBOR() => %x, want f6", data)
	}

	v := NewString(LOVR, "replaced")
	if err := v.UnmarshalCBOR(data); err != nil {
		t.Fatalf("UnmarshalCBOR(_) => %v", err)
	}
	if v.IsValid() {
		t.Fatalf("UnmarshalCBOR(null) => %v, want invalid", v)
	}
}

func TestValue_CBORDeterministic(t *testing.T) {
	a := createSingletonSequence(map[Tag]Value{
		NewTag(0x0010, 0x0010): NewString(PNVR, "Doe^John"),
		NewTag(0x0008, 0x0020): NewString(DAVR, "20240131"),
		NewTag(0x0020, 0x0013): NewString(ISVR, "7"),
	})
	b := createSingletonSequence(map[Tag]Value{
		NewTag(0x0020, 0x0013): NewString(ISVR, "7"),
		NewTag(0x0008, 0x0020): NewString(DAVR, "20240131"),
		NewTag(0x0010, 0x0010): NewString(PNVR, "Doe^John"),
	})
	va, vb := NewSequenceValue(a), NewSequenceValue(b)
	defer va.Clear()
	defer vb.Clear()

	da, err := cbor.Marshal(va)
	if err != nil {
		t.Fatalf("cbor.Marshal(_) => %v", err)
	}
	db, err := cbor.Marshal(vb)
	if err != nil {
		t.Fatalf("cbor.Marshal(_) => %v", err)
	}
	if !bytes.Equal(da, db) {
		t.Fatalf("equal values encoded differently:\n%x\n%x", da, db)
	}
}

func TestValue_CBORErrors(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"unknown VR", []any{"ZZ", uint8(KindChars), 0, []byte{}}},
		{"unknown kind", []any{"LO", 99, 0, []byte{}}},
		{"kind not permitted", []any{"US", uint8(KindFloat64), 8, []float64{1}}},
		{"text under a number VR", []any{"FL", uint8(KindChars), 2, []byte("ab")}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := cbor.Marshal(tc.in)
			if err != nil {
				t.Fatalf("cbor.Marshal(_) => %v", err)
			}
			var v Value
			if err := v.UnmarshalCBOR(data); err == nil {
				v.Clear()
				t.Fatalf("UnmarshalCBOR(_) => nil error, want error")
			}
		})
	}
}
