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
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// encMode uses Core Deterministic Encoding (RFC 8949 §4.2), so equal values always produce
// identical bytes and the encoding can serve as a cache key.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("dicom: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("dicom: CBOR decoder initialization failed: " + err.Error())
	}
}

// valueRecord is the CBOR form of a valid Value
type valueRecord struct {
	_    struct{} `cbor:",toarray"`
	VR   string
	Kind Kind
	VL   uint32
	Data cbor.RawMessage
}

type itemRecord struct {
	_         struct{} `cbor:",toarray"`
	Delimiter bool
	Elements  map[Tag]Value
}

// MarshalCBOR encodes v as the array [vr, kind, vl, data]. Text and bytes are byte strings, numbers
// and tags arrays of numbers, items arrays of [delimiter, {tag: value}] and multiplexed values
// arrays of values. An invalid Value is encoded as null.
func (v Value) MarshalCBOR() ([]byte, error) {
	c := v.live()
	if c == nil {
		return encMode.Marshal(nil)
	}

	var data any
	switch d := c.data.(type) {
	case []byte:
		data = d
		if c.kind == KindUint8 {
			data = d[:c.n]
		}
	case []Item:
		items := make([]itemRecord, len(d))
		for i := range d {
			items[i] = itemRecord{Delimiter: d[i].Delimiter, Elements: d[i].Elements}
		}
		data = items
	default:
		data = d
	}

	raw, err := encMode.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encoding %v data: %v", c.vr, err)
	}
	return encMode.Marshal(valueRecord{VR: c.vr.Name, Kind: c.kind, VL: c.vl, Data: raw})
}

// UnmarshalCBOR replaces v with the Value encoded in data
func (v *Value) UnmarshalCBOR(data []byte) error {
	if len(data) == 1 && data[0] == 0xf6 {
		v.Clear()
		return nil
	}

	var rec valueRecord
	if err := decMode.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("decoding value: %v", err)
	}
	vr, err := LookupVR(rec.VR)
	if err != nil {
		return fmt.Errorf("decoding value: %v", err)
	}

	var nv Value
	switch rec.Kind {
	case KindChars:
		nv, err = decodeChars(vr, rec.Data)
	case KindUint8:
		nv, err = decodeBytes(vr, rec.VL, rec.Data)
	case KindInt16:
		nv, err = decodeNumbers[int16](vr, rec.Kind, rec.Data)
	case KindUint16:
		nv, err = decodeNumbers[uint16](vr, rec.Kind, rec.Data)
	case KindInt32:
		nv, err = decodeNumbers[int32](vr, rec.Kind, rec.Data)
	case KindUint32:
		nv, err = decodeNumbers[uint32](vr, rec.Kind, rec.Data)
	case KindFloat32:
		nv, err = decodeNumbers[float32](vr, rec.Kind, rec.Data)
	case KindFloat64:
		nv, err = decodeNumbers[float64](vr, rec.Kind, rec.Data)
	case KindTag:
		nv, err = decodeNumbers[Tag](vr, rec.Kind, rec.Data)
	case KindItem:
		nv, err = decodeItems(vr, rec.Data)
	case KindValue:
		nv, err = decodeMultiplex(vr, rec.Data)
	default:
		err = fmt.Errorf("unknown kind %d", rec.Kind)
	}
	if err != nil {
		return fmt.Errorf("decoding %v value: %v", vr, err)
	}

	v.install(nv.c)
	return nil
}

func decodeChars(vr *VR, raw cbor.RawMessage) (Value, error) {
	var b []byte
	if err := decMode.Unmarshal(raw, &b); err != nil {
		return Value{}, err
	}
	var v Value
	copy(v.AllocateChars(vr, len(b)), b)
	if !v.IsValid() {
		return Value{}, fmt.Errorf("text is not permitted")
	}
	v.ComputeNumberOfValues()
	return v, nil
}

func decodeBytes(vr *VR, vl uint32, raw cbor.RawMessage) (Value, error) {
	var b []byte
	if err := decMode.Unmarshal(raw, &b); err != nil {
		return Value{}, err
	}
	var v Value
	copy(v.AllocateBytes(vr, len(b)), b)
	if !v.IsValid() {
		return Value{}, fmt.Errorf("bytes are not permitted")
	}
	if vl == UndefinedLength {
		v.ReallocateBytes(len(b))
	}
	return v, nil
}

func decodeNumbers[T int16 | uint16 | int32 | uint32 | float32 | float64 | Tag](vr *VR, k Kind, raw cbor.RawMessage) (Value, error) {
	var data []T
	if err := decMode.Unmarshal(raw, &data); err != nil {
		return Value{}, err
	}
	c, dst := allocate[T](vr, k, len(data))
	if c == nil {
		return Value{}, fmt.Errorf("%v data is not permitted", k)
	}
	copy(dst, data)
	return Value{c}, nil
}

func decodeItems(vr *VR, raw cbor.RawMessage) (Value, error) {
	var recs []itemRecord
	if err := decMode.Unmarshal(raw, &recs); err != nil {
		return Value{}, err
	}
	var v Value
	items := v.AllocateItems(vr, len(recs))
	if !v.IsValid() {
		for i := range recs {
			(&Item{Elements: recs[i].Elements}).Release()
		}
		return Value{}, fmt.Errorf("items are not permitted")
	}
	// the decoded values are owned by the new items
	for i, rec := range recs {
		items[i] = Item{Elements: rec.Elements, Delimiter: rec.Delimiter}
	}
	return v, nil
}

func decodeMultiplex(vr *VR, raw cbor.RawMessage) (Value, error) {
	var values []Value
	if err := decMode.Unmarshal(raw, &values); err != nil {
		return Value{}, err
	}
	var v Value
	copy(v.AllocateMultiplex(vr, len(values)), values)
	return v, nil
}
