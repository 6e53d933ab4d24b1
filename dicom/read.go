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
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrUndefinedLength is returned when a value field with undefined length is not
	// encapsulated OB or UN data
	ErrUndefinedLength = errors.New("undefined length is only supported for encapsulated OB and UN data")

	// ErrUnsupportedVR is returned for value fields that cannot be decoded or encoded without the
	// surrounding data set, such as sequences
	ErrUnsupportedVR = errors.New("unsupported vr for a single value field")
)

// ReadValue decodes one value field of the given VR and length from r. Binary numbers and tags
// are decoded in the given byte order, text is kept as stored. OB and UN data of undefined length
// is read as encapsulated data: fragments are accumulated, item headers included, up to the
// sequence delimitation item, and the returned Value keeps the undefined length.
func ReadValue(r io.Reader, vr *VR, length uint32, order binary.ByteOrder) (Value, error) {
	if vr == nil || vr.IsSequence() {
		return Value{}, fmt.Errorf("reading %v value: %w", vr, ErrUnsupportedVR)
	}

	dr := newDcmReader(r)
	if length == UndefinedLength {
		if vr != OBVR && vr != UNVR {
			return Value{}, fmt.Errorf("reading %v value: %w", vr, ErrUndefinedLength)
		}
		return readEncapsulated(dr, vr, order)
	}

	if vr.IsText() {
		return readText(dr, vr, length)
	}
	switch vr.nativeKind() {
	case KindUint8:
		return readBytes(dr, vr, length)
	case KindTag:
		return readTags(dr, vr, length, order)
	case KindInt16:
		return readNumbers[int16](dr, vr, KindInt16, length, order)
	case KindUint16:
		return readNumbers[uint16](dr, vr, KindUint16, length, order)
	case KindInt32:
		return readNumbers[int32](dr, vr, KindInt32, length, order)
	case KindUint32:
		return readNumbers[uint32](dr, vr, KindUint32, length, order)
	case KindFloat32:
		return readNumbers[float32](dr, vr, KindFloat32, length, order)
	case KindFloat64:
		return readNumbers[float64](dr, vr, KindFloat64, length, order)
	}
	return Value{}, fmt.Errorf("reading %v value: %w", vr, ErrUnsupportedVR)
}

func readText(dr *dcmReader, vr *VR, length uint32) (Value, error) {
	var v Value
	b := v.AllocateChars(vr, int(length))
	if !v.IsValid() {
		return Value{}, fmt.Errorf("allocating %d characters for %v", length, vr)
	}
	if err := dr.Full(b); err != nil {
		v.Clear()
		return Value{}, fmt.Errorf("reading text field value: %v", err)
	}
	v.ComputeNumberOfValues()
	return v, nil
}

func readBytes(dr *dcmReader, vr *VR, length uint32) (Value, error) {
	var v Value
	b := v.AllocateBytes(vr, int(length))
	if !v.IsValid() {
		return Value{}, fmt.Errorf("allocating %d bytes for %v", length, vr)
	}
	if err := dr.Full(b); err != nil {
		v.Clear()
		return Value{}, fmt.Errorf("reading bulk data: %v", err)
	}
	return v, nil
}

func readTags(dr *dcmReader, vr *VR, length uint32, order binary.ByteOrder) (Value, error) {
	var v Value
	tags := v.AllocateTags(vr, int(length/4)) // 4 bytes per tag
	for i := range tags {
		t, err := dr.Tag(order)
		if err != nil {
			v.Clear()
			return Value{}, fmt.Errorf("reading tag %d at offset %d: %v", i, dr.Offset(), err)
		}
		tags[i] = t
	}
	if err := dr.skip(int64(length % 4)); err != nil {
		v.Clear()
		return Value{}, err
	}
	return v, nil
}

func readNumbers[T int16 | uint16 | int32 | uint32 | float32 | float64](dr *dcmReader, vr *VR, k Kind, length uint32, order binary.ByteOrder) (Value, error) {
	size := uint32(k.size())
	c, data := allocate[T](vr, k, int(length/size))
	if c == nil {
		return Value{}, fmt.Errorf("allocating %d bytes for %v", length, vr)
	}
	v := Value{c}
	if err := dr.Numbers(order, data); err != nil {
		v.Clear()
		return Value{}, fmt.Errorf("reading %v values: %v", vr, err)
	}
	// a trailing partial number is dropped
	if err := dr.skip(int64(length % size)); err != nil {
		v.Clear()
		return Value{}, err
	}
	return v, nil
}

// readEncapsulated accumulates the fragments of encapsulated data. Each fragment is stored
// together with its item header, as it appears in the stream.
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_A.4
func readEncapsulated(dr *dcmReader, vr *VR, order binary.ByteOrder) (Value, error) {
	var v Value
	v.AllocateBytes(vr, 0)

	for {
		var hdr [8]byte
		if err := dr.Full(hdr[:]); err != nil {
			v.Clear()
			return Value{}, fmt.Errorf("reading fragment header: %v", err)
		}
		tag := NewTag(order.Uint16(hdr[0:]), order.Uint16(hdr[2:]))
		length := order.Uint32(hdr[4:])

		switch tag {
		case SequenceDelimitationItemTag:
			if length != 0 {
				v.Clear()
				return Value{}, fmt.Errorf("wrong length for sequence delimiter. got %v, want %v", length, 0)
			}
			// marks the value as encapsulated even if there were no fragments
			v.ReallocateBytes(v.NumberOfValues())
			return v, nil
		case ItemTag:
			start := v.NumberOfValues()
			if length == UndefinedLength || uint64(start)+uint64(len(hdr))+uint64(length) >= UndefinedLength {
				v.Clear()
				return Value{}, fmt.Errorf("invalid fragment length %d at offset %d", length, dr.Offset())
			}
			b := v.ReallocateBytes(start + len(hdr) + int(length))
			copy(b[start:], hdr[:])
			if err := dr.Full(b[start+len(hdr):]); err != nil {
				v.Clear()
				return Value{}, fmt.Errorf("reading fragment: %v", err)
			}
		default:
			v.Clear()
			return Value{}, fmt.Errorf("unexpected tag %v in encapsulated data at offset %d", tag, dr.Offset())
		}
	}
}
