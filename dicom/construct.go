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
)

// NewValues creates a Value of the given VR from data. The data is copied into the Value and
// converted to the type required by the VR where needed:
//   - for text VRs, strings are joined with backslashes and numbers are formatted (integers for
//     IS, at most 16 characters for DS, shortest round-trip decimal for other text).
//   - for binary number VRs, numbers saturate at the limits of the VR's type and strings are
//     parsed as decimal numbers.
//   - for OW and OL, signed data keeps its signedness.
//   - AT only accepts tags.
//
// If the data cannot be represented under the VR (for example tags under US, unparsable text
// under FL, or any data under SQ) the returned Value is invalid.
func NewValues[T Scalar](vr *VR, data []T) Value {
	if vr == nil || vr.IsSequence() {
		return Value{}
	}
	if vr.IsText() {
		return newText(vr, data)
	}

	kind := vr.nativeKind()
	if k := scalarKind[T](); vr.permits(k) {
		kind = k
	}

	switch kind {
	case KindUint8:
		return newConverted[T, uint8](vr, kind, data)
	case KindInt16:
		return newConverted[T, int16](vr, kind, data)
	case KindUint16:
		return newConverted[T, uint16](vr, kind, data)
	case KindInt32:
		return newConverted[T, int32](vr, kind, data)
	case KindUint32:
		return newConverted[T, uint32](vr, kind, data)
	case KindFloat32:
		return newConverted[T, float32](vr, kind, data)
	case KindFloat64:
		return newConverted[T, float64](vr, kind, data)
	case KindTag:
		return newConverted[T, Tag](vr, kind, data)
	}
	return Value{}
}

// scalarKind is the element kind that stores T without conversion
func scalarKind[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case string:
		return KindChars
	case uint8:
		return KindUint8
	case int16:
		return KindInt16
	case uint16:
		return KindUint16
	case int32:
		return KindInt32
	case uint32:
		return KindUint32
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case Tag:
		return KindTag
	}
	return kindInvalid
}

// scalarNumber reads a source element as a number. Strings are parsed as decimal numbers.
func scalarNumber[T Scalar](x T) (number, bool) {
	switch s := any(x).(type) {
	case string:
		return parseNumberString(DSVR, []byte(strings.TrimSpace(s)))
	case uint8:
		return intNumber(int64(s)), true
	case int16:
		return intNumber(int64(s)), true
	case uint16:
		return intNumber(int64(s)), true
	case int32:
		return intNumber(int64(s)), true
	case uint32:
		return intNumber(int64(s)), true
	case float32:
		return floatNumber(float64(s), 32), true
	case float64:
		return floatNumber(s, 64), true
	}
	return number{}, false
}

// newConverted allocates a cell of kind k and fills it with data converted from T to U
func newConverted[T Scalar, U storage](vr *VR, k Kind, data []T) Value {
	c, dst := allocate[U](vr, k, len(data))
	if c == nil {
		return Value{}
	}

	for i, x := range data {
		if tag, ok := any(x).(Tag); ok {
			// tags are only stored as tags
			p, ok := any(&dst[i]).(*Tag)
			if !ok {
				release(c)
				return Value{}
			}
			*p = tag
			continue
		}
		n, ok := scalarNumber(x)
		if !ok {
			release(c)
			return Value{}
		}
		u, ok := fromNumberStorage[U](n)
		if !ok {
			release(c)
			return Value{}
		}
		dst[i] = u
	}
	return Value{c}
}

// fromNumberStorage is fromNumber for the numeric storage types
func fromNumberStorage[U storage](x number) (U, bool) {
	var out U
	switch p := any(&out).(type) {
	case *uint8:
		*p, _ = fromNumber[uint8](x)
	case *int16:
		*p, _ = fromNumber[int16](x)
	case *uint16:
		*p, _ = fromNumber[uint16](x)
	case *int32:
		*p, _ = fromNumber[int32](x)
	case *uint32:
		*p, _ = fromNumber[uint32](x)
	case *float32:
		*p, _ = fromNumber[float32](x)
	case *float64:
		*p, _ = fromNumber[float64](x)
	default:
		return out, false
	}
	return out, true
}

// newText formats data as backslash-delimited text under a text VR
func newText[T Scalar](vr *VR, data []T) Value {
	parts := make([]string, len(data))
	for i, x := range data {
		if s, ok := any(x).(string); ok {
			parts[i] = s
			continue
		}
		n, ok := scalarNumber(x)
		if !ok {
			// tags cannot be stored as text
			return Value{}
		}
		switch vr {
		case ISVR:
			parts[i] = formatIntegerString(n)
		case DSVR:
			parts[i] = formatDecimalString(n.float64())
		default:
			parts[i] = string(n.appendText(nil))
		}
	}
	return NewString(vr, strings.Join(parts, "\\"))
}

// NewString creates a text Value. The string may contain several backslash-separated values.
func NewString(vr *VR, s string) Value {
	var v Value
	b := v.AllocateChars(vr, len(s))
	if !v.IsValid() {
		return Value{}
	}
	copy(b, s)
	v.ComputeNumberOfValues()
	return v
}

// NewStrings creates a text Value holding each of strs as one value
func NewStrings(vr *VR, strs []string) Value {
	return NewValues(vr, strs)
}

// NewFloat64 creates a single valued Value from f, converted to the type of the VR
func NewFloat64(vr *VR, f float64) Value {
	return NewValues(vr, []float64{f})
}

// NewTagValue creates an AT Value holding one tag
func NewTagValue(vr *VR, t Tag) Value {
	return NewValues(vr, []Tag{t})
}

// NewBytes creates an OB or UN Value
func NewBytes(vr *VR, b []byte) Value {
	var v Value
	dst := v.AllocateBytes(vr, len(b))
	copy(dst, b)
	return v
}

// NewInt16s creates a Value from signed 16-bit data
func NewInt16s(vr *VR, data []int16) Value { return NewValues(vr, data) }

// NewUint16s creates a Value from unsigned 16-bit data
func NewUint16s(vr *VR, data []uint16) Value { return NewValues(vr, data) }

// NewInt32s creates a Value from signed 32-bit data
func NewInt32s(vr *VR, data []int32) Value { return NewValues(vr, data) }

// NewUint32s creates a Value from unsigned 32-bit data
func NewUint32s(vr *VR, data []uint32) Value { return NewValues(vr, data) }

// NewFloat32s creates a Value from float32 data
func NewFloat32s(vr *VR, data []float32) Value { return NewValues(vr, data) }

// NewFloat64s creates a Value from float64 data
func NewFloat64s(vr *VR, data []float64) Value { return NewValues(vr, data) }

// NewTags creates an AT Value
func NewTags(vr *VR, tags []Tag) Value { return NewValues(vr, tags) }

// Empty creates a valid Value of the given VR that holds no values, as used for attributes that
// are present but empty.
func Empty(vr *VR) Value {
	if vr == nil {
		return Value{}
	}
	var v Value
	switch kind := vr.nativeKind(); kind {
	case KindChars:
		v.AllocateChars(vr, 0)
	case KindUint8:
		v.AllocateBytes(vr, 0)
	case KindInt16:
		v.AllocateInt16s(vr, 0)
	case KindUint16:
		v.AllocateUint16s(vr, 0)
	case KindInt32:
		v.AllocateInt32s(vr, 0)
	case KindUint32:
		v.AllocateUint32s(vr, 0)
	case KindFloat32:
		v.AllocateFloat32s(vr, 0)
	case KindFloat64:
		v.AllocateFloat64s(vr, 0)
	case KindTag:
		v.AllocateTags(vr, 0)
	case KindItem:
		v.AllocateItems(vr, 0)
	}
	return v
}

// NewSequenceValue creates an SQ Value holding the items of seq. The values within the items are
// shared with seq, not copied.
func NewSequenceValue(seq *Sequence) Value {
	var v Value
	if seq == nil {
		v.AllocateItems(SQVR, 0)
		return v
	}
	items := v.AllocateItems(SQVR, len(seq.Items))
	for i, item := range seq.Items {
		if item != nil {
			items[i] = item.Copy()
		}
	}
	return v
}

// NewMultiplex creates a multiplexed Value that holds one nested value per frame or file. The
// nested values are shared, not copied. All nested values are expected to have the given VR.
func NewMultiplex(vr *VR, values []Value) Value {
	var v Value
	dst := v.AllocateMultiplex(vr, len(values))
	for i := range values {
		dst[i] = values[i].Copy()
	}
	return v
}
