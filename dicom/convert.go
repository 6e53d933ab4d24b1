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
)

// Scalar lists the types that values can be converted to on read
type Scalar interface {
	string | uint8 | int16 | uint16 | int32 | uint32 | float32 | float64 | Tag
}

// Get converts the i'th value of v to T. The boolean is false if v is invalid, i is out of
// range, the stored kind cannot be converted to T, or the text of an IS or DS value does not
// parse; the returned value is then the zero value of T.
//
// Conversion rules:
//   - between numeric kinds, values saturate at the limits of T. Floating point values are
//     truncated toward zero when converted to integers and NaN becomes 0.
//   - IS and DS text is parsed; other text only converts to string.
//   - numbers convert to string in decimal, floating point in the shortest form that round-trips.
//   - tags only convert to Tag.
//   - for multiplexed values, the i'th nested value is converted if it has exactly one value.
func Get[T Scalar](v Value, i int) (T, bool) {
	var out T
	c := v.live()
	if c == nil || i < 0 || i >= int(c.n) {
		return out, false
	}

	switch c.kind {
	case KindChars:
		return textAt[T](c, i)
	case KindTag:
		if p, ok := any(&out).(*Tag); ok {
			*p = c.data.([]Tag)[i]
			return out, true
		}
		return out, false
	case KindItem:
		return out, false
	case KindValue:
		sub := c.data.([]Value)[i]
		if sub.NumberOfValues() != 1 {
			return out, false
		}
		return Get[T](sub, 0)
	}

	return fromNumber[T](numberAt(c, i))
}

// GetValues converts the values of v starting at index i into dst. Positions that cannot be
// converted are set to zero. It returns the number of values that converted.
func GetValues[T Scalar](v Value, dst []T, i int) int {
	converted := 0
	for j := range dst {
		var ok bool
		dst[j], ok = Get[T](v, i+j)
		if ok {
			converted++
		}
	}
	return converted
}

// numberAt reads the i'th element of a numeric cell
func numberAt(c *cell, i int) number {
	switch data := c.data.(type) {
	case []byte:
		return intNumber(int64(data[i]))
	case []int16:
		return intNumber(int64(data[i]))
	case []uint16:
		return intNumber(int64(data[i]))
	case []int32:
		return intNumber(int64(data[i]))
	case []uint32:
		return intNumber(int64(data[i]))
	case []float32:
		return floatNumber(float64(data[i]), 32)
	case []float64:
		return floatNumber(data[i], 64)
	}
	return number{}
}

// fromNumber converts a number to T
func fromNumber[T Scalar](x number) (T, bool) {
	var out T
	switch p := any(&out).(type) {
	case *string:
		*p = string(x.appendText(nil))
	case *uint8:
		*p = uint8(x.clampInt(0, math.MaxUint8))
	case *int16:
		*p = int16(x.clampInt(math.MinInt16, math.MaxInt16))
	case *uint16:
		*p = uint16(x.clampInt(0, math.MaxUint16))
	case *int32:
		*p = int32(x.clampInt(math.MinInt32, math.MaxInt32))
	case *uint32:
		*p = uint32(x.clampInt(0, math.MaxUint32))
	case *float32:
		*p = x.float32()
	case *float64:
		*p = x.float64()
	default:
		return out, false
	}
	return out, true
}

// textAt converts the i'th value of a text cell
func textAt[T Scalar](c *cell, i int) (T, bool) {
	var out T
	f := field(c.vr, c.data.([]byte), i)
	if p, ok := any(&out).(*string); ok {
		*p = string(f)
		return out, true
	}
	if c.vr != ISVR && c.vr != DSVR {
		return out, false
	}
	x, ok := parseNumberString(c.vr, f)
	if !ok {
		return out, false
	}
	return fromNumber[T](x)
}

// StringAt returns the i'th value as a string, or "" if it cannot be converted
func (v Value) StringAt(i int) string {
	s, _ := Get[string](v, i)
	return s
}

// Uint8At returns the i'th value as a uint8, or 0 if it cannot be converted
func (v Value) Uint8At(i int) uint8 {
	x, _ := Get[uint8](v, i)
	return x
}

// Int16At returns the i'th value as an int16, or 0 if it cannot be converted
func (v Value) Int16At(i int) int16 {
	x, _ := Get[int16](v, i)
	return x
}

// Uint16At returns the i'th value as a uint16, or 0 if it cannot be converted
func (v Value) Uint16At(i int) uint16 {
	x, _ := Get[uint16](v, i)
	return x
}

// Int32At returns the i'th value as an int32, or 0 if it cannot be converted
func (v Value) Int32At(i int) int32 {
	x, _ := Get[int32](v, i)
	return x
}

// Uint32At returns the i'th value as a uint32, or 0 if it cannot be converted
func (v Value) Uint32At(i int) uint32 {
	x, _ := Get[uint32](v, i)
	return x
}

// Float32At returns the i'th value as a float32, or 0 if it cannot be converted
func (v Value) Float32At(i int) float32 {
	x, _ := Get[float32](v, i)
	return x
}

// Float64At returns the i'th value as a float64, or 0 if it cannot be converted
func (v Value) Float64At(i int) float64 {
	x, _ := Get[float64](v, i)
	return x
}

// TagAt returns the i'th value of an AT value, or the zero Tag
func (v Value) TagAt(i int) Tag {
	x, _ := Get[Tag](v, i)
	return x
}

// ItemAt returns the i'th item of a sequence. The returned Item shares its element map with the
// cell of v, which may be shared with other Values: it must not be modified. To change an item,
// edit an Item.Copy and build a new sequence with NewSequenceValue or AssignSequence. Use
// Item.Copy as well to keep the item beyond the lifetime of v.
func (v Value) ItemAt(i int) (Item, bool) {
	items := v.Items()
	if i < 0 || i >= len(items) {
		return Item{}, false
	}
	return items[i], true
}

// ValueAt returns the i'th nested value of a multiplexed value, or an invalid Value
func (v Value) ValueAt(i int) Value {
	values := v.Multiplex()
	if i < 0 || i >= len(values) {
		return Value{}
	}
	return values[i]
}

// as converts the single value of v
func as[T Scalar](v Value) T {
	if v.NumberOfValues() != 1 {
		var zero T
		return zero
	}
	x, _ := Get[T](v, 0)
	return x
}

// AsString returns the value as a string if there is exactly one value, otherwise ""
func (v Value) AsString() string { return as[string](v) }

// AsUint8 returns the value as a uint8 if there is exactly one value, otherwise 0
func (v Value) AsUint8() uint8 { return as[uint8](v) }

// AsInt16 returns the value as an int16 if there is exactly one value, otherwise 0
func (v Value) AsInt16() int16 { return as[int16](v) }

// AsUint16 returns the value as a uint16 if there is exactly one value, otherwise 0
func (v Value) AsUint16() uint16 { return as[uint16](v) }

// AsInt32 returns the value as an int32 if there is exactly one value, otherwise 0
func (v Value) AsInt32() int32 { return as[int32](v) }

// AsUint32 returns the value as a uint32 if there is exactly one value, otherwise 0
func (v Value) AsUint32() uint32 { return as[uint32](v) }

// AsFloat32 returns the value as a float32 if there is exactly one value, otherwise 0
func (v Value) AsFloat32() float32 { return as[float32](v) }

// AsFloat64 returns the value as a float64 if there is exactly one value, otherwise 0
func (v Value) AsFloat64() float64 { return as[float64](v) }

// AsTag returns the tag if v is an AT value with exactly one value, otherwise the zero Tag
func (v Value) AsTag() Tag { return as[Tag](v) }

// The data views below expose the stored array without copying. They return nil unless the
// stored kind matches the requested type, and the arrays must not be modified. For most VRs the
// array is longer than NumberOfValues: OB, OF and UT, for example, count as a single value.

// Chars returns the text of a text value including any padding byte
func (v Value) Chars() []byte {
	if v.Kind() != KindChars {
		return nil
	}
	return dataOf[byte](v.c)
}

// Bytes returns the bytes of an OB or UN value, excluding the padding byte
func (v Value) Bytes() []byte {
	b := dataOf[byte](v.c)
	if v.Kind() != KindUint8 || b == nil {
		return nil
	}
	return b[:v.c.n]
}

// Int16s returns the array of an SS or signed OW value
func (v Value) Int16s() []int16 { return dataOf[int16](v.c) }

// Uint16s returns the array of a US or OW value
func (v Value) Uint16s() []uint16 { return dataOf[uint16](v.c) }

// Int32s returns the array of an SL or signed OL value
func (v Value) Int32s() []int32 { return dataOf[int32](v.c) }

// Uint32s returns the array of a UL or OL value
func (v Value) Uint32s() []uint32 { return dataOf[uint32](v.c) }

// Float32s returns the array of an FL or OF value
func (v Value) Float32s() []float32 { return dataOf[float32](v.c) }

// Float64s returns the array of an FD or OD value
func (v Value) Float64s() []float64 { return dataOf[float64](v.c) }

// Tags returns the array of an AT value
func (v Value) Tags() []Tag { return dataOf[Tag](v.c) }

// Items returns the items of an SQ or XQ value. The slice and the element maps of its items belong
// to the cell and must not be modified, as for ItemAt.
func (v Value) Items() []Item { return dataOf[Item](v.c) }

// Multiplex returns the nested values of a multiplexed value. The slice belongs to the cell and
// must not be modified; the Values in it are borrowed.
func (v Value) Multiplex() []Value { return dataOf[Value](v.c) }
