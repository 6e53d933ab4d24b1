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
	"strconv"
)

// number is the intermediate form of a numeric value during conversion. Integers keep full
// precision in i, floating point values are held in f.
type number struct {
	i     int64
	f     float64
	isInt bool
	// bits is 32 for values that were stored as float32, which selects the shortest text form
	// that round-trips through float32
	bits int
}

func intNumber(i int64) number {
	return number{i: i, isInt: true}
}

func floatNumber(f float64, bits int) number {
	return number{f: f, bits: bits}
}

func (x number) float64() float64 {
	if x.isInt {
		return float64(x.i)
	}
	return x.f
}

// clampInt converts x to an integer in [lo, hi]. Floating point values are truncated toward zero
// before clamping and NaN becomes 0.
func (x number) clampInt(lo, hi int64) int64 {
	if x.isInt {
		switch {
		case x.i < lo:
			return lo
		case x.i > hi:
			return hi
		}
		return x.i
	}

	f := math.Trunc(x.f)
	switch {
	case math.IsNaN(f):
		return 0
	case f <= float64(lo):
		return lo
	case f >= float64(hi):
		return hi
	}
	return int64(f)
}

// float32 converts x to float32, clamping finite values that are out of range to
// ±math.MaxFloat32. Infinities and NaN are kept.
func (x number) float32() float32 {
	f := x.float64()
	switch {
	case math.IsInf(f, 0) || math.IsNaN(f):
		return float32(f)
	case f > math.MaxFloat32:
		return math.MaxFloat32
	case f < -math.MaxFloat32:
		return -math.MaxFloat32
	}
	return float32(f)
}

// appendText appends the canonical decimal form of x: plain decimal for integers and the
// shortest representation that round-trips for floating point values.
func (x number) appendText(buf []byte) []byte {
	if x.isInt {
		return strconv.AppendInt(buf, x.i, 10)
	}
	bits := x.bits
	if bits != 32 {
		bits = 64
	}
	return strconv.AppendFloat(buf, x.f, 'g', -1, bits)
}

// parseNumberString parses one value of an IS or DS element. Only the characters allowed by the
// standard for these VRs are accepted; anything else fails.
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
func parseNumberString(vr *VR, b []byte) (number, bool) {
	if len(b) == 0 {
		return number{}, false
	}
	for _, ch := range b {
		switch {
		case ch >= '0' && ch <= '9', ch == '+', ch == '-', ch == '.', ch == 'e', ch == 'E':
		default:
			return number{}, false
		}
	}

	s := string(b)
	if vr == ISVR {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return intNumber(i), true
		}
		// some writers store integer strings in decimal form, such as "2.0"
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return number{}, false
	}
	return floatNumber(f, 64), true
}

// maxDecimalStringLength is the maximum length of one DS value
const maxDecimalStringLength = 16

// formatDecimalString formats f as a DS value of at most 16 characters, using the shortest
// round-trip form when it fits and reducing precision otherwise.
func formatDecimalString(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		// DS cannot hold these, store 0 like an unparsable value reads back
		return "0"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	for prec := maxDecimalStringLength; len(s) > maxDecimalStringLength && prec > 0; prec-- {
		s = strconv.FormatFloat(f, 'g', prec, 64)
	}
	return s
}

// formatIntegerString formats x as an IS value, rounding floating point values and clamping to
// the signed 32-bit range the standard allows.
func formatIntegerString(x number) string {
	if !x.isInt {
		x = floatNumber(math.Round(x.f), 64)
	}
	return strconv.FormatInt(x.clampInt(math.MinInt32, math.MaxInt32), 10)
}
