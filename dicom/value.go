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

// Value is a container for the values of a DICOM data element. It is a handle to a shared,
// reference counted cell that holds the VR, the value length and a typed array of elements, so
// it is one pointer wide and copying it is cheap.
//
// The zero Value is invalid: it holds no data and every accessor returns zero or empty results.
//
// Shares of a cell are taken and dropped explicitly. Copy returns a new share, Assign swaps the
// share held by a Value, and Clear drops it. A plain Go assignment of a Value borrows the share of
// the original and must not outlive it. The contents of a cell are immutable once it is shared;
// the mutating methods (ReallocateBytes, MutableBytes, MutableChars) copy a shared cell before
// writing.
type Value struct {
	c *cell
}

// IsValid is true if the Value contains data. A borrowed Value whose cell was freed by the last
// share holder is invalid.
func (v Value) IsValid() bool {
	return v.live() != nil
}

// live returns the cell of v, or nil if v is invalid or its cell was freed
func (v Value) live() *cell {
	if v.c == nil || v.c.kind == kindInvalid {
		return nil
	}
	return v.c
}

// VR returns the value representation, or nil for an invalid Value
func (v Value) VR() *VR {
	if v.c == nil {
		return nil
	}
	return v.c.vr
}

// VL returns the length of the data in bytes. It is always even, except for UndefinedLength which
// is reported for sequences, multiplexed values and encapsulated data under construction.
func (v Value) VL() uint32 {
	if v.c == nil {
		return 0
	}
	return v.c.vl
}

// NumberOfValues returns the value multiplicity. It is interpreted differently depending on the VR:
//   - for backslash-delimited text (AE, AS, CS, DA, DS, DT, IS, LO, PN, SH, TM, UC, UI) it is the
//     number of backslash-separated values.
//   - for other text (LT, ST, UT, UR) it is 1 unless the text is empty.
//   - for binary numbers (FL, FD, SS, US, SL, UL, OF, OD, OL, OW, OB) it is the number of binary
//     values.
//   - for UN it is the number of bytes.
//   - for attribute tags (AT) it is the number of tags.
//   - for sequences (SQ, XQ) it is the number of items, including any delimiters.
//
// Empty text has no values under any text VR, so an attribute that is present but empty reports 0.
func (v Value) NumberOfValues() int {
	if v.c == nil {
		return 0
	}
	return int(v.c.n)
}

// Kind returns the kind of the stored elements
func (v Value) Kind() Kind {
	if v.c == nil {
		return kindInvalid
	}
	return v.c.kind
}

// Copy returns a new handle sharing the cell of v
func (v Value) Copy() Value {
	c := v.live()
	if c != nil {
		c.refs.Inc()
	}
	return Value{c}
}

// Assign makes v share the cell of o, releasing the cell previously held by v. Assigning a Value
// that already holds the same cell does nothing.
func (v *Value) Assign(o Value) {
	oc := o.live()
	if v.c == oc {
		return
	}
	if oc != nil {
		oc.refs.Inc()
	}
	v.install(oc)
}

// AssignSequence replaces the contents of v with the items of seq
func (v *Value) AssignSequence(seq *Sequence) {
	nv := NewSequenceValue(seq)
	v.install(nv.c)
}

// Clear releases the cell held by v and leaves v invalid. The cell is freed when its last share
// is released.
func (v *Value) Clear() {
	v.install(nil)
}

// RefCount returns the number of shares of the cell of v, or 0 for an invalid Value
func (v Value) RefCount() int {
	if v.c == nil {
		return 0
	}
	return int(v.c.refs.Load())
}

// Unique is true if v holds the only share of its cell
func (v Value) Unique() bool {
	return v.live() != nil && v.c.refs.Load() == 1
}
