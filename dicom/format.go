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
	"strconv"

	"github.com/delaneyj/toolbelt/bytebufferpool"
)

// maxRenderedBytes is the number of OB or UN values above which String summarizes the data
// instead of listing every byte
const maxRenderedBytes = 64

// AppendValueToString appends the human-readable form of the i'th value to buf and returns the
// extended buffer. Text is appended without padding, numbers in decimal, tags as (GGGG,EEEE),
// items as a count of their elements and nested values as their backslash-joined values. Nothing
// is appended for an invalid Value or an index that is out of range.
//
// Take care with ST, LT and UT, whose values may be very long and contain non-printable
// characters.
func (v Value) AppendValueToString(buf []byte, i int) []byte {
	c := v.live()
	if c == nil || i < 0 || i >= int(c.n) {
		return buf
	}

	switch c.kind {
	case KindChars:
		return append(buf, field(c.vr, c.data.([]byte), i)...)
	case KindTag:
		t := c.data.([]Tag)[i]
		buf = append(buf, '(')
		buf = appendHex16(buf, t.GroupNumber())
		buf = append(buf, ',')
		buf = appendHex16(buf, t.ElementNumber())
		return append(buf, ')')
	case KindItem:
		item := &c.data.([]Item)[i]
		if item.Delimiter {
			return append(buf, "(delimiter)"...)
		}
		buf = append(buf, "(item with "...)
		buf = strconv.AppendInt(buf, int64(len(item.Elements)), 10)
		return append(buf, " elements)"...)
	case KindValue:
		sub := c.data.([]Value)[i]
		for j := 0; j < sub.NumberOfValues(); j++ {
			if j > 0 {
				buf = append(buf, '\\')
			}
			buf = sub.AppendValueToString(buf, j)
		}
		return buf
	}
	return numberAt(c, i).appendText(buf)
}

func appendHex16(buf []byte, x uint16) []byte {
	const digits = "0123456789ABCDEF"
	return append(buf, digits[x>>12], digits[x>>8&0xF], digits[x>>4&0xF], digits[x&0xF])
}

// String returns all values of v separated by backslashes. Sequences are rendered item by item
// and large OB or UN values are summarized by their length.
func (v Value) String() string {
	return v.string(0)
}

func (v Value) string(indentLvl int) string {
	c := v.live()
	if c == nil {
		return ""
	}

	switch {
	case c.kind == KindItem:
		return v.sequence().string(indentLvl)
	case c.kind == KindUint8 && (c.n > maxRenderedBytes || c.vl == UndefinedLength):
		return "[" + strconv.FormatUint(uint64(c.n), 10) + " bytes]"
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	var scratch []byte
	for i := 0; i < int(c.n); i++ {
		if i > 0 {
			buf.WriteByte('\\')
		}
		scratch = v.AppendValueToString(scratch[:0], i)
		buf.Write(scratch)
	}
	return string(buf.Bytes())
}

// sequence wraps the items of an SQ value for printing
func (v Value) sequence() *Sequence {
	items := v.Items()
	seq := &Sequence{Items: make([]*Item, len(items))}
	for i := range items {
		seq.Items[i] = &items[i]
	}
	return seq
}
