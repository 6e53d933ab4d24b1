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
)

// countValues returns the number of values in the text b stored under vr.
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.4
func countValues(vr *VR, b []byte) int {
	if len(b) == 0 {
		return 0
	}
	if !vr.IsDelimited() {
		return 1
	}
	return bytes.Count(b, []byte{'\\'}) + 1
}

// substring returns the byte range [start, end) of the i'th value in the text b. For
// text that cannot hold multiple values, index 0 is the whole text. An index that is out of range
// gives an empty range.
func substring(vr *VR, b []byte, i int) (start, end int) {
	if i < 0 || len(b) == 0 {
		return 0, 0
	}
	if !vr.IsDelimited() {
		if i != 0 {
			return 0, 0
		}
		return 0, len(b)
	}

	for ; i > 0; i-- {
		j := bytes.IndexByte(b[start:], '\\')
		if j < 0 {
			return 0, 0
		}
		start += j + 1
	}
	end = len(b)
	if j := bytes.IndexByte(b[start:], '\\'); j >= 0 {
		end = start + j
	}
	return start, end
}

// field returns the i'th value of the text b with padding removed. Leading and trailing spaces
// are insignificant for delimited text, only trailing spaces for LT, ST, UT and UR. UI is padded
// with nulls. Other control characters are part of the value.
func field(vr *VR, b []byte, i int) []byte {
	start, end := substring(vr, b, i)
	s := b[start:end]

	switch vr.kind {
	case uniqueIdentifierVR:
		return bytes.Trim(s, "\x00 ")
	case longTextVR:
		return bytes.TrimRightFunc(s, isPadding)
	default:
		return bytes.TrimFunc(s, isPadding)
	}
}

func isPadding(r rune) bool {
	return r == ' ' || r == 0x00
}
