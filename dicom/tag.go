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

import "fmt"

// Tag is a unique identifier for a Data Element composed of an ordered pair of numbers called
// the group number and the element number as specified in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10.
//
// The least significant 16 bits is the element number. The most significant 16 bits is the group
// number, so comparing two Tags as integers orders them by group and then by element.
type Tag uint32

// Tags used by the value container and the value field codec
const (
	SpecificCharacterSetTag     Tag = 0x00080005
	PixelDataTag                Tag = 0x7FE00010
	ItemTag                     Tag = 0xFFFEE000
	ItemDelimitationItemTag     Tag = 0xFFFEE00D
	SequenceDelimitationItemTag Tag = 0xFFFEE0DD
)

// NewTag returns the Tag with the given group and element numbers
func NewTag(group, element uint16) Tag {
	return Tag(uint32(group)<<16 | uint32(element))
}

// GroupNumber returns the group number component of the Tag
func (t Tag) GroupNumber() uint16 {
	return uint16(t >> 16)
}

// ElementNumber returns the element number component of the Tag
func (t Tag) ElementNumber() uint16 {
	return uint16(t & 0xFFFF)
}

// IsPrivate is true if the group number is odd
func (t Tag) IsPrivate() bool {
	return t.GroupNumber()%2 == 1
}

// Compare returns -1, 0 or +1 depending on whether t sorts before, equal to or after o
func (t Tag) Compare(o Tag) int {
	switch {
	case t < o:
		return -1
	case t > o:
		return 1
	}
	return 0
}

func (t Tag) String() string {
	return fmt.Sprintf("(%04X,%04X)", t.GroupNumber(), t.ElementNumber())
}
