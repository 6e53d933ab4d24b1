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
	"slices"
	"strings"
)

// Item models a DICOM sequence item, a nested Data Set as defined in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
type Item struct {
	// Elements is a map of Data Element tags to the Value of the element. The Item holds one
	// share of every Value in the map.
	Elements map[Tag]Value

	// Delimiter marks an item or sequence delimitation item kept in a sequence that was read
	// with undefined length
	Delimiter bool
}

// NewItem returns an empty Item
func NewItem() *Item {
	return &Item{Elements: map[Tag]Value{}}
}

// Set stores a share of v under tag, releasing any previous value. Setting an invalid Value
// removes the tag.
func (it *Item) Set(tag Tag, v Value) {
	if it.Elements == nil {
		it.Elements = map[Tag]Value{}
	}
	old, ok := it.Elements[tag]
	if v.IsValid() {
		it.Elements[tag] = v.Copy()
	} else {
		delete(it.Elements, tag)
	}
	if ok {
		old.Clear()
	}
}

// Get returns the Value stored under tag, or an invalid Value. The result borrows the share held
// by the Item.
func (it *Item) Get(tag Tag) Value {
	return it.Elements[tag]
}

// SortedTags returns the tags of the Item in ascending order
func (it *Item) SortedTags() []Tag {
	tags := make([]Tag, 0, len(it.Elements))
	for tag := range it.Elements {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// Copy returns an Item that shares the values of it
func (it *Item) Copy() Item {
	ret := Item{Delimiter: it.Delimiter}
	if it.Elements != nil {
		ret.Elements = make(map[Tag]Value, len(it.Elements))
		for tag, v := range it.Elements {
			ret.Elements[tag] = v.Copy()
		}
	}
	return ret
}

// Release drops the shares held by the Item and empties it
func (it *Item) Release() {
	for tag, v := range it.Elements {
		v.Clear()
		delete(it.Elements, tag)
	}
}

// Equal is true if both Items hold equal values under the same tags
func (it *Item) Equal(o *Item) bool {
	if it.Delimiter != o.Delimiter || len(it.Elements) != len(o.Elements) {
		return false
	}
	for tag, v := range it.Elements {
		ov, ok := o.Elements[tag]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

func (it *Item) String() string {
	return it.string(0)
}

func (it *Item) string(indentLvl int) string {
	indent := strings.Repeat("  ", indentLvl)
	if it.Delimiter {
		return indent + "(delimiter)"
	}
	lines := make([]string, 0, len(it.Elements))
	for _, tag := range it.SortedTags() {
		v := it.Elements[tag]
		lines = append(lines, fmt.Sprintf("%s%v %v %s", indent, tag, v.VR(), v.string(indentLvl)))
	}
	return strings.Join(lines, "\n")
}
