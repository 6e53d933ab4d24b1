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

import "testing"

func TestTag_String(t *testing.T) {
	got := ItemTag.String()
	want := "(FFFE,E000)"
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTag_ElementNumber(t *testing.T) {
	tag := Tag(0xFEDCBA98)
	if tag.ElementNumber() != 0xBA98 {
		t.Fatalf("got %v, want %v", tag.ElementNumber(), 0xBA98)
	}
}

func TestTag_GroupNumber(t *testing.T) {
	tag := Tag(0xFEDCBA98)
	if tag.GroupNumber() != 0xFEDC {
		t.Fatalf("got %v, want %v", tag.GroupNumber(), 0xFEDC)
	}
}

func TestNewTag(t *testing.T) {
	if got := NewTag(0x7FE0, 0x0010); got != PixelDataTag {
		t.Fatalf("NewTag(0x7FE0, 0x0010) => %v, want %v", got, PixelDataTag)
	}
}

func TestTag_IsPrivate(t *testing.T) {
	tests := []struct {
		name string
		tag  Tag
		want bool
	}{
		{
			"when group number is odd, the tag is considered private",
			Tag(0x00010000),
			true,
		},
		{
			"when group number is even, the tag is considered non-private",
			PixelDataTag,
			false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.tag.IsPrivate()
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTag_Compare(t *testing.T) {
	testCases := []struct {
		name string
		a, b Tag
		want int
	}{
		{"group orders first", NewTag(0x0008, 0xFFFF), NewTag(0x0010, 0x0000), -1},
		{"element orders within group", NewTag(0x0010, 0x0020), NewTag(0x0010, 0x0010), 1},
		{"equal", PixelDataTag, NewTag(0x7FE0, 0x0010), 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Compare(tc.b); got != tc.want {
				t.Fatalf("%v.Compare(%v) => %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}
