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
	"slices"
	"testing"
)

func TestItem_SetGet(t *testing.T) {
	name := NewString(PNVR, "Doe^John")
	defer name.Clear()

	item := NewItem()
	item.Set(NewTag(0x0010, 0x0010), name)
	if name.RefCount() != 2 {
		t.Fatalf("after Set RefCount() => %v, want %v", name.RefCount(), 2)
	}
	if got := item.Get(NewTag(0x0010, 0x0010)); !got.Equal(name) {
		t.Fatalf("Get(_) => %v, want %v", got, name)
	}

	item.Set(NewTag(0x0010, 0x0010), NewString(PNVR, "Roe^Jane"))
	if name.RefCount() != 1 {
		t.Fatalf("after replace RefCount() => %v, want %v", name.RefCount(), 1)
	}
	if got := item.Get(NewTag(0x0010, 0x0010)).AsString(); got != "Roe^Jane" {
		t.Fatalf("Get(_).AsString() => %q, want %q", got, "Roe^Jane")
	}

	item.Set(NewTag(0x0010, 0x0010), Value{})
	if _, ok := item.Elements[NewTag(0x0010, 0x0010)]; ok {
		t.Fatalf("setting an invalid value kept the tag")
	}
	if got := item.Get(NewTag(0x0010, 0x0020)); got.IsValid() {
		t.Fatalf("Get of a missing tag => %v, want invalid", got)
	}
}

func TestItem_SetOnZeroItem(t *testing.T) {
	var item Item
	item.Set(PixelDataTag, NewBytes(OBVR, sampleBytes))
	defer item.Release()
	if len(item.Elements) != 1 {
		t.Fatalf("len(Elements) => %v, want %v", len(item.Elements), 1)
	}
}

func TestItem_SortedTags(t *testing.T) {
	item := NewItem()
	defer item.Release()
	item.Set(PixelDataTag, NewBytes(OBVR, sampleBytes))
	item.Set(NewTag(0x0008, 0x0005), NewString(CSVR, "ISO_IR 100"))
	item.Set(NewTag(0x0010, 0x0010), NewString(PNVR, "Doe^John"))

	want := []Tag{NewTag(0x0008, 0x0005), NewTag(0x0010, 0x0010), PixelDataTag}
	if got := item.SortedTags(); !slices.Equal(got, want) {
		t.Fatalf("SortedTags() => %v, want %v", got, want)
	}
}

func TestItem_CopyRelease(t *testing.T) {
	name := NewString(PNVR, "Doe^John")
	defer name.Clear()
	item := NewItem()
	item.Set(NewTag(0x0010, 0x0010), name)

	cp := item.Copy()
	if name.RefCount() != 3 {
		t.Fatalf("after Copy RefCount() => %v, want %v", name.RefCount(), 3)
	}
	if !cp.Equal(item) {
		t.Fatalf("Copy() => %v, want %v", &cp, item)
	}

	item.Release()
	cp.Release()
	if name.RefCount() != 1 {
		t.Fatalf("after Release RefCount() => %v, want %v", name.RefCount(), 1)
	}
	if len(item.Elements) != 0 {
		t.Fatalf("Release left %v elements", len(item.Elements))
	}
}

func TestItem_Equal(t *testing.T) {
	a := createSingletonSequence(map[Tag]Value{NewTag(0x0010, 0x0010): NewString(PNVR, "Doe^John")}).Items[0]
	b := createSingletonSequence(map[Tag]Value{NewTag(0x0010, 0x0010): NewString(PNVR, "Doe^John")}).Items[0]
	c := createSingletonSequence(map[Tag]Value{NewTag(0x0010, 0x0020): NewString(LOVR, "Doe^John")}).Items[0]
	defer a.Release()
	defer b.Release()
	defer c.Release()

	if !a.Equal(b) {
		t.Fatalf("%v.Equal(%v) => false, want true", a, b)
	}
	if a.Equal(c) {
		t.Fatalf("%v.Equal(%v) => true, want false", a, c)
	}
	if a.Equal(&Item{Delimiter: true}) {
		t.Fatalf("an item equals a delimiter")
	}
}

func TestSequence_String(t *testing.T) {
	inner := createSingletonSequence(map[Tag]Value{NewTag(0x0020, 0x000E): NewString(UIVR, "1.2")})
	sq := NewSequenceValue(inner)
	defer sq.Clear()
	inner.Items[0].Release()

	outer := createSingletonSequence(map[Tag]Value{NewTag(0x0008, 0x1115): sq})
	outer.Append(&Item{Delimiter: true})
	defer outer.Items[0].Release()

	want := "\n  (0008,1115) SQ \n    (0020,000E) UI 1.2\n  (delimiter)"
	if got := outer.String(); got != want {
		t.Fatalf("String() => %q, want %q", got, want)
	}
}

func TestSequence_Append(t *testing.T) {
	var seq Sequence
	seq.Append(NewItem())
	seq.Append(&Item{Delimiter: true})
	if len(seq.Items) != 2 || !seq.Items[1].Delimiter {
		t.Fatalf("Append(_) => %v items, want 2 ending with a delimiter", len(seq.Items))
	}

	v := NewSequenceValue(&seq)
	defer v.Clear()
	if v.NumberOfValues() != 2 {
		t.Fatalf("NumberOfValues() => %v, want %v", v.NumberOfValues(), 2)
	}
	if item, ok := v.ItemAt(1); !ok || !item.Delimiter {
		t.Fatalf("ItemAt(1) => %v, %v, want a delimiter", item, ok)
	}
}

func TestValue_ItemAtCopyKeepsSequence(t *testing.T) {
	seq := createSingletonSequence(map[Tag]Value{NewTag(0x0010, 0x0010): NewString(PNVR, "Doe^John")})
	v := NewSequenceValue(seq)
	defer v.Clear()
	seq.Items[0].Release()
	shared := v.Copy()
	defer shared.Clear()

	borrowed, ok := v.ItemAt(0)
	if !ok {
		t.Fatalf("ItemAt(0) => false, want true")
	}
	edited := borrowed.Copy()
	edited.Set(NewTag(0x0010, 0x0010), NewString(PNVR, "Roe^Jane"))
	defer edited.Release()

	var updated Value
	updated.AssignSequence(&Sequence{Items: []*Item{&edited}})
	defer updated.Clear()

	if got := shared.Items()[0].Get(NewTag(0x0010, 0x0010)).AsString(); got != "Doe^John" {
		t.Fatalf("shared sequence holds %q after editing a copy, want %q", got, "Doe^John")
	}
	if got := updated.Items()[0].Get(NewTag(0x0010, 0x0010)).AsString(); got != "Roe^Jane" {
		t.Fatalf("updated sequence holds %q, want %q", got, "Roe^Jane")
	}
}
