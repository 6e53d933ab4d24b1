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
	"encoding/binary"
	"testing"
)

var sampleBytes = []byte{1, 2, 3, 4}

func dcmReaderFromBytes(data []byte) *dcmReader {
	return newDcmReader(bytes.NewBuffer(data))
}

// readFromBytes decodes the value field b and fails the test on error
func readFromBytes(t *testing.T, b []byte, vr *VR, order binary.ByteOrder) Value {
	t.Helper()
	v, err := ReadValue(bytes.NewReader(b), vr, uint32(len(b)), order)
	if err != nil {
		t.Fatalf("ReadValue(_, %v, %d, _) => %v", vr, len(b), err)
	}
	return v
}

// stringValues returns every value of v converted with StringAt
func stringValues(v Value) []string {
	strs := make([]string, v.NumberOfValues())
	for i := range strs {
		strs[i] = v.StringAt(i)
	}
	return strs
}

func createSingletonSequence(values map[Tag]Value) *Sequence {
	item := NewItem()
	for tag, v := range values {
		item.Set(tag, v)
	}
	return &Sequence{Items: []*Item{item}}
}
