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
	"encoding/binary"
	"fmt"
	"io"
)

// dcmReader is a wrapper around io.Reader, providing convenience methods for
// reading tags, numbers and raw bytes of a value field
type dcmReader struct {
	cr *countReader
}

func newDcmReader(r io.Reader) *dcmReader {
	return &dcmReader{&countReader{r, 0}}
}

func (dr *dcmReader) Tag(order binary.ByteOrder) (Tag, error) {
	group, err := dr.UInt16(order)
	if err != nil {
		return 0, err
	}
	element, err := dr.UInt16(order)
	if err != nil {
		return 0, err
	}

	return NewTag(group, element), nil
}

// Full fills b from the input stream
func (dr *dcmReader) Full(b []byte) error {
	gotN, err := io.ReadFull(dr.cr, b)
	if err == io.ErrUnexpectedEOF || (err == io.EOF && len(b) > 0) {
		return fmt.Errorf("expected %d bytes but got %d at offset %d", len(b), gotN, dr.cr.bytesRead)
	}
	return err
}

// Numbers fills data, a slice of fixed size numbers, from the input stream
func (dr *dcmReader) Numbers(order binary.ByteOrder, data any) error {
	if err := binary.Read(dr.cr, order, data); err != nil {
		return fmt.Errorf("binary.Read(_, _, _) => %v", err)
	}
	return nil
}

// UInt32 returns a uint32 from the input stream
func (dr *dcmReader) UInt32(byteOrder binary.ByteOrder) (uint32, error) {
	var b uint32
	err := binary.Read(dr.cr, byteOrder, &b)
	return b, err
}

// UInt16 returns a uint16 from the input stream
func (dr *dcmReader) UInt16(byteOrder binary.ByteOrder) (uint16, error) {
	var b uint16
	err := binary.Read(dr.cr, byteOrder, &b)
	return b, err
}

// Offset is the number of bytes consumed so far
func (dr *dcmReader) Offset() int64 {
	return dr.cr.bytesRead
}

// countReader is an io.Reader that counts how many bytes read
type countReader struct {
	r         io.Reader
	bytesRead int64 // number of bytes read
}

func (cr *countReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.bytesRead += int64(n)
	return n, err
}

// skip advances the input stream by n bytes
func (dr *dcmReader) skip(n int64) error {
	if n == 0 {
		return nil
	}
	if _, err := io.CopyN(io.Discard, dr.cr, n); err != nil {
		return fmt.Errorf("skipping %d bytes at offset %d: %v", n, dr.cr.bytesRead, err)
	}
	return nil
}
