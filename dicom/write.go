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
	"errors"
	"fmt"
	"io"
)

// WriteValue encodes the value field of v to w, the inverse of ReadValue. Text and bytes are
// written with their padding, so the number of bytes written equals VL. Encapsulated data of
// undefined length is followed by a sequence delimitation item.
func WriteValue(w io.Writer, v Value, order binary.ByteOrder) error {
	c := v.live()
	if c == nil {
		return errors.New("writing invalid value")
	}

	dw := &dcmWriter{w}
	switch c.kind {
	case KindChars:
		return writeText(dw, c)
	case KindUint8:
		return writeBytes(dw, c, order)
	case KindTag:
		return writeTags(dw, dataOf[Tag](c), order)
	case KindInt16, KindUint16, KindInt32, KindUint32, KindFloat32, KindFloat64:
		if err := dw.Numbers(order, c.data); err != nil {
			return fmt.Errorf("writing %v values: %v", c.vr, err)
		}
		return nil
	}
	return fmt.Errorf("writing %v value: %w", c.vr, ErrUnsupportedVR)
}

func writeText(dw *dcmWriter, c *cell) error {
	if err := dw.Bytes(dataOf[byte](c)); err != nil {
		return fmt.Errorf("writing text field value: %v", err)
	}
	return nil
}

func writeBytes(dw *dcmWriter, c *cell, order binary.ByteOrder) error {
	b := dataOf[byte](c)
	if c.vl != UndefinedLength {
		if err := dw.Bytes(b[:c.vl]); err != nil {
			return fmt.Errorf("writing bulk data: %v", err)
		}
		return nil
	}

	// UndefinedLength is always the encapsulated format
	if err := dw.Bytes(b[:c.n]); err != nil {
		return fmt.Errorf("writing fragments: %v", err)
	}
	return dw.Delimiter(order, SequenceDelimitationItemTag)
}

func writeTags(dw *dcmWriter, tags []Tag, order binary.ByteOrder) error {
	for _, t := range tags {
		if err := dw.Tag(order, t); err != nil {
			return fmt.Errorf("writing tag: %v", err)
		}
	}
	return nil
}
