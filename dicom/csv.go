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
	"io"
	"strings"

	"github.com/delaneyj/toolbelt/bytebufferpool"
	"golang.org/x/text/encoding"
)

// FormatDate converts a DA, TM or DT value to YYYY-MM-DD, HH:MM:SS or YYYY-MM-DD HH:MM:SS.
// Fractional seconds and time zone offsets are dropped. It returns "" for other VRs and for
// values too short to hold a complete date or time.
func FormatDate(s string, vr *VR) string {
	switch {
	case vr == TMVR && len(s) >= 6:
		return s[0:2] + ":" + s[2:4] + ":" + s[4:6]
	case vr == DAVR && len(s) >= 8:
		return s[0:4] + "-" + s[4:6] + "-" + s[6:8]
	case vr == DTVR && len(s) >= 14:
		return s[0:4] + "-" + s[4:6] + "-" + s[6:8] + " " + s[8:10] + ":" + s[10:12] + ":" + s[12:14]
	}
	return ""
}

// QuoteCSV doubles every double quote in s, as required inside a quoted field by RFC 4180
func QuoteCSV(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}

// AppendCSVField appends v as one CSV field to buf:
//   - a single binary number (SS, US, SL, UL, FL, FD) is written unquoted.
//   - a single date or time is quoted and formatted with FormatDate; several are an empty
//     quoted field.
//   - sequences and invalid values are left empty.
//   - anything else with a defined, non-zero length is quoted UTF-8 text, decoded with enc.
func AppendCSVField(buf []byte, v Value, enc encoding.Encoding) ([]byte, error) {
	vr := v.VR()
	switch {
	case !v.IsValid(), vr.IsSequence():
		return buf, nil
	case vr.IsBinaryNumber() && v.NumberOfValues() == 1:
		return v.AppendValueToString(buf, 0), nil
	case vr == DAVR || vr == TMVR || vr == DTVR:
		buf = append(buf, '"')
		buf = append(buf, FormatDate(v.AsString(), vr)...)
		return append(buf, '"'), nil
	case v.VL() != 0 && v.VL() != UndefinedLength:
		s, err := v.AsUTF8String(enc)
		if err != nil {
			return buf, fmt.Errorf("converting %v value to UTF-8: %v", vr, err)
		}
		buf = append(buf, '"')
		buf = append(buf, QuoteCSV(s)...)
		return append(buf, '"'), nil
	}
	return buf, nil
}

// WriteCSVRow writes values as one comma separated line terminated by CRLF
func WriteCSVRow(w io.Writer, values []Value, enc encoding.Encoding) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	var field []byte
	for i, v := range values {
		if i > 0 {
			buf.WriteByte(',')
		}
		var err error
		field, err = AppendCSVField(field[:0], v, enc)
		if err != nil {
			return fmt.Errorf("field %d: %v", i, err)
		}
		buf.Write(field)
	}
	buf.WriteString("\r\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing csv row: %v", err)
	}
	return nil
}
