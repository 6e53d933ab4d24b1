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

package main

import (
	"bufio"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/GoogleCloudPlatform/go-dicom-value/dicom"
	"golang.org/x/text/encoding"
)

// runContext is bound to the Run method of every command
type runContext struct {
	out io.Writer
}

type showCmd struct {
	VR      string `name:"vr" required:"" help:"Value representation, for example US or DS."`
	Charset string `help:"Specific Character Set defined term, for example \"ISO_IR 100\"."`
	CBOR    bool   `name:"cbor" help:"Also print the CBOR encoding in hex."`
	Value   string `arg:"" help:"Backslash separated values."`
}

func (c *showCmd) Run(rc *runContext) error {
	enc, err := dicom.LookupCharacterSet(c.Charset)
	if err != nil {
		return err
	}
	v, err := parseValue(c.VR, c.Value, enc)
	if err != nil {
		return err
	}
	defer v.Clear()
	return showValue(rc.out, v, enc, c.CBOR)
}

type convertCmd struct {
	VR    string `name:"vr" required:"" help:"Value representation of the input."`
	As    string `name:"as" required:"" enum:"string,uint8,int16,uint16,int32,uint32,float32,float64,tag" help:"Type to convert to (${enum})."`
	Value string `arg:"" help:"Backslash separated values."`
}

func (c *convertCmd) Run(rc *runContext) error {
	v, err := parseValue(c.VR, c.Value, nil)
	if err != nil {
		return err
	}
	defer v.Clear()

	for i := 0; i < v.NumberOfValues(); i++ {
		s, ok := convertAt(v, i, c.As)
		if !ok {
			fmt.Fprintf(rc.out, "[%d] cannot convert to %s\n", i, c.As)
			continue
		}
		fmt.Fprintf(rc.out, "[%d] %s\n", i, s)
	}
	return nil
}

func convertAt(v dicom.Value, i int, as string) (string, bool) {
	switch as {
	case "string":
		return formatAt[string](v, i)
	case "uint8":
		return formatAt[uint8](v, i)
	case "int16":
		return formatAt[int16](v, i)
	case "uint16":
		return formatAt[uint16](v, i)
	case "int32":
		return formatAt[int32](v, i)
	case "uint32":
		return formatAt[uint32](v, i)
	case "float32":
		return formatAt[float32](v, i)
	case "float64":
		return formatAt[float64](v, i)
	case "tag":
		return formatAt[dicom.Tag](v, i)
	}
	return "", false
}

func formatAt[T dicom.Scalar](v dicom.Value, i int) (string, bool) {
	x, ok := dicom.Get[T](v, i)
	return fmt.Sprint(x), ok
}

type csvCmd struct {
	Charset string   `help:"Specific Character Set defined term used to store the text."`
	Fields  []string `arg:"" help:"Fields as VR=VALUE, for example DA=20240102."`
}

func (c *csvCmd) Run(rc *runContext) error {
	enc, err := dicom.LookupCharacterSet(c.Charset)
	if err != nil {
		return err
	}

	values := make([]dicom.Value, 0, len(c.Fields))
	defer func() {
		for i := range values {
			values[i].Clear()
		}
	}()
	for _, f := range c.Fields {
		vr, text, ok := strings.Cut(f, "=")
		if !ok {
			return fmt.Errorf("field %q is not VR=VALUE", f)
		}
		v, err := parseValue(vr, text, enc)
		if err != nil {
			return err
		}
		values = append(values, v)
	}
	return dicom.WriteCSVRow(rc.out, values, enc)
}

type decodeCmd struct {
	VR        string `name:"vr" required:"" help:"Value representation of the value field."`
	Syntax    string `default:"1.2.840.10008.1.2.1" help:"Transfer syntax UID that selects the byte order."`
	BigEndian bool   `help:"Read big endian regardless of the transfer syntax."`
	Length    int64  `default:"-1" help:"Length of the value field, the file size if negative."`
	Undefined bool   `help:"Read encapsulated data of undefined length."`
	Charset   string `help:"Specific Character Set defined term used to decode text."`
	CBOR      bool   `name:"cbor" help:"Also print the CBOR encoding in hex."`
	File      string `arg:"" type:"existingfile" help:"File holding the raw value field."`
}

func (c *decodeCmd) Run(rc *runContext) error {
	vr, err := dicom.LookupVR(strings.ToUpper(c.VR))
	if err != nil {
		return err
	}
	enc, err := dicom.LookupCharacterSet(c.Charset)
	if err != nil {
		return err
	}
	syntax := dicom.LookupTransferSyntax(c.Syntax)
	if syntax.Deflated {
		return fmt.Errorf("transfer syntax %s is deflated; inflate the data set before decoding a value field", syntax.UID)
	}
	var order binary.ByteOrder = syntax.ByteOrder
	if c.BigEndian {
		order = binary.BigEndian
	}

	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("opening value field: %v", err)
	}
	defer f.Close()

	var length uint32
	switch {
	case c.Undefined:
		length = dicom.UndefinedLength
	case c.Length >= 0:
		length = uint32(c.Length)
	default:
		info, err := f.Stat()
		if err != nil {
			return fmt.Errorf("reading file size: %v", err)
		}
		length = uint32(info.Size())
	}

	v, err := dicom.ReadValue(bufio.NewReader(f), vr, length, order)
	if err != nil {
		return fmt.Errorf("decoding %s: %v", c.File, err)
	}
	defer v.Clear()
	return showValue(rc.out, v, enc, c.CBOR)
}

// parseValue builds a value of the named VR from backslash separated text given in UTF-8. Text
// VRs store the text in enc; other VRs parse each value as a number, or as (GGGG,EEEE) for AT.
func parseValue(vrName, text string, enc encoding.Encoding) (dicom.Value, error) {
	vr, err := dicom.LookupVR(strings.ToUpper(vrName))
	if err != nil {
		return dicom.Value{}, err
	}

	var v dicom.Value
	switch {
	case vr.IsText():
		stored := text
		if vr.HasSpecificCharacterSet() && enc != nil {
			stored, err = enc.NewEncoder().String(text)
			if err != nil {
				return dicom.Value{}, fmt.Errorf("encoding %q in the character set: %v", text, err)
			}
		}
		v = dicom.NewString(vr, stored)
	case vr == dicom.ATVR:
		tags, err := parseTags(text)
		if err != nil {
			return dicom.Value{}, err
		}
		v = dicom.NewTags(vr, tags)
	case vr == dicom.OBVR || vr == dicom.UNVR:
		b, err := hex.DecodeString(text)
		if err != nil {
			return dicom.Value{}, fmt.Errorf("%v values are given in hex: %v", vr, err)
		}
		v = dicom.NewBytes(vr, b)
	default:
		v = dicom.NewStrings(vr, strings.Split(text, "\\"))
	}

	if !v.IsValid() {
		return dicom.Value{}, fmt.Errorf("%q cannot be stored as %v", text, vr)
	}
	return v, nil
}

var tagPunctuation = strings.NewReplacer("(", "", ")", "", ",", "", " ", "")

// parseTags reads backslash separated tags written as (GGGG,EEEE) or GGGGEEEE
func parseTags(text string) ([]dicom.Tag, error) {
	var tags []dicom.Tag
	for _, s := range strings.Split(text, "\\") {
		s = tagPunctuation.Replace(s)
		x, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("parsing tag %q: %v", s, err)
		}
		tags = append(tags, dicom.Tag(x))
	}
	return tags, nil
}

func showValue(out io.Writer, v dicom.Value, enc encoding.Encoding, withCBOR bool) error {
	fmt.Fprintf(out, "VR: %v\n", v.VR())
	if v.VL() == dicom.UndefinedLength {
		fmt.Fprintf(out, "VL: undefined\n")
	} else {
		fmt.Fprintf(out, "VL: %d\n", v.VL())
	}
	fmt.Fprintf(out, "VM: %d\n", v.NumberOfValues())

	switch {
	case v.VR().IsSequence(), v.Kind() == dicom.KindUint8:
		fmt.Fprintln(out, v.String())
	default:
		for i := 0; i < v.NumberOfValues(); i++ {
			s := string(v.AppendValueToString(nil, i))
			if v.VR().IsText() {
				var err error
				if s, err = v.DecodeString(i, enc); err != nil {
					return err
				}
			}
			fmt.Fprintf(out, "[%d] %s\n", i, s)
		}
	}

	if withCBOR {
		b, err := v.MarshalCBOR()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "CBOR: %x\n", b)
	}
	return nil
}
