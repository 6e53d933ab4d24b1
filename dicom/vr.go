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
)

// vrType is to group common encodings together
type vrType int

const (
	// textVR is for backslash delimited text with space padding
	textVR vrType = iota

	// longTextVR is for text that is always a single value (LT, ST, UT, UR)
	longTextVR

	// uniqueIdentifierVR is for VR: UI. It has null padding
	uniqueIdentifierVR

	// numberBinaryVR is for value fields that are parsed as binary numbers
	numberBinaryVR

	// bulkDataVR groups the "other" sequences of binary numbers (OB, OW, OL, OF, OD)
	bulkDataVR

	// unknownVR is for VR: UN. Every byte counts as one value
	unknownVR

	// sequenceVR is for VR: SQ and XQ
	sequenceVR

	// tagVR is for tags. Distinct from numberBinaryVR due to little endian byte ordering
	tagVR
)

// UndefinedLength as specified
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.1
const UndefinedLength = 0xffffffff

// VR models the DICOM Value representations (VR)
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
type VR struct {
	// Name represents the 2-character VR Code
	Name string

	kind vrType
}

func (vr *VR) String() string {
	if vr == nil {
		return "??"
	}
	return vr.Name
}

// IsText is true for all VRs whose values are stored as characters
func (vr *VR) IsText() bool {
	return vr != nil && (vr.kind == textVR || vr.kind == longTextVR || vr.kind == uniqueIdentifierVR)
}

// IsDelimited is true if the VR allows multiple backslash-separated values
func (vr *VR) IsDelimited() bool {
	return vr != nil && (vr.kind == textVR || vr.kind == uniqueIdentifierVR)
}

// IsBinaryNumber is true for the fixed size binary number VRs (SS, US, SL, UL, FL, FD)
func (vr *VR) IsBinaryNumber() bool {
	return vr != nil && vr.kind == numberBinaryVR
}

// IsSequence is true for SQ and XQ
func (vr *VR) IsSequence() bool {
	return vr != nil && vr.kind == sequenceVR
}

// HasNumericValue is true for VRs whose values are numbers, either binary or encoded as text
func (vr *VR) HasNumericValue() bool {
	return vr != nil && (vr.kind == numberBinaryVR || vr == ISVR || vr == DSVR)
}

// HasSpecificCharacterSet is true if the text of the VR is encoded with the
// Specific Character Set (0008,0005) of the data set.
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.1.2.3
func (vr *VR) HasSpecificCharacterSet() bool {
	switch vr {
	case SHVR, LOVR, STVR, LTVR, PNVR, UCVR, UTVR:
		return true
	}
	return false
}

// permits reports whether values of the given kind may be stored under the VR
func (vr *VR) permits(k Kind) bool {
	if vr == nil {
		return false
	}
	if k == KindValue {
		// multiplexed values may be created for any VR
		return true
	}
	switch vr.kind {
	case textVR, longTextVR, uniqueIdentifierVR:
		return k == KindChars
	case unknownVR:
		return k == KindUint8
	case tagVR:
		return k == KindTag
	case sequenceVR:
		return k == KindItem
	}
	switch vr {
	case SSVR:
		return k == KindInt16
	case USVR:
		return k == KindUint16
	case SLVR:
		return k == KindInt32
	case ULVR:
		return k == KindUint32
	case FLVR, OFVR:
		return k == KindFloat32
	case FDVR, ODVR:
		return k == KindFloat64
	case OBVR:
		return k == KindUint8
	case OWVR:
		return k == KindUint16 || k == KindInt16
	case OLVR:
		return k == KindUint32 || k == KindInt32
	}
	return false
}

// nativeKind is the kind used when data of another kind is converted on construction
func (vr *VR) nativeKind() Kind {
	switch vr.kind {
	case textVR, longTextVR, uniqueIdentifierVR:
		return KindChars
	case unknownVR:
		return KindUint8
	case tagVR:
		return KindTag
	case sequenceVR:
		return KindItem
	}
	switch vr {
	case SSVR:
		return KindInt16
	case USVR, OWVR:
		return KindUint16
	case SLVR:
		return KindInt32
	case ULVR, OLVR:
		return KindUint32
	case FLVR, OFVR:
		return KindFloat32
	case FDVR, ODVR:
		return KindFloat64
	case OBVR:
		return KindUint8
	}
	return kindInvalid
}

// paddingByte is appended to odd length character or byte data
func (vr *VR) paddingByte() byte {
	if vr.kind == textVR || vr.kind == longTextVR {
		return ' '
	}
	return 0x00
}

var vrLookupMap = map[string]*VR{}

func newVR(text string, vrType vrType) *VR {
	vr := &VR{text, vrType}
	vrLookupMap[vr.Name] = vr

	return vr
}

// LookupVR returns the VR with the given 2-character code
func LookupVR(name string) (*VR, error) {
	r, ok := vrLookupMap[name]
	if !ok {
		return nil, fmt.Errorf("unknown vr name: %v", name)
	}
	return r, nil
}

// VR list obtained from
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
var (
	// textual VRs
	CSVR = newVR("CS", textVR)
	SHVR = newVR("SH", textVR)
	LOVR = newVR("LO", textVR)
	STVR = newVR("ST", longTextVR)
	LTVR = newVR("LT", longTextVR)
	ASVR = newVR("AS", textVR)

	// person name
	PNVR = newVR("PN", textVR)

	// application entity
	AEVR = newVR("AE", textVR)

	// dates/time VR
	DAVR = newVR("DA", textVR)
	TMVR = newVR("TM", textVR)
	DTVR = newVR("DT", textVR)

	// textual numbers
	ISVR = newVR("IS", textVR)
	DSVR = newVR("DS", textVR)

	// binary numbers
	SSVR = newVR("SS", numberBinaryVR)
	USVR = newVR("US", numberBinaryVR)
	SLVR = newVR("SL", numberBinaryVR)
	ULVR = newVR("UL", numberBinaryVR)
	FLVR = newVR("FL", numberBinaryVR)
	FDVR = newVR("FD", numberBinaryVR)

	// large binary sequences
	OBVR = newVR("OB", bulkDataVR)
	ODVR = newVR("OD", bulkDataVR)
	OLVR = newVR("OL", bulkDataVR)
	OWVR = newVR("OW", bulkDataVR)
	OFVR = newVR("OF", bulkDataVR)

	// unlimited char
	UCVR = newVR("UC", textVR)

	// unknown
	UNVR = newVR("UN", unknownVR)

	// URL
	URVR = newVR("UR", longTextVR)

	// unlimited text
	UTVR = newVR("UT", longTextVR)

	// attribute tag
	ATVR = newVR("AT", tagVR)

	// unique identifier
	UIVR = newVR("UI", uniqueIdentifierVR)

	// sequence
	SQVR = newVR("SQ", sequenceVR)

	// sequence with undefined length, used while building nested items
	XQVR = newVR("XQ", sequenceVR)
)
