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
)

// list of transfer syntaxes obtained from
// http://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_A
const (
	// ImplicitVRLittleEndianUID is the Implicit VR Little Endian UID
	ImplicitVRLittleEndianUID = "1.2.840.10008.1.2"
	// ExplicitVRLittleEndianUID is the Explicit VR Little Endian UID
	ExplicitVRLittleEndianUID = "1.2.840.10008.1.2.1"
	// ExplicitVRBigEndianUID is the Explicit VR Big Endian UID
	ExplicitVRBigEndianUID = "1.2.840.10008.1.2.2"
	// DeflatedExplicitVRLittleEndianUID is the Deflated Explicit VR Little Endian UID
	DeflatedExplicitVRLittleEndianUID = "1.2.840.10008.1.2.1.99"
	// JPEGBaselineUID is the JPEG Baseline (Process 1) transfer syntax UID
	JPEGBaselineUID = "1.2.840.10008.1.2.4.50"
)

// TransferSyntax describes how the value fields of a data set are encoded
type TransferSyntax struct {
	UID string
	// ByteOrder is used for binary numbers, tags and item headers
	ByteOrder binary.ByteOrder
	// Deflated is true if the data set is compressed with deflate
	Deflated bool
}

// LookupTransferSyntax returns the encoding of value fields for a transfer syntax UID. Trailing
// padding of the UID is ignored.
func LookupTransferSyntax(uid string) TransferSyntax {
	uid = string(field(UIVR, []byte(uid), 0))
	switch uid {
	case ImplicitVRLittleEndianUID:
		return TransferSyntax{uid, binary.LittleEndian, false}
	case ExplicitVRBigEndianUID:
		return TransferSyntax{uid, binary.BigEndian, false}
	case DeflatedExplicitVRLittleEndianUID:
		return TransferSyntax{uid, binary.LittleEndian, true}
	}

	// any other syntax should be explicit VR little endian according to PS3.5 A.4
	// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_A.4
	return TransferSyntax{uid, binary.LittleEndian, false}
}

// Has32BitLength is true if the VR has a 32-bit length field in explicit VR syntaxes,
// as defined in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.2
func (vr *VR) Has32BitLength() bool {
	switch vr {
	case OBVR, ODVR, OFVR, OLVR, OWVR, SQVR, UCVR, URVR, UTVR, UNVR:
		return true
	default:
		return false
	}
}
