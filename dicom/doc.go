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

// Package dicom provides a typed container for the values of DICOM data elements.
//
// A Value holds the value representation (VR), the value length and the values themselves in the
// Go type that suits the VR: characters for text, bytes for OB and UN, 16 or 32-bit integers,
// float32 or float64, attribute tags, sequence items or nested values for multiplexed data. The
// payload is shared between copies of a Value and reference counted, so Values can be passed
// around and stored in Items cheaply. Accessors convert on read, for example an IS value can be
// read as an int32 and a US value as a string.
//
// Values are built with the New* constructors or with the Allocate* methods, which hand out the
// storage to fill in place. ReadValue and WriteValue decode and encode a single value field for
// a known VR and length; they are not a parser for complete DICOM streams.
package dicom
