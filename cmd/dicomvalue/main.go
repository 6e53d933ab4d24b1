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

// Command dicomvalue builds, converts and decodes DICOM values from the command line.
package main

import (
	"log"
	"os"

	"github.com/alecthomas/kong"
)

type cli struct {
	Show    showCmd    `cmd:"" help:"Show the VR, length and values of a value built from text."`
	Convert convertCmd `cmd:"" help:"Convert every value to another type."`
	CSV     csvCmd     `cmd:"" name:"csv" help:"Render VR=VALUE pairs as one CSV line."`
	Decode  decodeCmd  `cmd:"" help:"Decode a raw value field read from a file."`
}

func main() {
	log.SetFlags(0)

	var args cli
	ctx := kong.Parse(&args,
		kong.Name("dicomvalue"),
		kong.Description("Build, convert and decode DICOM data element values."),
		kong.UsageOnError(),
	)

	if err := ctx.Run(&runContext{out: os.Stdout}); err != nil {
		log.Fatal(err)
	}
}
