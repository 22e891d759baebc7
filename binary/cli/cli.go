// Copyright 2025 Google LLC
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

// Package cli defines the structures to store the CLI flags used by the purl
// binary.
package cli

import (
	"fmt"
	"slices"
)

// Output formats supported by the purl binary.
const (
	// FormatPURL prints one canonical purl string per input line.
	FormatPURL = "purl"
	// FormatJSON prints one JSON object per input line.
	FormatJSON = "json"
	// FormatCDXJSON emits all inputs as a CycloneDX JSON document.
	FormatCDXJSON = "cdx-json"
	// FormatCDXXML emits all inputs as a CycloneDX XML document.
	FormatCDXXML = "cdx-xml"
	// FormatSPDX23JSON emits all inputs as an SPDX 2.3 JSON document.
	FormatSPDX23JSON = "spdx23-json"
)

var supportedFormats = []string{
	FormatPURL, FormatJSON, FormatCDXJSON, FormatCDXXML, FormatSPDX23JSON,
}

// Flags contains a field for all the cli flags that can be set.
type Flags struct {
	// Validate reports validity only instead of printing canonical forms.
	Validate bool
	// Format is the output format, one of the Format* constants.
	Format string
	// ResultFile is the output path; empty means stdout.
	ResultFile string
	// NPMIndex enables the compiled-in npm legacy/builtin name index.
	NPMIndex bool
	// Verbose enables debug logging.
	Verbose bool
}

// ValidateFlags validates the passed command line flags.
func ValidateFlags(flags *Flags) error {
	if !slices.Contains(supportedFormats, flags.Format) {
		return fmt.Errorf("--format: unsupported output format %q, must be one of %v", flags.Format, supportedFormats)
	}
	if flags.Validate && flags.Format != FormatPURL {
		return fmt.Errorf("--validate cannot be combined with --format=%s", flags.Format)
	}
	return nil
}
