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

package purlrunner_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/purl/binary/cli"
	"github.com/google/purl/binary/purlrunner"
)

func TestRunCanonicalizesArgs(t *testing.T) {
	var out bytes.Buffer
	flags := &cli.Flags{Format: cli.FormatPURL}
	args := []string{"pkg:pypi/PYYaml@5.3.0", "pkg:npm/@aws-crypto/crc32@3.0.0"}

	if got := purlrunner.Run(flags, args, strings.NewReader(""), &out); got != 0 {
		t.Fatalf("Run() = %d, want 0", got)
	}
	want := "pkg:pypi/pyyaml@5.3.0\npkg:npm/%40aws-crypto/crc32@3.0.0\n"
	if out.String() != want {
		t.Errorf("Run() wrote %q, want %q", out.String(), want)
	}
}

func TestRunReadsStdin(t *testing.T) {
	var out bytes.Buffer
	flags := &cli.Flags{Format: cli.FormatPURL}
	in := strings.NewReader("pkg:cargo/rand@0.7.2\n\n  pkg:gem/jruby-launcher@1.1.2  \n")

	if got := purlrunner.Run(flags, nil, in, &out); got != 0 {
		t.Fatalf("Run() = %d, want 0", got)
	}
	want := "pkg:cargo/rand@0.7.2\npkg:gem/jruby-launcher@1.1.2\n"
	if out.String() != want {
		t.Errorf("Run() wrote %q, want %q", out.String(), want)
	}
}

func TestRunReportsInvalidInput(t *testing.T) {
	var out bytes.Buffer
	flags := &cli.Flags{Format: cli.FormatPURL}
	args := []string{"not-a-purl", "pkg:cargo/rand@0.7.2"}

	if got := purlrunner.Run(flags, args, strings.NewReader(""), &out); got != 1 {
		t.Fatalf("Run() = %d, want 1", got)
	}
	// The valid purl is still written.
	if want := "pkg:cargo/rand@0.7.2\n"; out.String() != want {
		t.Errorf("Run() wrote %q, want %q", out.String(), want)
	}
}

func TestRunValidateMode(t *testing.T) {
	var out bytes.Buffer
	flags := &cli.Flags{Validate: true, Format: cli.FormatPURL}

	if got := purlrunner.Run(flags, []string{"pkg:cargo/rand@0.7.2"}, strings.NewReader(""), &out); got != 0 {
		t.Fatalf("Run(valid) = %d, want 0", got)
	}
	if out.Len() != 0 {
		t.Errorf("Run(valid) wrote %q, want no output in validate mode", out.String())
	}
	if got := purlrunner.Run(flags, []string{"pkg:maven/missing-namespace"}, strings.NewReader(""), &out); got != 1 {
		t.Fatalf("Run(invalid) = %d, want 1", got)
	}
}

func TestRunJSONFormat(t *testing.T) {
	var out bytes.Buffer
	flags := &cli.Flags{Format: cli.FormatJSON}

	if got := purlrunner.Run(flags, []string{"pkg:deb/debian/curl@7.50.3-1?arch=i386"}, strings.NewReader(""), &out); got != 0 {
		t.Fatalf("Run() = %d, want 0", got)
	}
	var line struct {
		PURL       string            `json:"purl"`
		Type       string            `json:"type"`
		Namespace  string            `json:"namespace"`
		Name       string            `json:"name"`
		Version    string            `json:"version"`
		Qualifiers map[string]string `json:"qualifiers"`
	}
	if err := json.Unmarshal(out.Bytes(), &line); err != nil {
		t.Fatalf("Unmarshal(%q): %v", out.String(), err)
	}
	if line.PURL != "pkg:deb/debian/curl@7.50.3-1?arch=i386" {
		t.Errorf("purl = %q, want the canonical form", line.PURL)
	}
	if line.Type != "deb" || line.Namespace != "debian" || line.Name != "curl" {
		t.Errorf("decoded %+v, want deb/debian/curl", line)
	}
	if line.Qualifiers["arch"] != "i386" {
		t.Errorf("qualifiers = %v, want arch=i386", line.Qualifiers)
	}
}

func TestRunCDXFormat(t *testing.T) {
	var out bytes.Buffer
	flags := &cli.Flags{Format: cli.FormatCDXJSON}

	if got := purlrunner.Run(flags, []string{"pkg:cargo/rand@0.7.2"}, strings.NewReader(""), &out); got != 0 {
		t.Fatalf("Run() = %d, want 0", got)
	}
	var bom struct {
		BOMFormat  string `json:"bomFormat"`
		Components []struct {
			PURL string `json:"purl"`
		} `json:"components"`
	}
	if err := json.Unmarshal(out.Bytes(), &bom); err != nil {
		t.Fatalf("Unmarshal(%q): %v", out.String(), err)
	}
	if bom.BOMFormat != "CycloneDX" {
		t.Errorf("bomFormat = %q, want CycloneDX", bom.BOMFormat)
	}
	if len(bom.Components) != 1 || bom.Components[0].PURL != "pkg:cargo/rand@0.7.2" {
		t.Errorf("components = %+v, want one with pkg:cargo/rand@0.7.2", bom.Components)
	}
}

func TestRunNoInput(t *testing.T) {
	var out bytes.Buffer
	flags := &cli.Flags{Format: cli.FormatPURL}
	if got := purlrunner.Run(flags, nil, strings.NewReader(""), &out); got != 1 {
		t.Errorf("Run(no input) = %d, want 1", got)
	}
}
