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

// Package purlrunner wraps the purl library into a canonicalization workflow
// for the CLI: it reads purl strings, runs them through the full pipeline
// and writes the results in the configured output format.
package purlrunner

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/CycloneDX/cyclonedx-go"
	"github.com/google/purl"
	"github.com/google/purl/binary/cli"
	"github.com/google/purl/converter"
	"github.com/google/purl/log"
	"github.com/google/purl/npmindex"
)

// Run canonicalizes or validates the purl strings given as args, falling
// back to reading one purl per line from in. Results go to the flags'
// result file, or to out. The return value is the process exit code.
func Run(flags *cli.Flags, args []string, in io.Reader, out io.Writer) int {
	log.SetLogger(&log.DefaultLogger{Verbose: flags.Verbose})
	if flags.NPMIndex {
		purl.SetNPMNameIndex(npmindex.Default())
	}

	inputs, err := collectInputs(args, in)
	if err != nil {
		log.Errorf("Reading input: %v", err)
		return 1
	}
	if len(inputs) == 0 {
		log.Errorf("No purl strings given")
		return 1
	}

	exit := 0
	purls := make([]*purl.PackageURL, 0, len(inputs))
	for _, input := range inputs {
		p, err := purl.FromString(input)
		if err != nil {
			log.Errorf("%s: %v", input, err)
			exit = 1
			continue
		}
		purls = append(purls, p)
	}
	if flags.Validate {
		return exit
	}

	if flags.ResultFile != "" {
		f, err := os.Create(flags.ResultFile)
		if err != nil {
			log.Errorf("Creating result file: %v", err)
			return 1
		}
		defer f.Close()
		out = f
	}
	if err := write(purls, flags.Format, out); err != nil {
		log.Errorf("Writing results: %v", err)
		return 1
	}
	return exit
}

func collectInputs(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var inputs []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			inputs = append(inputs, line)
		}
	}
	return inputs, scanner.Err()
}

// jsonPURL is the per-line JSON output shape.
type jsonPURL struct {
	PURL       string            `json:"purl"`
	Type       string            `json:"type"`
	Namespace  string            `json:"namespace,omitempty"`
	Name       string            `json:"name"`
	Version    string            `json:"version,omitempty"`
	Qualifiers map[string]string `json:"qualifiers,omitempty"`
	Subpath    string            `json:"subpath,omitempty"`
}

func write(purls []*purl.PackageURL, format string, out io.Writer) error {
	switch format {
	case cli.FormatPURL:
		for _, p := range purls {
			if _, err := fmt.Fprintln(out, p.String()); err != nil {
				return err
			}
		}
		return nil
	case cli.FormatJSON:
		enc := json.NewEncoder(out)
		for _, p := range purls {
			j := jsonPURL{
				PURL:      p.String(),
				Type:      p.Type,
				Namespace: p.Namespace,
				Name:      p.Name,
				Version:   p.Version,
				Subpath:   p.Subpath,
			}
			if len(p.Qualifiers) > 0 {
				j.Qualifiers = p.Qualifiers.Map()
			}
			if err := enc.Encode(j); err != nil {
				return err
			}
		}
		return nil
	case cli.FormatCDXJSON, cli.FormatCDXXML:
		cdxFormat := cyclonedx.BOMFileFormatJSON
		if format == cli.FormatCDXXML {
			cdxFormat = cyclonedx.BOMFileFormatXML
		}
		bom := converter.ToCDX(purls, converter.CDXConfig{})
		return cyclonedx.NewBOMEncoder(out, cdxFormat).SetPretty(true).Encode(bom)
	case cli.FormatSPDX23JSON:
		doc := converter.ToSPDX23(purls, converter.SPDXConfig{})
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
