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

// The purl command canonicalizes and validates package URLs given as
// arguments or on stdin, one per line.
package main

import (
	"flag"
	"os"

	"github.com/google/purl/binary/cli"
	"github.com/google/purl/binary/purlrunner"
	"github.com/google/purl/log"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	flags, rest, err := parseFlags(args[1:])
	if err != nil {
		log.Errorf("Error parsing CLI args: %v", err)
		return 1
	}
	return purlrunner.Run(flags, rest, os.Stdin, os.Stdout)
}

func parseFlags(args []string) (*cli.Flags, []string, error) {
	fs := flag.NewFlagSet("purl", flag.ExitOnError)
	validate := fs.Bool("validate", false, "Only report whether the inputs are valid purls, don't print canonical forms")
	format := fs.String("format", cli.FormatPURL, "The output format: purl, json, cdx-json, cdx-xml or spdx23-json")
	resultFile := fs.String("result", "", "The path of the output file. Defaults to stdout")
	npmIndex := fs.Bool("npm-index", false, "Enable the compiled-in npm legacy/builtin name index")
	verbose := fs.Bool("verbose", false, "Enable this to print debug logs")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	flags := &cli.Flags{
		Validate:   *validate,
		Format:     *format,
		ResultFile: *resultFile,
		NPMIndex:   *npmIndex,
		Verbose:    *verbose,
	}
	if err := cli.ValidateFlags(flags); err != nil {
		return nil, nil, err
	}
	return flags, fs.Args(), nil
}
