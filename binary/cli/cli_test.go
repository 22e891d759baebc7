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

package cli_test

import (
	"testing"

	"github.com/google/purl/binary/cli"
)

func TestValidateFlags(t *testing.T) {
	tests := []struct {
		name    string
		flags   *cli.Flags
		wantErr bool
	}{
		{
			name:  "defaults",
			flags: &cli.Flags{Format: cli.FormatPURL},
		}, {
			name:  "json output",
			flags: &cli.Flags{Format: cli.FormatJSON},
		}, {
			name:  "cdx output to file",
			flags: &cli.Flags{Format: cli.FormatCDXJSON, ResultFile: "out.cdx.json"},
		}, {
			name:    "unknown format",
			flags:   &cli.Flags{Format: "yaml"},
			wantErr: true,
		}, {
			name:    "empty format",
			flags:   &cli.Flags{},
			wantErr: true,
		}, {
			name:  "validate mode",
			flags: &cli.Flags{Validate: true, Format: cli.FormatPURL},
		}, {
			name:    "validate mode with document format",
			flags:   &cli.Flags{Validate: true, Format: cli.FormatSPDX23JSON},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cli.ValidateFlags(tt.flags)
			if gotErr := err != nil; gotErr != tt.wantErr {
				t.Errorf("ValidateFlags(%+v) = %v, wantErr %t", tt.flags, err, tt.wantErr)
			}
		})
	}
}
