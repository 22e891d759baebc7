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

package purl_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/purl"
	"github.com/google/purl/npmindex"
)

func withNPMIndex(t *testing.T, idx purl.NameIndex) {
	t.Helper()
	purl.SetNPMNameIndex(idx)
	t.Cleanup(func() { purl.SetNPMNameIndex(nil) })
}

func TestNPMWithoutIndex(t *testing.T) {
	withNPMIndex(t, nil)

	// Without an index every name is lowercased and builtin module names
	// are accepted.
	p, err := purl.FromString("pkg:npm/JSONStream@1.3.5")
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if p.Name != "jsonstream" {
		t.Errorf("Name = %q, want %q", p.Name, "jsonstream")
	}
	if _, err := purl.FromString("pkg:npm/fs@1.0.0"); err != nil {
		t.Errorf("FromString(pkg:npm/fs@1.0.0) = %v, want nil without an index", err)
	}
}

func TestNPMWithIndex(t *testing.T) {
	withNPMIndex(t, npmindex.Default())

	tests := []struct {
		name     string
		purl     string
		wantName string
		wantErr  error
	}{
		{
			name:     "legacy name keeps its casing",
			purl:     "pkg:npm/JSONStream@1.3.5",
			wantName: "JSONStream",
		}, {
			name:     "non-legacy mixed case is folded",
			purl:     "pkg:npm/Express@4.18.0",
			wantName: "express",
		}, {
			name:    "builtin module name is rejected",
			purl:    "pkg:npm/fs@1.0.0",
			wantErr: purl.ErrTypeRule,
		}, {
			name:     "builtin name inside a scope is fine",
			purl:     "pkg:npm/@mycorp/fs@1.0.0",
			wantName: "fs",
		}, {
			name:    "reserved name",
			purl:    "pkg:npm/node_modules@1.0.0",
			wantErr: purl.ErrTypeRule,
		}, {
			name:    "leading dot",
			purl:    "pkg:npm/.hidden@1.0.0",
			wantErr: purl.ErrTypeRule,
		}, {
			name:    "leading underscore",
			purl:    "pkg:npm/_private@1.0.0",
			wantErr: purl.ErrTypeRule,
		}, {
			name:    "scope must start with at-sign",
			purl:    "pkg:npm/scope/name@1.0.0",
			wantErr: purl.ErrTypeRule,
		}, {
			name:    "illegal characters",
			purl:    "pkg:npm/not%20a%20name@1.0.0",
			wantErr: purl.ErrIllegalCharacter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := purl.FromString(tt.purl)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("FromString(%q) = %v, want %v", tt.purl, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromString(%q): %v", tt.purl, err)
			}
			if p.Name != tt.wantName {
				t.Errorf("FromString(%q).Name = %q, want %q", tt.purl, p.Name, tt.wantName)
			}
		})
	}
}

func TestNPMNameLength(t *testing.T) {
	withNPMIndex(t, npmindex.Default())

	long := strings.Repeat("a", 215)
	if _, err := purl.FromString("pkg:npm/" + long + "@1.0.0"); !errors.Is(err, purl.ErrTypeRule) {
		t.Errorf("FromString(215 char name) = %v, want %v", err, purl.ErrTypeRule)
	}
	ok := strings.Repeat("a", 214)
	if _, err := purl.FromString("pkg:npm/" + ok + "@1.0.0"); err != nil {
		t.Errorf("FromString(214 char name) = %v, want nil", err)
	}
}
