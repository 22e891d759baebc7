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

package purl

import (
	"fmt"
	"regexp"
	"strings"
)

// NameIndex answers offline questions about npm package names. The npm rule
// set degrades gracefully without one: legacy mixed-case names get
// lowercased like everything else and the builtin-module check is skipped.
type NameIndex interface {
	// KnownLegacyName reports whether name is one of the mixed-case or
	// special-character package names grandfathered by the npm registry.
	KnownLegacyName(name string) bool
	// BuiltinModuleName reports whether name is a Node.js builtin module
	// name, which the registry refuses for new packages.
	BuiltinModuleName(name string) bool
}

var npmNames NameIndex

// SetNPMNameIndex installs the name index consumed by the npm rule set, e.g.
// npmindex.Default(). Install it once during setup; it is read on every npm
// purl construction and must not change afterwards.
func SetNPMNameIndex(idx NameIndex) { npmNames = idx }

const (
	// npmMaxNameLength is the registry's limit on the full (scoped) name.
	npmMaxNameLength = 214
)

// npmNamePattern is the charset new npm package names must use. Legacy names
// on the registry may violate it and are exempted via the name index.
var npmNamePattern = regexp.MustCompile(`^[a-z0-9._~-]+$`)

// npm names are reserved by the registry and can never be packages.
var npmReservedNames = map[string]bool{
	"node_modules": true,
	"favicon.ico":  true,
}

// normalizeNPM lowercases the scope always and the name unless it is a
// grandfathered legacy name that the registry stores with its original
// casing.
func normalizeNPM(p *PackageURL) {
	p.Namespace = strings.ToLower(p.Namespace)
	if npmNames != nil && npmNames.KnownLegacyName(p.Name) {
		return
	}
	p.Name = strings.ToLower(p.Name)
}

func validateNPM(p *PackageURL) error {
	full := p.Name
	if p.Namespace != "" {
		if !strings.HasPrefix(p.Namespace, "@") {
			return fmt.Errorf("%w: npm scope %q must start with \"@\"", ErrTypeRule, p.Namespace)
		}
		if scope := strings.TrimPrefix(p.Namespace, "@"); !npmNamePattern.MatchString(scope) {
			return fmt.Errorf("%w: npm scope %q", ErrIllegalCharacter, p.Namespace)
		}
		full = p.Namespace + "/" + p.Name
	}
	if len(full) > npmMaxNameLength {
		return fmt.Errorf("%w: npm name %q is longer than %d characters", ErrTypeRule, full, npmMaxNameLength)
	}
	if strings.HasPrefix(p.Name, ".") || strings.HasPrefix(p.Name, "_") {
		return fmt.Errorf("%w: npm name %q cannot start with %q", ErrTypeRule, p.Name, p.Name[:1])
	}
	if npmReservedNames[strings.ToLower(p.Name)] {
		return fmt.Errorf("%w: npm name %q is reserved", ErrTypeRule, p.Name)
	}
	legacy := npmNames != nil && npmNames.KnownLegacyName(p.Name)
	if !legacy && !npmNamePattern.MatchString(p.Name) {
		return fmt.Errorf("%w: npm name %q", ErrIllegalCharacter, p.Name)
	}
	if npmNames != nil && p.Namespace == "" && npmNames.BuiltinModuleName(p.Name) {
		return fmt.Errorf("%w: npm name %q is a builtin Node.js module", ErrTypeRule, p.Name)
	}
	return nil
}
