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
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// typeRule is the ecosystem-specific policy for one package type. normalize
// always runs before validate, and both run after the generic component
// rules, so a validator sees case-folded, charset-clean values.
type typeRule struct {
	normalize func(*PackageURL)
	validate  func(*PackageURL) error
}

// pubNamePattern is the charset the pub registry allows for package names.
var pubNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// typeRules is the closed registry of per-ecosystem policy, keyed by
// canonical (lowercase) type. Types without an entry pass through untouched,
// keeping the library forward compatible with ecosystems it does not know.
var typeRules = map[string]typeRule{
	TypeAlpm:      {normalize: lowerNamespaceAndName},
	TypeApk:       {normalize: lowerNamespaceAndName},
	TypeBitbucket: {normalize: lowerNamespaceAndName},
	TypeBitnami:   {normalize: lowerName},
	TypeComposer:  {normalize: lowerNamespaceAndName},
	TypeConan:     {validate: validateConan},
	TypeCran:      {validate: requireVersion},
	TypeDebian:    {normalize: lowerNamespaceAndName},
	TypeGithub:    {normalize: lowerNamespaceAndName},
	TypeGitlab:    {normalize: lowerNamespaceAndName},
	TypeGolang:    {validate: validateGolangVersion},
	TypeHex:       {normalize: lowerNamespaceAndName},
	TypeHuggingface: {
		normalize: func(p *PackageURL) { p.Version = strings.ToLower(p.Version) },
	},
	TypeLuarocks: {
		normalize: func(p *PackageURL) { p.Version = strings.ToLower(p.Version) },
	},
	TypeMaven:  {validate: requireNamespace},
	TypeMlflow: {validate: forbidNamespace},
	TypeNPM:    {normalize: normalizeNPM, validate: validateNPM},
	TypeOCI:    {validate: forbidNamespace},
	TypePub:    {normalize: normalizePub, validate: validatePub},
	TypePyPi:   {normalize: normalizePyPi},
	TypeQpkg:   {normalize: lowerNamespace},
	TypeRPM:    {normalize: lowerNamespace},
	TypeSwift:  {validate: validateSwift},
}

// KnownTypes returns the sorted list of package types that carry
// ecosystem-specific rules. Other types are accepted but processed
// generically.
func KnownTypes() []string {
	types := make([]string, 0, len(typeRules))
	for t := range typeRules {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// NormalizeType applies the type-specific normalization of p's package type
// in place, if it has any. Exposed for callers applying a single rule
// without re-running the full construction pipeline.
func NormalizeType(p *PackageURL) {
	if rule, ok := typeRules[p.Type]; ok && rule.normalize != nil {
		rule.normalize(p)
	}
}

// ValidateType runs the type-specific validation of p's package type, if it
// has any.
func ValidateType(p *PackageURL) error {
	if rule, ok := typeRules[p.Type]; ok && rule.validate != nil {
		return rule.validate(p)
	}
	return nil
}

func lowerName(p *PackageURL) {
	p.Name = strings.ToLower(p.Name)
}

func lowerNamespace(p *PackageURL) {
	p.Namespace = strings.ToLower(p.Namespace)
}

func lowerNamespaceAndName(p *PackageURL) {
	p.Namespace = strings.ToLower(p.Namespace)
	p.Name = strings.ToLower(p.Name)
}

// normalizePyPi lowercases and replaces '_' with '-', following
// https://github.com/package-url/purl-spec/blob/master/PURL-TYPES.rst#pypi
func normalizePyPi(p *PackageURL) {
	p.Namespace = strings.ToLower(p.Namespace)
	p.Name = strings.ReplaceAll(strings.ToLower(p.Name), "_", "-")
}

// normalizePub is the inverse folding of pypi: pub package names use
// underscores, never dashes.
func normalizePub(p *PackageURL) {
	p.Name = strings.ReplaceAll(strings.ToLower(p.Name), "-", "_")
}

func validatePub(p *PackageURL) error {
	if !pubNamePattern.MatchString(p.Name) {
		return fmt.Errorf("%w: pub name %q", ErrIllegalCharacter, p.Name)
	}
	return nil
}

func requireNamespace(p *PackageURL) error {
	if p.Namespace == "" {
		return fmt.Errorf("%w: namespace is required for %s", ErrRequiredField, p.Type)
	}
	return nil
}

func requireVersion(p *PackageURL) error {
	if p.Version == "" {
		return fmt.Errorf("%w: version is required for %s", ErrRequiredField, p.Type)
	}
	return nil
}

func forbidNamespace(p *PackageURL) error {
	if p.Namespace != "" {
		return fmt.Errorf("%w: namespace for %s", ErrForbiddenField, p.Type)
	}
	return nil
}

func validateSwift(p *PackageURL) error {
	if err := requireNamespace(p); err != nil {
		return err
	}
	return requireVersion(p)
}

// validateConan enforces the conan pairing rule: a namespace requires a
// channel qualifier and a channel qualifier requires a namespace.
func validateConan(p *PackageURL) error {
	channel := p.Qualifiers.Get(Channel)
	switch {
	case p.Namespace != "" && channel == "":
		return fmt.Errorf("%w: conan requires a channel qualifier when a namespace is present", ErrTypeRule)
	case p.Namespace == "" && channel != "":
		return fmt.Errorf("%w: conan requires a namespace when a channel qualifier is present", ErrTypeRule)
	}
	return nil
}

// validateGolangVersion rejects pseudo-semver: a golang version starting
// with "v" must be valid semver.
func validateGolangVersion(p *PackageURL) error {
	if strings.HasPrefix(p.Version, "v") && !semver.IsValid(p.Version) {
		return fmt.Errorf("%w: golang version %q is not valid semver", ErrTypeRule, p.Version)
	}
	return nil
}
