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

// Package purl parses, normalizes, validates and serializes package URLs
// according to the spec: https://github.com/package-url/purl-spec
//
// A package URL ("purl") is a compact, typed identifier for a software
// package, e.g. pkg:npm/%40scope/name@1.0.0. PackageURL values produced by
// New and FromString are always in canonical form: generic per-component
// rules and the ecosystem-specific rules of the package type have been
// applied, and String returns the unique canonical serialization. Treat
// returned values as immutable; mutating fields directly bypasses
// normalization.
package purl

import (
	"fmt"
	"sort"
	"strings"
)

// Qualifier represents a single key=value qualifier in the package url.
type Qualifier struct {
	Key   string
	Value string
}

func (q Qualifier) String() string {
	// Keys are restricted to unreserved characters; only values need
	// percent-encoding.
	return q.Key + "=" + percentEncode(q.Value, ":/")
}

// Qualifiers is a slice of key=value pairs, with order preserved as it
// appears in the package URL. Canonical instances are sorted by key.
type Qualifiers []Qualifier

// QualifiersFromMap constructs a Qualifiers slice from a string map. To get a
// deterministic qualifier order (despite maps not providing any iteration
// order guarantees) the returned Qualifiers are sorted in increasing order of
// key. Empty value strings are invalid qualifiers according to the purl spec,
// so they are dropped.
func QualifiersFromMap(mm map[string]string) Qualifiers {
	qs := make(Qualifiers, 0, len(mm))
	for k, v := range mm {
		if v == "" {
			continue
		}
		qs = append(qs, Qualifier{Key: k, Value: v})
	}
	sort.Slice(qs, func(i, j int) bool { return qs[i].Key < qs[j].Key })
	return qs
}

// Map converts a Qualifiers slice to a string map.
func (qs Qualifiers) Map() map[string]string {
	m := make(map[string]string, len(qs))
	for _, q := range qs {
		m[q.Key] = q.Value
	}
	return m
}

// Get returns the value for the given key, or "" if the key is absent.
func (qs Qualifiers) Get(key string) string {
	for _, q := range qs {
		if q.Key == key {
			return q.Value
		}
	}
	return ""
}

// String serializes the qualifiers as "k1=v1&k2=v2" with keys in
// lexicographic order, regardless of slice order.
func (qs Qualifiers) String() string {
	sorted := make(Qualifiers, len(qs))
	copy(sorted, qs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })
	kv := make([]string, 0, len(sorted))
	for _, q := range sorted {
		kv = append(kv, q.String())
	}
	return strings.Join(kv, "&")
}

// PackageURL is the struct representation of the parts that make a package
// url. Instances built through New or FromString hold canonical component
// values.
type PackageURL struct {
	Type       string
	Namespace  string
	Name       string
	Version    string
	Qualifiers Qualifiers
	Subpath    string
}

// New builds a canonical PackageURL from raw component values: each
// component is normalized and validated generically, then the package type's
// own normalization and validation rules run on the result. No partially
// constructed value is ever returned. Qualifiers given as a map or as an
// encoded query string can be converted with QualifiersFromMap and
// ParseQualifiers.
func New(typ, namespace, name, version string, qualifiers Qualifiers, subpath string) (*PackageURL, error) {
	p := &PackageURL{
		Type:      components[ComponentType].normalize(typ),
		Namespace: components[ComponentNamespace].normalize(namespace),
		Name:      components[ComponentName].normalize(name),
		Version:   components[ComponentVersion].normalize(version),
		Subpath:   components[ComponentSubpath].normalize(subpath),
	}
	qs, err := normalizeQualifiers(qualifiers)
	if err != nil {
		return nil, err
	}
	p.Qualifiers = qs

	if err := validateType(p.Type); err != nil {
		return nil, err
	}
	if err := validateName(p.Name); err != nil {
		return nil, err
	}

	// Ecosystem rules run last so they see case-folded, charset-clean
	// values. Unknown types get no extra processing: they are still
	// syntactically valid purls.
	if rule, ok := typeRules[p.Type]; ok {
		if rule.normalize != nil {
			rule.normalize(p)
		}
		if rule.validate != nil {
			if err := rule.validate(p); err != nil {
				return nil, err
			}
		}
	}
	return p, nil
}

// FromString parses a purl string into a canonical PackageURL. It applies
// the full pipeline: decompose, percent-decode, normalize, validate, and the
// package type's rules.
func FromString(purl string) (*PackageURL, error) {
	trimmed := strings.TrimSpace(purl)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedInput)
	}
	parts, err := parseString(trimmed)
	if err != nil {
		return nil, err
	}
	return New(parts.Type, parts.Namespace, parts.Name, parts.Version, parts.Qualifiers, parts.Subpath)
}

// ToString returns the canonical string form of the purl. It assumes the
// fields already hold canonical values and performs no validation.
func (p *PackageURL) ToString() string {
	var b strings.Builder
	b.WriteString("pkg:")
	b.WriteString(components[ComponentType].encode(p.Type))
	b.WriteByte('/')
	if p.Namespace != "" {
		b.WriteString(components[ComponentNamespace].encode(p.Namespace))
		b.WriteByte('/')
	}
	b.WriteString(components[ComponentName].encode(p.Name))
	if p.Version != "" {
		b.WriteByte('@')
		b.WriteString(components[ComponentVersion].encode(p.Version))
	}
	if len(p.Qualifiers) > 0 {
		b.WriteByte('?')
		b.WriteString(p.Qualifiers.String())
	}
	if p.Subpath != "" {
		b.WriteByte('#')
		b.WriteString(components[ComponentSubpath].encode(p.Subpath))
	}
	return b.String()
}

func (p PackageURL) String() string {
	return p.ToString()
}

// Validate re-checks the current field values against the generic and
// type-specific rules. A nil error means the purl is valid.
func (p *PackageURL) Validate() error {
	if err := validateType(p.Type); err != nil {
		return err
	}
	if err := validateName(p.Name); err != nil {
		return err
	}
	if _, err := normalizeQualifiers(p.Qualifiers); err != nil {
		return err
	}
	if rule, ok := typeRules[p.Type]; ok && rule.validate != nil {
		return rule.validate(p)
	}
	return nil
}

// IsValid is the probing variant of Validate for callers that do not care
// about the reason a purl is invalid.
func (p *PackageURL) IsValid() bool {
	return p.Validate() == nil
}
