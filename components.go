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
)

// Component names accepted by NormalizeComponent, ValidateComponent and
// EncodeComponent, and reported in decode errors.
const (
	ComponentType       = "type"
	ComponentNamespace  = "namespace"
	ComponentName       = "name"
	ComponentVersion    = "version"
	ComponentQualifiers = "qualifiers"
	ComponentSubpath    = "subpath"
)

var (
	// typePattern describes a valid package type: ASCII letters, numbers,
	// '.', '+' and '-', not starting with a number.
	typePattern = regexp.MustCompile(`^[A-Za-z.+-][0-9A-Za-z.+-]*$`)

	// qualifierKeyPattern describes a valid qualifier key: ASCII letters,
	// numbers, '.', '-' and '_', not starting with a number.
	qualifierKeyPattern = regexp.MustCompile(`^[A-Za-z._-][0-9A-Za-z._-]*$`)
)

// componentRules bundles the generic normalize/validate/encode behavior of a
// single purl component. These rules apply to every package type; ecosystem
// policy is layered on top by the type rule registry.
type componentRules struct {
	normalize func(string) string
	validate  func(string) error
	encode    func(string) string
}

var components = map[string]componentRules{
	ComponentType: {
		normalize: func(v string) string { return strings.ToLower(strings.TrimSpace(v)) },
		validate:  validateType,
		encode:    func(v string) string { return percentEncode(v, "") },
	},
	ComponentNamespace: {
		normalize: normalizeNamespace,
		validate:  func(string) error { return nil },
		encode:    func(v string) string { return encodeSegments(v, ":") },
	},
	ComponentName: {
		normalize: strings.TrimSpace,
		validate:  validateName,
		encode:    func(v string) string { return percentEncode(v, ":") },
	},
	ComponentVersion: {
		normalize: strings.TrimSpace,
		validate:  func(string) error { return nil },
		encode:    func(v string) string { return percentEncode(v, ":+") },
	},
	ComponentSubpath: {
		normalize: normalizeSubpath,
		validate:  func(string) error { return nil },
		encode:    func(v string) string { return encodeSegments(v, "") },
	},
}

// NormalizeComponent applies the generic normalization rule for a single
// component without constructing a PackageURL. The component must be one of
// ComponentType, ComponentNamespace, ComponentName, ComponentVersion or
// ComponentSubpath; qualifiers are normalized through ParseQualifiers and
// QualifiersFromMap instead.
func NormalizeComponent(component, value string) (string, error) {
	c, ok := components[component]
	if !ok {
		return "", fmt.Errorf("%w: unknown component %q", ErrMalformedInput, component)
	}
	return c.normalize(value), nil
}

// ValidateComponent checks a single already-normalized component value
// against the generic rules. A nil error means the value is valid.
func ValidateComponent(component, value string) error {
	c, ok := components[component]
	if !ok {
		return fmt.Errorf("%w: unknown component %q", ErrMalformedInput, component)
	}
	return c.validate(value)
}

// EncodeComponent percent-encodes a single canonical component value the way
// ToString would.
func EncodeComponent(component, value string) (string, error) {
	c, ok := components[component]
	if !ok {
		return "", fmt.Errorf("%w: unknown component %q", ErrMalformedInput, component)
	}
	return c.encode(value), nil
}

func validateType(v string) error {
	if v == "" {
		return fmt.Errorf("%w: type", ErrRequiredField)
	}
	if !typePattern.MatchString(v) {
		return fmt.Errorf("%w: type %q", ErrIllegalCharacter, v)
	}
	return nil
}

func validateName(v string) error {
	if v == "" {
		return fmt.Errorf("%w: name", ErrRequiredField)
	}
	return nil
}

// normalizeNamespace collapses repeated, leading and trailing slashes and
// drops '.' segments, which carry no meaning in a namespace path.
func normalizeNamespace(v string) string {
	return joinSegments(strings.TrimSpace(v), func(s string) bool { return s != "" && s != "." })
}

// normalizeSubpath resolves '..' against the preceding segment, so a
// canonical subpath never traverses and never starts outside the package
// tree. A '..' with nothing left to consume is discarded.
func normalizeSubpath(v string) string {
	var segs []string
	for _, s := range strings.Split(strings.TrimSpace(v), "/") {
		switch s {
		case "", ".":
		case "..":
			if len(segs) > 0 {
				segs = segs[:len(segs)-1]
			}
		default:
			segs = append(segs, s)
		}
	}
	return strings.Join(segs, "/")
}

func joinSegments(v string, keep func(string) bool) string {
	parts := strings.Split(v, "/")
	segs := parts[:0]
	for _, s := range parts {
		if keep(s) {
			segs = append(segs, s)
		}
	}
	return strings.Join(segs, "/")
}

// normalizeQualifiers lowercases keys, trims values, drops pairs whose value
// trims to empty and sorts the result by key. Duplicate keys keep the last
// value. Key charset violations are reported, never silently dropped.
func normalizeQualifiers(qs Qualifiers) (Qualifiers, error) {
	byKey := make(map[string]string, len(qs))
	for _, q := range qs {
		key := strings.ToLower(strings.TrimSpace(q.Key))
		if !qualifierKeyPattern.MatchString(key) {
			return nil, fmt.Errorf("%w: qualifier key %q", ErrIllegalCharacter, q.Key)
		}
		value := strings.TrimSpace(q.Value)
		if value == "" {
			continue
		}
		byKey[key] = value
	}
	if len(byKey) == 0 {
		return nil, nil
	}
	out := make(Qualifiers, 0, len(byKey))
	for k, v := range byKey {
		out = append(out, Qualifier{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}
