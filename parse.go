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
	"net/url"
	"strings"
)

// maxInputLength bounds the accepted purl string size. Real purls are tiny;
// the cap keeps segment splitting trivially bounded on hostile input.
const maxInputLength = 64 * 1024

// Parts holds the six raw components of a purl string after decomposition
// and percent-decoding, before any normalization or validation is applied.
type Parts struct {
	Type       string
	Namespace  string
	Name       string
	Version    string
	Qualifiers Qualifiers
	Subpath    string
}

// ParseString decomposes a purl string into its raw components without
// normalizing or validating them, for callers that want lenient access to
// the pieces. Unlike FromString, a blank input yields empty Parts and no
// error.
func ParseString(purl string) (*Parts, error) {
	purl = strings.TrimSpace(purl)
	if purl == "" {
		return &Parts{}, nil
	}
	return parseString(purl)
}

// parseString splits a non-blank purl string per the grammar. Decoding
// failures report the offending component.
func parseString(purl string) (*Parts, error) {
	if len(purl) > maxInputLength {
		return nil, fmt.Errorf("%w: input exceeds %d bytes", ErrMalformedInput, maxInputLength)
	}

	scheme, rest, found := strings.Cut(purl, ":")
	if !found || !strings.EqualFold(scheme, "pkg") {
		return nil, fmt.Errorf("%w: purl must start with \"pkg:\"", ErrMissingScheme)
	}

	// A purl has no authority section, but "pkg://type/..." inputs must be
	// tolerated by ignoring the slashes. Only userinfo is rejected.
	if strings.HasPrefix(rest, "//") {
		authority := rest[2:]
		if i := strings.IndexAny(authority, "/?#"); i >= 0 {
			authority = authority[:i]
		}
		if strings.Contains(authority, "@") {
			return nil, fmt.Errorf("%w: %q", ErrForbiddenAuthority, authority)
		}
	}
	rest = strings.TrimLeft(rest, "/")

	parts := &Parts{}

	if path, fragment, found := strings.Cut(rest, "#"); found {
		rest = path
		sp, err := url.PathUnescape(fragment)
		if err != nil {
			return nil, decodeError(ComponentSubpath, err)
		}
		parts.Subpath = sp
	}

	if path, query, found := strings.Cut(rest, "?"); found {
		rest = path
		qs, err := ParseQualifiers(query)
		if err != nil {
			return nil, err
		}
		parts.Qualifiers = qs
	}

	slash := strings.IndexByte(rest, '/')
	if slash <= 0 {
		return nil, fmt.Errorf("%w: no type separator in %q", ErrMissingType, rest)
	}
	typ, err := url.PathUnescape(rest[:slash])
	if err != nil {
		return nil, decodeError(ComponentType, err)
	}
	parts.Type = typ
	rest = rest[slash+1:]

	// The version delimiter is the last '@' that is not immediately preceded
	// by a '/'. An unescaped '@' at the start of a path segment (e.g. an npm
	// scope) must not be mistaken for it. Downstream consumers depend on
	// this exact rule for scoped-package parsing; do not tighten it.
	if at := versionIndex(rest); at >= 0 {
		v, err := url.PathUnescape(rest[at+1:])
		if err != nil {
			return nil, decodeError(ComponentVersion, err)
		}
		parts.Version = v
		rest = rest[:at]
	}

	slash = strings.LastIndexByte(rest, '/')
	name, err := url.PathUnescape(rest[slash+1:])
	if err != nil {
		return nil, decodeError(ComponentName, err)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: %q", ErrMissingName, purl)
	}
	parts.Name = name

	if slash > 0 {
		ns, err := url.PathUnescape(rest[:slash])
		if err != nil {
			return nil, decodeError(ComponentNamespace, err)
		}
		parts.Namespace = ns
	}

	return parts, nil
}

// ParseQualifiers decodes an already-encoded query string ("k=v&k2=v2") into
// a Qualifiers slice, preserving pair order. Keys are lowercased; pairs with
// an empty value are dropped entirely.
func ParseQualifiers(query string) (Qualifiers, error) {
	var qs Qualifiers
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.PathUnescape(rawKey)
		if err != nil {
			return nil, decodeError(ComponentQualifiers, err)
		}
		if rawValue == "" {
			continue
		}
		value, err := url.PathUnescape(rawValue)
		if err != nil {
			return nil, decodeError(ComponentQualifiers, err)
		}
		qs = append(qs, Qualifier{Key: strings.ToLower(key), Value: value})
	}
	return qs, nil
}

// versionIndex returns the index of the version delimiter in a
// namespace/name@version path remainder, or -1 if there is none.
func versionIndex(s string) int {
	for i := len(s) - 1; i > 0; i-- {
		if s[i] == '@' && s[i-1] != '/' {
			return i
		}
	}
	return -1
}

func decodeError(component string, err error) error {
	return fmt.Errorf("%w %s: %v", ErrDecode, component, err)
}
