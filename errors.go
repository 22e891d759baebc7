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

import "errors"

// Sentinel errors returned by parsing, normalization and validation. They are
// always wrapped with additional context describing the offending component
// or package type, so match them with errors.Is.
var (
	// ErrMalformedInput is returned when the input is blank or does not
	// follow the generic purl grammar at all.
	ErrMalformedInput = errors.New("malformed package URL")
	// ErrMissingScheme is returned when the "pkg:" scheme is absent.
	ErrMissingScheme = errors.New("purl scheme is missing")
	// ErrMissingType is returned when the package type component is absent.
	ErrMissingType = errors.New("purl type is missing")
	// ErrMissingName is returned when the package name component is absent.
	ErrMissingName = errors.New("purl name is missing")
	// ErrForbiddenAuthority is returned when the input carries URL userinfo.
	// A purl has no authority section.
	ErrForbiddenAuthority = errors.New("purl cannot contain a user:pass@host authority")
	// ErrDecode is returned when percent-decoding a component fails.
	ErrDecode = errors.New("cannot percent-decode component")
	// ErrRequiredField is returned when a required component is empty.
	ErrRequiredField = errors.New("required component is missing")
	// ErrForbiddenField is returned when a package type forbids a component
	// that is present.
	ErrForbiddenField = errors.New("component must be empty")
	// ErrIllegalCharacter is returned on component charset violations.
	ErrIllegalCharacter = errors.New("component contains illegal characters")
	// ErrTypeRule is returned when an ecosystem-specific cross-field rule is
	// violated.
	ErrTypeRule = errors.New("package type rule violated")
)
