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

import "strings"

const upperhex = "0123456789ABCDEF"

// isUnreserved reports whether c never needs percent-encoding in a purl,
// regardless of the component it appears in.
func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	}
	return false
}

// percentEncode encodes value, leaving unreserved characters and the bytes in
// keep verbatim. Everything else, '%' included, becomes an uppercase %XX
// escape. The keep set differs per component: ':' survives in namespaces,
// names, versions and qualifier values, '/' in namespaces, subpaths and
// qualifier values, '+' only in versions.
func percentEncode(value, keep string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		c := value[i]
		if isUnreserved(c) || strings.IndexByte(keep, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

// encodeSegments percent-encodes each '/'-delimited segment of value and
// rejoins them, so the path structure survives encoding.
func encodeSegments(value, keep string) string {
	segs := strings.Split(value, "/")
	for i, s := range segs {
		segs[i] = percentEncode(s, keep)
	}
	return strings.Join(segs, "/")
}
