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

// Package npmindex provides the offline npm name lookups consumed by the npm
// purl rules: the mixed-case package names grandfathered by the registry
// before it enforced lowercase, and the Node.js builtin module names the
// registry refuses. The sets are built once on first use and never mutated,
// so a single Index is safe to share across goroutines.
package npmindex

import (
	"sync"

	"bitbucket.org/creachadair/stringset"
)

// Index implements purl.NameIndex backed by in-memory string sets.
type Index struct {
	legacy   stringset.Set
	builtins stringset.Set
}

// KnownLegacyName reports whether name was published to the npm registry
// before lowercase names became mandatory.
func (x *Index) KnownLegacyName(name string) bool {
	return x.legacy.Contains(name)
}

// BuiltinModuleName reports whether name is a Node.js builtin module.
func (x *Index) BuiltinModuleName(name string) bool {
	return x.builtins.Contains(name)
}

var defaultIndex = sync.OnceValue(func() *Index {
	return &Index{
		legacy:   stringset.New(legacyNames...),
		builtins: stringset.New(builtinModules...),
	}
})

// Default returns the process-wide Index built from the compiled-in name
// lists. Typical setup:
//
//	purl.SetNPMNameIndex(npmindex.Default())
func Default() *Index {
	return defaultIndex()
}

// NewIndex builds an Index from caller-provided name lists, for consumers
// that maintain fresher registry dumps than the compiled-in ones.
func NewIndex(legacy, builtins []string) *Index {
	return &Index{
		legacy:   stringset.New(legacy...),
		builtins: stringset.New(builtins...),
	}
}
