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

package npmindex

// legacyNames are package names published before the npm registry started
// enforcing lowercase. The registry still serves them with their original
// casing, so purl normalization must not fold them.
var legacyNames = []string{
	"Base64",
	"CSSselect",
	"CSSwhat",
	"JSON",
	"JSON2",
	"JSONPath",
	"JSONSelect",
	"JSONStream",
	"JSV",
	"MD5",
	"URIjs",
	"XMLHttpRequest",
}

// builtinModules are the Node.js builtin module names. The registry refuses
// them as package names, so an unscoped npm purl naming one is invalid.
var builtinModules = []string{
	"assert",
	"async_hooks",
	"buffer",
	"child_process",
	"cluster",
	"console",
	"constants",
	"crypto",
	"dgram",
	"diagnostics_channel",
	"dns",
	"domain",
	"events",
	"fs",
	"http",
	"http2",
	"https",
	"inspector",
	"module",
	"net",
	"os",
	"path",
	"perf_hooks",
	"process",
	"punycode",
	"querystring",
	"readline",
	"repl",
	"stream",
	"string_decoder",
	"sys",
	"timers",
	"tls",
	"trace_events",
	"tty",
	"url",
	"util",
	"v8",
	"vm",
	"wasi",
	"worker_threads",
	"zlib",
}
