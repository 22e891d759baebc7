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

package converter_test

import (
	"testing"

	"github.com/CycloneDX/cyclonedx-go"
	"github.com/google/go-cmp/cmp"
	"github.com/google/purl"
	"github.com/google/purl/converter"
	"github.com/spdx/tools-golang/spdx/v2/v2_3"
)

func mustFromString(t *testing.T, s string) *purl.PackageURL {
	t.Helper()
	p, err := purl.FromString(s)
	if err != nil {
		t.Fatalf("FromString(%q): %v", s, err)
	}
	return p
}

func TestCDXComponentRoundTrip(t *testing.T) {
	want := mustFromString(t, "pkg:maven/org.apache.commons/commons-lang3@3.12.0")

	comp := converter.ToCDXComponent(want)
	if comp.PackageURL != want.String() {
		t.Errorf("ToCDXComponent().PackageURL = %q, want %q", comp.PackageURL, want.String())
	}
	if comp.Name != "commons-lang3" || comp.Version != "3.12.0" {
		t.Errorf("ToCDXComponent() = %q@%q, want commons-lang3@3.12.0", comp.Name, comp.Version)
	}

	got, err := converter.FromCDXComponent(&comp)
	if err != nil {
		t.Fatalf("FromCDXComponent: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip returned unexpected diff (-want +got):\n%s", diff)
	}
}

func TestFromCDXSkipsBadComponents(t *testing.T) {
	comps := []cyclonedx.Component{
		{Name: "no-purl"},
		{Name: "bad-purl", PackageURL: "not-a-purl"},
		{Name: "rand", PackageURL: "pkg:cargo/rand@0.7.2"},
	}
	bom := cyclonedx.NewBOM()
	bom.Components = &comps

	got := converter.FromCDX(bom)
	if len(got) != 1 {
		t.Fatalf("FromCDX returned %d purls, want 1", len(got))
	}
	if got[0].String() != "pkg:cargo/rand@0.7.2" {
		t.Errorf("FromCDX()[0] = %q, want pkg:cargo/rand@0.7.2", got[0].String())
	}
}

func TestToCDX(t *testing.T) {
	purls := []*purl.PackageURL{
		mustFromString(t, "pkg:cargo/rand@0.7.2"),
		mustFromString(t, "pkg:npm/%40aws-crypto/crc32@3.0.0"),
	}
	bom := converter.ToCDX(purls, converter.CDXConfig{
		ComponentName:    "my-app",
		ComponentVersion: "1.2.3",
		Authors:          []string{"someone"},
	})

	if bom.Metadata.Component.Name != "my-app" {
		t.Errorf("Metadata.Component.Name = %q, want my-app", bom.Metadata.Component.Name)
	}
	if got := len(*bom.Components); got != 2 {
		t.Fatalf("len(Components) = %d, want 2", got)
	}
	if got, want := (*bom.Components)[1].PackageURL, "pkg:npm/%40aws-crypto/crc32@3.0.0"; got != want {
		t.Errorf("Components[1].PackageURL = %q, want %q", got, want)
	}
}

func TestSPDX23RoundTrip(t *testing.T) {
	purls := []*purl.PackageURL{
		mustFromString(t, "pkg:deb/debian/curl@7.50.3-1?arch=i386"),
		mustFromString(t, "pkg:pypi/pyyaml@5.3.0"),
	}
	doc := converter.ToSPDX23(purls, converter.SPDXConfig{DocumentName: "test-doc"})

	if doc.DocumentName != "test-doc" {
		t.Errorf("DocumentName = %q, want test-doc", doc.DocumentName)
	}
	// One main package plus one per purl.
	if got := len(doc.Packages); got != 3 {
		t.Fatalf("len(Packages) = %d, want 3", got)
	}

	var got []string
	for _, pkg := range doc.Packages[1:] {
		p, err := converter.FromSPDXPackage(pkg)
		if err != nil {
			t.Fatalf("FromSPDXPackage(%q): %v", pkg.PackageName, err)
		}
		if p == nil {
			t.Fatalf("FromSPDXPackage(%q) = nil, want a purl", pkg.PackageName)
		}
		got = append(got, p.String())
	}
	want := []string{
		"pkg:deb/debian/curl@7.50.3-1?arch=i386",
		"pkg:pypi/pyyaml@5.3.0",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SPDX round trip returned unexpected diff (-want +got):\n%s", diff)
	}
}

func TestFromSPDXPackageWithoutPURL(t *testing.T) {
	p, err := converter.FromSPDXPackage(&v2_3.Package{PackageName: "plain"})
	if err != nil {
		t.Fatalf("FromSPDXPackage: %v", err)
	}
	if p != nil {
		t.Errorf("FromSPDXPackage(no refs) = %v, want nil", p)
	}
}
