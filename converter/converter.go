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

// Package converter provides utility functions for converting package URLs
// to and from standardized SBOM formats.
package converter

import (
	"fmt"
	"regexp"
	"time"

	"github.com/CycloneDX/cyclonedx-go"
	"github.com/google/purl"
	"github.com/google/purl/log"
	"github.com/google/uuid"
	"github.com/spdx/tools-golang/spdx/v2/common"
	"github.com/spdx/tools-golang/spdx/v2/v2_3"
)

const (
	// NoAssertion indicates that we don't claim anything about the value of a
	// given field.
	NoAssertion = "NOASSERTION"
	// SPDXRefPrefix is the prefix used in reference IDs in the SPDX document.
	SPDXRefPrefix = "SPDXRef-"
	// SPDXDocumentID is the string identifier used to refer to the SPDX
	// document.
	SPDXDocumentID = "SPDXRef-Document"

	// purlRefType is the SPDX external reference type carrying a package URL.
	purlRefType = "purl"
	// purlRefCategory is the SPDX reference category purl references use.
	purlRefCategory = "PACKAGE-MANAGER"
)

// spdx_id must only contain letters, numbers, "." and "-"
var spdxIDInvalidCharRe = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// ToCDXComponent converts a package URL into a CycloneDX library component
// carrying the canonical purl string.
func ToCDXComponent(p *purl.PackageURL) cyclonedx.Component {
	return cyclonedx.Component{
		BOMRef:     uuid.New().String(),
		Type:       cyclonedx.ComponentTypeLibrary,
		Name:       p.Name,
		Version:    p.Version,
		PackageURL: p.String(),
	}
}

// FromCDXComponent recovers the package URL of a CycloneDX component from
// its purl field.
func FromCDXComponent(c *cyclonedx.Component) (*purl.PackageURL, error) {
	if c.PackageURL == "" {
		return nil, fmt.Errorf("component %q carries no package URL", c.Name)
	}
	return purl.FromString(c.PackageURL)
}

// CDXConfig describes custom settings that should be applied to the
// generated CDX file.
type CDXConfig struct {
	ComponentName    string
	ComponentVersion string
	Authors          []string
}

// ToCDX converts a list of package URLs into a CycloneDX document.
func ToCDX(purls []*purl.PackageURL, c CDXConfig) *cyclonedx.BOM {
	bom := cyclonedx.NewBOM()
	bom.Metadata = &cyclonedx.Metadata{
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05Z"),
		Component: &cyclonedx.Component{
			Name:    c.ComponentName,
			Version: c.ComponentVersion,
			BOMRef:  uuid.New().String(),
		},
		Tools: &cyclonedx.ToolsChoice{
			Components: &[]cyclonedx.Component{
				{
					Type: cyclonedx.ComponentTypeApplication,
					Name: "purl",
					ExternalReferences: &[]cyclonedx.ExternalReference{
						{
							URL:  "https://github.com/google/purl",
							Type: cyclonedx.ERTypeWebsite,
						},
					},
				},
			},
		},
	}
	if len(c.Authors) > 0 {
		authors := make([]cyclonedx.OrganizationalContact, 0, len(c.Authors))
		for _, author := range c.Authors {
			authors = append(authors, cyclonedx.OrganizationalContact{
				Name: author,
			})
		}
		bom.Metadata.Authors = &authors
	}

	comps := make([]cyclonedx.Component, 0, len(purls))
	for _, p := range purls {
		comps = append(comps, ToCDXComponent(p))
	}
	bom.Components = &comps

	return bom
}

// FromCDX returns the package URLs of all components in a CycloneDX
// document. Components without a parsable purl are skipped with a warning.
func FromCDX(bom *cyclonedx.BOM) []*purl.PackageURL {
	if bom.Components == nil {
		return nil
	}
	purls := make([]*purl.PackageURL, 0, len(*bom.Components))
	for i := range *bom.Components {
		c := &(*bom.Components)[i]
		p, err := FromCDXComponent(c)
		if err != nil {
			log.Warnf("Skipping component %q: %v", c.Name, err)
			continue
		}
		purls = append(purls, p)
	}
	return purls
}

// SPDXConfig describes custom settings that should be applied to the
// generated SPDX file.
type SPDXConfig struct {
	DocumentName      string
	DocumentNamespace string
	Creators          []common.Creator
}

// ToSPDX23 converts a list of package URLs into an SPDX v2.3 document whose
// packages carry PACKAGE-MANAGER/purl external references.
func ToSPDX23(purls []*purl.PackageURL, c SPDXConfig) *v2_3.Document {
	packages := make([]*v2_3.Package, 0, len(purls)+1)

	// Add a main package that contains all other top-level packages.
	mainPackageID := SPDXRefPrefix + "Package-main-" + uuid.New().String()
	packages = append(packages, &v2_3.Package{
		PackageName:           "main",
		PackageSPDXIdentifier: common.ElementID(mainPackageID),
		PackageVersion:        "0",
		PackageSupplier: &common.Supplier{
			Supplier:     NoAssertion,
			SupplierType: NoAssertion,
		},
		PackageDownloadLocation:   NoAssertion,
		IsFilesAnalyzedTagPresent: false,
	})

	relationships := make([]*v2_3.Relationship, 0, 1+2*len(purls))
	relationships = append(relationships, &v2_3.Relationship{
		RefA:         toDocElementID(SPDXDocumentID),
		RefB:         toDocElementID(mainPackageID),
		Relationship: "DESCRIBES",
	})

	for _, p := range purls {
		if p.Name == "" || p.Version == "" {
			log.Warnf("Package %v has no name or version, skipping", p)
			continue
		}
		pID := SPDXRefPrefix + "Package-" + replaceSPDXIDInvalidChars(p.Name) + "-" + uuid.New().String()
		packages = append(packages, &v2_3.Package{
			PackageName:           p.Name,
			PackageSPDXIdentifier: common.ElementID(pID),
			PackageVersion:        p.Version,
			PackageSupplier: &common.Supplier{
				Supplier:     NoAssertion,
				SupplierType: NoAssertion,
			},
			PackageDownloadLocation:   NoAssertion,
			IsFilesAnalyzedTagPresent: false,
			PackageExternalReferences: []*v2_3.PackageExternalReference{
				{
					Category: purlRefCategory,
					RefType:  purlRefType,
					Locator:  p.String(),
				},
			},
		})
		relationships = append(relationships, &v2_3.Relationship{
			RefA:         toDocElementID(mainPackageID),
			RefB:         toDocElementID(pID),
			Relationship: "CONTAINS",
		})
	}

	name := c.DocumentName
	if name == "" {
		name = "purl-generated SPDX"
	}
	namespace := c.DocumentNamespace
	if namespace == "" {
		namespace = "https://spdx.google/" + uuid.New().String()
	}
	creators := []common.Creator{
		{
			CreatorType: "Tool",
			Creator:     "purl",
		},
	}
	creators = append(creators, c.Creators...)

	return &v2_3.Document{
		SPDXVersion:       "SPDX-2.3",
		DataLicense:       "CC0-1.0",
		SPDXIdentifier:    "DOCUMENT",
		DocumentName:      name,
		DocumentNamespace: namespace,
		CreationInfo: &v2_3.CreationInfo{
			Creators: creators,
			Created:  time.Now().UTC().Format("2006-01-02T15:04:05Z"),
		},
		Packages:      packages,
		Relationships: relationships,
	}
}

// FromSPDXPackage recovers the package URL from a package's
// PACKAGE-MANAGER/purl external reference, or nil if it has none.
func FromSPDXPackage(pkg *v2_3.Package) (*purl.PackageURL, error) {
	for _, ref := range pkg.PackageExternalReferences {
		if ref.Category == purlRefCategory && ref.RefType == purlRefType {
			return purl.FromString(ref.Locator)
		}
	}
	return nil, nil
}

func replaceSPDXIDInvalidChars(id string) string {
	return spdxIDInvalidCharRe.ReplaceAllString(id, "-")
}

func toDocElementID(id string) common.DocElementID {
	if id == NoAssertion {
		return common.DocElementID{
			SpecialID: NoAssertion,
		}
	}

	return common.DocElementID{
		ElementRefID: common.ElementID(id),
	}
}
