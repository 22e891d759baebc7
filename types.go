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

// These are the known purl types as defined in the spec. Some of these require
// special treatment during parsing and normalization.
// https://github.com/package-url/purl-spec/blob/master/PURL-TYPES.rst
const (
	// TypeAlpm is a pkg:alpm purl.
	TypeAlpm = "alpm"
	// TypeApk is a pkg:apk purl.
	TypeApk = "apk"
	// TypeBitbucket is a pkg:bitbucket purl.
	TypeBitbucket = "bitbucket"
	// TypeBitnami is a pkg:bitnami purl.
	TypeBitnami = "bitnami"
	// TypeBrew is a pkg:brew purl.
	TypeBrew = "brew"
	// TypeCargo is a pkg:cargo purl.
	TypeCargo = "cargo"
	// TypeCocoapods is a pkg:cocoapods purl.
	TypeCocoapods = "cocoapods"
	// TypeComposer is a pkg:composer purl.
	TypeComposer = "composer"
	// TypeConan is a pkg:conan purl.
	TypeConan = "conan"
	// TypeConda is a pkg:conda purl.
	TypeConda = "conda"
	// TypeCran is a pkg:cran purl.
	TypeCran = "cran"
	// TypeDebian is a pkg:deb purl.
	TypeDebian = "deb"
	// TypeDocker is a pkg:docker purl.
	TypeDocker = "docker"
	// TypeGem is a pkg:gem purl.
	TypeGem = "gem"
	// TypeGeneric is a pkg:generic purl.
	TypeGeneric = "generic"
	// TypeGithub is a pkg:github purl.
	TypeGithub = "github"
	// TypeGitlab is a pkg:gitlab purl.
	TypeGitlab = "gitlab"
	// TypeGolang is a pkg:golang purl.
	TypeGolang = "golang"
	// TypeHackage is a pkg:hackage purl.
	TypeHackage = "hackage"
	// TypeHex is a pkg:hex purl.
	TypeHex = "hex"
	// TypeHuggingface is a pkg:huggingface purl.
	TypeHuggingface = "huggingface"
	// TypeLuarocks is a pkg:luarocks purl.
	TypeLuarocks = "luarocks"
	// TypeMaven is a pkg:maven purl.
	TypeMaven = "maven"
	// TypeMlflow is a pkg:mlflow purl.
	TypeMlflow = "mlflow"
	// TypeNPM is a pkg:npm purl.
	TypeNPM = "npm"
	// TypeNuget is a pkg:nuget purl.
	TypeNuget = "nuget"
	// TypeOCI is a pkg:oci purl.
	TypeOCI = "oci"
	// TypePub is a pkg:pub purl.
	TypePub = "pub"
	// TypePyPi is a pkg:pypi purl.
	TypePyPi = "pypi"
	// TypeQpkg is a pkg:qpkg purl.
	TypeQpkg = "qpkg"
	// TypeRPM is a pkg:rpm purl.
	TypeRPM = "rpm"
	// TypeSwift is a pkg:swift purl.
	TypeSwift = "swift"
)

// Well-known qualifier names defined by the purl spec, exposed for
// discoverability.
const (
	// QualifierRepositoryURL points at the repository the package was
	// published to, when it is not the type's default one.
	QualifierRepositoryURL = "repository_url"
	// QualifierDownloadURL is a direct download location for the package.
	QualifierDownloadURL = "download_url"
	// QualifierVCSURL points at the package's version control system.
	QualifierVCSURL = "vcs_url"
	// QualifierFileName is the file name of the package artifact.
	QualifierFileName = "file_name"
	// QualifierChecksum is one or more checksums of the package artifact.
	QualifierChecksum = "checksum"
)

// Qualifier names commonly used by OS package types.
const (
	// Distro identifies the distribution an OS package was built for.
	Distro = "distro"
	// Epoch is the epoch segment of an OS package version.
	Epoch = "epoch"
	// Arch is the architecture an OS package was built for.
	Arch = "arch"
	// Origin is the origin package an OS package was built from.
	Origin = "origin"
	// Source is the source package name.
	Source = "source"
	// SourceRPM is the name of the source RPM an rpm was built from.
	SourceRPM = "sourcerpm"
	// Channel is the distribution channel, used by pkg:conan purls.
	Channel = "channel"
)
