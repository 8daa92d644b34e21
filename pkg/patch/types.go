// Package patch implements the patch catalog: loading the manifest
// produced by the patching toolchain, indexing patches per supported
// app, and resolving which patches and app version a run should use.
package patch

import (
	"fmt"
	"strings"
)

// Version and app markers used in projected patches.
const (
	// VersionAll marks a patch that applies to any version of its app.
	VersionAll = "all"
	// VersionLatest is the recommended version reported when no bucket
	// entry carries a concrete version.
	VersionLatest = "latest"
	// UniversalApp is the app marker for patches with no declared
	// compatible packages.
	UniversalApp = "universal"
)

// CompatiblePackage declares one package a patch is compatible with,
// together with the app versions it supports, oldest first.
type CompatiblePackage struct {
	Name     string   `json:"name"`
	Versions []string `json:"versions"`
}

// Descriptor is one patch record as it appears in the manifest.
// Loaded verbatim and immutable after load.
type Descriptor struct {
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	CompatiblePackages []CompatiblePackage `json:"compatiblePackages"`
}

// Projected is a (patch, compatible package) pairing flattened into
// the record an app bucket holds. One descriptor may project zero, one
// or many of these.
type Projected struct {
	Name        string
	Description string
	// App is the compatible package identifier, or UniversalApp.
	App string
	// Version is the newest supported version, or VersionAll.
	Version string
}

// NormalizedName returns the patch name in request form: lower-case
// with spaces replaced by hyphens.
func (p Projected) NormalizedName() string {
	return NormalizeName(p.Name)
}

// String returns the full identity of the projection.
func (p Projected) String() string {
	return fmt.Sprintf("%s (%s@%s)", p.Name, p.App, p.Version)
}

// NormalizeName converts a patch display name to the form used in
// include/exclude requests.
func NormalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
