// Package domain contains the core model for recipe manifests.
package domain

import "strings"

// Setting is a platform axis that participates in the package fingerprint.
type Setting string

// The recognized settings axes. The set is closed: a recipe may declare a
// subset, but nothing outside it.
const (
	SettingOS        Setting = "os"
	SettingCompiler  Setting = "compiler"
	SettingBuildType Setting = "build_type"
	SettingArch      Setting = "arch"
)

// KnownSettings lists the recognized axes in their canonical order.
var KnownSettings = []Setting{SettingOS, SettingCompiler, SettingBuildType, SettingArch}

// Generator names an output-file generator strategy invoked by the external
// package manager. The recipe treats generators as an opaque ordered list;
// only membership in the recognized set is validated here.
type Generator string

// The recognized generators.
const (
	GeneratorCMakeToolchain Generator = "CMakeToolchain"
	GeneratorCMakeDeps      Generator = "CMakeDeps"
	GeneratorPkgConfigDeps  Generator = "PkgConfigDeps"
	GeneratorMesonToolchain Generator = "MesonToolchain"
)

// KnownGenerators lists the recognized generator names.
var KnownGenerators = []Generator{
	GeneratorCMakeToolchain,
	GeneratorCMakeDeps,
	GeneratorPkgConfigDeps,
	GeneratorMesonToolchain,
}

// Requirement is a pinned dependency coordinate. Name and Version are opaque
// to conspect; resolution belongs to the external dependency solver.
type Requirement struct {
	Name    string
	Version string
}

// String returns the requirement in its wire form, name/version.
func (r Requirement) String() string {
	return r.Name + "/" + r.Version
}

// ParseRequirement parses a name/version string into a Requirement.
// Both parts must be non-empty; the version may itself contain slashes
// (e.g. channel suffixes), so only the first separator splits.
func ParseRequirement(s string) (Requirement, error) {
	name, version, found := strings.Cut(s, "/")
	if !found || name == "" || version == "" {
		return Requirement{}, Tag(ErrMalformedRequirement, "requirement", s)
	}
	return Requirement{Name: name, Version: version}, nil
}

// Recipe is the parsed, immutable dependency manifest. It is pure declared
// data: constructed once by the loader, read by every operation, never
// mutated afterwards.
type Recipe struct {
	// Path is the location the recipe was loaded from.
	Path string

	// Settings are the platform axes that vary the produced artifact identity.
	Settings []Setting

	// Generators is the ordered list of generator strategies to invoke.
	Generators []Generator

	// Requires is the ordered list of pinned dependencies.
	// Names are unique within the list.
	Requires []Requirement

	// Layout describes where generated build files are placed.
	Layout LayoutPolicy
}

// Requirement returns the pinned requirement with the given name, if declared.
func (r *Recipe) Requirement(name string) (Requirement, bool) {
	for _, req := range r.Requires {
		if req.Name == name {
			return req, true
		}
	}
	return Requirement{}, false
}

// HasSetting reports whether the recipe declares the given axis.
func (r *Recipe) HasSetting(s Setting) bool {
	for _, have := range r.Settings {
		if have == s {
			return true
		}
	}
	return false
}

// ValidSetting reports whether s belongs to the recognized axis set.
func ValidSetting(s Setting) bool {
	for _, known := range KnownSettings {
		if s == known {
			return true
		}
	}
	return false
}

// ValidGenerator reports whether g belongs to the recognized generator set.
func ValidGenerator(g Generator) bool {
	for _, known := range KnownGenerators {
		if g == known {
			return true
		}
	}
	return false
}
