package domain

import "path/filepath"

const (
	// RecipeFileName is the name of the recipe manifest file.
	RecipeFileName = "recipe.yaml"

	// StandardBuildDirName is the build directory used by the standard layout.
	StandardBuildDirName = "build"

	// StandardGeneratorsDirName is the generators subdirectory used by the standard layout.
	StandardGeneratorsDirName = "generators"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// LayoutKind distinguishes the two layout policies a recipe may declare.
type LayoutKind string

const (
	// LayoutExplicit places generator files in a folder named by the recipe.
	LayoutExplicit LayoutKind = "explicit"

	// LayoutStandard delegates placement to a build-tool convention.
	LayoutStandard LayoutKind = "standard"
)

// ConventionCMake is the only recognized standard layout convention.
const ConventionCMake = "cmake"

// LayoutPolicy describes where generated build files are written relative to
// the recipe directory. Exactly one of Folder (explicit) or Convention
// (standard) is set; the loader enforces this.
type LayoutPolicy struct {
	Kind       LayoutKind
	Folder     string // explicit relative folder, e.g. "conan"
	Convention string // standard convention name, e.g. "cmake"
}

// DefaultLayout is the policy applied when a recipe declares no layout:
// the standard cmake convention.
func DefaultLayout() LayoutPolicy {
	return LayoutPolicy{Kind: LayoutStandard, Convention: ConventionCMake}
}

// GeneratorsDir resolves the directory generator files are written to,
// relative to the recipe directory.
func (p LayoutPolicy) GeneratorsDir() string {
	if p.Kind == LayoutExplicit {
		return filepath.Clean(p.Folder)
	}
	return filepath.Join(StandardBuildDirName, StandardGeneratorsDirName)
}

// Equal reports whether two policies resolve identically.
func (p LayoutPolicy) Equal(other LayoutPolicy) bool {
	return p.Kind == other.Kind && p.Folder == other.Folder && p.Convention == other.Convention
}
