package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conspect/conspect/internal/core/domain"
)

// The two snapshots mirror the historical recipe revisions this tool was
// first pointed at: revision A pins three libraries and an explicit "conan"
// generators folder, revision B drops boost, bumps the test framework, and
// switches to the standard cmake layout.
func snapshotA() *domain.Recipe {
	return &domain.Recipe{
		Settings: []domain.Setting{
			domain.SettingOS, domain.SettingCompiler, domain.SettingBuildType, domain.SettingArch,
		},
		Generators: []domain.Generator{domain.GeneratorCMakeToolchain, domain.GeneratorCMakeDeps},
		Requires: []domain.Requirement{
			{Name: "boost", Version: "1.83.0"},
			{Name: "boost-ext-ut", Version: "1.1.9"},
			{Name: "fmt", Version: "10.2.1"},
		},
		Layout: domain.LayoutPolicy{Kind: domain.LayoutExplicit, Folder: "conan"},
	}
}

func snapshotB() *domain.Recipe {
	return &domain.Recipe{
		Settings: []domain.Setting{
			domain.SettingOS, domain.SettingCompiler, domain.SettingBuildType, domain.SettingArch,
		},
		Generators: []domain.Generator{domain.GeneratorCMakeToolchain, domain.GeneratorCMakeDeps},
		Requires: []domain.Requirement{
			{Name: "boost-ext-ut", Version: "2.0.1"},
			{Name: "fmt", Version: "10.2.1"},
		},
		Layout: domain.DefaultLayout(),
	}
}

func TestCompare_Snapshots(t *testing.T) {
	a, b := snapshotA(), snapshotB()
	require.Len(t, a.Requires, 3)
	require.Len(t, b.Requires, 2)

	d := domain.Compare(a, b)

	require.Len(t, d.Requirements, 2)

	boost := d.Requirements[0]
	assert.Equal(t, "boost", boost.Name)
	assert.True(t, boost.Removed())
	assert.Equal(t, "1.83.0", boost.From)

	ut := d.Requirements[1]
	assert.Equal(t, "boost-ext-ut", ut.Name)
	assert.False(t, ut.Added())
	assert.False(t, ut.Removed())
	assert.Equal(t, "1.1.9", ut.From)
	assert.Equal(t, "2.0.1", ut.To)

	assert.Empty(t, d.SettingsAdded)
	assert.Empty(t, d.SettingsRemoved)
	assert.Empty(t, d.GeneratorsAdded)
	assert.Empty(t, d.GeneratorsRemoved)

	assert.True(t, d.LayoutChanged)
	assert.Equal(t, domain.LayoutExplicit, d.LayoutFrom.Kind)
	assert.Equal(t, "conan", d.LayoutFrom.Folder)
	assert.Equal(t, domain.LayoutStandard, d.LayoutTo.Kind)
}

func TestCompare_Identical(t *testing.T) {
	d := domain.Compare(snapshotA(), snapshotA())
	assert.True(t, d.Empty())
}

func TestCompare_Reversed(t *testing.T) {
	d := domain.Compare(snapshotB(), snapshotA())

	require.Len(t, d.Requirements, 2)
	assert.Equal(t, "boost-ext-ut", d.Requirements[0].Name)
	assert.Equal(t, "2.0.1", d.Requirements[0].From)
	assert.Equal(t, "1.1.9", d.Requirements[0].To)

	assert.Equal(t, "boost", d.Requirements[1].Name)
	assert.True(t, d.Requirements[1].Added())
	assert.Equal(t, "1.83.0", d.Requirements[1].To)
}

func TestCompare_SettingsAndGenerators(t *testing.T) {
	a := snapshotA()
	b := snapshotB()
	b.Settings = []domain.Setting{domain.SettingOS, domain.SettingArch}
	b.Generators = []domain.Generator{domain.GeneratorCMakeToolchain, domain.GeneratorPkgConfigDeps}

	d := domain.Compare(a, b)

	assert.ElementsMatch(t, []domain.Setting{domain.SettingCompiler, domain.SettingBuildType}, d.SettingsRemoved)
	assert.Empty(t, d.SettingsAdded)
	assert.Equal(t, []domain.Generator{domain.GeneratorCMakeDeps}, d.GeneratorsRemoved)
	assert.Equal(t, []domain.Generator{domain.GeneratorPkgConfigDeps}, d.GeneratorsAdded)
}
