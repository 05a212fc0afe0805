package probe_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conspect/conspect/internal/adapters/probe"
	"github.com/conspect/conspect/internal/core/domain"
)

func TestHostProbe_Detect_CoversAllAxes(t *testing.T) {
	t.Setenv("CC", "")
	t.Setenv("CXX", "")
	t.Setenv(probe.BuildTypeEnv, "")

	values, err := probe.New().Detect(t.Context())
	require.NoError(t, err)

	for _, axis := range domain.KnownSettings {
		assert.NotEmpty(t, values[axis], "axis %s must have a value", axis)
	}
	assert.Len(t, values, len(domain.KnownSettings))
}

func TestHostProbe_Detect_BuildTypeOverride(t *testing.T) {
	t.Setenv(probe.BuildTypeEnv, "Debug")

	values, err := probe.New().Detect(t.Context())
	require.NoError(t, err)

	assert.Equal(t, "Debug", values[domain.SettingBuildType])
}

func TestHostProbe_Detect_BuildTypeDefault(t *testing.T) {
	t.Setenv(probe.BuildTypeEnv, "")

	values, err := probe.New().Detect(t.Context())
	require.NoError(t, err)

	assert.Equal(t, probe.DefaultBuildType, values[domain.SettingBuildType])
}

func TestHostProbe_Detect_CompilerFromCC(t *testing.T) {
	// Nonexistent paths so the version probe stays silent and only the
	// family is detected.
	tests := []struct {
		name string
		cc   string
		want string
	}{
		{name: "clang", cc: "/nonexistent/bin/clang", want: "clang"},
		{name: "versioned clang", cc: "/nonexistent/bin/clang-18", want: "clang"},
		{name: "gcc", cc: "/nonexistent/bin/gcc", want: "gcc"},
		{name: "cross gcc", cc: "/nonexistent/cross/bin/aarch64-linux-gnu-gcc", want: "gcc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CC", tt.cc)

			values, err := probe.New().Detect(t.Context())
			require.NoError(t, err)

			assert.Equal(t, tt.want, values[domain.SettingCompiler])
		})
	}
}

func TestHostProbe_Detect_CompilerFromCXX(t *testing.T) {
	t.Setenv("CC", "")
	t.Setenv("CXX", "/nonexistent/bin/clang++")

	values, err := probe.New().Detect(t.Context())
	require.NoError(t, err)

	assert.Equal(t, "clang", values[domain.SettingCompiler])
}

func TestHostProbe_Detect_CompilerVersion(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake compiler script requires a POSIX shell")
	}

	cc := filepath.Join(t.TempDir(), "gcc")
	require.NoError(t, os.WriteFile(cc, []byte("#!/bin/sh\necho 13.2.0\n"), 0o755))
	t.Setenv("CC", cc)

	values, err := probe.New().Detect(t.Context())
	require.NoError(t, err)

	assert.Equal(t, "gcc-13", values[domain.SettingCompiler])
}

func TestHostProbe_Detect_OSVocabulary(t *testing.T) {
	values, err := probe.New().Detect(t.Context())
	require.NoError(t, err)

	switch runtime.GOOS {
	case "linux":
		assert.Equal(t, "Linux", values[domain.SettingOS])
	case "darwin":
		assert.Equal(t, "Macos", values[domain.SettingOS])
	case "windows":
		assert.Equal(t, "Windows", values[domain.SettingOS])
	}
}

func TestHostProbe_Detect_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := probe.New().Detect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
