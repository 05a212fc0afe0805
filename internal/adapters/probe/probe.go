// Package probe detects settings axis values on the running host.
package probe

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/conspect/conspect/internal/core/domain"
)

// BuildTypeEnv overrides the detected build_type axis value.
const BuildTypeEnv = "CONSPECT_BUILD_TYPE"

// DefaultBuildType is used when no override is set.
const DefaultBuildType = "Release"

// HostProbe implements ports.Probe from the Go runtime and environment.
type HostProbe struct{}

// New creates a new HostProbe.
func New() *HostProbe {
	return &HostProbe{}
}

// Detect returns a value for every recognized axis. It never fails on the
// host itself; the context is honored for callers that cancel early.
func (p *HostProbe) Detect(ctx context.Context) (domain.AxisValues, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cc := os.Getenv("CC")
	if cc == "" {
		cc = os.Getenv("CXX")
	}

	compiler := detectCompiler(runtime.GOOS, cc)
	if version := dumpVersion(ctx, cc); version != "" {
		compiler += "-" + version
	}

	return domain.AxisValues{
		domain.SettingOS:        detectOS(runtime.GOOS),
		domain.SettingCompiler:  compiler,
		domain.SettingBuildType: detectBuildType(os.Getenv(BuildTypeEnv)),
		domain.SettingArch:      detectArch(runtime.GOARCH),
	}, nil
}

// detectOS maps a GOOS value onto the manifest vocabulary.
func detectOS(goos string) string {
	switch goos {
	case "darwin":
		return "Macos"
	case "windows":
		return "Windows"
	case "linux":
		return "Linux"
	default:
		return strings.ToUpper(goos[:1]) + goos[1:]
	}
}

// detectArch maps a GOARCH value onto the manifest vocabulary.
func detectArch(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "armv8"
	case "386":
		return "x86"
	default:
		return goarch
	}
}

// detectCompiler inspects the CC environment variable, falling back to the
// platform default toolchain.
func detectCompiler(goos, cc string) string {
	name := filepath.Base(cc)
	switch {
	case strings.Contains(name, "clang"):
		return "clang"
	case strings.Contains(name, "gcc"):
		return "gcc"
	case goos == "windows":
		return "msvc"
	case goos == "darwin":
		return "apple-clang"
	default:
		return "gcc"
	}
}

// dumpVersion asks the configured compiler for its major version via
// `-dumpversion`. Best effort: an unset, missing, or uncooperative
// compiler yields the empty string.
func dumpVersion(ctx context.Context, cc string) string {
	if cc == "" {
		return ""
	}

	out, err := exec.CommandContext(ctx, cc, "-dumpversion").Output()
	if err != nil {
		return ""
	}

	major, _, _ := strings.Cut(strings.TrimSpace(string(out)), ".")
	if major == "" || strings.ContainsFunc(major, func(r rune) bool { return r < '0' || r > '9' }) {
		return ""
	}
	return major
}

func detectBuildType(override string) string {
	if override != "" {
		return override
	}
	return DefaultBuildType
}
