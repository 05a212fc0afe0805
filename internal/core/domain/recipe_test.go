package domain_test

import (
	"errors"
	"testing"

	"github.com/conspect/conspect/internal/core/domain"
)

func TestParseRequirement(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Requirement
		wantErr bool
	}{
		{
			name:  "simple",
			input: "fmt/10.2.1",
			want:  domain.Requirement{Name: "fmt", Version: "10.2.1"},
		},
		{
			name:  "dotted name",
			input: "boost-ext-ut/1.1.9",
			want:  domain.Requirement{Name: "boost-ext-ut", Version: "1.1.9"},
		},
		{
			name:  "version with channel suffix",
			input: "zlib/1.3.1@local/stable",
			want:  domain.Requirement{Name: "zlib", Version: "1.3.1@local/stable"},
		},
		{
			name:    "missing separator",
			input:   "boost",
			wantErr: true,
		},
		{
			name:    "empty name",
			input:   "/1.83.0",
			wantErr: true,
		},
		{
			name:    "empty version",
			input:   "boost/",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseRequirement(tt.input)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrMalformedRequirement) {
					t.Errorf("ParseRequirement(%q) error = %v, want ErrMalformedRequirement", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRequirement(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRequirement(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRequirement_String_RoundTrip(t *testing.T) {
	req := domain.Requirement{Name: "boost", Version: "1.83.0"}
	parsed, err := domain.ParseRequirement(req.String())
	if err != nil {
		t.Fatalf("ParseRequirement(%q) unexpected error: %v", req.String(), err)
	}
	if parsed != req {
		t.Errorf("round trip = %v, want %v", parsed, req)
	}
}

func TestValidSetting(t *testing.T) {
	for _, s := range domain.KnownSettings {
		if !domain.ValidSetting(s) {
			t.Errorf("ValidSetting(%q) = false, want true", s)
		}
	}
	for _, s := range []domain.Setting{"cppstd", "libc", "", "OS"} {
		if domain.ValidSetting(s) {
			t.Errorf("ValidSetting(%q) = true, want false", s)
		}
	}
}

func TestValidGenerator(t *testing.T) {
	for _, g := range domain.KnownGenerators {
		if !domain.ValidGenerator(g) {
			t.Errorf("ValidGenerator(%q) = false, want true", g)
		}
	}
	if domain.ValidGenerator("AutotoolsToolchain") {
		t.Error("ValidGenerator(AutotoolsToolchain) = true, want false")
	}
	if domain.ValidGenerator("cmakedeps") {
		t.Error("ValidGenerator(cmakedeps) = true, want false (names are case sensitive)")
	}
}

func TestRecipe_Requirement(t *testing.T) {
	r := &domain.Recipe{
		Requires: []domain.Requirement{
			{Name: "boost", Version: "1.83.0"},
			{Name: "fmt", Version: "10.2.1"},
		},
	}

	req, ok := r.Requirement("fmt")
	if !ok || req.Version != "10.2.1" {
		t.Errorf("Requirement(fmt) = %v, %v, want 10.2.1, true", req, ok)
	}

	if _, ok := r.Requirement("catch2"); ok {
		t.Error("Requirement(catch2) found, want absent")
	}
}

func TestRecipe_HasSetting(t *testing.T) {
	r := &domain.Recipe{Settings: []domain.Setting{domain.SettingOS, domain.SettingArch}}
	if !r.HasSetting(domain.SettingOS) {
		t.Error("HasSetting(os) = false, want true")
	}
	if r.HasSetting(domain.SettingCompiler) {
		t.Error("HasSetting(compiler) = true, want false")
	}
}
