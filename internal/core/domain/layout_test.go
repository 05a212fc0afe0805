package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/conspect/conspect/internal/core/domain"
)

func TestLayoutPolicy_GeneratorsDir(t *testing.T) {
	tests := []struct {
		name     string
		policy   domain.LayoutPolicy
		expected string
	}{
		{
			name:     "explicit folder",
			policy:   domain.LayoutPolicy{Kind: domain.LayoutExplicit, Folder: "conan"},
			expected: "conan",
		},
		{
			name:     "explicit folder is cleaned",
			policy:   domain.LayoutPolicy{Kind: domain.LayoutExplicit, Folder: "out/./conan"},
			expected: filepath.Join("out", "conan"),
		},
		{
			name:     "standard cmake convention",
			policy:   domain.LayoutPolicy{Kind: domain.LayoutStandard, Convention: domain.ConventionCMake},
			expected: filepath.Join("build", "generators"),
		},
		{
			name:     "default layout",
			policy:   domain.DefaultLayout(),
			expected: filepath.Join("build", "generators"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.GeneratorsDir(); got != tt.expected {
				t.Errorf("GeneratorsDir() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLayoutPolicy_Equal(t *testing.T) {
	explicit := domain.LayoutPolicy{Kind: domain.LayoutExplicit, Folder: "conan"}
	standard := domain.DefaultLayout()

	if !explicit.Equal(explicit) {
		t.Error("policy not equal to itself")
	}
	if explicit.Equal(standard) {
		t.Error("explicit and standard layouts compare equal")
	}
	other := domain.LayoutPolicy{Kind: domain.LayoutExplicit, Folder: "generated"}
	if explicit.Equal(other) {
		t.Error("different explicit folders compare equal")
	}
}
