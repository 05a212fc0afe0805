package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conspect/conspect/internal/adapters/detector"
)

func TestDetectEnvironment_CI(t *testing.T) {
	tests := []struct {
		name    string
		ciValue string
		want    detector.OutputMode
	}{
		{name: "CI=true forces plain mode", ciValue: "true", want: detector.ModePlain},
		{name: "CI=1 forces plain mode", ciValue: "1", want: detector.ModePlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ciValue)
			assert.Equal(t, tt.want, detector.DetectEnvironment())
		})
	}
}

func TestDetectEnvironment_NonTTY(t *testing.T) {
	// Test runners never attach stdout to a terminal, so auto-detection
	// must land on plain output even without CI set.
	t.Setenv("CI", "")
	assert.Equal(t, detector.ModePlain, detector.DetectEnvironment())
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name     string
		detected detector.OutputMode
		flag     string
		want     detector.OutputMode
	}{
		{name: "tui override", detected: detector.ModePlain, flag: "tui", want: detector.ModeTUI},
		{name: "plain override", detected: detector.ModeTUI, flag: "plain", want: detector.ModePlain},
		{name: "ci alias", detected: detector.ModeTUI, flag: "ci", want: detector.ModePlain},
		{name: "auto keeps detection", detected: detector.ModeTUI, flag: "auto", want: detector.ModeTUI},
		{name: "empty keeps detection", detected: detector.ModePlain, flag: "", want: detector.ModePlain},
		{name: "unknown keeps detection", detected: detector.ModeTUI, flag: "fancy", want: detector.ModeTUI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.ResolveMode(tt.detected, tt.flag))
		})
	}
}
