package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"github.com/conspect/conspect/internal/adapters/logger"
	"github.com/conspect/conspect/internal/core/domain"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated
// testing. It sets NO_COLOR=1 so output carries no ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		goldenName string
	}{
		{
			name:       "simple message",
			msg:        "recipe loaded",
			goldenName: "info_basic",
		},
		{
			name:       "empty message",
			msg:        "",
			goldenName: "info_empty",
		},
		{
			name:       "multiline message",
			msg:        "line1\nline2",
			goldenName: "info_multiline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("deprecated generator")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "plain error",
			err:        errors.New("something broke"),
			goldenName: "error_plain",
		},
		{
			name:       "single zerr",
			err:        domain.ErrRecipeNotFound,
			goldenName: "error_zerr_single",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				errors.New("yaml: line 3: mapping values are not allowed in this context"),
				domain.ErrRecipeParseFailed.Error(),
			),
			goldenName: "error_zerr_chain",
		},
		{
			name: "three level chain",
			err: zerr.Wrap(
				zerr.Wrap(
					errors.New("permission denied"),
					domain.ErrRecipeReadFailed.Error(),
				),
				"failed to inspect recipe",
			),
			goldenName: "error_zerr_three",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_JSONMode(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Info("recipe loaded")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"msg":"recipe loaded"`)
	assert.Contains(t, out, `"level":"INFO"`)
}

func TestLogger_JSONMode_Error(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(errors.New("something broke"))

	out := buf.String()
	assert.Contains(t, out, `"msg":"operation failed"`)
	assert.Contains(t, out, `"error":"something broke"`)
}

func TestLogger_SetJSON_PreservesOutput(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.SetJSON(false)
	lg.Info("still here")

	assert.Contains(t, buf.String(), "still here")
}
