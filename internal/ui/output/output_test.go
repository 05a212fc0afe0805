package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conspect/conspect/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
}

func TestNew_NilWriterDefaults(t *testing.T) {
	out := output.New(nil)
	require.NotNil(t, out)
}

func TestNew_WritesToProvidedWriter(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	out := output.New(&buf)
	_, err := out.WriteString("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", buf.String())
}
