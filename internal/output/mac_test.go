// internal/output/mac_test.go
package output

import (
	"bytes"
	"strings"
	"testing"

	"edgemask-core/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandLine(t *testing.T) {
	r := geom.Rect{X: 0, Y: 2024, W: 2048, H: 24}
	assert.Equal(t, "dc rejectrect 0 2024 2048 24", CommandLine(r))
}

func TestCommandLineRoundTrip(t *testing.T) {
	rects := []geom.Rect{
		{X: 0, Y: 0, W: 24, H: 2048},
		{X: 1087, Y: 2022, W: 961, H: 26},
		{X: 4, Y: 2, W: 1, H: 1},
	}
	for _, r := range rects {
		got, err := ParseCommandLine(CommandLine(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
}

func TestParseCommandLineRejectsGarbage(t *testing.T) {
	for _, line := range []string{
		"",
		"dc rejectrect 1 2 3",
		"dc acceptrect 1 2 3 4",
		"rejectrect 1 2 3 4 5",
	} {
		_, err := ParseCommandLine(line)
		assert.Error(t, err, "line %q", line)
	}
}

func TestWriteMac(t *testing.T) {
	var buf bytes.Buffer
	err := WriteMac(&buf, []geom.Rect{
		{X: 0, Y: 0, W: 2048, H: 24},
		{X: 0, Y: 0, W: 24, H: 2048},
	})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "dc rejectrect 0 0 2048 24", lines[0])
	assert.Equal(t, "dc rejectrect 0 0 24 2048", lines[1])
}

func TestWriteMacEmptyProgram(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMac(&buf, nil))
	assert.Zero(t, buf.Len())
}
