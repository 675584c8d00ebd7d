// internal/preview/preview_test.go
package preview

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"edgemask-core/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFlipsRows(t *testing.T) {
	fr := geom.Frame{Width: 4, Height: 4}
	// Reject the bottom detector row; it must land at the bottom of the
	// image, which is the highest image y.
	img := Render(fr, []geom.Rect{{X: 0, Y: 0, W: 4, H: 1}})
	assert.Equal(t, colorReject, img.NRGBAAt(0, 3))
	assert.Equal(t, colorFrame, img.NRGBAAt(0, 0))
}

func TestRenderClipsToFrame(t *testing.T) {
	fr := geom.Frame{Width: 4, Height: 4}
	img := Render(fr, []geom.Rect{{X: -10, Y: -10, W: 100, H: 100}})
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, colorReject, img.NRGBAAt(x, y))
		}
	}
}

func TestScale(t *testing.T) {
	fr := geom.Frame{Width: 200, Height: 100}
	img := Render(fr, nil)

	small := Scale(img, 50)
	assert.Equal(t, 50, small.Bounds().Dx())
	assert.Equal(t, 25, small.Bounds().Dy())

	// Native size requested, or already small enough: unchanged.
	assert.Equal(t, img, Scale(img, 0))
	assert.Equal(t, img, Scale(img, 400))
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mask.png")
	fr := geom.Frame{Width: 64, Height: 64}
	rects := []geom.Rect{{X: 0, Y: 0, W: 64, H: 8}}
	require.NoError(t, Save(path, fr, rects, 32))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
}

func TestSaveEmptyFrame(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "mask.png"), geom.Frame{}, nil, 0)
	assert.Error(t, err)
}
