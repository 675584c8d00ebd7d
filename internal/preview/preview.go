// internal/preview/preview.go
package preview

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"

	"edgemask-core/geom"
)

// Accessible area light, rejected rectangles dark.
var (
	colorFrame  = color.NRGBA{R: 235, G: 235, B: 235, A: 255}
	colorReject = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
)

// Render paints the frame with every rejected rectangle filled in.
// Detector row 0 is the south edge, so rows are flipped to keep north
// up in the image.
func Render(fr geom.Frame, rects []geom.Rect) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fr.Width, fr.Height))
	fill(img, fr, fr.Bounds(), colorFrame)
	for _, r := range rects {
		fill(img, fr, r.Clip(fr), colorReject)
	}
	return img
}

func fill(img *image.NRGBA, fr geom.Frame, r geom.Rect, c color.NRGBA) {
	for y := r.Y; y < r.Y+r.H; y++ {
		iy := fr.Height - 1 - y
		for x := r.X; x < r.X+r.W; x++ {
			img.SetNRGBA(x, iy, c)
		}
	}
}

// Scale resizes the preview so its longer side is max pixels, with a
// bilinear kernel. max <= 0 or an already-small image is returned
// unchanged.
func Scale(img *image.NRGBA, max int) *image.NRGBA {
	if max <= 0 {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	long := w
	if h > long {
		long = h
	}
	if long <= max {
		return img
	}
	sw, sh := w*max/long, h*max/long
	if sw < 1 {
		sw = 1
	}
	if sh < 1 {
		sh = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, sw, sh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// Save renders the mask and writes it as a PNG, overwriting path.
func Save(path string, fr geom.Frame, rects []geom.Rect, maxSize int) error {
	if fr.Empty() {
		return errors.Errorf("frame %dx%d has no pixels to preview", fr.Width, fr.Height)
	}
	img := Scale(Render(fr, rects), maxSize)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create preview")
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "encode preview")
	}
	return errors.Wrap(f.Close(), "close preview")
}
