// core/geom/geom.go
package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry flags frame or ellipse parameters no mask can be
// computed from. Degenerate-but-valid inputs (zero radius, zero frame)
// are not errors; they yield an empty program instead.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Frame is the detector pixel grid, covering [0,Width) x [0,Height).
type Frame struct {
	Width  int
	Height int
}

// Validate rejects negative dimensions. A zero dimension is allowed and
// produces an empty mask program downstream.
func (f Frame) Validate() error {
	if f.Width < 0 || f.Height < 0 {
		return fmt.Errorf("%w: frame %dx%d has a negative dimension", ErrInvalidGeometry, f.Width, f.Height)
	}
	return nil
}

// Empty reports whether the frame contains no pixels.
func (f Frame) Empty() bool { return f.Width == 0 || f.Height == 0 }

// Bounds returns the frame as a Rect anchored at the origin.
func (f Frame) Bounds() Rect { return Rect{X: 0, Y: 0, W: f.Width, H: f.Height} }

// Ellipse is the detector-accessible region
//
//	((x-cx)/rx)^2 + ((y-cy)/ry)^2 <= 1
//
// in continuous pixel coordinates. Radii are equal for a circle.
type Ellipse struct {
	CenterX float64
	CenterY float64
	RadiusX float64
	RadiusY float64
}

// Circle returns an ellipse with equal radii.
func Circle(cx, cy, r float64) Ellipse {
	return Ellipse{CenterX: cx, CenterY: cy, RadiusX: r, RadiusY: r}
}

// Validate rejects negative or non-finite parameters. Zero radii are
// allowed (degenerate ellipse, empty program).
func (e Ellipse) Validate() error {
	if e.RadiusX < 0 || e.RadiusY < 0 {
		return fmt.Errorf("%w: negative radius (%g, %g)", ErrInvalidGeometry, e.RadiusX, e.RadiusY)
	}
	for _, v := range [...]float64{e.CenterX, e.CenterY, e.RadiusX, e.RadiusY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite parameter %g", ErrInvalidGeometry, v)
		}
	}
	return nil
}

// Degenerate reports whether the ellipse encloses no area.
func (e Ellipse) Degenerate() bool { return e.RadiusX == 0 || e.RadiusY == 0 }

// OutsideOf reports whether the ellipse lies entirely off the frame, so
// that no row intersects it and no edge arc is visible.
func (e Ellipse) OutsideOf(f Frame) bool {
	return e.CenterX+e.RadiusX <= 0 ||
		e.CenterX-e.RadiusX >= float64(f.Width) ||
		e.CenterY+e.RadiusY <= 0 ||
		e.CenterY-e.RadiusY >= float64(f.Height)
}

// Span is the populated part of one detector row: inclusive column
// bounds [XMin, XMax].
type Span struct {
	Row  int
	XMin int
	XMax int
}

// Width returns the number of columns the span covers.
func (s Span) Width() int { return s.XMax - s.XMin + 1 }

// Rect is an axis-aligned pixel rectangle in origin+size form, matching
// the rejectrect command operands.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Clip intersects the rectangle with the frame bounds.
func (r Rect) Clip(f Frame) Rect {
	x1, y1 := r.X, r.Y
	x2, y2 := r.X+r.W, r.Y+r.H
	if x1 < 0 {
		x1 = 0
	}
	if y1 < 0 {
		y1 = 0
	}
	if x2 > f.Width {
		x2 = f.Width
	}
	if y2 > f.Height {
		y2 = f.Height
	}
	if x2 < x1 {
		x2 = x1
	}
	if y2 < y1 {
		y2 = y1
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Pix rounds a continuous pixel coordinate to the nearest integer pixel,
// halves away from zero.
func Pix(v float64) int { return int(math.Round(v)) }
