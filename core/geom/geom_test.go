package geom

import (
	"errors"
	"math"
	"testing"
)

func TestFrameValidate(t *testing.T) {
	if err := (Frame{Width: 2048, Height: 2048}).Validate(); err != nil {
		t.Fatalf("valid frame rejected: %v", err)
	}
	if err := (Frame{Width: 0, Height: 0}).Validate(); err != nil {
		t.Fatalf("zero frame must be valid (empty program), got %v", err)
	}
	err := (Frame{Width: -1, Height: 10}).Validate()
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("negative width: want ErrInvalidGeometry, got %v", err)
	}
}

func TestEllipseValidate(t *testing.T) {
	cases := []struct {
		name string
		el   Ellipse
		ok   bool
	}{
		{"circle", Circle(1024, 1024, 1000), true},
		{"zero radius", Ellipse{CenterX: 1, CenterY: 1}, true},
		{"negative radius", Ellipse{RadiusX: -5, RadiusY: 5}, false},
		{"nan center", Ellipse{CenterX: math.NaN(), RadiusX: 1, RadiusY: 1}, false},
		{"inf radius", Ellipse{RadiusX: math.Inf(1), RadiusY: 1}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.el.Validate()
			if c.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !c.ok && !errors.Is(err, ErrInvalidGeometry) {
				t.Fatalf("want ErrInvalidGeometry, got %v", err)
			}
		})
	}
}

func TestEllipseOutsideOf(t *testing.T) {
	f := Frame{Width: 100, Height: 100}
	if Circle(50, 50, 10).OutsideOf(f) {
		t.Fatal("interior circle reported outside")
	}
	if !Circle(-20, 50, 10).OutsideOf(f) {
		t.Fatal("circle left of frame not reported outside")
	}
	if !Circle(50, 115, 10).OutsideOf(f) {
		t.Fatal("circle below frame not reported outside")
	}
	// Touching the edge from outside covers no pixel.
	if !Circle(-10, 50, 10).OutsideOf(f) {
		t.Fatal("tangent-from-outside circle not reported outside")
	}
}

func TestPix(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0, 0}, {0.4, 0}, {0.5, 1}, {1.5, 2}, {2022.027, 2022}, {-0.5, -1}, {-1.2, -1},
	}
	for _, c := range cases {
		if got := Pix(c.in); got != c.want {
			t.Errorf("Pix(%g) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestRectClip(t *testing.T) {
	f := Frame{Width: 10, Height: 8}
	r := Rect{X: -2, Y: 3, W: 20, H: 20}.Clip(f)
	if r != (Rect{X: 0, Y: 3, W: 10, H: 5}) {
		t.Fatalf("clip = %+v", r)
	}
	if got := (Rect{X: 50, Y: 50, W: 5, H: 5}).Clip(f); !got.Empty() {
		t.Fatalf("off-frame rect must clip to empty, got %+v", got)
	}
}

func TestSpanWidth(t *testing.T) {
	if w := (Span{Row: 0, XMin: 3, XMax: 3}).Width(); w != 1 {
		t.Fatalf("single-pixel span width = %d", w)
	}
	if w := (Span{Row: 0, XMin: 2, XMax: 6}).Width(); w != 5 {
		t.Fatalf("span width = %d", w)
	}
}
