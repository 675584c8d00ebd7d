// core/mask/mask.go
package mask

import (
	"math"

	"edgemask-core/geom"
)

// DefaultResolution is the edge-mode command budget. CrysAlisPro accepts
// only on the order of 100 rejectrect commands per script, so callers
// should keep the budget at or below this.
const DefaultResolution = 100

// Mask converts one elliptical accessible region on one detector frame
// into rectangle-exclusion programs. Values are immutable after New.
type Mask struct {
	fr geom.Frame
	el geom.Ellipse
}

// New validates the geometry and returns a rectanglizer for it. No
// partial program is ever produced from invalid input.
func New(fr geom.Frame, el geom.Ellipse) (*Mask, error) {
	if err := fr.Validate(); err != nil {
		return nil, err
	}
	if err := el.Validate(); err != nil {
		return nil, err
	}
	return &Mask{fr: fr, el: el}, nil
}

// Frame returns the detector frame the mask was built for.
func (m *Mask) Frame() geom.Frame { return m.fr }

// Ellipse returns the accessible region the mask was built for.
func (m *Mask) Ellipse() geom.Ellipse { return m.el }

// Gaps between the ellipse extremes and the frame edges. Negative means
// the ellipse is clipped by that edge.
func (m *Mask) northGap() float64 { return float64(m.fr.Height) - m.el.CenterY - m.el.RadiusY }
func (m *Mask) eastGap() float64  { return float64(m.fr.Width) - m.el.CenterX - m.el.RadiusX }
func (m *Mask) southGap() float64 { return m.el.CenterY - m.el.RadiusY }
func (m *Mask) westGap() float64  { return m.el.CenterX - m.el.RadiusX }

// Edge point at angle phi, measured clockwise from the north pole of the
// ellipse: phi=0 is north, pi/2 east, pi south, 3pi/2 west.
func (m *Mask) edgeX(phi float64) float64 { return m.el.CenterX + m.el.RadiusX*math.Sin(phi) }
func (m *Mask) edgeY(phi float64) float64 { return m.el.CenterY + m.el.RadiusY*math.Cos(phi) }

// sideRects returns the straight exclusion strips for every frame edge
// the ellipse does not reach. Strips whose thickness rounds to zero are
// dropped so the program never contains empty rectangles.
func (m *Mask) sideRects() []geom.Rect {
	var rects []geom.Rect
	w, h := m.fr.Width, m.fr.Height
	if g := geom.Pix(m.northGap()); m.northGap() >= 0 && g > 0 {
		rects = append(rects, geom.Rect{X: 0, Y: h - g, W: w, H: g})
	}
	if g := geom.Pix(m.eastGap()); m.eastGap() >= 0 && g > 0 {
		rects = append(rects, geom.Rect{X: w - g, Y: 0, W: g, H: h})
	}
	if g := geom.Pix(m.southGap()); m.southGap() >= 0 && g > 0 {
		rects = append(rects, geom.Rect{X: 0, Y: 0, W: w, H: g})
	}
	if g := geom.Pix(m.westGap()); m.westGap() >= 0 && g > 0 {
		rects = append(rects, geom.Rect{X: 0, Y: 0, W: g, H: h})
	}
	return rects
}

// arc is one quadrant of the ellipse edge, restricted to the part that
// is visible inside the frame. rect anchors a corner rectangle at the
// edge point (x, y).
type arc struct {
	start float64
	end   float64
	rect  func(x, y float64) geom.Rect
}

func (a arc) length() float64 { return a.end - a.start }

// clampUnit keeps inverse-trig arguments inside [-1, 1]; after the
// outside-frame guard the arguments are in range up to float error.
func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// arcs returns the four quadrant arcs NE, SE, SW, NW in emission order.
// A clipped frame edge shortens the adjacent arcs so that only the
// visible part of the ellipse boundary is sampled.
func (m *Mask) arcs() []arc {
	w, h := m.fr.Width, m.fr.Height
	rx, ry := m.el.RadiusX, m.el.RadiusY
	north, east := m.northGap(), m.eastGap()
	south, west := m.southGap(), m.westGap()
	halfPi := math.Pi / 2

	neStart, neEnd := 0.0, halfPi
	if north < 0 {
		neStart = math.Acos(clampUnit(1 + north/ry))
	}
	if east < 0 {
		neEnd = math.Asin(clampUnit(1 + east/rx))
	}
	seStart, seEnd := halfPi, math.Pi
	if east < 0 {
		seStart = math.Pi - math.Asin(clampUnit(1+east/rx))
	}
	if south < 0 {
		seEnd = math.Pi - math.Acos(clampUnit(1+south/ry))
	}
	swStart, swEnd := math.Pi, 3*halfPi
	if south < 0 {
		swStart = math.Pi + math.Acos(clampUnit(1+south/ry))
	}
	if west < 0 {
		swEnd = math.Pi + math.Asin(clampUnit(1+west/rx))
	}
	nwStart, nwEnd := 3*halfPi, 2*math.Pi
	if west < 0 {
		nwStart = 2*math.Pi - math.Asin(clampUnit(1+west/rx))
	}
	if north < 0 {
		nwEnd = 2*math.Pi - math.Acos(clampUnit(1+north/ry))
	}

	// Far extents are frame-minus-rounded-near so corner rectangles tile
	// exactly to the frame edge.
	return []arc{
		{neStart, neEnd, func(x, y float64) geom.Rect {
			px, py := geom.Pix(x), geom.Pix(y)
			return geom.Rect{X: px, Y: py, W: w - px, H: h - py}
		}},
		{seStart, seEnd, func(x, y float64) geom.Rect {
			px := geom.Pix(x)
			return geom.Rect{X: px, Y: 0, W: w - px, H: geom.Pix(y)}
		}},
		{swStart, swEnd, func(x, y float64) geom.Rect {
			return geom.Rect{X: 0, Y: 0, W: geom.Pix(x), H: geom.Pix(y)}
		}},
		{nwStart, nwEnd, func(x, y float64) geom.Rect {
			py := geom.Pix(y)
			return geom.Rect{X: 0, Y: py, W: geom.Pix(x), H: h - py}
		}},
	}
}

// EdgeRects approximates the band between the ellipse edge and the frame
// border: one strip per unclipped frame edge, then corner rectangles
// anchored at edge points sampled along the visible quadrant arcs. The
// budget (total command count) is split across the arcs proportionally
// to their angular length; resolution <= 0 selects DefaultResolution.
//
// The emission order is fixed: north, east, south, west strips, then
// NE, SE, SW, NW arc samples, each arc swept in increasing angle.
func (m *Mask) EdgeRects(resolution int) []geom.Rect {
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	if m.fr.Empty() || m.el.Degenerate() || m.el.OutsideOf(m.fr) {
		return nil
	}

	rects := m.sideRects()
	budget := resolution - len(rects)
	if budget <= 0 {
		return rects
	}

	arcs := m.arcs()
	total := 0.0
	for _, a := range arcs {
		if a.length() > 0 {
			total += a.length()
		}
	}
	if total <= 0 {
		return rects
	}

	for _, a := range arcs {
		if a.length() <= 0 {
			continue
		}
		n := int(a.length() / total * float64(budget))
		// Interior samples only; the arc endpoints coincide with the
		// side strips or the frame border.
		for i := 1; i <= n; i++ {
			phi := a.start + a.length()*float64(i)/float64(n+1)
			r := a.rect(m.edgeX(phi), m.edgeY(phi)).Clip(m.fr)
			if !r.Empty() {
				rects = append(rects, r)
			}
		}
	}
	return rects
}
