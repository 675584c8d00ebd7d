// core/mask/rowscan.go
package mask

import (
	"math"

	"edgemask-core/geom"
)

// RowSpans computes, for every detector row the ellipse intersects, the
// inclusive column span lying inside the ellipse. Bounds are rounded
// outward (floor left, ceil right) so the continuous span is never
// under-covered, then clipped to the frame. Rows with no surviving span
// are omitted. The result is in ascending row order.
func (m *Mask) RowSpans() []geom.Span {
	if m.fr.Empty() || m.el.Degenerate() {
		return nil
	}
	var spans []geom.Span
	for y := 0; y < m.fr.Height; y++ {
		t := (float64(y) - m.el.CenterY) / m.el.RadiusY
		if t < -1 || t > 1 {
			continue
		}
		dx := m.el.RadiusX * math.Sqrt(math.Max(0, 1-t*t))
		xmin := int(math.Floor(m.el.CenterX - dx))
		xmax := int(math.Ceil(m.el.CenterX + dx))
		if xmin < 0 {
			xmin = 0
		}
		if xmax > m.fr.Width-1 {
			xmax = m.fr.Width - 1
		}
		if xmin > xmax {
			continue
		}
		spans = append(spans, geom.Span{Row: y, XMin: xmin, XMax: xmax})
	}
	return spans
}

// MergeSpans folds runs of adjacent rows with identical column bounds
// into single taller rectangles, preserving row order.
func MergeSpans(spans []geom.Span) []geom.Rect {
	var rects []geom.Rect
	for _, s := range spans {
		if n := len(rects); n > 0 {
			last := &rects[n-1]
			if last.X == s.XMin && last.W == s.Width() && last.Y+last.H == s.Row {
				last.H++
				continue
			}
		}
		rects = append(rects, geom.Rect{X: s.XMin, Y: s.Row, W: s.Width(), H: 1})
	}
	return rects
}

// SpanRects converts spans one-to-one into height-1 rectangles.
func SpanRects(spans []geom.Span) []geom.Rect {
	rects := make([]geom.Rect, 0, len(spans))
	for _, s := range spans {
		rects = append(rects, geom.Rect{X: s.XMin, Y: s.Row, W: s.Width(), H: 1})
	}
	return rects
}
