// internal/output/json.go
package output

import (
	"io"

	"edgemask-core/geom"
	"edgemask/internal/jsonutil"
	"edgemask/pkg/api"
)

// ToAPIRect converts a domain rectangle to the stable wire schema (v1).
func ToAPIRect(r geom.Rect) api.RectV1 {
	return api.RectV1{
		X:       r.X,
		Y:       r.Y,
		Width:   r.W,
		Height:  r.H,
		Command: CommandLine(r),
	}
}

func toAPIRects(list []geom.Rect) []api.RectV1 {
	out := make([]api.RectV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIRect(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 rectangles (pretty-indented).
func WriteJSON(w io.Writer, list []geom.Rect) error {
	return jsonutil.EncodePretty(w, toAPIRects(list))
}
