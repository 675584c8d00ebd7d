// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"edgemask-core/geom"
)

// RectRenderer serializes a complete mask program to w. header only
// applies to tabular formats.
type RectRenderer func(w io.Writer, list []geom.Rect, header bool) error

// Writer registry (format → renderer); new formats register here instead
// of extending a dispatch switch.
var rectWriters = map[string]RectRenderer{}

// RegisterRect installs a renderer for a format name (last wins).
func RegisterRect(format string, fn RectRenderer) { rectWriters[format] = fn }

// WriteRects dispatches a mask program to the renderer for format.
func WriteRects(format string, w io.Writer, list []geom.Rect, header bool) error {
	fn, ok := rectWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, list, header)
}
