// internal/writers/rect.go
package writers

import (
	"io"

	"edgemask-core/geom"
	"edgemask/internal/output"
)

func init() {
	RegisterRect(output.FormatMac, func(w io.Writer, list []geom.Rect, _ bool) error {
		return output.WriteMac(w, list)
	})
	RegisterRect(output.FormatText, output.WriteText)
	RegisterRect(output.FormatJSON, func(w io.Writer, list []geom.Rect, _ bool) error {
		return output.WriteJSON(w, list)
	})
}

// StartRectWriter spins up a writer goroutine for mask rectangles. The
// producer sends rectangles in program order and closes the channel;
// the terminal error (nil on success) arrives on the returned channel
// exactly once.
func StartRectWriter(out io.Writer, format string, header bool, bufSize int) (chan<- geom.Rect, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan geom.Rect, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var buf []geom.Rect
		for r := range in {
			buf = append(buf, r)
		}
		errCh <- WriteRects(format, out, buf, header)
	}()

	return in, errCh
}
