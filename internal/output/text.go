// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"edgemask-core/geom"
)

// WriteText prints one TSV line per rectangle.
func WriteText(w io.Writer, list []geom.Rect, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintf(w, "%d\t%d\t%d\t%d\n", r.X, r.Y, r.W, r.H); err != nil {
			return err
		}
	}
	return nil
}
