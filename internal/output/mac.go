// internal/output/mac.go
package output

import (
	"fmt"
	"io"

	"edgemask-core/geom"
)

// CommandLine renders one rectangle as the CrysAlisPro command that
// excludes it. Operands are origin x, origin y, width, height.
func CommandLine(r geom.Rect) string {
	return fmt.Sprintf("dc rejectrect %d %d %d %d", r.X, r.Y, r.W, r.H)
}

// ParseCommandLine is the inverse of CommandLine, used to verify that
// emitted commands round-trip exactly.
func ParseCommandLine(line string) (geom.Rect, error) {
	var r geom.Rect
	var dc, op string
	n, err := fmt.Sscanf(line, "%s %s %d %d %d %d", &dc, &op, &r.X, &r.Y, &r.W, &r.H)
	if err != nil || n != 6 || dc != "dc" || op != "rejectrect" {
		return geom.Rect{}, fmt.Errorf("not a rejectrect command: %q", line)
	}
	return r, nil
}

// WriteMac prints one command per rectangle, in program order.
func WriteMac(w io.Writer, list []geom.Rect) error {
	for _, r := range list {
		if _, err := fmt.Fprintln(w, CommandLine(r)); err != nil {
			return err
		}
	}
	return nil
}
