// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"edgemask/internal/version"
)

// Command-line modes
const (
	ModeEdge = "edge"
	ModeRows = "rows"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Detector frame
	Width  int
	Height int

	// Accessible area
	Radius  float64
	RadiusY float64
	OffsetX float64
	OffsetY float64

	// Mask generation
	Mode       string
	Resolution int
	NoMerge    bool

	// Output
	Output      string
	OutPath     string
	Header      bool // true unless --no-header
	PreviewPath string
	PreviewSize int

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: CrysAlisPro detector edge-mask generator

License: MIT
Version: %s

Modes:
  edge  reject the band outside the accessible ellipse (default)
  rows  reject the ellipse interior, one span per detector row

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Detector frame
	fs.IntVar(&opt.Width, "width", 0, "frame width in pixels [*]")
	fs.IntVar(&opt.Height, "height", 0, "frame height in pixels [*]")

	// Accessible area
	fs.Float64Var(&opt.Radius, "radius", 0, "horizontal radius of the accessible area [*]")
	fs.Float64Var(&opt.RadiusY, "radius-y", 0, "vertical radius (0 = same as --radius) [0]")
	fs.Float64Var(&opt.OffsetX, "offset-x", 0, "horizontal center offset from the frame center [0]")
	fs.Float64Var(&opt.OffsetY, "offset-y", 0, "vertical center offset from the frame center [0]")

	// Mask generation
	fs.StringVar(&opt.Mode, "mode", ModeEdge, "mask mode: edge | rows ["+ModeEdge+"]")
	fs.IntVar(&opt.Resolution, "resolution", 100, "edge mode: upper limit of commands emitted [100]")
	fs.BoolVar(&opt.NoMerge, "no-merge", false, "rows mode: emit one rectangle per row, no grouping [false]")

	// Output
	fs.StringVar(&opt.Output, "output", "mac", "output format: mac | text | json [mac]")
	fs.StringVar(&opt.OutPath, "out", "-", "output path, overwritten if present ('-' = stdout) [-]")
	fs.StringVar(&opt.PreviewPath, "preview", "", "also render a PNG preview of the mask to this path")
	fs.IntVar(&opt.PreviewSize, "preview-size", 512, "preview longest side in pixels (0 = native) [512]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	switch {
	case opt.Width <= 0 || opt.Height <= 0:
		return opt, errors.New("--width and --height are required and must be ≥ 1")
	case opt.Radius <= 0:
		return opt, errors.New("--radius is required and must be > 0")
	case opt.RadiusY < 0:
		return opt, errors.New("--radius-y must be ≥ 0")
	}
	if opt.Resolution < 1 {
		return opt, errors.New("--resolution must be ≥ 1")
	}
	if opt.PreviewSize < 0 {
		return opt, errors.New("--preview-size must be ≥ 0")
	}
	if opt.Mode != ModeEdge && opt.Mode != ModeRows {
		return opt, fmt.Errorf("invalid --mode %q", opt.Mode)
	}
	if opt.Output != "mac" && opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
