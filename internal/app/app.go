// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"edgemask-core/geom"
	"edgemask-core/mask"
	"edgemask/internal/cli"
	"edgemask/internal/cmdutil"
	"edgemask/internal/preview"
	"edgemask/internal/version"
	"edgemask/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("edgemask")
	fs.SetOutput(io.Discard)

	printUsage := func(code int) int {
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return code
	}

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		return printUsage(0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return printUsage(0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return printUsage(2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "edgemask version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	fr := geom.Frame{Width: opts.Width, Height: opts.Height}
	ry := opts.RadiusY
	if ry == 0 {
		ry = opts.Radius
	}
	el := geom.Ellipse{
		CenterX: float64(opts.Width)/2 + opts.OffsetX,
		CenterY: float64(opts.Height)/2 + opts.OffsetY,
		RadiusX: opts.Radius,
		RadiusY: ry,
	}

	m, err := mask.New(fr, el)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Mode == cli.ModeEdge && opts.Resolution > mask.DefaultResolution {
		cmdutil.Warnf(stderr, opts.Quiet,
			"CrysAlisPro accepts about %d rejectrect commands; --resolution %d may be refused",
			mask.DefaultResolution, opts.Resolution)
	}

	var rects []geom.Rect
	switch opts.Mode {
	case cli.ModeRows:
		spans := m.RowSpans()
		if opts.NoMerge {
			rects = mask.SpanRects(spans)
		} else {
			rects = mask.MergeSpans(spans)
		}
	default:
		rects = m.EdgeRects(opts.Resolution)
	}
	if len(rects) == 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "mask program is empty (degenerate or off-frame accessible area)")
	}

	dst := io.Writer(outw)
	var (
		file  *os.File
		fileW *bufio.Writer
	)
	if opts.OutPath != "" && opts.OutPath != "-" {
		f, ferr := os.Create(opts.OutPath)
		if ferr != nil {
			_, _ = fmt.Fprintln(stderr, ferr)
			return 3
		}
		file = f
		fileW = bufio.NewWriter(f)
		dst = fileW
	}

	inCh, writeErr := writers.StartRectWriter(dst, opts.Output, opts.Header, 64)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

feed:
	for _, r := range rects {
		select {
		case inCh <- r:
		case <-ctx.Done():
			break feed
		}
	}
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}

	if file != nil {
		if e := fileW.Flush(); e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		if e := file.Close(); e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
	} else if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if ctx.Err() != nil {
		return 130
	}

	if opts.PreviewPath != "" {
		if fr.Empty() {
			cmdutil.Warnf(stderr, opts.Quiet, "skipping preview of empty frame")
		} else if err := preview.Save(opts.PreviewPath, fr, rects, opts.PreviewSize); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
