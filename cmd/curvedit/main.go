// Command curvedit is an interactive editor for interpolated curves.
//
// Usage:
//
//	curvedit [flags] [x,y ...]
//
// Control points given as arguments are loaded into the editor. With -svg, no
// editor is started; instead, the curve through the control points is written
// to standard output as an SVG document.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"honnef.co/go/interp"
	"honnef.co/go/interp/internal/plot"
	"honnef.co/go/interp/internal/tui"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("curvedit: ")

	var (
		kindFlag = flag.String("kind", interp.Bezier.String(), "interpolation method: bezier, lagrange or spline")
		segments = flag.Int("segments", tui.DefaultSegments, "number of curve segments")
		radius   = flag.Float64("radius", tui.DefaultRadius, "pick radius for control points")
		svg      = flag.Bool("svg", false, "write an SVG plot to stdout instead of starting the editor")
	)
	flag.Parse()

	kind, err := interp.ParseKind(*kindFlag)
	if err != nil {
		log.Fatal(err)
	}
	pts, err := parsePoints(flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	if *svg {
		if err := writePlot(os.Stdout, kind, pts, *segments); err != nil {
			log.Fatal(err)
		}
		return
	}

	m, err := tui.New(tui.Config{
		Kind:     kind,
		Segments: *segments,
		Radius:   *radius,
		Points:   pts,
	})
	if err != nil {
		log.Fatal(err)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}

// parsePoints parses arguments of the form "x,y".
func parsePoints(args []string) ([]interp.Point, error) {
	pts := make([]interp.Point, 0, len(args))
	for _, arg := range args {
		xs, ys, ok := strings.Cut(arg, ",")
		if !ok {
			return nil, fmt.Errorf("invalid point %q: want x,y", arg)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", arg, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", arg, err)
		}
		pts = append(pts, interp.Pt(x, y))
	}
	return pts, nil
}

func writePlot(w io.Writer, kind interp.Kind, pts []interp.Point, segments int) error {
	s, err := interp.NewStrategy(kind)
	if err != nil {
		return err
	}
	curve, err := s.Calculate(pts, segments)
	if err != nil {
		return fmt.Errorf("computing %s curve: %w", kind, err)
	}
	return plot.WriteSVG(w, pts, curve, plot.Options{ControlPolygon: kind == interp.Bezier})
}
