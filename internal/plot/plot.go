// Package plot renders control points and sampled curves as standalone SVG
// documents.
package plot

import (
	"fmt"
	"io"
	"slices"

	"honnef.co/go/interp"
)

// Options controls the appearance of a plot.
type Options struct {
	// Draw the control polygon, connecting control points in order.
	ControlPolygon bool
	// Radius of the markers drawn for control points.
	PointRadius float64
	// Empty space around the plotted shapes, relative to their size.
	Margin float64
	SVG    interp.SVGOptions
}

// DefaultOptions are used for zero fields of Options.
var DefaultOptions = Options{
	PointRadius: 2,
	Margin:      0.05,
	SVG:         interp.SVGOptions{MaxPrecision: 3},
}

// ViewBox returns the area of a plot of controls and curve.
func ViewBox(controls, curve []interp.Point, margin float64) interp.Rect {
	r, ok := interp.Bounds(controls)
	if cr, cok := interp.Bounds(curve); cok {
		if ok {
			r = r.Union(cr)
		} else {
			r, ok = cr, true
		}
	}
	if !ok {
		return interp.Rect{X1: 1, Y1: 1}
	}
	// Give degenerate plots, such as a horizontal line, some height.
	pad := margin * max(r.Width(), r.Height(), 1)
	return r.Inflate(pad, pad)
}

// WriteSVG writes an SVG document plotting the control points and the curve
// sampled through them.
func WriteSVG(w io.Writer, controls, curve []interp.Point, opts Options) error {
	if opts.PointRadius == 0 {
		opts.PointRadius = DefaultOptions.PointRadius
	}
	if opts.Margin == 0 {
		opts.Margin = DefaultOptions.Margin
	}
	if opts.SVG == (interp.SVGOptions{}) {
		opts.SVG = DefaultOptions.SVG
	}

	vb := ViewBox(controls, curve, opts.Margin)
	var err error
	printf := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}
	path := func(pts []interp.Point, attrs string) {
		if err != nil {
			return
		}
		printf(`<path d="`)
		if err == nil {
			err = interp.WriteSVG(w, slices.Values(pts), opts.SVG)
		}
		printf(`" fill="none" %s />`+"\n", attrs)
	}

	printf(`<svg viewBox="%g %g %g %g" xmlns="http://www.w3.org/2000/svg">`+"\n", vb.X0, vb.Y0, vb.Width(), vb.Height())
	if opts.ControlPolygon && len(controls) > 1 {
		path(controls, `stroke="gray" stroke-width="0.5" stroke-dasharray="2"`)
	}
	if len(curve) > 0 {
		path(curve, `stroke="steelblue" stroke-width="1"`)
	}
	for _, pt := range controls {
		printf(`<circle cx="%g" cy="%g" r="%g" fill="orange" />`+"\n", pt.X, pt.Y, opts.PointRadius)
	}
	printf("</svg>\n")
	return err
}
